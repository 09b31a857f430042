package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"studio-booking/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Applies migrations/ through the atlas CLI, which must be on PATH.
// Usage: migrate [-dir file://migrations] <up|status>
func main() {
	_ = godotenv.Load()

	dir := flag.String("dir", "file://migrations", "migration directory URL")
	atlasBin := flag.String("atlas", "atlas", "atlas executable")
	flag.Parse()

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		slog.Error("failed to load database config", "error", err)
		os.Exit(1)
	}

	client, err := atlasexec.NewClient(".", *atlasBin)
	if err != nil {
		slog.Error("failed to initialize atlas client", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	url := dbCfg.BuildDSN()
	switch cmd := flag.Arg(0); cmd {
	case "up", "":
		res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
			URL:    url,
			DirURL: *dir,
		})
		if err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
		slog.Info("migrations applied", "count", len(res.Applied), "current", res.Current, "target", res.Target)
	case "status":
		res, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{
			URL:    url,
			DirURL: *dir,
		})
		if err != nil {
			slog.Error("failed to read migration status", "error", err)
			os.Exit(1)
		}
		slog.Info("migration status", "status", res.Status, "current", res.Current, "pending", len(res.Pending))
	default:
		slog.Error("unknown command", "command", cmd)
		os.Exit(2)
	}
}
