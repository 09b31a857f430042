package readstore

import (
	"context"
	"strings"

	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/domain/pricing"
	"studio-booking/internal/infra"
	sqlc "studio-booking/internal/infra/sqlc/generated"
	"studio-booking/internal/pkg/pgconv"
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogReadQueries interface {
	ListActivePackages(ctx context.Context, db sqlc.DBTX) ([]sqlc.Packages, error)
	ListActiveSubPackages(ctx context.Context, db sqlc.DBTX) ([]sqlc.SubPackages, error)
	ListActiveAddOns(ctx context.Context, db sqlc.DBTX) ([]sqlc.AddOns, error)
	GetSubPackageWithPackage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetSubPackageWithPackageRow, error)
	GetAddOnsByIDs(ctx context.Context, db sqlc.DBTX, ids []uuid.UUID) ([]sqlc.AddOns, error)
	GetPromoByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.Promos, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

// ListActive returns active packages with their active sub-packages. Packages
// without any active sub-package are left out.
func (r *CatalogReadStore) ListActive(ctx context.Context) (*queries.CatalogView, error) {
	packages, err := r.queries.ListActivePackages(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages", err)
	}
	subPackages, err := r.queries.ListActiveSubPackages(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sub-packages", err)
	}
	addOns, err := r.queries.ListActiveAddOns(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list add-ons", err)
	}

	subsByPackage := make(map[uuid.UUID][]queries.SubPackageView, len(packages))
	for _, sp := range subPackages {
		subsByPackage[sp.PackageID] = append(subsByPackage[sp.PackageID], queries.SubPackageView{
			ID:          sp.ID,
			Name:        sp.Name,
			Description: pgconv.StringFromPgtype(sp.Description),
			Price:       sp.Price,
		})
	}

	view := &queries.CatalogView{
		Packages: make([]queries.PackageView, 0, len(packages)),
		AddOns:   make([]queries.AddOnView, 0, len(addOns)),
	}
	for _, p := range packages {
		subs := subsByPackage[p.ID]
		if len(subs) == 0 {
			continue
		}
		view.Packages = append(view.Packages, queries.PackageView{
			ID:            p.ID,
			Name:          p.Name,
			Description:   pgconv.StringFromPgtype(p.Description),
			IsGroup:       p.IsGroup,
			PerPersonRate: p.PerPersonRate,
			SubPackages:   subs,
		})
	}
	for _, a := range addOns {
		view.AddOns = append(view.AddOns, queries.AddOnView{ID: a.ID, Name: a.Name, Price: a.Price})
	}
	return view, nil
}

func (r *CatalogReadStore) SubPackageByID(ctx context.Context, id uuid.UUID) (catalog.Package, catalog.SubPackage, error) {
	row, err := r.queries.GetSubPackageWithPackage(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return catalog.Package{}, catalog.SubPackage{}, infra.WrapRepoErr("sub-package not found", err, infra.KindNotFound)
		}
		return catalog.Package{}, catalog.SubPackage{}, infra.WrapRepoErr("failed to find sub-package", err)
	}

	pkg := catalog.Package{
		ID:            row.PackageID,
		Name:          row.PackageName,
		IsGroup:       row.IsGroup,
		PerPersonRate: row.PerPersonRate,
		Active:        row.PackageActive,
	}
	sub := catalog.SubPackage{
		ID:        row.SubPackageID,
		PackageID: row.PackageID,
		Name:      row.SubPackageName,
		Price:     row.SubPackagePrice,
		Active:    row.SubPackageActive,
	}
	return pkg, sub, nil
}

// AddOnsByIDs returns the add-ons that exist, active or not. Missing ids are
// simply absent from the result.
func (r *CatalogReadStore) AddOnsByIDs(ctx context.Context, ids []uuid.UUID) ([]catalog.AddOn, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.queries.GetAddOnsByIDs(ctx, r.db, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find add-ons", err)
	}

	result := make([]catalog.AddOn, len(rows))
	for i, row := range rows {
		result[i] = catalog.AddOn{
			ID:     row.ID,
			Name:   row.Name,
			Price:  row.Price,
			Active: row.IsActive,
		}
	}
	return result, nil
}

func (r *CatalogReadStore) PromoByCode(ctx context.Context, code string) (*pricing.Promo, error) {
	row, err := r.queries.GetPromoByCode(ctx, r.db, strings.TrimSpace(code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find promo", err)
	}

	return &pricing.Promo{
		Code:       row.Code,
		Percentage: pgconv.DecimalFromNumeric(row.Percentage),
		Active:     row.IsActive,
	}, nil
}
