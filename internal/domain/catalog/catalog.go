package catalog

import (
	"errors"

	"studio-booking/internal/domain/pricing"

	"github.com/google/uuid"
)

var (
	ErrPackageUnavailable    = errors.New("package is no longer available")
	ErrSubPackageUnavailable = errors.New("sub-package is no longer available")
	ErrSubPackageMismatch    = errors.New("sub-package does not belong to package")
	ErrAddOnUnavailable      = errors.New("add-on is no longer available")
)

type Package struct {
	ID            uuid.UUID
	Name          string
	IsGroup       bool
	PerPersonRate int64
	Active        bool
}

type SubPackage struct {
	ID        uuid.UUID
	PackageID uuid.UUID
	Name      string
	Price     int64
	Active    bool
}

type AddOn struct {
	ID     uuid.UUID
	Name   string
	Price  int64
	Active bool
}

// Choice is what the client picked from the current catalog.
type Choice struct {
	Package      Package
	SubPackage   SubPackage
	AddOns       []AddOn
	Participants int
}

// Resolve checks a submission against the catalog as it is now. requested holds
// the add-on ids the client asked for; available is what the store returned.
func Resolve(pkg Package, sub SubPackage, requested []uuid.UUID, available []AddOn, participants int) (Choice, error) {
	if !pkg.Active {
		return Choice{}, ErrPackageUnavailable
	}
	if !sub.Active {
		return Choice{}, ErrSubPackageUnavailable
	}
	if sub.PackageID != pkg.ID {
		return Choice{}, ErrSubPackageMismatch
	}

	byID := make(map[uuid.UUID]AddOn, len(available))
	for _, a := range available {
		byID[a.ID] = a
	}
	seen := make(map[uuid.UUID]struct{}, len(requested))
	addOns := make([]AddOn, 0, len(requested))
	for _, id := range requested {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		a, ok := byID[id]
		if !ok || !a.Active {
			return Choice{}, ErrAddOnUnavailable
		}
		addOns = append(addOns, a)
	}

	return Choice{
		Package:      pkg,
		SubPackage:   sub,
		AddOns:       addOns,
		Participants: participants,
	}, nil
}

func (c Choice) Selection() pricing.Selection {
	prices := make([]int64, len(c.AddOns))
	for i, a := range c.AddOns {
		prices[i] = a.Price
	}
	return pricing.Selection{
		Package: pricing.Package{
			IsGroup:         c.Package.IsGroup,
			PerPersonRate:   c.Package.PerPersonRate,
			SubPackagePrice: c.SubPackage.Price,
		},
		AddOnPrices:  prices,
		Participants: c.Participants,
	}
}
