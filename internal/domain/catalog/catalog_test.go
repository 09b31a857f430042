//go:build unit

package catalog_test

import (
	"testing"

	"studio-booking/internal/domain/catalog"
	"studio-booking/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtures() (catalog.Package, catalog.SubPackage, []catalog.AddOn) {
	pkg := catalog.Package{ID: uuid.New(), Name: "Family", IsGroup: true, PerPersonRate: 25000, Active: true}
	sub := catalog.SubPackage{ID: uuid.New(), PackageID: pkg.ID, Name: "Basic", Price: 150000, Active: true}
	addOns := []catalog.AddOn{
		{ID: uuid.New(), Name: "Prints", Price: 30000, Active: true},
		{ID: uuid.New(), Name: "Makeup", Price: 20000, Active: true},
		{ID: uuid.New(), Name: "Drone", Price: 90000, Active: false},
	}
	return pkg, sub, addOns
}

func TestResolve(t *testing.T) {
	t.Run("正常に解決し選択を作る", func(t *testing.T) {
		pkg, sub, addOns := fixtures()
		choice, err := catalog.Resolve(pkg, sub, []uuid.UUID{addOns[0].ID, addOns[1].ID}, addOns, 4)
		require.NoError(t, err)

		want := pricing.Selection{
			Package:      pricing.Package{IsGroup: true, PerPersonRate: 25000, SubPackagePrice: 150000},
			AddOnPrices:  []int64{30000, 20000},
			Participants: 4,
		}
		if diff := cmp.Diff(want, choice.Selection()); diff != "" {
			t.Errorf("Selection mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("重複したアドオンは一度だけ", func(t *testing.T) {
		pkg, sub, addOns := fixtures()
		choice, err := catalog.Resolve(pkg, sub, []uuid.UUID{addOns[0].ID, addOns[0].ID}, addOns, 1)
		require.NoError(t, err)
		assert.Len(t, choice.AddOns, 1)
	})

	cases := []struct {
		name   string
		mutate func(pkg *catalog.Package, sub *catalog.SubPackage, requested *[]uuid.UUID, addOns []catalog.AddOn)
		errIs  error
	}{
		{
			name:   "無効なパッケージNG",
			mutate: func(pkg *catalog.Package, _ *catalog.SubPackage, _ *[]uuid.UUID, _ []catalog.AddOn) { pkg.Active = false },
			errIs:  catalog.ErrPackageUnavailable,
		},
		{
			name:   "無効なサブパッケージNG",
			mutate: func(_ *catalog.Package, sub *catalog.SubPackage, _ *[]uuid.UUID, _ []catalog.AddOn) { sub.Active = false },
			errIs:  catalog.ErrSubPackageUnavailable,
		},
		{
			name:   "別パッケージのサブパッケージNG",
			mutate: func(_ *catalog.Package, sub *catalog.SubPackage, _ *[]uuid.UUID, _ []catalog.AddOn) { sub.PackageID = uuid.New() },
			errIs:  catalog.ErrSubPackageMismatch,
		},
		{
			name: "無効なアドオンNG",
			mutate: func(_ *catalog.Package, _ *catalog.SubPackage, requested *[]uuid.UUID, addOns []catalog.AddOn) {
				*requested = append(*requested, addOns[2].ID)
			},
			errIs: catalog.ErrAddOnUnavailable,
		},
		{
			name: "存在しないアドオンNG",
			mutate: func(_ *catalog.Package, _ *catalog.SubPackage, requested *[]uuid.UUID, _ []catalog.AddOn) {
				*requested = append(*requested, uuid.New())
			},
			errIs: catalog.ErrAddOnUnavailable,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pkg, sub, addOns := fixtures()
			requested := []uuid.UUID{addOns[0].ID}
			tc.mutate(&pkg, &sub, &requested, addOns)

			_, err := catalog.Resolve(pkg, sub, requested, addOns, 2)
			require.ErrorIs(t, err, tc.errIs)
		})
	}
}
