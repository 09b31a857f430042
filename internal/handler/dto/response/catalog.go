package response

import (
	"studio-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SubPackageResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"`
}

type PackageResponse struct {
	ID            uuid.UUID            `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description,omitempty"`
	IsGroup       bool                 `json:"is_group"`
	PerPersonRate int64                `json:"per_person_rate"`
	SubPackages   []SubPackageResponse `json:"sub_packages"`
}

type AddOnResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Price int64     `json:"price"`
}

type CatalogResponse struct {
	Packages []PackageResponse `json:"packages"`
	AddOns   []AddOnResponse   `json:"add_ons"`
}

func FromCatalogView(v *queries.CatalogView) *CatalogResponse {
	r := CatalogResponse{Packages: []PackageResponse{}, AddOns: []AddOnResponse{}}
	_ = copier.CopyWithOption(&r, v, deepCopy)
	return &r
}
