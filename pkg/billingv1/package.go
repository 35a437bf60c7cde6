package billingv1

import "encoding/json"

// Package is a subscription plan.
type Package struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Amount    json.Number `json:"amount"`
	CreatedAt int64       `json:"createdAt"`
}

type CreatePackageRequest struct {
	Name   string  `json:"name" validate:"required"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

type CreatePackageResponse struct {
	Package Package `json:"package"`
}

type ListPackagesRequest struct {
	Page
}

type ListPackagesResponse struct {
	Packages   []Package `json:"packages"`
	DataLength int       `json:"dataLength"`
}

// UpdatePackageRequest renames or re-prices a package. Customers on it are
// billed the new amount from then on.
type UpdatePackageRequest struct {
	ID     string  `json:"id" validate:"required"`
	Name   string  `json:"name" validate:"required"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

type UpdatePackageResponse struct {
	Package Package `json:"package"`
}

type DeletePackageRequest struct {
	ID string `json:"id" validate:"required"`
}

type DeletePackageResponse struct{}
