package billingv1

import "encoding/json"

// Asset is a piece of network equipment, either a switch or another device
// identified by its MAC address.
type Asset struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	BelongsTo    string      `json:"belongsTo"`
	CustomerName string      `json:"customerName,omitempty"`
	Type         string      `json:"type"`
	MACAddress   string      `json:"macAddress,omitempty"`
	Location     string      `json:"location,omitempty"`
	Purpose      string      `json:"purpose"`
	Price        json.Number `json:"price"`
	IsForCompany bool        `json:"isForCompany"`
	CreatedAt    int64       `json:"createdAt"`
}

// AssetInput carries a new asset. BelongsTo is a full IPv4 address or the
// ".NN" / ".NNN" suffix of one; MACAddress is required for type Other.
type AssetInput struct {
	Name         string  `json:"name" validate:"required"`
	BelongsTo    string  `json:"belongsTo" validate:"required,ipv4|ipsuffix"`
	Type         string  `json:"type" validate:"required,oneof=Switch Other"`
	MACAddress   string  `json:"macAddress,omitempty" validate:"required_if=Type Other"`
	Location     string  `json:"location,omitempty"`
	Purpose      string  `json:"purpose" validate:"required"`
	Price        float64 `json:"price" validate:"gte=0"`
	IsForCompany bool    `json:"isForCompany"`
}

type CreateAssetRequest struct {
	Asset AssetInput `json:"asset"`
}

type CreateAssetResponse struct {
	Asset Asset `json:"asset"`
}

type ListAssetsRequest struct {
	Page
}

type ListAssetsResponse struct {
	Assets     []Asset `json:"assets"`
	DataLength int     `json:"dataLength"`
}

type DeleteAssetRequest struct {
	ID string `json:"id" validate:"required"`
}

type DeleteAssetResponse struct{}
