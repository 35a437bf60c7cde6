package models

// AssetType values accepted for Asset.Type.
const (
	AssetTypeSwitch = "Switch"
	AssetTypeOther  = "Other"
)

// Asset is a piece of network equipment deployed at a customer site.
type Asset struct {
	// ID is the unique identifier for the asset (UUID format).
	ID string

	Name string

	// BelongsTo is the IP of the customer the asset serves, either in full
	// ("10.0.0.72") or as the last octet with its dot (".72").
	BelongsTo string

	// CustomerName is resolved from BelongsTo when the asset is loaded.
	CustomerName string

	Type       string
	MACAddress string
	Location   string
	Purpose    string
	Price      float64

	// IsForCompany marks equipment owned by the ISP rather than the customer.
	IsForCompany bool

	CreatedAt int64
}
