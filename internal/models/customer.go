package models

import "time"

// Customer is a subscriber account.
type Customer struct {
	// ID is the unique identifier for the customer (UUID format).
	ID string

	Name     string
	Phone1   string
	Phone2   string
	Email    string
	Location string

	// IP and MACAddress identify the customer's CPE on the network.
	IP         string
	MACAddress string

	// PackageID references the subscribed Package. PackageName and BillAmount
	// are denormalized from it when the customer is loaded.
	PackageID   string
	PackageName string
	BillAmount  float64

	// TotalEarnings is the sum of all payments received from this customer.
	TotalEarnings float64

	// AccruedAmount is debt carried forward from previous billing periods.
	AccruedAmount float64

	// LastPayment is when the last payment was received, nil if never.
	LastPayment *time.Time

	// IsDisconnected marks an account that was explicitly cut off.
	IsDisconnected bool

	// CreatedAt is the Unix timestamp when the customer was created.
	CreatedAt int64
}

// Package is a subscription plan.
type Package struct {
	ID        string
	Name      string
	Amount    float64
	CreatedAt int64
}
