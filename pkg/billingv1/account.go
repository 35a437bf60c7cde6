package billingv1

import "encoding/json"

// ClassifyStatusRequest classifies one account. LastPaymentDate is optional;
// an empty value means the account never paid.
type ClassifyStatusRequest struct {
	LastPaymentDate string `json:"lastPaymentDate,omitempty"`
	IsDisconnected  bool   `json:"isDisconnected"`
}

type ClassifyStatusResponse struct {
	Status string `json:"status"`
}

type ClassifyBatchRequest struct {
	Accounts []ClassifyStatusRequest `json:"accounts" validate:"dive"`
}

// ClassifyBatchResponse holds one status per request account, in order.
type ClassifyBatchResponse struct {
	Statuses []string `json:"statuses"`
}

// ListAccountsRequest optionally filters by status (Active, Due, Overdue or
// Suspended, case-insensitive).
type ListAccountsRequest struct {
	Status string `json:"status,omitempty"`
	Page
}

type ListAccountsResponse struct {
	Accounts []Account `json:"accounts"`

	// Counts has an entry for every status, computed before filtering.
	Counts map[string]int `json:"counts"`

	// DataLength is the number of accounts matching the filter before paging.
	DataLength int `json:"dataLength"`
}

// Account is a customer together with its derived status.
type Account struct {
	Customer Customer `json:"customer"`
	Status   string   `json:"status"`
}

// Customer is the wire form of a subscriber. LastPayment is RFC 3339 or
// empty.
type Customer struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Phone1         string      `json:"phone1"`
	Phone2         string      `json:"phone2,omitempty"`
	Email          string      `json:"email,omitempty"`
	Location       string      `json:"location,omitempty"`
	IP             string      `json:"ip,omitempty"`
	MACAddress     string      `json:"macAddress,omitempty"`
	PackageID      string      `json:"packageId,omitempty"`
	PackageName    string      `json:"packageName,omitempty"`
	BillAmount     json.Number `json:"billAmount"`
	TotalEarnings  json.Number `json:"totalEarnings"`
	AccruedAmount  json.Number `json:"accruedAmount"`
	LastPayment    string      `json:"lastPayment,omitempty"`
	IsDisconnected bool        `json:"isDisconnected"`
	CreatedAt      int64       `json:"createdAt"`
}

// CustomerInput carries the editable customer fields for create and update.
type CustomerInput struct {
	Name           string  `json:"name" validate:"required"`
	Phone1         string  `json:"phone1" validate:"required"`
	Phone2         string  `json:"phone2,omitempty"`
	Email          string  `json:"email,omitempty" validate:"omitempty,email"`
	Location       string  `json:"location,omitempty"`
	IP             string  `json:"ip,omitempty" validate:"omitempty,ip"`
	MACAddress     string  `json:"macAddress,omitempty" validate:"omitempty,mac"`
	PackageID      string  `json:"packageId,omitempty"`
	AccruedAmount  float64 `json:"accruedAmount" validate:"gte=0"`
	LastPayment    string  `json:"lastPayment,omitempty"`
	IsDisconnected bool    `json:"isDisconnected"`
}

type CreateCustomerRequest struct {
	Customer CustomerInput `json:"customer"`
}

type CreateCustomerResponse struct {
	Customer Customer `json:"customer"`
	Status   string   `json:"status"`
}

type GetCustomerRequest struct {
	ID string `json:"id" validate:"required"`
}

type GetCustomerResponse struct {
	Customer Customer `json:"customer"`
	Status   string   `json:"status"`
}

type UpdateCustomerRequest struct {
	ID       string        `json:"id" validate:"required"`
	Customer CustomerInput `json:"customer"`
}

type UpdateCustomerResponse struct {
	Customer Customer `json:"customer"`
	Status   string   `json:"status"`
}

type DeleteCustomerRequest struct {
	ID string `json:"id" validate:"required"`
}

type DeleteCustomerResponse struct{}

// RecordPaymentRequest registers a payment. PaidAt defaults to now.
type RecordPaymentRequest struct {
	CustomerID string  `json:"customerId" validate:"required"`
	Amount     float64 `json:"amount" validate:"gt=0"`
	PaidAt     string  `json:"paidAt,omitempty"`
}

type RecordPaymentResponse struct {
	Customer Customer `json:"customer"`
	Status   string   `json:"status"`
}

type SetDisconnectedRequest struct {
	CustomerID   string `json:"customerId" validate:"required"`
	Disconnected bool   `json:"disconnected"`
}

type SetDisconnectedResponse struct {
	Customer Customer `json:"customer"`
	Status   string   `json:"status"`
}

// ListAccruedRequest lists customers carrying an accrued balance.
type ListAccruedRequest struct {
	Page
}

type ListAccruedResponse struct {
	Accounts   []Account   `json:"accounts"`
	DataLength int         `json:"dataLength"`
	Total      json.Number `json:"total"`
}

// DeductAccruedRequest settles an accrued balance. Full clears it; otherwise
// Amount is taken off, and must not exceed the balance.
type DeductAccruedRequest struct {
	CustomerID string  `json:"customerId" validate:"required"`
	Full       bool    `json:"full"`
	Amount     float64 `json:"amount" validate:"gte=0"`
}

type DeductAccruedResponse struct {
	Customer Customer `json:"customer"`
	Status   string   `json:"status"`
}
