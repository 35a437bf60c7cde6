// Package models defines the domain models for the Elsafrica billing backend.
//
// # Models
//
//   - Customer: an ISP subscriber account, including payment and connection state
//   - Package: a subscription plan a customer is billed for
//   - Invoice and LineItem: a manually issued invoice and its lines
//   - Asset: network equipment deployed at a customer site
//   - User: a dashboard operator who signs in to manage the above
//   - PasswordReset: a pending reset token for a User
//
// Account status (Active, Due, Overdue, Suspended) is never stored. It is
// derived on every read by the calculator package from Customer.LastPayment
// and Customer.IsDisconnected.
//
// Optional contact attributes (Phone2, Email, ...) are plain strings where the
// empty string means "not provided".
package models
