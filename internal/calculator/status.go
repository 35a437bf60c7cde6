package calculator

import (
	"strings"
	"time"
)

// Status is the billing state of a customer account.
type Status string

const (
	StatusActive    Status = "Active"
	StatusDue       Status = "Due"
	StatusOverdue   Status = "Overdue"
	StatusSuspended Status = "Suspended"
)

// Statuses lists every status in classification priority order.
var Statuses = []Status{StatusSuspended, StatusOverdue, StatusDue, StatusActive}

// ParseStatus matches a status name case-insensitively.
func ParseStatus(s string) (Status, bool) {
	for _, st := range Statuses {
		if strings.EqualFold(string(st), strings.TrimSpace(s)) {
			return st, true
		}
	}
	return "", false
}

const (
	DefaultDueAfterDays     = 30
	DefaultOverdueAfterDays = 35
)

// Thresholds holds the number of days since the last payment after which an
// account becomes Due and Overdue.
type Thresholds struct {
	DueAfterDays     int
	OverdueAfterDays int
}

// DefaultThresholds returns the 30/35 day thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DueAfterDays:     DefaultDueAfterDays,
		OverdueAfterDays: DefaultOverdueAfterDays,
	}
}

// ClassifyStatus derives an account status using the default thresholds.
//
// Rules, first match wins:
//   - disconnected accounts are Suspended
//   - last payment on or before now-35d is Overdue
//   - last payment on or before now-30d is Due
//   - anything else is Active
//
// A nil lastPayment means the account has never paid and is treated as
// infinitely overdue, so it classifies as Overdue unless disconnected.
func ClassifyStatus(lastPayment *time.Time, isDisconnected bool, now time.Time) Status {
	return DefaultThresholds().Classify(lastPayment, isDisconnected, now)
}

// Classify applies the rules documented on ClassifyStatus with t's thresholds.
// Day arithmetic is calendar based (now.AddDate), matching "N days ago" in the
// account's local time.
func (t Thresholds) Classify(lastPayment *time.Time, isDisconnected bool, now time.Time) Status {
	if isDisconnected {
		return StatusSuspended
	}
	if lastPayment == nil {
		return StatusOverdue
	}
	if !lastPayment.After(now.AddDate(0, 0, -t.OverdueAfterDays)) {
		return StatusOverdue
	}
	if !lastPayment.After(now.AddDate(0, 0, -t.DueAfterDays)) {
		return StatusDue
	}
	return StatusActive
}

// ClassifyString parses lastPayment with ParseDate and classifies it.
// The date is parsed before the disconnection flag is looked at, so a
// malformed date is an error even for a disconnected account.
func (t Thresholds) ClassifyString(lastPayment string, isDisconnected bool, now time.Time) (Status, error) {
	paid, err := ParseDate(lastPayment)
	if err != nil {
		return "", err
	}
	return t.Classify(paid, isDisconnected, now), nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	"02/01/06",
}

// ParseDate parses an ISO-8601 timestamp or date, or a DD/MM/YY(YY) date as
// entered in the dashboard forms. An empty string yields nil and no error;
// for a payment date that means the account never paid.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return &t, nil
		}
		lastErr = err
	}
	return nil, &InvalidDateError{Value: s, Err: lastErr}
}
