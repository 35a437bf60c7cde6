package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/elsafrica/billing/internal/calculator"
	"github.com/elsafrica/billing/internal/metrics"
	"github.com/elsafrica/billing/internal/models"
	"github.com/elsafrica/billing/internal/storage"
	billingv1 "github.com/elsafrica/billing/pkg/billingv1"
	"github.com/elsafrica/billing/pkg/billingv1/billingv1connect"
)

var _ billingv1connect.AccountServiceHandler = (*AccountService)(nil)

// AccountService classifies subscriber accounts and manages customers.
type AccountService struct {
	store      storage.Store
	thresholds calculator.Thresholds
	workers    int
	metrics    *metrics.Metrics
	now        func() time.Time
}

// NewAccountService creates an AccountService. workers bounds the
// concurrency of ClassifyBatch; m may be nil.
func NewAccountService(store storage.Store, thresholds calculator.Thresholds, workers int, m *metrics.Metrics) *AccountService {
	return &AccountService{
		store:      store,
		thresholds: thresholds,
		workers:    workers,
		metrics:    m,
		now:        time.Now,
	}
}

// WithClock replaces the time source used for classification.
func (s *AccountService) WithClock(now func() time.Time) *AccountService {
	s.now = now
	return s
}

func (s *AccountService) classify(c *models.Customer, now time.Time) calculator.Status {
	status := s.thresholds.Classify(c.LastPayment, c.IsDisconnected, now)
	s.metrics.ObserveStatus(string(status))
	return status
}

// ClassifyStatus classifies one account from its last payment date and
// disconnection flag.
func (s *AccountService) ClassifyStatus(ctx context.Context, req *connect.Request[billingv1.ClassifyStatusRequest]) (*connect.Response[billingv1.ClassifyStatusResponse], error) {
	status, err := s.thresholds.ClassifyString(req.Msg.LastPaymentDate, req.Msg.IsDisconnected, s.now())
	if err != nil {
		slog.Warn("ClassifyStatus failed", "last_payment", req.Msg.LastPaymentDate, "error", err)
		return nil, toConnectError(err)
	}
	s.metrics.ObserveStatus(string(status))

	slog.Debug("Classified account",
		"last_payment", req.Msg.LastPaymentDate,
		"disconnected", req.Msg.IsDisconnected,
		"status", status,
	)
	return connect.NewResponse(&billingv1.ClassifyStatusResponse{Status: string(status)}), nil
}

// ClassifyBatch classifies many accounts concurrently, preserving order.
func (s *AccountService) ClassifyBatch(ctx context.Context, req *connect.Request[billingv1.ClassifyBatchRequest]) (*connect.Response[billingv1.ClassifyBatchResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	inputs := make([]calculator.AccountInput, len(req.Msg.Accounts))
	for i, a := range req.Msg.Accounts {
		inputs[i] = calculator.AccountInput{LastPayment: a.LastPaymentDate, IsDisconnected: a.IsDisconnected}
	}

	statuses, err := s.thresholds.ClassifyBatch(ctx, inputs, s.now(), s.workers)
	if err != nil {
		slog.Warn("ClassifyBatch failed", "accounts", len(inputs), "error", err)
		return nil, toConnectError(err)
	}

	out := make([]string, len(statuses))
	for i, st := range statuses {
		s.metrics.ObserveStatus(string(st))
		out[i] = string(st)
	}

	slog.Info("Classified batch", "accounts", len(out), "workers", s.workers)
	return connect.NewResponse(&billingv1.ClassifyBatchResponse{Statuses: out}), nil
}

// ListAccounts returns customers with their current status, optionally
// filtered to one status and paged. Counts always cover all customers.
func (s *AccountService) ListAccounts(ctx context.Context, req *connect.Request[billingv1.ListAccountsRequest]) (*connect.Response[billingv1.ListAccountsResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	var filter calculator.Status
	if req.Msg.Status != "" {
		st, ok := calculator.ParseStatus(req.Msg.Status)
		if !ok {
			return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown status %q", req.Msg.Status))
		}
		filter = st
	}

	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		slog.Error("ListAccounts failed", "error", err)
		return nil, toConnectError(err)
	}

	now := s.now()
	counts := make(map[string]int, len(calculator.Statuses))
	for _, st := range calculator.Statuses {
		counts[string(st)] = 0
	}
	accounts := make([]billingv1.Account, 0, len(customers))
	for _, c := range customers {
		st := s.classify(c, now)
		counts[string(st)]++
		if filter != "" && st != filter {
			continue
		}
		accounts = append(accounts, billingv1.Account{Customer: customerToWire(c), Status: string(st)})
	}

	page := paginate(accounts, req.Msg.Page)
	slog.Info("Listed accounts", "filter", filter, "total", len(customers), "matched", len(accounts), "returned", len(page))
	return connect.NewResponse(&billingv1.ListAccountsResponse{
		Accounts:   page,
		Counts:     counts,
		DataLength: len(accounts),
	}), nil
}

// applyInput copies the editable fields onto c after checking the package
// reference and the last payment date.
func (s *AccountService) applyInput(ctx context.Context, in billingv1.CustomerInput, c *models.Customer) error {
	lastPayment, err := calculator.ParseDate(in.LastPayment)
	if err != nil {
		return err
	}
	if in.PackageID != "" {
		if _, err := s.store.GetPackage(ctx, in.PackageID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("unknown package %s", in.PackageID))
			}
			return err
		}
	}

	c.Name = in.Name
	c.Phone1 = in.Phone1
	c.Phone2 = in.Phone2
	c.Email = in.Email
	c.Location = in.Location
	c.IP = in.IP
	c.MACAddress = in.MACAddress
	c.PackageID = in.PackageID
	c.AccruedAmount = in.AccruedAmount
	c.LastPayment = lastPayment
	c.IsDisconnected = in.IsDisconnected
	return nil
}

// reload fetches c again so package fields are resolved.
func (s *AccountService) reload(ctx context.Context, id string) (billingv1.Customer, string, error) {
	c, err := s.store.GetCustomer(ctx, id)
	if err != nil {
		return billingv1.Customer{}, "", err
	}
	return customerToWire(c), string(s.classify(c, s.now())), nil
}

// CreateCustomer adds a subscriber.
func (s *AccountService) CreateCustomer(ctx context.Context, req *connect.Request[billingv1.CreateCustomerRequest]) (*connect.Response[billingv1.CreateCustomerResponse], error) {
	if err := validateRequest(&req.Msg.Customer); err != nil {
		return nil, err
	}

	c := &models.Customer{}
	if err := s.applyInput(ctx, req.Msg.Customer, c); err != nil {
		return nil, toConnectError(err)
	}
	if err := s.store.CreateCustomer(ctx, c); err != nil {
		slog.Error("CreateCustomer failed", "error", err)
		return nil, toConnectError(err)
	}

	out, status, err := s.reload(ctx, c.ID)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Customer created", "customer_id", c.ID, "name", c.Name, "status", status)
	return connect.NewResponse(&billingv1.CreateCustomerResponse{Customer: out, Status: status}), nil
}

// GetCustomer returns one subscriber with its status.
func (s *AccountService) GetCustomer(ctx context.Context, req *connect.Request[billingv1.GetCustomerRequest]) (*connect.Response[billingv1.GetCustomerResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	out, status, err := s.reload(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&billingv1.GetCustomerResponse{Customer: out, Status: status}), nil
}

// UpdateCustomer replaces the editable fields. Earnings and creation time
// are kept.
func (s *AccountService) UpdateCustomer(ctx context.Context, req *connect.Request[billingv1.UpdateCustomerRequest]) (*connect.Response[billingv1.UpdateCustomerResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	c, err := s.store.GetCustomer(ctx, req.Msg.ID)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := s.applyInput(ctx, req.Msg.Customer, c); err != nil {
		return nil, toConnectError(err)
	}
	if err := s.store.UpdateCustomer(ctx, c); err != nil {
		slog.Error("UpdateCustomer failed", "customer_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}

	out, status, err := s.reload(ctx, c.ID)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Customer updated", "customer_id", c.ID, "status", status)
	return connect.NewResponse(&billingv1.UpdateCustomerResponse{Customer: out, Status: status}), nil
}

func (s *AccountService) DeleteCustomer(ctx context.Context, req *connect.Request[billingv1.DeleteCustomerRequest]) (*connect.Response[billingv1.DeleteCustomerResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeleteCustomer(ctx, req.Msg.ID); err != nil {
		slog.Warn("DeleteCustomer failed", "customer_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Customer deleted", "customer_id", req.Msg.ID)
	return connect.NewResponse(&billingv1.DeleteCustomerResponse{}), nil
}

// RecordPayment books a payment: earnings grow by the amount, accrued debt
// is cleared and the account is reconnected. The last payment date only
// moves forward.
func (s *AccountService) RecordPayment(ctx context.Context, req *connect.Request[billingv1.RecordPaymentRequest]) (*connect.Response[billingv1.RecordPaymentResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	paidAt, err := calculator.ParseDate(req.Msg.PaidAt)
	if err != nil {
		return nil, toConnectError(err)
	}
	if paidAt == nil {
		now := s.now()
		paidAt = &now
	}

	c, err := s.store.GetCustomer(ctx, req.Msg.CustomerID)
	if err != nil {
		return nil, toConnectError(err)
	}

	if c.LastPayment == nil || paidAt.After(*c.LastPayment) {
		c.LastPayment = paidAt
	}
	c.TotalEarnings = decimal.NewFromFloat(c.TotalEarnings).
		Add(decimal.NewFromFloat(req.Msg.Amount)).
		InexactFloat64()
	c.AccruedAmount = 0
	c.IsDisconnected = false

	if err := s.store.UpdateCustomer(ctx, c); err != nil {
		slog.Error("RecordPayment failed", "customer_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}

	out, status, err := s.reload(ctx, c.ID)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Payment recorded",
		"customer_id", c.ID,
		"amount", req.Msg.Amount,
		"paid_at", paidAt.Format(time.RFC3339),
		"status", status,
	)
	return connect.NewResponse(&billingv1.RecordPaymentResponse{Customer: out, Status: status}), nil
}

// SetDisconnected cuts an account off or restores it.
func (s *AccountService) SetDisconnected(ctx context.Context, req *connect.Request[billingv1.SetDisconnectedRequest]) (*connect.Response[billingv1.SetDisconnectedResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	c, err := s.store.GetCustomer(ctx, req.Msg.CustomerID)
	if err != nil {
		return nil, toConnectError(err)
	}
	c.IsDisconnected = req.Msg.Disconnected
	if err := s.store.UpdateCustomer(ctx, c); err != nil {
		slog.Error("SetDisconnected failed", "customer_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}

	out, status, err := s.reload(ctx, c.ID)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Connection state changed", "customer_id", c.ID, "disconnected", c.IsDisconnected)
	return connect.NewResponse(&billingv1.SetDisconnectedResponse{Customer: out, Status: status}), nil
}

// ListAccrued returns the customers carrying an accrued balance, newest
// first, with the sum of all balances.
func (s *AccountService) ListAccrued(ctx context.Context, req *connect.Request[billingv1.ListAccruedRequest]) (*connect.Response[billingv1.ListAccruedResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		slog.Error("ListAccrued failed", "error", err)
		return nil, toConnectError(err)
	}

	now := s.now()
	total := decimal.Zero
	var accounts []billingv1.Account
	for _, c := range customers {
		if c.AccruedAmount <= 0 {
			continue
		}
		total = total.Add(decimal.NewFromFloat(c.AccruedAmount))
		accounts = append(accounts, billingv1.Account{Customer: customerToWire(c), Status: string(s.classify(c, now))})
	}
	if accounts == nil {
		accounts = []billingv1.Account{}
	}

	return connect.NewResponse(&billingv1.ListAccruedResponse{
		Accounts:   paginate(accounts, req.Msg.Page),
		DataLength: len(accounts),
		Total:      money(total),
	}), nil
}

// DeductAccrued records a payment against an accrued balance. The amount
// paid moves from the balance to total earnings.
func (s *AccountService) DeductAccrued(ctx context.Context, req *connect.Request[billingv1.DeductAccruedRequest]) (*connect.Response[billingv1.DeductAccruedResponse], error) {
	if err := validateRequest(req.Msg); err != nil {
		return nil, err
	}

	c, err := s.store.GetCustomer(ctx, req.Msg.CustomerID)
	if err != nil {
		return nil, toConnectError(err)
	}

	accrued := decimal.NewFromFloat(c.AccruedAmount)
	if !accrued.IsPositive() {
		return nil, connect.NewError(connect.CodeFailedPrecondition, fmt.Errorf("customer %s has no accrued balance", c.ID))
	}

	paid := accrued
	if !req.Msg.Full {
		paid = decimal.NewFromFloat(req.Msg.Amount)
		if !paid.IsPositive() {
			return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("a partial deduction needs the amount paid"))
		}
		if paid.GreaterThan(accrued) {
			return nil, connect.NewError(connect.CodeInvalidArgument,
				fmt.Errorf("amount paid %s exceeds the accrued balance %s", paid, accrued))
		}
	}

	c.AccruedAmount = accrued.Sub(paid).InexactFloat64()
	c.TotalEarnings = decimal.NewFromFloat(c.TotalEarnings).Add(paid).InexactFloat64()
	if err := s.store.UpdateCustomer(ctx, c); err != nil {
		slog.Error("DeductAccrued failed", "customer_id", c.ID, "error", err)
		return nil, toConnectError(err)
	}

	out, status, err := s.reload(ctx, c.ID)
	if err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Accrued balance deducted",
		"customer_id", c.ID,
		"paid", paid.String(),
		"remaining", accrued.Sub(paid).String(),
	)
	return connect.NewResponse(&billingv1.DeductAccruedResponse{Customer: out, Status: status}), nil
}
