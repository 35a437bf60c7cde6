// Package billingv1connect wires the billing.v1 services onto Connect.
//
// Each service gets a handler interface, a constructor returning the mount
// path and http.Handler, and a typed client.
package billingv1connect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	billingv1 "github.com/elsafrica/billing/pkg/billingv1"
)

const (
	AccountServiceName = "billing.v1.AccountService"
	PackageServiceName = "billing.v1.PackageService"
	InvoiceServiceName = "billing.v1.InvoiceService"
	AssetServiceName   = "billing.v1.AssetService"
	UserServiceName    = "billing.v1.UserService"
	AuthServiceName    = "billing.v1.AuthService"
)

const (
	AccountServiceClassifyStatusProcedure  = "/billing.v1.AccountService/ClassifyStatus"
	AccountServiceClassifyBatchProcedure   = "/billing.v1.AccountService/ClassifyBatch"
	AccountServiceListAccountsProcedure    = "/billing.v1.AccountService/ListAccounts"
	AccountServiceCreateCustomerProcedure  = "/billing.v1.AccountService/CreateCustomer"
	AccountServiceGetCustomerProcedure     = "/billing.v1.AccountService/GetCustomer"
	AccountServiceUpdateCustomerProcedure  = "/billing.v1.AccountService/UpdateCustomer"
	AccountServiceDeleteCustomerProcedure  = "/billing.v1.AccountService/DeleteCustomer"
	AccountServiceRecordPaymentProcedure   = "/billing.v1.AccountService/RecordPayment"
	AccountServiceSetDisconnectedProcedure = "/billing.v1.AccountService/SetDisconnected"
	AccountServiceListAccruedProcedure     = "/billing.v1.AccountService/ListAccrued"
	AccountServiceDeductAccruedProcedure   = "/billing.v1.AccountService/DeductAccrued"

	PackageServiceCreatePackageProcedure = "/billing.v1.PackageService/CreatePackage"
	PackageServiceListPackagesProcedure  = "/billing.v1.PackageService/ListPackages"
	PackageServiceUpdatePackageProcedure = "/billing.v1.PackageService/UpdatePackage"
	PackageServiceDeletePackageProcedure = "/billing.v1.PackageService/DeletePackage"

	InvoiceServiceComputeTotalsProcedure     = "/billing.v1.InvoiceService/ComputeTotals"
	InvoiceServiceCreateInvoiceProcedure     = "/billing.v1.InvoiceService/CreateInvoice"
	InvoiceServiceGetInvoiceProcedure        = "/billing.v1.InvoiceService/GetInvoice"
	InvoiceServiceListInvoicesProcedure      = "/billing.v1.InvoiceService/ListInvoices"
	InvoiceServiceUpdateInvoiceProcedure     = "/billing.v1.InvoiceService/UpdateInvoice"
	InvoiceServiceDeleteInvoiceProcedure     = "/billing.v1.InvoiceService/DeleteInvoice"
	InvoiceServiceNextInvoiceNumberProcedure = "/billing.v1.InvoiceService/NextInvoiceNumber"

	AssetServiceCreateAssetProcedure = "/billing.v1.AssetService/CreateAsset"
	AssetServiceListAssetsProcedure  = "/billing.v1.AssetService/ListAssets"
	AssetServiceDeleteAssetProcedure = "/billing.v1.AssetService/DeleteAsset"

	UserServiceListUsersProcedure     = "/billing.v1.UserService/ListUsers"
	UserServiceSetUserActiveProcedure = "/billing.v1.UserService/SetUserActive"
	UserServiceDeleteUserProcedure    = "/billing.v1.UserService/DeleteUser"

	AuthServiceRegisterProcedure             = "/billing.v1.AuthService/Register"
	AuthServiceLoginProcedure                = "/billing.v1.AuthService/Login"
	AuthServiceMeProcedure                   = "/billing.v1.AuthService/Me"
	AuthServiceRequestPasswordResetProcedure = "/billing.v1.AuthService/RequestPasswordReset"
	AuthServiceConfirmPasswordResetProcedure = "/billing.v1.AuthService/ConfirmPasswordReset"
)

// PublicProcedures need no bearer token.
var PublicProcedures = []string{
	AccountServiceClassifyStatusProcedure,
	InvoiceServiceComputeTotalsProcedure,
	AuthServiceRegisterProcedure,
	AuthServiceLoginProcedure,
	AuthServiceRequestPasswordResetProcedure,
	AuthServiceConfirmPasswordResetProcedure,
}

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(Codec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
}

// route dispatches a service path prefix to its procedure handlers.
func route(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := handlers[r.URL.Path]; ok {
			h.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

func procedureURL(baseURL, procedure string) string {
	return strings.TrimRight(baseURL, "/") + procedure
}

// AccountServiceHandler is implemented by the account service.
type AccountServiceHandler interface {
	ClassifyStatus(context.Context, *connect.Request[billingv1.ClassifyStatusRequest]) (*connect.Response[billingv1.ClassifyStatusResponse], error)
	ClassifyBatch(context.Context, *connect.Request[billingv1.ClassifyBatchRequest]) (*connect.Response[billingv1.ClassifyBatchResponse], error)
	ListAccounts(context.Context, *connect.Request[billingv1.ListAccountsRequest]) (*connect.Response[billingv1.ListAccountsResponse], error)
	CreateCustomer(context.Context, *connect.Request[billingv1.CreateCustomerRequest]) (*connect.Response[billingv1.CreateCustomerResponse], error)
	GetCustomer(context.Context, *connect.Request[billingv1.GetCustomerRequest]) (*connect.Response[billingv1.GetCustomerResponse], error)
	UpdateCustomer(context.Context, *connect.Request[billingv1.UpdateCustomerRequest]) (*connect.Response[billingv1.UpdateCustomerResponse], error)
	DeleteCustomer(context.Context, *connect.Request[billingv1.DeleteCustomerRequest]) (*connect.Response[billingv1.DeleteCustomerResponse], error)
	RecordPayment(context.Context, *connect.Request[billingv1.RecordPaymentRequest]) (*connect.Response[billingv1.RecordPaymentResponse], error)
	SetDisconnected(context.Context, *connect.Request[billingv1.SetDisconnectedRequest]) (*connect.Response[billingv1.SetDisconnectedResponse], error)
	ListAccrued(context.Context, *connect.Request[billingv1.ListAccruedRequest]) (*connect.Response[billingv1.ListAccruedResponse], error)
	DeductAccrued(context.Context, *connect.Request[billingv1.DeductAccruedRequest]) (*connect.Response[billingv1.DeductAccruedResponse], error)
}

// NewAccountServiceHandler returns the mount path and handler for the account
// service.
func NewAccountServiceHandler(svc AccountServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	classifyStatus := NewClassifyStatusHandler(svc, opts...)
	opts = handlerOptions(opts)
	return "/" + AccountServiceName + "/", route(map[string]http.Handler{
		AccountServiceClassifyStatusProcedure:  classifyStatus,
		AccountServiceClassifyBatchProcedure:   connect.NewUnaryHandler(AccountServiceClassifyBatchProcedure, svc.ClassifyBatch, opts...),
		AccountServiceListAccountsProcedure:    connect.NewUnaryHandler(AccountServiceListAccountsProcedure, svc.ListAccounts, opts...),
		AccountServiceCreateCustomerProcedure:  connect.NewUnaryHandler(AccountServiceCreateCustomerProcedure, svc.CreateCustomer, opts...),
		AccountServiceGetCustomerProcedure:     connect.NewUnaryHandler(AccountServiceGetCustomerProcedure, svc.GetCustomer, opts...),
		AccountServiceUpdateCustomerProcedure:  connect.NewUnaryHandler(AccountServiceUpdateCustomerProcedure, svc.UpdateCustomer, opts...),
		AccountServiceDeleteCustomerProcedure:  connect.NewUnaryHandler(AccountServiceDeleteCustomerProcedure, svc.DeleteCustomer, opts...),
		AccountServiceRecordPaymentProcedure:   connect.NewUnaryHandler(AccountServiceRecordPaymentProcedure, svc.RecordPayment, opts...),
		AccountServiceSetDisconnectedProcedure: connect.NewUnaryHandler(AccountServiceSetDisconnectedProcedure, svc.SetDisconnected, opts...),
		AccountServiceListAccruedProcedure:     connect.NewUnaryHandler(AccountServiceListAccruedProcedure, svc.ListAccrued, opts...),
		AccountServiceDeductAccruedProcedure:   connect.NewUnaryHandler(AccountServiceDeductAccruedProcedure, svc.DeductAccrued, opts...),
	})
}

// NewClassifyStatusHandler returns the ClassifyStatus handler alone, for
// mounting under an additional path such as /status/classify.
func NewClassifyStatusHandler(svc AccountServiceHandler, opts ...connect.HandlerOption) http.Handler {
	return connect.NewUnaryHandler(AccountServiceClassifyStatusProcedure, svc.ClassifyStatus, handlerOptions(opts)...)
}

// AccountServiceClient calls the account service.
type AccountServiceClient struct {
	classifyStatus  *connect.Client[billingv1.ClassifyStatusRequest, billingv1.ClassifyStatusResponse]
	classifyBatch   *connect.Client[billingv1.ClassifyBatchRequest, billingv1.ClassifyBatchResponse]
	listAccounts    *connect.Client[billingv1.ListAccountsRequest, billingv1.ListAccountsResponse]
	createCustomer  *connect.Client[billingv1.CreateCustomerRequest, billingv1.CreateCustomerResponse]
	getCustomer     *connect.Client[billingv1.GetCustomerRequest, billingv1.GetCustomerResponse]
	updateCustomer  *connect.Client[billingv1.UpdateCustomerRequest, billingv1.UpdateCustomerResponse]
	deleteCustomer  *connect.Client[billingv1.DeleteCustomerRequest, billingv1.DeleteCustomerResponse]
	recordPayment   *connect.Client[billingv1.RecordPaymentRequest, billingv1.RecordPaymentResponse]
	setDisconnected *connect.Client[billingv1.SetDisconnectedRequest, billingv1.SetDisconnectedResponse]
	listAccrued     *connect.Client[billingv1.ListAccruedRequest, billingv1.ListAccruedResponse]
	deductAccrued   *connect.Client[billingv1.DeductAccruedRequest, billingv1.DeductAccruedResponse]
}

// NewAccountServiceClient creates a client for the account service at baseURL.
func NewAccountServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AccountServiceClient {
	opts = clientOptions(opts)
	return &AccountServiceClient{
		classifyStatus:  connect.NewClient[billingv1.ClassifyStatusRequest, billingv1.ClassifyStatusResponse](httpClient, procedureURL(baseURL, AccountServiceClassifyStatusProcedure), opts...),
		classifyBatch:   connect.NewClient[billingv1.ClassifyBatchRequest, billingv1.ClassifyBatchResponse](httpClient, procedureURL(baseURL, AccountServiceClassifyBatchProcedure), opts...),
		listAccounts:    connect.NewClient[billingv1.ListAccountsRequest, billingv1.ListAccountsResponse](httpClient, procedureURL(baseURL, AccountServiceListAccountsProcedure), opts...),
		createCustomer:  connect.NewClient[billingv1.CreateCustomerRequest, billingv1.CreateCustomerResponse](httpClient, procedureURL(baseURL, AccountServiceCreateCustomerProcedure), opts...),
		getCustomer:     connect.NewClient[billingv1.GetCustomerRequest, billingv1.GetCustomerResponse](httpClient, procedureURL(baseURL, AccountServiceGetCustomerProcedure), opts...),
		updateCustomer:  connect.NewClient[billingv1.UpdateCustomerRequest, billingv1.UpdateCustomerResponse](httpClient, procedureURL(baseURL, AccountServiceUpdateCustomerProcedure), opts...),
		deleteCustomer:  connect.NewClient[billingv1.DeleteCustomerRequest, billingv1.DeleteCustomerResponse](httpClient, procedureURL(baseURL, AccountServiceDeleteCustomerProcedure), opts...),
		recordPayment:   connect.NewClient[billingv1.RecordPaymentRequest, billingv1.RecordPaymentResponse](httpClient, procedureURL(baseURL, AccountServiceRecordPaymentProcedure), opts...),
		setDisconnected: connect.NewClient[billingv1.SetDisconnectedRequest, billingv1.SetDisconnectedResponse](httpClient, procedureURL(baseURL, AccountServiceSetDisconnectedProcedure), opts...),
		listAccrued:     connect.NewClient[billingv1.ListAccruedRequest, billingv1.ListAccruedResponse](httpClient, procedureURL(baseURL, AccountServiceListAccruedProcedure), opts...),
		deductAccrued:   connect.NewClient[billingv1.DeductAccruedRequest, billingv1.DeductAccruedResponse](httpClient, procedureURL(baseURL, AccountServiceDeductAccruedProcedure), opts...),
	}
}

func (c *AccountServiceClient) ClassifyStatus(ctx context.Context, req *connect.Request[billingv1.ClassifyStatusRequest]) (*connect.Response[billingv1.ClassifyStatusResponse], error) {
	return c.classifyStatus.CallUnary(ctx, req)
}

func (c *AccountServiceClient) ClassifyBatch(ctx context.Context, req *connect.Request[billingv1.ClassifyBatchRequest]) (*connect.Response[billingv1.ClassifyBatchResponse], error) {
	return c.classifyBatch.CallUnary(ctx, req)
}

func (c *AccountServiceClient) ListAccounts(ctx context.Context, req *connect.Request[billingv1.ListAccountsRequest]) (*connect.Response[billingv1.ListAccountsResponse], error) {
	return c.listAccounts.CallUnary(ctx, req)
}

func (c *AccountServiceClient) CreateCustomer(ctx context.Context, req *connect.Request[billingv1.CreateCustomerRequest]) (*connect.Response[billingv1.CreateCustomerResponse], error) {
	return c.createCustomer.CallUnary(ctx, req)
}

func (c *AccountServiceClient) GetCustomer(ctx context.Context, req *connect.Request[billingv1.GetCustomerRequest]) (*connect.Response[billingv1.GetCustomerResponse], error) {
	return c.getCustomer.CallUnary(ctx, req)
}

func (c *AccountServiceClient) UpdateCustomer(ctx context.Context, req *connect.Request[billingv1.UpdateCustomerRequest]) (*connect.Response[billingv1.UpdateCustomerResponse], error) {
	return c.updateCustomer.CallUnary(ctx, req)
}

func (c *AccountServiceClient) DeleteCustomer(ctx context.Context, req *connect.Request[billingv1.DeleteCustomerRequest]) (*connect.Response[billingv1.DeleteCustomerResponse], error) {
	return c.deleteCustomer.CallUnary(ctx, req)
}

func (c *AccountServiceClient) RecordPayment(ctx context.Context, req *connect.Request[billingv1.RecordPaymentRequest]) (*connect.Response[billingv1.RecordPaymentResponse], error) {
	return c.recordPayment.CallUnary(ctx, req)
}

func (c *AccountServiceClient) SetDisconnected(ctx context.Context, req *connect.Request[billingv1.SetDisconnectedRequest]) (*connect.Response[billingv1.SetDisconnectedResponse], error) {
	return c.setDisconnected.CallUnary(ctx, req)
}

func (c *AccountServiceClient) ListAccrued(ctx context.Context, req *connect.Request[billingv1.ListAccruedRequest]) (*connect.Response[billingv1.ListAccruedResponse], error) {
	return c.listAccrued.CallUnary(ctx, req)
}

func (c *AccountServiceClient) DeductAccrued(ctx context.Context, req *connect.Request[billingv1.DeductAccruedRequest]) (*connect.Response[billingv1.DeductAccruedResponse], error) {
	return c.deductAccrued.CallUnary(ctx, req)
}

// PackageServiceHandler is implemented by the package service.
type PackageServiceHandler interface {
	CreatePackage(context.Context, *connect.Request[billingv1.CreatePackageRequest]) (*connect.Response[billingv1.CreatePackageResponse], error)
	ListPackages(context.Context, *connect.Request[billingv1.ListPackagesRequest]) (*connect.Response[billingv1.ListPackagesResponse], error)
	UpdatePackage(context.Context, *connect.Request[billingv1.UpdatePackageRequest]) (*connect.Response[billingv1.UpdatePackageResponse], error)
	DeletePackage(context.Context, *connect.Request[billingv1.DeletePackageRequest]) (*connect.Response[billingv1.DeletePackageResponse], error)
}

// NewPackageServiceHandler returns the mount path and handler for the package
// service.
func NewPackageServiceHandler(svc PackageServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + PackageServiceName + "/", route(map[string]http.Handler{
		PackageServiceCreatePackageProcedure: connect.NewUnaryHandler(PackageServiceCreatePackageProcedure, svc.CreatePackage, opts...),
		PackageServiceListPackagesProcedure:  connect.NewUnaryHandler(PackageServiceListPackagesProcedure, svc.ListPackages, opts...),
		PackageServiceUpdatePackageProcedure: connect.NewUnaryHandler(PackageServiceUpdatePackageProcedure, svc.UpdatePackage, opts...),
		PackageServiceDeletePackageProcedure: connect.NewUnaryHandler(PackageServiceDeletePackageProcedure, svc.DeletePackage, opts...),
	})
}

// PackageServiceClient calls the package service.
type PackageServiceClient struct {
	createPackage *connect.Client[billingv1.CreatePackageRequest, billingv1.CreatePackageResponse]
	listPackages  *connect.Client[billingv1.ListPackagesRequest, billingv1.ListPackagesResponse]
	updatePackage *connect.Client[billingv1.UpdatePackageRequest, billingv1.UpdatePackageResponse]
	deletePackage *connect.Client[billingv1.DeletePackageRequest, billingv1.DeletePackageResponse]
}

// NewPackageServiceClient creates a client for the package service at baseURL.
func NewPackageServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *PackageServiceClient {
	opts = clientOptions(opts)
	return &PackageServiceClient{
		createPackage: connect.NewClient[billingv1.CreatePackageRequest, billingv1.CreatePackageResponse](httpClient, procedureURL(baseURL, PackageServiceCreatePackageProcedure), opts...),
		listPackages:  connect.NewClient[billingv1.ListPackagesRequest, billingv1.ListPackagesResponse](httpClient, procedureURL(baseURL, PackageServiceListPackagesProcedure), opts...),
		updatePackage: connect.NewClient[billingv1.UpdatePackageRequest, billingv1.UpdatePackageResponse](httpClient, procedureURL(baseURL, PackageServiceUpdatePackageProcedure), opts...),
		deletePackage: connect.NewClient[billingv1.DeletePackageRequest, billingv1.DeletePackageResponse](httpClient, procedureURL(baseURL, PackageServiceDeletePackageProcedure), opts...),
	}
}

func (c *PackageServiceClient) CreatePackage(ctx context.Context, req *connect.Request[billingv1.CreatePackageRequest]) (*connect.Response[billingv1.CreatePackageResponse], error) {
	return c.createPackage.CallUnary(ctx, req)
}

func (c *PackageServiceClient) ListPackages(ctx context.Context, req *connect.Request[billingv1.ListPackagesRequest]) (*connect.Response[billingv1.ListPackagesResponse], error) {
	return c.listPackages.CallUnary(ctx, req)
}

func (c *PackageServiceClient) UpdatePackage(ctx context.Context, req *connect.Request[billingv1.UpdatePackageRequest]) (*connect.Response[billingv1.UpdatePackageResponse], error) {
	return c.updatePackage.CallUnary(ctx, req)
}

func (c *PackageServiceClient) DeletePackage(ctx context.Context, req *connect.Request[billingv1.DeletePackageRequest]) (*connect.Response[billingv1.DeletePackageResponse], error) {
	return c.deletePackage.CallUnary(ctx, req)
}

// InvoiceServiceHandler is implemented by the invoice service.
type InvoiceServiceHandler interface {
	ComputeTotals(context.Context, *connect.Request[billingv1.ComputeTotalsRequest]) (*connect.Response[billingv1.ComputeTotalsResponse], error)
	CreateInvoice(context.Context, *connect.Request[billingv1.CreateInvoiceRequest]) (*connect.Response[billingv1.CreateInvoiceResponse], error)
	GetInvoice(context.Context, *connect.Request[billingv1.GetInvoiceRequest]) (*connect.Response[billingv1.GetInvoiceResponse], error)
	ListInvoices(context.Context, *connect.Request[billingv1.ListInvoicesRequest]) (*connect.Response[billingv1.ListInvoicesResponse], error)
	UpdateInvoice(context.Context, *connect.Request[billingv1.UpdateInvoiceRequest]) (*connect.Response[billingv1.UpdateInvoiceResponse], error)
	DeleteInvoice(context.Context, *connect.Request[billingv1.DeleteInvoiceRequest]) (*connect.Response[billingv1.DeleteInvoiceResponse], error)
	NextInvoiceNumber(context.Context, *connect.Request[billingv1.NextInvoiceNumberRequest]) (*connect.Response[billingv1.NextInvoiceNumberResponse], error)
}

// NewInvoiceServiceHandler returns the mount path and handler for the invoice
// service.
func NewInvoiceServiceHandler(svc InvoiceServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	computeTotals := NewComputeTotalsHandler(svc, opts...)
	opts = handlerOptions(opts)
	return "/" + InvoiceServiceName + "/", route(map[string]http.Handler{
		InvoiceServiceComputeTotalsProcedure:     computeTotals,
		InvoiceServiceCreateInvoiceProcedure:     connect.NewUnaryHandler(InvoiceServiceCreateInvoiceProcedure, svc.CreateInvoice, opts...),
		InvoiceServiceGetInvoiceProcedure:        connect.NewUnaryHandler(InvoiceServiceGetInvoiceProcedure, svc.GetInvoice, opts...),
		InvoiceServiceListInvoicesProcedure:      connect.NewUnaryHandler(InvoiceServiceListInvoicesProcedure, svc.ListInvoices, opts...),
		InvoiceServiceUpdateInvoiceProcedure:     connect.NewUnaryHandler(InvoiceServiceUpdateInvoiceProcedure, svc.UpdateInvoice, opts...),
		InvoiceServiceDeleteInvoiceProcedure:     connect.NewUnaryHandler(InvoiceServiceDeleteInvoiceProcedure, svc.DeleteInvoice, opts...),
		InvoiceServiceNextInvoiceNumberProcedure: connect.NewUnaryHandler(InvoiceServiceNextInvoiceNumberProcedure, svc.NextInvoiceNumber, opts...),
	})
}

// NewComputeTotalsHandler returns the ComputeTotals handler alone, for
// mounting under an additional path such as /invoice/totals.
func NewComputeTotalsHandler(svc InvoiceServiceHandler, opts ...connect.HandlerOption) http.Handler {
	return connect.NewUnaryHandler(InvoiceServiceComputeTotalsProcedure, svc.ComputeTotals, handlerOptions(opts)...)
}

// InvoiceServiceClient calls the invoice service.
type InvoiceServiceClient struct {
	computeTotals     *connect.Client[billingv1.ComputeTotalsRequest, billingv1.ComputeTotalsResponse]
	createInvoice     *connect.Client[billingv1.CreateInvoiceRequest, billingv1.CreateInvoiceResponse]
	getInvoice        *connect.Client[billingv1.GetInvoiceRequest, billingv1.GetInvoiceResponse]
	listInvoices      *connect.Client[billingv1.ListInvoicesRequest, billingv1.ListInvoicesResponse]
	updateInvoice     *connect.Client[billingv1.UpdateInvoiceRequest, billingv1.UpdateInvoiceResponse]
	deleteInvoice     *connect.Client[billingv1.DeleteInvoiceRequest, billingv1.DeleteInvoiceResponse]
	nextInvoiceNumber *connect.Client[billingv1.NextInvoiceNumberRequest, billingv1.NextInvoiceNumberResponse]
}

// NewInvoiceServiceClient creates a client for the invoice service at baseURL.
func NewInvoiceServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *InvoiceServiceClient {
	opts = clientOptions(opts)
	return &InvoiceServiceClient{
		computeTotals:     connect.NewClient[billingv1.ComputeTotalsRequest, billingv1.ComputeTotalsResponse](httpClient, procedureURL(baseURL, InvoiceServiceComputeTotalsProcedure), opts...),
		createInvoice:     connect.NewClient[billingv1.CreateInvoiceRequest, billingv1.CreateInvoiceResponse](httpClient, procedureURL(baseURL, InvoiceServiceCreateInvoiceProcedure), opts...),
		getInvoice:        connect.NewClient[billingv1.GetInvoiceRequest, billingv1.GetInvoiceResponse](httpClient, procedureURL(baseURL, InvoiceServiceGetInvoiceProcedure), opts...),
		listInvoices:      connect.NewClient[billingv1.ListInvoicesRequest, billingv1.ListInvoicesResponse](httpClient, procedureURL(baseURL, InvoiceServiceListInvoicesProcedure), opts...),
		updateInvoice:     connect.NewClient[billingv1.UpdateInvoiceRequest, billingv1.UpdateInvoiceResponse](httpClient, procedureURL(baseURL, InvoiceServiceUpdateInvoiceProcedure), opts...),
		deleteInvoice:     connect.NewClient[billingv1.DeleteInvoiceRequest, billingv1.DeleteInvoiceResponse](httpClient, procedureURL(baseURL, InvoiceServiceDeleteInvoiceProcedure), opts...),
		nextInvoiceNumber: connect.NewClient[billingv1.NextInvoiceNumberRequest, billingv1.NextInvoiceNumberResponse](httpClient, procedureURL(baseURL, InvoiceServiceNextInvoiceNumberProcedure), opts...),
	}
}

func (c *InvoiceServiceClient) ComputeTotals(ctx context.Context, req *connect.Request[billingv1.ComputeTotalsRequest]) (*connect.Response[billingv1.ComputeTotalsResponse], error) {
	return c.computeTotals.CallUnary(ctx, req)
}

func (c *InvoiceServiceClient) CreateInvoice(ctx context.Context, req *connect.Request[billingv1.CreateInvoiceRequest]) (*connect.Response[billingv1.CreateInvoiceResponse], error) {
	return c.createInvoice.CallUnary(ctx, req)
}

func (c *InvoiceServiceClient) GetInvoice(ctx context.Context, req *connect.Request[billingv1.GetInvoiceRequest]) (*connect.Response[billingv1.GetInvoiceResponse], error) {
	return c.getInvoice.CallUnary(ctx, req)
}

func (c *InvoiceServiceClient) ListInvoices(ctx context.Context, req *connect.Request[billingv1.ListInvoicesRequest]) (*connect.Response[billingv1.ListInvoicesResponse], error) {
	return c.listInvoices.CallUnary(ctx, req)
}

func (c *InvoiceServiceClient) UpdateInvoice(ctx context.Context, req *connect.Request[billingv1.UpdateInvoiceRequest]) (*connect.Response[billingv1.UpdateInvoiceResponse], error) {
	return c.updateInvoice.CallUnary(ctx, req)
}

func (c *InvoiceServiceClient) DeleteInvoice(ctx context.Context, req *connect.Request[billingv1.DeleteInvoiceRequest]) (*connect.Response[billingv1.DeleteInvoiceResponse], error) {
	return c.deleteInvoice.CallUnary(ctx, req)
}

func (c *InvoiceServiceClient) NextInvoiceNumber(ctx context.Context, req *connect.Request[billingv1.NextInvoiceNumberRequest]) (*connect.Response[billingv1.NextInvoiceNumberResponse], error) {
	return c.nextInvoiceNumber.CallUnary(ctx, req)
}

// AssetServiceHandler is implemented by the asset service.
type AssetServiceHandler interface {
	CreateAsset(context.Context, *connect.Request[billingv1.CreateAssetRequest]) (*connect.Response[billingv1.CreateAssetResponse], error)
	ListAssets(context.Context, *connect.Request[billingv1.ListAssetsRequest]) (*connect.Response[billingv1.ListAssetsResponse], error)
	DeleteAsset(context.Context, *connect.Request[billingv1.DeleteAssetRequest]) (*connect.Response[billingv1.DeleteAssetResponse], error)
}

// NewAssetServiceHandler returns the mount path and handler for the asset
// service.
func NewAssetServiceHandler(svc AssetServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + AssetServiceName + "/", route(map[string]http.Handler{
		AssetServiceCreateAssetProcedure: connect.NewUnaryHandler(AssetServiceCreateAssetProcedure, svc.CreateAsset, opts...),
		AssetServiceListAssetsProcedure:  connect.NewUnaryHandler(AssetServiceListAssetsProcedure, svc.ListAssets, opts...),
		AssetServiceDeleteAssetProcedure: connect.NewUnaryHandler(AssetServiceDeleteAssetProcedure, svc.DeleteAsset, opts...),
	})
}

// AssetServiceClient calls the asset service.
type AssetServiceClient struct {
	createAsset *connect.Client[billingv1.CreateAssetRequest, billingv1.CreateAssetResponse]
	listAssets  *connect.Client[billingv1.ListAssetsRequest, billingv1.ListAssetsResponse]
	deleteAsset *connect.Client[billingv1.DeleteAssetRequest, billingv1.DeleteAssetResponse]
}

// NewAssetServiceClient creates a client for the asset service at baseURL.
func NewAssetServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AssetServiceClient {
	opts = clientOptions(opts)
	return &AssetServiceClient{
		createAsset: connect.NewClient[billingv1.CreateAssetRequest, billingv1.CreateAssetResponse](httpClient, procedureURL(baseURL, AssetServiceCreateAssetProcedure), opts...),
		listAssets:  connect.NewClient[billingv1.ListAssetsRequest, billingv1.ListAssetsResponse](httpClient, procedureURL(baseURL, AssetServiceListAssetsProcedure), opts...),
		deleteAsset: connect.NewClient[billingv1.DeleteAssetRequest, billingv1.DeleteAssetResponse](httpClient, procedureURL(baseURL, AssetServiceDeleteAssetProcedure), opts...),
	}
}

func (c *AssetServiceClient) CreateAsset(ctx context.Context, req *connect.Request[billingv1.CreateAssetRequest]) (*connect.Response[billingv1.CreateAssetResponse], error) {
	return c.createAsset.CallUnary(ctx, req)
}

func (c *AssetServiceClient) ListAssets(ctx context.Context, req *connect.Request[billingv1.ListAssetsRequest]) (*connect.Response[billingv1.ListAssetsResponse], error) {
	return c.listAssets.CallUnary(ctx, req)
}

func (c *AssetServiceClient) DeleteAsset(ctx context.Context, req *connect.Request[billingv1.DeleteAssetRequest]) (*connect.Response[billingv1.DeleteAssetResponse], error) {
	return c.deleteAsset.CallUnary(ctx, req)
}

// UserServiceHandler is implemented by the user service.
type UserServiceHandler interface {
	ListUsers(context.Context, *connect.Request[billingv1.ListUsersRequest]) (*connect.Response[billingv1.ListUsersResponse], error)
	SetUserActive(context.Context, *connect.Request[billingv1.SetUserActiveRequest]) (*connect.Response[billingv1.SetUserActiveResponse], error)
	DeleteUser(context.Context, *connect.Request[billingv1.DeleteUserRequest]) (*connect.Response[billingv1.DeleteUserResponse], error)
}

// NewUserServiceHandler returns the mount path and handler for the user
// service.
func NewUserServiceHandler(svc UserServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + UserServiceName + "/", route(map[string]http.Handler{
		UserServiceListUsersProcedure:     connect.NewUnaryHandler(UserServiceListUsersProcedure, svc.ListUsers, opts...),
		UserServiceSetUserActiveProcedure: connect.NewUnaryHandler(UserServiceSetUserActiveProcedure, svc.SetUserActive, opts...),
		UserServiceDeleteUserProcedure:    connect.NewUnaryHandler(UserServiceDeleteUserProcedure, svc.DeleteUser, opts...),
	})
}

// UserServiceClient calls the user service.
type UserServiceClient struct {
	listUsers     *connect.Client[billingv1.ListUsersRequest, billingv1.ListUsersResponse]
	setUserActive *connect.Client[billingv1.SetUserActiveRequest, billingv1.SetUserActiveResponse]
	deleteUser    *connect.Client[billingv1.DeleteUserRequest, billingv1.DeleteUserResponse]
}

// NewUserServiceClient creates a client for the user service at baseURL.
func NewUserServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *UserServiceClient {
	opts = clientOptions(opts)
	return &UserServiceClient{
		listUsers:     connect.NewClient[billingv1.ListUsersRequest, billingv1.ListUsersResponse](httpClient, procedureURL(baseURL, UserServiceListUsersProcedure), opts...),
		setUserActive: connect.NewClient[billingv1.SetUserActiveRequest, billingv1.SetUserActiveResponse](httpClient, procedureURL(baseURL, UserServiceSetUserActiveProcedure), opts...),
		deleteUser:    connect.NewClient[billingv1.DeleteUserRequest, billingv1.DeleteUserResponse](httpClient, procedureURL(baseURL, UserServiceDeleteUserProcedure), opts...),
	}
}

func (c *UserServiceClient) ListUsers(ctx context.Context, req *connect.Request[billingv1.ListUsersRequest]) (*connect.Response[billingv1.ListUsersResponse], error) {
	return c.listUsers.CallUnary(ctx, req)
}

func (c *UserServiceClient) SetUserActive(ctx context.Context, req *connect.Request[billingv1.SetUserActiveRequest]) (*connect.Response[billingv1.SetUserActiveResponse], error) {
	return c.setUserActive.CallUnary(ctx, req)
}

func (c *UserServiceClient) DeleteUser(ctx context.Context, req *connect.Request[billingv1.DeleteUserRequest]) (*connect.Response[billingv1.DeleteUserResponse], error) {
	return c.deleteUser.CallUnary(ctx, req)
}

// AuthServiceHandler is implemented by the auth service.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[billingv1.RegisterRequest]) (*connect.Response[billingv1.RegisterResponse], error)
	Login(context.Context, *connect.Request[billingv1.LoginRequest]) (*connect.Response[billingv1.LoginResponse], error)
	Me(context.Context, *connect.Request[billingv1.MeRequest]) (*connect.Response[billingv1.MeResponse], error)
	RequestPasswordReset(context.Context, *connect.Request[billingv1.RequestPasswordResetRequest]) (*connect.Response[billingv1.RequestPasswordResetResponse], error)
	ConfirmPasswordReset(context.Context, *connect.Request[billingv1.ConfirmPasswordResetRequest]) (*connect.Response[billingv1.ConfirmPasswordResetResponse], error)
}

// NewAuthServiceHandler returns the mount path and handler for the auth
// service.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + AuthServiceName + "/", route(map[string]http.Handler{
		AuthServiceRegisterProcedure:             connect.NewUnaryHandler(AuthServiceRegisterProcedure, svc.Register, opts...),
		AuthServiceLoginProcedure:                connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...),
		AuthServiceMeProcedure:                   connect.NewUnaryHandler(AuthServiceMeProcedure, svc.Me, opts...),
		AuthServiceRequestPasswordResetProcedure: connect.NewUnaryHandler(AuthServiceRequestPasswordResetProcedure, svc.RequestPasswordReset, opts...),
		AuthServiceConfirmPasswordResetProcedure: connect.NewUnaryHandler(AuthServiceConfirmPasswordResetProcedure, svc.ConfirmPasswordReset, opts...),
	})
}

// AuthServiceClient calls the auth service.
type AuthServiceClient struct {
	register             *connect.Client[billingv1.RegisterRequest, billingv1.RegisterResponse]
	login                *connect.Client[billingv1.LoginRequest, billingv1.LoginResponse]
	me                   *connect.Client[billingv1.MeRequest, billingv1.MeResponse]
	requestPasswordReset *connect.Client[billingv1.RequestPasswordResetRequest, billingv1.RequestPasswordResetResponse]
	confirmPasswordReset *connect.Client[billingv1.ConfirmPasswordResetRequest, billingv1.ConfirmPasswordResetResponse]
}

// NewAuthServiceClient creates a client for the auth service at baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	opts = clientOptions(opts)
	return &AuthServiceClient{
		register:             connect.NewClient[billingv1.RegisterRequest, billingv1.RegisterResponse](httpClient, procedureURL(baseURL, AuthServiceRegisterProcedure), opts...),
		login:                connect.NewClient[billingv1.LoginRequest, billingv1.LoginResponse](httpClient, procedureURL(baseURL, AuthServiceLoginProcedure), opts...),
		me:                   connect.NewClient[billingv1.MeRequest, billingv1.MeResponse](httpClient, procedureURL(baseURL, AuthServiceMeProcedure), opts...),
		requestPasswordReset: connect.NewClient[billingv1.RequestPasswordResetRequest, billingv1.RequestPasswordResetResponse](httpClient, procedureURL(baseURL, AuthServiceRequestPasswordResetProcedure), opts...),
		confirmPasswordReset: connect.NewClient[billingv1.ConfirmPasswordResetRequest, billingv1.ConfirmPasswordResetResponse](httpClient, procedureURL(baseURL, AuthServiceConfirmPasswordResetProcedure), opts...),
	}
}

func (c *AuthServiceClient) Register(ctx context.Context, req *connect.Request[billingv1.RegisterRequest]) (*connect.Response[billingv1.RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *AuthServiceClient) Login(ctx context.Context, req *connect.Request[billingv1.LoginRequest]) (*connect.Response[billingv1.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *AuthServiceClient) Me(ctx context.Context, req *connect.Request[billingv1.MeRequest]) (*connect.Response[billingv1.MeResponse], error) {
	return c.me.CallUnary(ctx, req)
}

func (c *AuthServiceClient) RequestPasswordReset(ctx context.Context, req *connect.Request[billingv1.RequestPasswordResetRequest]) (*connect.Response[billingv1.RequestPasswordResetResponse], error) {
	return c.requestPasswordReset.CallUnary(ctx, req)
}

func (c *AuthServiceClient) ConfirmPasswordReset(ctx context.Context, req *connect.Request[billingv1.ConfirmPasswordResetRequest]) (*connect.Response[billingv1.ConfirmPasswordResetResponse], error) {
	return c.confirmPasswordReset.CallUnary(ctx, req)
}
