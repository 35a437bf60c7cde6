package billingv1

import "log/slog"

// The LogAttrs methods expose the identifiers worth recording for a call.
// Secrets such as passwords and reset tokens never appear here.

func (r *ClassifyBatchRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.Int("accounts", len(r.Accounts))}
}

func (r *ListAccountsRequest) LogAttrs() []slog.Attr {
	if r.Status == "" {
		return nil
	}
	return []slog.Attr{slog.String("status_filter", r.Status)}
}

func (r *ListAccountsResponse) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.Int("data_length", r.DataLength)}
}

func (r *CreateCustomerResponse) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("customer_id", r.Customer.ID), slog.String("account_status", r.Status)}
}

func (r *GetCustomerRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("customer_id", r.ID)}
}

func (r *UpdateCustomerRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("customer_id", r.ID)}
}

func (r *DeleteCustomerRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("customer_id", r.ID)}
}

func (r *RecordPaymentRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("customer_id", r.CustomerID), slog.Float64("amount", r.Amount)}
}

func (r *RecordPaymentResponse) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("account_status", r.Status)}
}

func (r *SetDisconnectedRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("customer_id", r.CustomerID), slog.Bool("disconnected", r.Disconnected)}
}

func (r *DeductAccruedRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("customer_id", r.CustomerID),
		slog.Bool("full", r.Full),
		slog.Float64("amount", r.Amount),
	}
}

func (r *ListAccruedResponse) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.Int("data_length", r.DataLength), slog.String("accrued_total", r.Total.String())}
}

func (r *CreatePackageRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("package_name", r.Name)}
}

func (r *UpdatePackageRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("package_id", r.ID)}
}

func (r *DeletePackageRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("package_id", r.ID)}
}

func (r *CreateInvoiceRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("invoice_number", r.Invoice.Number), slog.Int("items", len(r.Invoice.Items))}
}

func (r *CreateInvoiceResponse) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("invoice_id", r.Invoice.ID), slog.String("grand_total", r.Invoice.Totals.GrandTotal.String())}
}

func (r *GetInvoiceRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("invoice_id", r.ID)}
}

func (r *UpdateInvoiceRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("invoice_id", r.ID), slog.String("invoice_number", r.Invoice.Number)}
}

func (r *DeleteInvoiceRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("invoice_id", r.ID)}
}

func (r *NextInvoiceNumberResponse) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("invoice_number", r.Number)}
}

func (r *CreateAssetRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("asset_type", r.Asset.Type), slog.String("belongs_to", r.Asset.BelongsTo)}
}

func (r *DeleteAssetRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("asset_id", r.ID)}
}

func (r *SetUserActiveRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("target_user_id", r.ID), slog.Bool("active", r.Active)}
}

func (r *DeleteUserRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("target_user_id", r.ID)}
}

func (r *RegisterRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("login_email", r.Email)}
}

func (r *LoginRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("login_email", r.Email)}
}

func (r *RequestPasswordResetRequest) LogAttrs() []slog.Attr {
	return []slog.Attr{slog.String("login_email", r.Email)}
}
