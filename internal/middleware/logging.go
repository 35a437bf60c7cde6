package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
)

// Loggable is implemented by billing messages that carry identifiers worth
// a log line, such as a customer ID or an invoice number.
type Loggable interface {
	LogAttrs() []slog.Attr
}

// LoggingInterceptor writes one line per billing RPC: service, method,
// operator, duration and the identifiers the request and response expose.
// Rejected calls log at Warn with their code; internal failures at Error.
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			ctx = withCaller(ctx)

			resp, err := next(ctx, req)

			service, method := splitProcedure(req.Spec().Procedure)
			attrs := []slog.Attr{
				slog.String("service", service),
				slog.String("method", method),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			}
			if userID := GetUserID(ctx); userID != "" {
				attrs = append(attrs, slog.String("user_id", userID), slog.String("email", GetEmail(ctx)))
			}
			attrs = appendMessageAttrs(attrs, req.Any())

			level, msg := slog.LevelInfo, "RPC ok"
			var connectErr *connect.Error
			switch {
			case err == nil:
				if resp != nil {
					attrs = appendMessageAttrs(attrs, resp.Any())
				}
			case errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal && connectErr.Code() != connect.CodeUnknown:
				level, msg = slog.LevelWarn, "RPC rejected"
				attrs = append(attrs, slog.String("code", connectErr.Code().String()), slog.String("error", connectErr.Message()))
			default:
				level, msg = slog.LevelError, "RPC failed"
				attrs = append(attrs, slog.String("error", err.Error()))
			}

			logger.LogAttrs(ctx, level, msg, attrs...)
			return resp, err
		}
	}
}

// splitProcedure turns "/billing.v1.InvoiceService/CreateInvoice" into
// ("InvoiceService", "CreateInvoice").
func splitProcedure(procedure string) (service, method string) {
	full, method, _ := strings.Cut(strings.TrimPrefix(procedure, "/"), "/")
	if i := strings.LastIndex(full, "."); i >= 0 {
		full = full[i+1:]
	}
	return full, method
}

func appendMessageAttrs(attrs []slog.Attr, msg any) []slog.Attr {
	if l, ok := msg.(Loggable); ok {
		attrs = append(attrs, l.LogAttrs()...)
	}
	return attrs
}
