// Package billingv1 defines the request and response messages of the
// billing.v1 RPC API. Messages travel as JSON; field names are camelCase.
//
// Money values in responses are decimal strings rendered as JSON numbers
// (json.Number) so no precision is lost on the way out.
package billingv1
