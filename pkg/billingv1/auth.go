package billingv1

// User is a dashboard operator.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Active      bool   `json:"active"`
	IsAdmin     bool   `json:"isAdmin"`
	CreatedAt   int64  `json:"createdAt"`
}

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// RegisterResponse carries a token only when the new account is already
// active, which is the case for the first operator alone. Everyone else
// waits for an admin.
type RegisterResponse struct {
	User      User   `json:"user"`
	Token     string `json:"token,omitempty"`
	ExpiresAt string `json:"expiresAt,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the token and its RFC 3339 expiry.
type LoginResponse struct {
	User      User   `json:"user"`
	Token     string `json:"token"`
	ExpiresAt string `json:"expiresAt"`
}

type MeRequest struct{}

type MeResponse struct {
	User User `json:"user"`
}

// RequestPasswordResetRequest mails a reset link. The response is the same
// whether or not the email is registered.
type RequestPasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type RequestPasswordResetResponse struct{}

// ConfirmPasswordResetRequest sets a new password using the token from the
// reset link.
type ConfirmPasswordResetRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ConfirmPasswordResetResponse struct{}
