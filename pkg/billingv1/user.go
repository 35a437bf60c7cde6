package billingv1

type ListUsersRequest struct {
	Page
}

type ListUsersResponse struct {
	Users      []User `json:"users"`
	DataLength int    `json:"dataLength"`
}

// SetUserActiveRequest activates or deactivates an operator.
type SetUserActiveRequest struct {
	ID     string `json:"id" validate:"required"`
	Active bool   `json:"active"`
}

type SetUserActiveResponse struct {
	User User `json:"user"`
}

type DeleteUserRequest struct {
	ID string `json:"id" validate:"required"`
}

type DeleteUserResponse struct{}
