package requests

// UserCreateRequest is the admin "create user" payload. ConfirmPassword is
// the actor's own credential for the re-confirmation gate, not the new
// user's password.
type UserCreateRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Password        string   `json:"password,omitempty"`
	Roles           []string `json:"roles,omitempty"`
	ConfirmPassword string   `json:"confirm_password,omitempty"`
}

type UserUpdateRequest struct {
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Roles           *[]string `json:"roles,omitempty"`
	ConfirmPassword string    `json:"confirm_password,omitempty"`
}

type SetPasswordRequest struct {
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	ConfirmPassword      string `json:"confirm_password,omitempty"`
}

type BulkUpdateItem struct {
	ID    uint      `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Roles *[]string `json:"roles,omitempty"`
}

type BulkUpdateRequest struct {
	Items           []BulkUpdateItem `json:"items"`
	ConfirmPassword string           `json:"confirm_password,omitempty"`
}
