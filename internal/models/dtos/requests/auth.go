package requests

type RegisterRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ConfirmPasswordRequest re-verifies the signed-in user's own credential
// and refreshes the session confirmation stamp.
type ConfirmPasswordRequest struct {
	Password string `json:"password"`
}
