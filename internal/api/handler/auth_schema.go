package handler

// registerRequest is the public sign-up payload. It carries no role: every
// self-registered account is a plain user, admins come from `infohub users create`.
type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Email    string `json:"email"    validate:"required,email,max=100"`
}

// loginRequest accepts both OAuth2 password-form fields and JSON.
type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
