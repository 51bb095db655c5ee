package auth

// LoginRequest is the body of POST /auth/token/login/.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse carries the issued access token.
type TokenResponse struct {
	AuthToken string `json:"auth_token"`
	ExpiresIn int64  `json:"expires_in"`
}

// ErrorDetailsSwagger describes error payload.
type ErrorDetailsSwagger struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ErrorResponseSwagger describes common error response.
type ErrorResponseSwagger struct {
	Success bool                `json:"success"`
	Error   ErrorDetailsSwagger `json:"error"`
}
