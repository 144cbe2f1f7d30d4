// path: models/payloads.go
package models

// SignupPayload is the JSON body for POST /api/auth/signup.
type SignupPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// LoginPayload is the JSON body for POST /api/auth/login.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse is returned by signup and login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// StatusUpdatePayload is the JSON body for PUT /api/reports/:id/status.
type StatusUpdatePayload struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
}

// AssignPayload is the JSON body for PUT /api/reports/:id/assign.
type AssignPayload struct {
	AssignedToID string `json:"assigned_to_id"`
}

// CommentPayload is the JSON body for POST /api/reports/:id/comments.
type CommentPayload struct {
	Text string `json:"text"`
}

// MessageResponse acknowledges a mutation with no body to return.
type MessageResponse struct {
	Message string `json:"message"`
}
