// Package v1 defines the wire types of the CredLane auth API.
// The service speaks plain JSON over the Kratos HTTP transport, so the
// request/reply types are hand-written rather than generated from proto.
package v1

// RegisterRequest is the payload for POST /v1/auth/register.
type RegisterRequest struct {
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	DisplayName *string `json:"display_name,omitempty"`
}

// RegisterReply is returned after a successful registration.
type RegisterReply struct {
	UserID      string  `json:"user_id"`
	Email       string  `json:"email"`
	DisplayName *string `json:"display_name,omitempty"`
}

// LoginRequest is the payload for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginReply carries the minted JWT and the user it belongs to.
type LoginReply struct {
	Token       string  `json:"token"`
	UserID      string  `json:"user_id"`
	Email       string  `json:"email"`
	DisplayName *string `json:"display_name,omitempty"`
}

// MeRequest asks for the session behind a bearer token.
type MeRequest struct {
	Token string `json:"token"`
}

// MeReply describes the authenticated user.
type MeReply struct {
	UserID      string  `json:"user_id"`
	Email       string  `json:"email"`
	DisplayName *string `json:"display_name,omitempty"`
	IsActive    bool    `json:"is_active"`
}

// ValidateTokenRequest asks whether a token is valid.
type ValidateTokenRequest struct {
	Token string `json:"token"`
}

// ValidateTokenReply reports the validation outcome. Invalid tokens are a
// normal answer here, not an error.
type ValidateTokenReply struct {
	Valid  bool   `json:"valid"`
	UserID string `json:"user_id,omitempty"`
	Email  string `json:"email,omitempty"`
}
