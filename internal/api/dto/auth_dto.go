package dto

// TokenRequest is the credential payload for the token endpoint.
type TokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse returns the signed bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}
