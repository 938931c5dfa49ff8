package identity

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// TokenLoginRequest - POST /v1/auth/token-login
type TokenLoginRequest struct {
	IDToken string `json:"id_token"`
}

func (r TokenLoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IDToken,
			validation.Required.Error("id_token is required"),
		),
	)
}

// TokenLoginResponse mirrors the shape browser clients expect from the
// token sign-in endpoint.
type TokenLoginResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	Redirect    string `json:"redirect"`
	AccessToken string `json:"access_token"`
}
