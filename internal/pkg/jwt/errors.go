package jwt

import "errors"

var (
	ErrInvalidToken  = errors.New("invalid or missing access token")
	ErrAdminRequired = errors.New("admin privilege required")
)
