package common

const (
	// AuthorizationHeaderName is the HTTP header carrying the access token.
	AuthorizationHeaderName = "Authorization"

	// BearerSchemePrefix prefixes the token value inside the Authorization
	// header, as in "Authorization: Bearer <token>".
	BearerSchemePrefix = "Bearer "
)
