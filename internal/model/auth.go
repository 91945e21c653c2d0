package model

// AuthClaims is what a verified bearer token resolves to: the id of the
// account the token was issued for.
type AuthClaims struct {
	AccountID string
}
