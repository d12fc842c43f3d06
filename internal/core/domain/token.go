package domain

import "errors"

var ErrTokenExpired = errors.New("token expired")
var ErrTokenInvalid = errors.New("invalid token")

// Principal is the identity decoded from a verified token. It lives for a
// single request.
type Principal struct {
	ID       int
	Username string
	Role     string
}
