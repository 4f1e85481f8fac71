package session

import "time"

// token is an opaque bearer token.
type token string

//withgen:copy
type session struct {
	user      string
	token     token
	expiresAt time.Time
}
