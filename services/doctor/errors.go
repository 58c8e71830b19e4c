package doctor

import "errors"

var (
	// ErrEmailTaken indicates a signup with an already-registered email.
	ErrEmailTaken = errors.New("an account with this email already exists")
	// ErrInvalidCredentials covers unknown email and wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
)
