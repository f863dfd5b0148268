package keys

import "errors"

var (
	// ErrInvalidSecretKey is returned when a string or byte slice is not a
	// well-formed secret key.
	ErrInvalidSecretKey = errors.New("invalid secret key")

	// ErrInvalidPublicKey is returned when a string or byte slice is not a
	// well-formed x-only public key.
	ErrInvalidPublicKey = errors.New("invalid public key")
)
