package authenticator

import "time"

type TokenEngine interface {
	// Generate creates a signed token wrapping obj, which must be
	// json-marshalable.
	Generate(expiration time.Duration, obj any) (string, error)

	// Verify checks the token signature and expiration, then unmarshals the
	// wrapped object into obj.
	Verify(token string, obj any) error
}
