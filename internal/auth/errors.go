package auth

import "errors"

// Failure kinds surfaced by this package. Handlers translate these into the
// minimal user-facing message; everything else stays in the logs.
var (
	// Validation failures, caught before any store access.
	ErrEmailRequired    = errors.New("email must have a value")
	ErrPasswordRequired = errors.New("password must have a value")

	// ErrNoMatch covers both unknown email and wrong password so the
	// response cannot be used to enumerate accounts.
	ErrNoMatch = errors.New("no email/password match")

	// ErrStoreRead is any lookup failure that is not a clean miss: transport
	// errors, shape anomalies, malformed stored hashes.
	ErrStoreRead = errors.New("error retrieving data from the store")

	// ErrStoreWrite is a failed session insert.
	ErrStoreWrite = errors.New("failed to write to the store")

	// ErrNoSession is every reason a bearer token does not grant access:
	// unknown token, expired session, store failure. The gate fails closed
	// on all of them.
	ErrNoSession = errors.New("no valid session for token")
)
