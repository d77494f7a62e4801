package snowflake

import "fmt"

// CredentialError reports missing or invalid private key material.
// A bad credential is a configuration error; callers must not retry.
type CredentialError struct {
	Path string
	Err  error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("snowflake credential error: %s: %v", e.Path, e.Err)
}

func (e *CredentialError) Unwrap() error { return e.Err }

// ConnectionError reports a failure to establish a session.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("snowflake connection error: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// QueryError wraps a statement execution failure. Its message is what
// dashboard clients see in the HTTP 500 detail field.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("snowflake query error: %v", e.Err)
}

func (e *QueryError) Unwrap() error { return e.Err }
