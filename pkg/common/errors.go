package common

import "github.com/cockroachdb/errors"

var (
	// ErrMalformedJSON means the raw webhook body is not valid JSON syntax.
	ErrMalformedJSON = errors.New("malformed json")
	// ErrSchemaMismatch means a JSON node's shape is incompatible with the
	// webhook schema, e.g. a scalar where an object or array is expected.
	ErrSchemaMismatch = errors.New("schema mismatch")
)
