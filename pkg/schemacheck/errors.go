package schemacheck

import "errors"

// ErrSchemaCompile indicates the supplied JSON Schema document could not be
// compiled. This is a configuration error, not a validation outcome.
var ErrSchemaCompile = errors.New("schemacheck: schema compilation failed")
