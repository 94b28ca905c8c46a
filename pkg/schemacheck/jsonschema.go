package schemacheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/dmitrymomot/formstate/pkg/fieldpath"
	"github.com/dmitrymomot/formstate/pkg/formdata"
)

// JSONSchema compiles a JSON Schema document into a Checker. Compilation
// failures are configuration errors and are returned to the caller; a
// runtime validation failure never is — it becomes issues in the Result.
func JSONSchema(schema []byte) (Checker, error) {
	compiled, err := jsonschema.CompileString("form-schema.json", string(schema))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaCompile, err)
	}
	return &jsonSchemaChecker{schema: compiled}, nil
}

// MustJSONSchema is JSONSchema panicking on compile errors, for schemas
// embedded at build time.
func MustJSONSchema(schema []byte) Checker {
	c, err := JSONSchema(schema)
	if err != nil {
		panic(err)
	}
	return c
}

type jsonSchemaChecker struct {
	schema *jsonschema.Schema
}

func (c *jsonSchemaChecker) Check(_ context.Context, model formdata.Snapshot) Result {
	var doc any
	if err := json.Unmarshal(model.JSON(), &doc); err != nil {
		return Result{
			HasRun: true,
			Issues: []Issue{{Path: fieldpath.Root, Message: "model is not a valid document"}},
		}
	}

	err := c.schema.Validate(doc)
	if err == nil {
		return Result{HasRun: true, Success: true}
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return Result{
			HasRun: true,
			Issues: []Issue{{Path: fieldpath.Root, Message: err.Error()}},
		}
	}

	return Result{HasRun: true, Issues: issuesFromValidationError(verr)}
}

// issuesFromValidationError flattens the validator's hierarchical output
// into located leaf issues. Aggregate "doesn't validate with" entries are
// dropped when a located cause exists underneath them.
func issuesFromValidationError(verr *jsonschema.ValidationError) []Issue {
	out := verr.BasicOutput()

	var located []Issue
	var rootMsgs []Issue
	for _, e := range out.Errors {
		msg := strings.TrimSpace(e.Error)
		if msg == "" || strings.HasPrefix(msg, "doesn't validate with") {
			continue
		}
		issue := Issue{Path: pathFromPointer(e.InstanceLocation), Message: msg}
		if issue.Path.IsRoot() {
			rootMsgs = append(rootMsgs, issue)
		} else {
			located = append(located, issue)
		}
	}

	if len(located) > 0 {
		return located
	}
	if len(rootMsgs) > 0 {
		return rootMsgs
	}
	return []Issue{{Path: fieldpath.Root, Message: strings.TrimSpace(verr.Message)}}
}

// pathFromPointer converts a JSON pointer ("/addresses/billingAddress/street")
// into a dot path. The empty pointer addresses the document and maps to Root.
func pathFromPointer(pointer string) fieldpath.Path {
	pointer = strings.TrimPrefix(pointer, "#")
	if pointer == "" || pointer == "/" {
		return fieldpath.Root
	}

	segments := strings.Split(strings.TrimPrefix(pointer, "/"), "/")
	for i, s := range segments {
		s = strings.ReplaceAll(s, "~1", "/")
		segments[i] = strings.ReplaceAll(s, "~0", "~")
	}
	return fieldpath.Join(segments...)
}
