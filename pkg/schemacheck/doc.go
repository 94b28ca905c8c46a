// Package schemacheck runs a structural schema validator over the form data
// at submit time and normalizes its findings into one issue-list shape.
//
// Schema issues are a separate concern from rule errors: they describe
// structural mismatches (wrong type, missing branch, malformed document)
// rather than user-input problems, so the form keeps them in a dedicated
// state slice and, by default, excludes them from error counts and validity.
// Hosts decide whether to treat them as blocking.
//
// Two external validator shapes are supported and folded into the Checker
// interface:
//
//   - safeParse style: a function returning (ok, issues) without ever
//     throwing, adapted via FromSafeParser.
//   - validate style: a function returning an error, adapted via
//     FromValidateFunc.
//
// JSONSchema compiles a JSON Schema document into a Checker backed by
// santhosh-tekuri/jsonschema, translating its JSON-pointer locations into
// the dot-delimited field paths the rest of the module uses.
package schemacheck
