// Package fieldpath defines the canonical dot-delimited addressing scheme for
// form values and resolves UI-level identifiers into those addresses.
//
// A Path points at one addressable leaf inside the form's data model
// ("addresses.billingAddress.street"). The Root sentinel addresses the form
// itself and is used for form-wide rules that are not attached to a single
// field.
//
// # Resolution
//
// UI layers rarely know canonical paths; they know element ids, name
// attributes, or explicit data attributes. Resolver turns such hints into
// paths using a fixed precedence chain (first match wins):
//
//  1. An explicit path declared on the hint itself.
//  2. A project-supplied resolver function.
//  3. A registry lookup keyed by the camelCase accessor form of the path
//     ("addressesBillingAddressStreet").
//  4. An underscore-to-dot conversion of the element id or name
//     ("billing_address_street" -> "billing.address.street").
//
// # Error Handling
//
// By default a hint that cannot be resolved logs a warning and returns
// ErrUnresolvedHint; the caller treats the field as untracked. With
// WithStrictResolution the same failure is meant to be fatal: misconfigured
// forms should fail fast during development rather than silently drop
// validation for a field.
//
// # Usage
//
//	r := fieldpath.NewResolver(
//		fieldpath.WithKnownPaths("userId", "addresses.billingAddress.street"),
//	)
//	p, err := r.Resolve(fieldpath.Hint{ID: "addressesBillingAddressStreet"})
package fieldpath
