package fieldpath

import "strings"

// Path addresses one leaf inside the form data model using dot-delimited
// segments. The zero value is not a valid field address; it is used as the
// "no scope" marker when a rule suite should run in full.
type Path string

// Root is the sentinel path for form-wide rules that are not attached to a
// single field. It never resolves into the data model.
const Root Path = "__ROOT_FORM__"

// Separator joins path segments.
const Separator = "."

// Join builds a path from individual segments, skipping empty ones.
func Join(segments ...string) Path {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return Path(strings.Join(parts, Separator))
}

// Segments splits the path into its components. Root and the zero path
// return nil.
func (p Path) Segments() []string {
	if p.IsZero() || p.IsRoot() {
		return nil
	}
	return strings.Split(string(p), Separator)
}

// Parent returns the path one level up, or the zero path for top-level
// fields, Root, and the zero path.
func (p Path) Parent() Path {
	idx := strings.LastIndex(string(p), Separator)
	if p.IsRoot() || idx < 0 {
		return ""
	}
	return p[:idx]
}

// Leaf returns the final segment of the path.
func (p Path) Leaf() string {
	segs := p.Segments()
	if len(segs) == 0 {
		return ""
	}
	return segs[len(segs)-1]
}

// IsRoot reports whether the path is the form-wide sentinel.
func (p Path) IsRoot() bool { return p == Root }

// IsZero reports whether the path is empty, i.e. no scope.
func (p Path) IsZero() bool { return p == "" }

func (p Path) String() string { return string(p) }

// Accessor returns the camelCase accessor form of the path, the key used by
// registry-based resolution: "addresses.billingAddress.street" ->
// "addressesBillingAddressStreet".
func (p Path) Accessor() string {
	var b strings.Builder
	for _, s := range p.Segments() {
		// Malformed paths may carry empty segments ("billing.").
		if s == "" {
			continue
		}
		if b.Len() == 0 {
			b.WriteString(s)
			continue
		}
		b.WriteString(strings.ToUpper(s[:1]))
		b.WriteString(s[1:])
	}
	return b.String()
}

// FromUnderscores converts a snake_case element id or name into a dot path:
// "billing_address_street" -> "billing.address.street".
func FromUnderscores(id string) Path {
	if id == "" {
		return ""
	}
	return Path(strings.ReplaceAll(id, "_", Separator))
}
