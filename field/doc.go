// Package field implements the typed form controls a settings page is
// built from. Every supported control type is a Behavior: it knows how
// to render itself as markup, how to sanitize a raw submitted value
// into its canonical storage form, and what its default value is.
//
// Sanitize is total for every type: no input, whatever its Go type,
// causes a panic or an error. Malformed input collapses to the type's
// empty value.
package field
