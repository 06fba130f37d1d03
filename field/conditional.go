package field

import (
	"strings"
)

// Conditional visibility operators.
const (
	OperatorEquals    = "=="
	OperatorNotEquals = "!="
	OperatorIn        = "in"
	OperatorNotIn     = "not in"
)

// Conditional is a declarative visibility rule: the field carrying it
// is shown depending on the live value of another field on the page.
// The rule is stored and rendered as data, evaluation happens in the
// client widget; Evaluate mirrors that widget's semantics for the read
// path and for tests.
type Conditional struct {
	// Field is the id of the observed field.
	Field string

	// Value is the comparison operand. For the in/not in operators it is
	// a comma-separated set.
	Value string

	// Operator is one of ==, !=, in, not in. Empty means ==.
	Operator string
}

// EffectiveOperator returns the operator with the empty-string default
// applied.
func (c Conditional) EffectiveOperator() string {
	if c.Operator == "" {
		return OperatorEquals
	}

	return c.Operator
}

// Known reports whether the conditional uses a known operator.
func (c Conditional) Known() bool {
	switch c.EffectiveOperator() {
	case OperatorEquals, OperatorNotEquals, OperatorIn, OperatorNotIn:
		return true
	default:
		return false
	}
}

// Evaluate computes visibility against the observed field's current
// value. Scalar values compare as strings. List values (multiselect)
// keep both source branches: equality means any member matches, set
// membership means a non-empty intersection. Unknown operators evaluate
// to false.
func (c Conditional) Evaluate(current any) bool {
	values := currentValues(current)

	switch c.EffectiveOperator() {
	case OperatorEquals:
		return contains(values, c.Value)
	case OperatorNotEquals:
		return !contains(values, c.Value)
	case OperatorIn:
		return intersects(values, splitSet(c.Value))
	case OperatorNotIn:
		return !intersects(values, splitSet(c.Value))
	default:
		return false
	}
}

// currentValues normalizes the observed value into a string slice: the
// list branch keeps every member, the scalar branch yields a single
// element.
func currentValues(current any) []string {
	switch v := current.(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))

		for _, item := range v {
			out = append(out, displayString(item))
		}

		return out
	default:
		return []string{displayString(v)}
	}
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}

	return false
}

// intersects reports whether any value is a member of the set. For the
// scalar branch values holds exactly one element, so this degrades to
// plain membership.
func intersects(values []string, set []string) bool {
	for _, v := range values {
		for _, s := range set {
			if v == s {
				return true
			}
		}
	}

	return false
}

// splitSet splits a comma-separated operand into trimmed members.
func splitSet(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))

	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}

	return out
}
