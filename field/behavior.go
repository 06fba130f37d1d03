package field

import (
	"fmt"
	"html/template"
	"sort"
	"strconv"
	"strings"
)

// Behavior is the capability set of one field type.
type Behavior interface {
	// Render produces the markup of the control for the given current
	// value. Caller-supplied attributes win over built-in ones on
	// conflicting keys, except for widget CSS classes a behavior forces.
	Render(value any, attrs map[string]string) template.HTML

	// Sanitize normalizes a raw submitted value into its canonical
	// storage form. It is total: it never panics and never returns an
	// error, malformed input collapses to a safe fallback.
	Sanitize(raw any) any

	// DefaultValue returns the configured default, or the type's empty
	// value when no default is configured.
	DefaultValue() any
}

// mergeAttributes layers attribute maps for rendering: built-in base
// attributes, then the definition's attributes, then caller attributes.
// Later layers win on conflicting keys. forceClass, when non-empty, is
// appended to the final class attribute so widget hooks survive caller
// overrides.
func mergeAttributes(base map[string]string, def Definition, extra map[string]string, forceClass string) map[string]string {
	merged := make(map[string]string, len(base)+len(def.Attributes)+len(extra))

	for k, v := range base {
		merged[k] = v
	}

	if def.Conditional != nil {
		c := def.Conditional
		merged["data-conditional-field"] = c.Field
		merged["data-conditional-value"] = c.Value
		merged["data-conditional-operator"] = c.EffectiveOperator()
	}

	for k, v := range def.Attributes {
		merged[k] = v
	}

	for k, v := range extra {
		merged[k] = v
	}

	if forceClass != "" {
		if cls := merged["class"]; cls != "" {
			merged["class"] = cls + " " + forceClass
		} else {
			merged["class"] = forceClass
		}
	}

	return merged
}

// attrString renders an attribute map as escaped HTML attribute pairs
// in deterministic (sorted) key order, with a leading space.
func attrString(attrs map[string]string) string {
	if len(attrs) == 0 {
		return ""
	}

	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	var b strings.Builder

	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(template.HTMLEscapeString(k))
		b.WriteString(`="`)
		b.WriteString(template.HTMLEscapeString(attrs[k]))
		b.WriteString(`"`)
	}

	return b.String()
}

// displayString renders a sanitized value for embedding into a value
// attribute or element body.
func displayString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "1"
		}

		return "0"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case []string:
		return strings.Join(t, ",")
	default:
		return fmt.Sprint(t)
	}
}

// defaultOr returns the configured default of the definition, or the
// given empty value when no default is configured.
func defaultOr(def Definition, empty any) any {
	if def.Default != nil {
		return def.Default
	}

	return empty
}
