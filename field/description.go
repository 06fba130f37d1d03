package field

import (
	"html/template"
)

// descriptionField is the read-only explanatory type. It renders its
// description text and never carries a storage value.
type descriptionField struct {
	def Definition
}

func (f descriptionField) Render(_ any, attrs map[string]string) template.HTML {
	merged := mergeAttributes(map[string]string{}, f.def, attrs, "op-description")

	return template.HTML("<div" + attrString(merged) + ">" +
		template.HTMLEscapeString(f.def.Description) + "</div>")
}

// Sanitize always returns nil: description fields are never persisted.
func (f descriptionField) Sanitize(_ any) any {
	return nil
}

func (f descriptionField) DefaultValue() any {
	return nil
}
