package field

import (
	"html/template"
)

// dateField implements the date, datetime and time types. Values pass
// through the generic text sanitizer only: format validation is the
// client widget's job.
type dateField struct {
	def  Definition
	kind Type
}

func (f dateField) Render(value any, attrs map[string]string) template.HTML {
	inputType := "date"

	switch f.kind {
	case TypeDateTime:
		inputType = "datetime-local"
	case TypeTime:
		inputType = "time"
	}

	merged := mergeAttributes(map[string]string{
		"type":  inputType,
		"id":    f.def.ID,
		"name":  f.def.ID,
		"value": displayString(f.Sanitize(value)),
	}, f.def, attrs, "op-date-picker")

	return template.HTML("<input" + attrString(merged) + ">")
}

func (f dateField) Sanitize(raw any) any {
	return sanitizeText(raw)
}

func (f dateField) DefaultValue() any {
	return defaultOr(f.def, "")
}
