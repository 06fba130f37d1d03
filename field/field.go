package field

// Type identifies a supported form control type.
type Type string

// Supported field types.
const (
	TypeText        Type = "text"
	TypeEmail       Type = "email"
	TypeURL         Type = "url"
	TypeTextarea    Type = "textarea"
	TypePassword    Type = "password"
	TypeNumber      Type = "number"
	TypeRange       Type = "range"
	TypeCheckbox    Type = "checkbox"
	TypeToggle      Type = "toggle"
	TypeSelect      Type = "select"
	TypeRadio       Type = "radio"
	TypeButtonGroup Type = "buttongroup"
	TypeMultiselect Type = "multiselect"
	TypeColor       Type = "color"
	TypeDate        Type = "date"
	TypeDateTime    Type = "datetime"
	TypeTime        Type = "time"
	TypeMedia       Type = "media"
	TypeCode        Type = "code"
	TypeDescription Type = "description"
)

// Option is one selectable choice of a choice-like field. The Value is
// what gets stored, the Label is what the user sees. Options keep their
// declaration order.
type Option struct {
	Value string `validate:"required"`
	Label string
}

// Definition describes one field of a settings page. Definitions are
// built once and read-only afterwards: behaviors never mutate them.
type Definition struct {
	// ID is the storage key of the field, unique within a settings page.
	ID string `validate:"required"`

	// Section is the id of the section the field belongs to. The section
	// must be registered before the field.
	Section string `validate:"required"`

	// Type selects the field behavior. It must be one of the registered
	// types.
	Type Type `validate:"required"`

	Label       string
	Description string

	// Default is the configured default value. When nil, the behavior's
	// type-appropriate empty value applies.
	Default any

	// Options are the choices of choice-like fields, in display order.
	Options []Option

	// Attributes are extra HTML attributes merged into the rendered
	// control. They win over the behavior's built-in attributes.
	Attributes map[string]string

	// Conditional controls client-side visibility of the field.
	Conditional *Conditional

	// Validate, when set, is called with the sanitized value during
	// submission processing. A non-nil error rejects the value and the
	// field reverts to its default.
	Validate func(value any) error `validate:"-"`
}

// HasOption reports whether v is one of the field's option values.
func (d Definition) HasOption(v string) bool {
	for _, o := range d.Options {
		if o.Value == v {
			return true
		}
	}

	return false
}
