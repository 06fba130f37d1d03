package field

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedType is returned when a definition names a field type
	// that is not part of the registry.
	ErrUnsupportedType = errors.New("unsupported field type")
)

// constructor builds the behavior of one field type from its definition.
type constructor func(Definition) Behavior

// registry is the closed table of supported field types. Order matters:
// SupportedTypes reports types in declaration order.
var registry = []struct {
	typ   Type
	build constructor
}{
	{TypeText, func(d Definition) Behavior { return textField{def: d, kind: TypeText} }},
	{TypeEmail, func(d Definition) Behavior { return textField{def: d, kind: TypeEmail} }},
	{TypeURL, func(d Definition) Behavior { return urlField{def: d} }},
	{TypeTextarea, func(d Definition) Behavior { return textField{def: d, kind: TypeTextarea} }},
	{TypePassword, func(d Definition) Behavior { return passwordField{def: d} }},
	{TypeNumber, func(d Definition) Behavior { return numberField{def: d, kind: TypeNumber} }},
	{TypeRange, func(d Definition) Behavior { return numberField{def: d, kind: TypeRange} }},
	{TypeCheckbox, func(d Definition) Behavior { return toggleField{def: d, kind: TypeCheckbox} }},
	{TypeToggle, func(d Definition) Behavior { return toggleField{def: d, kind: TypeToggle} }},
	{TypeSelect, func(d Definition) Behavior { return choiceField{def: d, kind: TypeSelect} }},
	{TypeRadio, func(d Definition) Behavior { return choiceField{def: d, kind: TypeRadio} }},
	{TypeButtonGroup, func(d Definition) Behavior { return choiceField{def: d, kind: TypeButtonGroup} }},
	{TypeMultiselect, func(d Definition) Behavior { return multiselectField{def: d} }},
	{TypeColor, func(d Definition) Behavior { return colorField{def: d} }},
	{TypeDate, func(d Definition) Behavior { return dateField{def: d, kind: TypeDate} }},
	{TypeDateTime, func(d Definition) Behavior { return dateField{def: d, kind: TypeDateTime} }},
	{TypeTime, func(d Definition) Behavior { return dateField{def: d, kind: TypeTime} }},
	{TypeMedia, func(d Definition) Behavior { return mediaField{def: d} }},
	{TypeCode, func(d Definition) Behavior { return codeField{def: d} }},
	{TypeDescription, func(d Definition) Behavior { return descriptionField{def: d} }},
}

// New builds the behavior for the given type and definition. It returns
// ErrUnsupportedType when the type is not registered. New has no side
// effects and is safe for concurrent use.
func New(typ Type, def Definition) (Behavior, error) {
	for _, entry := range registry {
		if entry.typ == typ {
			return entry.build(def), nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, typ)
}

// Supported reports whether typ names a registered field type.
func Supported(typ Type) bool {
	for _, entry := range registry {
		if entry.typ == typ {
			return true
		}
	}

	return false
}

// SupportedTypes returns all registered field types in declaration
// order.
func SupportedTypes() []Type {
	types := make([]Type, len(registry))
	for i, entry := range registry {
		types[i] = entry.typ
	}

	return types
}
