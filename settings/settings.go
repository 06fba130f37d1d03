package settings

import (
	"fmt"
	"html/template"

	"github.com/go-playground/validator/v10"

	"github.com/optionpanel/optionpanel/field"
)

// Tab is a named grouping of sections used to partition a page and
// scope submissions.
type Tab struct {
	ID    string `validate:"required"`
	Title string
	Icon  string
}

// Section is a named grouping of fields shown together. An empty Tab
// means the section is global: it is shown and submitted with every
// tab.
type Section struct {
	ID          string `validate:"required"`
	Title       string
	Description string
	Tab         string
}

// Store is the definition of one settings page: its storage key, its
// tabs, sections and fields in registration order, and the behavior of
// every field. It is built once and read-only afterwards.
type Store struct {
	optionName  string
	optionGroup string

	tabs     []Tab
	sections []Section
	fields   []field.Definition

	behaviors map[string]field.Behavior
	validate  *validator.Validate
}

// New creates an empty definition store. The option name is the slot
// the persisted record is stored under and must not be empty.
func New(optionName, optionGroup string) (*Store, error) {
	if optionName == "" {
		return nil, ErrOptionNameEmpty
	}

	return &Store{
		optionName:  optionName,
		optionGroup: optionGroup,
		behaviors:   make(map[string]field.Behavior),
		validate:    validator.New(),
	}, nil
}

// OptionName returns the storage key of the page's persisted record.
func (s *Store) OptionName() string {
	return s.optionName
}

// OptionGroup returns the logical group the page belongs to.
func (s *Store) OptionGroup() string {
	return s.optionGroup
}

// AddTab registers a tab. Tab ids must be unique.
func (s *Store) AddTab(t Tab) error {
	if err := s.validate.Struct(t); err != nil {
		return fmt.Errorf("invalid tab: %w", err)
	}

	if s.hasTab(t.ID) {
		return fmt.Errorf("%w: %q", ErrTabExists, t.ID)
	}

	s.tabs = append(s.tabs, t)

	return nil
}

// AddSection registers a section. A non-empty tab reference must name a
// tab registered before the section.
func (s *Store) AddSection(sec Section) error {
	if err := s.validate.Struct(sec); err != nil {
		return fmt.Errorf("invalid section: %w", err)
	}

	if s.hasSection(sec.ID) {
		return fmt.Errorf("%w: %q", ErrSectionExists, sec.ID)
	}

	if sec.Tab != "" && !s.hasTab(sec.Tab) {
		return fmt.Errorf("%w: %q (referenced by section %q)", ErrTabNotFound, sec.Tab, sec.ID)
	}

	s.sections = append(s.sections, sec)

	return nil
}

// AddField registers a field. The referenced section must already
// exist, the type must be registered and the id unique. The field's
// behavior is instantiated here so an unknown type fails at definition
// time, not at render or save time.
func (s *Store) AddField(def field.Definition) error {
	if err := s.validate.Struct(def); err != nil {
		return fmt.Errorf("invalid field: %w", err)
	}

	if _, ok := s.behaviors[def.ID]; ok {
		return fmt.Errorf("%w: %q", ErrFieldExists, def.ID)
	}

	if !s.hasSection(def.Section) {
		return fmt.Errorf("%w: %q (referenced by field %q)", ErrSectionNotFound, def.Section, def.ID)
	}

	behavior, err := field.New(def.Type, def)
	if err != nil {
		return fmt.Errorf("field %q: %w", def.ID, err)
	}

	s.fields = append(s.fields, def)
	s.behaviors[def.ID] = behavior

	return nil
}

// Tabs returns the registered tabs in registration order.
func (s *Store) Tabs() []Tab {
	out := make([]Tab, len(s.tabs))
	copy(out, s.tabs)

	return out
}

// Sections returns the registered sections in registration order.
func (s *Store) Sections() []Section {
	out := make([]Section, len(s.sections))
	copy(out, s.sections)

	return out
}

// Fields returns the registered fields in registration order.
func (s *Store) Fields() []field.Definition {
	out := make([]field.Definition, len(s.fields))
	copy(out, s.fields)

	return out
}

// Field returns the definition of the given field id.
func (s *Store) Field(id string) (field.Definition, bool) {
	for _, def := range s.fields {
		if def.ID == id {
			return def, true
		}
	}

	return field.Definition{}, false
}

// Behavior returns the behavior of the given field id.
func (s *Store) Behavior(id string) (field.Behavior, bool) {
	b, ok := s.behaviors[id]

	return b, ok
}

// SectionsForTab returns the sections shown for the given tab: the
// tab's own sections plus the global (untabbed) ones, in registration
// order. An empty tab id returns every section.
func (s *Store) SectionsForTab(tab string) []Section {
	if tab == "" {
		return s.Sections()
	}

	out := make([]Section, 0, len(s.sections))

	for _, sec := range s.sections {
		if sec.Tab == tab || sec.Tab == "" {
			out = append(out, sec)
		}
	}

	return out
}

// FieldsForSection returns the fields of one section in registration
// order.
func (s *Store) FieldsForSection(sectionID string) []field.Definition {
	out := make([]field.Definition, 0, len(s.fields))

	for _, def := range s.fields {
		if def.Section == sectionID {
			out = append(out, def)
		}
	}

	return out
}

// ActiveTab resolves the tab a request addresses: the requested id when
// it names a known tab, otherwise the first-registered tab. A page
// without tabs resolves to the empty id. Resolution is deterministic in
// registration order, never alphabetical.
func (s *Store) ActiveTab(requested string) string {
	if len(s.tabs) == 0 {
		return ""
	}

	if requested != "" && s.hasTab(requested) {
		return requested
	}

	return s.tabs[0].ID
}

// Defaults returns a record holding every persistable field's default
// value.
func (s *Store) Defaults() map[string]any {
	out := make(map[string]any, len(s.fields))

	for _, def := range s.fields {
		if def.Type == field.TypeDescription {
			continue
		}

		out[def.ID] = s.behaviors[def.ID].DefaultValue()
	}

	return out
}

// RenderField renders one field's control markup against the given
// record, using the field's behavior and the record's (or default)
// value. Extra attrs merge per the behavior's attribute rules.
func (s *Store) RenderField(fieldID string, record map[string]any, attrs map[string]string) (template.HTML, error) {
	behavior, ok := s.behaviors[fieldID]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrFieldNotFound, fieldID)
	}

	return behavior.Render(s.Value(record, fieldID), attrs), nil
}

// Value reads one field from a persisted record, falling back to the
// field's default when the record has no value for it. Unknown field
// ids yield nil.
func (s *Store) Value(record map[string]any, fieldID string) any {
	if v, ok := record[fieldID]; ok {
		return v
	}

	if b, ok := s.behaviors[fieldID]; ok {
		return b.DefaultValue()
	}

	return nil
}

func (s *Store) hasTab(id string) bool {
	for _, t := range s.tabs {
		if t.ID == id {
			return true
		}
	}

	return false
}

func (s *Store) hasSection(id string) bool {
	for _, sec := range s.sections {
		if sec.ID == id {
			return true
		}
	}

	return false
}
