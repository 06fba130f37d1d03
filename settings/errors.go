package settings

import (
	"errors"
)

var (
	// ErrOptionNameEmpty is returned when a store is created without a
	// storage key.
	ErrOptionNameEmpty = errors.New("option name cannot be empty")
	// ErrTabExists is returned when a tab id is registered twice.
	ErrTabExists = errors.New("tab already exists")
	// ErrSectionExists is returned when a section id is registered twice.
	ErrSectionExists = errors.New("section already exists")
	// ErrTabNotFound is returned when a section references an unknown tab.
	ErrTabNotFound = errors.New("tab not found")
	// ErrSectionNotFound is returned when a field references a section
	// that has not been registered yet.
	ErrSectionNotFound = errors.New("section not found")
	// ErrFieldExists is returned when a field id is registered twice.
	ErrFieldExists = errors.New("field already exists")
	// ErrFieldNotFound is returned when rendering references an unknown
	// field id.
	ErrFieldNotFound = errors.New("field not found")
)
