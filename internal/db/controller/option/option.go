// Package option provides CRUD operations for persisted settings
// records.
package option

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/optionpanel/optionpanel/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrOptionNotFound is returned when an option is not found.
	ErrOptionNotFound = errors.New("option not found")
	// ErrOptionNameEmpty is returned when attempting to read or write an option with an empty name.
	ErrOptionNameEmpty = errors.New("option name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves an option by its name.
func Get(db *gorm.DB, name string) (*models.Option, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrOptionNameEmpty
	}

	var option models.Option
	result := db.Where(nameQueryPattern, name).First(&option)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOptionNotFound
		}
		return nil, result.Error
	}

	return &option, nil
}

// Set creates or updates an option by name (upsert operation).
func Set(db *gorm.DB, name string, value []byte) (*models.Option, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrOptionNameEmpty
	}

	var option models.Option
	result := db.Where(nameQueryPattern, name).First(&option)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		option = models.Option{Name: name, Value: value}

		if result = db.Create(&option); result.Error != nil {
			return nil, result.Error
		}

		return &option, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	option.Value = value
	result = db.Save(&option)
	if result.Error != nil {
		return nil, result.Error
	}

	return &option, nil
}

// Delete deletes an option by name.
func Delete(db *gorm.DB, name string) error {
	if db == nil {
		return ErrDBNil
	}
	if name == "" {
		return ErrOptionNameEmpty
	}

	result := db.Where(nameQueryPattern, name).Delete(&models.Option{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOptionNotFound
	}

	return nil
}

// GetRecord retrieves an option and decodes it as a settings record. A
// missing option yields an empty record, not an error: a page that was
// never saved reads as all defaults.
func GetRecord(db *gorm.DB, name string) (map[string]any, error) {
	option, err := Get(db, name)
	if errors.Is(err, ErrOptionNotFound) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, err
	}

	record := map[string]any{}
	if err := json.Unmarshal(option.Value, &record); err != nil {
		return nil, err
	}

	return record, nil
}

// SetRecord encodes a settings record and upserts it under the given
// name.
func SetRecord(db *gorm.DB, name string, record map[string]any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	_, err = Set(db, name, data)

	return err
}

// Store adapts the controller to the settings.OptionStore interface.
type Store struct {
	db *gorm.DB
}

// NewStore creates an option store backed by the given database.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Get implements settings.OptionStore.
func (s *Store) Get(name string) (map[string]any, error) {
	return GetRecord(s.db, name)
}

// Set implements settings.OptionStore.
func (s *Store) Set(name string, record map[string]any) error {
	return SetRecord(s.db, name, record)
}
