// Package models contains database model definitions.
package models

// Option represents one persisted settings record: the aggregated
// fieldID→value mapping of a settings page, stored as a JSON blob under
// the page's option name.
type Option struct {
	ID    uint64 `gorm:"primaryKey"`
	Name  string `gorm:"unique"`
	Value []byte `gorm:"type:blob"`
}
