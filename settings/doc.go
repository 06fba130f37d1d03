// Package settings holds the declarative definition of a settings page
// (tabs, sections, fields) and the submission pipeline that sanitizes
// raw input and merges it into the previously persisted record.
//
// A Store is built once via AddTab/AddSection/AddField, which validate
// referential integrity immediately, and is read-only afterwards. The
// persisted record is one flat fieldID→value mapping kept in a single
// named slot of an OptionStore.
package settings
