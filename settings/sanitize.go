package settings

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/optionpanel/optionpanel/field"
)

// SanitizeSubmission turns a raw submitted mapping into the record to
// persist. Only fields in scope for the active tab are touched; every
// other key of the prior record is preserved verbatim, so a tabbed
// submission cannot wipe out the fields of another tab.
//
// A nil raw mapping means the payload was not a mapping at all: nothing
// is merged and a single error notice is returned alongside the prior
// record. A field whose validate callback rejects the sanitized value
// reverts to its default and gets its own notice; the rest of the
// submission still goes through.
func (s *Store) SanitizeSubmission(raw map[string]any, activeTab string, prior map[string]any) (map[string]any, []Notice) {
	record := cloneRecord(prior)

	if raw == nil {
		return record, []Notice{{
			Code:     NoticeMalformedSubmission,
			Message:  "submitted data was not in the expected format",
			Severity: SeverityError,
		}}
	}

	var notices []Notice

	for _, def := range s.fieldsInScope(activeTab) {
		if def.Type == field.TypeDescription {
			continue
		}

		behavior, ok := s.behaviors[def.ID]
		if !ok {
			// unreachable as long as AddField instantiated the behavior;
			// fall back to the configured default rather than crash
			log.Debug().Str("field", def.ID).Msg("no behavior for field, keeping configured default")

			record[def.ID] = def.Default

			continue
		}

		// an absent key sanitizes like an empty submission, which is how
		// an unchecked checkbox comes in
		value := behavior.Sanitize(raw[def.ID])

		if def.Validate != nil {
			if err := def.Validate(value); err != nil {
				notices = append(notices, Notice{
					Code:     NoticeValidationFailed,
					Message:  fmt.Sprintf("%s: %v", fieldLabel(def), err),
					Severity: SeverityError,
				})

				value = behavior.DefaultValue()
			}
		}

		record[def.ID] = value
	}

	return record, notices
}

// fieldsInScope returns the fields a submission may touch: every field
// when the page has no tabs or no tab is active, otherwise the fields
// of the active tab's sections plus the global (untabbed) sections.
func (s *Store) fieldsInScope(activeTab string) []field.Definition {
	if activeTab == "" || len(s.tabs) == 0 {
		return s.fields
	}

	inScope := make(map[string]bool, len(s.sections))

	for _, sec := range s.sections {
		if sec.Tab == activeTab || sec.Tab == "" {
			inScope[sec.ID] = true
		}
	}

	out := make([]field.Definition, 0, len(s.fields))

	for _, def := range s.fields {
		if inScope[def.Section] {
			out = append(out, def)
		}
	}

	return out
}

func fieldLabel(def field.Definition) string {
	if def.Label != "" {
		return def.Label
	}

	return def.ID
}

// cloneRecord copies a record one level deep, with list values copied
// as well so later mutation cannot alias the prior record.
func cloneRecord(record map[string]any) map[string]any {
	out := make(map[string]any, len(record))

	for k, v := range record {
		if list, ok := v.([]string); ok {
			copied := make([]string, len(list))
			copy(copied, list)
			out[k] = copied

			continue
		}

		out[k] = v
	}

	return out
}
