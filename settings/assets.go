package settings

import (
	"github.com/optionpanel/optionpanel/field"
)

// UI library packages a page may require, keyed by the field types in
// use. The host's asset loader decides how to load them.
const (
	PackageColorPicker  = "color-picker"
	PackageChoiceWidget = "choice-widget"
	PackageDatePicker   = "date-picker"
	PackageCodeEditor   = "code-editor"
)

// RequiredLibraryPackages returns the UI packages the page's field
// types require, deduplicated, ordered by first appearance. It is a
// pure function of the definition store.
func (s *Store) RequiredLibraryPackages() []string {
	seen := make(map[string]bool, 4)
	out := make([]string, 0, 4)

	for _, def := range s.fields {
		pkg := libraryPackage(def.Type)
		if pkg == "" || seen[pkg] {
			continue
		}

		seen[pkg] = true
		out = append(out, pkg)
	}

	return out
}

func libraryPackage(typ field.Type) string {
	switch typ {
	case field.TypeColor:
		return PackageColorPicker
	case field.TypeSelect, field.TypeMultiselect:
		return PackageChoiceWidget
	case field.TypeDate, field.TypeDateTime, field.TypeTime:
		return PackageDatePicker
	case field.TypeCode:
		return PackageCodeEditor
	default:
		return ""
	}
}
