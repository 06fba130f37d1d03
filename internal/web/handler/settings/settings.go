// Package settings serves the admin pages built from registered setting
// definition stores. Every page is rendered from its store: tabs, sections
// and field markup all come out of the definitions, so adding a field to a
// page never touches a template.
package settings

import (
	"errors"
	"html/template"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/optionpanel/optionpanel/field"
	"github.com/optionpanel/optionpanel/internal/config"
	"github.com/optionpanel/optionpanel/internal/db/controller/option"
	"github.com/optionpanel/optionpanel/internal/web/handler"
	"github.com/optionpanel/optionpanel/internal/web/navigation"
	panel "github.com/optionpanel/optionpanel/settings"
)

const (
	// Path is the base path of the settings pages.
	Path = "/settings"

	// TemplateName is the template rendered for every settings page.
	TemplateName = "settings/page"
)

// Service is the settings page handler service.
type Service struct {
	handler.Service
	cfg     *config.Config
	db      *gorm.DB
	options panel.OptionStore
	pages   map[string]*panel.Store
	order   []string
}

// Handler is the settings page handler.
var Handler = Service{}

// Init initializes the settings handler and registers one page per store,
// keyed by the store's option group.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, pages ...*panel.Store) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.options = option.NewStore(db)
	s.pages = make(map[string]*panel.Store, len(pages))
	s.order = make([]string, 0, len(pages))

	for _, page := range pages {
		group := page.OptionGroup()
		if _, dup := s.pages[group]; dup {
			return errors.New("duplicate settings page: " + group)
		}

		s.pages[group] = page
		s.order = append(s.order, group)
	}

	// register routes
	app.Get(Path, s.Index)
	app.Route(Path+"/:page", func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Index redirects to the first registered settings page.
func (s *Service) Index(c *fiber.Ctx) error {
	if len(s.order) == 0 {
		return c.Status(fiber.StatusNotFound).SendString("No settings pages registered")
	}

	return c.Redirect(Path + "/" + s.order[0])
}

// Get handles the settings page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	page, ok := s.pages[c.Params("page")]
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Unknown settings page")
	}

	record, err := s.options.Get(page.OptionName())
	if err != nil {
		log.Error().Err(err).Str("option", page.OptionName()).Msg("failed to load options")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load settings")
	}

	activeTab := page.ActiveTab(c.Query("tab"))

	return s.render(c, page, activeTab, record, nil)
}

// Post handles the settings form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	page, ok := s.pages[c.Params("page")]
	if !ok {
		return c.Status(fiber.StatusNotFound).SendString("Unknown settings page")
	}

	prior, err := s.options.Get(page.OptionName())
	if err != nil {
		log.Error().Err(err).Str("option", page.OptionName()).Msg("failed to load options")
		return c.Status(fiber.StatusInternalServerError).SendString("Failed to load settings")
	}

	activeTab := page.ActiveTab(c.Query("tab"))

	raw := s.formRecord(c, page)

	record, notices := page.SanitizeSubmission(raw, activeTab, prior)

	// a nil submission produced a malformed notice and kept the prior
	// record, so there is nothing to persist
	if raw != nil {
		if err = s.options.Set(page.OptionName(), record); err != nil {
			log.Error().Err(err).Str("option", page.OptionName()).Msg("failed to save options")
			return c.Status(fiber.StatusInternalServerError).SendString("Failed to save settings")
		}

		log.Info().
			Str("option", page.OptionName()).
			Str("tab", activeTab).
			Int("notices", len(notices)).
			Msg("Settings saved")

		notices = append(notices, panel.Notice{
			Code:     "saved",
			Message:  "Settings saved",
			Severity: panel.SeveritySuccess,
		})
	}

	return s.render(c, page, activeTab, record, notices)
}

// formRecord extracts the submitted values for the page's fields. Fields of
// the multiselect type collect every repeated form key into a string list;
// everything else takes the first value. A request whose body could not be
// parsed as a form yields nil.
func (s *Service) formRecord(c *fiber.Ctx, page *panel.Store) map[string]any {
	args := c.Request().PostArgs()

	if args.Len() == 0 && len(c.Body()) > 0 {
		log.Warn().Str("content_type", c.Get(fiber.HeaderContentType)).Msg("Unparseable settings submission")
		return nil
	}

	raw := make(map[string]any)

	for _, def := range page.Fields() {
		if def.Type == field.TypeMultiselect {
			if values := args.PeekMulti(def.ID); len(values) > 0 {
				list := make([]string, 0, len(values))
				for _, v := range values {
					list = append(list, string(v))
				}

				raw[def.ID] = list
			}

			continue
		}

		if args.Has(def.ID) {
			raw[def.ID] = string(args.Peek(def.ID))
		}
	}

	return raw
}

// render builds the view model for a settings page and renders the shared
// page template.
func (s *Service) render(c *fiber.Ctx, page *panel.Store, activeTab string, record map[string]any, notices []panel.Notice) error {
	title := page.OptionGroup()
	basePath := Path + "/" + page.OptionGroup()

	nav := navigation.NewContext(title, "settings", page.OptionGroup()).
		AddBreadcrumb("Home", Path, false).
		AddBreadcrumb(title, basePath, true).
		WithTabs(page, basePath, activeTab)

	formAction := basePath
	if activeTab != "" {
		formAction = basePath + "?tab=" + activeTab
	}

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Page":       page.OptionGroup(),
		"FormAction": formAction,
		"Sections":   s.sectionViews(page, activeTab, record),
		"Notices":    notices,
		"Assets":     page.RequiredLibraryPackages(),
	}, handler.BaseLayout)
}

// sectionView is the render model for one section of a settings page.
type sectionView struct {
	ID          string
	Title       string
	Description string
	Fields      []fieldView
}

// fieldView is the render model for one field row.
type fieldView struct {
	ID          string
	Label       string
	Description string
	Type        field.Type
	HTML        template.HTML
}

func (s *Service) sectionViews(page *panel.Store, activeTab string, record map[string]any) []sectionView {
	sections := page.SectionsForTab(activeTab)

	out := make([]sectionView, 0, len(sections))

	for _, sec := range sections {
		view := sectionView{
			ID:          sec.ID,
			Title:       sec.Title,
			Description: sec.Description,
		}

		for _, def := range page.FieldsForSection(sec.ID) {
			markup, err := page.RenderField(def.ID, record, nil)
			if err != nil {
				log.Debug().Err(err).Str("field", def.ID).Msg("field skipped")
				continue
			}

			view.Fields = append(view.Fields, fieldView{
				ID:          def.ID,
				Label:       def.Label,
				Description: def.Description,
				Type:        def.Type,
				HTML:        markup,
			})
		}

		out = append(out, view)
	}

	return out
}
