package daemon

import (
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/optionpanel/optionpanel/internal/db/controller/option"
	"github.com/optionpanel/optionpanel/settings"
)

// seed writes each page's default record when the page has never been
// saved, so a fresh install renders with sensible values.
func seed(db *gorm.DB, pages ...*settings.Store) {
	for _, page := range pages {
		_, err := option.Get(db, page.OptionName())
		if err == nil {
			continue
		}

		if !errors.Is(err, option.ErrOptionNotFound) {
			log.Error().Err(err).Str("option", page.OptionName()).Msg("failed to check option")
			continue
		}

		if err = option.SetRecord(db, page.OptionName(), page.Defaults()); err != nil {
			log.Error().Err(err).Str("option", page.OptionName()).Msg("failed to seed defaults")
			continue
		}

		log.Info().Str("option", page.OptionName()).Msg("Seeded default options")
	}
}
