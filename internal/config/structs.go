package config

import (
	"time"

	"github.com/optionpanel/optionpanel/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Auth      Auth
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool   // enable static file browsing (for development purposes only)
	DisableRecover bool   // disable recover middleware
	Domain         string // domain name for the webserver
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
}

// Auth holds the local admin credentials protecting the panel.
type Auth struct {
	Enabled       bool
	Username      string
	PasswordHash  string        `toml:"passwordHash"` // argon2id hash, see the hash command
	SessionExpiry time.Duration `toml:"sessionExpiry"`
}
