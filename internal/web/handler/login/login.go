package login

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/optionpanel/optionpanel/internal/auth"
	"github.com/optionpanel/optionpanel/internal/config"
	"github.com/optionpanel/optionpanel/internal/web/handler"
	"github.com/optionpanel/optionpanel/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = "/login"
)

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg         *config.Config
	authService *auth.Service
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, _ *gorm.DB) error {
	if app == nil || cfg == nil {
		return errors.New("app or cfg is nil")
	}

	s.cfg = cfg
	s.authService = auth.NewService(cfg)

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.Get)
		router.Post(handler.RouterRootPath, s.Post)
	})

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.Render("login/login", fiber.Map{
		"Title": s.cfg.Title,
	})
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	username := c.FormValue("username")
	password := c.FormValue("password")

	if err := s.authService.Authenticate(username, password); err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).Render("login/login", fiber.Map{
				"Title": s.cfg.Title,
				"Error": "Invalid username or password",
			})
		}

		log.Error().Err(err).Msg("failed to authenticate user")

		return c.Status(fiber.StatusInternalServerError).Render("login/login", fiber.Map{
			"Title": s.cfg.Title,
			"Error": "Internal server error",
		})
	}

	sessionID := session.GenerateSessionID()

	userSession := &session.Data{
		Username: username,
	}

	if err := userSession.Write(sessionID, s.cfg.Auth.SessionExpiry); err != nil {
		log.Error().Err(err).Msg("failed to write session")

		return c.Status(fiber.StatusInternalServerError).Render("login/login", fiber.Map{
			"Title": s.cfg.Title,
			"Error": "Internal server error",
		})
	}

	// set login cookie
	cookieSettings := &fiber.Cookie{
		Name:     "session",
		Value:    sessionID,
		MaxAge:   int(s.cfg.Auth.SessionExpiry.Seconds()),
		Secure:   true,
		HTTPOnly: true,
		SameSite: "Lax",
	}

	if s.cfg.DevMode {
		cookieSettings.Secure = false
	}

	c.Cookie(cookieSettings)

	log.Info().Str("username", username).Msg("User logged in")

	return c.Redirect("/settings")
}
