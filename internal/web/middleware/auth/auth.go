package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/optionpanel/optionpanel/internal/config"
	"github.com/optionpanel/optionpanel/internal/web/handler/login"
	"github.com/optionpanel/optionpanel/internal/web/session"
)

// New creates a Fiber middleware that checks for an authenticated session.
// When authentication is disabled in the configuration, every request is
// allowed through.
func New(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !cfg.Auth.Enabled {
			return c.Next()
		}

		originalURL := strings.ToLower(c.OriginalURL())
		if strings.HasPrefix(originalURL, "/static") || strings.HasPrefix(originalURL, "/checkalive") {
			return c.Next()
		}

		// Allow logout without authentication
		if IsLogoutPage(c) {
			return c.Next()
		}

		isLoginPage := IsLoginPage(c)

		// get session cookie
		loginCookie := c.Cookies("session")

		// if no session cookie, redirect to login page
		if loginCookie == "" {
			if isLoginPage {
				return c.Next()
			}

			return c.Redirect(login.Path)
		}

		// check session validity
		sessData := new(session.Data)
		if err := sessData.Read(loginCookie); err != nil || !sessData.LoggedIn() {
			// If we're already on the login page, don't redirect (would cause loop)
			if isLoginPage {
				return c.Next()
			}

			return c.Redirect(login.Path)
		}

		// Add the current user to locals for template access
		c.Locals("CurrentUser", sessData.Username)

		if isLoginPage {
			return c.Redirect("/settings")
		}

		return c.Next()
	}
}

// IsLoginPage checks if the current request is for the login page.
func IsLoginPage(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())
	return strings.HasPrefix(originalURL, login.Path)
}

// IsLogoutPage checks if the current request is for the logout page.
func IsLogoutPage(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())
	return strings.HasPrefix(originalURL, "/logout")
}
