// Package auth provides authentication middleware for the web application.
//
// The middleware handles session validation and automatic redirection for
// unauthenticated requests. It also adds the current username to the request
// context for use in handlers and templates.
//
// The middleware performs the following tasks:
//   - Validates session cookies and redirects to login if invalid
//   - Adds the current username to fiber.Locals for template access
//   - Allows public access to static assets, login, logout and checkalive
//   - Prevents redirect loops on the login page
//
// Usage:
//
//	app.Use(authmiddleware.New(cfg))
//
// When authentication is disabled in the configuration the middleware
// passes every request through unchanged.
package auth
