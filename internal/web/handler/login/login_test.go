package login

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/optionpanel/optionpanel/internal/auth"
	"github.com/optionpanel/optionpanel/internal/config"
	websess "github.com/optionpanel/optionpanel/internal/web/session"
)

// noOpViews is a minimal Fiber Views engine used for tests.
// It writes the "Error" field from the provided fiber.Map (if any)
// so tests can assert error messages rendered by handlers.
type noOpViews struct{}

func (noOpViews) Load() error { return nil }

func (noOpViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	if m, ok := data.(fiber.Map); ok {
		if v, exists := m["Error"]; exists && v != nil {
			_, _ = io.WriteString(w, v.(string))
			return nil
		}
	}
	// write template name to have some content
	_, _ = io.WriteString(w, name)

	return nil
}

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{Views: noOpViews{}})
}

func newTestConfig(t *testing.T, password string) *config.Config {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	return &config.Config{
		DevMode: false,
		Webserver: config.Webserver{
			URL:  "http://localhost",
			Port: 3000,
		},
		Auth: config.Auth{
			Enabled:       true,
			Username:      "admin",
			PasswordHash:  hash,
			SessionExpiry: time.Minute,
		},
	}
}

func performPost(t *testing.T, app *fiber.App, target string, form url.Values) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	return resp
}

func TestPost_Success_SetsCookieAndRedirects(t *testing.T) {
	cfg := newTestConfig(t, "s3cr3t")
	cfg.DevMode = false // Secure cookie expected

	app := newTestApp()

	websess.Init(nil)

	var s Service
	if err := s.Init(app, cfg, nil); err != nil {
		t.Fatalf("failed to init login handler: %v", err)
	}

	form := url.Values{
		"username": {"admin"},
		"password": {"s3cr3t"},
	}
	resp := performPost(t, app, Path+"/", form)

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302 Found, got %d", resp.StatusCode)
	}

	if loc := resp.Header.Get("Location"); loc != "/settings" {
		t.Fatalf("expected redirect to /settings, got %s", loc)
	}

	setCookie := resp.Header.Get("Set-Cookie")
	if !strings.Contains(setCookie, "session=") {
		t.Fatalf("expected session cookie, got %q", setCookie)
	}

	if !strings.Contains(strings.ToLower(setCookie), "secure") {
		t.Fatalf("expected Secure flag on cookie when DevMode=false, got %q", setCookie)
	}
}

func TestPost_Success_DevModeDisablesSecure(t *testing.T) {
	cfg := newTestConfig(t, "pass")
	cfg.DevMode = true // Secure=false expected

	app := newTestApp()

	websess.Init(nil)

	var s Service
	if err := s.Init(app, cfg, nil); err != nil {
		t.Fatalf("failed to init login handler: %v", err)
	}

	form := url.Values{
		"username": {"admin"},
		"password": {"pass"},
	}
	resp := performPost(t, app, Path+"/", form)

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302 Found, got %d", resp.StatusCode)
	}

	setCookie := resp.Header.Get("Set-Cookie")
	if strings.Contains(strings.ToLower(setCookie), "secure") {
		t.Fatalf("did not expect Secure flag when DevMode=true, got %q", setCookie)
	}
}

func TestPost_WrongPassword_RendersError(t *testing.T) {
	cfg := newTestConfig(t, "right")

	app := newTestApp()

	websess.Init(nil)

	var s Service
	if err := s.Init(app, cfg, nil); err != nil {
		t.Fatalf("failed to init login handler: %v", err)
	}

	form := url.Values{
		"username": {"admin"},
		"password": {"wrong"},
	}
	resp := performPost(t, app, Path+"/", form)

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d", resp.StatusCode)
	}

	bodyBytes, _ := io.ReadAll(resp.Body)

	if !strings.Contains(string(bodyBytes), "Invalid username or password") {
		t.Fatalf("expected error message in body, got %q", string(bodyBytes))
	}
}

func TestPost_WrongUsername_RendersError(t *testing.T) {
	cfg := newTestConfig(t, "s3cr3t")

	app := newTestApp()

	websess.Init(nil)

	var s Service
	if err := s.Init(app, cfg, nil); err != nil {
		t.Fatalf("failed to init login handler: %v", err)
	}

	form := url.Values{
		"username": {"root"},
		"password": {"s3cr3t"},
	}
	resp := performPost(t, app, Path+"/", form)

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d", resp.StatusCode)
	}
}

func TestGet_RendersLoginPage(t *testing.T) {
	cfg := newTestConfig(t, "s3cr3t")

	app := newTestApp()

	websess.Init(nil)

	var s Service
	if err := s.Init(app, cfg, nil); err != nil {
		t.Fatalf("failed to init login handler: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, Path+"/", nil)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test failed: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", resp.StatusCode)
	}
}
