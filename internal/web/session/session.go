// Package session manages login sessions for the administration interface.
package session

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage"
	"github.com/gofiber/storage/memory/v2"

	"github.com/optionpanel/optionpanel/internal/uniuri"
)

// SessionIDLength is the length of generated session identifiers.
const SessionIDLength = 64

// Store is the global session store instance.
var Store *session.Store

// Data represents the session data structure.
type Data struct {
	Username string
}

// LoggedIn reports whether the session belongs to an authenticated user.
func (s *Data) LoggedIn() bool {
	return s.Username != ""
}

// Write writes the session data for the given session ID with an expiration duration.
func (s *Data) Write(sessionID string, exp time.Duration) error {
	out, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return Store.Storage.Set(sessionID, out, exp)
}

// Read reads the session data for the given session ID.
func (s *Data) Read(sessionID string) error {
	byteData, err := Store.Storage.Get(sessionID)
	if err != nil {
		return err
	}

	return json.Unmarshal(byteData, s)
}

// Delete removes the session data for the given session ID.
func Delete(sessionID string) error {
	return Store.Storage.Delete(sessionID)
}

// Init initializes the session store with the provided storage backend.
// A nil storage falls back to an in-memory backend.
func Init(store storage.Storage) {
	if store == nil {
		store = memory.New()
	}

	Store = session.New(session.Config{
		Storage:      store,
		KeyGenerator: GenerateSessionID,
	})
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() string {
	return uniuri.NewLen(SessionIDLength)
}
