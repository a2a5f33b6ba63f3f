package session

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"

	"auction-admin/internal/models"
)

const (
	sessionName = "auction_admin_session"

	keyUserID = "user_id"
	keyName   = "name"
	keyRole   = "role"
)

// Flash is a one-shot notice carried in the session and shown on the next
// rendered page.
type Flash struct {
	Category string
	Message  string
}

func init() {
	// Cookie store serializes session values with gob.
	gob.Register(Flash{})
}

// CurrentUser is the authenticated-user marker held in the session.
type CurrentUser struct {
	ID   uint
	Name string
	Role models.Role
}

// Manager wraps the cookie store so handlers never touch raw session values.
type Manager struct {
	store *sessions.CookieStore
}

func NewManager(secret string, secure bool) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// User returns the authenticated-user marker, or false when no login has
// happened on this session.
func (m *Manager) User(r *http.Request) (CurrentUser, bool) {
	s, _ := m.store.Get(r, sessionName)

	id, ok := s.Values[keyUserID].(uint)
	if !ok {
		return CurrentUser{}, false
	}

	name, _ := s.Values[keyName].(string)
	role, _ := s.Values[keyRole].(string)

	return CurrentUser{ID: id, Name: name, Role: models.Role(role)}, true
}

// SetUser establishes the authenticated-user marker after a successful
// credential check.
func (m *Manager) SetUser(w http.ResponseWriter, r *http.Request, user *models.User) error {
	s, _ := m.store.Get(r, sessionName)
	s.Values[keyUserID] = user.ID
	s.Values[keyName] = user.Name
	s.Values[keyRole] = string(user.Role)
	return s.Save(r, w)
}

// Clear drops every session value unconditionally.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s, _ := m.store.Get(r, sessionName)
	for k := range s.Values {
		delete(s.Values, k)
	}
	return s.Save(r, w)
}

// AddFlash queues a one-shot message for the next rendered page.
func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, category, message string) {
	s, _ := m.store.Get(r, sessionName)
	s.AddFlash(Flash{Category: category, Message: message})
	_ = s.Save(r, w)
}

// Flashes returns queued messages and clears them from the session.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	s, _ := m.store.Get(r, sessionName)

	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = s.Save(r, w)

	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if flash, ok := f.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}
