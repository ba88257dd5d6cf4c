// Package session wraps the signed cookie session that carries a visitor's
// cart, shipping quote and admin token between requests.
package session

import (
	"encoding/gob"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"tienda-hogar/models"
)

const (
	keyCart  = "carrito"
	keyQuote = "envio"
	keyToken = "token"
)

func init() {
	gob.Register([]models.CartItem{})
	gob.Register(models.ShippingQuote{})
}

type Manager struct {
	store *sessions.CookieStore
	name  string
}

// NewManager builds the cookie store. maxAge is in seconds and bounds the
// admin session window.
func NewManager(secret []byte, name string, maxAge int) *Manager {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, name: name}
}

// Get returns the request's session, a fresh one if the cookie is missing
// or fails signature verification.
func (m *Manager) Get(c *gin.Context) *sessions.Session {
	s, _ := m.store.Get(c.Request, m.name)
	return s
}

func (m *Manager) Save(c *gin.Context, s *sessions.Session) error {
	return s.Save(c.Request, c.Writer)
}

func (m *Manager) Cart(s *sessions.Session) []models.CartItem {
	if cart, ok := s.Values[keyCart].([]models.CartItem); ok {
		return cart
	}
	return []models.CartItem{}
}

func (m *Manager) SetCart(s *sessions.Session, cart []models.CartItem) {
	s.Values[keyCart] = cart
}

func (m *Manager) Quote(s *sessions.Session) (models.ShippingQuote, bool) {
	quote, ok := s.Values[keyQuote].(models.ShippingQuote)
	return quote, ok
}

func (m *Manager) SetQuote(s *sessions.Session, quote models.ShippingQuote) {
	s.Values[keyQuote] = quote
}

// ClearQuote discards the shipping estimate. Called on every cart mutation
// so a quote never outlives the cart it priced.
func (m *Manager) ClearQuote(s *sessions.Session) {
	delete(s.Values, keyQuote)
}

func (m *Manager) Token(s *sessions.Session) string {
	if token, ok := s.Values[keyToken].(string); ok {
		return token
	}
	return ""
}

func (m *Manager) SetToken(s *sessions.Session, token string) {
	s.Values[keyToken] = token
}

func (m *Manager) ClearToken(s *sessions.Session) {
	delete(s.Values, keyToken)
}

// Reset empties the whole session: cart, quote and token.
func (m *Manager) Reset(s *sessions.Session) {
	for k := range s.Values {
		delete(s.Values, k)
	}
}
