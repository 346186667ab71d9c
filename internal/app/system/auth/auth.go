// Package auth holds the two request-level guards the service has: a
// cookie session that remembers the viewer's SPOC filter, and the admin key
// required for uploads, generation and edits.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const spocKey = "spoc"

// SessionManager wraps the cookie store used for viewer preferences.
type SessionManager struct {
	store  *sessions.CookieStore
	name   string
	logger *zap.Logger
}

// NewSessionManager builds a cookie store signed with sessionKey.
//
// In production (secure=true), cookies are Secure + SameSite=None.
// In local dev over http://localhost, use secure=false so cookies are
// accepted.
func NewSessionManager(sessionKey, name, domain string, maxAge time.Duration, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}
	if name == "" {
		name = "mentorhub-session"
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.String("name", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{store: store, name: name, logger: logger}, nil
}

// DevSessionKey returns a random key for local runs without a configured
// one. Sessions signed with it do not survive a restart.
func DevSessionKey() string {
	return fmt.Sprintf("%x", securecookie.GenerateRandomKey(32))
}

// GetSession loads the viewer's session. On a decode failure (rotated key,
// tampered cookie) it still returns a usable fresh session with the error.
func (sm *SessionManager) GetSession(r *http.Request) (*sessions.Session, error) {
	return sm.store.Get(r, sm.name)
}

func (sm *SessionManager) session(r *http.Request) *sessions.Session {
	sess, err := sm.GetSession(r)
	if err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			sm.logger.Debug("session cookie invalid, using fresh session", zap.Error(err))
		} else {
			sm.logger.Warn("session store error, using fresh session", zap.Error(err))
		}
	}
	return sess
}

// SelectedSPOC returns the remembered SPOC filter, or "" for all.
func (sm *SessionManager) SelectedSPOC(r *http.Request) string {
	if v, ok := sm.session(r).Values[spocKey].(string); ok {
		return v
	}
	return ""
}

// SaveSPOC remembers spoc for later requests. An empty spoc clears it.
func (sm *SessionManager) SaveSPOC(w http.ResponseWriter, r *http.Request, spoc string) error {
	sess := sm.session(r)
	if spoc == "" {
		delete(sess.Values, spocKey)
	} else {
		sess.Values[spocKey] = spoc
	}
	return sess.Save(r, w)
}

// SPOCFilter returns the SPOC to filter by for this request. An explicit
// "spoc" query parameter wins, even when empty; otherwise the remembered
// selection is used.
func (sm *SessionManager) SPOCFilter(r *http.Request) string {
	if q := r.URL.Query(); q.Has("spoc") {
		return strings.TrimSpace(q.Get("spoc"))
	}
	return sm.SelectedSPOC(r)
}
