// Package alerts carries user-facing alert messages across a redirect.
//
// Pages that re-render in the same response collect alerts with
// listview.Messages. When a handler redirects instead (edit form success),
// the messages are parked in a short-lived cookie session and popped by the
// next page render.
package alerts

import (
	"errors"
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// DefaultSessionName is the cookie name used when none is configured.
const DefaultSessionName = "eduadmin-flash"

const flashKey = "alerts"

// Flash stores alert messages in a signed cookie.
type Flash struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewFlash builds the flash store. An empty sessionKey is only accepted
// outside production; a random key is generated, so flashes do not survive a
// restart.
func NewFlash(sessionKey, name string, secure bool, logger *zap.Logger) (*Flash, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if name == "" {
		name = DefaultSessionName
	}

	key := []byte(sessionKey)
	if len(key) == 0 {
		if secure {
			return nil, errors.New("session key is empty; provide 32+ random chars")
		}
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, errors.New("could not generate a session key")
		}
		logger.Warn("session key not set; using a random key for this process")
	} else if len(key) < 32 {
		logger.Warn("session key is short; 32+ chars recommended", zap.Int("length", len(key)))
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Flash{store: store, name: name, log: logger}, nil
}

// Add queues msg for the next page render. A nil Flash drops msg.
func (f *Flash) Add(w http.ResponseWriter, r *http.Request, msg string) error {
	if f == nil {
		return nil
	}
	sess := f.session(r)
	sess.AddFlash(msg, flashKey)
	return sess.Save(r, w)
}

// Pop returns and clears the queued messages. Errors are logged and yield
// no messages.
func (f *Flash) Pop(w http.ResponseWriter, r *http.Request) []string {
	if f == nil {
		return nil
	}
	sess := f.session(r)
	raw := sess.Flashes(flashKey)
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		f.log.Warn("flash save failed", zap.Error(err))
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// session returns the flash session, falling back to a fresh one when the
// cookie cannot be decoded (for example after a key change).
func (f *Flash) session(r *http.Request) *sessions.Session {
	sess, err := f.store.Get(r, f.name)
	if err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			f.log.Debug("flash cookie invalid, using fresh session", zap.Error(err))
		} else {
			f.log.Warn("flash store error, using fresh session", zap.Error(err))
		}
	}
	return sess
}
