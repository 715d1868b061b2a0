// controllers/srv.go
package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/am5510/hiyeum/app"
	"github.com/am5510/hiyeum/db"
	"github.com/am5510/hiyeum/notify"
	"github.com/am5510/hiyeum/session"
	"github.com/am5510/hiyeum/storage"
)

type Srv struct {
	Repo      *db.Repo
	AdminSess *session.AdminSessionStore
	Store     storage.Uploader
	Notifier  notify.Notifier
	WebOrigin string
	Cfg       app.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo:      db.NewRepo(a.DB),
		AdminSess: a.AdminSessions(),
		Store:     a.Store,
		Notifier:  a.Notifier,
		WebOrigin: a.Config.WebOrigin,
		Cfg:       a.Config,
	}
}

// --- helpers ---

func (s *Srv) setAdminCookie(w http.ResponseWriter, sessionID string, maxAge time.Duration) {
	secure := strings.HasPrefix(s.WebOrigin, "https://")
	http.SetCookie(w, &http.Cookie{
		Name:     app.AdminSessionCookie,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   secure,
		MaxAge:   int(maxAge / time.Second),
	})
}

func (s *Srv) clearAdminCookie(w http.ResponseWriter) {
	secure := strings.HasPrefix(s.WebOrigin, "https://")
	http.SetCookie(w, &http.Cookie{
		Name:     app.AdminSessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		Secure:   secure,
	})
}

// optional normalizes an absent form value to NULL instead of "".
func optional(v string) *string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	return &v
}
