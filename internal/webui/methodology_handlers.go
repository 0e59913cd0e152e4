package webui

import (
	"log/slog"
	"net/http"
	"strings"

	"dashboard.aifa.mx/internal/app"
	"dashboard.aifa.mx/internal/dashboard"
	"dashboard.aifa.mx/internal/logging"
	"dashboard.aifa.mx/internal/utils"
)

const (
	sessionCookieName = "aifa_session"
	loginErrorText    = "Credenciales inválidas"
	maxLoginFormBytes = 4 << 10
)

// session returns the live session named by the request cookie.
func (webUI *WebUI) session(r *http.Request) (app.Session, bool) {
	if webUI.Sessions == nil {
		return app.Session{}, false
	}
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return app.Session{}, false
	}
	return webUI.Sessions.Lookup(cookie.Value)
}

func (webUI *WebUI) loginHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxLoginFormBytes)
	defer logging.SafeCloseWithLogging(r.Body, webUI.logger(r), "login_form_body")
	if err := r.ParseForm(); err != nil {
		webUI.badRequest(w, r, map[string][]string{"form": {"invalid form body"}})
		return
	}

	username := strings.TrimSpace(r.PostForm.Get("username"))
	password := r.PostForm.Get("password")

	if fieldErrors := utils.ValidateCredentials(username, password); len(fieldErrors) > 0 {
		webUI.rejectLogin(w, r, http.StatusBadRequest)
		return
	}

	if err := webUI.Credentials.Verify(username, password); err != nil {
		logging.LogOperation(webUI.logger(r), "methodology_login_rejected",
			slog.String("username", utils.SanitizeInput(username)))
		webUI.rejectLogin(w, r, http.StatusUnauthorized)
		return
	}

	session := webUI.Sessions.Create(username)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   webUI.Config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	logging.LogOperation(webUI.logger(r), "methodology_login",
		slog.String("username", username))

	http.Redirect(w, r, "/?tab="+dashboard.TabMethodology, http.StatusSeeOther)
}

// rejectLogin re-renders the methodology login form with the error message.
func (webUI *WebUI) rejectLogin(w http.ResponseWriter, r *http.Request, status int) {
	req := webUI.dashboardRequest(r, "")
	req.Authenticated = false
	req.LoginError = loginErrorText
	webUI.writePage(w, r, status, dashboard.TabMethodology, req)
}

func (webUI *WebUI) logoutHandler(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && webUI.Sessions != nil {
		webUI.Sessions.Delete(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   webUI.Config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/?tab="+dashboard.TabMethodology, http.StatusSeeOther)
}
