package webui

import (
	"io/fs"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// SetWebUIRoutes registers the page, fragment, figure and asset routes.
func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) error {
	assets, err := fs.Sub(assetFS, "assets")
	if err != nil {
		return err
	}

	router.HandlerFunc(http.MethodGet, "/", webUI.indexHandler)
	router.HandlerFunc(http.MethodGet, "/tab/:id", webUI.tabHandler)
	router.HandlerFunc(http.MethodGet, "/charts/:id", webUI.chartHandler)
	router.HandlerFunc(http.MethodGet, "/live-time", webUI.liveTimeHandler)
	router.HandlerFunc(http.MethodPost, "/methodology/login", webUI.loginHandler)
	router.HandlerFunc(http.MethodPost, "/methodology/logout", webUI.logoutHandler)
	router.HandlerFunc(http.MethodGet, "/report.pdf", webUI.reportHandler)
	router.HandlerFunc(http.MethodGet, "/healthz", webUI.healthHandler)
	router.ServeFiles("/assets/*filepath", http.FS(assets))

	if !webUI.Config.IsProduction() {
		router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
	}
	return nil
}
