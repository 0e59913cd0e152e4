package webui

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"dashboard.aifa.mx/internal/report"
)

func (webUI *WebUI) reportHandler(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	var buf bytes.Buffer
	if err := report.Write(&buf, webUI.Store, now); err != nil {
		webUI.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`inline; filename="aifa-reporte-%s.pdf"`, now.Format("2006-01-02")))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Cache-Control", "no-store")
	_, _ = buf.WriteTo(w)
}
