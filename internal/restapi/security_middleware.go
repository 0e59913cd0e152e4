package restapi

import (
	"net/http"
	"strings"
)

// apiContentSecurityPolicy applies to the JSON API, which serves no markup.
const apiContentSecurityPolicy = "default-src 'none'; frame-ancestors 'none';"

// pageContentSecurityPolicy lets the dashboard load plotly.js and the icon
// set from their CDNs. Plotly sets inline styles and fetches map topology.
const pageContentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self' https://cdn.plot.ly https://code.iconify.design; " +
	"style-src 'self' 'unsafe-inline'; " +
	"img-src 'self' data: blob:; " +
	"connect-src 'self' https://cdn.plot.ly https://api.iconify.design https://api.simplesvg.com https://api.unisvg.com; " +
	"frame-src 'self'; frame-ancestors 'self'; form-action 'self'; base-uri 'self';"

// WithSecurityHeaders wraps the given handler with security headers middleware
func (api *RestAPI) WithSecurityHeaders(handler http.Handler) http.Handler {
	return securityHeaders(handler)
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/")
}

// securityHeaders adds essential security headers to all HTTP responses
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		api := isAPIPath(r.URL.Path)
		if api {
			h.Set("X-Frame-Options", "DENY")
			h.Set("Content-Security-Policy", apiContentSecurityPolicy)
		} else {
			// the methodology tab embeds the demo page in an iframe
			h.Set("X-Frame-Options", "SAMEORIGIN")
			h.Set("Content-Security-Policy", pageContentSecurityPolicy)
		}

		// CORS headers for API access only; pages and the login form stay same-origin
		if api && r.Header.Get("Origin") != "" {
			h.Set("Access-Control-Allow-Origin", "*")
			h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			h.Set("Access-Control-Max-Age", "86400")
		}

		if api && r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
