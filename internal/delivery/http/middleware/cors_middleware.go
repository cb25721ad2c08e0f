package middleware

import (
	"net/http"
	"strings"
)

const corsAllowMethods = "DELETE, GET, HEAD, OPTIONS, PATCH, POST, PUT"

// CORSMiddleware allows every method and header from the configured origins,
// with credentials. "*" in the allow-list admits any origin; since browsers
// reject a wildcard together with credentials, the request origin is echoed.
type CORSMiddleware struct {
	allowAll bool
	origins  map[string]struct{}
}

func NewCORSMiddleware(allowOrigins []string) *CORSMiddleware {
	m := &CORSMiddleware{origins: make(map[string]struct{}, len(allowOrigins))}
	for _, origin := range allowOrigins {
		if origin == "*" {
			m.allowAll = true
			continue
		}
		m.origins[origin] = struct{}{}
	}
	return m
}

func (m *CORSMiddleware) allowed(origin string) bool {
	if m.allowAll {
		return true
	}
	_, ok := m.origins[origin]
	return ok
}

func (m *CORSMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		origin := req.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, req)
			return
		}

		preflight := req.Method == http.MethodOptions && req.Header.Get("Access-Control-Request-Method") != ""
		w.Header().Add("Vary", "Origin")

		if !m.allowed(origin) {
			if preflight {
				http.Error(w, "Disallowed CORS origin", http.StatusBadRequest)
				return
			}
			next.ServeHTTP(w, req)
			return
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if preflight {
			w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
			if headers := req.Header.Get("Access-Control-Request-Headers"); headers != "" {
				w.Header().Set("Access-Control-Allow-Headers", headers)
			}
			w.Header().Set("Access-Control-Max-Age", "600")
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, req)
	})
}

// AllowedOrigins is used for the startup log line.
func (m *CORSMiddleware) AllowedOrigins() string {
	if m.allowAll {
		return "*"
	}
	origins := make([]string, 0, len(m.origins))
	for origin := range m.origins {
		origins = append(origins, origin)
	}
	return strings.Join(origins, ",")
}
