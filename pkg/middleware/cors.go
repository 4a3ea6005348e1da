package middleware

import (
	"net/http"
)

const allowAllOrigins = "*"

type originPolicy struct {
	allowAll bool
	origins  map[string]bool
}

func newOriginPolicy(allowedOrigins []string) originPolicy {
	policy := originPolicy{origins: make(map[string]bool, len(allowedOrigins))}
	for _, origin := range allowedOrigins {
		if origin == allowAllOrigins {
			policy.allowAll = true
		}
		policy.origins[origin] = true
	}
	return policy
}

func (p originPolicy) isAllowed(origin string) bool {
	return p.allowAll || p.origins[origin]
}

// Cors libera as origens configuradas; "*" libera qualquer origem (sem credenciais)
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	policy := newOriginPolicy(allowedOrigins)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if origin != "" && policy.isAllowed(origin) {
				if policy.allowAll {
					w.Header().Set("Access-Control-Allow-Origin", allowAllOrigins)
				} else {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Allow-Credentials", "true")
					w.Header().Add("Vary", "Origin")
				}
				w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, X-Requested-With")
				w.Header().Set("Access-Control-Max-Age", "86400") // Cache do CORS por 24 horas
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
