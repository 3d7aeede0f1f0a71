package middleware

import "net/http"

func InternalAuth(token string) func(http.Handler) http.Handler {
	return tokenAuth("X-Internal-Token", token)
}

func AdminAuth(token string) func(http.Handler) http.Handler {
	return tokenAuth("X-Admin-Token", token)
}

func tokenAuth(header, token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(header) != token {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
