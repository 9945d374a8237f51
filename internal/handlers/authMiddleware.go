package handlers

import (
	"context"
	"net/http"

	utility "snookerslam/internal/utility"
)

// Authentication guards the payments routes. The gateway callback route is
// mounted outside it, since JazzCash cannot send our tokens.
func Authentication() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientToken := r.Header.Get("token")
			if clientToken == "" {
				http.Error(w, "No Authorization header provided", http.StatusUnauthorized)
				return
			}

			claims, errMsg := utility.ValidateToken(clientToken)
			if errMsg != "" {
				http.Error(w, errMsg, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), "email", claims.Email)
			ctx = context.WithValue(ctx, "uid", claims.Uid)

			r = r.WithContext(ctx)
			next.ServeHTTP(w, r)
		})
	}
}
