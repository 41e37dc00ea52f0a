package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/SukaMajuu/hris2-sub001/internal/handler/http/response"
	"github.com/SukaMajuu/hris2-sub001/internal/pkg/jwt"
)

// AdminOnly gates schedule management and company-wide listings behind the
// admin role.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, jwt.ErrInvalidToken.Error())
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(jwt.RoleAdmin) {
			response.Forbidden(w, jwt.ErrAdminRequired.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
