package middleware

import (
	"net/http"

	"github.com/161corp/hr-backend-go/internal/domain/user"
	"github.com/161corp/hr-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AdminOnly restricts a route to users with the admin role.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		role, _ := claims["role"].(string)
		if role != string(user.RoleAdmin) {
			response.Forbidden(w, "admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
