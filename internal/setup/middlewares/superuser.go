package middlewares

import (
	"net/http"

	"github.com/ailefin/finance-backend/internal/domain/models"
	"github.com/ailefin/finance-backend/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RequireSuperuser rejects requests whose authenticated user does not carry
// the SUPERUSER role. Runs after VerifyAccessToken so the UserId header is set.
func RequireSuperuser(next http.Handler, findUserByIdRepository usecase.FindUserByIdRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userId, err := primitive.ObjectIDFromHex(r.Header.Get("UserId"))
		if err != nil {
			http.Error(w, "Invalid user ID", http.StatusBadRequest)
			return
		}

		user, err := findUserByIdRepository.Find(userId)
		if err != nil {
			http.Error(w, "Error loading user", http.StatusInternalServerError)
			return
		}
		if user == nil || user.Role != models.UserRoleSuperuser {
			http.Error(w, "Superuser access required", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
