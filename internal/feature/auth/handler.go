package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-product-api/internal/apperr"
	coreauth "go-product-api/internal/core/auth"
	"go-product-api/internal/feature/user"
	"go-product-api/internal/transport/http/middleware"
	"go-product-api/internal/transport/http/response"
	"go-product-api/pkg/utils"
)

type Handler struct {
	users *user.Repo
	jwter *coreauth.JWTer
	log   *zap.Logger
}

func NewHandler(users *user.Repo, jwter *coreauth.JWTer, log *zap.Logger) *Handler {
	return &Handler{users: users, jwter: jwter, log: log}
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password produce the identical error so callers cannot enumerate
// accounts.
func (h *Handler) Login(c *gin.Context) {
	payload := middleware.Payload(c)
	email, _ := payload["email"].(string)
	password, _ := payload["password"].(string)

	u, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		middleware.Abort(c, err)
		return
	}
	if u == nil || !utils.CheckPassword(password, u.Password) {
		middleware.Abort(c, apperr.HTTP(http.StatusBadRequest, "Invalid Email or Password"))
		return
	}

	token, err := h.jwter.Issue(u.ID, u.Email, u.FirstName)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	response.Message(c, "Login successful")
	response.JSON(c, http.StatusOK, gin.H{"user": u, "token": token})
}
