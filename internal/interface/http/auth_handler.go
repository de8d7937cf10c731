package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/zonecast/zonecast/internal/application"
	"github.com/zonecast/zonecast/internal/infrastructure/postgres"
	"github.com/zonecast/zonecast/pkg/helpers"
	"github.com/zonecast/zonecast/pkg/response"
	"github.com/zonecast/zonecast/pkg/validation"
)

type AuthHandler struct {
	Pool   *pgxpool.Pool
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthHandler(pool *pgxpool.Pool, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Pool: pool, JWT: jwt, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// loginRequest deliberately carries no length policy: any present
// credential pair goes to the workflow so every failed attempt gets
// the same generic 401.
type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	err := postgres.WithTx(c.Request.Context(), h.Pool, func(tx pgx.Tx) error {
		svc := application.NewAuthService(postgres.NewUserRepository(tx), h.JWT, h.Logger)
		return svc.Register(c.Request.Context(), req.Username, req.Password)
	})
	if err != nil {
		if errors.Is(err, application.ErrUsernameTaken) {
			response.Error(c, http.StatusBadRequest, "username already exists", nil)
			return
		}
		h.Logger.WithError(err).Error("registration failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	response.Message(c, http.StatusCreated, "user registered")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	var result *application.AuthResult
	err := postgres.WithTx(c.Request.Context(), h.Pool, func(tx pgx.Tx) error {
		svc := application.NewAuthService(postgres.NewUserRepository(tx), h.JWT, h.Logger)
		var err error
		result, err = svc.Login(c.Request.Context(), req.Username, req.Password)
		return err
	})
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, result)
}
