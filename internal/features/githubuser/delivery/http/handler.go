package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/hereisnaman/api.gitfa.me/internal/common/errors"
	"github.com/hereisnaman/api.gitfa.me/internal/common/logger"
	"github.com/hereisnaman/api.gitfa.me/internal/common/middleware"
	"github.com/hereisnaman/api.gitfa.me/internal/features/githubuser/models"
	"github.com/hereisnaman/api.gitfa.me/internal/features/githubuser/service"
)

// misuseMessage is returned verbatim for requests without a username.
// Clients match on this string, do not change it.
const misuseMessage = "This is not the correct way to use the API."

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{
		service: service,
	}
}

func (h *UserHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/", h.GetUser)
}

// @Summary Get GitHub user statistics
// @Description Returns the profile and repository statistics for a GitHub user. Served from cache when a record younger than the TTL exists; pass fresh=true to force a refetch of a stale record.
// @Tags users
// @Accept json
// @Produce json
// @Param request body models.UserRequest true "Username and optional fresh flag"
// @Success 200 {object} models.UserRecord "User record"
// @Failure 500 {object} models.ErrorResponse "Refresh failure"
// @Router / [post]
func (h *UserHandler) GetUser(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	var req models.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		logger.Error().
			Str("request_id", requestID).
			Msg(misuseMessage)
		c.JSON(http.StatusOK, models.ErrorResponse{Success: false, Message: misuseMessage})
		return
	}

	record, err := h.service.GetUser(c.Request.Context(), req.Name, service.ParseFresh(req.Fresh))
	if err != nil {
		status := http.StatusOK
		message := err.Error()
		if appErr, ok := apperrors.AsAppError(err); ok {
			message = appErr.Message
			// Refresh failures report 500; insert-path and validation
			// failures keep the historical 200 clients depend on.
			if appErr.IsRefreshFailure() {
				status = http.StatusInternalServerError
			}
		}

		logger.Error().
			Str("request_id", requestID).
			Str("username", req.Name).
			Err(err).
			Msg("Request failed")
		c.JSON(status, models.ErrorResponse{Success: false, Message: message})
		return
	}

	logger.Debug().
		Str("request_id", requestID).
		Str("username", record.Username).
		Bool("fresh", record.Fresh).
		Msg("Request served")
	c.JSON(http.StatusOK, record)
}
