package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	userapp "github.com/tinybigcorp/backend/internal/application"
	"github.com/tinybigcorp/backend/internal/domain/errs"
	"github.com/tinybigcorp/backend/pkg/response"
	"github.com/tinybigcorp/backend/pkg/validation"
)

// UserHandler adapts HTTP requests to the user service and maps domain
// errors to status codes. Anything it cannot classify becomes a generic
// 500 with detail only in the logs.
type UserHandler struct {
	Svc         *userapp.UserService
	Logger      *logrus.Logger
	MaxPageSize int
}

func NewUserHandler(svc *userapp.UserService, logger *logrus.Logger, maxPageSize int) *UserHandler {
	if maxPageSize <= 0 {
		maxPageSize = 100
	}
	return &UserHandler{Svc: svc, Logger: logger, MaxPageSize: maxPageSize}
}

func (h *UserHandler) fail(c *gin.Context, err error) {
	var notFound *errs.NotFoundError
	var exists *errs.AlreadyExistsError
	var invalid *errs.ValidationError
	switch {
	case errors.As(err, &notFound):
		response.Error[any](c, http.StatusNotFound, notFound.Error(), nil)
	case errors.As(err, &exists):
		response.Error[any](c, http.StatusConflict, exists.Error(),
			map[string]string{"identifier": exists.Identifier})
	case errors.As(err, &invalid):
		response.Error[any](c, http.StatusBadRequest, invalid.Error(), nil)
	default:
		if h.Logger != nil {
			h.Logger.WithError(err).WithField("path", c.FullPath()).Error("unhandled error")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusBadRequest, "invalid user id", nil)
		return 0, false
	}
	return id, true
}

func (h *UserHandler) Create(c *gin.Context) {
	var cmd userapp.CreateUserCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	dto, err := h.Svc.CreateUser(c.Request.Context(), cmd)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, dto, "user created", nil)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dto, err := h.Svc.GetUserByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, dto, "user", nil)
}

func (h *UserHandler) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if skip < 0 {
		skip = 0
	}
	// Caller-supplied limit is clamped here; the repository contract
	// itself carries no upper bound.
	if limit <= 0 || limit > h.MaxPageSize {
		limit = h.MaxPageSize
	}
	dtos, err := h.Svc.ListUsers(c.Request.Context(), skip, limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, dtos, "users",
		map[string]any{"skip": skip, "limit": limit, "count": len(dtos)})
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var cmd userapp.UpdateUserCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	dto, err := h.Svc.UpdateUser(c.Request.Context(), id, cmd)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, dto, "user updated", nil)
}

func (h *UserHandler) Deactivate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	dto, err := h.Svc.DeactivateUser(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, dto, "user deactivated", nil)
}
