// Package admin holds handlers for routes restricted to administrators.
package admin

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	commondto "github.com/conseccomms/conseccomms/internal/application/common/dto"
	"github.com/conseccomms/conseccomms/internal/application/user/dto"
	"github.com/conseccomms/conseccomms/internal/application/user/usecases"
	"github.com/conseccomms/conseccomms/internal/shared/logger"
	"github.com/conseccomms/conseccomms/internal/shared/utils"
)

type listUsersUseCase interface {
	Execute(ctx context.Context, q usecases.ListUsersQuery) (*commondto.ListResult[dto.UserDTO], error)
}

type exportUsersUseCase interface {
	Execute(ctx context.Context, w io.Writer) error
}

type UserHandler struct {
	listUC   listUsersUseCase
	exportUC exportUsersUseCase
	logger   logger.Interface
}

func NewUserHandler(listUC listUsersUseCase, exportUC exportUsersUseCase, logger logger.Interface) *UserHandler {
	return &UserHandler{
		listUC:   listUC,
		exportUC: exportUC,
		logger:   logger,
	}
}

// ListUsers handles GET /admin/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	p := utils.ParsePagination(c)
	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Email:     c.Query("email"),
		Role:      c.Query("role"),
		Plan:      c.Query("plan"),
		Page:      p.Page,
		PageSize:  p.PageSize,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.PageSize)
}

// ExportUsers handles GET /admin/users/export. The CSV is buffered so a
// failed export still gets a JSON error instead of a truncated file.
func (h *UserHandler) ExportUsers(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.exportUC.Execute(c.Request.Context(), &buf); err != nil {
		h.logger.Errorw("user export failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	filename := fmt.Sprintf("users-%s.csv", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
