package api

import (
	"errors"
	"net/http"

	reqdto "resource-booking-api/internal/handler/dto/request"
	resdto "resource-booking-api/internal/handler/dto/response"
	"resource-booking-api/internal/handler/httperr"
	"resource-booking-api/internal/pkg/errs"
	"resource-booking-api/internal/usecase/commands"
	"resource-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CalendarHandler struct {
	linkCommands commands.CalendarLinkCommands
	syncCommands commands.CalendarSyncCommands
	userQueries  queries.UserQueries
}

func NewCalendarHandler(linkCommands commands.CalendarLinkCommands, syncCommands commands.CalendarSyncCommands, userQueries queries.UserQueries) *CalendarHandler {
	return &CalendarHandler{
		linkCommands: linkCommands,
		syncCommands: syncCommands,
		userQueries:  userQueries,
	}
}

// @Summary Start Outlook calendar login
// @Description Begin the OAuth flow linking a resource to an Outlook calendar
// @Tags o365
// @Security BearerAuth
// @Produce json
// @Param resource_id query string true "Resource ID"
// @Param return_to query string true "URL to redirect to after the callback"
// @Param user_id query string false "Superuser only: link on behalf of this user"
// @Success 200 {object} resdto.CalendarLoginStartResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /o365/login/start [get]
func (h *CalendarHandler) StartLogin(c *gin.Context) {
	actor, ok := currentUser(c, h.userQueries)
	if !ok {
		return
	}

	var req reqdto.CalendarLoginStartQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	result, err := h.linkCommands.StartLogin(c.Request.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Resource not found",
			})
		case errors.Is(err, errs.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		case errors.Is(err, errs.ErrDomainValidationFailed):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request data",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromLoginStartResult(result))
}

// @Summary Outlook OAuth callback
// @Description Completes the login flow and redirects to the stored return_to
// @Tags o365
// @Param state query string true "State nonce issued at login start"
// @Param code query string true "Authorization code"
// @Success 302
// @Failure 400 {string} string "Invalid state."
// @Router /o365/login/callback [get]
func (h *CalendarHandler) LoginCallback(c *gin.Context) {
	var req reqdto.CalendarLoginCallbackQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		c.String(http.StatusBadRequest, "Invalid state.")
		return
	}

	returnTo, err := h.linkCommands.CompleteLogin(c.Request.Context(), req.State, req.Code)
	if err != nil {
		if errors.Is(err, errs.ErrInvalidState) {
			c.String(http.StatusBadRequest, "Invalid state.")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Redirect(http.StatusFound, returnTo)
}

// @Summary Unlink a resource calendar
// @Description Remove the Outlook link and its stored sync state
// @Tags o365
// @Security BearerAuth
// @Param resource_id query string true "Resource ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /o365/link [delete]
func (h *CalendarHandler) Unlink(c *gin.Context) {
	actor, ok := currentUser(c, h.userQueries)
	if !ok {
		return
	}

	resourceID, err := uuid.Parse(c.Query("resource_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid resource id",
		})
		return
	}

	if err := h.linkCommands.Unlink(c.Request.Context(), actor, resourceID); err != nil {
		switch {
		case errors.Is(err, errs.ErrLinkNotFound), errors.Is(err, errs.ErrResourceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Calendar link not found",
			})
		case errors.Is(err, errs.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Trigger a calendar sync run
// @Description Queue calendar links and drain the queue immediately
// @Tags o365
// @Security BearerAuth
// @Produce json
// @Param resource_id query string false "Only sync the link behind this resource"
// @Success 200 {object} resdto.SyncReportResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /o365/sync [post]
func (h *CalendarHandler) TriggerSync(c *gin.Context) {
	actor, ok := currentUser(c, h.userQueries)
	if !ok {
		return
	}
	if !actor.IsGeneralAdmin && !actor.IsSuperuser {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
		return
	}

	var resourceID *uuid.UUID
	if raw := c.Query("resource_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid resource id",
			})
			return
		}
		resourceID = &id
	}

	report, err := h.syncCommands.SyncNow(c.Request.Context(), resourceID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrLinkNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Calendar link not found",
			})
		case errors.Is(err, commands.ErrSyncAlreadyRunning):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Sync already running",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSyncReport(report))
}
