package api

import (
	"errors"
	"net/http"

	reqdto "resource-booking-api/internal/handler/dto/request"
	resdto "resource-booking-api/internal/handler/dto/response"
	"resource-booking-api/internal/handler/httperr"
	"resource-booking-api/internal/handler/middleware"
	"resource-booking-api/internal/pkg/errs"
	"resource-booking-api/internal/usecase/commands"
	"resource-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UnitHandler struct {
	unitQueries  queries.UnitQueries
	userQueries  queries.UserQueries
	authCommands commands.UnitAuthorizationCommands
}

func NewUnitHandler(unitQueries queries.UnitQueries, userQueries queries.UserQueries, authCommands commands.UnitAuthorizationCommands) *UnitHandler {
	return &UnitHandler{
		unitQueries:  unitQueries,
		userQueries:  userQueries,
		authCommands: authCommands,
	}
}

// currentUser resolves the authenticated actor behind the request. Handlers
// that check unit-level permissions need the full flag set, not just the
// token claims.
func currentUser(c *gin.Context, userQueries queries.UserQueries) (*queries.AuthorizedUserView, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return nil, false
	}
	actor, err := userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound), errors.Is(err, queries.ErrUserInactive):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "User not authenticated",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return nil, false
	}
	return actor, true
}

// @Summary List units
// @Description List all units, or just those where the caller holds the given roles
// @Tags units
// @Security BearerAuth
// @Produce json
// @Param role query string false "Comma separated levels (viewer,manager,admin)"
// @Param scope query string false "unit or unit_group; empty means both"
// @Success 200 {array} resdto.UnitResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /units [get]
func (h *UnitHandler) ListUnits(c *gin.Context) {
	var filter reqdto.RoleFilterQuery
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	if filter.Role == "" {
		units, err := h.unitQueries.ListUnits(c.Request.Context())
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
		c.JSON(http.StatusOK, resdto.FromUnitViews(units))
		return
	}

	actor, ok := currentUser(c, h.userQueries)
	if !ok {
		return
	}

	units, err := h.unitQueries.ListUnitsByRoles(c.Request.Context(), actor, filter.ToRoles())
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrNoRolesRequested):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "No valid roles requested",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnitViews(units))
}

// @Summary List managed units
// @Description List units the caller manages (manager level or above)
// @Tags units
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.UnitResponse
// @Failure 401 {object} map[string]string
// @Router /units/managed [get]
func (h *UnitHandler) ListManagedUnits(c *gin.Context) {
	actor, ok := currentUser(c, h.userQueries)
	if !ok {
		return
	}

	units, err := h.unitQueries.ListManagedUnits(c.Request.Context(), actor)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnitViews(units))
}

// @Summary Get unit
// @Tags units
// @Security BearerAuth
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {object} resdto.UnitResponse
// @Failure 404 {object} map[string]string
// @Router /units/{id} [get]
func (h *UnitHandler) GetUnit(c *gin.Context) {
	view, err := h.unitQueries.GetUnit(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUnitNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Unit not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromUnitView(view))
}

// @Summary Grant unit authorization
// @Description Grant a level on a unit to a user, backfilling lower levels
// @Tags units
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Unit ID"
// @Param request body reqdto.GrantAuthorizationRequest true "Grant request"
// @Success 201 {object} resdto.GrantedAuthorizationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /units/{id}/authorizations [post]
func (h *UnitHandler) GrantAuthorization(c *gin.Context) {
	actor, ok := currentUser(c, h.userQueries)
	if !ok {
		return
	}

	var req reqdto.GrantAuthorizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authCommands.Grant(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUnitNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Unit not found",
			})
		case errors.Is(err, errs.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		case errors.Is(err, errs.ErrInvalidLevel):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid authorization level",
			})
		case errors.Is(err, errs.ErrDomainValidationFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Domain validation failed",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp := resdto.GrantedAuthorizationResponse{
		UnitID:        result.UnitID,
		UserID:        result.UserID.String(),
		Level:         result.Level.String(),
		EnsuredLevels: make([]string, 0, len(result.EnsuredLevels)),
		StaffPromoted: result.StaffPromoted,
	}
	for _, lv := range result.EnsuredLevels {
		resp.EnsuredLevels = append(resp.EnsuredLevels, lv.String())
	}
	c.JSON(http.StatusCreated, resp)
}

// @Summary Highest authorization per user
// @Description One row per user holding the maximum level on the unit
// @Tags units
// @Security BearerAuth
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {array} resdto.UnitAuthorizationResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /units/{id}/authorizations/highest [get]
func (h *UnitHandler) ListHighestAuthorizations(c *gin.Context) {
	actor, ok := currentUser(c, h.userQueries)
	if !ok {
		return
	}

	views, err := h.unitQueries.ListHighestAuthorizations(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeUnitQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAuthorizationViews(views))
}

// @Summary List reservation approvers
// @Description Users allowed to approve reservations for the unit
// @Tags units
// @Security BearerAuth
// @Produce json
// @Param id path string true "Unit ID"
// @Success 200 {array} resdto.ApproverResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /units/{id}/approvers [get]
func (h *UnitHandler) ListApprovers(c *gin.Context) {
	actor, ok := currentUser(c, h.userQueries)
	if !ok {
		return
	}

	views, err := h.unitQueries.ListApprovers(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeUnitQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromApproverViews(views))
}

func (h *UnitHandler) writeUnitQueryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queries.ErrUnitNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Unit not found",
		})
	case errors.Is(err, queries.ErrUnitAccessDenied):
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
