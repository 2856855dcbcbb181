package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"wayfare/internal/models/request_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type RoutesController struct {
	routeService services.RouteServiceInterface
}

func NewRoutesController(routeService services.RouteServiceInterface) *RoutesController {
	return &RoutesController{
		routeService: routeService,
	}
}

// CreateRoute godoc
// @Summary Generate a new itinerary
// @Description Build and persist a day-by-day itinerary for a trip request
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body request_models.CreateRouteRequest true "Trip request payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /routes [post]
func (r *RoutesController) CreateRoute(c *gin.Context) {
	var req request_models.CreateRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	resp, err := r.routeService.CreateRoute(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, resp, "Route created successfully")
}

// GetRoute godoc
// @Summary Get a route by id
// @Tags Routes
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /routes/{id} [get]
func (r *RoutesController) GetRoute(c *gin.Context) {
	routeID := c.Param("id")
	if routeID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Route ID is required")
		return
	}

	route, err := r.routeService.GetRoute(c.Request.Context(), routeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, route, "Route fetched successfully")
}

// ListRoutes godoc
// @Summary List routes
// @Tags Routes
// @Produce json
// @Param user_id query string false "Filter by user"
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /routes [get]
func (r *RoutesController) ListRoutes(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	routes, err := r.routeService.ListRoutes(c.Request.Context(), c.Query("user_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, routes, "Routes fetched successfully")
}

// DeleteRoute godoc
// @Summary Delete a route
// @Tags Routes
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /routes/{id} [delete]
func (r *RoutesController) DeleteRoute(c *gin.Context) {
	routeID := c.Param("id")
	if routeID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Route ID is required")
		return
	}

	if err := r.routeService.DeleteRoute(c.Request.Context(), routeID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Route deleted successfully")
}
