package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wayfare/internal/models/request_models"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type PlacesController struct {
	placeService services.PlaceServiceInterface
}

func NewPlacesController(placeService services.PlaceServiceInterface) *PlacesController {
	return &PlacesController{
		placeService: placeService,
	}
}

// GetPlacesByCity godoc
// @Summary List places in a city
// @Tags Places
// @Produce json
// @Param city path string true "City name"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /places/city/{city} [get]
func (p *PlacesController) GetPlacesByCity(c *gin.Context) {
	city := c.Param("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "City is required")
		return
	}

	places, err := p.placeService.GetPlacesByCity(c.Request.Context(), city)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

// SearchPlaces godoc
// @Summary Search places
// @Tags Places
// @Accept json
// @Produce json
// @Param request body request_models.SearchPlacesRequest true "Search filters"
// @Success 200 {object} utils.APIResponse
// @Router /places/search [post]
func (p *PlacesController) SearchPlaces(c *gin.Context) {
	var req request_models.SearchPlacesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	places, err := p.placeService.SearchPlaces(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

// AutocompletePlaces godoc
// @Summary Autocomplete place names
// @Tags Places
// @Accept json
// @Produce json
// @Param request body request_models.AutocompletePlacesRequest true "Autocomplete query"
// @Success 200 {object} utils.APIResponse
// @Router /places/autocomplete [post]
func (p *PlacesController) AutocompletePlaces(c *gin.Context) {
	var req request_models.AutocompletePlacesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	places, err := p.placeService.AutocompletePlaces(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}
