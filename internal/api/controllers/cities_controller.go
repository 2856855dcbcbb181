package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wayfare/internal/services"
	"wayfare/pkg/utils"
)

type CitiesController struct {
	cityService services.CityServiceInterface
}

func NewCitiesController(cityService services.CityServiceInterface) *CitiesController {
	return &CitiesController{
		cityService: cityService,
	}
}

// ListCities godoc
// @Summary List all supported cities
// @Tags Cities
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /cities [get]
func (ct *CitiesController) ListCities(c *gin.Context) {
	cities, err := ct.cityService.ListCities(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

// GetCitiesByCountry godoc
// @Summary List cities of a country
// @Tags Cities
// @Produce json
// @Param country path string true "Country name"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /cities/country/{country} [get]
func (ct *CitiesController) GetCitiesByCountry(c *gin.Context) {
	country := c.Param("country")
	if country == "" {
		utils.RespondError(c, http.StatusBadRequest, "Country is required")
		return
	}

	cities, err := ct.cityService.GetCitiesByCountry(c.Request.Context(), country)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}
