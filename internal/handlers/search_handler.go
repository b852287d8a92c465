package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"globetrotter/internal/services"
)

// SearchHandler handles city and activity catalog searches.
type SearchHandler struct {
	searchService services.SearchServicer
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(searchService services.SearchServicer) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchCities handles city catalog search.
// @Summary     Search cities
// @Description Search the city catalog by name, country, or region
// @Tags        search
// @Accept      json
// @Produce     json
// @Param       query   query string false "City name substring"
// @Param       country query string false "Country substring"
// @Param       region  query string false "Region substring"
// @Success     200 {array} services.CityResult "Matching cities"
// @Router      /search/cities [get]
func (h *SearchHandler) SearchCities(c *gin.Context) {
	results := h.searchService.SearchCities(c.Query("query"), c.Query("country"), c.Query("region"))
	c.JSON(http.StatusOK, results)
}

// SearchActivities handles activity catalog search.
// @Summary     Search activities
// @Description Search the activity catalog by name, category, or city
// @Tags        search
// @Accept      json
// @Produce     json
// @Param       query    query string false "Activity name substring"
// @Param       category query string false "Exact category"
// @Param       city     query string false "City substring"
// @Success     200 {array} services.ActivityResult "Matching activities"
// @Router      /search/activities [get]
func (h *SearchHandler) SearchActivities(c *gin.Context) {
	results := h.searchService.SearchActivities(c.Query("query"), c.Query("category"), c.Query("city"))
	c.JSON(http.StatusOK, results)
}
