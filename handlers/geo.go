package handlers

import (
	"net/http"
	"strconv"

	"sevasetu/services/geo"
	"sevasetu/utils"

	"github.com/gin-gonic/gin"
)

type GeoHandler struct {
	Lookup geo.Lookup
}

func NewGeoHandler(lookup geo.Lookup) *GeoHandler {
	return &GeoHandler{Lookup: lookup}
}

// LookupPincode handles GET /api/geo/pincode/:pincode. Unknown pincodes
// answer with empty district and state rather than an error.
func (h *GeoHandler) LookupPincode(c *gin.Context) {
	pin := c.Param("pincode")
	if len(pin) != 6 {
		utils.JSONError(c, http.StatusBadRequest, "Enter a valid 6-digit pincode", pin)
		return
	}
	c.JSON(http.StatusOK, h.Lookup.LookupPincode(c.Request.Context(), pin))
}

// ReverseGeocode handles GET /api/geo/reverse?lat=&lon=.
func (h *GeoHandler) ReverseGeocode(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		utils.JSONError(c, http.StatusBadRequest, "lat and lon are required", "")
		return
	}
	getLogger(c).Debug("Reverse geocode requested")
	c.JSON(http.StatusOK, h.Lookup.ReverseGeocode(c.Request.Context(), lat, lon))
}
