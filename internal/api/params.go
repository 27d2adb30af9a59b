package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/saferoute-in/saferoute-go/internal/models"
)

// Query parsing is strict: raw values either become typed domain values or
// the request is rejected. Nothing unchecked reaches the engine.

func parseCoordinate(c *gin.Context) (models.Coordinate, bool) {
	lat, ok := requireFloat(c, "lat")
	if !ok {
		return models.Coordinate{}, false
	}
	lng, ok := requireFloat(c, "lng")
	if !ok {
		return models.Coordinate{}, false
	}
	return models.Coordinate{Latitude: lat, Longitude: lng}, true
}

func parseBounds(c *gin.Context) (models.BoundingBox, bool) {
	north, ok := requireFloat(c, "north")
	if !ok {
		return models.BoundingBox{}, false
	}
	south, ok := requireFloat(c, "south")
	if !ok {
		return models.BoundingBox{}, false
	}
	east, ok := requireFloat(c, "east")
	if !ok {
		return models.BoundingBox{}, false
	}
	west, ok := requireFloat(c, "west")
	if !ok {
		return models.BoundingBox{}, false
	}
	return models.BoundingBox{North: north, South: south, East: east, West: west}, true
}

func parseContext(c *gin.Context) (models.SafetyContext, bool) {
	tod, err := models.ParseTimeOfDay(c.Query("time_of_day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.SafetyContext{}, false
	}
	traveler, err := models.ParseTravelerType(c.Query("traveler_type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.SafetyContext{}, false
	}
	return models.SafetyContext{TimeOfDay: tod, TravelerType: traveler}, true
}

func requireFloat(c *gin.Context, name string) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required parameter " + name})
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a number"})
		return 0, false
	}
	return v, true
}
