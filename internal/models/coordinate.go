package models

type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

func (c Coordinate) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

// BoundingBox is a geographic rectangle in degrees. North must be greater
// than south and east greater than west.
type BoundingBox struct {
	North float64 `json:"north"`
	South float64 `json:"south"`
	East  float64 `json:"east"`
	West  float64 `json:"west"`
}

func (b BoundingBox) Valid() bool {
	if b.North <= b.South || b.East <= b.West {
		return false
	}
	return b.North <= 90 && b.South >= -90 && b.East <= 180 && b.West >= -180
}

func (b BoundingBox) Contains(c Coordinate) bool {
	return c.Latitude >= b.South && c.Latitude <= b.North &&
		c.Longitude >= b.West && c.Longitude <= b.East
}
