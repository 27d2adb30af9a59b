package models

import "fmt"

// InvalidCoordinateError reports a latitude/longitude outside the valid
// range. It is a precondition violation by the caller of the score engine.
type InvalidCoordinateError struct {
	Coordinate Coordinate
}

func (e *InvalidCoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate: lat=%v lng=%v", e.Coordinate.Latitude, e.Coordinate.Longitude)
}

// InvalidRequestError reports a malformed heatmap or score request (bad
// bounds, zoom out of range, unparseable context). Raised before any grid
// work starts and propagated to the caller unmodified.
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return "invalid request: " + e.Reason
}
