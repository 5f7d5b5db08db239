package models

// Telemetry is the payload for POST /api/telemetry. Altitude is feet MSL,
// heading is degrees clockwise from true north.
type Telemetry struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	AltitudeMSL float64 `json:"altitude_msl"`
	UASHeading  float64 `json:"uas_heading"`
}
