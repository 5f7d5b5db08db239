package models

// Mission wire shapes, as served by GET /api/missions. Altitudes are feet
// MSL and positions are degrees, exactly as they come off the wire.

type Mission struct {
	Id                   int64      `json:"id"`
	Active               bool       `json:"active"`
	FlyZones             []FlyZone  `json:"fly_zones"`
	SearchGridPoints     []Waypoint `json:"search_grid_points"`
	MissionWaypoints     []Waypoint `json:"mission_waypoints"`
	AirDropPos           Position   `json:"air_drop_pos"`
	OffAxisTargetPos     Position   `json:"off_axis_target_pos"`
	EmergentLastKnownPos Position   `json:"emergent_last_known_pos"`
}

type FlyZone struct {
	AltitudeMSLMax float64    `json:"altitude_msl_max"`
	AltitudeMSLMin float64    `json:"altitude_msl_min"`
	BoundaryPoints []Position `json:"boundary_pts"`
}

type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Waypoint struct {
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	AltitudeMSL float64 `json:"altitude_msl"`
}
