package models

// Obstacle wire shapes, as served by GET /api/obstacles. Radii and heights
// are feet.

type Obstacles struct {
	MovingObstacles     []MovingObstacle     `json:"moving_obstacles"`
	StationaryObstacles []StationaryObstacle `json:"stationary_obstacles"`
}

type MovingObstacle struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	AltitudeMSL  float64 `json:"altitude_msl"`
	SphereRadius float64 `json:"sphere_radius"`
}

type StationaryObstacle struct {
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	CylinderRadius float64 `json:"cylinder_radius"`
	CylinderHeight float64 `json:"cylinder_height"`
}
