package models

import (
	"fmt"

	"github.com/PlumpMath/ros-interop/internal/myerrors"
)

// Target mirrors the interoperability server's target record. Which fields
// must be set depends on Type; Validate consults the requiredFields table.
//
// At most six targets per mission may carry Autonomous = true. That is a
// mission-planning rule owned by callers, not checked here.
type Target struct {
	Id                int64        `json:"id"`
	Type              TargetType   `json:"type" binding:"required"`
	Latitude          *float64     `json:"latitude,omitempty"`
	Longitude         *float64     `json:"longitude,omitempty"`
	Orientation       *Orientation `json:"orientation,omitempty"`
	Shape             *Shape       `json:"shape,omitempty"`
	BackgroundColor   *Color       `json:"background_color,omitempty"`
	AlphanumericColor *Color       `json:"alphanumeric_color,omitempty"`
	Alphanumeric      *string      `json:"alphanumeric,omitempty"`
	Description       *string      `json:"description,omitempty"`
	Autonomous        *bool        `json:"autonomous,omitempty"`
}

// TargetImage is the thumbnail attached to a target. It lives and dies
// independently of the target record itself.
type TargetImage struct {
	TargetId    int64  `json:"targetId"`
	ContentType string `json:"contentType"`
	Image       []byte `json:"image"`
}

type targetField struct {
	present func(*Target) bool
	inRange func(*Target) bool // nil when the field is not an enumeration
}

var targetFields = map[string]targetField{
	"latitude":  {present: func(t *Target) bool { return t.Latitude != nil }},
	"longitude": {present: func(t *Target) bool { return t.Longitude != nil }},
	"orientation": {
		present: func(t *Target) bool { return t.Orientation != nil },
		inRange: func(t *Target) bool { return t.Orientation.Valid() },
	},
	"shape": {
		present: func(t *Target) bool { return t.Shape != nil },
		inRange: func(t *Target) bool { return t.Shape.Valid() },
	},
	"background_color": {
		present: func(t *Target) bool { return t.BackgroundColor != nil },
		inRange: func(t *Target) bool { return t.BackgroundColor.Valid() },
	},
	"alphanumeric_color": {
		present: func(t *Target) bool { return t.AlphanumericColor != nil },
		inRange: func(t *Target) bool { return t.AlphanumericColor.Valid() },
	},
	"alphanumeric": {present: func(t *Target) bool { return t.Alphanumeric != nil }},
	"description":  {present: func(t *Target) bool { return t.Description != nil }},
	"autonomous":   {present: func(t *Target) bool { return t.Autonomous != nil }},
}

// requiredFields keys the required-field subset by target type. The server
// enforces the same table, so keep the two in sync.
var requiredFields = map[TargetType][]string{
	TypeStandard: {
		"latitude", "longitude", "orientation", "shape",
		"background_color", "alphanumeric_color", "alphanumeric", "autonomous",
	},
	TypeOffAxis: {
		"orientation", "shape",
		"background_color", "alphanumeric_color", "alphanumeric", "autonomous",
	},
	TypeEmergent: {"latitude", "longitude", "description"},
	TypeQRC:      {"latitude", "longitude", "description"},
}

// fieldOrder fixes which offending field gets named first.
var fieldOrder = []string{
	"latitude", "longitude", "orientation", "shape",
	"background_color", "alphanumeric_color", "alphanumeric",
	"description", "autonomous",
}

// Validate checks the target against the required-field subset for its
// declared type and rejects out-of-range enumeration values. It returns a
// *myerrors.ValidationError naming the first offending field, or nil.
func (t *Target) Validate() error {
	if !t.Type.Valid() {
		return &myerrors.ValidationError{
			Field:   "type",
			Message: fmt.Sprintf("unknown target type %q", t.Type),
		}
	}

	required := make(map[string]bool, len(requiredFields[t.Type]))
	for _, name := range requiredFields[t.Type] {
		required[name] = true
	}

	for _, name := range fieldOrder {
		field := targetFields[name]
		if required[name] && !field.present(t) {
			return &myerrors.ValidationError{
				Field:   name,
				Message: fmt.Sprintf("%s is required for %s targets", name, t.Type),
			}
		}
		if field.inRange != nil && field.present(t) && !field.inRange(t) {
			return &myerrors.ValidationError{
				Field:   name,
				Message: fmt.Sprintf("%s holds a value outside its enumeration", name),
			}
		}
	}
	return nil
}
