package models

// Enumerations used by the interoperability server. Values match the wire
// format exactly, so anything outside these sets is rejected at the boundary.

type TargetType string

const (
	TypeStandard TargetType = "standard"
	TypeOffAxis  TargetType = "off_axis"
	TypeEmergent TargetType = "emergent"
	TypeQRC      TargetType = "qrc"
)

var targetTypes = map[TargetType]bool{
	TypeStandard: true,
	TypeOffAxis:  true,
	TypeEmergent: true,
	TypeQRC:      true,
}

func (t TargetType) Valid() bool {
	return targetTypes[t]
}

// Orientation is an 8-way compass orientation.
type Orientation string

const (
	North     Orientation = "n"
	Northeast Orientation = "ne"
	East      Orientation = "e"
	Southeast Orientation = "se"
	South     Orientation = "s"
	Southwest Orientation = "sw"
	West      Orientation = "w"
	Northwest Orientation = "nw"
)

var orientations = map[Orientation]bool{
	North: true, Northeast: true, East: true, Southeast: true,
	South: true, Southwest: true, West: true, Northwest: true,
}

func (o Orientation) Valid() bool {
	return orientations[o]
}

type Shape string

const (
	Circle        Shape = "circle"
	Semicircle    Shape = "semicircle"
	QuarterCircle Shape = "quarter_circle"
	Triangle      Shape = "triangle"
	Square        Shape = "square"
	Rectangle     Shape = "rectangle"
	Trapezoid     Shape = "trapezoid"
	Pentagon      Shape = "pentagon"
	Hexagon       Shape = "hexagon"
	Heptagon      Shape = "heptagon"
	Octagon       Shape = "octagon"
	Star          Shape = "star"
	Cross         Shape = "cross"
)

var shapes = map[Shape]bool{
	Circle: true, Semicircle: true, QuarterCircle: true, Triangle: true,
	Square: true, Rectangle: true, Trapezoid: true, Pentagon: true,
	Hexagon: true, Heptagon: true, Octagon: true, Star: true, Cross: true,
}

func (s Shape) Valid() bool {
	return shapes[s]
}

type Color string

const (
	White  Color = "white"
	Black  Color = "black"
	Gray   Color = "gray"
	Red    Color = "red"
	Blue   Color = "blue"
	Green  Color = "green"
	Yellow Color = "yellow"
	Purple Color = "purple"
	Brown  Color = "brown"
	Orange Color = "orange"
)

var colors = map[Color]bool{
	White: true, Black: true, Gray: true, Red: true, Blue: true,
	Green: true, Yellow: true, Purple: true, Brown: true, Orange: true,
}

func (c Color) Valid() bool {
	return colors[c]
}
