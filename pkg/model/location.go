package model

// Location says whether a software system is inside or outside the
// enterprise being modeled.
type Location int

const (
	LocationUnspecified Location = iota
	LocationInternal
	LocationExternal
)

func (l Location) String() string {
	switch l {
	case LocationInternal:
		return "Internal"
	case LocationExternal:
		return "External"
	default:
		return "Unspecified"
	}
}
