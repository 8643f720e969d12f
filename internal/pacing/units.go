package pacing

// Distance units accepted by ToMeters.
const (
	Meters     = "meters"
	Kilometers = "km"
	Miles      = "miles"
)

// MetersPerMile is the conversion factor used for Miles.
const MetersPerMile = 1609.34

// ToMeters converts a distance to meters. Unknown units are taken as meters.
func ToMeters(value float64, unit string) float64 {
	switch unit {
	case Kilometers:
		return value * 1000
	case Miles:
		return value * MetersPerMile
	default:
		return value
	}
}
