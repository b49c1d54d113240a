// Package geo holds spherical helpers for radius search.
package geo

// EarthRadiusMiles is the Earth's mean radius used to turn distances into angles.
const EarthRadiusMiles = 3963.0

// RadiusFromDistance converts a distance in miles to an angular radius in radians,
// the unit expected by the spherical radius filter.
func RadiusFromDistance(miles float64) float64 {
	return miles / EarthRadiusMiles
}
