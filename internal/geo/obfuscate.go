// Package geo implements the display-time coordinate policy for culturally
// sensitive sites.
package geo

import "math/rand"

// DefaultJitterDegrees is the jitter envelope per axis. 0.05 degrees is
// roughly 5 km at the equator.
const DefaultJitterDegrees = 0.05

// DisplayPoint returns the coordinates to show for an entry. Exact values
// pass through unless the location is sensitive and exact display is not
// permitted, in which case a uniform random offset within ±jitter/2 per axis
// is applied. The offset is drawn fresh on every call; stored coordinates are
// never mutated. This is a cultural-protection control, not a security
// boundary: owners and admins still read exact values through the detail and
// edit paths.
func DisplayPoint(lat, lng float64, sensitive, showExact bool, jitter float64, rng *rand.Rand) (float64, float64) {
	if !sensitive || showExact {
		return lat, lng
	}
	if jitter <= 0 {
		jitter = DefaultJitterDegrees
	}
	lat += (rng.Float64() - 0.5) * jitter
	lng += (rng.Float64() - 0.5) * jitter
	return clampLat(lat), clampLng(lng)
}

// ValidCoordinates reports whether the pair is inside WGS84 bounds.
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func clampLat(v float64) float64 {
	if v > 90 {
		return 90
	}
	if v < -90 {
		return -90
	}
	return v
}

func clampLng(v float64) float64 {
	if v > 180 {
		return 180
	}
	if v < -180 {
		return -180
	}
	return v
}
