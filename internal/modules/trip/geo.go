// README: Pure geographic helpers for itinerary diagnostics.
package trip

import "math"

const earthRadiusKm = 6371.0

// haversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// daySpanKm sums the leg distances of a day's stops in visiting order.
// Stops with unresolved (0,0) coordinates are skipped.
func daySpanKm(d Day) float64 {
	var total float64
	var prev *Location
	for i := range d.Locations {
		loc := &d.Locations[i]
		if loc.Lat == 0 && loc.Lng == 0 {
			continue
		}
		if prev != nil {
			total += haversineKm(prev.Lat, prev.Lng, loc.Lat, loc.Lng)
		}
		prev = loc
	}
	return total
}
