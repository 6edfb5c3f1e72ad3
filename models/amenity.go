package models

// AmenityCatalog lists the amenity tags the registration form offers.
// The save endpoint does not enforce membership; the catalog is
// advisory and exists so clients and tests share one source of truth.
var AmenityCatalog = []string{
	"cctv",
	"septic_tank",
	"society_office",
	"borewell",
	"lifts",
	"trace_garden",
	"drainage_line",
	"clubhouse",
	"rain_water_harvesting",
	"fire_filter_system",
}

// KnownAmenity reports whether tag is part of the catalog.
func KnownAmenity(tag string) bool {
	for _, known := range AmenityCatalog {
		if known == tag {
			return true
		}
	}
	return false
}
