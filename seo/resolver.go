// Package seo maps marketing URLs such as /car-rental-in-goa onto the
// canonical vehicle search page.
package seo

import (
	"errors"
	"net/url"
	"regexp"
	"strings"
)

var ErrNoMatch = errors.New("no page matches the path")

// PlaceLookup reports whether a slug names a known city or town.
type PlaceLookup interface {
	PlaceSlugExists(slug string) (bool, error)
}

// keywords maps URL keywords to vehicle types. An empty type means all types.
var keywords = map[string]string{
	"car":             "car",
	"cars":            "car",
	"self-drive-car":  "car",
	"self-drive-cars": "car",
	"suv":             "suv",
	"suvs":            "suv",
	"bike":            "bike",
	"bikes":           "bike",
	"motorbike":       "bike",
	"two-wheeler":     "bike",
	"scooter":         "scooter",
	"scooters":        "scooter",
	"scooty":          "scooter",
	"bicycle":         "bicycle",
	"cycle":           "bicycle",
	"tempo-traveller": "tempo-traveller",
	"bus":             "bus",
	"vehicle":         "",
	"vehicles":        "",
}

var patterns = []*regexp.Regexp{
	regexp.MustCompile(`^rent-(?:a-)?(?P<keyword>[a-z0-9-]+?)-in-(?P<city>[a-z0-9-]+)$`),
	regexp.MustCompile(`^(?P<keyword>[a-z0-9-]+?)-(?:rental|rentals|hire|on-rent)-in-(?P<city>[a-z0-9-]+)$`),
}

type Resolution struct {
	Keyword     string `json:"keyword"`
	VehicleType string `json:"vehicle_type"`
	City        string `json:"city"`
	Canonical   string `json:"canonical"`
}

type Resolver struct {
	Places PlaceLookup
}

func NewResolver(places PlaceLookup) *Resolver {
	return &Resolver{Places: places}
}

// Resolve returns ErrNoMatch when path has no known keyword or city.
func (r *Resolver) Resolve(path string) (*Resolution, error) {
	slug := strings.ToLower(strings.Trim(path, "/"))

	for _, re := range patterns {
		m := re.FindStringSubmatch(slug)
		if m == nil {
			continue
		}
		keyword := m[re.SubexpIndex("keyword")]
		city := m[re.SubexpIndex("city")]

		vehicleType, ok := keywords[keyword]
		if !ok {
			continue
		}

		exists, err := r.Places.PlaceSlugExists(city)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, ErrNoMatch
		}

		return &Resolution{
			Keyword:     keyword,
			VehicleType: vehicleType,
			City:        city,
			Canonical:   Canonical(city, vehicleType),
		}, nil
	}

	return nil, ErrNoMatch
}

// Canonical builds the search page URL for a city and an optional vehicle type.
func Canonical(city, vehicleType string) string {
	q := url.Values{}
	q.Set("city", city)
	if vehicleType != "" {
		q.Set("type", vehicleType)
	}
	return "/vehicles?" + q.Encode()
}
