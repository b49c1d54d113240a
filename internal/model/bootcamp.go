package model

import "time"

// PhotoPlaceholder is stored in Bootcamp.Photo until an upload succeeds.
const PhotoPlaceholder = "no-photo.jpg"

// Careers lists the values accepted in Bootcamp.Careers.
var Careers = []string{
	"Web Development",
	"Mobile Development",
	"UI/UX",
	"Data Science",
	"Business",
	"Other",
}

// Location is a GeoJSON-style point with the address it was resolved from.
// Coordinates are ordered [longitude, latitude].
type Location struct {
	Type             string     `json:"type"`
	Coordinates      [2]float64 `json:"coordinates"`
	FormattedAddress string     `json:"formattedAddress,omitempty"`
	Street           string     `json:"street,omitempty"`
	City             string     `json:"city,omitempty"`
	State            string     `json:"state,omitempty"`
	Zipcode          string     `json:"zipcode,omitempty"`
	Country          string     `json:"country,omitempty"`
}

// NewPoint returns a Location for the given latitude and longitude.
func NewPoint(lat, lng float64) *Location {
	return &Location{Type: "Point", Coordinates: [2]float64{lng, lat}}
}

// Lat returns the latitude.
func (l *Location) Lat() float64 { return l.Coordinates[1] }

// Lng returns the longitude.
func (l *Location) Lng() float64 { return l.Coordinates[0] }

// Bootcamp is a coding school listing.
type Bootcamp struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Website       string    `json:"website,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	Location      *Location `json:"location,omitempty"`
	Careers       []string  `json:"careers"`
	AverageRating *float64  `json:"averageRating,omitempty"`
	AverageCost   *float64  `json:"averageCost,omitempty"`
	Photo         string    `json:"photo"`
	Housing       bool      `json:"housing"`
	JobAssistance bool      `json:"jobAssistance"`
	JobGuarantee  bool      `json:"jobGuarantee"`
	AcceptGi      bool      `json:"acceptGi"`
	CreatedAt     time.Time `json:"createdAt"`
	Courses       []Course  `json:"courses"`
}

// BootcampSummary is the subset of a bootcamp embedded in course responses.
type BootcampSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
