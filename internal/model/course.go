package model

import "time"

// Course is a program offered by a bootcamp.
type Course struct {
	ID                   string           `json:"id"`
	Title                string           `json:"title"`
	Description          string           `json:"description"`
	Weeks                int              `json:"weeks"`
	Tuition              float64          `json:"tuition"`
	MinimumSkill         string           `json:"minimumSkill"`
	ScholarshipAvailable bool             `json:"scholarshipAvailable"`
	BootcampID           string           `json:"bootcampId"`
	Bootcamp             *BootcampSummary `json:"bootcamp,omitempty"`
	CreatedAt            time.Time        `json:"createdAt"`
}
