package repository

import "devcamper/internal/query"

var defaultSort = []query.SortKey{{Field: "createdAt", Desc: true}}

// BootcampSchema lists the bootcamp fields clients may filter, sort and select.
var BootcampSchema = query.NewSchema(defaultSort,
	query.Field{Name: "id", Columns: []string{"id"}, Type: query.ID, Filter: true, Select: true},
	query.Field{Name: "name", Columns: []string{"name"}, Type: query.Text, Filter: true, Sort: true, Select: true},
	query.Field{Name: "slug", Columns: []string{"slug"}, Type: query.Text, Filter: true, Sort: true, Select: true},
	query.Field{Name: "description", Columns: []string{"description"}, Type: query.Text, Select: true},
	query.Field{Name: "website", Columns: []string{"website"}, Type: query.Text, Filter: true, Select: true},
	query.Field{Name: "phone", Columns: []string{"phone"}, Type: query.Text, Filter: true, Select: true},
	query.Field{Name: "email", Columns: []string{"email"}, Type: query.Text, Filter: true, Select: true},
	query.Field{
		Name:    "location",
		Columns: []string{"lng", "lat", "formatted_address", "street", "city", "state", "zipcode", "country"},
		Select:  true,
	},
	query.Field{Name: "location.city", Columns: []string{"city"}, Type: query.Text, Filter: true, Sort: true},
	query.Field{Name: "location.state", Columns: []string{"state"}, Type: query.Text, Filter: true, Sort: true},
	query.Field{Name: "location.zipcode", Columns: []string{"zipcode"}, Type: query.Text, Filter: true},
	query.Field{Name: "location.country", Columns: []string{"country"}, Type: query.Text, Filter: true},
	query.Field{Name: "careers", Columns: []string{"careers"}, Type: query.List, Filter: true, Select: true},
	query.Field{Name: "averageRating", Columns: []string{"average_rating"}, Type: query.Number, Filter: true, Sort: true, Select: true},
	query.Field{Name: "averageCost", Columns: []string{"average_cost"}, Type: query.Number, Filter: true, Sort: true, Select: true},
	query.Field{Name: "photo", Columns: []string{"photo"}, Type: query.Text, Select: true},
	query.Field{Name: "housing", Columns: []string{"housing"}, Type: query.Bool, Filter: true, Sort: true, Select: true},
	query.Field{Name: "jobAssistance", Columns: []string{"job_assistance"}, Type: query.Bool, Filter: true, Sort: true, Select: true},
	query.Field{Name: "jobGuarantee", Columns: []string{"job_guarantee"}, Type: query.Bool, Filter: true, Sort: true, Select: true},
	query.Field{Name: "acceptGi", Columns: []string{"accept_gi"}, Type: query.Bool, Filter: true, Sort: true, Select: true},
	query.Field{Name: "createdAt", Columns: []string{"created_at"}, Type: query.Time, Filter: true, Sort: true, Select: true},
	// populated from the courses table
	query.Field{Name: "courses", Select: true},
)

// CourseSchema lists the course fields clients may filter, sort and select.
// Columns are qualified because course reads join bootcamps.
var CourseSchema = query.NewSchema(defaultSort,
	query.Field{Name: "id", Columns: []string{"c.id"}, Type: query.ID, Filter: true, Select: true},
	query.Field{Name: "title", Columns: []string{"c.title"}, Type: query.Text, Filter: true, Sort: true, Select: true},
	query.Field{Name: "description", Columns: []string{"c.description"}, Type: query.Text, Select: true},
	query.Field{Name: "weeks", Columns: []string{"c.weeks"}, Type: query.Integer, Filter: true, Sort: true, Select: true},
	query.Field{Name: "tuition", Columns: []string{"c.tuition"}, Type: query.Number, Filter: true, Sort: true, Select: true},
	query.Field{Name: "minimumSkill", Columns: []string{"c.minimum_skill"}, Type: query.Text, Filter: true, Sort: true, Select: true},
	query.Field{Name: "scholarshipAvailable", Columns: []string{"c.scholarship_available"}, Type: query.Bool, Filter: true, Select: true},
	query.Field{Name: "bootcampId", Columns: []string{"c.bootcamp_id"}, Type: query.ID, Filter: true, Select: true},
	query.Field{Name: "createdAt", Columns: []string{"c.created_at"}, Type: query.Time, Filter: true, Sort: true, Select: true},
	query.Field{Name: "bootcamp", Select: true},
)
