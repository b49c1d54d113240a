package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"devcamper/internal/model"
	"devcamper/internal/query"
	"devcamper/internal/repository"
)

var bootcampColumns = []string{
	"id", "name", "slug", "description", "website", "phone", "email",
	"lng", "lat", "formatted_address", "street", "city", "state", "zipcode", "country",
	"careers", "average_rating", "average_cost", "photo",
	"housing", "job_assistance", "job_guarantee", "accept_gi", "created_at",
}

var bootcampReturning = " RETURNING " + strings.Join(bootcampColumns, ", ")

// haversine angular distance in radians between (lat, lng) and ($1, $2).
// least() guards asin against rounding just above 1.
const withinRadius = `lat IS NOT NULL AND 2 * asin(least(1, sqrt(
	power(sin(radians(lat - $1) / 2), 2) +
	cos(radians($1)) * cos(radians(lat)) * power(sin(radians(lng - $2) / 2), 2)
))) <= $3`

// BootcampPostgres is a PostgreSQL implementation of repository.BootcampRepository.
type BootcampPostgres struct {
	db *sql.DB
}

// NewBootcampPostgres creates a new BootcampPostgres repository.
func NewBootcampPostgres(db *sql.DB) *BootcampPostgres {
	return &BootcampPostgres{db: db}
}

var _ repository.BootcampRepository = (*BootcampPostgres)(nil)

// List counts the matching rows, then reads one window of them.
func (r *BootcampPostgres) List(ctx context.Context, d query.Descriptor) (*repository.PageResult[model.Bootcamp], error) {
	var a args
	where := a.where(d.Filters)

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM bootcamps"+where, a...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count bootcamps: %w", err)
	}

	cols := columns(repository.BootcampSchema, d.Select, bootcampColumns, "id")
	q := "SELECT " + strings.Join(cols, ", ") + " FROM bootcamps" + where +
		orderBy(repository.BootcampSchema, d.Sort, "id") + a.page(d)

	items, err := r.query(ctx, q, a...)
	if err != nil {
		return nil, fmt.Errorf("list bootcamps: %w", err)
	}
	if err := r.populateCourses(ctx, items); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Bootcamp]{Items: items, Total: total}, nil
}

// FindByID fetches a single bootcamp with its courses.
func (r *BootcampPostgres) FindByID(ctx context.Context, id string) (*model.Bootcamp, error) {
	q := "SELECT " + strings.Join(bootcampColumns, ", ") + " FROM bootcamps WHERE id = $1"
	b, err := r.one(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		return nil, fmt.Errorf("find bootcamp: %w", err)
	}
	items := []model.Bootcamp{*b}
	if err := r.populateCourses(ctx, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

// WithinRadius filters on the haversine angular distance of stored coordinates.
func (r *BootcampPostgres) WithinRadius(ctx context.Context, lat, lng, radius float64) ([]model.Bootcamp, error) {
	q := "SELECT " + strings.Join(bootcampColumns, ", ") + " FROM bootcamps WHERE " + withinRadius +
		" ORDER BY created_at DESC, id ASC"
	items, err := r.query(ctx, q, lat, lng, radius)
	if err != nil {
		return nil, fmt.Errorf("bootcamps within radius: %w", err)
	}
	if err := r.populateCourses(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a bootcamp; id and created_at come from column defaults.
func (r *BootcampPostgres) Create(ctx context.Context, b *model.Bootcamp) (*model.Bootcamp, error) {
	var a args
	vals, err := writeValues(&a, b)
	if err != nil {
		return nil, err
	}
	q := `INSERT INTO bootcamps (name, slug, description, website, phone, email,
		lng, lat, formatted_address, street, city, state, zipcode, country,
		careers, average_rating, photo, housing, job_assistance, job_guarantee, accept_gi)
		VALUES (` + strings.Join(vals, ", ") + `)` + bootcampReturning

	out, err := r.one(r.db.QueryRowContext(ctx, q, a...))
	if err != nil {
		return nil, fmt.Errorf("insert bootcamp: %w", err)
	}
	out.Courses = []model.Course{}
	return out, nil
}

// Update overwrites the mutable columns. sql.ErrNoRows means the row is gone.
func (r *BootcampPostgres) Update(ctx context.Context, b *model.Bootcamp) (*model.Bootcamp, error) {
	a := args{b.ID}
	vals, err := writeValues(&a, b)
	if err != nil {
		return nil, err
	}
	names := []string{
		"name", "slug", "description", "website", "phone", "email",
		"lng", "lat", "formatted_address", "street", "city", "state", "zipcode", "country",
		"careers", "average_rating", "photo", "housing", "job_assistance", "job_guarantee", "accept_gi",
	}
	set := make([]string, len(names))
	for i, n := range names {
		set[i] = n + " = " + vals[i]
	}
	q := "UPDATE bootcamps SET " + strings.Join(set, ", ") + " WHERE id = $1" + bootcampReturning

	out, err := r.one(r.db.QueryRowContext(ctx, q, a...))
	if err != nil {
		return nil, fmt.Errorf("update bootcamp: %w", err)
	}
	out.Courses = b.Courses
	return out, nil
}

// UpdatePhoto sets the photo column. sql.ErrNoRows means the row is gone.
func (r *BootcampPostgres) UpdatePhoto(ctx context.Context, id, photo string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE bootcamps SET photo = $2 WHERE id = $1`, id, photo)
	if err != nil {
		return fmt.Errorf("update bootcamp photo: %w", err)
	}
	return expectRow(res, "update bootcamp photo")
}

// Delete removes a bootcamp. Courses are removed by the foreign key cascade.
func (r *BootcampPostgres) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM bootcamps WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete bootcamp: %w", err)
	}
	return expectRow(res, "delete bootcamp")
}

// DeleteAll empties the table, courses included.
func (r *BootcampPostgres) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM bootcamps`); err != nil {
		return fmt.Errorf("delete bootcamps: %w", err)
	}
	return nil
}

// populateCourses attaches each bootcamp's courses using a single IN query.
func (r *BootcampPostgres) populateCourses(ctx context.Context, items []model.Bootcamp) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]any, len(items))
	byID := make(map[string]int, len(items))
	for i := range items {
		items[i].Courses = []model.Course{}
		ids[i] = items[i].ID
		byID[items[i].ID] = i
	}

	var a args
	q := `SELECT id, title, description, weeks, tuition, minimum_skill, scholarship_available, bootcamp_id, created_at
		FROM courses WHERE bootcamp_id IN (` + a.bindAll(ids) + `) ORDER BY created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, q, a...)
	if err != nil {
		return fmt.Errorf("populate courses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Weeks, &c.Tuition,
			&c.MinimumSkill, &c.ScholarshipAvailable, &c.BootcampID, &c.CreatedAt); err != nil {
			return fmt.Errorf("scan course: %w", err)
		}
		if i, ok := byID[c.BootcampID]; ok {
			items[i].Courses = append(items[i].Courses, c)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("populate courses: %w", err)
	}
	return nil
}

func (r *BootcampPostgres) query(ctx context.Context, q string, params ...any) ([]model.Bootcamp, error) {
	rows, err := r.db.QueryContext(ctx, q, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	items := make([]model.Bootcamp, 0)
	for rows.Next() {
		var row bootcampRow
		dest, err := row.targets(cols)
		if err != nil {
			return nil, err
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		b, err := row.model()
		if err != nil {
			return nil, err
		}
		items = append(items, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *BootcampPostgres) one(row *sql.Row) (*model.Bootcamp, error) {
	var br bootcampRow
	dest, err := br.targets(bootcampColumns)
	if err != nil {
		return nil, err
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	b, err := br.model()
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// writeValues binds the writable columns of b in insert order and returns
// their placeholders.
func writeValues(a *args, b *model.Bootcamp) ([]string, error) {
	var lng, lat sql.NullFloat64
	var addr, street, city, state, zip, country sql.NullString
	if l := b.Location; l != nil {
		lng = sql.NullFloat64{Float64: l.Lng(), Valid: true}
		lat = sql.NullFloat64{Float64: l.Lat(), Valid: true}
		addr = nullString(l.FormattedAddress)
		street = nullString(l.Street)
		city = nullString(l.City)
		state = nullString(l.State)
		zip = nullString(l.Zipcode)
		country = nullString(l.Country)
	}
	careers := b.Careers
	if careers == nil {
		careers = []string{}
	}
	careersJSON, err := json.Marshal(careers)
	if err != nil {
		return nil, fmt.Errorf("encode careers: %w", err)
	}

	var rating sql.NullFloat64
	if b.AverageRating != nil {
		rating = sql.NullFloat64{Float64: *b.AverageRating, Valid: true}
	}
	photo := b.Photo
	if photo == "" {
		photo = model.PhotoPlaceholder
	}

	return []string{
		a.bind(b.Name), a.bind(b.Slug), a.bind(b.Description),
		a.bind(nullString(b.Website)), a.bind(nullString(b.Phone)), a.bind(nullString(b.Email)),
		a.bind(lng), a.bind(lat), a.bind(addr), a.bind(street), a.bind(city), a.bind(state), a.bind(zip), a.bind(country),
		a.bind(string(careersJSON)) + "::jsonb", a.bind(rating), a.bind(photo),
		a.bind(b.Housing), a.bind(b.JobAssistance), a.bind(b.JobGuarantee), a.bind(b.AcceptGi),
	}, nil
}

// bootcampRow holds the nullable scan targets of one bootcamps row.
type bootcampRow struct {
	id, name, slug, description                    string
	website, phone, email                          sql.NullString
	lng, lat                                       sql.NullFloat64
	address, street, city, state, zipcode, country sql.NullString
	careers                                        []byte
	averageRating, averageCost                     sql.NullFloat64
	photo                                          string
	housing, jobAssistance, jobGuarantee, acceptGi bool
	createdAt                                      time.Time
}

func (r *bootcampRow) targets(cols []string) ([]any, error) {
	dest := make([]any, len(cols))
	for i, c := range cols {
		switch c {
		case "id":
			dest[i] = &r.id
		case "name":
			dest[i] = &r.name
		case "slug":
			dest[i] = &r.slug
		case "description":
			dest[i] = &r.description
		case "website":
			dest[i] = &r.website
		case "phone":
			dest[i] = &r.phone
		case "email":
			dest[i] = &r.email
		case "lng":
			dest[i] = &r.lng
		case "lat":
			dest[i] = &r.lat
		case "formatted_address":
			dest[i] = &r.address
		case "street":
			dest[i] = &r.street
		case "city":
			dest[i] = &r.city
		case "state":
			dest[i] = &r.state
		case "zipcode":
			dest[i] = &r.zipcode
		case "country":
			dest[i] = &r.country
		case "careers":
			dest[i] = &r.careers
		case "average_rating":
			dest[i] = &r.averageRating
		case "average_cost":
			dest[i] = &r.averageCost
		case "photo":
			dest[i] = &r.photo
		case "housing":
			dest[i] = &r.housing
		case "job_assistance":
			dest[i] = &r.jobAssistance
		case "job_guarantee":
			dest[i] = &r.jobGuarantee
		case "accept_gi":
			dest[i] = &r.acceptGi
		case "created_at":
			dest[i] = &r.createdAt
		default:
			return nil, fmt.Errorf("unexpected bootcamps column %q", c)
		}
	}
	return dest, nil
}

func (r *bootcampRow) model() (model.Bootcamp, error) {
	b := model.Bootcamp{
		ID:            r.id,
		Name:          r.name,
		Slug:          r.slug,
		Description:   r.description,
		Website:       r.website.String,
		Phone:         r.phone.String,
		Email:         r.email.String,
		Photo:         r.photo,
		Housing:       r.housing,
		JobAssistance: r.jobAssistance,
		JobGuarantee:  r.jobGuarantee,
		AcceptGi:      r.acceptGi,
		CreatedAt:     r.createdAt,
	}
	if r.lat.Valid && r.lng.Valid {
		loc := model.NewPoint(r.lat.Float64, r.lng.Float64)
		loc.FormattedAddress = r.address.String
		loc.Street = r.street.String
		loc.City = r.city.String
		loc.State = r.state.String
		loc.Zipcode = r.zipcode.String
		loc.Country = r.country.String
		b.Location = loc
	}
	if len(r.careers) > 0 {
		if err := json.Unmarshal(r.careers, &b.Careers); err != nil {
			return model.Bootcamp{}, fmt.Errorf("decode careers: %w", err)
		}
	}
	if r.averageRating.Valid {
		v := r.averageRating.Float64
		b.AverageRating = &v
	}
	if r.averageCost.Valid {
		v := r.averageCost.Float64
		b.AverageCost = &v
	}
	return b, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func expectRow(res sql.Result, op string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, sql.ErrNoRows)
	}
	return nil
}
