package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"devcamper/internal/apperror"
	"devcamper/internal/database"
	"devcamper/internal/geo"
	"devcamper/internal/geocoder"
	"devcamper/internal/logging"
	"devcamper/internal/model"
	"devcamper/internal/repository"
	"devcamper/internal/storage"
	"devcamper/internal/validation"
)

// BootcampInput is the create payload. Address, when present, is geocoded
// into Location; a pre-resolved Location is accepted only without Address.
type BootcampInput struct {
	Name          string          `json:"name" validate:"required,max=50"`
	Description   string          `json:"description" validate:"required,max=500"`
	Website       string          `json:"website" validate:"omitempty,http_url"`
	Phone         string          `json:"phone" validate:"omitempty,max=20"`
	Email         string          `json:"email" validate:"omitempty,email"`
	Address       string          `json:"address"`
	Location      *model.Location `json:"location,omitempty" swaggerignore:"true"`
	Careers       []string        `json:"careers" validate:"required,min=1,dive,career"`
	AverageRating *float64        `json:"averageRating" validate:"omitempty,gte=1,lte=10"`
	Housing       bool            `json:"housing"`
	JobAssistance bool            `json:"jobAssistance"`
	JobGuarantee  bool            `json:"jobGuarantee"`
	AcceptGi      bool            `json:"acceptGi"`
}

// BootcampPatch is the update payload; nil fields are left unchanged.
type BootcampPatch struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Website       *string   `json:"website"`
	Phone         *string   `json:"phone"`
	Email         *string   `json:"email"`
	Address       *string   `json:"address"`
	Careers       *[]string `json:"careers"`
	AverageRating *float64  `json:"averageRating"`
	Housing       *bool     `json:"housing"`
	JobAssistance *bool     `json:"jobAssistance"`
	JobGuarantee  *bool     `json:"jobGuarantee"`
	AcceptGi      *bool     `json:"acceptGi"`
}

// PhotoUpload describes a file attached to a photo upload request.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// BootcampService defines the bootcamp use cases.
type BootcampService interface {
	// List translates query-string params, then returns one projected page.
	List(ctx context.Context, params map[string]string) (*ListResult, error)

	Get(ctx context.Context, id string) (*model.Bootcamp, error)
	Create(ctx context.Context, in BootcampInput) (*model.Bootcamp, error)

	// Update applies a partial patch. Last write wins.
	Update(ctx context.Context, id string, p BootcampPatch) (*model.Bootcamp, error)

	// Delete removes the bootcamp and its courses, then its stored photo.
	Delete(ctx context.Context, id string) error

	// WithinRadius returns bootcamps within distance miles of the zipcode.
	WithinRadius(ctx context.Context, zipcode, distance string) ([]model.Bootcamp, error)

	// UploadPhoto stores the file and records its name on the bootcamp.
	// It returns the stored name.
	UploadPhoto(ctx context.Context, id string, f *PhotoUpload) (string, error)

	DeleteAll(ctx context.Context) error
}

type bootcampService struct {
	repo      repository.BootcampRepository
	geocoder  geocoder.Geocoder
	store     storage.Storage
	maxUpload int64
}

// NewBootcampService constructs a new BootcampService. maxUpload is the
// largest accepted photo in bytes.
func NewBootcampService(repo repository.BootcampRepository, gc geocoder.Geocoder, store storage.Storage, maxUpload int64) BootcampService {
	return &bootcampService{repo: repo, geocoder: gc, store: store, maxUpload: maxUpload}
}

func (s *bootcampService) List(ctx context.Context, params map[string]string) (*ListResult, error) {
	d, err := repository.BootcampSchema.Parse(params)
	if err != nil {
		return nil, err
	}
	res, err := s.repo.List(ctx, d)
	if err != nil {
		return nil, err
	}
	return newListResult(d, res.Items, res.Total, bootcampKeep)
}

func (s *bootcampService) Get(ctx context.Context, id string) (*model.Bootcamp, error) {
	if !validID(id) {
		return nil, apperror.NotFound("Bootcamp", id)
	}
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Bootcamp", id)
	}
	return b, nil
}

func (s *bootcampService) Create(ctx context.Context, in BootcampInput) (*model.Bootcamp, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	b := &model.Bootcamp{
		Name:          in.Name,
		Slug:          Slugify(in.Name),
		Description:   in.Description,
		Website:       in.Website,
		Phone:         in.Phone,
		Email:         in.Email,
		Careers:       in.Careers,
		AverageRating: in.AverageRating,
		Photo:         model.PhotoPlaceholder,
		Housing:       in.Housing,
		JobAssistance: in.JobAssistance,
		JobGuarantee:  in.JobGuarantee,
		AcceptGi:      in.AcceptGi,
	}

	switch {
	case strings.TrimSpace(in.Address) != "":
		loc, err := s.locate(ctx, in.Address)
		if err != nil {
			return nil, err
		}
		b.Location = loc
	case in.Location != nil:
		if err := checkLocation(in.Location); err != nil {
			return nil, err
		}
		loc := *in.Location
		loc.Type = "Point"
		b.Location = &loc
	}

	out, err := s.repo.Create(ctx, b)
	if err != nil {
		return nil, duplicate(err)
	}
	return out, nil
}

func (s *bootcampService) Update(ctx context.Context, id string, p BootcampPatch) (*model.Bootcamp, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in := BootcampInput{
		Name:          b.Name,
		Description:   b.Description,
		Website:       b.Website,
		Phone:         b.Phone,
		Email:         b.Email,
		Careers:       b.Careers,
		AverageRating: b.AverageRating,
		Housing:       b.Housing,
		JobAssistance: b.JobAssistance,
		JobGuarantee:  b.JobGuarantee,
		AcceptGi:      b.AcceptGi,
	}
	set(&in.Name, p.Name)
	set(&in.Description, p.Description)
	set(&in.Website, p.Website)
	set(&in.Phone, p.Phone)
	set(&in.Email, p.Email)
	set(&in.Careers, p.Careers)
	set(&in.Housing, p.Housing)
	set(&in.JobAssistance, p.JobAssistance)
	set(&in.JobGuarantee, p.JobGuarantee)
	set(&in.AcceptGi, p.AcceptGi)
	if p.AverageRating != nil {
		in.AverageRating = p.AverageRating
	}
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	if in.Name != b.Name {
		b.Slug = Slugify(in.Name)
	}
	b.Name = in.Name
	b.Description = in.Description
	b.Website = in.Website
	b.Phone = in.Phone
	b.Email = in.Email
	b.Careers = in.Careers
	b.AverageRating = in.AverageRating
	b.Housing = in.Housing
	b.JobAssistance = in.JobAssistance
	b.JobGuarantee = in.JobGuarantee
	b.AcceptGi = in.AcceptGi

	if p.Address != nil && strings.TrimSpace(*p.Address) != "" &&
		(b.Location == nil || *p.Address != b.Location.FormattedAddress) {
		loc, err := s.locate(ctx, *p.Address)
		if err != nil {
			return nil, err
		}
		b.Location = loc
	}

	out, err := s.repo.Update(ctx, b)
	if err != nil {
		return nil, notFound(duplicate(err), "Bootcamp", id)
	}
	return out, nil
}

func (s *bootcampService) Delete(ctx context.Context, id string) error {
	b, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return notFound(err, "Bootcamp", id)
	}
	if b.Photo != "" && b.Photo != model.PhotoPlaceholder {
		if err := s.store.Delete(ctx, b.Photo); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("bootcamp_id", id).Str("photo", b.Photo).Msg("failed to delete photo of removed bootcamp")
		}
	}
	return nil
}

func (s *bootcampService) WithinRadius(ctx context.Context, zipcode, distance string) ([]model.Bootcamp, error) {
	zipcode = strings.TrimSpace(zipcode)
	if zipcode == "" {
		return nil, apperror.BadRequest("Please provide a zipcode")
	}
	miles, err := strconv.ParseFloat(strings.TrimSpace(distance), 64)
	if err != nil || miles < 0 || math.IsNaN(miles) || math.IsInf(miles, 0) {
		return nil, apperror.BadRequest("Distance must be a non-negative number, got %q", distance)
	}

	results, err := s.geocoder.Geocode(ctx, zipcode)
	if err != nil {
		return nil, apperror.Internal(err, "Geocoding failed")
	}
	if len(results) == 0 {
		return nil, apperror.New(apperror.KindNotFound, fmt.Sprintf("Location not found for zipcode %s", zipcode))
	}
	center := results[0]

	return s.repo.WithinRadius(ctx, center.Latitude, center.Longitude, geo.RadiusFromDistance(miles))
}

func (s *bootcampService) UploadPhoto(ctx context.Context, id string, f *PhotoUpload) (string, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if f == nil || f.Open == nil {
		return "", apperror.BadRequest("Please upload a file")
	}
	if !strings.HasPrefix(f.ContentType, "image/") {
		return "", apperror.BadRequest("Please upload an image file")
	}
	if f.Size > s.maxUpload {
		return "", apperror.BadRequest("Please upload an image less than %d", s.maxUpload)
	}

	name := fmt.Sprintf("photo_%s%s", b.ID, strings.ToLower(filepath.Ext(f.Filename)))

	r, err := f.Open()
	if err != nil {
		return "", apperror.Internal(err, "Problem with file upload")
	}
	defer r.Close()

	if _, err := s.store.Put(ctx, name, r, storage.PutObjectOptions{
		Size:        f.Size,
		ContentType: f.ContentType,
		Metadata: map[string]string{
			"original-filename": f.Filename,
			"bootcamp-id":       b.ID,
		},
	}); err != nil {
		return "", apperror.Internal(err, "Problem with file upload")
	}

	if err := s.repo.UpdatePhoto(ctx, b.ID, name); err != nil {
		// Rollback: the record still points at the old photo
		if delErr := s.store.Delete(ctx, name); delErr != nil {
			logging.Ctx(ctx).Error().Err(delErr).Str("bootcamp_id", b.ID).Str("photo", name).Msg("rollback delete failed")
		}
		return "", notFound(err, "Bootcamp", id)
	}

	if b.Photo != "" && b.Photo != model.PhotoPlaceholder && b.Photo != name {
		if err := s.store.Delete(ctx, b.Photo); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Str("bootcamp_id", b.ID).Str("photo", b.Photo).Msg("failed to delete replaced photo")
		}
	}
	return name, nil
}

func (s *bootcampService) DeleteAll(ctx context.Context) error {
	return s.repo.DeleteAll(ctx)
}

// locate geocodes an address; the first result wins.
func (s *bootcampService) locate(ctx context.Context, address string) (*model.Location, error) {
	results, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		return nil, apperror.Internal(err, "Geocoding failed")
	}
	if len(results) == 0 {
		return nil, apperror.BadRequest("Could not geocode address")
	}
	r := results[0]
	loc := model.NewPoint(r.Latitude, r.Longitude)
	loc.FormattedAddress = r.FormattedAddress
	loc.Street = r.Street
	loc.City = r.City
	loc.State = r.State
	loc.Zipcode = r.Zipcode
	loc.Country = r.Country
	return loc, nil
}

func checkLocation(l *model.Location) error {
	lat, lng := l.Lat(), l.Lng()
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return apperror.New(apperror.KindValidation, "Location coordinates are out of range")
	}
	return nil
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// notFound maps a missing row to a NotFound error for resource id.
func notFound(err error, resource, id string) error {
	if errors.Is(err, sql.ErrNoRows) || database.IsInvalidText(err) {
		return apperror.NotFound(resource, id)
	}
	return err
}

// duplicate maps a unique violation to a Duplicate error.
func duplicate(err error) error {
	if database.IsUniqueViolation(err) {
		return apperror.Wrap(err, apperror.KindDuplicate, "Duplicate field value entered")
	}
	return err
}
