// Package seed loads fixture bootcamps and courses through the services and
// wipes them again.
package seed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"

	"devcamper/internal/logging"
	"devcamper/internal/service"
)

const (
	BootcampsFile = "bootcamps.json"
	CoursesFile   = "courses.json"
)

// Course is a course fixture. Bootcamp names the owning bootcamp since ids
// are assigned on insert.
type Course struct {
	Bootcamp string `json:"bootcamp"`
	service.CourseInput
}

// Seeder imports and destroys fixture data.
type Seeder struct {
	bootcamps service.BootcampService
	courses   service.CourseService
}

// New returns a Seeder writing through the given services.
func New(bootcamps service.BootcampService, courses service.CourseService) *Seeder {
	return &Seeder{bootcamps: bootcamps, courses: courses}
}

// Stats counts the records written by Import.
type Stats struct {
	Bootcamps int
	Courses   int
}

// Import creates every bootcamp in dir/bootcamps.json, then every course in
// dir/courses.json. A missing courses file is allowed. The first failing
// record aborts the import.
func (s *Seeder) Import(ctx context.Context, dir string) (Stats, error) {
	log := logging.With("seed")
	var stats Stats

	var bootcamps []service.BootcampInput
	if err := readJSON(filepath.Join(dir, BootcampsFile), &bootcamps); err != nil {
		return stats, err
	}

	ids := make(map[string]string, len(bootcamps))
	for _, in := range bootcamps {
		b, err := s.bootcamps.Create(ctx, in)
		if err != nil {
			return stats, fmt.Errorf("bootcamp %q: %w", in.Name, err)
		}
		ids[b.Name] = b.ID
		stats.Bootcamps++
	}
	log.Info().Int("count", stats.Bootcamps).Msg("bootcamps imported")

	var courses []Course
	err := readJSON(filepath.Join(dir, CoursesFile), &courses)
	if os.IsNotExist(err) {
		return stats, nil
	}
	if err != nil {
		return stats, err
	}

	for _, c := range courses {
		id, ok := ids[c.Bootcamp]
		if !ok {
			return stats, fmt.Errorf("course %q: unknown bootcamp %q", c.Title, c.Bootcamp)
		}
		if _, err := s.courses.Create(ctx, id, c.CourseInput); err != nil {
			return stats, fmt.Errorf("course %q: %w", c.Title, err)
		}
		stats.Courses++
	}
	log.Info().Int("count", stats.Courses).Msg("courses imported")

	return stats, nil
}

// Destroy removes all courses and bootcamps.
func (s *Seeder) Destroy(ctx context.Context) error {
	if err := s.courses.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete courses: %w", err)
	}
	if err := s.bootcamps.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete bootcamps: %w", err)
	}
	logging.With("seed").Info().Msg("data destroyed")
	return nil
}

func readJSON(path string, out any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return nil
}
