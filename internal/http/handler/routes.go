package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"devcamper/internal/service"
)

// APIPrefix is the mount point of the resource routes.
const APIPrefix = "/api/v1"

// RegisterRoutes attaches the health check and the versioned resource routes.
// geocoder may be nil when no breaker guards the provider.
func RegisterRoutes(app *fiber.App, db *sql.DB, geocoder CircuitState, bootcamps service.BootcampService, courses service.CourseService) {
	app.Get("/health", HealthCheck(db, geocoder))
	app.Get("/healthz", LivenessProbe())

	api := app.Group(APIPrefix)

	// radius must be registered before /:id routes
	api.Get("/bootcamps/radius/:zipcode/:distance", BootcampsInRadius(bootcamps))

	api.Get("/bootcamps", ListBootcamps(bootcamps))
	api.Post("/bootcamps", CreateBootcamp(bootcamps))
	api.Get("/bootcamps/:id", GetBootcamp(bootcamps))
	api.Put("/bootcamps/:id", UpdateBootcamp(bootcamps))
	api.Delete("/bootcamps/:id", DeleteBootcamp(bootcamps))
	api.Put("/bootcamps/:id/photo", UploadBootcampPhoto(bootcamps))

	api.Get("/bootcamps/:bootcampId/courses", ListCourses(courses))
	api.Post("/bootcamps/:bootcampId/courses", CreateCourse(courses))

	api.Get("/courses", ListCourses(courses))
	api.Get("/courses/:id", GetCourse(courses))
	api.Put("/courses/:id", UpdateCourse(courses))
	api.Delete("/courses/:id", DeleteCourse(courses))
}
