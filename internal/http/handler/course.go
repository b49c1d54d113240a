package handler

import (
	"github.com/gofiber/fiber/v2"

	"devcamper/internal/service"
)

// ListCourses godoc
// @Summary List courses, optionally of one bootcamp
// @Tags courses
// @Produce json
// @Param bootcampId path string false "bootcamp id"
// @Success 200 {object} envelope
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /courses [get]
// @Router /bootcamps/{bootcampId}/courses [get]
func ListCourses(svc service.CourseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext(), c.Params("bootcampId"), c.Queries())
		if err != nil {
			return err
		}
		return okList(c, res)
	}
}

// GetCourse godoc
// @Summary Get a course
// @Tags courses
// @Produce json
// @Param id path string true "course id"
// @Success 200 {object} envelope
// @Failure 404 {object} errorPayload
// @Router /courses/{id} [get]
func GetCourse(svc service.CourseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		course, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return ok(c, fiber.StatusOK, course)
	}
}

// CreateCourse godoc
// @Summary Add a course to a bootcamp
// @Tags courses
// @Accept json
// @Produce json
// @Param bootcampId path string true "bootcamp id"
// @Param course body service.CourseInput true "course"
// @Success 201 {object} envelope
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /bootcamps/{bootcampId}/courses [post]
func CreateCourse(svc service.CourseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.CourseInput
		if err := parseBody(c, &in); err != nil {
			return err
		}
		course, err := svc.Create(c.UserContext(), c.Params("bootcampId"), in)
		if err != nil {
			return err
		}
		return ok(c, fiber.StatusCreated, course)
	}
}

// UpdateCourse godoc
// @Summary Update a course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path string true "course id"
// @Param course body service.CoursePatch true "fields to change"
// @Success 200 {object} envelope
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /courses/{id} [put]
func UpdateCourse(svc service.CourseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p service.CoursePatch
		if err := parseBody(c, &p); err != nil {
			return err
		}
		course, err := svc.Update(c.UserContext(), c.Params("id"), p)
		if err != nil {
			return err
		}
		return ok(c, fiber.StatusOK, course)
	}
}

// DeleteCourse godoc
// @Summary Delete a course
// @Tags courses
// @Produce json
// @Param id path string true "course id"
// @Success 200 {object} envelope
// @Failure 404 {object} errorPayload
// @Router /courses/{id} [delete]
func DeleteCourse(svc service.CourseService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return err
		}
		return ok(c, fiber.StatusOK, fiber.Map{})
	}
}
