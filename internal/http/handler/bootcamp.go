package handler

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"devcamper/internal/service"
)

// ListBootcamps godoc
// @Summary List bootcamps
// @Description Filter with field=value or field[gt|gte|lt|lte|in]=value, project with select, order with sort, page with page and limit.
// @Tags bootcamps
// @Produce json
// @Param select query string false "comma-separated fields"
// @Param sort query string false "comma-separated fields, leading - for descending"
// @Param page query int false "page number" default(1)
// @Param limit query int false "page size" default(100)
// @Success 200 {object} envelope
// @Failure 400 {object} errorPayload
// @Router /bootcamps [get]
func ListBootcamps(svc service.BootcampService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext(), c.Queries())
		if err != nil {
			return err
		}
		return okList(c, res)
	}
}

// GetBootcamp godoc
// @Summary Get a bootcamp
// @Tags bootcamps
// @Produce json
// @Param id path string true "bootcamp id"
// @Success 200 {object} envelope
// @Failure 404 {object} errorPayload
// @Router /bootcamps/{id} [get]
func GetBootcamp(svc service.BootcampService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		b, err := svc.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		return ok(c, fiber.StatusOK, b)
	}
}

// CreateBootcamp godoc
// @Summary Create a bootcamp
// @Tags bootcamps
// @Accept json
// @Produce json
// @Param bootcamp body service.BootcampInput true "bootcamp"
// @Success 201 {object} envelope
// @Failure 400 {object} errorPayload
// @Router /bootcamps [post]
func CreateBootcamp(svc service.BootcampService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.BootcampInput
		if err := parseBody(c, &in); err != nil {
			return err
		}
		b, err := svc.Create(c.UserContext(), in)
		if err != nil {
			return err
		}
		return ok(c, fiber.StatusCreated, b)
	}
}

// UpdateBootcamp godoc
// @Summary Update a bootcamp
// @Tags bootcamps
// @Accept json
// @Produce json
// @Param id path string true "bootcamp id"
// @Param bootcamp body service.BootcampPatch true "fields to change"
// @Success 200 {object} envelope
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /bootcamps/{id} [put]
func UpdateBootcamp(svc service.BootcampService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p service.BootcampPatch
		if err := parseBody(c, &p); err != nil {
			return err
		}
		b, err := svc.Update(c.UserContext(), c.Params("id"), p)
		if err != nil {
			return err
		}
		return ok(c, fiber.StatusOK, b)
	}
}

// DeleteBootcamp godoc
// @Summary Delete a bootcamp and its courses
// @Tags bootcamps
// @Produce json
// @Param id path string true "bootcamp id"
// @Success 200 {object} envelope
// @Failure 404 {object} errorPayload
// @Router /bootcamps/{id} [delete]
func DeleteBootcamp(svc service.BootcampService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return err
		}
		return ok(c, fiber.StatusOK, fiber.Map{})
	}
}

// BootcampsInRadius godoc
// @Summary Bootcamps within a distance of a zipcode
// @Tags bootcamps
// @Produce json
// @Param zipcode path string true "postal code"
// @Param distance path number true "distance in miles"
// @Success 200 {object} envelope
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /bootcamps/radius/{zipcode}/{distance} [get]
func BootcampsInRadius(svc service.BootcampService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.WithinRadius(c.UserContext(), c.Params("zipcode"), c.Params("distance"))
		if err != nil {
			return err
		}
		return okCount(c, items)
	}
}

// UploadBootcampPhoto godoc
// @Summary Upload a bootcamp photo
// @Tags bootcamps
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "bootcamp id"
// @Param file formData file true "image file"
// @Success 200 {object} envelope
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /bootcamps/{id}/photo [put]
func UploadBootcampPhoto(svc service.BootcampService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var upload *service.PhotoUpload
		// A missing file is reported by the service after the bootcamp lookup.
		if fh, err := c.FormFile("file"); err == nil {
			upload = photoUpload(fh)
		}
		name, err := svc.UploadPhoto(c.UserContext(), c.Params("id"), upload)
		if err != nil {
			return err
		}
		return ok(c, fiber.StatusOK, name)
	}
}

func photoUpload(fh *multipart.FileHeader) *service.PhotoUpload {
	return &service.PhotoUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// multipartOverhead is the room left above the photo size limit for
// multipart boundaries and part headers.
const multipartOverhead = 64 << 10

// BodyLimit is the request body limit for a given photo size limit. Photos
// up to maxUpload plus form framing reach the handler; larger bodies are
// refused by the server and rendered by ErrorHandler as a 400.
func BodyLimit(maxUpload int64) int {
	return int(maxUpload) + multipartOverhead
}
