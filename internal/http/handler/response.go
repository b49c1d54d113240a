package handler

import (
	"github.com/gofiber/fiber/v2"

	"devcamper/internal/apperror"
	"devcamper/internal/query"
	"devcamper/internal/service"
)

// envelope is the success body shared by every resource endpoint.
type envelope struct {
	Success    bool              `json:"success"`
	Count      *int              `json:"count,omitempty"`
	Pagination *query.Pagination `json:"pagination,omitempty"`
	Data       any               `json:"data"`
}

func ok(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(envelope{Success: true, Data: data})
}

func okCount[T any](c *fiber.Ctx, items []T) error {
	n := len(items)
	return c.Status(fiber.StatusOK).JSON(envelope{Success: true, Count: &n, Data: items})
}

func okList(c *fiber.Ctx, res *service.ListResult) error {
	return c.Status(fiber.StatusOK).JSON(envelope{
		Success:    true,
		Count:      &res.Count,
		Pagination: &res.Pagination,
		Data:       res.Data,
	})
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperror.BadRequest("Invalid request body")
	}
	return nil
}
