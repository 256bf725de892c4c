package api

import (
	"errors"
	"log"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"taskly.com/internal/domain"
)

var validate = validator.New()

type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"pageSize"`
	Total     int64 `json:"total"`
	TotalPage int   `json:"totalPage"`
}

type ListResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// SendPaginatedResponse sends the standard paginated list envelope.
func SendPaginatedResponse(c *fiber.Ctx, data interface{}, page, pageSize int, total int64) error {
	totalPage := 0
	if pageSize > 0 {
		totalPage = int(math.Ceil(float64(total) / float64(pageSize)))
	}

	return c.JSON(ListResponse{
		Data: data,
		Pagination: Pagination{
			Page:      page,
			PageSize:  pageSize,
			Total:     total,
			TotalPage: totalPage,
		},
	})
}

// handleError maps service errors to HTTP responses. Anything that is not a
// caller-correctable AppError becomes an opaque 500; internals are logged,
// never returned.
func handleError(c *fiber.Ctx, err error) error {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= 500 {
			log.Printf("api: %v", appErr)
			return c.Status(appErr.Code).JSON(fiber.Map{"error": "Internal server error"})
		}
		return c.Status(appErr.Code).JSON(fiber.Map{"error": appErr.Message})
	}

	log.Printf("api: unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal server error"})
}
