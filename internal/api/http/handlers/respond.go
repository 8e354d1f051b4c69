package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/SmartMunimJi/Smartmunimji-sub000/internal/api/dto"
)

func success(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(dto.SuccessEnvelope(message, data))
}

func pagination(c *fiber.Ctx) (limit, offset int) {
	limit, _ = strconv.Atoi(c.Query("limit", "20"))
	offset, _ = strconv.Atoi(c.Query("offset", "0"))
	return limit, offset
}
