package v1

import (
	"jobswipe/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

func RegisterSwipes(r fiber.Router, swipeHandler *handler.SwipeHandler) {
	if r == nil {
		return
	}
	if swipeHandler == nil {
		return
	}

	swipeHandler.RegisterRoutes(r)
}
