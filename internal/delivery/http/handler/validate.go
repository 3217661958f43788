package handler

import (
	"errors"
	"fmt"
	"strings"

	"jobswipe/internal/delivery/http/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// bindBody decodes the JSON body into out and runs its validate tags.
// Enum fields are left to the domain parsers, which are case-insensitive.
func bindBody(c fiber.Ctx, out any) error {
	if err := c.Bind().Body(out); err != nil {
		return invalidPayload(err)
	}
	if err := validate.Struct(out); err != nil {
		return validationError(err)
	}
	return nil
}

func validateEach[T any](items []T) error {
	for i := range items {
		if err := validate.Struct(items[i]); err != nil {
			return validationError(fmt.Errorf("item %d: %w", i, err))
		}
	}
	return nil
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return invalidPayload(err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field()+" failed "+fe.Tag())
	}
	return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload: "+strings.Join(fields, ", "), nil, err)
}
