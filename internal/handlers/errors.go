package handlers

import (
	"errors"
	"log"

	"portal/internal/apperrors"
	"portal/internal/services"

	"github.com/gofiber/fiber/v2"
)

const noChangesMessage = "No changes were applied."

// ErrorHandler is the fiber error handler of the portal. It turns the typed
// errors returned by services into status codes and JSON bodies.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"message": fiberErr.Message,
		})
	}

	appErr, ok := apperrors.As(err)
	if !ok {
		appErr = apperrors.Internal(err, "unexpected error")
	}

	switch appErr.Kind {
	case apperrors.KindUnauthenticated:
		log.Printf("Rejected %s %s: %v", c.Method(), c.Path(), appErr)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
		})
	case apperrors.KindNotFound:
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": appErr.Message,
		})
	case apperrors.KindConflict:
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": appErr.Message,
			"reason":  appErr.Reason,
		})
	case apperrors.KindForbidden:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": appErr.Message,
		})
	case apperrors.KindInvalid:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": appErr.Message,
			"errors":  appErr.Fields,
		})
	default:
		log.Printf("Error handling %s %s: %+v", c.Method(), c.Path(), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
}

// respond answers a mutation with its message, or with the no-op message
// when nothing was changed.
func respond(c *fiber.Ctx, outcome services.Outcome, status int, message string) error {
	if outcome == services.OutcomeNoOp {
		return c.JSON(fiber.Map{"message": noChangesMessage})
	}
	return c.Status(status).JSON(fiber.Map{"message": message})
}

func paramID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperrors.Invalid("Invalid ID", map[string]string{
			"id": "Field 'id' failed on the 'gt' tag",
		})
	}
	return uint(id), nil
}

// parseDetails decodes a JSON body of the form {"details": {...}}.
func parseDetails[T any](c *fiber.Ctx) (T, error) {
	var body struct {
		Details T `json:"details"`
	}
	if err := c.BodyParser(&body); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return body.Details, apperrors.Invalid("Invalid request body", nil)
	}
	return body.Details, nil
}
