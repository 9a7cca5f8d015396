package middleware

import (
	"errors"

	"github.com/mendokusaisai/kodomo-wallet/services"

	"github.com/gofiber/fiber/v2"
)

// ServiceErrorResponse translates a service-layer error into the JSON
// envelope with the matching HTTP status code.
func ServiceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrValidation):
		return JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	case errors.Is(err, services.ErrAccountNotFound),
		errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrRequestNotFound),
		errors.Is(err, services.ErrRecurringDepositNotFound),
		errors.Is(err, services.ErrInviteNotFound):
		return JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case errors.Is(err, services.ErrInsufficientFunds),
		errors.Is(err, services.ErrInsufficientFundsAtApproval):
		return JsonResponse(c, fiber.StatusUnprocessableEntity, false, err.Error(), nil)
	case errors.Is(err, services.ErrUnauthorized):
		return JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	case errors.Is(err, services.ErrInviteExpired),
		errors.Is(err, services.ErrInviteAlreadyUsed):
		return JsonResponse(c, fiber.StatusGone, false, err.Error(), nil)
	case errors.Is(err, services.ErrConflict),
		errors.Is(err, services.ErrDuplicateExecution):
		return JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
	default:
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
