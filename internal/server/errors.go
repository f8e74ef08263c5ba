package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/innovationlabs/trackify/internal/catalog/domain"
	donationdomain "github.com/innovationlabs/trackify/internal/donation/domain"
	paymentdomain "github.com/innovationlabs/trackify/internal/payment/domain"
	pricingdomain "github.com/innovationlabs/trackify/internal/pricing/domain"
	"github.com/innovationlabs/trackify/internal/rates"
	"gorm.io/gorm"
)

var ErrInvalidRequest = errors.New("invalid_request")

type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, response{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, response{Success: true, Data: data})
}

// ErrorHandlingMiddleware maps domain errors pushed onto the gin context to
// the API envelope. No internals or stack traces reach the client.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, message := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, response{Success: false, Error: message})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, string) {
	switch {
	case isValidationError(err):
		return http.StatusBadRequest, validationMessage(err)
	case isNotFoundError(err):
		return http.StatusNotFound, "not found"
	case errors.Is(err, paymentdomain.ErrDuplicateID),
		errors.Is(err, donationdomain.ErrDuplicateID):
		return http.StatusConflict, "identifier collision, please retry"
	case errors.Is(err, rates.ErrRateNotConfigured):
		// Configuration bug: surfaced as 500, never defaulted to zero.
		return http.StatusInternalServerError, "internal server error"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return true
	case isPricingValidationError(err),
		isPaymentValidationError(err),
		isDonationValidationError(err),
		errors.Is(err, catalogdomain.ErrInvalidItemID):
		return true
	default:
		return false
	}
}

func isPricingValidationError(err error) bool {
	switch {
	case errors.Is(err, pricingdomain.ErrInvalidServiceKind),
		errors.Is(err, pricingdomain.ErrMissingUsage),
		errors.Is(err, pricingdomain.ErrInvalidFilamentWeight),
		errors.Is(err, pricingdomain.ErrInvalidFilamentType),
		errors.Is(err, pricingdomain.ErrInvalidPrintingHours),
		errors.Is(err, pricingdomain.ErrInvalidHoursUsed),
		errors.Is(err, pricingdomain.ErrNoPrintJobs),
		errors.Is(err, pricingdomain.ErrInvalidPages),
		errors.Is(err, pricingdomain.ErrInvalidCopies),
		errors.Is(err, pricingdomain.ErrInvalidPaperSize),
		errors.Is(err, pricingdomain.ErrInvalidColorMode),
		errors.Is(err, pricingdomain.ErrInvalidPaperType),
		errors.Is(err, pricingdomain.ErrEmptySelection),
		errors.Is(err, pricingdomain.ErrInvalidQuantity):
		return true
	default:
		return false
	}
}

func isPaymentValidationError(err error) bool {
	switch {
	case errors.Is(err, paymentdomain.ErrInvalidPayer),
		errors.Is(err, paymentdomain.ErrInvalidPaymentMethod),
		errors.Is(err, paymentdomain.ErrInvalidAmount),
		errors.Is(err, paymentdomain.ErrInvalidStatus),
		errors.Is(err, paymentdomain.ErrInvalidStatusTransition):
		return true
	default:
		return false
	}
}

func isDonationValidationError(err error) bool {
	switch {
	case errors.Is(err, donationdomain.ErrInvalidDonationType),
		errors.Is(err, donationdomain.ErrInvalidAmount),
		errors.Is(err, donationdomain.ErrAmbiguousInput),
		errors.Is(err, donationdomain.ErrMissingDescription),
		errors.Is(err, donationdomain.ErrInvalidValue),
		errors.Is(err, donationdomain.ErrInvalidCondition):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, catalogdomain.ErrNotFound),
		errors.Is(err, paymentdomain.ErrNotFound),
		errors.Is(err, donationdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return "invalid request"
	case errors.Is(err, pricingdomain.ErrInvalidServiceKind):
		return "unknown service kind"
	case errors.Is(err, pricingdomain.ErrMissingUsage):
		return "usage details are required for the selected service"
	case errors.Is(err, pricingdomain.ErrInvalidFilamentWeight):
		return "filament weight must be greater than zero"
	case errors.Is(err, pricingdomain.ErrInvalidFilamentType):
		return "unknown filament type"
	case errors.Is(err, pricingdomain.ErrInvalidPrintingHours):
		return "printing hours must be greater than zero"
	case errors.Is(err, pricingdomain.ErrInvalidHoursUsed):
		return "hours used must be greater than zero"
	case errors.Is(err, pricingdomain.ErrNoPrintJobs):
		return "at least one print job is required"
	case errors.Is(err, pricingdomain.ErrInvalidPages):
		return "pages must be at least 1"
	case errors.Is(err, pricingdomain.ErrInvalidCopies):
		return "copies must be at least 1"
	case errors.Is(err, pricingdomain.ErrInvalidPaperSize):
		return "unknown paper size"
	case errors.Is(err, pricingdomain.ErrInvalidColorMode):
		return "unknown color mode"
	case errors.Is(err, pricingdomain.ErrInvalidPaperType):
		return "unknown paper type"
	case errors.Is(err, pricingdomain.ErrEmptySelection):
		return "at least one item with quantity greater than zero is required"
	case errors.Is(err, pricingdomain.ErrInvalidQuantity):
		return "quantity must not be negative"
	case errors.Is(err, paymentdomain.ErrInvalidPayer):
		return "payer is required"
	case errors.Is(err, paymentdomain.ErrInvalidPaymentMethod):
		return "payment method must be one of cash, card, bank_transfer, paypal"
	case errors.Is(err, paymentdomain.ErrInvalidAmount):
		return "amount must not be negative"
	case errors.Is(err, paymentdomain.ErrInvalidStatus):
		return "unknown payment status"
	case errors.Is(err, paymentdomain.ErrInvalidStatusTransition):
		return "only pending payments can transition to completed or failed"
	case errors.Is(err, donationdomain.ErrInvalidDonationType):
		return "donation type must be either monetary or item"
	case errors.Is(err, donationdomain.ErrInvalidAmount):
		return "a positive amount is required for monetary donations"
	case errors.Is(err, donationdomain.ErrAmbiguousInput):
		return "donation fields must match the donation type"
	case errors.Is(err, donationdomain.ErrMissingDescription):
		return "an item description is required for item donations"
	case errors.Is(err, donationdomain.ErrInvalidValue):
		return "estimated value must not be negative"
	case errors.Is(err, donationdomain.ErrInvalidCondition):
		return "condition must be one of new, excellent, good, fair"
	case errors.Is(err, catalogdomain.ErrInvalidItemID):
		return "item id is required"
	default:
		return "validation error"
	}
}
