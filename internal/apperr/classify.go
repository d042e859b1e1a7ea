package apperr

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Stable error labels sent as error.code.
const (
	LabelBadRequest          = "BadRequest"
	LabelNotFound            = "NotFound"
	LabelUnauthorized        = "Unauthorized"
	LabelMethodNotAllowed    = "MethodNotAllowed"
	LabelRequestTooLarge     = "RequestEntityTooLarge"
	LabelServiceUnavailable  = "ServiceUnavailable"
	LabelInternalServerError = "InternalServerError"
	LabelValidationFailed    = "ValidationFailed"
)

const (
	genericInternalMessage     = "An internal server error occurred"
	genericUnauthorizedMessage = "Unauthorized access"
)

// Classification is the client-facing view of an error.
type Classification struct {
	Status  int
	Label   string
	Message string
}

// Classify maps err to an HTTP status, a stable label and a client-safe message.
// Internal error text is only exposed for 4xx classes.
func Classify(err error) Classification {
	var ae *Error
	if errors.As(err, &ae) {
		switch ae.Kind {
		case KindInvalidArgument, KindInvalidOperation:
			return Classification{Status: http.StatusBadRequest, Label: LabelBadRequest, Message: ae.Message}
		case KindNotFound:
			return Classification{Status: http.StatusNotFound, Label: LabelNotFound, Message: ae.Message}
		case KindUnauthorized:
			return Classification{Status: http.StatusUnauthorized, Label: LabelUnauthorized, Message: genericUnauthorizedMessage}
		}
		return internal()
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= http.StatusInternalServerError {
			c := internal()
			c.Status = fe.Code
			if fe.Code == http.StatusServiceUnavailable {
				c.Label = LabelServiceUnavailable
			}
			return c
		}
		return Classification{Status: fe.Code, Label: labelForStatus(fe.Code), Message: fe.Message}
	}

	return internal()
}

func internal() Classification {
	return Classification{
		Status:  http.StatusInternalServerError,
		Label:   LabelInternalServerError,
		Message: genericInternalMessage,
	}
}

func labelForStatus(status int) string {
	switch status {
	case http.StatusNotFound:
		return LabelNotFound
	case http.StatusUnauthorized:
		return LabelUnauthorized
	case http.StatusMethodNotAllowed:
		return LabelMethodNotAllowed
	case http.StatusRequestEntityTooLarge:
		return LabelRequestTooLarge
	default:
		return LabelBadRequest
	}
}
