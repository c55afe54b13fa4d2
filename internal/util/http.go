package util

import (
	"net/http"
	"strings"

	oaerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/chapool/mht-transfers/internal/api/httperrors"
	"github/chapool/mht-transfers/internal/types"
)

// BindAndValidateBody binds the request body to v and validates it against its
// generated (go-openapi) validation rules.
func BindAndValidateBody(c echo.Context, v runtime.Validatable) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindBody(c, v); err != nil {
		LogFromEchoContext(c).Debug().Err(err).Msg("Failed to bind request body")
		return httperrors.NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Malformed request body")
	}

	return validatePayload(c, v)
}

// ValidateAndReturn validates the response against its generated rules before writing it as JSON.
func ValidateAndReturn(c echo.Context, code int, v runtime.Validatable) error {
	if err := v.Validate(strfmt.Default); err != nil {
		LogFromEchoContext(c).Error().Err(err).Msg("Response validation failed")
		return httperrors.NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusInternalServerError))
	}

	return c.JSON(code, v)
}

func validatePayload(c echo.Context, v runtime.Validatable) error {
	err := v.Validate(strfmt.Default)
	if err == nil {
		return nil
	}

	LogFromEchoContext(c).Debug().Err(err).Msg("Payload did not validate")

	var details []*types.HTTPValidationErrorDetail
	collectValidationDetails(err, &details)

	return httperrors.NewHTTPValidationError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, http.StatusText(http.StatusBadRequest), details)
}

func collectValidationDetails(err error, details *[]*types.HTTPValidationErrorDetail) {
	switch e := err.(type) { //nolint:errorlint
	case *oaerrors.CompositeError:
		for _, inner := range e.Errors {
			collectValidationDetails(inner, details)
		}
	case *oaerrors.Validation:
		*details = append(*details, &types.HTTPValidationErrorDetail{
			Key:   swag.String(strings.TrimPrefix(e.Name, ".")),
			In:    swag.String(e.In),
			Error: swag.String(e.Error()),
		})
	default:
		*details = append(*details, &types.HTTPValidationErrorDetail{
			Key:   swag.String("body"),
			In:    swag.String("body"),
			Error: swag.String(err.Error()),
		})
	}
}
