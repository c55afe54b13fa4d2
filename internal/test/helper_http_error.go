package test

import (
	"net/http/httptest"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/require"
	"github/chapool/mht-transfers/internal/api/httperrors"
)

// RequireHTTPError asserts the response carries httpError's status, type and title.
func RequireHTTPError(t *testing.T, res *httptest.ResponseRecorder, httpError *httperrors.HTTPError) httperrors.HTTPError {
	t.Helper()

	var response httperrors.HTTPError
	ParseResponseBody(t, res, &response)

	require.Equal(t, int(*httpError.Code), res.Result().StatusCode)
	require.Equal(t, swag.Int64Value(httpError.Code), swag.Int64Value(response.Code))
	require.Equal(t, swag.StringValue(httpError.Type), swag.StringValue(response.Type))
	require.Equal(t, swag.StringValue(httpError.Title), swag.StringValue(response.Title))

	return response
}
