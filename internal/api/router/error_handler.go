package router

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	accept "github.com/timewasted/go-accept-headers"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/api/httperrors"
	"github/chapool/mht-transfers/internal/types"
	"github/chapool/mht-transfers/internal/util"
)

var errorPageTemplate = template.Must(template.New("error").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>{{.Title}}</title></head>
<body>
<h1>{{.Code}} {{.Title}}</h1>
{{if .Detail}}<p>{{.Detail}}</p>{{end}}
<p><a href="/">Back</a></p>
</body>
</html>
`))

type errorPage struct {
	Code   int
	Title  string
	Detail string
}

// wantsHTML reports whether the client prefers an HTML error page over JSON.
// Clients without an Accept header get JSON.
func wantsHTML(c echo.Context) bool {
	ctype, err := accept.Negotiate(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON, echo.MIMETextHTML)
	if err != nil {
		return false
	}
	return ctype == echo.MIMETextHTML
}

func renderErrorPage(c echo.Context, code int, public *httperrors.HTTPError) error {
	var buf bytes.Buffer
	if err := errorPageTemplate.Execute(&buf, errorPage{
		Code:   code,
		Title:  swag.StringValue(public.Title),
		Detail: public.Detail,
	}); err != nil {
		return err
	}
	return c.HTMLBlob(code, buf.Bytes())
}

// HTTPErrorHandler renders errors returned by handlers as HTTPError bodies, JSON by
// default and as an HTML page for browsers.
func HTTPErrorHandler(s *api.Server) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			code   int
			body   interface{}
			public *httperrors.HTTPError
		)

		var (
			validationErr *httperrors.HTTPValidationError
			httpErr       *httperrors.HTTPError
			echoErr       *echo.HTTPError
		)

		switch {
		case errors.As(err, &validationErr):
			code = int(*validationErr.Code)
			body = validationErr
			public = &validationErr.HTTPError
		case errors.As(err, &httpErr):
			code = int(*httpErr.Code)
			body = httpErr
			public = httpErr
		case errors.As(err, &echoErr):
			code = echoErr.Code
			public = httperrors.NewFromEcho(echoErr)
			body = public
		default:
			code = http.StatusInternalServerError
			public = httperrors.NewHTTPError(code, types.PublicHTTPErrorTypeGeneric, http.StatusText(code))
			if !s.Config.Echo.HideInternalServerErrorDetails {
				public.Detail = err.Error()
			}
			body = public
		}

		if code >= http.StatusInternalServerError {
			util.LogFromEchoContext(c).Error().Err(err).Int("status", code).Msg("Request failed")
		} else {
			util.LogFromEchoContext(c).Debug().Err(err).Int("status", code).Msg("Request failed")
		}

		switch {
		case c.Request().Method == http.MethodHead:
			err = c.NoContent(code)
		case wantsHTML(c):
			err = renderErrorPage(c, code, public)
		default:
			err = c.JSON(code, body)
		}
		if err != nil {
			util.LogFromEchoContext(c).Warn().Err(err).Msg("Failed to write error response")
		}
	}
}
