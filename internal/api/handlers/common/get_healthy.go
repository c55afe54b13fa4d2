package common

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github/chapool/mht-transfers/internal/api"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler(s))
}

// Liveness check
// This endpoint returns 200 when our Service is healthy and lists the state of every probe.
func getHealthyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), s.Config.Management.LivenessTimeout)
		defer cancel()

		str, errs := ProbeLiveness(ctx, s)
		if len(errs) > 0 {
			return c.String(521, str)
		}

		return c.String(http.StatusOK, str)
	}
}

// ProbeLiveness runs all liveness probes and returns a human readable report.
func ProbeLiveness(ctx context.Context, s *api.Server) (string, []error) {
	var (
		b    strings.Builder
		errs []error
	)

	if s.Ready() {
		b.WriteString("Ready: OK.\n")
	} else {
		errs = append(errs, fmt.Errorf("server is not fully initialized"))
		b.WriteString("Ready: Not initialized.\n")
	}

	if s.Token == nil {
		return b.String(), errs
	}

	if err := s.Token.Probe(ctx); err != nil {
		errs = append(errs, err)
		fmt.Fprintf(&b, "Chain %d: Probe failed: %v.\n", s.Token.ChainID(), err)
	} else {
		fmt.Fprintf(&b, "Chain %d: OK.\n", s.Token.ChainID())
	}

	account := s.Wallet.Account()
	if account.IsConnected {
		fmt.Fprintf(&b, "Wallet: Connected %s.\n", account.Address.Hex())
	} else {
		b.WriteString("Wallet: Not connected.\n")
	}

	if len(errs) == 0 {
		b.WriteString("Probes succeeded.")
	} else {
		fmt.Fprintf(&b, "Probes failed: %d.", len(errs))
	}

	return b.String(), errs
}
