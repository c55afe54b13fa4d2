package web

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/labstack/echo/v4"
	"github/chapool/mht-transfers/internal/api"
	"github/chapool/mht-transfers/internal/chains"
	"github/chapool/mht-transfers/internal/i18n"
	"github/chapool/mht-transfers/internal/transfer"
	"github/chapool/mht-transfers/internal/wallet"
)

//go:embed templates/*.html
var templateFS embed.FS

var indexTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// seconds until a page showing a loading balance reloads
const loadingRefreshSec = 2

type page struct {
	Lang       string
	L          i18n.Localized
	Refresh    int
	Account    wallet.Account
	AddressURL string
	CanConnect bool
	Chain      chains.Chain
	Symbol     string
	Balance    transfer.BalanceView
	Busy       bool
	Toasts     []transfer.Toast
	Form       *transfer.Form
	Error      string
}

func localized(s *api.Server, c echo.Context) i18n.Localized {
	return s.I18n.For(s.I18n.ParseAcceptLanguage(c.Request().Header.Get("Accept-Language")))
}

func render(s *api.Server, c echo.Context, code int, l i18n.Localized, form *transfer.Form, errMsg string) error {
	state := s.Transfer.State()

	p := page{
		Lang:       l.Lang().String(),
		L:          l,
		Account:    state.Account,
		CanConnect: s.Wallet.CanConnect(),
		Chain:      s.Chain,
		Symbol:     s.Config.Token.Symbol,
		Balance:    state.Balance,
		Busy:       state.Busy,
		Toasts:     s.Toasts.Active(),
		Form:       form,
		Error:      errMsg,
	}

	if state.Account.IsConnected {
		p.AddressURL = s.Chain.AddressURL(state.Account.Address.Hex())
	}
	if state.Balance.IsLoading || state.Busy {
		p.Refresh = loadingRefreshSec
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, p); err != nil {
		return err
	}

	return c.HTMLBlob(code, buf.Bytes())
}

func redirectHome(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/")
}
