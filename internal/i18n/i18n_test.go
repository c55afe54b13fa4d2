package i18n_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mht-transfers/internal/config"
	"github/chapool/mht-transfers/internal/i18n"
	"golang.org/x/text/language"
)

func newService(t *testing.T) *i18n.Service {
	t.Helper()

	s, err := i18n.New(config.I18n{DefaultLanguage: language.English})
	require.NoError(t, err)
	return s
}

func TestTranslate(t *testing.T) {
	s := newService(t)

	assert.Equal(t, "MHT Token Transfers", s.Translate("PageTitle", language.English))
	assert.Equal(t, "Transferencias del token MHT", s.Translate("PageTitle", language.Spanish))
	assert.Equal(t, "Balance:", s.Translate("Balance", language.German))
	assert.Equal(t, "NoSuchKey", s.Translate("NoSuchKey", language.English))
}

func TestTransferMessages(t *testing.T) {
	s := newService(t)

	assert.Equal(t, "Transferred 50 tokens to 0xAbc", s.TransferSucceeded(big.NewInt(50), "0xAbc"))
	assert.Equal(t, "Failed to transfer tokens", s.TransferFailed())
}

func TestParseAcceptLanguage(t *testing.T) {
	s := newService(t)

	assert.Equal(t, "es", s.ParseAcceptLanguage("es-AR,es;q=0.9,en;q=0.8").String())
	assert.Equal(t, "en", s.ParseAcceptLanguage("en-US").String())
	assert.Equal(t, "en", s.ParseAcceptLanguage("fr").String())
	assert.Equal(t, "en", s.ParseAcceptLanguage("").String())
	assert.Equal(t, "en", s.ParseAcceptLanguage(";;;").String())
}

func TestLocalized(t *testing.T) {
	s := newService(t)

	es := s.For(language.Spanish)
	assert.Equal(t, "es", es.Lang().String())
	assert.Equal(t, "Se transfirieron 5 tokens a 0x1", es.TransferSucceeded(big.NewInt(5), "0x1"))
	assert.Equal(t, "No se pudieron transferir los tokens", es.TransferFailed())
	assert.Equal(t, "Saldo:", es.T("Balance"))
}
