package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/mht-transfers/internal/util"
	"golang.org/x/text/language"
)

func TestGetEnvAsStringArr(t *testing.T) {
	t.Setenv("TEST_RPC_URLS", " https://a.example , ,https://b.example,")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, util.GetEnvAsStringArr("TEST_RPC_URLS", nil))

	t.Setenv("TEST_RPC_URLS", "a|b")
	assert.Equal(t, []string{"a", "b"}, util.GetEnvAsStringArr("TEST_RPC_URLS", nil, "|"))

	assert.Equal(t, []string{"x"}, util.GetEnvAsStringArr("TEST_RPC_URLS_UNSET", []string{"x"}))
}

func TestGetEnvAsNumbers(t *testing.T) {
	t.Setenv("TEST_CHAIN_ID", "42161")
	assert.Equal(t, int64(42161), util.GetEnvAsInt64("TEST_CHAIN_ID", 1))
	assert.Equal(t, 42161, util.GetEnvAsInt("TEST_CHAIN_ID", 1))

	t.Setenv("TEST_CHAIN_ID", "arbitrum")
	assert.Equal(t, int64(1), util.GetEnvAsInt64("TEST_CHAIN_ID", 1))
	assert.Equal(t, 1, util.GetEnvAsInt("TEST_CHAIN_ID", 1))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_AUTO_CONNECT", "false")
	assert.False(t, util.GetEnvAsBool("TEST_AUTO_CONNECT", true))

	t.Setenv("TEST_AUTO_CONNECT", "nope")
	assert.True(t, util.GetEnvAsBool("TEST_AUTO_CONNECT", true))
}

func TestGetEnvAsLanguageTag(t *testing.T) {
	t.Setenv("TEST_LANGUAGE", "es")
	assert.Equal(t, language.Spanish.String(), util.GetEnvAsLanguageTag("TEST_LANGUAGE", language.English).String())

	t.Setenv("TEST_LANGUAGE", "")
	assert.Equal(t, language.English.String(), util.GetEnvAsLanguageTag("TEST_LANGUAGE", language.English).String())
}

func TestDotEnvLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.local")
	require.NoError(t, os.WriteFile(path, []byte("TOKEN_SYMBOL=TST\nCHAIN_ID=11155111\n"), 0o600))

	envs := map[string]string{}
	err := util.DotEnvLoad(path, func(key string, value string) error {
		envs[key] = value
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"TOKEN_SYMBOL": "TST", "CHAIN_ID": "11155111"}, envs)

	err = util.DotEnvLoad(filepath.Join(t.TempDir(), "missing"), func(string, string) error { return nil })
	require.True(t, os.IsNotExist(err))
}

func TestLogLevelFromString(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, util.LogLevelFromString("warn"))
	assert.Equal(t, zerolog.DebugLevel, util.LogLevelFromString("loud"))
}
