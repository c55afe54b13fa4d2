package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// SeedEnvFromFile reads a config file (any format viper understands) and exports its keys as
// ENV variables so DefaultServiceConfigFromEnv picks them up. Nested keys are joined with "_"
// and upper-cased, e.g. `chain: {rpc_urls: ...}` becomes CHAIN_RPC_URLS.
// Variables already present in the environment win over the file.
func SeedEnvFromFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %q", path)
	}

	for _, key := range v.AllKeys() {
		envKey := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if _, ok := os.LookupEnv(envKey); ok {
			continue
		}

		value := v.GetString(key)
		if _, isList := v.Get(key).([]interface{}); isList {
			value = strings.Join(v.GetStringSlice(key), ",")
		}

		if err := os.Setenv(envKey, value); err != nil {
			return errors.Wrapf(err, "failed to set env %s", envKey)
		}
	}

	return nil
}
