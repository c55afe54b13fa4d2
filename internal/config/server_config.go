package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github/chapool/mht-transfers/internal/util"
	"golang.org/x/text/language"
)

type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableLoggerMiddleware         bool
	EnableMetricsMiddleware        bool
}

type LoggerServer struct {
	Level              zerolog.Level
	RequestLevel       zerolog.Level
	PrettyPrintConsole bool
}

type ManagementServer struct {
	ReadinessTimeout time.Duration
	LivenessTimeout  time.Duration
}

type Chain struct {
	// ID selects the preset, RPCURLs override the preset endpoints when set.
	ID          int64
	RPCURLs     []string
	RPCTimeout  time.Duration
	PresetsFile string
}

type Token struct {
	ContractAddress string
	Symbol          string
}

type Wallet struct {
	PrivateKey         string `json:"-"`
	KeystoreFile       string
	KeystorePassphrase string `json:"-"`
	AutoConnect        bool
}

type Transfer struct {
	ToastTTL time.Duration
}

type I18n struct {
	DefaultLanguage language.Tag
}

type Server struct {
	Echo       EchoServer
	Management ManagementServer
	Logger     LoggerServer
	Chain      Chain
	Token      Token
	Wallet     Wallet
	Transfer   Transfer
	I18n       I18n
}

// DefaultServiceConfigFromEnv returns the server config as parsed from environment variables
// and their respective defaults defined below.
// We don't expect that ENV_VARs change while we are running our application or our tests
// (and it would be a bad thing to do anyways with parallel testing).
// Do NOT use os.Setenv / os.Unsetenv in tests utilizing DefaultServiceConfigFromEnv()!
func DefaultServiceConfigFromEnv() Server {
	// An `.env.local` file in your project root can override the currently set ENV variables.
	//
	// We never automatically apply `.env.local` when running "go test" as these ENV variables
	// may be sensitive (e.g. private keys) and applying them modifies the process global
	// "os.Env" state (it should be applied via t.Setenv instead).
	if !testing.Testing() {
		util.DotEnvTryLoad(filepath.Join(util.GetProjectRootDir(), ".env.local"), os.Setenv)
	}

	return Server{
		Echo: EchoServer{
			Debug:                          util.GetEnvAsBool("SERVER_ECHO_DEBUG", false),
			ListenAddress:                  util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":8080"),
			HideInternalServerErrorDetails: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
			EnableRecoverMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
			EnableRequestIDMiddleware:      util.GetEnvAsBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true),
			EnableLoggerMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
			EnableMetricsMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_METRICS_MIDDLEWARE", true),
		},
		Management: ManagementServer{
			ReadinessTimeout: time.Second * time.Duration(util.GetEnvAsInt("SERVER_MANAGEMENT_READINESS_TIMEOUT_SEC", 4)),
			LivenessTimeout:  time.Second * time.Duration(util.GetEnvAsInt("SERVER_MANAGEMENT_LIVENESS_TIMEOUT_SEC", 9)),
		},
		Logger: LoggerServer{
			Level:              util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_LEVEL", zerolog.DebugLevel.String())),
			RequestLevel:       util.LogLevelFromString(util.GetEnv("SERVER_LOGGER_REQUEST_LEVEL", zerolog.DebugLevel.String())),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Chain: Chain{
			ID:          util.GetEnvAsInt64("CHAIN_ID", 421614), // arbitrum sepolia
			RPCURLs:     util.GetEnvAsStringArr("CHAIN_RPC_URLS", nil),
			RPCTimeout:  time.Second * time.Duration(util.GetEnvAsInt("CHAIN_RPC_TIMEOUT_SEC", 15)),
			PresetsFile: util.GetEnv("CHAIN_PRESETS_FILE", ""),
		},
		Token: Token{
			ContractAddress: util.GetEnv("TOKEN_CONTRACT_ADDRESS", ""),
			Symbol:          util.GetEnv("TOKEN_SYMBOL", "MHT"),
		},
		Wallet: Wallet{
			PrivateKey:         util.GetEnv("WALLET_PRIVATE_KEY", ""),
			KeystoreFile:       util.GetEnv("WALLET_KEYSTORE_FILE", ""),
			KeystorePassphrase: util.GetEnv("WALLET_KEYSTORE_PASSPHRASE", ""),
			AutoConnect:        util.GetEnvAsBool("WALLET_AUTO_CONNECT", true),
		},
		Transfer: Transfer{
			ToastTTL: time.Millisecond * time.Duration(util.GetEnvAsInt("TRANSFER_TOAST_TTL_MS", 5000)),
		},
		I18n: I18n{
			DefaultLanguage: util.GetEnvAsLanguageTag("SERVER_I18N_DEFAULT_LANGUAGE", language.English),
		},
	}
}
