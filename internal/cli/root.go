package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "CONTRACT_MAPPER"

// validationFailedMsg prefixes errors for mapping sets with error findings.
const validationFailedMsg = "validation failed"

type RootConfig struct {
	ConfigFile   string
	LogLevel     string
	ContractsDir string
	MappingsDir  string
	Store        string
	PostgresDSN  string
	RedisURL     string
	CacheTTL     string
	Threshold    float64
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:          "contract-mapper",
		Short:        "Suggest and validate field mappings between data contracts",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	flags.StringVar(&cfg.ContractsDir, "contracts-dir", ".", "Directory of YAML contracts")
	flags.StringVar(&cfg.MappingsDir, "mappings-dir", "", "Directory of mapping files (defaults to contracts-dir)")
	flags.StringVar(&cfg.Store, "store", storeFile, "Storage backend (file|postgres)")
	flags.StringVar(&cfg.PostgresDSN, "postgres-dsn", "", "Postgres connection string for --store=postgres")
	flags.StringVar(&cfg.RedisURL, "redis-url", "", "Redis URL for the suggestion cache")
	flags.StringVar(&cfg.CacheTTL, "cache-ttl", "15m", "Suggestion cache TTL")
	flags.Float64Var(&cfg.Threshold, "threshold", 0, "Accept threshold override (0 keeps the default)")

	for key, name := range map[string]string{
		"log_level":     "log-level",
		"contracts_dir": "contracts-dir",
		"mappings_dir":  "mappings-dir",
		"store":         "store",
		"postgres_dsn":  "postgres-dsn",
		"redis_url":     "redis-url",
		"cache_ttl":     "cache-ttl",
		"threshold":     "threshold",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(name))
	}

	cmd.AddCommand(newSuggestCommand())
	cmd.AddCommand(newValidateCommand())
	cmd.AddCommand(newExplainCommand())
	cmd.AddCommand(newReviewCommand())
	cmd.AddCommand(newInferCommand())
	cmd.AddCommand(newServeCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("contract-mapper")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/contract-mapper")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	log.Debug().Str("file", viper.ConfigFileUsed()).Msg("loaded config")
	return nil
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func exitCodeForError(err error) int {
	code := errbuilder.CodeOf(err)
	message := errorMessage(err)
	switch code {
	case errbuilder.CodeInvalidArgument, errbuilder.CodeAlreadyExists:
		return 2
	case errbuilder.CodeFailedPrecondition:
		if strings.HasPrefix(message, validationFailedMsg) {
			return 3
		}
		return 4
	case errbuilder.CodeNotFound, errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
