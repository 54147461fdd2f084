package cli

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"contract-mapper/internal/adapters"
	"contract-mapper/internal/app"
	"contract-mapper/internal/metrics"
	"contract-mapper/internal/plan"
)

const (
	storeFile     = "file"
	storePostgres = "postgres"
)

// backend is an application service plus the resources it holds open.
type backend struct {
	service app.Service
	closers []func() error
}

func (b *backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			log.Warn().Err(err).Msg("failed to release resource")
		}
	}
}

// newAppService builds the service from the current configuration. m may be
// nil when nothing scrapes metrics.
func newAppService(ctx context.Context, m *metrics.Metrics) (*backend, error) {
	b := &backend{}

	switch store := strings.ToLower(viper.GetString("store")); store {
	case "", storeFile:
		contractsDir := viper.GetString("contracts_dir")
		if contractsDir == "" {
			contractsDir = "."
		}
		mappingsDir := viper.GetString("mappings_dir")
		if mappingsDir == "" {
			mappingsDir = contractsDir
		}
		b.service = app.NewService(
			adapters.NewFileContractRepository(contractsDir),
			adapters.NewFileMappingRepository(mappingsDir),
		)
		log.Debug().Str("contracts_dir", contractsDir).Str("mappings_dir", mappingsDir).Msg("using file store")
	case storePostgres:
		db, err := openPostgres(ctx, viper.GetString("postgres_dsn"))
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, db.Close)
		b.service = app.NewService(adapters.NewPostgresContractStore(db), adapters.NewPostgresMappingStore(db))
		log.Debug().Msg("using postgres store")
	default:
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unknown store " + store + ", expected file or postgres")
	}

	if err := b.configure(ctx, m); err != nil {
		b.Close()
		return nil, err
	}

	return b, nil
}

func (b *backend) configure(ctx context.Context, m *metrics.Metrics) error {
	b.service.Metrics = m

	if raw := viper.GetString("cache_ttl"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid cache_ttl " + raw).
				WithCause(err)
		}
		b.service.CacheTTL = ttl
	}

	if threshold := viper.GetFloat64("threshold"); threshold != 0 {
		if threshold < 0 || threshold >= 1 {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("threshold must be in [0, 1)")
		}
		config := plan.DefaultConfig()
		config.Threshold = threshold
		b.service.Resolver = plan.NewResolver(config)
	}

	client, err := adapters.NewRedisClient(ctx, adapters.RedisOptions{URL: viper.GetString("redis_url")})
	if err != nil {
		return err
	}
	if client != nil {
		b.closers = append(b.closers, client.Close)
		b.service.Cache = adapters.NewRedisSuggestionCache(client)
		log.Debug().Msg("using redis suggestion cache")
	}

	return nil
}

func openPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("postgres_dsn is required for the postgres store")
	}

	db, err := adapters.OpenPostgres(ctx, dsn)
	if err != nil {
		return nil, err
	}

	if err := adapters.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
