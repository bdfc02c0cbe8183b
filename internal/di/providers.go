package di

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/repository"
	domsvc "github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/service"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/handler/api"
	internalrepo "github.com/Navin-kumar0007/Git-Alpha-Engine/internal/repository"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/service/cache"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/services/features"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/services/mlmodel"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/services/training"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/usecase"
	pkgch "github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/clickhouse"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/config"
	xhttp "github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/http"
	pkgkafka "github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/kafka"
	applogger "github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/logger"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/metrics"
	"github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/server"
)

// syntheticSeed keeps bootstrap training sets reproducible across runs.
const syntheticSeed = 42

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	log, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return log, nil
}

// ProvideClickHouseClient creates a ClickHouse client.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}
	return client, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCandleStore creates the ClickHouse-backed candle reader.
func ProvideCandleStore(chClient *pkgch.Client, log *applogger.Logger) repository.CandleStore {
	store := internalrepo.NewCHCandleStore(chClient)
	store.SetLogger(log)
	return store
}

// ProvideSignalPublisher creates the Kafka report publisher, or a no-op
// one when no broker is configured.
func ProvideSignalPublisher(cfg *config.Config) (repository.SignalPublisher, error) {
	if !cfg.Kafka.Enabled {
		return internalrepo.NoopSignalPublisher{}, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.BatchTimeout),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaSignalPublisher(producer, cfg.Kafka.Topic), nil
}

// ProvideModelStore creates the artifact store selected by config.
func ProvideModelStore(cfg *config.Config) (repository.ModelStore, error) {
	if cfg.Model.Store == "redis" {
		cli := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return internalrepo.NewRedisModelStore(cli, ""), nil
	}
	store, err := internalrepo.NewFileModelStore(cfg.Model.Path)
	if err != nil {
		return nil, fmt.Errorf("file model store: %w", err)
	}
	return store, nil
}

// ProvideReportCache creates the report cache: Redis when enabled so
// replicas share reports, in-process otherwise.
func ProvideReportCache(cfg *config.Config) cache.BytesCache {
	if cfg.Redis.Enabled {
		return cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	return cache.NewTTLCache()
}

// ProvideFeatureExtractor creates the feature extractor.
func ProvideFeatureExtractor() domsvc.FeatureExtractor {
	return features.NewExtractor()
}

// ProvideTrainingGenerator creates the synthetic data generator.
func ProvideTrainingGenerator() domsvc.TrainingDataGenerator {
	return training.NewGenerator(syntheticSeed)
}

// ProvideModelService creates the classifier service.
func ProvideModelService(store repository.ModelStore, log *applogger.Logger) domsvc.ModelService {
	return mlmodel.NewService(store, log)
}

// ProvideAnalyzer creates the signal fusion analyzer.
func ProvideAnalyzer(extractor domsvc.FeatureExtractor, model domsvc.ModelService, log *applogger.Logger) domsvc.Analyzer {
	return usecase.NewAnalyzer(extractor, model, log)
}

// ProvideTrainer creates the training orchestrator.
func ProvideTrainer(
	generator domsvc.TrainingDataGenerator,
	model domsvc.ModelService,
	m repository.Metrics,
	log *applogger.Logger,
	cfg *config.Config,
) *usecase.Trainer {
	t := usecase.NewTrainer(generator, model, m, log)
	t.SetBootstrapSamples(cfg.Model.SyntheticSamples)
	return t
}

// ProvideSymbolAnalytics creates the by-symbol analytics pipeline.
func ProvideSymbolAnalytics(
	candles repository.CandleStore,
	analyzer domsvc.Analyzer,
	publisher repository.SignalPublisher,
	m repository.Metrics,
	bc cache.BytesCache,
	log *applogger.Logger,
	cfg *config.Config,
) *usecase.SymbolAnalytics {
	s := usecase.NewSymbolAnalytics(candles, analyzer, publisher, m, bc, log)
	s.SetReportTTL(cfg.Analytics.ReportCacheTTL)
	return s
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(
	log *applogger.Logger,
	analyzer domsvc.Analyzer,
	symbols *usecase.SymbolAnalytics,
	trainer *usecase.Trainer,
	model domsvc.ModelService,
) xhttp.Handler {
	return api.NewAnalyticsEchoHandler(log, analyzer, symbols, trainer, model)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	log *applogger.Logger,
	chClient *pkgch.Client,
	publisher repository.SignalPublisher,
	trainer *usecase.Trainer,
	handler xhttp.Handler,
) *server.App {
	return server.New(cfg, log, chClient, publisher, trainer, handler)
}
