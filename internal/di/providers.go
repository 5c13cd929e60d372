package di

import (
	"context"
	"fmt"
	"time"

	"AstroChart/internal/ephemeris"
	"AstroChart/internal/handler/api"
	"AstroChart/internal/usecase"
	pkgcache "AstroChart/pkg/cache"
	"AstroChart/pkg/config"
	xhttp "AstroChart/pkg/http"
	applogger "AstroChart/pkg/logger"
	"AstroChart/pkg/metrics"
	"AstroChart/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	lc := &applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if lc.Level == "" {
		lc.Level = "info"
	}
	l, err := applogger.New(lc)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideCallMetrics creates the Prometheus provider-call recorder.
func ProvideCallMetrics() ephemeris.CallMetrics {
	return metrics.New()
}

// ProvideAdapter selects the provider response adapter once at startup.
func ProvideAdapter(cfg *config.Config) (ephemeris.ResponseAdapter, error) {
	adapter, err := ephemeris.NewAdapter(cfg.Ephemeris.Adapter)
	if err != nil {
		return nil, fmt.Errorf("ephemeris adapter: %w", err)
	}
	return adapter, nil
}

// ProvideProvider creates the ephemeris sidecar client and initializes it.
// An init failure degrades the house subsystem but is not fatal: planetary
// positions still work.
func ProvideProvider(cfg *config.Config, adapter ephemeris.ResponseAdapter, m ephemeris.CallMetrics, l *applogger.Logger) ephemeris.Provider {
	client := ephemeris.NewClient(ephemeris.ClientConfig{
		ServiceURL: cfg.Ephemeris.ServiceURL,
		DataPath:   cfg.Ephemeris.DataPath,
		Timeout:    cfg.Ephemeris.Timeout,
	}, adapter, m, l)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	// Error already logged by the client; houses stay unavailable.
	_ = client.Init(ctx)

	return client
}

// ProvideCache creates the response cache, or nil when disabled.
func ProvideCache(cfg *config.Config, l *applogger.Logger) (pkgcache.Service, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	memOpts := []pkgcache.MemoryOption{pkgcache.WithMemoryMaxSize(cfg.Cache.MaxSize)}

	if cfg.Cache.Redis.Enabled {
		rc, err := pkgcache.NewRedisCache(
			pkgcache.WithRedisAddr(cfg.Cache.Redis.Addr),
			pkgcache.WithRedisPassword(cfg.Cache.Redis.Password),
			pkgcache.WithRedisDB(cfg.Cache.Redis.DB),
		)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
		l.Info("cache: layered memory+redis", applogger.String("addr", cfg.Cache.Redis.Addr))
		return pkgcache.NewLayeredCache(rc, memOpts...), nil
	}

	l.Info("cache: in-memory only")
	return pkgcache.NewMemoryCache(memOpts...), nil
}

// ProvideChartBuilder creates the chart builder use case.
func ProvideChartBuilder(prov ephemeris.Provider, l *applogger.Logger) *usecase.ChartBuilder {
	return usecase.NewChartBuilder(prov, l)
}

// ProvideComposer creates the chat composer use case.
func ProvideComposer() *usecase.Composer {
	return usecase.NewComposer()
}

// ProvideHandler creates the Echo HTTP handler.
func ProvideHandler(cfg *config.Config, l *applogger.Logger, builder *usecase.ChartBuilder, composer *usecase.Composer, cache pkgcache.Service) xhttp.Handler {
	h := api.NewChartHandler(l, builder, composer, cfg.Ephemeris.DefaultHouseSystem)
	if cache != nil {
		h.SetCache(cache, cfg.Cache.TTL)
	}
	return h
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, handler xhttp.Handler, cache pkgcache.Service, l *applogger.Logger) *server.App {
	return server.New(cfg, handler, cache, l)
}
