package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mindstep/aiplan/internal/clients"
	"github.com/mindstep/aiplan/internal/estimate"
	"github.com/mindstep/aiplan/internal/goals"
	"github.com/mindstep/aiplan/internal/llm"
	"github.com/mindstep/aiplan/internal/narrative"
	"github.com/mindstep/aiplan/internal/plan"
	"github.com/mindstep/aiplan/internal/service"
	"github.com/mindstep/aiplan/internal/store"
	"github.com/mindstep/aiplan/internal/templates"
)

// openStore opens the audit database. Commands that only record events
// keep working without it.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(cmd.Context(), dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newAssembler wires tables, phrase book and text writers from cfg. A
// disabled LLM leaves the template writers in place.
func newAssembler(ctx context.Context, repo store.EventRepo, seed *uint64) (*plan.Assembler, error) {
	opts := plan.Options{Seed: seed, Logger: logger}

	if cfg.TemplatesFile != "" {
		tb, err := templates.LoadFile(cfg.TemplatesFile)
		if err != nil {
			return nil, err
		}
		opts.Templates = tb
	}

	ph, err := estimate.ForLocale(cfg.Locale)
	if err != nil {
		return nil, err
	}
	opts.Phrases = &ph

	provider, err := llm.NewProvider(ctx, cfg.LLM, repo, logger)
	switch {
	case errors.Is(err, llm.ErrDisabled):
		logger.Debug("llm disabled, using template text")
	case err != nil:
		return nil, err
	default:
		logger.Info("llm enabled", zap.String("provider", cfg.LLM.Provider), zap.String("model", provider.ModelID()))
		opts.Goals = goals.NewLLMWriter(provider)
		opts.Narrative = narrative.NewLLMWriter(provider)
	}

	return plan.NewAssembler(opts), nil
}

// newService builds the plan service. Remote sources are wired only when
// both upstream URLs are configured; rdb may be nil.
func newService(asm *plan.Assembler, repo store.EventRepo, rdb *redis.Client) *service.PlanService {
	deps := service.Deps{
		Assembler: asm,
		Repo:      repo,
		Locale:    cfg.Locale,
		Logger:    logger,
	}
	if cfg.Remote() {
		deps.Profiles = clients.NewProfileClient(cfg.ProfileServiceURL, cfg.ClientTimeout)
		var catalog clients.CatalogSource = clients.NewTaskClient(cfg.TaskServiceURL, cfg.ClientTimeout)
		if rdb != nil {
			catalog = clients.NewCachedCatalog(catalog, rdb, cfg.CatalogCacheTTL, logger)
		}
		deps.Catalog = catalog
	}
	return service.New(deps)
}

// newRedis returns a client when REDIS_ADDR is set and reachable.
func newRedis(ctx context.Context) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping failed, catalog cache disabled", zap.Error(err))
		_ = rdb.Close()
		return nil
	}
	return rdb
}
