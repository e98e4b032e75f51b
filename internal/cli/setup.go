package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/oceanbase/oaiembed-go/pkg/config"
	"github.com/oceanbase/oaiembed-go/pkg/embedder/oaicompat"
)

// loadConfig reads the configured source and applies flag overrides.
// An explicit --vector-size 0 clears a configured size so the endpoint is probed.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	switch {
	case flags.configFile != "":
		cfg, err = config.LoadConfigFromFile(flags.configFile)
	case flags.envFile != "":
		cfg, err = config.LoadConfigFromEnvFile(flags.envFile)
	default:
		cfg, err = config.LoadConfigFromEnv()
	}
	if err != nil {
		return nil, err
	}

	if flags.model != "" {
		cfg.Embedder.Model = flags.model
	}
	if flags.baseURL != "" {
		cfg.Embedder.BaseURL = flags.baseURL
	}
	if flags.apiKey != "" {
		cfg.Embedder.APIKey = flags.apiKey
	}
	if cmd.Flags().Changed("vector-size") {
		cfg.Embedder.VectorSize = flags.vectorSize
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newAdapter loads the configuration and builds a ready adapter.
func newAdapter(ctx context.Context, cmd *cobra.Command, flags *globalFlags) (*oaicompat.Adapter, *config.Config, error) {
	cfg, err := loadConfig(cmd, flags)
	if err != nil {
		return nil, nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), flags.verbose)
	adapter, err := oaicompat.New(ctx, cfg.Embedder.AdapterConfig(), oaicompat.WithLogger(logger))
	if err != nil {
		return nil, nil, fmt.Errorf("initialize embedder: %w", err)
	}

	logger.Debug("embedder initialized",
		slog.String("vector_name", adapter.VectorName()),
		slog.Int("vector_size", adapter.VectorSize()),
	)
	return adapter, cfg, nil
}
