package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/oceanbase/oaiembed-go/pkg/catalog"
)

type infoOutput struct {
	Model      string        `json:"model"`
	BaseURL    string        `json:"base_url"`
	VectorName string        `json:"vector_name"`
	VectorSize int           `json:"vector_size"`
	Probed     bool          `json:"probed"`
	Catalog    *catalogEntry `json:"catalog,omitempty"`
}

type catalogEntry struct {
	ID         int64     `json:"id"`
	Registered time.Time `json:"registered_at"`
}

func newInfoCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the vector name and size, registering them in the catalog if configured",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			adapter, cfg, err := newAdapter(ctx, cmd, flags)
			if err != nil {
				return err
			}

			out := infoOutput{
				Model:      cfg.Embedder.Model,
				BaseURL:    cfg.Embedder.BaseURL,
				VectorName: adapter.VectorName(),
				VectorSize: adapter.VectorSize(),
				Probed:     cfg.Embedder.VectorSize == 0,
			}

			if cfg.Catalog != nil {
				store, err := cfg.Catalog.Open()
				if err != nil {
					return fmt.Errorf("open catalog: %w", err)
				}
				defer func() { _ = store.Close() }()

				space, err := store.Register(ctx, catalog.SpaceFor(adapter, cfg.Embedder.Model, cfg.Embedder.BaseURL))
				if errors.Is(err, catalog.ErrSizeMismatch) {
					return fmt.Errorf("vector name %q is already used by a different vector space: %w", adapter.VectorName(), err)
				}
				if err != nil {
					return fmt.Errorf("register vector space: %w", err)
				}
				out.Catalog = &catalogEntry{ID: space.ID, Registered: space.CreatedAt}
			}

			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}
