// Package cli defines the Cobra command tree for the oaiembed CLI.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// version, commit, date are set via -ldflags at build time.
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configFile string
	envFile    string
	model      string
	baseURL    string
	apiKey     string
	vectorSize int
	verbose    bool
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:   "oaiembed",
		Short: "Embed text with any OpenAI-compatible embeddings endpoint",
		Long: `oaiembed sends documents and queries to an OpenAI-compatible
embeddings endpoint (vLLM, TEI, Ollama, OpenAI, ...) and prints the vectors.

Configuration comes from EMBEDDING_* environment variables, a .env file,
or a JSON/TOML file given with --config. Flags override both.

If --vector-size is not given, the endpoint is probed once to learn it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "JSON, TOML or .env config file")
	pf.StringVar(&flags.envFile, "env-file", "", ".env file to load before reading the environment")
	pf.StringVar(&flags.model, "model", "", "embedding model (overrides EMBEDDING_MODEL)")
	pf.StringVar(&flags.baseURL, "base-url", "", "endpoint base URL (overrides EMBEDDING_BASE_URL)")
	pf.StringVar(&flags.apiKey, "api-key", "", "API key (overrides EMBEDDING_API_KEY)")
	pf.IntVar(&flags.vectorSize, "vector-size", 0, "embedding dimension; 0 probes the endpoint even if a size is configured")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging on stderr")

	root.AddCommand(
		newQueryCmd(flags),
		newDocsCmd(flags),
		newInfoCmd(flags),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command.
func Execute(v, c, d string) {
	version, commit, date = v, c, d
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "oaiembed %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
