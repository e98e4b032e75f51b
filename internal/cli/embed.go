package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

type queryOutput struct {
	VectorName string    `json:"vector_name"`
	VectorSize int       `json:"vector_size"`
	Embedding  []float32 `json:"embedding"`
}

type documentOutput struct {
	Index     int       `json:"index"`
	Text      string    `json:"text"`
	Embedding []float32 `json:"embedding"`
}

type docsOutput struct {
	VectorName string           `json:"vector_name"`
	VectorSize int              `json:"vector_size"`
	Embeddings []documentOutput `json:"embeddings"`
}

func newQueryCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "query <text>",
		Short: "Embed a single query and print the vector as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			adapter, _, err := newAdapter(ctx, cmd, flags)
			if err != nil {
				return err
			}

			vector, err := adapter.EmbedQuery(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}

			return writeJSON(cmd.OutOrStdout(), queryOutput{
				VectorName: adapter.VectorName(),
				VectorSize: adapter.VectorSize(),
				Embedding:  vector,
			})
		},
	}
}

func newDocsCmd(flags *globalFlags) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "docs [text...]",
		Short: "Embed documents in one batch and print the vectors as JSON",
		Long: `Embed documents in one batch request.

Documents are taken from the arguments, or one per non-empty line from
--file ("-" reads stdin).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			documents := args
			if file != "" {
				lines, err := readLines(cmd.InOrStdin(), file)
				if err != nil {
					return err
				}
				documents = append(documents, lines...)
			}
			if len(documents) == 0 {
				return fmt.Errorf("no documents given")
			}

			ctx := cmd.Context()
			adapter, _, err := newAdapter(ctx, cmd, flags)
			if err != nil {
				return err
			}

			vectors, err := adapter.EmbedDocuments(ctx, documents)
			if err != nil {
				return err
			}

			out := docsOutput{
				VectorName: adapter.VectorName(),
				VectorSize: adapter.VectorSize(),
				Embeddings: make([]documentOutput, len(documents)),
			}
			for i, doc := range documents {
				out.Embeddings[i] = documentOutput{Index: i, Text: doc, Embedding: vectors[i]}
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "read documents from file, one per line")
	return cmd
}

// readLines returns the non-empty lines of path, or of stdin when path is "-".
func readLines(stdin io.Reader, path string) ([]string, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() { _ = f.Close() }()
		r = f
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
