package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/i-fancy-u/SentientAI/internal/config"
	"github.com/i-fancy-u/SentientAI/internal/logging"
	"github.com/i-fancy-u/SentientAI/internal/vectorstore"
)

// chunkSize is the target character length of a manual chunk. Chunks break
// on paragraph boundaries where possible.
const chunkSize = 1200

var ingestCmd = &cobra.Command{
	Use:   "ingest <dir>",
	Short: "Index technical manuals into the vector store",
	Long: `Index technical manuals into the vector store.

Walks the directory for .txt and .md files, splits each into chunks on
paragraph boundaries, embeds them, and stores them in the manual collection.

Examples:
  sentient ingest ./manuals
  sentient ingest --config prod.yaml /srv/docs`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logging.Sync(logger) //nolint:errcheck

	embedder, err := vectorstore.NewOpenAIEmbedder(vectorstore.EmbedderConfig{
		BaseURL: cfg.Embedding.BaseURL,
		Model:   cfg.Embedding.Model,
		APIKey:  cfg.Embedding.APIKey.Value(),
	})
	if err != nil {
		return fmt.Errorf("creating embedder: %w", err)
	}

	store, err := vectorstore.NewChromemStore(vectorstore.ChromemConfig{
		Path:       cfg.Manual.Path,
		Collection: cfg.Manual.Collection,
	}, embedder, logger.Named("vectorstore"))
	if err != nil {
		return fmt.Errorf("creating vector store: %w", err)
	}

	var docs []vectorstore.Document
	root := args[0]
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".txt" && ext != ".md" {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		source := filepath.Base(path)
		for i, chunk := range chunkText(string(content)) {
			docs = append(docs, vectorstore.Document{
				Content: chunk,
				Metadata: map[string]string{
					"source": source,
					"page":   fmt.Sprintf("%d", i+1),
				},
			})
		}
		logger.Info("read manual file", zap.String("path", path))
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking %s: %w", root, err)
	}

	if len(docs) == 0 {
		return fmt.Errorf("no .txt or .md files found under %s", root)
	}

	ids, err := store.AddDocuments(cmd.Context(), docs)
	if err != nil {
		return fmt.Errorf("indexing documents: %w", err)
	}

	fmt.Printf("Indexed %d chunks into collection %q\n", len(ids), cfg.Manual.Collection)
	return nil
}

// chunkText splits text into chunks of roughly chunkSize characters,
// preferring paragraph boundaries. Empty chunks are dropped.
func chunkText(text string) []string {
	paragraphs := strings.Split(text, "\n\n")

	var chunks []string
	var current strings.Builder
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if current.Len() > 0 && current.Len()+len(p) > chunkSize {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteString("\n\n")
		}
		current.WriteString(p)
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
