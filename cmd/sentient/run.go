package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/i-fancy-u/SentientAI/internal/agents"
	"github.com/i-fancy-u/SentientAI/internal/config"
	"github.com/i-fancy-u/SentientAI/internal/llm"
	"github.com/i-fancy-u/SentientAI/internal/logging"
	"github.com/i-fancy-u/SentientAI/internal/manual"
	"github.com/i-fancy-u/SentientAI/internal/review"
	"github.com/i-fancy-u/SentientAI/internal/scada"
	"github.com/i-fancy-u/SentientAI/internal/vectorstore"
	"github.com/i-fancy-u/SentientAI/internal/workflow"
)

var runCmd = &cobra.Command{
	Use:   "run <question>",
	Short: "Run a diagnostic workflow for a question",
	Long: `Run a diagnostic workflow for a question about industrial equipment.

The assistant plans a sequence of SCADA and MANUAL steps, executes them one
at a time, and pauses after each iteration for your review:

  c - continue with the current plan
  s - skip to the final synthesized answer
  e - edit the remaining plan steps
  q - abort the workflow

Without an argument the question is read interactively from stdin.

Examples:
  sentient run "Why is pump P-101 showing error 503?"
  sentient run "What was the average load in January?"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWorkflow,
}

func runWorkflow(cmd *cobra.Command, args []string) error {
	var question string
	if len(args) == 1 {
		question = args[0]
	} else {
		fmt.Print("Enter your question: ")
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading question: %w", err)
		}
		question = strings.TrimSpace(line)
		if question == "" {
			return errors.New("no question provided")
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logging.Sync(logger) //nolint:errcheck

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client, err := llm.NewChatClient(llm.Config{
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey.Value(),
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout.Duration(),
	})
	if err != nil {
		return fmt.Errorf("creating LLM client: %w", err)
	}

	scadaStore, err := scada.NewStore(cfg.SCADA.DBPath)
	if err != nil {
		return fmt.Errorf("opening SCADA store: %w", err)
	}
	defer scadaStore.Close()

	scadaService, err := scada.NewService(scadaStore, client, logger.Named("scada"))
	if err != nil {
		return fmt.Errorf("creating SCADA service: %w", err)
	}

	manualAgent, err := newManualAgent(cfg, logger)
	if err != nil {
		return fmt.Errorf("creating manual agent: %w", err)
	}

	executor := agents.NewToolExecutor(logger.Named("executor"), agents.WithTopK(cfg.Manual.TopK))
	executor.RegisterTool(workflow.StepKindSCADA, scadaService)
	executor.RegisterTool(workflow.StepKindManual, manualAgent)

	runner, err := workflow.NewRunner(
		agents.NewLLMPlanner(client, logger.Named("planner")),
		executor,
		agents.NewLLMReplanner(client, logger.Named("replanner")),
		agents.NewLLMSynthesizer(client, logger.Named("synthesizer")),
		workflow.WithMaxIterations(cfg.Workflow.MaxIterations),
		workflow.WithReviewer(review.NewConsoleReviewer(os.Stdin, os.Stdout)),
		workflow.WithLogger(logger.Named("workflow")),
	)
	if err != nil {
		return fmt.Errorf("creating workflow runner: %w", err)
	}

	response, err := runner.Run(ctx, question)
	if err != nil {
		return fmt.Errorf("running workflow: %w", err)
	}

	fmt.Println()
	fmt.Println(response)
	return nil
}

// newManualAgent wires the embedding client, vector store, and manual search
// service into the executor-facing agent.
func newManualAgent(cfg *config.Config, logger *zap.Logger) (*manual.Agent, error) {
	embedder, err := vectorstore.NewOpenAIEmbedder(vectorstore.EmbedderConfig{
		BaseURL: cfg.Embedding.BaseURL,
		Model:   cfg.Embedding.Model,
		APIKey:  cfg.Embedding.APIKey.Value(),
	})
	if err != nil {
		return nil, fmt.Errorf("creating embedder: %w", err)
	}

	store, err := vectorstore.NewChromemStore(vectorstore.ChromemConfig{
		Path:       cfg.Manual.Path,
		Collection: cfg.Manual.Collection,
	}, embedder, logger.Named("vectorstore"))
	if err != nil {
		return nil, fmt.Errorf("creating vector store: %w", err)
	}

	service, err := manual.NewService(store, cfg.Manual.Collection, logger.Named("manual"))
	if err != nil {
		return nil, fmt.Errorf("creating manual service: %w", err)
	}
	return manual.NewAgent(service), nil
}
