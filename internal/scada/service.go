package scada

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/i-fancy-u/SentientAI/internal/llm"
)

var tracer = otel.Tracer("sentient/scada")

// noDataResponse is returned when a classified query matches no rows.
const noDataResponse = "No SCADA data matched the query."

// Service answers telemetry questions over the SCADA log store.
type Service struct {
	store  *Store
	client llm.Client
	logger *zap.Logger
}

// NewService creates the telemetry query service. The LLM client is
// optional: without one, classified queries return tabular text and
// unclassifiable questions return a fixed notice instead of a generated
// answer.
func NewService(store *Store, client llm.Client, logger *zap.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("store is required for scada service")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, client: client, logger: logger}, nil
}

// Search answers one natural-language telemetry question. topK is accepted
// for the uniform tool surface; row counts are bounded by the store.
//
// Failures are folded into the returned text; the error is always nil so a
// backend outage degrades a single step instead of the whole run.
func (s *Service) Search(ctx context.Context, question string, topK int) (string, error) {
	ctx, span := tracer.Start(ctx, "scada.Service.Search")
	defer span.End()

	in, ok := classify(question)
	if !ok {
		span.SetAttributes(attribute.Bool("classified", false))
		s.logger.Debug("no metric keyword matched, using LLM fallback",
			zap.String("question", question))
		return s.fallback(ctx, question), nil
	}
	span.SetAttributes(
		attribute.Bool("classified", true),
		attribute.String("metric", in.Metric),
		attribute.String("month", in.Month),
	)

	text, err := s.runQuery(ctx, in)
	if err != nil {
		s.logger.Warn("scada query failed", zap.Error(err), zap.String("question", question))
		return fmt.Sprintf("SCADA query error: %v", err), nil
	}
	if text == "" {
		return noDataResponse, nil
	}

	return s.explain(ctx, text), nil
}

// runQuery executes the single bounded read the intent calls for and
// renders the rows as text. Empty output means no rows matched.
func (s *Service) runQuery(ctx context.Context, in intent) (string, error) {
	switch {
	case in.Aggregate:
		avg, ok, err := s.store.AverageValue(ctx, in.Metric, in.Month)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", nil
		}
		return fmt.Sprintf("Average %s: %.2f", in.Metric, avg), nil

	case in.ErrorsOnly:
		readings, err := s.store.ErrorRecords(ctx, in.Month)
		if err != nil {
			return "", err
		}
		return renderReadings(readings), nil

	default:
		readings, err := s.store.RecentByMetric(ctx, in.Metric, in.Month)
		if err != nil {
			return "", err
		}
		return renderReadings(readings), nil
	}
}

// explain asks the LLM to summarize the tabular result. Without a client,
// or when generation fails, the raw table is the answer.
func (s *Service) explain(ctx context.Context, table string) string {
	if s.client == nil {
		return table
	}
	out, err := s.client.Generate(ctx, "Analyze this SCADA data and explain it simply:\n\n"+table)
	if err != nil || out == "" {
		s.logger.Warn("LLM explanation failed, returning raw data", zap.Error(err))
		return table
	}
	return out
}

// fallback answers an unclassifiable question with a general LLM response.
func (s *Service) fallback(ctx context.Context, question string) string {
	if s.client == nil {
		return "The question matched no known SCADA metric. Try asking about pressure, temperature, vibration, load, rotation speed, or fault codes."
	}
	out, err := s.client.Generate(ctx, question)
	if err != nil || out == "" {
		s.logger.Warn("LLM fallback failed", zap.Error(err))
		return fmt.Sprintf("SCADA query error: %v", err)
	}
	return out
}

// renderReadings formats rows as a fixed-width table. Empty input renders
// as the empty string so callers can detect the no-data case.
func renderReadings(readings []Reading) string {
	if len(readings) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-20s  %-16s  %-20s  %10s  %-6s  %s\n",
		"timestamp", "equipment", "metric", "value", "unit", "error_code")
	for _, r := range readings {
		errorCode := r.ErrorCode
		if errorCode == "" {
			errorCode = "-"
		}
		fmt.Fprintf(&b, "%-20s  %-16s  %-20s  %10.2f  %-6s  %s\n",
			r.Timestamp.UTC().Format("2006-01-02 15:04:05"),
			r.Equipment, r.Metric, r.Value, r.Unit, errorCode)
	}
	return strings.TrimRight(b.String(), "\n")
}
