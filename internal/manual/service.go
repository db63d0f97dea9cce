// Package manual implements semantic search over technical manuals.
//
// Queries are normalized (lowercased, known abbreviations expanded as whole
// words) and matched against an embedded vector index of manual pages.
// Besides general search the service offers the targeted lookups field
// operators need: fault code diagnosis, procedure steps, safety information,
// and equipment specifications.
package manual

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/i-fancy-u/SentientAI/internal/vectorstore"
)

var tracer = otel.Tracer("sentient/manual")

// DefaultTopK is the result count used when callers pass a non-positive k.
const DefaultTopK = 5

// Result is one manual search hit.
type Result struct {
	Content   string
	Source    string
	Page      string
	Relevance float32
}

// Info describes the tool and its index.
type Info struct {
	Name          string
	Collection    string
	DocumentCount int
	Capabilities  []string
}

// Service provides semantic search over the manual index.
type Service struct {
	store      vectorstore.Store
	collection string
	logger     *zap.Logger
}

// NewService creates the manual search service over a vector store.
func NewService(store vectorstore.Store, collection string, logger *zap.Logger) (*Service, error) {
	if store == nil {
		return nil, errors.New("vector store is required for manual service")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, collection: collection, logger: logger}, nil
}

// Search returns the topK most relevant manual passages for the query.
// An empty query returns no results.
func (s *Service) Search(ctx context.Context, query string, topK int) ([]Result, error) {
	ctx, span := tracer.Start(ctx, "manual.Service.Search")
	defer span.End()

	if topK <= 0 {
		topK = DefaultTopK
	}
	span.SetAttributes(attribute.Int("top_k", topK))

	if query == "" {
		s.logger.Warn("empty manual query")
		return []Result{}, nil
	}

	processed := normalizeQuery(query)
	hits, err := s.store.Search(ctx, processed, topK)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("manual search: %w", err)
	}

	results := make([]Result, len(hits))
	for i, hit := range hits {
		results[i] = Result{
			Content:   hit.Content,
			Source:    metadataOr(hit.Metadata, "source", "Unknown"),
			Page:      metadataOr(hit.Metadata, "page", "Unknown"),
			Relevance: hit.Score,
		}
	}

	s.logger.Debug("manual search completed",
		zap.String("query", query),
		zap.Int("results", len(results)))
	return results, nil
}

// SearchByErrorCode looks up troubleshooting guidance for a fault code.
func (s *Service) SearchByErrorCode(ctx context.Context, errorCode string, topK int) ([]Result, error) {
	query := fmt.Sprintf("error code %s troubleshooting diagnosis solution", errorCode)
	return s.Search(ctx, query, topK)
}

// ProcedureSteps looks up the step-by-step instructions for a procedure.
func (s *Service) ProcedureSteps(ctx context.Context, procedure string, topK int) ([]Result, error) {
	query := fmt.Sprintf("%s procedure steps instructions method process", procedure)
	return s.Search(ctx, query, topK)
}

// SafetyInformation looks up safety precautions for a work context.
func (s *Service) SafetyInformation(ctx context.Context, workContext string, topK int) ([]Result, error) {
	query := fmt.Sprintf("%s safety precautions warning danger hazard protection", workContext)
	return s.Search(ctx, query, topK)
}

// Specifications looks up a specification for a piece of equipment.
func (s *Service) Specifications(ctx context.Context, equipment, specType string, topK int) ([]Result, error) {
	query := fmt.Sprintf("%s %s specification limits range parameters", equipment, specType)
	return s.Search(ctx, query, topK)
}

// Info returns a description of the tool and its index.
func (s *Service) Info() Info {
	return Info{
		Name:          "Manual Search Tool",
		Collection:    s.collection,
		DocumentCount: s.store.Count(),
		Capabilities: []string{
			"Semantic search across technical manuals",
			"Error code lookup",
			"Procedure step retrieval",
			"Safety information search",
			"Technical specifications lookup",
		},
	}
}

func metadataOr(metadata map[string]string, key, fallback string) string {
	if v, ok := metadata[key]; ok && v != "" {
		return v
	}
	return fallback
}
