package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/foundrmate/internal/common"
	"github.com/dmitrijs2005/foundrmate/internal/logging"
	"github.com/dmitrijs2005/foundrmate/internal/server/models"
)

// Analyzer produces an analysis for a business idea.
type Analyzer interface {
	Analyze(ctx context.Context, idea string) (*models.IdeaAnalysis, error)
}

// StaticAnalyzer returns the same canned analysis for every idea.
type StaticAnalyzer struct{}

var defaultSteps = []string{
	"Market research and validation",
	"Competitive analysis",
	"Financial planning",
	"MVP development",
}

func (StaticAnalyzer) Analyze(_ context.Context, idea string) (*models.IdeaAnalysis, error) {
	steps := make([]string, len(defaultSteps))
	copy(steps, defaultSteps)
	return &models.IdeaAnalysis{
		IdeaSummary:    idea,
		ViabilityScore: 7.5,
		SuggestedSteps: steps,
	}, nil
}

// IdeaService accepts idea submissions from authenticated users.
type IdeaService struct {
	analyzer Analyzer
	logger   logging.Logger
}

func NewIdeaService(analyzer Analyzer, logger logging.Logger) *IdeaService {
	return &IdeaService{analyzer: analyzer, logger: logger.With("module", "ideas")}
}

// Submit analyses message on behalf of userID. Nothing is stored.
func (s *IdeaService) Submit(ctx context.Context, userID, message string) (*models.IdeaAnalysis, error) {
	if strings.TrimSpace(message) == "" {
		return nil, common.Validation("Please provide a business idea.")
	}

	s.logger.Info(ctx, "idea received", "user_id", userID, "length", utf8.RuneCountInString(message))

	a, err := s.analyzer.Analyze(ctx, message)
	if err != nil {
		return nil, common.Internal(err)
	}
	return a, nil
}
