package models

// IdeaAnalysis is the result returned for a submitted business idea.
type IdeaAnalysis struct {
	IdeaSummary    string   `json:"ideaSummary"`
	ViabilityScore float64  `json:"viabilityScore"`
	SuggestedSteps []string `json:"suggestedSteps"`
}
