package cli

import (
	"context"
	"fmt"
	"strings"
)

var getMultiline = GetMultiline

// Idea submits a business idea and offers to add the suggested steps to
// the roadmap.
func (a *App) Idea(ctx context.Context) error {
	message, err := getMultiline(a.reader, "Describe your business idea", a.out)
	if err != nil {
		return err
	}
	if strings.TrimSpace(message) == "" {
		printlnFn("Nothing to submit")
		return nil
	}

	analysis, err := a.ideaService.Submit(ctx, message)
	if err != nil {
		return a.report(err)
	}

	printlnFn(analysis.IdeaSummary)
	printlnFn(fmt.Sprintf("Viability score: %.1f/10", analysis.ViabilityScore))
	if len(analysis.SuggestedSteps) == 0 {
		return nil
	}
	printlnFn("Suggested steps:")
	for i, step := range analysis.SuggestedSteps {
		printlnFn(fmt.Sprintf("  %d. %s", i+1, step))
	}

	if !confirm(a.reader, "Add these steps to your roadmap?", a.out) {
		return nil
	}
	added, err := a.taskService.AddSuggested(ctx, analysis)
	if err != nil {
		return a.report(err)
	}
	printlnFn(fmt.Sprintf("Added %d tasks", len(added)))
	return nil
}
