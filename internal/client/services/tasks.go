package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/foundrmate/internal/client/models"
	"github.com/dmitrijs2005/foundrmate/internal/client/repositories/tasks"
)

var ErrInvalidTask = errors.New("invalid task")

// TaskService keeps the launch roadmap. It works offline.
type TaskService interface {
	Add(ctx context.Context, category, title, description string) (*models.Task, error)
	List(ctx context.Context) ([]models.Task, models.Progress, error)
	SetCompleted(ctx context.Context, id int64, completed bool) error
	Remove(ctx context.Context, id int64) error
	AddSuggested(ctx context.Context, a *models.Analysis) ([]*models.Task, error)
}

type taskService struct {
	repo tasks.Repository
}

func NewTaskService(r tasks.Repository) TaskService {
	return &taskService{repo: r}
}

func (s *taskService) Add(ctx context.Context, category, title, description string) (*models.Task, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	title = strings.TrimSpace(title)
	if !models.ValidCategory(category) {
		return nil, fmt.Errorf("%w: category must be one of %s", ErrInvalidTask, strings.Join(models.Categories, ", "))
	}
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidTask)
	}
	return s.repo.Create(ctx, &models.Task{
		Category:    category,
		Title:       title,
		Description: strings.TrimSpace(description),
	})
}

func (s *taskService) List(ctx context.Context) ([]models.Task, models.Progress, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, models.Progress{}, err
	}
	return list, models.ProgressOf(list), nil
}

func (s *taskService) SetCompleted(ctx context.Context, id int64, completed bool) error {
	return s.repo.SetCompleted(ctx, id, completed)
}

func (s *taskService) Remove(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// AddSuggested turns each suggested step into a task, categorised by
// keywords in the step text.
func (s *taskService) AddSuggested(ctx context.Context, a *models.Analysis) ([]*models.Task, error) {
	var added []*models.Task
	for _, step := range a.SuggestedSteps {
		step = strings.TrimSpace(step)
		if step == "" {
			continue
		}
		t, err := s.repo.Create(ctx, &models.Task{Category: categorize(step), Title: step})
		if err != nil {
			return added, err
		}
		added = append(added, t)
	}
	return added, nil
}

var categoryKeywords = []struct {
	category string
	words    []string
}{
	{models.CategoryLegal, []string{"register", "legal", "license", "trademark", "incorporat", "contract"}},
	{models.CategoryFinance, []string{"fund", "financ", "budget", "bank", "invest", "pricing", "revenue"}},
	{models.CategoryMarketing, []string{"market", "brand", "audience", "customer", "social", "advertis"}},
}

func categorize(step string) string {
	lower := strings.ToLower(step)
	for _, ck := range categoryKeywords {
		for _, w := range ck.words {
			if strings.Contains(lower, w) {
				return ck.category
			}
		}
	}
	return models.CategoryLaunch
}
