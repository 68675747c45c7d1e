// Package tasks stores the launch roadmap on the client.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/foundrmate/internal/client/models"
)

// Repository persists roadmap tasks. SetCompleted and Delete return
// common.ErrorNotFound for an unknown id.
type Repository interface {
	Create(ctx context.Context, t *models.Task) (*models.Task, error)
	List(ctx context.Context) ([]models.Task, error)
	SetCompleted(ctx context.Context, id int64, completed bool) error
	Delete(ctx context.Context, id int64) error
}
