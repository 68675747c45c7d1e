package tasks

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/foundrmate/internal/client/models"
	"github.com/dmitrijs2005/foundrmate/internal/common"
	"github.com/dmitrijs2005/foundrmate/internal/dbx"
)

type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

// created_at is stored as unix seconds.
func (r *SQLiteRepository) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	created := r.now().UTC().Truncate(time.Second)
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (category, title, description, completed, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, t.Category, t.Title, t.Description, t.Completed, created.Unix())
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	t.ID = id
	t.CreatedAt = created
	return t, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, category, title, description, completed, created_at
		FROM tasks
		ORDER BY
			CASE category WHEN 'legal' THEN 0 WHEN 'finance' THEN 1 WHEN 'marketing' THEN 2 ELSE 3 END,
			id
	`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var result []models.Task
	for rows.Next() {
		var (
			t       models.Task
			created int64
		)
		if err := rows.Scan(&t.ID, &t.Category, &t.Title, &t.Description, &t.Completed, &created); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		t.CreatedAt = time.Unix(created, 0).UTC()
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) SetCompleted(ctx context.Context, id int64, completed bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE tasks SET completed = ? WHERE id = ?`, completed, id)
	return checkAffected(res, err, "update task")
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	return checkAffected(res, err, "delete task")
}

func checkAffected(res sql.Result, err error, op string) error {
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
