package testutils

import (
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"taskboard-api/taskboard/models"
)

// MockTaskRows creates mock SQL rows for task queries
func MockTaskRows(tasks []models.Task) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "title", "completed", "created_at", "updated_at"})

	for _, task := range tasks {
		if task.CreatedAt.IsZero() {
			task.CreatedAt = time.Now()
		}
		if task.UpdatedAt.IsZero() {
			task.UpdatedAt = task.CreatedAt
		}

		rows.AddRow(task.ID, task.Title, task.Completed, task.CreatedAt, task.UpdatedAt)
	}

	return rows
}
