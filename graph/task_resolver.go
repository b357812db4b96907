package graph

import (
	"taskboard-api/taskboard/models"
)

type TaskResolver struct {
	task models.Task
}

func newTaskResolver(task *models.Task) *TaskResolver {
	if task == nil {
		return nil
	}
	return &TaskResolver{task: *task}
}

func (r *TaskResolver) ID() int32 {
	return r.task.ID
}

func (r *TaskResolver) Title() string {
	return r.task.Title
}

func (r *TaskResolver) Completed() bool {
	return r.task.Completed
}

func (r *TaskResolver) CreatedAt() DateTime {
	return NewDateTime(r.task.CreatedAt)
}

func (r *TaskResolver) UpdatedAt() DateTime {
	return NewDateTime(r.task.UpdatedAt)
}
