package graph

import (
	"context"

	"github.com/sirupsen/logrus"
	"taskboard-api/taskboard/models"
	"taskboard-api/taskboard/services"
)

func nullIfNotFound(task *models.Task, err error) (*TaskResolver, error) {
	if err != nil {
		if services.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return newTaskResolver(task), nil
}

// panicLogger reports resolver panics recovered by the executor.
type panicLogger struct {
	log *logrus.Logger
}

func (l *panicLogger) LogPanic(_ context.Context, value interface{}) {
	l.log.WithField("panic", value).Error("GraphQL resolver panicked")
}
