package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"taskboard-api/taskboard/broker"
	"taskboard-api/taskboard/database"
	"taskboard-api/taskboard/models"

	"gorm.io/gorm"
)

type TaskServiceInterface interface {
	ListTasks(ctx context.Context, db *database.Database, search *string) ([]models.Task, error)
	GetTaskByID(ctx context.Context, db *database.Database, id string) (*models.Task, error)
	CreateTask(ctx context.Context, db *database.Database, title string) (*models.Task, error)
	ToggleTask(ctx context.Context, db *database.Database, id string) (*models.Task, error)
	DeleteTask(ctx context.Context, db *database.Database, id string) (*models.Task, error)
}

// TaskService runs every task operation as validate, one storage
// operation, normalize. Errors returned by its methods are always
// *OperationError.
type TaskService struct {
	publisher broker.Publisher
	log       *logrus.Logger
}

var _ TaskServiceInterface = (*TaskService)(nil)

// NewTaskService creates a TaskService. publisher may be nil, in which case
// no task events are emitted.
func NewTaskService(publisher broker.Publisher, log *logrus.Logger) *TaskService {
	return &TaskService{publisher: publisher, log: log}
}

func (s *TaskService) ListTasks(ctx context.Context, db *database.Database, search *string) (tasks []models.Task, err error) {
	defer RecoverOperation(OpListTasks, &err)

	term, err := ValidateSearch(search)
	if err != nil {
		return nil, s.fail(OpListTasks, err)
	}

	query := db.DB.WithContext(ctx).Model(&models.Task{})
	if term != nil {
		// Both sides go through the database's LOWER so they fold identically;
		// SQLite only folds ASCII.
		query = query.Where("LOWER(title) LIKE LOWER(?) ESCAPE '\\'", "%"+escapeLike(*term)+"%")
	}

	tasks = []models.Task{}
	if err := query.Order("created_at DESC").Order("id DESC").Find(&tasks).Error; err != nil {
		return nil, s.fail(OpListTasks, err)
	}
	return tasks, nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, db *database.Database, rawID string) (task *models.Task, err error) {
	defer RecoverOperation(OpGetTask, &err)

	id, err := ParseTaskID(rawID)
	if err != nil {
		return nil, s.fail(OpGetTask, err)
	}

	var found models.Task
	if err := db.DB.WithContext(ctx).First(&found, id).Error; err != nil {
		return nil, s.fail(OpGetTask, notFound(err))
	}
	return &found, nil
}

func (s *TaskService) CreateTask(ctx context.Context, db *database.Database, rawTitle string) (task *models.Task, err error) {
	defer RecoverOperation(OpCreateTask, &err)

	title, err := ValidateTitle(rawTitle)
	if err != nil {
		return nil, s.fail(OpCreateTask, err)
	}

	created := models.Task{
		Title:     title,
		Completed: false,
	}
	if err := db.DB.WithContext(ctx).Create(&created).Error; err != nil {
		return nil, s.fail(OpCreateTask, err)
	}

	s.publish(broker.TaskCreated, "create", created)
	return &created, nil
}

// ToggleTask flips completed and bumps updated_at. The write is
// conditioned on the completed value that was read, so two concurrent
// toggles cannot both succeed against the same state.
func (s *TaskService) ToggleTask(ctx context.Context, db *database.Database, rawID string) (task *models.Task, err error) {
	defer RecoverOperation(OpToggleTask, &err)

	id, err := ParseTaskID(rawID)
	if err != nil {
		return nil, s.fail(OpToggleTask, err)
	}

	var toggled models.Task
	err = db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&toggled, id).Error; err != nil {
			return notFound(err)
		}

		now := time.Now()
		if now.Before(toggled.UpdatedAt) {
			now = toggled.UpdatedAt
		}

		result := tx.Model(&models.Task{}).
			Where("id = ? AND completed = ?", toggled.ID, toggled.Completed).
			Updates(map[string]interface{}{
				"completed":  !toggled.Completed,
				"updated_at": now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrConcurrentUpdate
		}

		toggled.Completed = !toggled.Completed
		toggled.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, s.fail(OpToggleTask, err)
	}

	s.publish(broker.TaskUpdated, "toggle", toggled)
	return &toggled, nil
}

// DeleteTask removes the task and returns it as it was before removal.
func (s *TaskService) DeleteTask(ctx context.Context, db *database.Database, rawID string) (task *models.Task, err error) {
	defer RecoverOperation(OpDeleteTask, &err)

	id, err := ParseTaskID(rawID)
	if err != nil {
		return nil, s.fail(OpDeleteTask, err)
	}

	var deleted models.Task
	err = db.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&deleted, id).Error; err != nil {
			return notFound(err)
		}

		result := tx.Delete(&models.Task{}, deleted.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		return nil
	})
	if err != nil {
		return nil, s.fail(OpDeleteTask, err)
	}

	s.publish(broker.TaskDeleted, "delete", deleted)
	return &deleted, nil
}

func (s *TaskService) fail(op string, err error) error {
	normalized := Normalize(op, err)
	if KindOf(normalized) == KindStorage {
		s.log.WithError(err).WithField("operation", op).Error("Task storage operation failed")
	}
	return normalized
}

func (s *TaskService) publish(eventType broker.EventType, operation string, task models.Task) {
	if s.publisher == nil {
		return
	}

	event, err := models.NewEvent(string(eventType), "task", operation, task.EventData())
	if err != nil {
		s.log.WithError(err).Warn("Failed to build task event")
		return
	}

	if err := s.publisher.PublishEvent(broker.TaskEventsTopic, event); err != nil {
		s.log.WithError(err).WithField("event", eventType).Warn("Failed to publish task event")
	}
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrTaskNotFound
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
