package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"
	"taskboard-api/taskboard/database"
	"taskboard-api/taskboard/models"
)

// MockTaskService mocks services.TaskServiceInterface for testing
type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) ListTasks(ctx context.Context, db *database.Database, search *string) ([]models.Task, error) {
	args := m.Called(ctx, db, search)
	tasks, _ := args.Get(0).([]models.Task)
	return tasks, args.Error(1)
}

func (m *MockTaskService) GetTaskByID(ctx context.Context, db *database.Database, id string) (*models.Task, error) {
	args := m.Called(ctx, db, id)
	task, _ := args.Get(0).(*models.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) CreateTask(ctx context.Context, db *database.Database, title string) (*models.Task, error) {
	args := m.Called(ctx, db, title)
	task, _ := args.Get(0).(*models.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) ToggleTask(ctx context.Context, db *database.Database, id string) (*models.Task, error) {
	args := m.Called(ctx, db, id)
	task, _ := args.Get(0).(*models.Task)
	return task, args.Error(1)
}

func (m *MockTaskService) DeleteTask(ctx context.Context, db *database.Database, id string) (*models.Task, error) {
	args := m.Called(ctx, db, id)
	task, _ := args.Get(0).(*models.Task)
	return task, args.Error(1)
}

// MockPublisher mocks broker.Publisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishEvent(subject string, event *models.Event) error {
	args := m.Called(subject, event)
	return args.Error(0)
}
