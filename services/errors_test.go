package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		kind    ErrorKind
		message string
	}{
		{
			name:    "Validation failure keeps reason",
			err:     &ValidationError{Field: "title", Reason: "Title is required"},
			kind:    KindValidation,
			message: "Failed to create task: Title is required",
		},
		{
			name:    "Storage failure keeps storage message",
			err:     errors.New("database is locked"),
			kind:    KindStorage,
			message: "Failed to create task: database is locked",
		},
		{
			name:    "Not found",
			err:     fmt.Errorf("lookup: %w", ErrTaskNotFound),
			kind:    KindNotFound,
			message: "Failed to create task: lookup: task not found",
		},
		{
			name:    "Empty message falls back to generic text",
			err:     errors.New(""),
			kind:    KindStorage,
			message: "Failed to create task",
		},
		{
			name:    "Unrecognized failure",
			err:     ErrUnrecognizedFailure,
			kind:    KindInternal,
			message: "Failed to create task",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Normalize(OpCreateTask, tc.err)

			var opErr *OperationError
			assert.ErrorAs(t, err, &opErr)
			assert.Equal(t, tc.kind, opErr.Kind)
			assert.Equal(t, OpCreateTask, opErr.Op)
			assert.Equal(t, tc.message, err.Error())
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNormalize_Nil(t *testing.T) {
	assert.NoError(t, Normalize(OpListTasks, nil))
}

func TestNormalize_AlreadyNormalized(t *testing.T) {
	first := Normalize(OpToggleTask, &ValidationError{Reason: "Invalid task ID"})
	second := Normalize(OpDeleteTask, first)

	assert.Same(t, first, second)
	assert.Equal(t, "Failed to toggle task: Invalid task ID", second.Error())
}

func TestOperationError_Extensions(t *testing.T) {
	err := Normalize(OpGetTask, &ValidationError{Field: "id", Reason: "Invalid task ID"})

	var opErr *OperationError
	assert.ErrorAs(t, err, &opErr)
	assert.Equal(t, map[string]interface{}{
		"code":      "VALIDATION",
		"operation": "fetch task",
		"field":     "id",
	}, opErr.Extensions())

	storage := Normalize(OpGetTask, gorm.ErrInvalidDB).(*OperationError)
	assert.Equal(t, map[string]interface{}{
		"code":      "STORAGE",
		"operation": "fetch task",
	}, storage.Extensions())
}

func TestKindPredicates(t *testing.T) {
	validation := Normalize(OpCreateTask, &ValidationError{Reason: "Title is required"})
	storage := Normalize(OpCreateTask, errors.New("disk I/O error"))
	notFound := Normalize(OpDeleteTask, ErrTaskNotFound)

	assert.True(t, IsValidation(validation))
	assert.False(t, IsValidation(storage))
	assert.True(t, IsStorage(storage))
	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsNotFound(ErrTaskNotFound))
	assert.False(t, IsNotFound(storage))

	assert.Equal(t, KindNotFound, KindOf(notFound))
	assert.Equal(t, KindInternal, KindOf(errors.New("raw")))
}

func TestRecoverOperation(t *testing.T) {
	run := func(value interface{}) (err error) {
		defer RecoverOperation(OpListTasks, &err)
		panic(value)
	}

	err := run("boom")
	assert.EqualError(t, err, "Failed to fetch tasks")
	assert.Equal(t, KindInternal, KindOf(err))

	err = run(errors.New("nil map write"))
	assert.EqualError(t, err, "Failed to fetch tasks: nil map write")
	assert.Equal(t, KindInternal, KindOf(err))
}
