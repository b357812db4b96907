package broker

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"taskboard-api/taskboard/models"
)

type MockConn struct {
	messages []struct {
		subject string
		data    []byte
	}
	publishErr error
	drainErr   error
	drained    bool
	closed     bool
}

func (m *MockConn) Publish(subject string, data []byte) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.messages = append(m.messages, struct {
		subject string
		data    []byte
	}{subject, data})
	return nil
}

func (m *MockConn) Drain() error {
	m.drained = true
	return m.drainErr
}

func (m *MockConn) Close() {
	m.closed = true
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestPublishEvent(t *testing.T) {
	conn := &MockConn{}
	producer := NewProducer(conn, quietLogger())

	event, err := models.NewEvent(string(TaskCreated), "task", "create", map[string]interface{}{"task_id": 7})
	require.NoError(t, err)

	require.NoError(t, producer.PublishEvent(TaskEventsTopic, event))
	require.Len(t, conn.messages, 1)

	msg := conn.messages[0]
	assert.Equal(t, TaskEventsTopic, msg.subject)

	var decoded models.Event
	require.NoError(t, json.Unmarshal(msg.data, &decoded))
	assert.Equal(t, event.ID, decoded.ID)
	assert.Equal(t, "task.created", decoded.Event)
	assert.JSONEq(t, `{"task_id":7}`, string(decoded.Data))
}

func TestPublishEvent_ConnectionError(t *testing.T) {
	conn := &MockConn{publishErr: nats.ErrConnectionClosed}
	producer := NewProducer(conn, quietLogger())

	event, err := models.NewEvent(string(TaskDeleted), "task", "delete", nil)
	require.NoError(t, err)

	err = producer.PublishEvent(TaskEventsTopic, event)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, nats.ErrConnectionClosed))
}

func TestPublishEvent_NotInitialized(t *testing.T) {
	var producer *Producer
	err := producer.PublishEvent(TaskEventsTopic, &models.Event{})
	assert.ErrorIs(t, err, ErrProducerNotInitialized)
}

func TestClose(t *testing.T) {
	t.Run("Drains", func(t *testing.T) {
		conn := &MockConn{}
		NewProducer(conn, quietLogger()).Close()
		assert.True(t, conn.drained)
		assert.False(t, conn.closed)
	})

	t.Run("Falls Back To Close", func(t *testing.T) {
		conn := &MockConn{drainErr: nats.ErrConnectionClosed}
		NewProducer(conn, quietLogger()).Close()
		assert.True(t, conn.closed)
	})

	t.Run("Nil Producer", func(t *testing.T) {
		var producer *Producer
		assert.NotPanics(t, producer.Close)
	})
}
