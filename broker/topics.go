package broker

import "errors"

const (
	TaskEventsTopic = "task_events"
)

var ErrProducerNotInitialized = errors.New("producer is not initialized")
