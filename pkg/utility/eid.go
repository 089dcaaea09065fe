package utility

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExecutionID tags every log line of one calculator run.
type ExecutionID = uuid.UUID

var (
	executionID     ExecutionID
	executionIDOnce sync.Once
)

func GetExecutionID() ExecutionID {
	executionIDOnce.Do(func() {
		executionID = uuid.Must(uuid.NewV7())
	})
	return executionID
}

// WithExecutionID returns a child logger carrying the execution id field.
func WithExecutionID(logger *zap.Logger) *zap.Logger {
	return logger.With(zap.Stringer("execution_id", GetExecutionID()))
}
