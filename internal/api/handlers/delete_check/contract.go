package delete_check

import "context"

type ChecksService interface {
	Delete(ctx context.Context, id string, trainerID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
