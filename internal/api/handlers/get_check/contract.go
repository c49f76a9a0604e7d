package get_check

import (
	"context"

	"github.com/stevenluongo/bna-wellness/internal/service/checks/models"
)

type ChecksService interface {
	GetByID(ctx context.Context, id string) (*models.CheckResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
