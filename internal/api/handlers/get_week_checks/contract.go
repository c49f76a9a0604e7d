package get_week_checks

import (
	"context"

	"github.com/stevenluongo/bna-wellness/internal/service/checks/models"
)

type ChecksService interface {
	GetWeekChecks(ctx context.Context, req *models.GetWeekChecksRequest) (*models.CheckListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
