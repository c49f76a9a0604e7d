package create_check

import (
	"context"

	createCheck "github.com/stevenluongo/bna-wellness/internal/usecase/create_check"
)

type CreateCheckUseCase interface {
	Execute(ctx context.Context, req *createCheck.Request) (*createCheck.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
