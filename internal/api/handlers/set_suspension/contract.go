package set_suspension

import (
	"context"

	setSuspension "github.com/Wainainajnr/slotallocation/internal/usecase/set_suspension"
)

type SetSuspensionUseCase interface {
	Execute(ctx context.Context, req *setSuspension.Request) (*setSuspension.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
