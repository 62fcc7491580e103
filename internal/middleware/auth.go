package middleware

import (
	"context"

	"github.com/forkd-labs/backend/pkg/errorx"
	"github.com/forkd-labs/backend/pkg/xcontext"
)

func Authenticate(ctx context.Context) error {
	if xcontext.RequestUserID(ctx) == "" {
		return errorx.New(errorx.Unauthenticated, "You need to authenticate before")
	}
	return nil
}
