package xcontext

import "context"

type responseKey struct{}

// responseHolder is installed by the router before any middleware runs, so
// handlers and closers can exchange the response and error through an
// immutable context chain.
type responseHolder struct {
	response any
	err      error
}

func WithResponseHolder(ctx context.Context) context.Context {
	return context.WithValue(ctx, responseKey{}, &responseHolder{})
}

func SetResponse(ctx context.Context, resp any) {
	if holder, ok := ctx.Value(responseKey{}).(*responseHolder); ok {
		holder.response = resp
	}
}

func GetResponse(ctx context.Context) any {
	if holder, ok := ctx.Value(responseKey{}).(*responseHolder); ok {
		return holder.response
	}

	return nil
}

func SetError(ctx context.Context, err error) {
	if holder, ok := ctx.Value(responseKey{}).(*responseHolder); ok {
		holder.err = err
	}
}

func GetError(ctx context.Context) error {
	if holder, ok := ctx.Value(responseKey{}).(*responseHolder); ok {
		return holder.err
	}

	return nil
}
