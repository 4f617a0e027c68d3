package classname

import (
	"context"
	"errors"
	"fmt"
)

// WrapOptions are the width settings passed to a Rewrapper.
type WrapOptions struct {
	// Width is the maximum line width in columns.
	Width int

	// TabWidth is the configured tab width.
	TabWidth int
}

// Rewrapper re-flows whitespace-separated text so its lines fit a width.
// Implementations must keep every non-whitespace run intact and in order.
type Rewrapper interface {
	Rewrap(ctx context.Context, text string, opts WrapOptions) (string, error)
}

// RewrapFunc adapts a synchronous function to a Rewrapper.
type RewrapFunc func(ctx context.Context, text string, opts WrapOptions) (string, error)

// Rewrap calls f.
func (f RewrapFunc) Rewrap(ctx context.Context, text string, opts WrapOptions) (string, error) {
	return f(ctx, text, opts)
}

// RewrapResult is the outcome delivered by an AsyncRewrapFunc.
type RewrapResult struct {
	Text string
	Err  error
}

// errRewrapClosed is returned when an asynchronous rewrapper closes its
// channel without delivering a result.
var errRewrapClosed = errors.New("rewrap channel closed without a result")

// AsyncRewrapFunc adapts a function that delivers its result on a channel.
// Each call is awaited before the next literal is processed, so literals
// are still rewritten strictly in order.
type AsyncRewrapFunc func(ctx context.Context, text string, opts WrapOptions) <-chan RewrapResult

// Rewrap calls f and waits for its result.
func (f AsyncRewrapFunc) Rewrap(ctx context.Context, text string, opts WrapOptions) (string, error) {
	select {
	case res, ok := <-f(ctx, text, opts):
		if !ok {
			return "", errRewrapClosed
		}
		return res.Text, res.Err
	case <-ctx.Done():
		return "", fmt.Errorf("rewrap: %w", ctx.Err())
	}
}
