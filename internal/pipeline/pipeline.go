package pipeline

import (
	"context"
	"errors"
)

// ErrCanceled is published on the error channel when the context is done before the generator fails
var ErrCanceled = errors.New("generate canceled")

// GenerateFunc is used in Generate to produce values for the output channel
type GenerateFunc[T any] func() (T, error)

// Generate converts the output of a GenerateFunc to a channel
// the only way to close the output channel is to return an error from the GenerateFunc
// or to cancel the context. The error is published on the error channel before both close.
func Generate[T any](ctx context.Context, fn GenerateFunc[T]) (<-chan T, <-chan error) {
	outc := make(chan T)
	errc := make(chan error, 1)
	go func() {
		defer func() {
			close(outc)
			close(errc)
		}()
		for {
			select {
			case <-ctx.Done():
				errc <- ErrCanceled
				return
			default:
			}
			res, err := fn()
			if err != nil {
				errc <- err
				return
			}
			select {
			case <-ctx.Done():
				errc <- ErrCanceled
				return
			case outc <- res:
			}
		}
	}()

	return outc, errc
}

// Next receives the next value of a generated stream
// once the stream is closed it returns the error the generator stopped with
func Next[T any](ctx context.Context, ch <-chan T, errc <-chan error) (T, error) {
	var zero T
	select {
	case <-ctx.Done():
		return zero, ErrCanceled
	case r, ok := <-ch:
		if ok {
			return r, nil
		}
	}

	if err, ok := <-errc; ok && err != nil {
		return zero, err
	}
	return zero, ErrCanceled
}
