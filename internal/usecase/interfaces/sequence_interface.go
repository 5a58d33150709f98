package interfaces

import "context"

// ISequenceGenerator hands out strictly increasing numbers per name, starting
// at 1. Numbers are never reused, even when the caller fails afterwards.
type ISequenceGenerator interface {
	Next(ctx context.Context, name string) (int64, error)
}
