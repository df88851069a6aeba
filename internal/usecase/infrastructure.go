package usecase

import "context"

// SnapshotRunner выполняет несколько чтений в одном снимке данных.
type SnapshotRunner interface {
	ReadSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}
