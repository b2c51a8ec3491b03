package port

import "errors"

var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrNotFound         = errors.New("not found")
)
