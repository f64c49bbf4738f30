package valueobjects

import "errors"

var ErrEmptySnapshotName = errors.New("assignee snapshot name cannot be empty")
