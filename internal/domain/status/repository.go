package status

import "context"

type StatusRepository interface {
	Save(ctx context.Context, status *Status) error
	Update(ctx context.Context, status *Status) error
	Delete(ctx context.Context, statusID uint) error
	GetByID(ctx context.Context, statusID uint) (*Status, error)
	// GetByName matches case-insensitively.
	GetByName(ctx context.Context, name string) (*Status, error)
	GetByIDs(ctx context.Context, statusIDs []uint) (map[uint]*Status, error)
	// GetDefault returns the status with the lowest display order.
	GetDefault(ctx context.Context) (*Status, error)
	List(ctx context.Context) ([]*Status, error)
}

type SubStatusRepository interface {
	Save(ctx context.Context, subStatus *SubStatus) error
	Update(ctx context.Context, subStatus *SubStatus) error
	Delete(ctx context.Context, subStatusID uint) error
	GetByID(ctx context.Context, subStatusID uint) (*SubStatus, error)
	// GetByName matches case-insensitively within the parent status.
	GetByName(ctx context.Context, statusID uint, name string) (*SubStatus, error)
	GetByIDs(ctx context.Context, subStatusIDs []uint) (map[uint]*SubStatus, error)
	ListByStatus(ctx context.Context, statusID uint) ([]*SubStatus, error)
	List(ctx context.Context) ([]*SubStatus, error)
	DeleteByStatus(ctx context.Context, statusID uint) error
}

type TransitionRepository interface {
	Save(ctx context.Context, transition *Transition) error
	Update(ctx context.Context, transition *Transition) error
	Delete(ctx context.Context, transitionID uint) error
	GetByID(ctx context.Context, transitionID uint) (*Transition, error)
	GetByEdge(ctx context.Context, fromStatusID, toStatusID uint) (*Transition, error)
	ListFrom(ctx context.Context, fromStatusID uint) ([]*Transition, error)
	List(ctx context.Context) ([]*Transition, error)
	DeleteByStatus(ctx context.Context, statusID uint) error
}
