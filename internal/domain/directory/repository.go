package directory

import "context"

// UserDirectory resolves user accounts for assignment and audit actor
// data. BatchGetByIDs is keyed by ID and silently skips unknown IDs so
// list assembly tolerates deleted accounts.
type UserDirectory interface {
	Save(ctx context.Context, user *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	BatchGetByIDs(ctx context.Context, userIDs []uint) (map[uint]*User, error)
	List(ctx context.Context) ([]*User, error)
}
