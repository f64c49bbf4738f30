package usecases

import (
	"context"

	"claimdesk/internal/application/status/dto"
)

type CreateStatusExecutor interface {
	Execute(ctx context.Context, cmd CreateStatusCommand) (*dto.StatusDTO, error)
}

type UpdateStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.StatusDTO, error)
}

type DeleteStatusExecutor interface {
	Execute(ctx context.Context, cmd DeleteStatusCommand) error
}

type GetStatusExecutor interface {
	Execute(ctx context.Context, query GetStatusQuery) (*dto.StatusDTO, error)
}

type ListStatusesExecutor interface {
	Execute(ctx context.Context) ([]dto.StatusDTO, error)
}

type CreateSubStatusExecutor interface {
	Execute(ctx context.Context, cmd CreateSubStatusCommand) (*dto.SubStatusDTO, error)
}

type UpdateSubStatusExecutor interface {
	Execute(ctx context.Context, cmd UpdateSubStatusCommand) (*dto.SubStatusDTO, error)
}

type DeleteSubStatusExecutor interface {
	Execute(ctx context.Context, cmd DeleteSubStatusCommand) error
}

type ListSubStatusesExecutor interface {
	Execute(ctx context.Context, query ListSubStatusesQuery) ([]dto.SubStatusDTO, error)
}

type CreateTransitionExecutor interface {
	Execute(ctx context.Context, cmd CreateTransitionCommand) (*dto.TransitionDTO, error)
}

type UpdateTransitionExecutor interface {
	Execute(ctx context.Context, cmd UpdateTransitionCommand) (*dto.TransitionDTO, error)
}

type DeleteTransitionExecutor interface {
	Execute(ctx context.Context, cmd DeleteTransitionCommand) error
}

type ListTransitionsExecutor interface {
	Execute(ctx context.Context, query ListTransitionsQuery) ([]dto.TransitionDTO, error)
}

type ValidateTransitionExecutor interface {
	Execute(ctx context.Context, query ValidateTransitionQuery) (*ValidateTransitionResult, error)
}

// Transactor runs a function inside a database transaction. Satisfied by
// db.TransactionManager.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CatalogCache holds the assembled status list so list reads skip the
// database. Mutating use cases invalidate it.
type CatalogCache interface {
	GetStatusList(ctx context.Context) ([]dto.StatusDTO, bool)
	SetStatusList(ctx context.Context, statuses []dto.StatusDTO)
	Invalidate(ctx context.Context)
}
