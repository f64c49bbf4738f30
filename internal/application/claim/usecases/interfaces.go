package usecases

import (
	"context"

	"claimdesk/internal/application/claim/dto"
)

type CreateClaimExecutor interface {
	Execute(ctx context.Context, cmd CreateClaimCommand) (*CreateClaimResult, error)
}

type UpdateClaimExecutor interface {
	Execute(ctx context.Context, cmd UpdateClaimCommand) (*dto.ClaimDTO, error)
}

type AssignClaimExecutor interface {
	Execute(ctx context.Context, cmd AssignClaimCommand) (*dto.ClaimDTO, error)
}

type DeleteClaimExecutor interface {
	Execute(ctx context.Context, cmd DeleteClaimCommand) error
}

type GetClaimExecutor interface {
	Execute(ctx context.Context, query GetClaimQuery) (*dto.ClaimDetailDTO, error)
}

type ListClaimsExecutor interface {
	Execute(ctx context.Context, query ListClaimsQuery) ([]dto.ClaimDTO, int64, error)
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type EditCommentExecutor interface {
	Execute(ctx context.Context, cmd EditCommentCommand) (*dto.CommentDTO, error)
}

type DeleteCommentExecutor interface {
	Execute(ctx context.Context, cmd DeleteCommentCommand) error
}

type AddAttachmentExecutor interface {
	Execute(ctx context.Context, cmd AddAttachmentCommand) (*AddAttachmentResult, error)
}

type DeleteAttachmentExecutor interface {
	Execute(ctx context.Context, cmd DeleteAttachmentCommand) error
}

type ListAuditEventsExecutor interface {
	Execute(ctx context.Context, query ListAuditEventsQuery) ([]dto.AuditEventDTO, error)
}

// Transactor runs a function inside a database transaction. Satisfied by
// db.TransactionManager.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// ContentSanitizer strips unsafe HTML from user-supplied text before it
// enters the aggregate. Satisfied by the markdown service.
type ContentSanitizer interface {
	StripUnsafe(content string) string
	ToHTMLSanitized(markdown string) (string, error)
}
