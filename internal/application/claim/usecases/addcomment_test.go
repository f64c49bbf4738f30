package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"claimdesk/internal/application/claim/services"
	"claimdesk/internal/domain/claim"
	"claimdesk/internal/shared/errors"
)

func newAddCommentFixture(claimRepo *mockClaimRepository, sanitizer *mockSanitizer, auditComments bool) *AddCommentUseCase {
	log := &mockLogger{}
	return NewAddCommentUseCase(claimRepo, sanitizer, services.NewAuditRecorder(log), log, auditComments)
}

func TestAddCommentUseCase_Execute_Success(t *testing.T) {
	c := claimFixture(t, 5, 1)

	var updated *claim.Claim
	claimRepo := &mockClaimRepository{
		GetByIDFunc: func(ctx context.Context, claimID uint) (*claim.Claim, error) {
			return c, nil
		},
		UpdateFunc: func(ctx context.Context, c *claim.Claim) error {
			updated = c
			return nil
		},
	}

	uc := newAddCommentFixture(claimRepo, &mockSanitizer{}, true)

	result, err := uc.Execute(context.Background(), AddCommentCommand{
		ClaimID: 5,
		Content: "Reviewed the invoices, escalating to billing",
		Actor:   agentActor(),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.CommentID)

	require.Equal(t, 1, updated.CommentCount())
	comment := updated.Comments()[0]
	assert.Equal(t, uint(10), comment.AuthorID())
	assert.False(t, comment.IsInternal())

	require.Len(t, updated.AuditTrail(), 1, "comment addition is audited when enabled")
}

func TestAddCommentUseCase_Execute_AuditDisabled(t *testing.T) {
	c := claimFixture(t, 5, 1)
	claimRepo := &mockClaimRepository{
		GetByIDFunc: func(ctx context.Context, claimID uint) (*claim.Claim, error) {
			return c, nil
		},
	}

	uc := newAddCommentFixture(claimRepo, &mockSanitizer{}, false)

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		ClaimID: 5,
		Content: "A quiet note",
		Actor:   agentActor(),
	})

	require.NoError(t, err)
	assert.Empty(t, c.AuditTrail())
}

func TestAddCommentUseCase_Execute_SanitizesContent(t *testing.T) {
	c := claimFixture(t, 5, 1)
	claimRepo := &mockClaimRepository{
		GetByIDFunc: func(ctx context.Context, claimID uint) (*claim.Claim, error) {
			return c, nil
		},
	}
	sanitizer := &mockSanitizer{
		StripUnsafeFunc: func(content string) string {
			return strings.ReplaceAll(content, "<script>alert(1)</script>", "")
		},
	}

	uc := newAddCommentFixture(claimRepo, sanitizer, false)

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		ClaimID: 5,
		Content: "hello <script>alert(1)</script>world",
		Actor:   agentActor(),
	})

	require.NoError(t, err)
	require.Equal(t, 1, c.CommentCount())
	assert.Equal(t, "hello world", c.Comments()[0].Content())
}

func TestAddCommentUseCase_Execute_InternalRequiresStaff(t *testing.T) {
	uc := newAddCommentFixture(&mockClaimRepository{}, &mockSanitizer{}, false)

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		ClaimID:    5,
		Content:    "internal note",
		IsInternal: true,
		Actor:      claim.Actor{ID: 33, Name: "Cliente", Role: "user"},
	})

	require.Error(t, err)
	assert.True(t, errors.IsPermissionError(err))
}

func TestAddCommentUseCase_Execute_InternalAllowedForAgent(t *testing.T) {
	c := claimFixture(t, 5, 1)
	claimRepo := &mockClaimRepository{
		GetByIDFunc: func(ctx context.Context, claimID uint) (*claim.Claim, error) {
			return c, nil
		},
	}

	uc := newAddCommentFixture(claimRepo, &mockSanitizer{}, false)

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		ClaimID:    5,
		Content:    "internal note",
		IsInternal: true,
		Actor:      agentActor(),
	})

	require.NoError(t, err)
	require.Equal(t, 1, c.CommentCount())
	assert.True(t, c.Comments()[0].IsInternal())
}

func TestAddCommentUseCase_Execute_EmptyContent(t *testing.T) {
	c := claimFixture(t, 5, 1)
	claimRepo := &mockClaimRepository{
		GetByIDFunc: func(ctx context.Context, claimID uint) (*claim.Claim, error) {
			return c, nil
		},
	}

	uc := newAddCommentFixture(claimRepo, &mockSanitizer{}, false)

	_, err := uc.Execute(context.Background(), AddCommentCommand{
		ClaimID: 5,
		Content: "",
		Actor:   agentActor(),
	})

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
