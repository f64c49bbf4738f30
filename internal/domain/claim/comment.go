package claim

import (
	"fmt"
	"time"

	"claimdesk/internal/shared/biztime"
	"claimdesk/internal/shared/id"
)

const maxCommentLength = 5000

// Comment is an embedded discussion entry on a claim. It has no identity
// outside its claim and is persisted as part of the aggregate document.
type Comment struct {
	id         string
	authorID   uint
	authorName string
	content    string
	isInternal bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewComment(
	authorID uint,
	authorName string,
	content string,
	isInternal bool,
) (*Comment, error) {
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content cannot be empty")
	}
	if len(content) > maxCommentLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", maxCommentLength)
	}

	commentID, err := id.NewCommentID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate comment ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Comment{
		id:         commentID,
		authorID:   authorID,
		authorName: authorName,
		content:    content,
		isInternal: isInternal,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructComment(
	commentID string,
	authorID uint,
	authorName string,
	content string,
	isInternal bool,
	createdAt, updatedAt time.Time,
) (*Comment, error) {
	if commentID == "" {
		return nil, fmt.Errorf("comment ID cannot be empty")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Comment{
		id:         commentID,
		authorID:   authorID,
		authorName: authorName,
		content:    content,
		isInternal: isInternal,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}, nil
}

func (c *Comment) ID() string {
	return c.id
}

func (c *Comment) AuthorID() uint {
	return c.authorID
}

func (c *Comment) AuthorName() string {
	return c.authorName
}

func (c *Comment) Content() string {
	return c.content
}

func (c *Comment) IsInternal() bool {
	return c.isInternal
}

func (c *Comment) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Comment) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Comment) UpdateContent(content string) error {
	if len(content) == 0 {
		return fmt.Errorf("content cannot be empty")
	}
	if len(content) > maxCommentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxCommentLength)
	}
	c.content = content
	c.updatedAt = biztime.NowUTC()
	return nil
}
