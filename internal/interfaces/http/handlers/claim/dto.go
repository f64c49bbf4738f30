package claim

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"claimdesk/internal/application/claim/usecases"
	domain "claimdesk/internal/domain/claim"
	"claimdesk/internal/shared/errors"
	"claimdesk/internal/shared/utils"
)

type CreateClaimRequest struct {
	Subject     string  `json:"subject" binding:"required,max=200"`
	ClientName  string  `json:"client_name" binding:"required,max=200"`
	ContactInfo string  `json:"contact_info" binding:"required,max=200"`
	ClientEmail *string `json:"client_email,omitempty" binding:"omitempty,email"`
	ClientPhone *string `json:"client_phone,omitempty" binding:"omitempty,max=50"`
	Description string  `json:"description" binding:"required,max=5000"`
	Status      string  `json:"status,omitempty"`
	SubStatus   string  `json:"sub_status,omitempty"`
	Priority    string  `json:"priority,omitempty" binding:"omitempty,claimpriority"`
	Category    *string `json:"category,omitempty" binding:"omitempty,max=100"`
	AssigneeID  *uint   `json:"assignee_id,omitempty"`
}

func (r *CreateClaimRequest) ToCommand(actor domain.Actor) usecases.CreateClaimCommand {
	return usecases.CreateClaimCommand{
		Subject:      r.Subject,
		ClientName:   r.ClientName,
		ContactInfo:  r.ContactInfo,
		ClientEmail:  r.ClientEmail,
		ClientPhone:  r.ClientPhone,
		Description:  r.Description,
		StatusRef:    r.Status,
		SubStatusRef: r.SubStatus,
		Priority:     r.Priority,
		Category:     r.Category,
		AssigneeID:   r.AssigneeID,
		Actor:        actor,
	}
}

// UpdateClaimRequest carries a partial update. Pointer fields left null are
// untouched; clearable fields accept an empty string to clear the value.
type UpdateClaimRequest struct {
	Subject           *string `json:"subject,omitempty" binding:"omitempty,max=200"`
	ClientName        *string `json:"client_name,omitempty" binding:"omitempty,max=200"`
	ContactInfo       *string `json:"contact_info,omitempty" binding:"omitempty,max=200"`
	ClientEmail       *string `json:"client_email,omitempty"`
	ClientPhone       *string `json:"client_phone,omitempty" binding:"omitempty,max=50"`
	Description       *string `json:"description,omitempty" binding:"omitempty,max=5000"`
	Status            *string `json:"status,omitempty"`
	SubStatus         *string `json:"sub_status,omitempty"`
	Priority          *string `json:"priority,omitempty" binding:"omitempty,claimpriority"`
	Category          *string `json:"category,omitempty" binding:"omitempty,max=100"`
	Assignee          *string `json:"assignee,omitempty"`
	ResolutionSummary *string `json:"resolution_summary,omitempty" binding:"omitempty,max=5000"`
}

func (r *UpdateClaimRequest) ToCommand(claimID uint, actor domain.Actor) usecases.UpdateClaimCommand {
	return usecases.UpdateClaimCommand{
		ClaimID:           claimID,
		Subject:           r.Subject,
		ClientName:        r.ClientName,
		ContactInfo:       r.ContactInfo,
		ClientEmail:       r.ClientEmail,
		ClientPhone:       r.ClientPhone,
		Description:       r.Description,
		StatusRef:         r.Status,
		SubStatusRef:      r.SubStatus,
		Priority:          r.Priority,
		Category:          r.Category,
		AssigneeRef:       r.Assignee,
		ResolutionSummary: r.ResolutionSummary,
		Actor:             actor,
	}
}

type AssignClaimRequest struct {
	// AssigneeID null unassigns the claim.
	AssigneeID *uint `json:"assignee_id"`
}

type AddCommentRequest struct {
	Content    string `json:"content" binding:"required,max=5000"`
	IsInternal bool   `json:"is_internal"`
}

type EditCommentRequest struct {
	Content string `json:"content" binding:"required,max=5000"`
}

type AddAttachmentRequest struct {
	FileName  string  `json:"file_name" binding:"required,max=255"`
	URL       string  `json:"url" binding:"required,max=2000"`
	MimeType  *string `json:"mime_type,omitempty" binding:"omitempty,max=100"`
	SizeBytes *int64  `json:"size_bytes,omitempty" binding:"omitempty,min=0"`
}

func parseListClaimsQuery(c *gin.Context) usecases.ListClaimsQuery {
	p := utils.ParsePagination(c)

	query := usecases.ListClaimsQuery{
		StatusRef:   c.Query("status"),
		Priority:    c.Query("priority"),
		Search:      c.Query("search"),
		CreatedFrom: c.Query("created_from"),
		CreatedTo:   c.Query("created_to"),
		Page:        p.Page,
		PageSize:    p.PageSize,
		SortBy:      c.Query("sort_by"),
		SortOrder:   c.Query("sort_order"),
	}

	if raw := c.Query("sub_status_id"); raw != "" {
		if id, err := strconv.ParseUint(raw, 10, 32); err == nil {
			v := uint(id)
			query.SubStatusID = &v
		}
	}

	switch c.Query("assignee") {
	case "":
	case "none":
		unassigned := true
		query.Unassigned = &unassigned
	default:
		if id, err := strconv.ParseUint(c.Query("assignee"), 10, 32); err == nil {
			v := uint(id)
			query.AssigneeID = &v
		}
	}

	return query
}

func parseClaimID(c *gin.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid claim ID")
	}
	return uint(id), nil
}
