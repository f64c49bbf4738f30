package dto

import (
	"time"

	"claimdesk/internal/domain/claim"
	"claimdesk/internal/domain/status"
)

type ClaimDTO struct {
	ID                uint                  `json:"id"`
	Subject           string                `json:"subject"`
	ClientName        string                `json:"client_name"`
	ContactInfo       string                `json:"contact_info"`
	ClientEmail       *string               `json:"client_email"`
	ClientPhone       *string               `json:"client_phone"`
	Description       string                `json:"description"`
	Status            *StatusRefDTO         `json:"status"`
	SubStatus         *StatusRefDTO         `json:"sub_status"`
	Priority          string                `json:"priority"`
	Category          *string               `json:"category"`
	AssigneeID        *uint                 `json:"assignee_id"`
	Assignee          *AssigneeSnapshotDTO  `json:"assignee"`
	ResolutionSummary *string               `json:"resolution_summary"`
	ResolvedAt        *time.Time            `json:"resolved_at"`
	Version           int                   `json:"version"`
	CommentCount      int                   `json:"comment_count"`
	AttachmentCount   int                   `json:"attachment_count"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

type ClaimDetailDTO struct {
	ClaimDTO
	Comments    []CommentDTO    `json:"comments"`
	Attachments []AttachmentDTO `json:"attachments"`
}

type StatusRefDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

type AssigneeSnapshotDTO struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Area  string `json:"area,omitempty"`
}

type CommentDTO struct {
	ID          string    `json:"id"`
	AuthorID    uint      `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	Content     string    `json:"content"`
	ContentHTML string    `json:"content_html,omitempty"`
	IsInternal  bool      `json:"is_internal"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type AttachmentDTO struct {
	ID           string    `json:"id"`
	UploaderID   uint      `json:"uploader_id"`
	UploaderName string    `json:"uploader_name"`
	FileName     string    `json:"file_name"`
	URL          string    `json:"url"`
	MimeType     *string   `json:"mime_type"`
	SizeBytes    *int64    `json:"size_bytes"`
	CreatedAt    time.Time `json:"created_at"`
}

type AuditEventDTO struct {
	ID          string           `json:"id"`
	EventType   string           `json:"event_type"`
	ActorID     *uint            `json:"actor_id"`
	ActorName   string           `json:"actor_name"`
	ActorArea   string           `json:"actor_area,omitempty"`
	Changes     []FieldChangeDTO `json:"changes,omitempty"`
	Description string           `json:"description"`
	CreatedAt   time.Time        `json:"created_at"`
}

type FieldChangeDTO struct {
	Field string  `json:"field"`
	Old   *string `json:"old"`
	New   *string `json:"new"`
}

// ToClaimDTO assembles the list representation. Status and sub-status are
// looked up from the batch-loaded catalog maps; a missing entry degrades
// to an ID-only reference instead of failing the whole list.
func ToClaimDTO(
	c *claim.Claim,
	statuses map[uint]*status.Status,
	subStatuses map[uint]*status.SubStatus,
) *ClaimDTO {
	if c == nil {
		return nil
	}

	d := &ClaimDTO{
		ID:                c.ID(),
		Subject:           c.Subject(),
		ClientName:        c.ClientName(),
		ContactInfo:       c.ContactInfo(),
		ClientEmail:       c.ClientEmail(),
		ClientPhone:       c.ClientPhone(),
		Description:       c.Description(),
		Priority:          c.Priority().String(),
		Category:          c.Category(),
		AssigneeID:        c.AssigneeID(),
		ResolutionSummary: c.ResolutionSummary(),
		ResolvedAt:        c.ResolvedAt(),
		Version:           c.Version(),
		CommentCount:      c.CommentCount(),
		AttachmentCount:   c.AttachmentCount(),
		CreatedAt:         c.CreatedAt(),
		UpdatedAt:         c.UpdatedAt(),
	}

	d.Status = &StatusRefDTO{ID: c.StatusID()}
	if s, ok := statuses[c.StatusID()]; ok {
		d.Status.Name = s.Name()
		d.Status.Color = s.Color()
	}

	if subID := c.SubStatusID(); subID != nil {
		d.SubStatus = &StatusRefDTO{ID: *subID}
		if ss, ok := subStatuses[*subID]; ok {
			d.SubStatus.Name = ss.Name()
		}
	}

	if snap := c.AssigneeSnapshot(); snap != nil {
		d.Assignee = &AssigneeSnapshotDTO{
			Name:  snap.Name,
			Email: snap.Email,
			Area:  snap.Area,
		}
	}

	return d
}

func ToCommentDTO(c *claim.Comment, contentHTML string) CommentDTO {
	return CommentDTO{
		ID:          c.ID(),
		AuthorID:    c.AuthorID(),
		AuthorName:  c.AuthorName(),
		Content:     c.Content(),
		ContentHTML: contentHTML,
		IsInternal:  c.IsInternal(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
	}
}

func ToAttachmentDTO(a *claim.Attachment) AttachmentDTO {
	return AttachmentDTO{
		ID:           a.ID(),
		UploaderID:   a.UploaderID(),
		UploaderName: a.UploaderName(),
		FileName:     a.FileName(),
		URL:          a.URL(),
		MimeType:     a.MimeType(),
		SizeBytes:    a.SizeBytes(),
		CreatedAt:    a.CreatedAt(),
	}
}

func ToAuditEventDTO(e *claim.AuditEvent) AuditEventDTO {
	changes := e.Changes()
	changeDTOs := make([]FieldChangeDTO, 0, len(changes))
	for _, ch := range changes {
		changeDTOs = append(changeDTOs, FieldChangeDTO{Field: ch.Field, Old: ch.Old, New: ch.New})
	}
	return AuditEventDTO{
		ID:          e.ID(),
		EventType:   e.EventType().String(),
		ActorID:     e.ActorID(),
		ActorName:   e.ActorName(),
		ActorArea:   e.ActorArea(),
		Changes:     changeDTOs,
		Description: e.Description(),
		CreatedAt:   e.CreatedAt(),
	}
}
