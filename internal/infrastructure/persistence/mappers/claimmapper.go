package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"claimdesk/internal/domain/claim"
	vo "claimdesk/internal/domain/claim/valueobjects"
	"claimdesk/internal/infrastructure/persistence/models"
)

// ClaimMapper converts between the claim aggregate and its single-row
// persistence model, serializing the embedded collections to JSON.
type ClaimMapper interface {
	ToModel(c *claim.Claim) (*models.ClaimModel, error)
	ToDomain(model *models.ClaimModel) (*claim.Claim, error)
}

type ClaimMapperImpl struct{}

func NewClaimMapper() ClaimMapper {
	return &ClaimMapperImpl{}
}

// Serialized shapes of the embedded collections. These are the stored
// wire format; renaming a JSON key is a data migration.

type commentRecord struct {
	ID         string `json:"id"`
	AuthorID   uint   `json:"author_id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	IsInternal bool   `json:"is_internal"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

type attachmentRecord struct {
	ID           string  `json:"id"`
	UploaderID   uint    `json:"uploader_id"`
	UploaderName string  `json:"uploader_name"`
	FileName     string  `json:"file_name"`
	URL          string  `json:"url"`
	MimeType     *string `json:"mime_type,omitempty"`
	SizeBytes    *int64  `json:"size_bytes,omitempty"`
	CreatedAt    int64   `json:"created_at"`
}

type fieldChangeRecord struct {
	Field string  `json:"field"`
	Old   *string `json:"old"`
	New   *string `json:"new"`
}

type auditEventRecord struct {
	ID          string              `json:"id"`
	EventType   string              `json:"event_type"`
	ActorID     *uint               `json:"actor_id,omitempty"`
	ActorName   string              `json:"actor_name"`
	ActorArea   string              `json:"actor_area,omitempty"`
	Changes     []fieldChangeRecord `json:"changes,omitempty"`
	Description string              `json:"description"`
	CreatedAt   int64               `json:"created_at"`
}

type snapshotRecord struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Area  string `json:"area,omitempty"`
}

func (m *ClaimMapperImpl) ToModel(c *claim.Claim) (*models.ClaimModel, error) {
	model := &models.ClaimModel{
		ID:                c.ID(),
		Subject:           c.Subject(),
		ClientName:        c.ClientName(),
		ContactInfo:       c.ContactInfo(),
		ClientEmail:       c.ClientEmail(),
		ClientPhone:       c.ClientPhone(),
		Description:       c.Description(),
		StatusID:          c.StatusID(),
		SubStatusID:       c.SubStatusID(),
		Priority:          c.Priority().String(),
		Category:          c.Category(),
		AssigneeID:        c.AssigneeID(),
		ResolutionSummary: c.ResolutionSummary(),
		Version:           c.Version(),
		CreatedAt:         c.CreatedAt().UnixMilli(),
		UpdatedAt:         c.UpdatedAt().UnixMilli(),
	}

	if c.ResolvedAt() != nil {
		resolved := c.ResolvedAt().UnixMilli()
		model.ResolvedAt = &resolved
	}

	if snap := c.AssigneeSnapshot(); snap != nil {
		data, err := json.Marshal(snapshotRecord{Name: snap.Name, Email: snap.Email, Area: snap.Area})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal assignee snapshot: %w", err)
		}
		model.AssigneeSnapshot = datatypes.JSON(data)
	}

	comments := make([]commentRecord, 0, c.CommentCount())
	for _, cm := range c.Comments() {
		comments = append(comments, commentRecord{
			ID:         cm.ID(),
			AuthorID:   cm.AuthorID(),
			AuthorName: cm.AuthorName(),
			Content:    cm.Content(),
			IsInternal: cm.IsInternal(),
			CreatedAt:  cm.CreatedAt().UnixMilli(),
			UpdatedAt:  cm.UpdatedAt().UnixMilli(),
		})
	}
	commentsJSON, err := json.Marshal(comments)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal comments: %w", err)
	}
	model.Comments = datatypes.JSON(commentsJSON)

	attachments := make([]attachmentRecord, 0, c.AttachmentCount())
	for _, a := range c.Attachments() {
		attachments = append(attachments, attachmentRecord{
			ID:           a.ID(),
			UploaderID:   a.UploaderID(),
			UploaderName: a.UploaderName(),
			FileName:     a.FileName(),
			URL:          a.URL(),
			MimeType:     a.MimeType(),
			SizeBytes:    a.SizeBytes(),
			CreatedAt:    a.CreatedAt().UnixMilli(),
		})
	}
	attachmentsJSON, err := json.Marshal(attachments)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal attachments: %w", err)
	}
	model.Attachments = datatypes.JSON(attachmentsJSON)

	trail := c.AuditTrail()
	events := make([]auditEventRecord, 0, len(trail))
	for _, e := range trail {
		changes := e.Changes()
		changeRecords := make([]fieldChangeRecord, 0, len(changes))
		for _, ch := range changes {
			changeRecords = append(changeRecords, fieldChangeRecord{Field: ch.Field, Old: ch.Old, New: ch.New})
		}
		events = append(events, auditEventRecord{
			ID:          e.ID(),
			EventType:   e.EventType().String(),
			ActorID:     e.ActorID(),
			ActorName:   e.ActorName(),
			ActorArea:   e.ActorArea(),
			Changes:     changeRecords,
			Description: e.Description(),
			CreatedAt:   e.CreatedAt().UnixMilli(),
		})
	}
	trailJSON, err := json.Marshal(events)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit trail: %w", err)
	}
	model.AuditTrail = datatypes.JSON(trailJSON)

	return model, nil
}

func (m *ClaimMapperImpl) ToDomain(model *models.ClaimModel) (*claim.Claim, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("claim %d: %w", model.ID, err)
	}

	var resolvedAt *time.Time
	if model.ResolvedAt != nil {
		t := millisToTime(*model.ResolvedAt)
		resolvedAt = &t
	}

	var snapshot *vo.AssigneeSnapshot
	if len(model.AssigneeSnapshot) > 0 && string(model.AssigneeSnapshot) != "null" {
		var rec snapshotRecord
		if err := json.Unmarshal(model.AssigneeSnapshot, &rec); err != nil {
			return nil, fmt.Errorf("failed to unmarshal assignee snapshot (claim=%d): %w", model.ID, err)
		}
		snapshot = &vo.AssigneeSnapshot{Name: rec.Name, Email: rec.Email, Area: rec.Area}
	}

	comments, err := m.commentsToDomain(model)
	if err != nil {
		return nil, err
	}
	attachments, err := m.attachmentsToDomain(model)
	if err != nil {
		return nil, err
	}
	trail, err := m.auditTrailToDomain(model)
	if err != nil {
		return nil, err
	}

	return claim.ReconstructClaim(
		model.ID,
		model.Subject,
		model.ClientName,
		model.ContactInfo,
		model.ClientEmail,
		model.ClientPhone,
		model.Description,
		model.StatusID,
		model.SubStatusID,
		priority,
		model.Category,
		model.AssigneeID,
		snapshot,
		model.ResolutionSummary,
		resolvedAt,
		model.Version,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
		comments,
		attachments,
		trail,
	)
}

func (m *ClaimMapperImpl) commentsToDomain(model *models.ClaimModel) ([]*claim.Comment, error) {
	var records []commentRecord
	if len(model.Comments) > 0 {
		if err := json.Unmarshal(model.Comments, &records); err != nil {
			return nil, fmt.Errorf("failed to unmarshal comments (claim=%d): %w", model.ID, err)
		}
	}
	comments := make([]*claim.Comment, 0, len(records))
	for _, rec := range records {
		cm, err := claim.ReconstructComment(
			rec.ID,
			rec.AuthorID,
			rec.AuthorName,
			rec.Content,
			rec.IsInternal,
			millisToTime(rec.CreatedAt),
			millisToTime(rec.UpdatedAt),
		)
		if err != nil {
			return nil, fmt.Errorf("claim %d comment %s: %w", model.ID, rec.ID, err)
		}
		comments = append(comments, cm)
	}
	return comments, nil
}

func (m *ClaimMapperImpl) attachmentsToDomain(model *models.ClaimModel) ([]*claim.Attachment, error) {
	var records []attachmentRecord
	if len(model.Attachments) > 0 {
		if err := json.Unmarshal(model.Attachments, &records); err != nil {
			return nil, fmt.Errorf("failed to unmarshal attachments (claim=%d): %w", model.ID, err)
		}
	}
	attachments := make([]*claim.Attachment, 0, len(records))
	for _, rec := range records {
		a, err := claim.ReconstructAttachment(
			rec.ID,
			rec.UploaderID,
			rec.UploaderName,
			rec.FileName,
			rec.URL,
			rec.MimeType,
			rec.SizeBytes,
			millisToTime(rec.CreatedAt),
		)
		if err != nil {
			return nil, fmt.Errorf("claim %d attachment %s: %w", model.ID, rec.ID, err)
		}
		attachments = append(attachments, a)
	}
	return attachments, nil
}

func (m *ClaimMapperImpl) auditTrailToDomain(model *models.ClaimModel) ([]*claim.AuditEvent, error) {
	var records []auditEventRecord
	if len(model.AuditTrail) > 0 {
		if err := json.Unmarshal(model.AuditTrail, &records); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit trail (claim=%d): %w", model.ID, err)
		}
	}
	trail := make([]*claim.AuditEvent, 0, len(records))
	for _, rec := range records {
		eventType, err := vo.NewEventType(rec.EventType)
		if err != nil {
			return nil, fmt.Errorf("claim %d event %s: %w", model.ID, rec.ID, err)
		}
		changes := make([]claim.FieldChange, 0, len(rec.Changes))
		for _, ch := range rec.Changes {
			changes = append(changes, claim.FieldChange{Field: ch.Field, Old: ch.Old, New: ch.New})
		}
		e, err := claim.ReconstructAuditEvent(
			rec.ID,
			eventType,
			rec.ActorID,
			rec.ActorName,
			rec.ActorArea,
			changes,
			rec.Description,
			millisToTime(rec.CreatedAt),
		)
		if err != nil {
			return nil, fmt.Errorf("claim %d event %s: %w", model.ID, rec.ID, err)
		}
		trail = append(trail, e)
	}
	return trail, nil
}
