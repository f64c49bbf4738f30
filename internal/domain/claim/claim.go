package claim

import (
	"fmt"
	"time"

	vo "claimdesk/internal/domain/claim/valueobjects"
	"claimdesk/internal/shared/biztime"
)

const (
	maxSubjectLength     = 200
	maxDescriptionLength = 5000
)

// Claim is the aggregate root. Comments, attachments and the audit trail
// are embedded and persisted together with the root in a single row, so a
// save replaces the whole aggregate atomically.
type Claim struct {
	id                uint
	subject           string
	clientName        string
	contactInfo       string
	clientEmail       *string
	clientPhone       *string
	description       string
	statusID          uint
	subStatusID       *uint
	priority          vo.Priority
	category          *string
	assigneeID        *uint
	assigneeSnapshot  *vo.AssigneeSnapshot
	resolutionSummary *string
	resolvedAt        *time.Time
	version           int
	createdAt         time.Time
	updatedAt         time.Time
	comments          []*Comment
	attachments       []*Attachment
	auditTrail        []*AuditEvent
}

func NewClaim(
	subject string,
	clientName string,
	contactInfo string,
	description string,
	statusID uint,
	priority vo.Priority,
) (*Claim, error) {
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if len(subject) > maxSubjectLength {
		return nil, fmt.Errorf("subject exceeds maximum length of %d characters", maxSubjectLength)
	}
	if len(clientName) == 0 {
		return nil, fmt.Errorf("client name is required")
	}
	if len(contactInfo) == 0 {
		return nil, fmt.Errorf("contact info is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if statusID == 0 {
		return nil, fmt.Errorf("status ID is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := biztime.NowUTC()
	return &Claim{
		subject:     subject,
		clientName:  clientName,
		contactInfo: contactInfo,
		description: description,
		statusID:    statusID,
		priority:    priority,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
		comments:    []*Comment{},
		attachments: []*Attachment{},
		auditTrail:  []*AuditEvent{},
	}, nil
}

func ReconstructClaim(
	id uint,
	subject string,
	clientName string,
	contactInfo string,
	clientEmail *string,
	clientPhone *string,
	description string,
	statusID uint,
	subStatusID *uint,
	priority vo.Priority,
	category *string,
	assigneeID *uint,
	assigneeSnapshot *vo.AssigneeSnapshot,
	resolutionSummary *string,
	resolvedAt *time.Time,
	version int,
	createdAt, updatedAt time.Time,
	comments []*Comment,
	attachments []*Attachment,
	auditTrail []*AuditEvent,
) (*Claim, error) {
	if id == 0 {
		return nil, fmt.Errorf("claim ID cannot be zero")
	}
	if len(subject) == 0 {
		return nil, fmt.Errorf("subject is required")
	}
	if statusID == 0 {
		return nil, fmt.Errorf("status ID is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	// Rows written before snapshots existed carry an assignee without one;
	// the list read model backfills those. A snapshot without an assignee is
	// never valid.
	if assigneeID == nil && assigneeSnapshot != nil {
		return nil, fmt.Errorf("assignee snapshot requires an assignee ID")
	}
	if version < 1 {
		return nil, fmt.Errorf("version must be positive")
	}

	if comments == nil {
		comments = []*Comment{}
	}
	if attachments == nil {
		attachments = []*Attachment{}
	}
	if auditTrail == nil {
		auditTrail = []*AuditEvent{}
	}

	return &Claim{
		id:                id,
		subject:           subject,
		clientName:        clientName,
		contactInfo:       contactInfo,
		clientEmail:       clientEmail,
		clientPhone:       clientPhone,
		description:       description,
		statusID:          statusID,
		subStatusID:       subStatusID,
		priority:          priority,
		category:          category,
		assigneeID:        assigneeID,
		assigneeSnapshot:  assigneeSnapshot,
		resolutionSummary: resolutionSummary,
		resolvedAt:        resolvedAt,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
		comments:          comments,
		attachments:       attachments,
		auditTrail:        auditTrail,
	}, nil
}

func (c *Claim) ID() uint {
	return c.id
}

func (c *Claim) Subject() string {
	return c.subject
}

func (c *Claim) ClientName() string {
	return c.clientName
}

func (c *Claim) ContactInfo() string {
	return c.contactInfo
}

func (c *Claim) ClientEmail() *string {
	return c.clientEmail
}

func (c *Claim) ClientPhone() *string {
	return c.clientPhone
}

func (c *Claim) Description() string {
	return c.description
}

func (c *Claim) StatusID() uint {
	return c.statusID
}

func (c *Claim) SubStatusID() *uint {
	return c.subStatusID
}

func (c *Claim) Priority() vo.Priority {
	return c.priority
}

func (c *Claim) Category() *string {
	return c.category
}

func (c *Claim) AssigneeID() *uint {
	return c.assigneeID
}

func (c *Claim) AssigneeSnapshot() *vo.AssigneeSnapshot {
	return c.assigneeSnapshot
}

func (c *Claim) ResolutionSummary() *string {
	return c.resolutionSummary
}

func (c *Claim) ResolvedAt() *time.Time {
	return c.resolvedAt
}

// Version is the version the aggregate was loaded with. The repository
// bumps it atomically on save, using it as the optimistic lock guard.
func (c *Claim) Version() int {
	return c.version
}

// AdvanceVersion records a successful version-guarded write so the in-memory
// aggregate matches the stored row.
func (c *Claim) AdvanceVersion() {
	c.version++
}

func (c *Claim) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Claim) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Claim) Comments() []*Comment {
	out := make([]*Comment, len(c.comments))
	copy(out, c.comments)
	return out
}

func (c *Claim) Attachments() []*Attachment {
	out := make([]*Attachment, len(c.attachments))
	copy(out, c.attachments)
	return out
}

func (c *Claim) AuditTrail() []*AuditEvent {
	out := make([]*AuditEvent, len(c.auditTrail))
	copy(out, c.auditTrail)
	return out
}

func (c *Claim) CommentCount() int {
	return len(c.comments)
}

func (c *Claim) AttachmentCount() int {
	return len(c.attachments)
}

func (c *Claim) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("claim ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("claim ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Claim) UpdateSubject(subject string) error {
	if len(subject) == 0 {
		return fmt.Errorf("subject is required")
	}
	if len(subject) > maxSubjectLength {
		return fmt.Errorf("subject exceeds maximum length of %d characters", maxSubjectLength)
	}
	c.subject = subject
	c.touch()
	return nil
}

func (c *Claim) UpdateDescription(description string) error {
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	c.description = description
	c.touch()
	return nil
}

func (c *Claim) UpdateClientInfo(clientName, contactInfo string) error {
	if len(clientName) == 0 {
		return fmt.Errorf("client name is required")
	}
	if len(contactInfo) == 0 {
		return fmt.Errorf("contact info is required")
	}
	c.clientName = clientName
	c.contactInfo = contactInfo
	c.touch()
	return nil
}

func (c *Claim) SetClientEmail(email *string) {
	c.clientEmail = email
	c.touch()
}

func (c *Claim) SetClientPhone(phone *string) {
	c.clientPhone = phone
	c.touch()
}

func (c *Claim) SetCategory(category *string) {
	c.category = category
	c.touch()
}

func (c *Claim) SetResolutionSummary(summary *string) {
	c.resolutionSummary = summary
	c.touch()
}

func (c *Claim) ChangePriority(priority vo.Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}
	c.priority = priority
	c.touch()
	return nil
}

// ApplyStatusChange moves the claim to a new status. The caller resolves
// whether the target status is terminal; resolvedAt is set on the first
// entry into a terminal status and cleared on leaving the terminal set.
// A sub-status belonging to the previous status is dropped.
func (c *Claim) ApplyStatusChange(statusID uint, isTerminal bool) error {
	if statusID == 0 {
		return fmt.Errorf("status ID is required")
	}
	c.statusID = statusID
	c.subStatusID = nil

	if isTerminal {
		if c.resolvedAt == nil {
			now := biztime.NowUTC()
			c.resolvedAt = &now
		}
	} else {
		c.resolvedAt = nil
	}

	c.touch()
	return nil
}

// ApplySubStatusChange sets or clears the sub-status. The caller must have
// verified the sub-status belongs to the claim's current status.
func (c *Claim) ApplySubStatusChange(subStatusID *uint) {
	c.subStatusID = subStatusID
	c.touch()
}

// Assign sets or clears the assignee together with its snapshot. The two
// are always consistent: both present or both absent.
func (c *Claim) Assign(assigneeID *uint, snapshot *vo.AssigneeSnapshot) error {
	if (assigneeID == nil) != (snapshot == nil) {
		return fmt.Errorf("assignee ID and snapshot must be set together")
	}
	if assigneeID != nil && *assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	c.assigneeID = assigneeID
	c.assigneeSnapshot = snapshot
	c.touch()
	return nil
}

// RefreshAssigneeSnapshot replaces the snapshot for the current assignee.
func (c *Claim) RefreshAssigneeSnapshot(snapshot vo.AssigneeSnapshot) error {
	if c.assigneeID == nil {
		return fmt.Errorf("claim has no assignee")
	}
	c.assigneeSnapshot = &snapshot
	c.touch()
	return nil
}

func (c *Claim) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}
	c.comments = append(c.comments, comment)
	c.touch()
	return nil
}

func (c *Claim) FindComment(commentID string) (*Comment, error) {
	for _, cm := range c.comments {
		if cm.ID() == commentID {
			return cm, nil
		}
	}
	return nil, fmt.Errorf("comment %s not found", commentID)
}

func (c *Claim) EditComment(commentID string, content string) error {
	cm, err := c.FindComment(commentID)
	if err != nil {
		return err
	}
	if err := cm.UpdateContent(content); err != nil {
		return err
	}
	c.touch()
	return nil
}

func (c *Claim) RemoveComment(commentID string) error {
	for i, cm := range c.comments {
		if cm.ID() == commentID {
			c.comments = append(c.comments[:i], c.comments[i+1:]...)
			c.touch()
			return nil
		}
	}
	return fmt.Errorf("comment %s not found", commentID)
}

func (c *Claim) AddAttachment(attachment *Attachment) error {
	if attachment == nil {
		return fmt.Errorf("attachment cannot be nil")
	}
	c.attachments = append(c.attachments, attachment)
	c.touch()
	return nil
}

func (c *Claim) FindAttachment(attachmentID string) (*Attachment, error) {
	for _, a := range c.attachments {
		if a.ID() == attachmentID {
			return a, nil
		}
	}
	return nil, fmt.Errorf("attachment %s not found", attachmentID)
}

func (c *Claim) RemoveAttachment(attachmentID string) error {
	for i, a := range c.attachments {
		if a.ID() == attachmentID {
			c.attachments = append(c.attachments[:i], c.attachments[i+1:]...)
			c.touch()
			return nil
		}
	}
	return fmt.Errorf("attachment %s not found", attachmentID)
}

// RecordEvent appends to the audit trail. The trail is append-only; no
// operation edits or removes recorded events.
func (c *Claim) RecordEvent(event *AuditEvent) error {
	if event == nil {
		return fmt.Errorf("event cannot be nil")
	}
	c.auditTrail = append(c.auditTrail, event)
	return nil
}

func (c *Claim) IsResolved() bool {
	return c.resolvedAt != nil
}

func (c *Claim) touch() {
	c.updatedAt = biztime.NowUTC()
}
