package models

import "gorm.io/datatypes"

// ClaimModel is the single-row persistence shape of the claim aggregate.
// Comments, attachments and the audit trail are embedded JSON documents so
// a save replaces the whole aggregate atomically.
type ClaimModel struct {
	ID                uint    `gorm:"primaryKey"`
	Subject           string  `gorm:"size:200;not null"`
	ClientName        string  `gorm:"size:200;not null"`
	ContactInfo       string  `gorm:"size:200;not null"`
	ClientEmail       *string `gorm:"size:200"`
	ClientPhone       *string `gorm:"size:50"`
	Description       string  `gorm:"type:text"`
	StatusID          uint    `gorm:"not null;index"`
	SubStatusID       *uint   `gorm:"index"`
	Priority          string  `gorm:"size:20;not null;index"`
	Category          *string `gorm:"size:100"`
	AssigneeID        *uint   `gorm:"index"`
	AssigneeSnapshot  datatypes.JSON
	ResolutionSummary *string `gorm:"type:text"`
	ResolvedAt        *int64  `gorm:"index"`
	Version           int     `gorm:"not null;default:1"`
	Comments          datatypes.JSON
	Attachments       datatypes.JSON
	AuditTrail        datatypes.JSON
	CreatedAt         int64 `gorm:"not null;index"`
	UpdatedAt         int64 `gorm:"not null"`

	// No foreign key constraints or associations. Relationships are
	// managed by application business logic.
}

func (ClaimModel) TableName() string {
	return "claims"
}
