package models

import "gorm.io/datatypes"

type StatusModel struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null;uniqueIndex"`
	Color        string `gorm:"size:7"`
	DisplayOrder int    `gorm:"not null;default:0;index"`
	Description  *string `gorm:"type:text"`
	Area         *string `gorm:"size:100"`
	Permissions  datatypes.JSON
	CreatedAt    int64 `gorm:"not null"`
	UpdatedAt    int64 `gorm:"not null"`
}

func (StatusModel) TableName() string {
	return "statuses"
}

type SubStatusModel struct {
	ID           uint   `gorm:"primaryKey"`
	StatusID     uint   `gorm:"not null;index:idx_sub_statuses_status_name,unique"`
	Name         string `gorm:"size:100;not null;index:idx_sub_statuses_status_name,unique"`
	DisplayOrder int    `gorm:"not null;default:0"`
	Description  *string `gorm:"type:text"`
	CreatedAt    int64  `gorm:"not null"`
	UpdatedAt    int64  `gorm:"not null"`
}

func (SubStatusModel) TableName() string {
	return "sub_statuses"
}

type TransitionModel struct {
	ID                   uint `gorm:"primaryKey"`
	FromStatusID         uint `gorm:"not null;index:idx_transitions_edge,unique"`
	ToStatusID           uint `gorm:"not null;index:idx_transitions_edge,unique"`
	RequiredRoles        datatypes.JSON
	RequiresConfirmation bool    `gorm:"not null;default:false"`
	Message              *string `gorm:"type:text"`
	CreatedAt            int64   `gorm:"not null"`
	UpdatedAt            int64   `gorm:"not null"`
}

func (TransitionModel) TableName() string {
	return "status_transitions"
}
