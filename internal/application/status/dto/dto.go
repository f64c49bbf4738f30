package dto

import (
	"time"

	"claimdesk/internal/domain/status"
)

type StatusDTO struct {
	ID           uint                   `json:"id"`
	Name         string                 `json:"name"`
	Color        string                 `json:"color"`
	DisplayOrder int                    `json:"display_order"`
	Description  *string                `json:"description"`
	Area         *string                `json:"area"`
	Permissions  map[string]interface{} `json:"permissions"`
	IsTerminal   bool                   `json:"is_terminal"`
	SubStatuses  []SubStatusDTO         `json:"sub_statuses"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

type SubStatusDTO struct {
	ID           uint      `json:"id"`
	StatusID     uint      `json:"status_id"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
	Description  *string   `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type TransitionDTO struct {
	ID                   uint      `json:"id"`
	FromStatusID         uint      `json:"from_status_id"`
	ToStatusID           uint      `json:"to_status_id"`
	RequiredRoles        []string  `json:"required_roles"`
	RequiresConfirmation bool      `json:"requires_confirmation"`
	Message              *string   `json:"message"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func ToStatusDTO(s *status.Status, subStatuses []*status.SubStatus) StatusDTO {
	subDTOs := make([]SubStatusDTO, 0, len(subStatuses))
	for _, ss := range subStatuses {
		subDTOs = append(subDTOs, ToSubStatusDTO(ss))
	}
	return StatusDTO{
		ID:           s.ID(),
		Name:         s.Name(),
		Color:        s.Color(),
		DisplayOrder: s.DisplayOrder(),
		Description:  s.Description(),
		Area:         s.Area(),
		Permissions:  s.Permissions(),
		IsTerminal:   s.IsTerminal(),
		SubStatuses:  subDTOs,
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}
}

func ToSubStatusDTO(ss *status.SubStatus) SubStatusDTO {
	return SubStatusDTO{
		ID:           ss.ID(),
		StatusID:     ss.StatusID(),
		Name:         ss.Name(),
		DisplayOrder: ss.DisplayOrder(),
		Description:  ss.Description(),
		CreatedAt:    ss.CreatedAt(),
		UpdatedAt:    ss.UpdatedAt(),
	}
}

func ToTransitionDTO(t *status.Transition) TransitionDTO {
	return TransitionDTO{
		ID:                   t.ID(),
		FromStatusID:         t.FromStatusID(),
		ToStatusID:           t.ToStatusID(),
		RequiredRoles:        t.RequiredRoles(),
		RequiresConfirmation: t.RequiresConfirmation(),
		Message:              t.Message(),
		CreatedAt:            t.CreatedAt(),
		UpdatedAt:            t.UpdatedAt(),
	}
}
