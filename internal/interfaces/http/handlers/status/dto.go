package status

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"claimdesk/internal/application/status/usecases"
	"claimdesk/internal/shared/errors"
)

type CreateStatusRequest struct {
	Name         string                 `json:"name" binding:"required,max=100"`
	Color        string                 `json:"color,omitempty" binding:"omitempty,hexcolor"`
	DisplayOrder int                    `json:"display_order"`
	Description  *string                `json:"description,omitempty"`
	Area         *string                `json:"area,omitempty" binding:"omitempty,max=100"`
	Permissions  map[string]interface{} `json:"permissions,omitempty"`
}

func (r *CreateStatusRequest) ToCommand() usecases.CreateStatusCommand {
	return usecases.CreateStatusCommand{
		Name:         r.Name,
		Color:        r.Color,
		DisplayOrder: r.DisplayOrder,
		Description:  r.Description,
		Area:         r.Area,
		Permissions:  r.Permissions,
	}
}

type UpdateStatusRequest struct {
	Name         *string                `json:"name,omitempty" binding:"omitempty,max=100"`
	Color        *string                `json:"color,omitempty" binding:"omitempty,hexcolor"`
	DisplayOrder *int                   `json:"display_order,omitempty"`
	Description  *string                `json:"description,omitempty"`
	Area         *string                `json:"area,omitempty" binding:"omitempty,max=100"`
	Permissions  map[string]interface{} `json:"permissions,omitempty"`
}

func (r *UpdateStatusRequest) ToCommand(statusID uint) usecases.UpdateStatusCommand {
	return usecases.UpdateStatusCommand{
		StatusID:     statusID,
		Name:         r.Name,
		Color:        r.Color,
		DisplayOrder: r.DisplayOrder,
		Description:  r.Description,
		Area:         r.Area,
		Permissions:  r.Permissions,
	}
}

type CreateSubStatusRequest struct {
	Name         string  `json:"name" binding:"required,max=100"`
	DisplayOrder int     `json:"display_order"`
	Description  *string `json:"description,omitempty"`
}

type UpdateSubStatusRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,max=100"`
	DisplayOrder *int    `json:"display_order,omitempty"`
	Description  *string `json:"description,omitempty"`
}

type CreateTransitionRequest struct {
	FromStatusID         uint     `json:"from_status_id" binding:"required"`
	ToStatusID           uint     `json:"to_status_id" binding:"required"`
	RequiredRoles        []string `json:"required_roles,omitempty"`
	RequiresConfirmation bool     `json:"requires_confirmation"`
	Message              *string  `json:"message,omitempty"`
}

type UpdateTransitionRequest struct {
	RequiredRoles        []string `json:"required_roles,omitempty"`
	RequiresConfirmation *bool    `json:"requires_confirmation,omitempty"`
	Message              *string  `json:"message,omitempty"`
	ClearMessage         bool     `json:"clear_message,omitempty"`
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid " + name)
	}
	return uint(id), nil
}

func parseUintQuery(c *gin.Context, name string) uint {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}
