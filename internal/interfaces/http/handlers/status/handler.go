package status

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"claimdesk/internal/application/status/usecases"
	"claimdesk/internal/shared/constants"
	"claimdesk/internal/shared/logger"
	"claimdesk/internal/shared/utils"
)

type StatusHandler struct {
	createStatusUC       usecases.CreateStatusExecutor
	updateStatusUC       usecases.UpdateStatusExecutor
	deleteStatusUC       usecases.DeleteStatusExecutor
	getStatusUC          usecases.GetStatusExecutor
	listStatusesUC       usecases.ListStatusesExecutor
	createSubStatusUC    usecases.CreateSubStatusExecutor
	updateSubStatusUC    usecases.UpdateSubStatusExecutor
	deleteSubStatusUC    usecases.DeleteSubStatusExecutor
	listSubStatusesUC    usecases.ListSubStatusesExecutor
	createTransitionUC   usecases.CreateTransitionExecutor
	updateTransitionUC   usecases.UpdateTransitionExecutor
	deleteTransitionUC   usecases.DeleteTransitionExecutor
	listTransitionsUC    usecases.ListTransitionsExecutor
	validateTransitionUC usecases.ValidateTransitionExecutor
	logger               logger.Interface
}

func NewStatusHandler(
	createStatusUC usecases.CreateStatusExecutor,
	updateStatusUC usecases.UpdateStatusExecutor,
	deleteStatusUC usecases.DeleteStatusExecutor,
	getStatusUC usecases.GetStatusExecutor,
	listStatusesUC usecases.ListStatusesExecutor,
	createSubStatusUC usecases.CreateSubStatusExecutor,
	updateSubStatusUC usecases.UpdateSubStatusExecutor,
	deleteSubStatusUC usecases.DeleteSubStatusExecutor,
	listSubStatusesUC usecases.ListSubStatusesExecutor,
	createTransitionUC usecases.CreateTransitionExecutor,
	updateTransitionUC usecases.UpdateTransitionExecutor,
	deleteTransitionUC usecases.DeleteTransitionExecutor,
	listTransitionsUC usecases.ListTransitionsExecutor,
	validateTransitionUC usecases.ValidateTransitionExecutor,
) *StatusHandler {
	return &StatusHandler{
		createStatusUC:       createStatusUC,
		updateStatusUC:       updateStatusUC,
		deleteStatusUC:       deleteStatusUC,
		getStatusUC:          getStatusUC,
		listStatusesUC:       listStatusesUC,
		createSubStatusUC:    createSubStatusUC,
		updateSubStatusUC:    updateSubStatusUC,
		deleteSubStatusUC:    deleteSubStatusUC,
		listSubStatusesUC:    listSubStatusesUC,
		createTransitionUC:   createTransitionUC,
		updateTransitionUC:   updateTransitionUC,
		deleteTransitionUC:   deleteTransitionUC,
		listTransitionsUC:    listTransitionsUC,
		validateTransitionUC: validateTransitionUC,
		logger:               logger.NewLogger(),
	}
}

// CreateStatus handles POST /statuses
func (h *StatusHandler) CreateStatus(c *gin.Context) {
	var req CreateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createStatusUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Status created successfully")
}

// GetStatus handles GET /statuses/:id
func (h *StatusHandler) GetStatus(c *gin.Context) {
	statusID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getStatusUC.Execute(c.Request.Context(), usecases.GetStatusQuery{StatusID: statusID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListStatuses handles GET /statuses
func (h *StatusHandler) ListStatuses(c *gin.Context) {
	result, err := h.listStatusesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateStatus handles PATCH /statuses/:id
func (h *StatusHandler) UpdateStatus(c *gin.Context) {
	statusID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateStatusUC.Execute(c.Request.Context(), req.ToCommand(statusID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status updated successfully", result)
}

// DeleteStatus handles DELETE /statuses/:id
func (h *StatusHandler) DeleteStatus(c *gin.Context) {
	statusID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteStatusCommand{StatusID: statusID}
	if err := h.deleteStatusUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Status deleted successfully", nil)
}

// CreateSubStatus handles POST /statuses/:id/sub-statuses
func (h *StatusHandler) CreateSubStatus(c *gin.Context) {
	statusID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateSubStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create sub-status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateSubStatusCommand{
		StatusID:     statusID,
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
		Description:  req.Description,
	}

	result, err := h.createSubStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Sub-status created successfully")
}

// ListSubStatuses handles GET /statuses/:id/sub-statuses
func (h *StatusHandler) ListSubStatuses(c *gin.Context) {
	statusID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListSubStatusesQuery{StatusID: statusID}
	result, err := h.listSubStatusesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateSubStatus handles PATCH /sub-statuses/:id
func (h *StatusHandler) UpdateSubStatus(c *gin.Context) {
	subStatusID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateSubStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update sub-status", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateSubStatusCommand{
		SubStatusID:  subStatusID,
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
		Description:  req.Description,
	}

	result, err := h.updateSubStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sub-status updated successfully", result)
}

// DeleteSubStatus handles DELETE /sub-statuses/:id
func (h *StatusHandler) DeleteSubStatus(c *gin.Context) {
	subStatusID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteSubStatusCommand{SubStatusID: subStatusID}
	if err := h.deleteSubStatusUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sub-status deleted successfully", nil)
}

// CreateTransition handles POST /transitions
func (h *StatusHandler) CreateTransition(c *gin.Context) {
	var req CreateTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create transition", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateTransitionCommand{
		FromStatusID:         req.FromStatusID,
		ToStatusID:           req.ToStatusID,
		RequiredRoles:        req.RequiredRoles,
		RequiresConfirmation: req.RequiresConfirmation,
		Message:              req.Message,
	}

	result, err := h.createTransitionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Transition created successfully")
}

// UpdateTransition handles PATCH /transitions/:id
func (h *StatusHandler) UpdateTransition(c *gin.Context) {
	transitionID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update transition", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.UpdateTransitionCommand{
		TransitionID:         transitionID,
		RequiredRoles:        req.RequiredRoles,
		RequiresConfirmation: req.RequiresConfirmation,
		Message:              req.Message,
		ClearMessage:         req.ClearMessage,
	}

	result, err := h.updateTransitionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Transition updated successfully", result)
}

// DeleteTransition handles DELETE /transitions/:id
func (h *StatusHandler) DeleteTransition(c *gin.Context) {
	transitionID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteTransitionCommand{TransitionID: transitionID}
	if err := h.deleteTransitionUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Transition deleted successfully", nil)
}

// ListTransitions handles GET /transitions
func (h *StatusHandler) ListTransitions(c *gin.Context) {
	query := usecases.ListTransitionsQuery{
		FromStatusID: parseUintQuery(c, "from_status_id"),
	}

	result, err := h.listTransitionsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ValidateTransition handles GET /transitions/validate
func (h *StatusHandler) ValidateTransition(c *gin.Context) {
	from := parseUintQuery(c, "from")
	to := parseUintQuery(c, "to")
	if from == 0 || to == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "from and to status IDs are required")
		return
	}

	role := c.Query("role")
	if role == "" {
		role = c.GetString(constants.ContextKeyUserRole)
	}

	query := usecases.ValidateTransitionQuery{
		FromStatusID: from,
		ToStatusID:   to,
		Role:         role,
	}

	result, err := h.validateTransitionUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
