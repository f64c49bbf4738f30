package claim

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"claimdesk/internal/application/claim/usecases"
	domain "claimdesk/internal/domain/claim"
	"claimdesk/internal/shared/constants"
	"claimdesk/internal/shared/logger"
	"claimdesk/internal/shared/utils"
)

type ClaimHandler struct {
	createClaimUC      usecases.CreateClaimExecutor
	updateClaimUC      usecases.UpdateClaimExecutor
	assignClaimUC      usecases.AssignClaimExecutor
	deleteClaimUC      usecases.DeleteClaimExecutor
	getClaimUC         usecases.GetClaimExecutor
	listClaimsUC       usecases.ListClaimsExecutor
	addCommentUC       usecases.AddCommentExecutor
	editCommentUC      usecases.EditCommentExecutor
	deleteCommentUC    usecases.DeleteCommentExecutor
	addAttachmentUC    usecases.AddAttachmentExecutor
	deleteAttachmentUC usecases.DeleteAttachmentExecutor
	listAuditEventsUC  usecases.ListAuditEventsExecutor
	logger             logger.Interface
}

func NewClaimHandler(
	createClaimUC usecases.CreateClaimExecutor,
	updateClaimUC usecases.UpdateClaimExecutor,
	assignClaimUC usecases.AssignClaimExecutor,
	deleteClaimUC usecases.DeleteClaimExecutor,
	getClaimUC usecases.GetClaimExecutor,
	listClaimsUC usecases.ListClaimsExecutor,
	addCommentUC usecases.AddCommentExecutor,
	editCommentUC usecases.EditCommentExecutor,
	deleteCommentUC usecases.DeleteCommentExecutor,
	addAttachmentUC usecases.AddAttachmentExecutor,
	deleteAttachmentUC usecases.DeleteAttachmentExecutor,
	listAuditEventsUC usecases.ListAuditEventsExecutor,
) *ClaimHandler {
	return &ClaimHandler{
		createClaimUC:      createClaimUC,
		updateClaimUC:      updateClaimUC,
		assignClaimUC:      assignClaimUC,
		deleteClaimUC:      deleteClaimUC,
		getClaimUC:         getClaimUC,
		listClaimsUC:       listClaimsUC,
		addCommentUC:       addCommentUC,
		editCommentUC:      editCommentUC,
		deleteCommentUC:    deleteCommentUC,
		addAttachmentUC:    addAttachmentUC,
		deleteAttachmentUC: deleteAttachmentUC,
		listAuditEventsUC:  listAuditEventsUC,
		logger:             logger.NewLogger(),
	}
}

// CreateClaim handles POST /claims
func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	var req CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create claim", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand(actorFromContext(c))

	result, err := h.createClaimUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Claim created successfully")
}

// GetClaim handles GET /claims/:id
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	claimID, err := parseClaimID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetClaimQuery{
		ClaimID: claimID,
		Actor:   actorFromContext(c),
	}

	result, err := h.getClaimUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListClaims handles GET /claims
func (h *ClaimHandler) ListClaims(c *gin.Context) {
	query := parseListClaimsQuery(c)

	items, total, err := h.listClaimsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, items, total, query.Page, query.PageSize)
}

// UpdateClaim handles PATCH /claims/:id
func (h *ClaimHandler) UpdateClaim(c *gin.Context) {
	claimID, err := parseClaimID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update claim", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := req.ToCommand(claimID, actorFromContext(c))

	result, err := h.updateClaimUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Claim updated successfully", result)
}

// AssignClaim handles PATCH /claims/:id/assign
func (h *ClaimHandler) AssignClaim(c *gin.Context) {
	claimID, err := parseClaimID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for assign claim", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AssignClaimCommand{
		ClaimID: claimID,
		AgentID: req.AssigneeID,
		Actor:   actorFromContext(c),
	}

	result, err := h.assignClaimUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Claim assignment updated", result)
}

// DeleteClaim handles DELETE /claims/:id
func (h *ClaimHandler) DeleteClaim(c *gin.Context) {
	claimID, err := parseClaimID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteClaimCommand{
		ClaimID: claimID,
		Actor:   actorFromContext(c),
	}

	if err := h.deleteClaimUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Claim deleted successfully", nil)
}

// AddComment handles POST /claims/:id/comments
func (h *ClaimHandler) AddComment(c *gin.Context) {
	claimID, err := parseClaimID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add comment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AddCommentCommand{
		ClaimID:    claimID,
		Content:    req.Content,
		IsInternal: req.IsInternal,
		Actor:      actorFromContext(c),
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Comment added successfully")
}

// EditComment handles PATCH /claims/:id/comments/:commentID
func (h *ClaimHandler) EditComment(c *gin.Context) {
	claimID, err := parseClaimID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req EditCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for edit comment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.EditCommentCommand{
		ClaimID:   claimID,
		CommentID: c.Param("commentID"),
		Content:   req.Content,
		Actor:     actorFromContext(c),
	}

	result, err := h.editCommentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment updated successfully", result)
}

// DeleteComment handles DELETE /claims/:id/comments/:commentID
func (h *ClaimHandler) DeleteComment(c *gin.Context) {
	claimID, err := parseClaimID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteCommentCommand{
		ClaimID:   claimID,
		CommentID: c.Param("commentID"),
		Actor:     actorFromContext(c),
	}

	if err := h.deleteCommentUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Comment deleted successfully", nil)
}

// AddAttachment handles POST /claims/:id/attachments
func (h *ClaimHandler) AddAttachment(c *gin.Context) {
	claimID, err := parseClaimID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add attachment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.AddAttachmentCommand{
		ClaimID:   claimID,
		FileName:  req.FileName,
		URL:       req.URL,
		MimeType:  req.MimeType,
		SizeBytes: req.SizeBytes,
		Actor:     actorFromContext(c),
	}

	result, err := h.addAttachmentUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Attachment added successfully")
}

// DeleteAttachment handles DELETE /claims/:id/attachments/:attachmentID
func (h *ClaimHandler) DeleteAttachment(c *gin.Context) {
	claimID, err := parseClaimID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteAttachmentCommand{
		ClaimID:      claimID,
		AttachmentID: c.Param("attachmentID"),
		Actor:        actorFromContext(c),
	}

	if err := h.deleteAttachmentUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Attachment deleted successfully", nil)
}

// ListAuditEvents handles GET /claims/:id/audit
func (h *ClaimHandler) ListAuditEvents(c *gin.Context) {
	claimID, err := parseClaimID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	query := usecases.ListAuditEventsQuery{
		ClaimID: claimID,
		Limit:   limit,
	}

	result, err := h.listAuditEventsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func actorFromContext(c *gin.Context) domain.Actor {
	return domain.Actor{
		ID:   c.GetUint(constants.ContextKeyUserID),
		Name: c.GetString(constants.ContextKeyUserName),
		Area: c.GetString(constants.ContextKeyUserArea),
		Role: c.GetString(constants.ContextKeyUserRole),
	}
}
