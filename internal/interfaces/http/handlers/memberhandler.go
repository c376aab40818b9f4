package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/application/member/dto"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

type MemberHandler struct {
	createMemberUC  createMemberUseCase
	previewMemberUC previewMemberUseCase
	getMemberUC     getMemberUseCase
	listMembersUC   listMembersUseCase
	updateMemberUC  updateMemberUseCase
	deleteMemberUC  deleteMemberUseCase
	logger          logger.Interface
}

func NewMemberHandler(
	createMemberUC createMemberUseCase,
	previewMemberUC previewMemberUseCase,
	getMemberUC getMemberUseCase,
	listMembersUC listMembersUseCase,
	updateMemberUC updateMemberUseCase,
	deleteMemberUC deleteMemberUseCase,
) *MemberHandler {
	return &MemberHandler{
		createMemberUC:  createMemberUC,
		previewMemberUC: previewMemberUC,
		getMemberUC:     getMemberUC,
		listMembersUC:   listMembersUC,
		updateMemberUC:  updateMemberUC,
		deleteMemberUC:  deleteMemberUC,
		logger:          logger.NewLogger(),
	}
}

// CreateMember registers a new member. The member code and expiry date in the
// response are computed server-side; client-sent values never win.
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create member", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createMemberUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Member created successfully")
}

// PreviewMember returns the code and expiry date a member would receive if
// created now, without persisting anything.
func (h *MemberHandler) PreviewMember(c *gin.Context) {
	var req dto.PreviewMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for preview member", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.previewMemberUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member preview generated", result)
}

func (h *MemberHandler) GetMember(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))

	result, err := h.getMemberUC.Execute(c.Request.Context(), code)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member retrieved successfully", result)
}

func (h *MemberHandler) ListMembers(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	query := dto.ListMembersQuery{
		Status:        c.Query("status"),
		PaymentStatus: c.Query("payment_status"),
		Plan:          c.Query("plan"),
		Search:        c.Query("search"),
		Page:          pagination.Page,
		PageSize:      pagination.PageSize,
	}

	members, total, err := h.listMembersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, members, total, pagination.Page, pagination.PageSize)
}

func (h *MemberHandler) UpdateMember(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))

	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update member", "error", err, "code", code)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateMemberUC.Execute(c.Request.Context(), code, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member updated successfully", result)
}

func (h *MemberHandler) DeleteMember(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))

	if err := h.deleteMemberUC.Execute(c.Request.Context(), code); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
