package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/application/staff/dto"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

type StaffHandler struct {
	createStaffUC createStaffUseCase
	getStaffUC    getStaffUseCase
	listStaffUC   listStaffUseCase
	updateStaffUC updateStaffUseCase
	deleteStaffUC deleteStaffUseCase
	logger        logger.Interface
}

func NewStaffHandler(
	createStaffUC createStaffUseCase,
	getStaffUC getStaffUseCase,
	listStaffUC listStaffUseCase,
	updateStaffUC updateStaffUseCase,
	deleteStaffUC deleteStaffUseCase,
) *StaffHandler {
	return &StaffHandler{
		createStaffUC: createStaffUC,
		getStaffUC:    getStaffUC,
		listStaffUC:   listStaffUC,
		updateStaffUC: updateStaffUC,
		deleteStaffUC: deleteStaffUC,
		logger:        logger.NewLogger(),
	}
}

func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create staff", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createStaffUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Staff member created successfully")
}

func (h *StaffHandler) GetStaff(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getStaffUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Staff member retrieved successfully", result)
}

func (h *StaffHandler) ListStaff(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	staff, total, err := h.listStaffUC.Execute(c.Request.Context(), pagination.Page, pagination.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, staff, total, pagination.Page, pagination.PageSize)
}

func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update staff", "error", err, "id", id)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateStaffUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Staff member updated successfully", result)
}

func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteStaffUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
