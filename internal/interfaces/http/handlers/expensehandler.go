package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/application/expense/dto"
	"gymdesk/internal/shared/errors"
	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

type ExpenseHandler struct {
	createExpenseUC createExpenseUseCase
	listExpensesUC  listExpensesUseCase
	updateExpenseUC updateExpenseUseCase
	deleteExpenseUC deleteExpenseUseCase
	logger          logger.Interface
}

func NewExpenseHandler(
	createExpenseUC createExpenseUseCase,
	listExpensesUC listExpensesUseCase,
	updateExpenseUC updateExpenseUseCase,
	deleteExpenseUC deleteExpenseUseCase,
) *ExpenseHandler {
	return &ExpenseHandler{
		createExpenseUC: createExpenseUC,
		listExpensesUC:  listExpensesUC,
		updateExpenseUC: updateExpenseUC,
		deleteExpenseUC: deleteExpenseUC,
		logger:          logger.NewLogger(),
	}
}

func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create expense", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createExpenseUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Expense recorded successfully")
}

func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	expenses, total, err := h.listExpensesUC.Execute(c.Request.Context(), pagination.Page, pagination.PageSize)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, expenses, total, pagination.Page, pagination.PageSize)
}

func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update expense", "error", err, "id", id)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateExpenseUC.Execute(c.Request.Context(), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Expense updated successfully", result)
}

func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteExpenseUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
