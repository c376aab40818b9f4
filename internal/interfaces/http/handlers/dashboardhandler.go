package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymdesk/internal/shared/logger"
	"gymdesk/internal/shared/utils"
)

type DashboardHandler struct {
	getDashboardUC getDashboardUseCase
	logger         logger.Interface
}

func NewDashboardHandler(getDashboardUC getDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{
		getDashboardUC: getDashboardUC,
		logger:         logger.NewLogger(),
	}
}

// GetSummary returns the aggregated dashboard counters, the members expiring
// this month, and the trailing monthly finance series.
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	result, err := h.getDashboardUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Dashboard summary retrieved successfully", result)
}
