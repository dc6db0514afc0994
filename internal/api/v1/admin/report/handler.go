package report

import (
	"net/http"
	"strconv"

	"microfinance-backend/internal/api/v1/common/respond"
	"microfinance-backend/internal/services"
	"microfinance-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// Dashboard godoc
// @Summary Admin overview statistics
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} utils.Response{data=services.DashboardStats}
// @Router /admin/reports/dashboard [get]
func Dashboard(c *gin.Context) {
	stats, err := services.GetAdminDashboard()
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Dashboard retrieved successfully", stats))
}

// ListAuditLogs godoc
// @Summary List the audit trail, newest first
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} utils.Response{data=report.PagedAuditLogs}
// @Router /admin/audit-logs [get]
func ListAuditLogs(c *gin.Context) {
	page := 1
	limit := 20
	if p, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil && l > 0 && l <= 100 {
		limit = l
	}

	entries, total, err := services.FindAuditLogs(page, limit)
	if err != nil {
		respond.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse("Audit logs retrieved successfully", PagedAuditLogs{
		Items: newAuditLogResponses(entries),
		Total: total,
		Page:  page,
		Limit: limit,
	}))
}
