package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/pagination"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type HRHandler struct {
	leaveService      service.LeaveService
	statisticsService service.StatisticsService
	reportService     service.ReportService
}

// NewHRHandler sets up the routing dependencies for HR endpoints
func NewHRHandler(leaveService service.LeaveService, statisticsService service.StatisticsService, reportService service.ReportService) *HRHandler {
	return &HRHandler{
		leaveService:      leaveService,
		statisticsService: statisticsService,
		reportService:     reportService,
	}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *HRHandler) RegisterRoutes(router *gin.RouterGroup) {
	hr := router.Group("/hr", middleware.RequireRole(model.RoleHR))
	{
		hr.GET("/all", h.ListAll)
		hr.GET("/report", h.Report)
		hr.GET("/statistics", h.Statistics)
	}
}

// ListAll handles GET /hr/all
// @Summary      List all leave requests
// @Description  Returns every leave request newest first; page/limit paginate when given
// @Tags         hr
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number"
// @Param        limit  query     int  false  "Items per page"
// @Success      200    {object}  response.Response{data=object}
// @Failure      500    {object}  response.Response
// @Router       /hr/all [get]
func (h *HRHandler) ListAll(c *gin.Context) {
	params, paginated := pagination.Parse(c)
	offset, limit := 0, 0
	if paginated {
		offset, limit = params.Offset, params.Limit
	}

	requests, total, err := h.leaveService.ListAll(c.Request.Context(), "", offset, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch leave requests"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"requests": requests,
		"total":    total,
	}))
}

// Report handles GET /hr/report
// @Summary      Export CSV report
// @Description  Streams a CSV attachment of all requests, optionally filtered by department
// @Tags         hr
// @Produce      text/csv
// @Security     BearerAuth
// @Param        department  query     string  false  "Department filter"
// @Success      200         {string}  string  "CSV attachment"
// @Failure      500         {object}  response.Response
// @Router       /hr/report [get]
func (h *HRHandler) Report(c *gin.Context) {
	csvBytes, err := h.reportService.GenerateCSV(c.Request.Context(), c.Query("department"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to generate report"))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+service.ReportFilename+`"`)
	c.Data(http.StatusOK, "text/csv", csvBytes)
}

// Statistics handles GET /hr/statistics
// @Summary      Organization-wide statistics
// @Description  Aggregated workflow metrics across all departments, with a per-department breakdown
// @Tags         hr
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=model.StatisticsResponse}
// @Failure      500  {object}  response.Response
// @Router       /hr/statistics [get]
func (h *HRHandler) Statistics(c *gin.Context) {
	stats, err := h.statisticsService.GlobalStatistics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, stats))
}
