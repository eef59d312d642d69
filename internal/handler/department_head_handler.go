package handler

import (
	"errors"
	"net/http"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type DepartmentHeadHandler struct {
	leaveService      service.LeaveService
	statisticsService service.StatisticsService
}

// NewDepartmentHeadHandler sets up the routing dependencies for department-head endpoints
func NewDepartmentHeadHandler(leaveService service.LeaveService, statisticsService service.StatisticsService) *DepartmentHeadHandler {
	return &DepartmentHeadHandler{leaveService: leaveService, statisticsService: statisticsService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *DepartmentHeadHandler) RegisterRoutes(router *gin.RouterGroup) {
	heads := router.Group("/department-head", middleware.RequireRole(model.RoleDepartmentHead))
	{
		heads.GET("/all-requests", h.ListPending)
		heads.GET("/statistics", h.Statistics)
		heads.PUT("/update/:id", h.Review)
	}
}

// ListPending handles GET /department-head/all-requests
// @Summary      List pending requests by department
// @Description  Returns pending leave requests filtered by the department query parameter
// @Tags         department-head
// @Produce      json
// @Security     BearerAuth
// @Param        department  query     string  true  "Department name"
// @Success      200         {object}  response.Response{data=[]model.LeaveRequest}
// @Failure      500         {object}  response.Response
// @Router       /department-head/all-requests [get]
func (h *DepartmentHeadHandler) ListPending(c *gin.Context) {
	department := c.Query("department")

	requests, err := h.leaveService.ListPendingByDepartment(c.Request.Context(), department)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch pending requests"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, requests))
}

// Statistics handles GET /department-head/statistics
// @Summary      Department statistics
// @Description  Aggregated workflow metrics scoped to the caller's own department
// @Tags         department-head
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=model.StatisticsResponse}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /department-head/statistics [get]
func (h *DepartmentHeadHandler) Statistics(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "User ID not found in context"))
		return
	}

	stats, err := h.statisticsService.DepartmentStatistics(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		case errors.Is(err, service.ErrNoDepartment):
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, stats))
}

// Review handles PUT /department-head/update/:id
// @Summary      Approve or deny a leave request
// @Description  Applies the head's decision; approval stores the provided signature image
// @Tags         department-head
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                 true  "Leave Request ID"
// @Param        payload  body      service.ReviewRequest  true  "Review Payload"
// @Success      200      {object}  response.Response{data=model.LeaveRequest}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /department-head/update/{id} [put]
func (h *DepartmentHeadHandler) Review(c *gin.Context) {
	var req service.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	leave, err := h.leaveService.Review(c.Request.Context(), c.Param("id"), callerName(c), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		case errors.Is(err, service.ErrInvalidTransition):
			c.JSON(http.StatusConflict, response.Error(http.StatusConflict, err.Error()))
		case errors.Is(err, service.ErrInvalidStatus), errors.Is(err, service.ErrSignatureRequired):
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, leave))
}
