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

type ProcessManagerHandler struct {
	leaveService service.LeaveService
}

// NewProcessManagerHandler sets up the routing dependencies for process-manager endpoints
func NewProcessManagerHandler(leaveService service.LeaveService) *ProcessManagerHandler {
	return &ProcessManagerHandler{leaveService: leaveService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *ProcessManagerHandler) RegisterRoutes(router *gin.RouterGroup) {
	managers := router.Group("/process-manager", middleware.RequireRole(model.RoleProcessManager))
	{
		managers.GET("/approved", h.ListApproved)
		managers.PUT("/finalize/:id", h.Finalize)
	}
}

// ListApproved handles GET /process-manager/approved
// @Summary      List approved requests
// @Description  Returns every leave request currently in Approved status
// @Tags         process-manager
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.LeaveRequest}
// @Failure      500  {object}  response.Response
// @Router       /process-manager/approved [get]
func (h *ProcessManagerHandler) ListApproved(c *gin.Context) {
	requests, err := h.leaveService.ListApproved(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch approved requests"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, requests))
}

// Finalize handles PUT /process-manager/finalize/:id
// @Summary      Finalize an approved request
// @Description  Attaches the process manager's signature and moves the request to Finalized
// @Tags         process-manager
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                   true  "Leave Request ID"
// @Param        payload  body      service.FinalizeRequest  true  "Finalize Payload"
// @Success      200      {object}  response.Response{data=model.LeaveRequest}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /process-manager/finalize/{id} [put]
func (h *ProcessManagerHandler) Finalize(c *gin.Context) {
	var req service.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	leave, err := h.leaveService.Finalize(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		case errors.Is(err, service.ErrInvalidTransition):
			c.JSON(http.StatusConflict, response.Error(http.StatusConflict, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, leave))
}
