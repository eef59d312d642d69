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

type ApplicantHandler struct {
	leaveService service.LeaveService
}

// NewApplicantHandler sets up the routing dependencies for applicant endpoints
func NewApplicantHandler(leaveService service.LeaveService) *ApplicantHandler {
	return &ApplicantHandler{leaveService: leaveService}
}

// RegisterRoutes binds the endpoints to the gin Engine or RouterGroup
func (h *ApplicantHandler) RegisterRoutes(router *gin.RouterGroup) {
	applicants := router.Group("/applicants", middleware.RequireRole(model.RoleApplicant))
	{
		applicants.POST("/submit", h.Submit)
		applicants.GET("", h.ListOwn)
		applicants.PUT("/:id", h.Update)
	}
}

// Submit handles POST /applicants/submit
// @Summary      Submit leave request
// @Description  Creates a new leave request in Pending status for the authenticated applicant
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body      service.SubmitLeaveRequest  true  "Leave Request Payload"
// @Success      201      {object}  response.Response{data=model.LeaveRequest}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /applicants/submit [post]
func (h *ApplicantHandler) Submit(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "User ID not found in context"))
		return
	}

	var req service.SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	leave, err := h.leaveService.Submit(c.Request.Context(), userID, req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, leave))
}

// ListOwn handles GET /applicants
// @Summary      List own leave requests
// @Description  Returns the authenticated applicant's leave requests, newest first
// @Tags         applicants
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.LeaveRequest}
// @Failure      500  {object}  response.Response
// @Router       /applicants [get]
func (h *ApplicantHandler) ListOwn(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "User ID not found in context"))
		return
	}

	requests, err := h.leaveService.ListOwn(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to fetch leave requests"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, requests))
}

// Update handles PUT /applicants/:id
// @Summary      Update own leave request
// @Description  Lets the applicant amend their own request; status changes are transition-checked
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                          true  "Leave Request ID"
// @Param        payload  body      service.ApplicantUpdateRequest  true  "Update Payload"
// @Success      200      {object}  response.Response{data=model.LeaveRequest}
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /applicants/{id} [put]
func (h *ApplicantHandler) Update(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "User ID not found in context"))
		return
	}

	var req service.ApplicantUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload"))
		return
	}

	leave, err := h.leaveService.UpdateOwn(c.Request.Context(), userID, c.Param("id"), callerName(c), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, err.Error()))
		case errors.Is(err, service.ErrNotOwner):
			c.JSON(http.StatusForbidden, response.Error(http.StatusForbidden, err.Error()))
		case errors.Is(err, service.ErrInvalidTransition):
			c.JSON(http.StatusConflict, response.Error(http.StatusConflict, err.Error()))
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		}
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, leave))
}
