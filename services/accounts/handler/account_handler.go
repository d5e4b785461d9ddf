package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	model "auction-broker/internal/models"
	"auction-broker/services/bids/helpers"
	"auction-broker/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=account_handler.go -destination=mock_service.go -package=handler

type AccountServiceInterface interface {
	ListEmployees(ctx context.Context, auth model.AuthContext) ([]model.User, error)
	DeactivateEmployee(ctx context.Context, auth model.AuthContext, employeeID, notes string) error
	ListEmployeeActions(ctx context.Context, auth model.AuthContext, employeeID string) ([]model.EmployeeAction, error)
}

type AccountHandler struct {
	service AccountServiceInterface
}

func NewAccountHandler(service AccountServiceInterface) *AccountHandler {
	return &AccountHandler{service: service}
}

// deactivateRequest carries optional audit notes; the body itself is optional
type deactivateRequest struct {
	Notes string `json:"notes"`
}

// ListEmployeesHandler handles GET /admin/employees
func (h *AccountHandler) ListEmployeesHandler(c *gin.Context) {
	auth, _ := helpers.AuthFromContext(c)

	employees, err := h.service.ListEmployees(c.Request.Context(), auth)
	if err != nil {
		h.respondError(c, "ListEmployeesHandler", err, nil)
		return
	}

	utils.JSONResponse(c, http.StatusOK, employees, "employees retrieved successfully")
}

// DeactivateEmployeeHandler handles DELETE /admin/employees/:employee_id
func (h *AccountHandler) DeactivateEmployeeHandler(c *gin.Context) {
	auth, _ := helpers.AuthFromContext(c)
	employeeID := c.Param("employee_id")

	var req deactivateRequest
	// notes are optional; a missing or empty body is fine
	_ = c.ShouldBindJSON(&req)

	if err := h.service.DeactivateEmployee(c.Request.Context(), auth, employeeID, req.Notes); err != nil {
		h.respondError(c, "DeactivateEmployeeHandler", err, map[string]any{"employee_id": employeeID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"employee_id": employeeID}, "employee deactivated successfully")
	helpers.LogSuccess("DeactivateEmployeeHandler", "employee deactivated successfully", map[string]any{
		"employee_id":  employeeID,
		"performed_by": auth.UserID,
	})
}

// ListEmployeeActionsHandler handles GET /admin/employees/:employee_id/actions
func (h *AccountHandler) ListEmployeeActionsHandler(c *gin.Context) {
	auth, _ := helpers.AuthFromContext(c)
	employeeID := c.Param("employee_id")

	actions, err := h.service.ListEmployeeActions(c.Request.Context(), auth, employeeID)
	if err != nil {
		h.respondError(c, "ListEmployeeActionsHandler", err, map[string]any{"employee_id": employeeID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, actions, "employee actions retrieved successfully")
}

func (h *AccountHandler) respondError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := helpers.MapErrorToHTTP(err)
	if status == http.StatusInternalServerError {
		// the cause is logged below, never returned to the caller
		utils.JSONError(c, status, errors.New(message), message)
	} else {
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	}

	fields := map[string]any{"handler": handlerName, "error": err.Error()}
	for k, v := range ctx {
		fields[k] = v
	}
	utils.Error(handlerName+": request failed", fields)
}
