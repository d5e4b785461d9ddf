package accounts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"auction-broker/internal/brokererrors"
	"auction-broker/internal/models"
	"auction-broker/internal/repository"
	"auction-broker/utils"
)

// Service manages employee accounts on behalf of the super-admin tier
type Service struct {
	users   repository.UserStore
	actions repository.ActionStore
}

// NewService creates an account service
func NewService(users repository.UserStore, actions repository.ActionStore) *Service {
	return &Service{users: users, actions: actions}
}

// ListEmployees returns all accounts with the employee role
func (s *Service) ListEmployees(ctx context.Context, auth models.AuthContext) ([]models.User, error) {
	employees, err := s.users.GetUsersByRole(ctx, models.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list employees: %w", err)
	}
	return employees, nil
}

// DeactivateEmployee soft-deletes an employee account and appends an audit
// record attributing the action to the acting super-admin. Deactivation is
// one-way; there is no reactivation path.
func (s *Service) DeactivateEmployee(ctx context.Context, auth models.AuthContext, employeeID, notes string) error {
	target, err := s.getEmployee(ctx, employeeID)
	if err != nil {
		return err
	}
	if !target.Active {
		return fmt.Errorf("service: employee %s: %w", employeeID, brokererrors.ErrEmployeeInactive)
	}

	now := time.Now().UTC()
	if err := s.users.DeactivateUser(ctx, employeeID, now); err != nil {
		return fmt.Errorf("service: failed to deactivate employee %s: %w", employeeID, err)
	}

	action := models.EmployeeAction{
		ActionID:    utils.GenerateID(),
		EmployeeID:  employeeID,
		Action:      models.EmployeeActionDeleted,
		PerformedBy: auth.UserID,
		Notes:       notes,
		CreatedAt:   now,
	}
	if err := s.actions.RecordEmployeeAction(ctx, action); err != nil {
		return fmt.Errorf("service: failed to record action for employee %s: %w", employeeID, err)
	}

	utils.Info("employee deactivated", map[string]any{
		"employee_id":  employeeID,
		"performed_by": auth.UserID,
	})
	return nil
}

// ListEmployeeActions returns the audit log for an employee, newest first.
// The target must exist and hold the employee role.
func (s *Service) ListEmployeeActions(ctx context.Context, auth models.AuthContext, employeeID string) ([]models.EmployeeAction, error) {
	if _, err := s.getEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	actions, err := s.actions.GetEmployeeActions(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get actions for employee %s: %w", employeeID, err)
	}
	return actions, nil
}

// getEmployee resolves an employee id, translating repository misses into
// the admin surface's employee-not-found error.
func (s *Service) getEmployee(ctx context.Context, employeeID string) (models.User, error) {
	target, err := s.users.GetUser(ctx, employeeID)
	if err != nil {
		if errors.Is(err, brokererrors.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("service: employee %s: %w", employeeID, brokererrors.ErrEmployeeNotFound)
		}
		return models.User{}, fmt.Errorf("service: failed to get employee %s: %w", employeeID, err)
	}
	if target.Role != models.RoleEmployee {
		return models.User{}, fmt.Errorf("service: user %s has role %s: %w", employeeID, target.Role, brokererrors.ErrNotEmployee)
	}
	return target, nil
}
