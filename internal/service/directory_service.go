package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fincatech.io/itam/ent"
	"fincatech.io/itam/ent/assignment"
	"fincatech.io/itam/ent/employee"
	"fincatech.io/itam/ent/user"
	"fincatech.io/itam/internal/governance/audit"
	apperrors "fincatech.io/itam/internal/pkg/errors"
)

// DirectoryService is the identity/employee directory: user accounts,
// employees, and the zero-or-one link between them.
type DirectoryService struct {
	client      *ent.Client
	auditLogger *audit.Logger
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(client *ent.Client, auditLogger *audit.Logger) *DirectoryService {
	return &DirectoryService{client: client, auditLogger: auditLogger}
}

// GetUser returns a user account by id.
func (s *DirectoryService) GetUser(ctx context.Context, id string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeUserNotFound, "user not found")
		}
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return u, nil
}

// UserForEmployee resolves the account linked to an employee. A nil
// result with nil error means the employee has no account, which is a
// normal condition.
func (s *DirectoryService) UserForEmployee(ctx context.Context, employeeID string) (*ent.User, error) {
	u, err := s.client.User.Query().
		Where(user.EmployeeIDEQ(employeeID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve account for employee %s: %w", employeeID, err)
	}
	return u, nil
}

// CreateUserInput carries a new user account.
type CreateUserInput struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	FullName   string `json:"full_name,omitempty"`
	Password   string `json:"password,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
}

// CreateUser registers a user account. The password, when supplied, is
// stored as a bcrypt hash.
func (s *DirectoryService) CreateUser(ctx context.Context, input CreateUserInput, actor string) (*ent.User, error) {
	if strings.TrimSpace(input.Username) == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "username is required")
	}
	if strings.TrimSpace(input.Email) == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "email is required")
	}

	var hash string
	if input.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hash = string(h)
	}

	var created *ent.User
	txErr := withTx(ctx, s.client, func(tx *ent.Tx) error {
		create := tx.User.Create().
			SetID(generateID()).
			SetUsername(input.Username).
			SetEmail(input.Email).
			SetFullName(input.FullName)
		if hash != "" {
			create.SetPasswordHash(hash)
		}
		if input.EmployeeID != "" {
			if _, err := tx.Employee.Get(ctx, input.EmployeeID); err != nil {
				if ent.IsNotFound(err) {
					return apperrors.NotFound(apperrors.CodeEmployeeNotFound, "employee not found")
				}
				return fmt.Errorf("get employee %s: %w", input.EmployeeID, err)
			}
			create.SetEmployeeID(input.EmployeeID)
		}
		u, err := create.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return apperrors.Conflict(apperrors.CodeCatalogExists,
					"username, email, or employee link already in use")
			}
			return fmt.Errorf("create user: %w", err)
		}
		created = u

		return s.auditLogger.RecordTx(ctx, tx, audit.Entry{
			ActivityType: "user.create",
			EntityType:   "user",
			EntityID:     u.ID,
			UserID:       actor,
			Description:  "user account created: " + u.Username,
			NewData:      map[string]interface{}{"username": u.Username, "email": u.Email},
		})
	})
	if txErr != nil {
		return nil, txErr
	}
	return created, nil
}

// ListUsers returns all user accounts.
func (s *DirectoryService) ListUsers(ctx context.Context) ([]*ent.User, error) {
	users, err := s.client.User.Query().
		Order(ent.Asc(user.FieldUsername)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// CreateEmployeeInput carries a new employee record.
type CreateEmployeeInput struct {
	EmployeeNumber string     `json:"employee_number"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	RegionID       string     `json:"region_id,omitempty"`
	FincaID        string     `json:"finca_id,omitempty"`
	DepartamentoID string     `json:"departamento_id,omitempty"`
	AreaID         string     `json:"area_id,omitempty"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	SupervisorID   string     `json:"supervisor_id,omitempty"`
	DocumentPath   string     `json:"document_path,omitempty"`
}

// CreateEmployee registers an employee.
func (s *DirectoryService) CreateEmployee(ctx context.Context, input CreateEmployeeInput, actor string) (*ent.Employee, error) {
	if strings.TrimSpace(input.EmployeeNumber) == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "employee_number is required")
	}
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "first_name and last_name are required")
	}

	var created *ent.Employee
	txErr := withTx(ctx, s.client, func(tx *ent.Tx) error {
		create := tx.Employee.Create().
			SetID(generateID()).
			SetEmployeeNumber(input.EmployeeNumber).
			SetFirstName(input.FirstName).
			SetLastName(input.LastName).
			SetRegionID(input.RegionID).
			SetFincaID(input.FincaID).
			SetDepartamentoID(input.DepartamentoID).
			SetAreaID(input.AreaID).
			SetSupervisorID(input.SupervisorID).
			SetDocumentPath(input.DocumentPath).
			SetNillableStartDate(input.StartDate)
		e, err := create.Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return apperrors.Conflict(apperrors.CodeCatalogExists,
					"an employee with this number already exists")
			}
			return fmt.Errorf("create employee: %w", err)
		}
		created = e

		return s.auditLogger.RecordTx(ctx, tx, audit.Entry{
			ActivityType: "employee.create",
			EntityType:   "employee",
			EntityID:     e.ID,
			UserID:       actor,
			Description:  "employee registered: " + e.FirstName + " " + e.LastName,
			NewData: map[string]interface{}{
				"employee_number": e.EmployeeNumber,
				"name":            e.FirstName + " " + e.LastName,
			},
		})
	})
	if txErr != nil {
		return nil, txErr
	}
	return created, nil
}

// GetEmployee returns an employee by id.
func (s *DirectoryService) GetEmployee(ctx context.Context, id string) (*ent.Employee, error) {
	e, err := s.client.Employee.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeEmployeeNotFound, "employee not found")
		}
		return nil, fmt.Errorf("get employee %s: %w", id, err)
	}
	return e, nil
}

// ListEmployees returns employees, optionally filtered by department.
func (s *DirectoryService) ListEmployees(ctx context.Context, departamentoID, search string) ([]*ent.Employee, error) {
	q := s.client.Employee.Query()
	if departamentoID != "" {
		q = q.Where(employee.DepartamentoIDEQ(departamentoID))
	}
	if search != "" {
		q = q.Where(employee.Or(
			employee.FirstNameContainsFold(search),
			employee.LastNameContainsFold(search),
			employee.EmployeeNumberContainsFold(search),
		))
	}
	employees, err := q.Order(ent.Asc(employee.FieldLastName)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return employees, nil
}

// DeleteEmployee removes an employee without assignment history.
func (s *DirectoryService) DeleteEmployee(ctx context.Context, id, actor string) error {
	return withTx(ctx, s.client, func(tx *ent.Tx) error {
		e, err := tx.Employee.Get(ctx, id)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.NotFound(apperrors.CodeEmployeeNotFound, "employee not found")
			}
			return fmt.Errorf("get employee %s: %w", id, err)
		}

		hasHistory, err := tx.Assignment.Query().
			Where(assignment.EmployeeIDEQ(id)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check assignment history: %w", err)
		}
		if hasHistory {
			return apperrors.Conflict(apperrors.CodeCatalogInUse,
				"employee has assignment history and cannot be deleted")
		}

		if err := tx.Employee.DeleteOneID(id).Exec(ctx); err != nil {
			return fmt.Errorf("delete employee %s: %w", id, err)
		}
		return s.auditLogger.RecordTx(ctx, tx, audit.Entry{
			ActivityType: "employee.delete",
			EntityType:   "employee",
			EntityID:     id,
			UserID:       actor,
			Description:  "employee deleted: " + e.FirstName + " " + e.LastName,
			OldData: map[string]interface{}{
				"employee_number": e.EmployeeNumber,
				"name":            e.FirstName + " " + e.LastName,
			},
		})
	})
}
