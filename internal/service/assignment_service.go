package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"fincatech.io/itam/ent"
	"fincatech.io/itam/ent/activo"
	"fincatech.io/itam/ent/assignment"
	"fincatech.io/itam/ent/user"
	"fincatech.io/itam/internal/governance/audit"
	apperrors "fincatech.io/itam/internal/pkg/errors"
	"fincatech.io/itam/internal/pkg/logger"
)

// AssignmentService enforces the exclusivity invariants and keeps the
// asset ledger's holder pointer synchronized:
//
//   - at most one active assignment per asset, and
//   - at most one active assignment per (employee, asset type) pair.
//
// Both checks run inside the operation's transaction; the partial
// unique index on active assignments backs the first invariant against
// concurrent writers.
type AssignmentService struct {
	client      *ent.Client
	cache       AssetCacheWriter
	auditLogger *audit.Logger
}

// NewAssignmentService creates a new AssignmentService.
func NewAssignmentService(client *ent.Client, cache AssetCacheWriter, auditLogger *audit.Logger) *AssignmentService {
	return &AssignmentService{
		client:      client,
		cache:       cache,
		auditLogger: auditLogger,
	}
}

// AssignInput carries one asset hand-over.
type AssignInput struct {
	ActivoID   string `json:"activo_id"`
	EmployeeID string `json:"employee_id"`
	Notes      string `json:"notes,omitempty"`
}

// Assign hands an asset to an employee.
func (s *AssignmentService) Assign(ctx context.Context, input AssignInput, actor string) (*ent.Assignment, error) {
	if input.ActivoID == "" || input.EmployeeID == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed,
			"activo_id and employee_id are required")
	}

	var created *ent.Assignment
	txErr := withTx(ctx, s.client, func(tx *ent.Tx) error {
		asg, err := s.assignTx(ctx, tx, input, actor)
		if err != nil {
			return err
		}
		created = asg
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	logger.Info("Asset assigned",
		zap.String("assignment_id", created.ID),
		zap.String("activo_id", created.ActivoID),
		zap.String("employee_id", created.EmployeeID),
	)
	return created, nil
}

// assignTx performs one assignment inside an open transaction. Shared
// by Assign and BulkAssign.
func (s *AssignmentService) assignTx(ctx context.Context, tx *ent.Tx, input AssignInput, actor string) (*ent.Assignment, error) {
	a, err := tx.Activo.Get(ctx, input.ActivoID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.ErrAssetNotFoundf(input.ActivoID)
		}
		return nil, fmt.Errorf("get asset %s: %w", input.ActivoID, err)
	}
	// Business rule: only active assets may be assigned. A retired
	// asset is a validation failure, not a conflict.
	if a.Estado != activo.EstadoActivo {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed,
			"only active assets may be assigned")
	}

	emp, err := tx.Employee.Get(ctx, input.EmployeeID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, apperrors.NotFound(apperrors.CodeEmployeeNotFound, "employee not found")
		}
		return nil, fmt.Errorf("get employee %s: %w", input.EmployeeID, err)
	}

	// Invariant A: no other active assignment on this asset.
	taken, err := tx.Assignment.Query().
		Where(
			assignment.ActivoIDEQ(a.ID),
			assignment.ReturnedDateIsNil(),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check active assignment: %w", err)
	}
	if taken {
		return nil, apperrors.ErrAssetAssignedf(a.ID)
	}

	// Invariant B: the employee holds no active asset of this type.
	holdsType, err := employeeHoldsTypeTx(ctx, tx, emp.ID, a.TipoActivoID)
	if err != nil {
		return nil, err
	}
	if holdsType {
		return nil, apperrors.ErrTypeConflictf(emp.ID, a.TipoActivoID)
	}

	create := tx.Assignment.Create().
		SetID(generateID()).
		SetActivoID(a.ID).
		SetEmployeeID(emp.ID).
		SetAssignedDate(time.Now()).
		SetAssignedByID(actor)
	if input.Notes != "" {
		create.SetNotes(input.Notes)
	}
	asg, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Partial unique index caught a concurrent assignment.
			return nil, apperrors.ErrAssetAssignedf(a.ID)
		}
		return nil, fmt.Errorf("create assignment: %w", err)
	}

	// Holder pointer: the employee's linked account, when one exists.
	// No linked account is not an error; the pointer is left unset.
	holder, err := userForEmployeeTx(ctx, tx, emp.ID)
	if err != nil {
		return nil, err
	}
	if holder != nil {
		if err := s.cache.SetHolder(ctx, tx, a.ID, &holder.ID); err != nil {
			return nil, err
		}
	}

	if err := s.auditLogger.RecordTx(ctx, tx, audit.Entry{
		ActivityType: "assignment.create",
		EntityType:   "assignment",
		EntityID:     asg.ID,
		UserID:       actor,
		Description:  fmt.Sprintf("asset %s assigned to %s %s", a.Hostname, emp.FirstName, emp.LastName),
		NewData:      audit.AssignmentSnapshot(ctx, s.client, asg),
	}); err != nil {
		return nil, err
	}
	return asg, nil
}

// Return closes an assignment. The returned timestamp and returning
// identity are set together, exactly once.
func (s *AssignmentService) Return(ctx context.Context, assignmentID string, returnDate *time.Time, actor string) (*ent.Assignment, error) {
	var returned *ent.Assignment
	txErr := withTx(ctx, s.client, func(tx *ent.Tx) error {
		asg, err := tx.Assignment.Get(ctx, assignmentID)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.NotFound(apperrors.CodeAssignmentNotFound, "assignment not found")
			}
			return fmt.Errorf("get assignment %s: %w", assignmentID, err)
		}
		if asg.ReturnedDate != nil {
			return apperrors.InvalidState(apperrors.CodeAlreadyReturned,
				"assignment has already been returned")
		}
		oldSnap := audit.AssignmentSnapshot(ctx, s.client, asg)

		when := time.Now()
		if returnDate != nil {
			when = *returnDate
		}
		after, err := tx.Assignment.UpdateOneID(assignmentID).
			SetReturnedDate(when).
			SetReturnedByID(actor).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("return assignment %s: %w", assignmentID, err)
		}
		returned = after

		// Recompute the holder pointer. Another active assignment on
		// the same asset should not exist given invariant A, but is
		// checked before clearing.
		remaining, err := tx.Assignment.Query().
			Where(
				assignment.ActivoIDEQ(asg.ActivoID),
				assignment.ReturnedDateIsNil(),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check remaining assignments: %w", err)
		}
		if !remaining {
			if err := s.cache.SetHolder(ctx, tx, asg.ActivoID, nil); err != nil {
				return err
			}
		}

		return s.auditLogger.RecordTx(ctx, tx, audit.Entry{
			ActivityType: "assignment.return",
			EntityType:   "assignment",
			EntityID:     assignmentID,
			UserID:       actor,
			Description:  "assignment returned",
			OldData:      oldSnap,
			NewData:      audit.AssignmentSnapshot(ctx, s.client, after),
		})
	})
	if txErr != nil {
		return nil, txErr
	}

	logger.Info("Assignment returned",
		zap.String("assignment_id", assignmentID),
		zap.String("actor", actor),
	)
	return returned, nil
}

// BulkAssignItem is one asset inside a bulk hand-over, optionally with
// field updates applied to the asset before it is assigned.
type BulkAssignItem struct {
	ActivoID string         `json:"activo_id"`
	Updates  *BulkItemEdits `json:"updates,omitempty"`
}

// BulkItemEdits are the asset edits allowed during a bulk hand-over.
type BulkItemEdits struct {
	FechaFinGarantia *time.Time    `json:"fecha_fin_garantia,omitempty"`
	Overrides        SpecOverrides `json:"overrides"`
}

// BulkAssign hands several assets to one employee with
// all-or-nothing semantics: if any asset in the batch is already
// assigned, or the batch would give the employee two assets of the same
// type (including conflicts between batch items), the whole call fails
// and nothing is persisted. Each per-asset edit is audited separately.
func (s *AssignmentService) BulkAssign(ctx context.Context, employeeID string, items []BulkAssignItem, actor string) ([]*ent.Assignment, error) {
	if employeeID == "" {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "employee_id is required")
	}
	if len(items) == 0 {
		return nil, apperrors.BadRequest(apperrors.CodeValidationFailed, "asset list is empty")
	}

	var created []*ent.Assignment
	txErr := withTx(ctx, s.client, func(tx *ent.Tx) error {
		created = nil

		emp, err := tx.Employee.Get(ctx, employeeID)
		if err != nil {
			if ent.IsNotFound(err) {
				return apperrors.NotFound(apperrors.CodeEmployeeNotFound, "employee not found")
			}
			return fmt.Errorf("get employee %s: %w", employeeID, err)
		}

		// Phase 1: validate the entire batch before writing anything.
		batchTypes := map[string]string{} // tipo_activo_id -> first activo_id
		assets := make([]*ent.Activo, 0, len(items))
		for _, item := range items {
			a, err := tx.Activo.Get(ctx, item.ActivoID)
			if err != nil {
				if ent.IsNotFound(err) {
					return apperrors.ErrAssetNotFoundf(item.ActivoID)
				}
				return fmt.Errorf("get asset %s: %w", item.ActivoID, err)
			}
			if a.Estado != activo.EstadoActivo {
				return apperrors.BadRequest(apperrors.CodeValidationFailed,
					"only active assets may be assigned: "+a.Hostname)
			}

			taken, err := tx.Assignment.Query().
				Where(
					assignment.ActivoIDEQ(a.ID),
					assignment.ReturnedDateIsNil(),
				).
				Exist(ctx)
			if err != nil {
				return fmt.Errorf("check active assignment: %w", err)
			}
			if taken {
				return apperrors.ErrAssetAssignedf(a.ID)
			}

			holdsType, err := employeeHoldsTypeTx(ctx, tx, emp.ID, a.TipoActivoID)
			if err != nil {
				return err
			}
			if holdsType {
				return apperrors.ErrTypeConflictf(emp.ID, a.TipoActivoID)
			}
			// Conflicts inside the batch itself count too.
			if first, dup := batchTypes[a.TipoActivoID]; dup {
				return apperrors.Conflict(apperrors.CodeBulkAssignFailed,
					fmt.Sprintf("batch contains two assets of the same type (%s, %s)", first, a.ID))
			}
			batchTypes[a.TipoActivoID] = a.ID
			assets = append(assets, a)
		}

		holder, err := userForEmployeeTx(ctx, tx, emp.ID)
		if err != nil {
			return err
		}

		// Phase 2: apply edits and create every assignment.
		for i, item := range items {
			a := assets[i]
			if item.Updates != nil {
				if err := s.applyBulkEditsTx(ctx, tx, a, *item.Updates, actor); err != nil {
					return err
				}
			}

			asg, err := tx.Assignment.Create().
				SetID(generateID()).
				SetActivoID(a.ID).
				SetEmployeeID(emp.ID).
				SetAssignedDate(time.Now()).
				SetAssignedByID(actor).
				Save(ctx)
			if err != nil {
				if ent.IsConstraintError(err) {
					return apperrors.ErrAssetAssignedf(a.ID)
				}
				return fmt.Errorf("create assignment: %w", err)
			}

			if holder != nil {
				if err := s.cache.SetHolder(ctx, tx, a.ID, &holder.ID); err != nil {
					return err
				}
			}

			if err := s.auditLogger.RecordTx(ctx, tx, audit.Entry{
				ActivityType: "assignment.create",
				EntityType:   "assignment",
				EntityID:     asg.ID,
				UserID:       actor,
				Description:  fmt.Sprintf("asset %s bulk-assigned to %s %s", a.Hostname, emp.FirstName, emp.LastName),
				NewData:      audit.AssignmentSnapshot(ctx, s.client, asg),
			}); err != nil {
				return err
			}
			created = append(created, asg)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	logger.Info("Bulk assignment completed",
		zap.String("employee_id", employeeID),
		zap.Int("count", len(created)),
	)
	return created, nil
}

// applyBulkEditsTx applies per-asset edits during a bulk hand-over and
// audits each changed asset separately.
func (s *AssignmentService) applyBulkEditsTx(ctx context.Context, tx *ent.Tx, a *ent.Activo, edits BulkItemEdits, actor string) error {
	oldSnap := audit.AssetSnapshot(ctx, s.client, a)

	update := tx.Activo.UpdateOneID(a.ID)
	if edits.FechaFinGarantia != nil {
		update.SetFechaFinGarantia(*edits.FechaFinGarantia)
	}
	applyOverrides(update.Mutation(), edits.Overrides)

	after, err := update.Save(ctx)
	if err != nil {
		return fmt.Errorf("apply bulk edits to %s: %w", a.ID, err)
	}

	oldChanged, newChanged := audit.Diff(oldSnap, audit.AssetSnapshot(ctx, s.client, after))
	if len(oldChanged) == 0 && len(newChanged) == 0 {
		return nil // unchanged values are skipped, not audited
	}
	return s.auditLogger.RecordTx(ctx, tx, audit.Entry{
		ActivityType: "asset.update",
		EntityType:   "activo",
		EntityID:     a.ID,
		UserID:       actor,
		Description:  "asset updated during bulk assignment",
		OldData:      oldChanged,
		NewData:      newChanged,
	})
}

// AvailableAssets returns active assets with zero active assignments.
func (s *AssignmentService) AvailableAssets(ctx context.Context, filter AssetFilter) ([]*ent.Activo, error) {
	assignedIDs, err := s.client.Assignment.Query().
		Where(assignment.ReturnedDateIsNil()).
		Select(assignment.FieldActivoID).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active assignments: %w", err)
	}

	q := s.client.Activo.Query().
		Where(activo.EstadoEQ(activo.EstadoActivo))
	if len(assignedIDs) > 0 {
		q = q.Where(activo.IDNotIn(assignedIDs...))
	}
	if filter.TipoActivoID != "" {
		q = q.Where(activo.TipoActivoIDEQ(filter.TipoActivoID))
	}
	if filter.Search != "" {
		q = q.Where(activo.Or(
			activo.SerieContainsFold(filter.Search),
			activo.HostnameContainsFold(filter.Search),
		))
	}
	assets, err := q.Order(ent.Asc(activo.FieldHostname)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query available assets: %w", err)
	}
	return assets, nil
}

// AssignmentFilter narrows List results.
type AssignmentFilter struct {
	EmployeeID string
	ActivoID   string
	ActiveOnly bool
	Limit      int
	Offset     int
}

// List returns assignments matching the filter, newest first.
func (s *AssignmentService) List(ctx context.Context, filter AssignmentFilter) ([]*ent.Assignment, error) {
	q := s.client.Assignment.Query()
	if filter.EmployeeID != "" {
		q = q.Where(assignment.EmployeeIDEQ(filter.EmployeeID))
	}
	if filter.ActivoID != "" {
		q = q.Where(assignment.ActivoIDEQ(filter.ActivoID))
	}
	if filter.ActiveOnly {
		q = q.Where(assignment.ReturnedDateIsNil())
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}
	assignments, err := q.Order(ent.Desc(assignment.FieldAssignedDate)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, nil
}

// employeeHoldsTypeTx reports whether the employee has an active
// assignment for an asset of the given type.
func employeeHoldsTypeTx(ctx context.Context, tx *ent.Tx, employeeID, tipoActivoID string) (bool, error) {
	heldIDs, err := tx.Assignment.Query().
		Where(
			assignment.EmployeeIDEQ(employeeID),
			assignment.ReturnedDateIsNil(),
		).
		Select(assignment.FieldActivoID).
		Strings(ctx)
	if err != nil {
		return false, fmt.Errorf("query employee assignments: %w", err)
	}
	if len(heldIDs) == 0 {
		return false, nil
	}
	exists, err := tx.Activo.Query().
		Where(
			activo.IDIn(heldIDs...),
			activo.TipoActivoIDEQ(tipoActivoID),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("check held asset types: %w", err)
	}
	return exists, nil
}

// userForEmployeeTx resolves the identity account linked to an
// employee. Zero accounts is a normal condition, reported as nil.
func userForEmployeeTx(ctx context.Context, tx *ent.Tx, employeeID string) (*ent.User, error) {
	u, err := tx.User.Query().
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
