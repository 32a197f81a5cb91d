// Code generated by ent, DO NOT EDIT.

package assignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"fincatech.io/itam/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldUpdatedAt, v))
}

// ActivoID applies equality check predicate on the "activo_id" field. It's identical to ActivoIDEQ.
func ActivoID(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldActivoID, v))
}

// EmployeeID applies equality check predicate on the "employee_id" field. It's identical to EmployeeIDEQ.
func EmployeeID(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldEmployeeID, v))
}

// AssignedDate applies equality check predicate on the "assigned_date" field. It's identical to AssignedDateEQ.
func AssignedDate(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAssignedDate, v))
}

// ReturnedDate applies equality check predicate on the "returned_date" field. It's identical to ReturnedDateEQ.
func ReturnedDate(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldReturnedDate, v))
}

// AssignedByID applies equality check predicate on the "assigned_by_id" field. It's identical to AssignedByIDEQ.
func AssignedByID(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAssignedByID, v))
}

// ReturnedByID applies equality check predicate on the "returned_by_id" field. It's identical to ReturnedByIDEQ.
func ReturnedByID(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldReturnedByID, v))
}

// Notes applies equality check predicate on the "notes" field. It's identical to NotesEQ.
func Notes(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldNotes, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldUpdatedAt, v))
}

// ActivoIDEQ applies the EQ predicate on the "activo_id" field.
func ActivoIDEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldActivoID, v))
}

// ActivoIDNEQ applies the NEQ predicate on the "activo_id" field.
func ActivoIDNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldActivoID, v))
}

// ActivoIDIn applies the In predicate on the "activo_id" field.
func ActivoIDIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldActivoID, vs...))
}

// ActivoIDNotIn applies the NotIn predicate on the "activo_id" field.
func ActivoIDNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldActivoID, vs...))
}

// ActivoIDGT applies the GT predicate on the "activo_id" field.
func ActivoIDGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldActivoID, v))
}

// ActivoIDGTE applies the GTE predicate on the "activo_id" field.
func ActivoIDGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldActivoID, v))
}

// ActivoIDLT applies the LT predicate on the "activo_id" field.
func ActivoIDLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldActivoID, v))
}

// ActivoIDLTE applies the LTE predicate on the "activo_id" field.
func ActivoIDLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldActivoID, v))
}

// ActivoIDContains applies the Contains predicate on the "activo_id" field.
func ActivoIDContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldActivoID, v))
}

// ActivoIDHasPrefix applies the HasPrefix predicate on the "activo_id" field.
func ActivoIDHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldActivoID, v))
}

// ActivoIDHasSuffix applies the HasSuffix predicate on the "activo_id" field.
func ActivoIDHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldActivoID, v))
}

// ActivoIDEqualFold applies the EqualFold predicate on the "activo_id" field.
func ActivoIDEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldActivoID, v))
}

// ActivoIDContainsFold applies the ContainsFold predicate on the "activo_id" field.
func ActivoIDContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldActivoID, v))
}

// EmployeeIDEQ applies the EQ predicate on the "employee_id" field.
func EmployeeIDEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldEmployeeID, v))
}

// EmployeeIDNEQ applies the NEQ predicate on the "employee_id" field.
func EmployeeIDNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldEmployeeID, v))
}

// EmployeeIDIn applies the In predicate on the "employee_id" field.
func EmployeeIDIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldEmployeeID, vs...))
}

// EmployeeIDNotIn applies the NotIn predicate on the "employee_id" field.
func EmployeeIDNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldEmployeeID, vs...))
}

// EmployeeIDGT applies the GT predicate on the "employee_id" field.
func EmployeeIDGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldEmployeeID, v))
}

// EmployeeIDGTE applies the GTE predicate on the "employee_id" field.
func EmployeeIDGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldEmployeeID, v))
}

// EmployeeIDLT applies the LT predicate on the "employee_id" field.
func EmployeeIDLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldEmployeeID, v))
}

// EmployeeIDLTE applies the LTE predicate on the "employee_id" field.
func EmployeeIDLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldEmployeeID, v))
}

// EmployeeIDContains applies the Contains predicate on the "employee_id" field.
func EmployeeIDContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldEmployeeID, v))
}

// EmployeeIDHasPrefix applies the HasPrefix predicate on the "employee_id" field.
func EmployeeIDHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldEmployeeID, v))
}

// EmployeeIDHasSuffix applies the HasSuffix predicate on the "employee_id" field.
func EmployeeIDHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldEmployeeID, v))
}

// EmployeeIDEqualFold applies the EqualFold predicate on the "employee_id" field.
func EmployeeIDEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldEmployeeID, v))
}

// EmployeeIDContainsFold applies the ContainsFold predicate on the "employee_id" field.
func EmployeeIDContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldEmployeeID, v))
}

// AssignedDateEQ applies the EQ predicate on the "assigned_date" field.
func AssignedDateEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAssignedDate, v))
}

// AssignedDateNEQ applies the NEQ predicate on the "assigned_date" field.
func AssignedDateNEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldAssignedDate, v))
}

// AssignedDateIn applies the In predicate on the "assigned_date" field.
func AssignedDateIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldAssignedDate, vs...))
}

// AssignedDateNotIn applies the NotIn predicate on the "assigned_date" field.
func AssignedDateNotIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldAssignedDate, vs...))
}

// AssignedDateGT applies the GT predicate on the "assigned_date" field.
func AssignedDateGT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldAssignedDate, v))
}

// AssignedDateGTE applies the GTE predicate on the "assigned_date" field.
func AssignedDateGTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldAssignedDate, v))
}

// AssignedDateLT applies the LT predicate on the "assigned_date" field.
func AssignedDateLT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldAssignedDate, v))
}

// AssignedDateLTE applies the LTE predicate on the "assigned_date" field.
func AssignedDateLTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldAssignedDate, v))
}

// ReturnedDateEQ applies the EQ predicate on the "returned_date" field.
func ReturnedDateEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldReturnedDate, v))
}

// ReturnedDateNEQ applies the NEQ predicate on the "returned_date" field.
func ReturnedDateNEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldReturnedDate, v))
}

// ReturnedDateIn applies the In predicate on the "returned_date" field.
func ReturnedDateIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldReturnedDate, vs...))
}

// ReturnedDateNotIn applies the NotIn predicate on the "returned_date" field.
func ReturnedDateNotIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldReturnedDate, vs...))
}

// ReturnedDateGT applies the GT predicate on the "returned_date" field.
func ReturnedDateGT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldReturnedDate, v))
}

// ReturnedDateGTE applies the GTE predicate on the "returned_date" field.
func ReturnedDateGTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldReturnedDate, v))
}

// ReturnedDateLT applies the LT predicate on the "returned_date" field.
func ReturnedDateLT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldReturnedDate, v))
}

// ReturnedDateLTE applies the LTE predicate on the "returned_date" field.
func ReturnedDateLTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldReturnedDate, v))
}

// ReturnedDateIsNil applies the IsNil predicate on the "returned_date" field.
func ReturnedDateIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldReturnedDate))
}

// ReturnedDateNotNil applies the NotNil predicate on the "returned_date" field.
func ReturnedDateNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldReturnedDate))
}

// AssignedByIDEQ applies the EQ predicate on the "assigned_by_id" field.
func AssignedByIDEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAssignedByID, v))
}

// AssignedByIDNEQ applies the NEQ predicate on the "assigned_by_id" field.
func AssignedByIDNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldAssignedByID, v))
}

// AssignedByIDIn applies the In predicate on the "assigned_by_id" field.
func AssignedByIDIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldAssignedByID, vs...))
}

// AssignedByIDNotIn applies the NotIn predicate on the "assigned_by_id" field.
func AssignedByIDNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldAssignedByID, vs...))
}

// AssignedByIDGT applies the GT predicate on the "assigned_by_id" field.
func AssignedByIDGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldAssignedByID, v))
}

// AssignedByIDGTE applies the GTE predicate on the "assigned_by_id" field.
func AssignedByIDGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldAssignedByID, v))
}

// AssignedByIDLT applies the LT predicate on the "assigned_by_id" field.
func AssignedByIDLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldAssignedByID, v))
}

// AssignedByIDLTE applies the LTE predicate on the "assigned_by_id" field.
func AssignedByIDLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldAssignedByID, v))
}

// AssignedByIDContains applies the Contains predicate on the "assigned_by_id" field.
func AssignedByIDContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldAssignedByID, v))
}

// AssignedByIDHasPrefix applies the HasPrefix predicate on the "assigned_by_id" field.
func AssignedByIDHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldAssignedByID, v))
}

// AssignedByIDHasSuffix applies the HasSuffix predicate on the "assigned_by_id" field.
func AssignedByIDHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldAssignedByID, v))
}

// AssignedByIDEqualFold applies the EqualFold predicate on the "assigned_by_id" field.
func AssignedByIDEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldAssignedByID, v))
}

// AssignedByIDContainsFold applies the ContainsFold predicate on the "assigned_by_id" field.
func AssignedByIDContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldAssignedByID, v))
}

// ReturnedByIDEQ applies the EQ predicate on the "returned_by_id" field.
func ReturnedByIDEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldReturnedByID, v))
}

// ReturnedByIDNEQ applies the NEQ predicate on the "returned_by_id" field.
func ReturnedByIDNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldReturnedByID, v))
}

// ReturnedByIDIn applies the In predicate on the "returned_by_id" field.
func ReturnedByIDIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldReturnedByID, vs...))
}

// ReturnedByIDNotIn applies the NotIn predicate on the "returned_by_id" field.
func ReturnedByIDNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldReturnedByID, vs...))
}

// ReturnedByIDGT applies the GT predicate on the "returned_by_id" field.
func ReturnedByIDGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldReturnedByID, v))
}

// ReturnedByIDGTE applies the GTE predicate on the "returned_by_id" field.
func ReturnedByIDGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldReturnedByID, v))
}

// ReturnedByIDLT applies the LT predicate on the "returned_by_id" field.
func ReturnedByIDLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldReturnedByID, v))
}

// ReturnedByIDLTE applies the LTE predicate on the "returned_by_id" field.
func ReturnedByIDLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldReturnedByID, v))
}

// ReturnedByIDContains applies the Contains predicate on the "returned_by_id" field.
func ReturnedByIDContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldReturnedByID, v))
}

// ReturnedByIDHasPrefix applies the HasPrefix predicate on the "returned_by_id" field.
func ReturnedByIDHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldReturnedByID, v))
}

// ReturnedByIDHasSuffix applies the HasSuffix predicate on the "returned_by_id" field.
func ReturnedByIDHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldReturnedByID, v))
}

// ReturnedByIDIsNil applies the IsNil predicate on the "returned_by_id" field.
func ReturnedByIDIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldReturnedByID))
}

// ReturnedByIDNotNil applies the NotNil predicate on the "returned_by_id" field.
func ReturnedByIDNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldReturnedByID))
}

// ReturnedByIDEqualFold applies the EqualFold predicate on the "returned_by_id" field.
func ReturnedByIDEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldReturnedByID, v))
}

// ReturnedByIDContainsFold applies the ContainsFold predicate on the "returned_by_id" field.
func ReturnedByIDContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldReturnedByID, v))
}

// NotesEQ applies the EQ predicate on the "notes" field.
func NotesEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldNotes, v))
}

// NotesNEQ applies the NEQ predicate on the "notes" field.
func NotesNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldNotes, v))
}

// NotesIn applies the In predicate on the "notes" field.
func NotesIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldNotes, vs...))
}

// NotesNotIn applies the NotIn predicate on the "notes" field.
func NotesNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldNotes, vs...))
}

// NotesGT applies the GT predicate on the "notes" field.
func NotesGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldNotes, v))
}

// NotesGTE applies the GTE predicate on the "notes" field.
func NotesGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldNotes, v))
}

// NotesLT applies the LT predicate on the "notes" field.
func NotesLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldNotes, v))
}

// NotesLTE applies the LTE predicate on the "notes" field.
func NotesLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldNotes, v))
}

// NotesContains applies the Contains predicate on the "notes" field.
func NotesContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldNotes, v))
}

// NotesHasPrefix applies the HasPrefix predicate on the "notes" field.
func NotesHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldNotes, v))
}

// NotesHasSuffix applies the HasSuffix predicate on the "notes" field.
func NotesHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldNotes, v))
}

// NotesIsNil applies the IsNil predicate on the "notes" field.
func NotesIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldNotes))
}

// NotesNotNil applies the NotNil predicate on the "notes" field.
func NotesNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldNotes))
}

// NotesEqualFold applies the EqualFold predicate on the "notes" field.
func NotesEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldNotes, v))
}

// NotesContainsFold applies the ContainsFold predicate on the "notes" field.
func NotesContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldNotes, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.NotPredicates(p))
}
