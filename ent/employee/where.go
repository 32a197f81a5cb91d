// Code generated by ent, DO NOT EDIT.

package employee

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"fincatech.io/itam/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Employee {
	return predicate.Employee(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Employee {
	return predicate.Employee(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmployeeNumber applies equality check predicate on the "employee_number" field. It's identical to EmployeeNumberEQ.
func EmployeeNumber(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldEmployeeNumber, v))
}

// FirstName applies equality check predicate on the "first_name" field. It's identical to FirstNameEQ.
func FirstName(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldFirstName, v))
}

// LastName applies equality check predicate on the "last_name" field. It's identical to LastNameEQ.
func LastName(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldLastName, v))
}

// RegionID applies equality check predicate on the "region_id" field. It's identical to RegionIDEQ.
func RegionID(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldRegionID, v))
}

// FincaID applies equality check predicate on the "finca_id" field. It's identical to FincaIDEQ.
func FincaID(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldFincaID, v))
}

// DepartamentoID applies equality check predicate on the "departamento_id" field. It's identical to DepartamentoIDEQ.
func DepartamentoID(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldDepartamentoID, v))
}

// AreaID applies equality check predicate on the "area_id" field. It's identical to AreaIDEQ.
func AreaID(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldAreaID, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldStartDate, v))
}

// SupervisorID applies equality check predicate on the "supervisor_id" field. It's identical to SupervisorIDEQ.
func SupervisorID(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldSupervisorID, v))
}

// DocumentPath applies equality check predicate on the "document_path" field. It's identical to DocumentPathEQ.
func DocumentPath(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldDocumentPath, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldUpdatedAt, v))
}

// EmployeeNumberEQ applies the EQ predicate on the "employee_number" field.
func EmployeeNumberEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldEmployeeNumber, v))
}

// EmployeeNumberNEQ applies the NEQ predicate on the "employee_number" field.
func EmployeeNumberNEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldEmployeeNumber, v))
}

// EmployeeNumberIn applies the In predicate on the "employee_number" field.
func EmployeeNumberIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldEmployeeNumber, vs...))
}

// EmployeeNumberNotIn applies the NotIn predicate on the "employee_number" field.
func EmployeeNumberNotIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldEmployeeNumber, vs...))
}

// EmployeeNumberGT applies the GT predicate on the "employee_number" field.
func EmployeeNumberGT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldEmployeeNumber, v))
}

// EmployeeNumberGTE applies the GTE predicate on the "employee_number" field.
func EmployeeNumberGTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldEmployeeNumber, v))
}

// EmployeeNumberLT applies the LT predicate on the "employee_number" field.
func EmployeeNumberLT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldEmployeeNumber, v))
}

// EmployeeNumberLTE applies the LTE predicate on the "employee_number" field.
func EmployeeNumberLTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldEmployeeNumber, v))
}

// EmployeeNumberContains applies the Contains predicate on the "employee_number" field.
func EmployeeNumberContains(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContains(FieldEmployeeNumber, v))
}

// EmployeeNumberHasPrefix applies the HasPrefix predicate on the "employee_number" field.
func EmployeeNumberHasPrefix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasPrefix(FieldEmployeeNumber, v))
}

// EmployeeNumberHasSuffix applies the HasSuffix predicate on the "employee_number" field.
func EmployeeNumberHasSuffix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasSuffix(FieldEmployeeNumber, v))
}

// EmployeeNumberEqualFold applies the EqualFold predicate on the "employee_number" field.
func EmployeeNumberEqualFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEqualFold(FieldEmployeeNumber, v))
}

// EmployeeNumberContainsFold applies the ContainsFold predicate on the "employee_number" field.
func EmployeeNumberContainsFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContainsFold(FieldEmployeeNumber, v))
}

// FirstNameEQ applies the EQ predicate on the "first_name" field.
func FirstNameEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldFirstName, v))
}

// FirstNameNEQ applies the NEQ predicate on the "first_name" field.
func FirstNameNEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldFirstName, v))
}

// FirstNameIn applies the In predicate on the "first_name" field.
func FirstNameIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldFirstName, vs...))
}

// FirstNameNotIn applies the NotIn predicate on the "first_name" field.
func FirstNameNotIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldFirstName, vs...))
}

// FirstNameGT applies the GT predicate on the "first_name" field.
func FirstNameGT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldFirstName, v))
}

// FirstNameGTE applies the GTE predicate on the "first_name" field.
func FirstNameGTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldFirstName, v))
}

// FirstNameLT applies the LT predicate on the "first_name" field.
func FirstNameLT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldFirstName, v))
}

// FirstNameLTE applies the LTE predicate on the "first_name" field.
func FirstNameLTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldFirstName, v))
}

// FirstNameContains applies the Contains predicate on the "first_name" field.
func FirstNameContains(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContains(FieldFirstName, v))
}

// FirstNameHasPrefix applies the HasPrefix predicate on the "first_name" field.
func FirstNameHasPrefix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasPrefix(FieldFirstName, v))
}

// FirstNameHasSuffix applies the HasSuffix predicate on the "first_name" field.
func FirstNameHasSuffix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasSuffix(FieldFirstName, v))
}

// FirstNameEqualFold applies the EqualFold predicate on the "first_name" field.
func FirstNameEqualFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEqualFold(FieldFirstName, v))
}

// FirstNameContainsFold applies the ContainsFold predicate on the "first_name" field.
func FirstNameContainsFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContainsFold(FieldFirstName, v))
}

// LastNameEQ applies the EQ predicate on the "last_name" field.
func LastNameEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldLastName, v))
}

// LastNameNEQ applies the NEQ predicate on the "last_name" field.
func LastNameNEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldLastName, v))
}

// LastNameIn applies the In predicate on the "last_name" field.
func LastNameIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldLastName, vs...))
}

// LastNameNotIn applies the NotIn predicate on the "last_name" field.
func LastNameNotIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldLastName, vs...))
}

// LastNameGT applies the GT predicate on the "last_name" field.
func LastNameGT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldLastName, v))
}

// LastNameGTE applies the GTE predicate on the "last_name" field.
func LastNameGTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldLastName, v))
}

// LastNameLT applies the LT predicate on the "last_name" field.
func LastNameLT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldLastName, v))
}

// LastNameLTE applies the LTE predicate on the "last_name" field.
func LastNameLTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldLastName, v))
}

// LastNameContains applies the Contains predicate on the "last_name" field.
func LastNameContains(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContains(FieldLastName, v))
}

// LastNameHasPrefix applies the HasPrefix predicate on the "last_name" field.
func LastNameHasPrefix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasPrefix(FieldLastName, v))
}

// LastNameHasSuffix applies the HasSuffix predicate on the "last_name" field.
func LastNameHasSuffix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasSuffix(FieldLastName, v))
}

// LastNameEqualFold applies the EqualFold predicate on the "last_name" field.
func LastNameEqualFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEqualFold(FieldLastName, v))
}

// LastNameContainsFold applies the ContainsFold predicate on the "last_name" field.
func LastNameContainsFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContainsFold(FieldLastName, v))
}

// RegionIDEQ applies the EQ predicate on the "region_id" field.
func RegionIDEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldRegionID, v))
}

// RegionIDNEQ applies the NEQ predicate on the "region_id" field.
func RegionIDNEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldRegionID, v))
}

// RegionIDIn applies the In predicate on the "region_id" field.
func RegionIDIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldRegionID, vs...))
}

// RegionIDNotIn applies the NotIn predicate on the "region_id" field.
func RegionIDNotIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldRegionID, vs...))
}

// RegionIDGT applies the GT predicate on the "region_id" field.
func RegionIDGT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldRegionID, v))
}

// RegionIDGTE applies the GTE predicate on the "region_id" field.
func RegionIDGTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldRegionID, v))
}

// RegionIDLT applies the LT predicate on the "region_id" field.
func RegionIDLT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldRegionID, v))
}

// RegionIDLTE applies the LTE predicate on the "region_id" field.
func RegionIDLTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldRegionID, v))
}

// RegionIDContains applies the Contains predicate on the "region_id" field.
func RegionIDContains(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContains(FieldRegionID, v))
}

// RegionIDHasPrefix applies the HasPrefix predicate on the "region_id" field.
func RegionIDHasPrefix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasPrefix(FieldRegionID, v))
}

// RegionIDHasSuffix applies the HasSuffix predicate on the "region_id" field.
func RegionIDHasSuffix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasSuffix(FieldRegionID, v))
}

// RegionIDIsNil applies the IsNil predicate on the "region_id" field.
func RegionIDIsNil() predicate.Employee {
	return predicate.Employee(sql.FieldIsNull(FieldRegionID))
}

// RegionIDNotNil applies the NotNil predicate on the "region_id" field.
func RegionIDNotNil() predicate.Employee {
	return predicate.Employee(sql.FieldNotNull(FieldRegionID))
}

// RegionIDEqualFold applies the EqualFold predicate on the "region_id" field.
func RegionIDEqualFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEqualFold(FieldRegionID, v))
}

// RegionIDContainsFold applies the ContainsFold predicate on the "region_id" field.
func RegionIDContainsFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContainsFold(FieldRegionID, v))
}

// FincaIDEQ applies the EQ predicate on the "finca_id" field.
func FincaIDEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldFincaID, v))
}

// FincaIDNEQ applies the NEQ predicate on the "finca_id" field.
func FincaIDNEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldFincaID, v))
}

// FincaIDIn applies the In predicate on the "finca_id" field.
func FincaIDIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldFincaID, vs...))
}

// FincaIDNotIn applies the NotIn predicate on the "finca_id" field.
func FincaIDNotIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldFincaID, vs...))
}

// FincaIDGT applies the GT predicate on the "finca_id" field.
func FincaIDGT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldFincaID, v))
}

// FincaIDGTE applies the GTE predicate on the "finca_id" field.
func FincaIDGTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldFincaID, v))
}

// FincaIDLT applies the LT predicate on the "finca_id" field.
func FincaIDLT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldFincaID, v))
}

// FincaIDLTE applies the LTE predicate on the "finca_id" field.
func FincaIDLTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldFincaID, v))
}

// FincaIDContains applies the Contains predicate on the "finca_id" field.
func FincaIDContains(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContains(FieldFincaID, v))
}

// FincaIDHasPrefix applies the HasPrefix predicate on the "finca_id" field.
func FincaIDHasPrefix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasPrefix(FieldFincaID, v))
}

// FincaIDHasSuffix applies the HasSuffix predicate on the "finca_id" field.
func FincaIDHasSuffix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasSuffix(FieldFincaID, v))
}

// FincaIDIsNil applies the IsNil predicate on the "finca_id" field.
func FincaIDIsNil() predicate.Employee {
	return predicate.Employee(sql.FieldIsNull(FieldFincaID))
}

// FincaIDNotNil applies the NotNil predicate on the "finca_id" field.
func FincaIDNotNil() predicate.Employee {
	return predicate.Employee(sql.FieldNotNull(FieldFincaID))
}

// FincaIDEqualFold applies the EqualFold predicate on the "finca_id" field.
func FincaIDEqualFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEqualFold(FieldFincaID, v))
}

// FincaIDContainsFold applies the ContainsFold predicate on the "finca_id" field.
func FincaIDContainsFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContainsFold(FieldFincaID, v))
}

// DepartamentoIDEQ applies the EQ predicate on the "departamento_id" field.
func DepartamentoIDEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldDepartamentoID, v))
}

// DepartamentoIDNEQ applies the NEQ predicate on the "departamento_id" field.
func DepartamentoIDNEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldDepartamentoID, v))
}

// DepartamentoIDIn applies the In predicate on the "departamento_id" field.
func DepartamentoIDIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldDepartamentoID, vs...))
}

// DepartamentoIDNotIn applies the NotIn predicate on the "departamento_id" field.
func DepartamentoIDNotIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldDepartamentoID, vs...))
}

// DepartamentoIDGT applies the GT predicate on the "departamento_id" field.
func DepartamentoIDGT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldDepartamentoID, v))
}

// DepartamentoIDGTE applies the GTE predicate on the "departamento_id" field.
func DepartamentoIDGTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldDepartamentoID, v))
}

// DepartamentoIDLT applies the LT predicate on the "departamento_id" field.
func DepartamentoIDLT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldDepartamentoID, v))
}

// DepartamentoIDLTE applies the LTE predicate on the "departamento_id" field.
func DepartamentoIDLTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldDepartamentoID, v))
}

// DepartamentoIDContains applies the Contains predicate on the "departamento_id" field.
func DepartamentoIDContains(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContains(FieldDepartamentoID, v))
}

// DepartamentoIDHasPrefix applies the HasPrefix predicate on the "departamento_id" field.
func DepartamentoIDHasPrefix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasPrefix(FieldDepartamentoID, v))
}

// DepartamentoIDHasSuffix applies the HasSuffix predicate on the "departamento_id" field.
func DepartamentoIDHasSuffix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasSuffix(FieldDepartamentoID, v))
}

// DepartamentoIDIsNil applies the IsNil predicate on the "departamento_id" field.
func DepartamentoIDIsNil() predicate.Employee {
	return predicate.Employee(sql.FieldIsNull(FieldDepartamentoID))
}

// DepartamentoIDNotNil applies the NotNil predicate on the "departamento_id" field.
func DepartamentoIDNotNil() predicate.Employee {
	return predicate.Employee(sql.FieldNotNull(FieldDepartamentoID))
}

// DepartamentoIDEqualFold applies the EqualFold predicate on the "departamento_id" field.
func DepartamentoIDEqualFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEqualFold(FieldDepartamentoID, v))
}

// DepartamentoIDContainsFold applies the ContainsFold predicate on the "departamento_id" field.
func DepartamentoIDContainsFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContainsFold(FieldDepartamentoID, v))
}

// AreaIDEQ applies the EQ predicate on the "area_id" field.
func AreaIDEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldAreaID, v))
}

// AreaIDNEQ applies the NEQ predicate on the "area_id" field.
func AreaIDNEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldAreaID, v))
}

// AreaIDIn applies the In predicate on the "area_id" field.
func AreaIDIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldAreaID, vs...))
}

// AreaIDNotIn applies the NotIn predicate on the "area_id" field.
func AreaIDNotIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldAreaID, vs...))
}

// AreaIDGT applies the GT predicate on the "area_id" field.
func AreaIDGT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldAreaID, v))
}

// AreaIDGTE applies the GTE predicate on the "area_id" field.
func AreaIDGTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldAreaID, v))
}

// AreaIDLT applies the LT predicate on the "area_id" field.
func AreaIDLT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldAreaID, v))
}

// AreaIDLTE applies the LTE predicate on the "area_id" field.
func AreaIDLTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldAreaID, v))
}

// AreaIDContains applies the Contains predicate on the "area_id" field.
func AreaIDContains(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContains(FieldAreaID, v))
}

// AreaIDHasPrefix applies the HasPrefix predicate on the "area_id" field.
func AreaIDHasPrefix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasPrefix(FieldAreaID, v))
}

// AreaIDHasSuffix applies the HasSuffix predicate on the "area_id" field.
func AreaIDHasSuffix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasSuffix(FieldAreaID, v))
}

// AreaIDIsNil applies the IsNil predicate on the "area_id" field.
func AreaIDIsNil() predicate.Employee {
	return predicate.Employee(sql.FieldIsNull(FieldAreaID))
}

// AreaIDNotNil applies the NotNil predicate on the "area_id" field.
func AreaIDNotNil() predicate.Employee {
	return predicate.Employee(sql.FieldNotNull(FieldAreaID))
}

// AreaIDEqualFold applies the EqualFold predicate on the "area_id" field.
func AreaIDEqualFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEqualFold(FieldAreaID, v))
}

// AreaIDContainsFold applies the ContainsFold predicate on the "area_id" field.
func AreaIDContainsFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContainsFold(FieldAreaID, v))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v time.Time) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldStartDate, v))
}

// StartDateIsNil applies the IsNil predicate on the "start_date" field.
func StartDateIsNil() predicate.Employee {
	return predicate.Employee(sql.FieldIsNull(FieldStartDate))
}

// StartDateNotNil applies the NotNil predicate on the "start_date" field.
func StartDateNotNil() predicate.Employee {
	return predicate.Employee(sql.FieldNotNull(FieldStartDate))
}

// SupervisorIDEQ applies the EQ predicate on the "supervisor_id" field.
func SupervisorIDEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldSupervisorID, v))
}

// SupervisorIDNEQ applies the NEQ predicate on the "supervisor_id" field.
func SupervisorIDNEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldSupervisorID, v))
}

// SupervisorIDIn applies the In predicate on the "supervisor_id" field.
func SupervisorIDIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldSupervisorID, vs...))
}

// SupervisorIDNotIn applies the NotIn predicate on the "supervisor_id" field.
func SupervisorIDNotIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldSupervisorID, vs...))
}

// SupervisorIDGT applies the GT predicate on the "supervisor_id" field.
func SupervisorIDGT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldSupervisorID, v))
}

// SupervisorIDGTE applies the GTE predicate on the "supervisor_id" field.
func SupervisorIDGTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldSupervisorID, v))
}

// SupervisorIDLT applies the LT predicate on the "supervisor_id" field.
func SupervisorIDLT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldSupervisorID, v))
}

// SupervisorIDLTE applies the LTE predicate on the "supervisor_id" field.
func SupervisorIDLTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldSupervisorID, v))
}

// SupervisorIDContains applies the Contains predicate on the "supervisor_id" field.
func SupervisorIDContains(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContains(FieldSupervisorID, v))
}

// SupervisorIDHasPrefix applies the HasPrefix predicate on the "supervisor_id" field.
func SupervisorIDHasPrefix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasPrefix(FieldSupervisorID, v))
}

// SupervisorIDHasSuffix applies the HasSuffix predicate on the "supervisor_id" field.
func SupervisorIDHasSuffix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasSuffix(FieldSupervisorID, v))
}

// SupervisorIDIsNil applies the IsNil predicate on the "supervisor_id" field.
func SupervisorIDIsNil() predicate.Employee {
	return predicate.Employee(sql.FieldIsNull(FieldSupervisorID))
}

// SupervisorIDNotNil applies the NotNil predicate on the "supervisor_id" field.
func SupervisorIDNotNil() predicate.Employee {
	return predicate.Employee(sql.FieldNotNull(FieldSupervisorID))
}

// SupervisorIDEqualFold applies the EqualFold predicate on the "supervisor_id" field.
func SupervisorIDEqualFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEqualFold(FieldSupervisorID, v))
}

// SupervisorIDContainsFold applies the ContainsFold predicate on the "supervisor_id" field.
func SupervisorIDContainsFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContainsFold(FieldSupervisorID, v))
}

// DocumentPathEQ applies the EQ predicate on the "document_path" field.
func DocumentPathEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEQ(FieldDocumentPath, v))
}

// DocumentPathNEQ applies the NEQ predicate on the "document_path" field.
func DocumentPathNEQ(v string) predicate.Employee {
	return predicate.Employee(sql.FieldNEQ(FieldDocumentPath, v))
}

// DocumentPathIn applies the In predicate on the "document_path" field.
func DocumentPathIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldIn(FieldDocumentPath, vs...))
}

// DocumentPathNotIn applies the NotIn predicate on the "document_path" field.
func DocumentPathNotIn(vs ...string) predicate.Employee {
	return predicate.Employee(sql.FieldNotIn(FieldDocumentPath, vs...))
}

// DocumentPathGT applies the GT predicate on the "document_path" field.
func DocumentPathGT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGT(FieldDocumentPath, v))
}

// DocumentPathGTE applies the GTE predicate on the "document_path" field.
func DocumentPathGTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldGTE(FieldDocumentPath, v))
}

// DocumentPathLT applies the LT predicate on the "document_path" field.
func DocumentPathLT(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLT(FieldDocumentPath, v))
}

// DocumentPathLTE applies the LTE predicate on the "document_path" field.
func DocumentPathLTE(v string) predicate.Employee {
	return predicate.Employee(sql.FieldLTE(FieldDocumentPath, v))
}

// DocumentPathContains applies the Contains predicate on the "document_path" field.
func DocumentPathContains(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContains(FieldDocumentPath, v))
}

// DocumentPathHasPrefix applies the HasPrefix predicate on the "document_path" field.
func DocumentPathHasPrefix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasPrefix(FieldDocumentPath, v))
}

// DocumentPathHasSuffix applies the HasSuffix predicate on the "document_path" field.
func DocumentPathHasSuffix(v string) predicate.Employee {
	return predicate.Employee(sql.FieldHasSuffix(FieldDocumentPath, v))
}

// DocumentPathIsNil applies the IsNil predicate on the "document_path" field.
func DocumentPathIsNil() predicate.Employee {
	return predicate.Employee(sql.FieldIsNull(FieldDocumentPath))
}

// DocumentPathNotNil applies the NotNil predicate on the "document_path" field.
func DocumentPathNotNil() predicate.Employee {
	return predicate.Employee(sql.FieldNotNull(FieldDocumentPath))
}

// DocumentPathEqualFold applies the EqualFold predicate on the "document_path" field.
func DocumentPathEqualFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldEqualFold(FieldDocumentPath, v))
}

// DocumentPathContainsFold applies the ContainsFold predicate on the "document_path" field.
func DocumentPathContainsFold(v string) predicate.Employee {
	return predicate.Employee(sql.FieldContainsFold(FieldDocumentPath, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Employee) predicate.Employee {
	return predicate.Employee(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Employee) predicate.Employee {
	return predicate.Employee(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Employee) predicate.Employee {
	return predicate.Employee(sql.NotPredicates(p))
}
