// Code generated by ent, DO NOT EDIT.

package area

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"fincatech.io/itam/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Area {
	return predicate.Area(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Area {
	return predicate.Area(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Area {
	return predicate.Area(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Area {
	return predicate.Area(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Area {
	return predicate.Area(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Area {
	return predicate.Area(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Area {
	return predicate.Area(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Area {
	return predicate.Area(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Area {
	return predicate.Area(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Area {
	return predicate.Area(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Area {
	return predicate.Area(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Area {
	return predicate.Area(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Area {
	return predicate.Area(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Area {
	return predicate.Area(sql.FieldEQ(FieldName, v))
}

// DepartamentoID applies equality check predicate on the "departamento_id" field. It's identical to DepartamentoIDEQ.
func DepartamentoID(v string) predicate.Area {
	return predicate.Area(sql.FieldEQ(FieldDepartamentoID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Area {
	return predicate.Area(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Area {
	return predicate.Area(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Area {
	return predicate.Area(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Area {
	return predicate.Area(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Area {
	return predicate.Area(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Area {
	return predicate.Area(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Area {
	return predicate.Area(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Area {
	return predicate.Area(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Area {
	return predicate.Area(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Area {
	return predicate.Area(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Area {
	return predicate.Area(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Area {
	return predicate.Area(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Area {
	return predicate.Area(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Area {
	return predicate.Area(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Area {
	return predicate.Area(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Area {
	return predicate.Area(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Area {
	return predicate.Area(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Area {
	return predicate.Area(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Area {
	return predicate.Area(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Area {
	return predicate.Area(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Area {
	return predicate.Area(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Area {
	return predicate.Area(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Area {
	return predicate.Area(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Area {
	return predicate.Area(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Area {
	return predicate.Area(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Area {
	return predicate.Area(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Area {
	return predicate.Area(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Area {
	return predicate.Area(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Area {
	return predicate.Area(sql.FieldContainsFold(FieldName, v))
}

// DepartamentoIDEQ applies the EQ predicate on the "departamento_id" field.
func DepartamentoIDEQ(v string) predicate.Area {
	return predicate.Area(sql.FieldEQ(FieldDepartamentoID, v))
}

// DepartamentoIDNEQ applies the NEQ predicate on the "departamento_id" field.
func DepartamentoIDNEQ(v string) predicate.Area {
	return predicate.Area(sql.FieldNEQ(FieldDepartamentoID, v))
}

// DepartamentoIDIn applies the In predicate on the "departamento_id" field.
func DepartamentoIDIn(vs ...string) predicate.Area {
	return predicate.Area(sql.FieldIn(FieldDepartamentoID, vs...))
}

// DepartamentoIDNotIn applies the NotIn predicate on the "departamento_id" field.
func DepartamentoIDNotIn(vs ...string) predicate.Area {
	return predicate.Area(sql.FieldNotIn(FieldDepartamentoID, vs...))
}

// DepartamentoIDGT applies the GT predicate on the "departamento_id" field.
func DepartamentoIDGT(v string) predicate.Area {
	return predicate.Area(sql.FieldGT(FieldDepartamentoID, v))
}

// DepartamentoIDGTE applies the GTE predicate on the "departamento_id" field.
func DepartamentoIDGTE(v string) predicate.Area {
	return predicate.Area(sql.FieldGTE(FieldDepartamentoID, v))
}

// DepartamentoIDLT applies the LT predicate on the "departamento_id" field.
func DepartamentoIDLT(v string) predicate.Area {
	return predicate.Area(sql.FieldLT(FieldDepartamentoID, v))
}

// DepartamentoIDLTE applies the LTE predicate on the "departamento_id" field.
func DepartamentoIDLTE(v string) predicate.Area {
	return predicate.Area(sql.FieldLTE(FieldDepartamentoID, v))
}

// DepartamentoIDContains applies the Contains predicate on the "departamento_id" field.
func DepartamentoIDContains(v string) predicate.Area {
	return predicate.Area(sql.FieldContains(FieldDepartamentoID, v))
}

// DepartamentoIDHasPrefix applies the HasPrefix predicate on the "departamento_id" field.
func DepartamentoIDHasPrefix(v string) predicate.Area {
	return predicate.Area(sql.FieldHasPrefix(FieldDepartamentoID, v))
}

// DepartamentoIDHasSuffix applies the HasSuffix predicate on the "departamento_id" field.
func DepartamentoIDHasSuffix(v string) predicate.Area {
	return predicate.Area(sql.FieldHasSuffix(FieldDepartamentoID, v))
}

// DepartamentoIDEqualFold applies the EqualFold predicate on the "departamento_id" field.
func DepartamentoIDEqualFold(v string) predicate.Area {
	return predicate.Area(sql.FieldEqualFold(FieldDepartamentoID, v))
}

// DepartamentoIDContainsFold applies the ContainsFold predicate on the "departamento_id" field.
func DepartamentoIDContainsFold(v string) predicate.Area {
	return predicate.Area(sql.FieldContainsFold(FieldDepartamentoID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Area) predicate.Area {
	return predicate.Area(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Area) predicate.Area {
	return predicate.Area(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Area) predicate.Area {
	return predicate.Area(sql.NotPredicates(p))
}
