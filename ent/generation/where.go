// Code generated by ent, DO NOT EDIT.

package generation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/anzhiyu-c/mediaflow/ent/predicate"
	"github.com/anzhiyu-c/mediaflow/pkg/domain/model"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.Generation {
	return predicate.Generation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.Generation {
	return predicate.Generation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.Generation {
	return predicate.Generation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.Generation {
	return predicate.Generation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.Generation {
	return predicate.Generation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.Generation {
	return predicate.Generation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.Generation {
	return predicate.Generation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.Generation {
	return predicate.Generation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.Generation {
	return predicate.Generation(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Generation {
	return predicate.Generation(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v uint) predicate.Generation {
	return predicate.Generation(sql.FieldEQ(FieldOwnerID, v))
}

// OperationType applies equality check predicate on the "operation_type" field. It's identical to OperationTypeEQ.
func OperationType(v string) predicate.Generation {
	return predicate.Generation(sql.FieldEQ(FieldOperationType, v))
}

// CanonicalParams applies equality check predicate on the "canonical_params" field. It's identical to CanonicalParamsEQ.
func CanonicalParams(v model.JSONMap) predicate.Generation {
	return predicate.Generation(sql.FieldEQ(FieldCanonicalParams, v))
}

// ReproHash applies equality check predicate on the "repro_hash" field. It's identical to ReproHashEQ.
func ReproHash(v string) predicate.Generation {
	return predicate.Generation(sql.FieldEQ(FieldReproHash, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Generation {
	return predicate.Generation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Generation {
	return predicate.Generation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Generation {
	return predicate.Generation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Generation {
	return predicate.Generation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Generation {
	return predicate.Generation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Generation {
	return predicate.Generation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Generation {
	return predicate.Generation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Generation {
	return predicate.Generation(sql.FieldLTE(FieldCreatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v uint) predicate.Generation {
	return predicate.Generation(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v uint) predicate.Generation {
	return predicate.Generation(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...uint) predicate.Generation {
	return predicate.Generation(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...uint) predicate.Generation {
	return predicate.Generation(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v uint) predicate.Generation {
	return predicate.Generation(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v uint) predicate.Generation {
	return predicate.Generation(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v uint) predicate.Generation {
	return predicate.Generation(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v uint) predicate.Generation {
	return predicate.Generation(sql.FieldLTE(FieldOwnerID, v))
}

// OperationTypeEQ applies the EQ predicate on the "operation_type" field.
func OperationTypeEQ(v string) predicate.Generation {
	return predicate.Generation(sql.FieldEQ(FieldOperationType, v))
}

// OperationTypeNEQ applies the NEQ predicate on the "operation_type" field.
func OperationTypeNEQ(v string) predicate.Generation {
	return predicate.Generation(sql.FieldNEQ(FieldOperationType, v))
}

// OperationTypeIn applies the In predicate on the "operation_type" field.
func OperationTypeIn(vs ...string) predicate.Generation {
	return predicate.Generation(sql.FieldIn(FieldOperationType, vs...))
}

// OperationTypeNotIn applies the NotIn predicate on the "operation_type" field.
func OperationTypeNotIn(vs ...string) predicate.Generation {
	return predicate.Generation(sql.FieldNotIn(FieldOperationType, vs...))
}

// OperationTypeGT applies the GT predicate on the "operation_type" field.
func OperationTypeGT(v string) predicate.Generation {
	return predicate.Generation(sql.FieldGT(FieldOperationType, v))
}

// OperationTypeGTE applies the GTE predicate on the "operation_type" field.
func OperationTypeGTE(v string) predicate.Generation {
	return predicate.Generation(sql.FieldGTE(FieldOperationType, v))
}

// OperationTypeLT applies the LT predicate on the "operation_type" field.
func OperationTypeLT(v string) predicate.Generation {
	return predicate.Generation(sql.FieldLT(FieldOperationType, v))
}

// OperationTypeLTE applies the LTE predicate on the "operation_type" field.
func OperationTypeLTE(v string) predicate.Generation {
	return predicate.Generation(sql.FieldLTE(FieldOperationType, v))
}

// OperationTypeContains applies the Contains predicate on the "operation_type" field.
func OperationTypeContains(v string) predicate.Generation {
	return predicate.Generation(sql.FieldContains(FieldOperationType, v))
}

// OperationTypeHasPrefix applies the HasPrefix predicate on the "operation_type" field.
func OperationTypeHasPrefix(v string) predicate.Generation {
	return predicate.Generation(sql.FieldHasPrefix(FieldOperationType, v))
}

// OperationTypeHasSuffix applies the HasSuffix predicate on the "operation_type" field.
func OperationTypeHasSuffix(v string) predicate.Generation {
	return predicate.Generation(sql.FieldHasSuffix(FieldOperationType, v))
}

// OperationTypeEqualFold applies the EqualFold predicate on the "operation_type" field.
func OperationTypeEqualFold(v string) predicate.Generation {
	return predicate.Generation(sql.FieldEqualFold(FieldOperationType, v))
}

// OperationTypeContainsFold applies the ContainsFold predicate on the "operation_type" field.
func OperationTypeContainsFold(v string) predicate.Generation {
	return predicate.Generation(sql.FieldContainsFold(FieldOperationType, v))
}

// CanonicalParamsEQ applies the EQ predicate on the "canonical_params" field.
func CanonicalParamsEQ(v model.JSONMap) predicate.Generation {
	return predicate.Generation(sql.FieldEQ(FieldCanonicalParams, v))
}

// CanonicalParamsNEQ applies the NEQ predicate on the "canonical_params" field.
func CanonicalParamsNEQ(v model.JSONMap) predicate.Generation {
	return predicate.Generation(sql.FieldNEQ(FieldCanonicalParams, v))
}

// CanonicalParamsIn applies the In predicate on the "canonical_params" field.
func CanonicalParamsIn(vs ...model.JSONMap) predicate.Generation {
	return predicate.Generation(sql.FieldIn(FieldCanonicalParams, vs...))
}

// CanonicalParamsNotIn applies the NotIn predicate on the "canonical_params" field.
func CanonicalParamsNotIn(vs ...model.JSONMap) predicate.Generation {
	return predicate.Generation(sql.FieldNotIn(FieldCanonicalParams, vs...))
}

// CanonicalParamsGT applies the GT predicate on the "canonical_params" field.
func CanonicalParamsGT(v model.JSONMap) predicate.Generation {
	return predicate.Generation(sql.FieldGT(FieldCanonicalParams, v))
}

// CanonicalParamsGTE applies the GTE predicate on the "canonical_params" field.
func CanonicalParamsGTE(v model.JSONMap) predicate.Generation {
	return predicate.Generation(sql.FieldGTE(FieldCanonicalParams, v))
}

// CanonicalParamsLT applies the LT predicate on the "canonical_params" field.
func CanonicalParamsLT(v model.JSONMap) predicate.Generation {
	return predicate.Generation(sql.FieldLT(FieldCanonicalParams, v))
}

// CanonicalParamsLTE applies the LTE predicate on the "canonical_params" field.
func CanonicalParamsLTE(v model.JSONMap) predicate.Generation {
	return predicate.Generation(sql.FieldLTE(FieldCanonicalParams, v))
}

// CanonicalParamsIsNil applies the IsNil predicate on the "canonical_params" field.
func CanonicalParamsIsNil() predicate.Generation {
	return predicate.Generation(sql.FieldIsNull(FieldCanonicalParams))
}

// CanonicalParamsNotNil applies the NotNil predicate on the "canonical_params" field.
func CanonicalParamsNotNil() predicate.Generation {
	return predicate.Generation(sql.FieldNotNull(FieldCanonicalParams))
}

// InputsIsNil applies the IsNil predicate on the "inputs" field.
func InputsIsNil() predicate.Generation {
	return predicate.Generation(sql.FieldIsNull(FieldInputs))
}

// InputsNotNil applies the NotNil predicate on the "inputs" field.
func InputsNotNil() predicate.Generation {
	return predicate.Generation(sql.FieldNotNull(FieldInputs))
}

// ReproHashEQ applies the EQ predicate on the "repro_hash" field.
func ReproHashEQ(v string) predicate.Generation {
	return predicate.Generation(sql.FieldEQ(FieldReproHash, v))
}

// ReproHashNEQ applies the NEQ predicate on the "repro_hash" field.
func ReproHashNEQ(v string) predicate.Generation {
	return predicate.Generation(sql.FieldNEQ(FieldReproHash, v))
}

// ReproHashIn applies the In predicate on the "repro_hash" field.
func ReproHashIn(vs ...string) predicate.Generation {
	return predicate.Generation(sql.FieldIn(FieldReproHash, vs...))
}

// ReproHashNotIn applies the NotIn predicate on the "repro_hash" field.
func ReproHashNotIn(vs ...string) predicate.Generation {
	return predicate.Generation(sql.FieldNotIn(FieldReproHash, vs...))
}

// ReproHashGT applies the GT predicate on the "repro_hash" field.
func ReproHashGT(v string) predicate.Generation {
	return predicate.Generation(sql.FieldGT(FieldReproHash, v))
}

// ReproHashGTE applies the GTE predicate on the "repro_hash" field.
func ReproHashGTE(v string) predicate.Generation {
	return predicate.Generation(sql.FieldGTE(FieldReproHash, v))
}

// ReproHashLT applies the LT predicate on the "repro_hash" field.
func ReproHashLT(v string) predicate.Generation {
	return predicate.Generation(sql.FieldLT(FieldReproHash, v))
}

// ReproHashLTE applies the LTE predicate on the "repro_hash" field.
func ReproHashLTE(v string) predicate.Generation {
	return predicate.Generation(sql.FieldLTE(FieldReproHash, v))
}

// ReproHashContains applies the Contains predicate on the "repro_hash" field.
func ReproHashContains(v string) predicate.Generation {
	return predicate.Generation(sql.FieldContains(FieldReproHash, v))
}

// ReproHashHasPrefix applies the HasPrefix predicate on the "repro_hash" field.
func ReproHashHasPrefix(v string) predicate.Generation {
	return predicate.Generation(sql.FieldHasPrefix(FieldReproHash, v))
}

// ReproHashHasSuffix applies the HasSuffix predicate on the "repro_hash" field.
func ReproHashHasSuffix(v string) predicate.Generation {
	return predicate.Generation(sql.FieldHasSuffix(FieldReproHash, v))
}

// ReproHashEqualFold applies the EqualFold predicate on the "repro_hash" field.
func ReproHashEqualFold(v string) predicate.Generation {
	return predicate.Generation(sql.FieldEqualFold(FieldReproHash, v))
}

// ReproHashContainsFold applies the ContainsFold predicate on the "repro_hash" field.
func ReproHashContainsFold(v string) predicate.Generation {
	return predicate.Generation(sql.FieldContainsFold(FieldReproHash, v))
}

// HasAssets applies the HasEdge predicate on the "assets" edge.
func HasAssets() predicate.Generation {
	return predicate.Generation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, AssetsTable, AssetsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAssetsWith applies the HasEdge predicate on the "assets" edge with a given conditions (other predicates).
func HasAssetsWith(preds ...predicate.Asset) predicate.Generation {
	return predicate.Generation(func(s *sql.Selector) {
		step := newAssetsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Generation) predicate.Generation {
	return predicate.Generation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Generation) predicate.Generation {
	return predicate.Generation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Generation) predicate.Generation {
	return predicate.Generation(sql.NotPredicates(p))
}
