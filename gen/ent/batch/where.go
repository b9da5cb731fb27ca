// Code generated by ent, DO NOT EDIT.

package batch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mlevchenko/tenderbatch/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldID, id))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldStatus, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldRunID, v))
}

// TotalFiles applies equality check predicate on the "total_files" field. It's identical to TotalFilesEQ.
func TotalFiles(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalFiles, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldErrorMessage, v))
}

// ArchiveKey applies equality check predicate on the "archive_key" field. It's identical to ArchiveKeyEQ.
func ArchiveKey(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldArchiveKey, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldUpdatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCompletedAt, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldStatus, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldRunID, v))
}

// RunIDIsNil applies the IsNil predicate on the "run_id" field.
func RunIDIsNil() predicate.Batch {
	return predicate.Batch(sql.FieldIsNull(FieldRunID))
}

// RunIDNotNil applies the NotNil predicate on the "run_id" field.
func RunIDNotNil() predicate.Batch {
	return predicate.Batch(sql.FieldNotNull(FieldRunID))
}

// TotalFilesEQ applies the EQ predicate on the "total_files" field.
func TotalFilesEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalFiles, v))
}

// TotalFilesNEQ applies the NEQ predicate on the "total_files" field.
func TotalFilesNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldTotalFiles, v))
}

// TotalFilesIn applies the In predicate on the "total_files" field.
func TotalFilesIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldTotalFiles, vs...))
}

// TotalFilesNotIn applies the NotIn predicate on the "total_files" field.
func TotalFilesNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldTotalFiles, vs...))
}

// TotalFilesGT applies the GT predicate on the "total_files" field.
func TotalFilesGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldTotalFiles, v))
}

// TotalFilesGTE applies the GTE predicate on the "total_files" field.
func TotalFilesGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldTotalFiles, v))
}

// TotalFilesLT applies the LT predicate on the "total_files" field.
func TotalFilesLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldTotalFiles, v))
}

// TotalFilesLTE applies the LTE predicate on the "total_files" field.
func TotalFilesLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldTotalFiles, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.Batch {
	return predicate.Batch(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.Batch {
	return predicate.Batch(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldErrorMessage, v))
}

// ArchiveKeyEQ applies the EQ predicate on the "archive_key" field.
func ArchiveKeyEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldArchiveKey, v))
}

// ArchiveKeyNEQ applies the NEQ predicate on the "archive_key" field.
func ArchiveKeyNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldArchiveKey, v))
}

// ArchiveKeyIn applies the In predicate on the "archive_key" field.
func ArchiveKeyIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldArchiveKey, vs...))
}

// ArchiveKeyNotIn applies the NotIn predicate on the "archive_key" field.
func ArchiveKeyNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldArchiveKey, vs...))
}

// ArchiveKeyGT applies the GT predicate on the "archive_key" field.
func ArchiveKeyGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldArchiveKey, v))
}

// ArchiveKeyGTE applies the GTE predicate on the "archive_key" field.
func ArchiveKeyGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldArchiveKey, v))
}

// ArchiveKeyLT applies the LT predicate on the "archive_key" field.
func ArchiveKeyLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldArchiveKey, v))
}

// ArchiveKeyLTE applies the LTE predicate on the "archive_key" field.
func ArchiveKeyLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldArchiveKey, v))
}

// ArchiveKeyContains applies the Contains predicate on the "archive_key" field.
func ArchiveKeyContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldArchiveKey, v))
}

// ArchiveKeyHasPrefix applies the HasPrefix predicate on the "archive_key" field.
func ArchiveKeyHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldArchiveKey, v))
}

// ArchiveKeyHasSuffix applies the HasSuffix predicate on the "archive_key" field.
func ArchiveKeyHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldArchiveKey, v))
}

// ArchiveKeyEqualFold applies the EqualFold predicate on the "archive_key" field.
func ArchiveKeyEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldArchiveKey, v))
}

// ArchiveKeyContainsFold applies the ContainsFold predicate on the "archive_key" field.
func ArchiveKeyContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldArchiveKey, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldUpdatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.Batch {
	return predicate.Batch(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.Batch {
	return predicate.Batch(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.NotPredicates(p))
}
