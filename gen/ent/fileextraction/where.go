// Code generated by ent, DO NOT EDIT.

package fileextraction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mlevchenko/tenderbatch/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLTE(FieldID, id))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v uuid.UUID) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldRunID, v))
}

// Filename applies equality check predicate on the "filename" field. It's identical to FilenameEQ.
func Filename(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldFilename, v))
}

// FilePath applies equality check predicate on the "file_path" field. It's identical to FilePathEQ.
func FilePath(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldFilePath, v))
}

// FileType applies equality check predicate on the "file_type" field. It's identical to FileTypeEQ.
func FileType(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldFileType, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldStatus, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldRetryCount, v))
}

// SourceTag applies equality check predicate on the "source_tag" field. It's identical to SourceTagEQ.
func SourceTag(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldSourceTag, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldUpdatedAt, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v uuid.UUID) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v uuid.UUID) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...uuid.UUID) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...uuid.UUID) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v uuid.UUID) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v uuid.UUID) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v uuid.UUID) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v uuid.UUID) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLTE(FieldRunID, v))
}

// FilenameEQ applies the EQ predicate on the "filename" field.
func FilenameEQ(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldFilename, v))
}

// FilenameNEQ applies the NEQ predicate on the "filename" field.
func FilenameNEQ(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNEQ(FieldFilename, v))
}

// FilenameIn applies the In predicate on the "filename" field.
func FilenameIn(vs ...string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldIn(FieldFilename, vs...))
}

// FilenameNotIn applies the NotIn predicate on the "filename" field.
func FilenameNotIn(vs ...string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNotIn(FieldFilename, vs...))
}

// FilenameGT applies the GT predicate on the "filename" field.
func FilenameGT(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGT(FieldFilename, v))
}

// FilenameGTE applies the GTE predicate on the "filename" field.
func FilenameGTE(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGTE(FieldFilename, v))
}

// FilenameLT applies the LT predicate on the "filename" field.
func FilenameLT(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLT(FieldFilename, v))
}

// FilenameLTE applies the LTE predicate on the "filename" field.
func FilenameLTE(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLTE(FieldFilename, v))
}

// FilenameContains applies the Contains predicate on the "filename" field.
func FilenameContains(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldContains(FieldFilename, v))
}

// FilenameHasPrefix applies the HasPrefix predicate on the "filename" field.
func FilenameHasPrefix(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldHasPrefix(FieldFilename, v))
}

// FilenameHasSuffix applies the HasSuffix predicate on the "filename" field.
func FilenameHasSuffix(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldHasSuffix(FieldFilename, v))
}

// FilenameEqualFold applies the EqualFold predicate on the "filename" field.
func FilenameEqualFold(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEqualFold(FieldFilename, v))
}

// FilenameContainsFold applies the ContainsFold predicate on the "filename" field.
func FilenameContainsFold(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldContainsFold(FieldFilename, v))
}

// FilePathEQ applies the EQ predicate on the "file_path" field.
func FilePathEQ(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldFilePath, v))
}

// FilePathNEQ applies the NEQ predicate on the "file_path" field.
func FilePathNEQ(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNEQ(FieldFilePath, v))
}

// FilePathIn applies the In predicate on the "file_path" field.
func FilePathIn(vs ...string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldIn(FieldFilePath, vs...))
}

// FilePathNotIn applies the NotIn predicate on the "file_path" field.
func FilePathNotIn(vs ...string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNotIn(FieldFilePath, vs...))
}

// FilePathGT applies the GT predicate on the "file_path" field.
func FilePathGT(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGT(FieldFilePath, v))
}

// FilePathGTE applies the GTE predicate on the "file_path" field.
func FilePathGTE(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGTE(FieldFilePath, v))
}

// FilePathLT applies the LT predicate on the "file_path" field.
func FilePathLT(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLT(FieldFilePath, v))
}

// FilePathLTE applies the LTE predicate on the "file_path" field.
func FilePathLTE(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLTE(FieldFilePath, v))
}

// FilePathContains applies the Contains predicate on the "file_path" field.
func FilePathContains(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldContains(FieldFilePath, v))
}

// FilePathHasPrefix applies the HasPrefix predicate on the "file_path" field.
func FilePathHasPrefix(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldHasPrefix(FieldFilePath, v))
}

// FilePathHasSuffix applies the HasSuffix predicate on the "file_path" field.
func FilePathHasSuffix(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldHasSuffix(FieldFilePath, v))
}

// FilePathEqualFold applies the EqualFold predicate on the "file_path" field.
func FilePathEqualFold(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEqualFold(FieldFilePath, v))
}

// FilePathContainsFold applies the ContainsFold predicate on the "file_path" field.
func FilePathContainsFold(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldContainsFold(FieldFilePath, v))
}

// FileTypeEQ applies the EQ predicate on the "file_type" field.
func FileTypeEQ(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldFileType, v))
}

// FileTypeNEQ applies the NEQ predicate on the "file_type" field.
func FileTypeNEQ(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNEQ(FieldFileType, v))
}

// FileTypeIn applies the In predicate on the "file_type" field.
func FileTypeIn(vs ...string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldIn(FieldFileType, vs...))
}

// FileTypeNotIn applies the NotIn predicate on the "file_type" field.
func FileTypeNotIn(vs ...string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNotIn(FieldFileType, vs...))
}

// FileTypeGT applies the GT predicate on the "file_type" field.
func FileTypeGT(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGT(FieldFileType, v))
}

// FileTypeGTE applies the GTE predicate on the "file_type" field.
func FileTypeGTE(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGTE(FieldFileType, v))
}

// FileTypeLT applies the LT predicate on the "file_type" field.
func FileTypeLT(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLT(FieldFileType, v))
}

// FileTypeLTE applies the LTE predicate on the "file_type" field.
func FileTypeLTE(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLTE(FieldFileType, v))
}

// FileTypeContains applies the Contains predicate on the "file_type" field.
func FileTypeContains(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldContains(FieldFileType, v))
}

// FileTypeHasPrefix applies the HasPrefix predicate on the "file_type" field.
func FileTypeHasPrefix(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldHasPrefix(FieldFileType, v))
}

// FileTypeHasSuffix applies the HasSuffix predicate on the "file_type" field.
func FileTypeHasSuffix(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldHasSuffix(FieldFileType, v))
}

// FileTypeEqualFold applies the EqualFold predicate on the "file_type" field.
func FileTypeEqualFold(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEqualFold(FieldFileType, v))
}

// FileTypeContainsFold applies the ContainsFold predicate on the "file_type" field.
func FileTypeContainsFold(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldContainsFold(FieldFileType, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldContainsFold(FieldStatus, v))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLTE(FieldRetryCount, v))
}

// SourceTagEQ applies the EQ predicate on the "source_tag" field.
func SourceTagEQ(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldSourceTag, v))
}

// SourceTagNEQ applies the NEQ predicate on the "source_tag" field.
func SourceTagNEQ(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNEQ(FieldSourceTag, v))
}

// SourceTagIn applies the In predicate on the "source_tag" field.
func SourceTagIn(vs ...string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldIn(FieldSourceTag, vs...))
}

// SourceTagNotIn applies the NotIn predicate on the "source_tag" field.
func SourceTagNotIn(vs ...string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNotIn(FieldSourceTag, vs...))
}

// SourceTagGT applies the GT predicate on the "source_tag" field.
func SourceTagGT(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGT(FieldSourceTag, v))
}

// SourceTagGTE applies the GTE predicate on the "source_tag" field.
func SourceTagGTE(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGTE(FieldSourceTag, v))
}

// SourceTagLT applies the LT predicate on the "source_tag" field.
func SourceTagLT(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLT(FieldSourceTag, v))
}

// SourceTagLTE applies the LTE predicate on the "source_tag" field.
func SourceTagLTE(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLTE(FieldSourceTag, v))
}

// SourceTagContains applies the Contains predicate on the "source_tag" field.
func SourceTagContains(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldContains(FieldSourceTag, v))
}

// SourceTagHasPrefix applies the HasPrefix predicate on the "source_tag" field.
func SourceTagHasPrefix(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldHasPrefix(FieldSourceTag, v))
}

// SourceTagHasSuffix applies the HasSuffix predicate on the "source_tag" field.
func SourceTagHasSuffix(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldHasSuffix(FieldSourceTag, v))
}

// SourceTagEqualFold applies the EqualFold predicate on the "source_tag" field.
func SourceTagEqualFold(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEqualFold(FieldSourceTag, v))
}

// SourceTagContainsFold applies the ContainsFold predicate on the "source_tag" field.
func SourceTagContainsFold(v string) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldContainsFold(FieldSourceTag, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.FileExtraction {
	return predicate.FileExtraction(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FileExtraction) predicate.FileExtraction {
	return predicate.FileExtraction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FileExtraction) predicate.FileExtraction {
	return predicate.FileExtraction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FileExtraction) predicate.FileExtraction {
	return predicate.FileExtraction(sql.NotPredicates(p))
}
