// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/mlevchenko/tenderbatch/db/ent/schema"
	"github.com/mlevchenko/tenderbatch/gen/ent/batch"
	"github.com/mlevchenko/tenderbatch/gen/ent/fileextraction"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	batchFields := schema.Batch{}.Fields()
	_ = batchFields
	// batchDescStatus is the schema descriptor for status field.
	batchDescStatus := batchFields[1].Descriptor()
	// batch.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	batch.StatusValidator = func() func(string) error {
		validators := batchDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// batchDescTotalFiles is the schema descriptor for total_files field.
	batchDescTotalFiles := batchFields[3].Descriptor()
	// batch.DefaultTotalFiles holds the default value on creation for the total_files field.
	batch.DefaultTotalFiles = batchDescTotalFiles.Default.(int)
	// batch.TotalFilesValidator is a validator for the "total_files" field. It is called by the builders before save.
	batch.TotalFilesValidator = batchDescTotalFiles.Validators[0].(func(int) error)
	// batchDescArchiveKey is the schema descriptor for archive_key field.
	batchDescArchiveKey := batchFields[5].Descriptor()
	// batch.ArchiveKeyValidator is a validator for the "archive_key" field. It is called by the builders before save.
	batch.ArchiveKeyValidator = batchDescArchiveKey.Validators[0].(func(string) error)
	// batchDescCreatedAt is the schema descriptor for created_at field.
	batchDescCreatedAt := batchFields[6].Descriptor()
	// batch.DefaultCreatedAt holds the default value on creation for the created_at field.
	batch.DefaultCreatedAt = batchDescCreatedAt.Default.(func() time.Time)
	// batchDescUpdatedAt is the schema descriptor for updated_at field.
	batchDescUpdatedAt := batchFields[7].Descriptor()
	// batch.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	batch.DefaultUpdatedAt = batchDescUpdatedAt.Default.(func() time.Time)
	// batch.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	batch.UpdateDefaultUpdatedAt = batchDescUpdatedAt.UpdateDefault.(func() time.Time)
	// batchDescID is the schema descriptor for id field.
	batchDescID := batchFields[0].Descriptor()
	// batch.DefaultID holds the default value on creation for the id field.
	batch.DefaultID = batchDescID.Default.(func() uuid.UUID)
	fileextractionFields := schema.FileExtraction{}.Fields()
	_ = fileextractionFields
	// fileextractionDescFilename is the schema descriptor for filename field.
	fileextractionDescFilename := fileextractionFields[2].Descriptor()
	// fileextraction.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	fileextraction.FilenameValidator = fileextractionDescFilename.Validators[0].(func(string) error)
	// fileextractionDescFilePath is the schema descriptor for file_path field.
	fileextractionDescFilePath := fileextractionFields[3].Descriptor()
	// fileextraction.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	fileextraction.FilePathValidator = fileextractionDescFilePath.Validators[0].(func(string) error)
	// fileextractionDescFileType is the schema descriptor for file_type field.
	fileextractionDescFileType := fileextractionFields[4].Descriptor()
	// fileextraction.FileTypeValidator is a validator for the "file_type" field. It is called by the builders before save.
	fileextraction.FileTypeValidator = fileextractionDescFileType.Validators[0].(func(string) error)
	// fileextractionDescStatus is the schema descriptor for status field.
	fileextractionDescStatus := fileextractionFields[5].Descriptor()
	// fileextraction.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	fileextraction.StatusValidator = func() func(string) error {
		validators := fileextractionDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// fileextractionDescRetryCount is the schema descriptor for retry_count field.
	fileextractionDescRetryCount := fileextractionFields[6].Descriptor()
	// fileextraction.DefaultRetryCount holds the default value on creation for the retry_count field.
	fileextraction.DefaultRetryCount = fileextractionDescRetryCount.Default.(int)
	// fileextraction.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	fileextraction.RetryCountValidator = fileextractionDescRetryCount.Validators[0].(func(int) error)
	// fileextractionDescSourceTag is the schema descriptor for source_tag field.
	fileextractionDescSourceTag := fileextractionFields[7].Descriptor()
	// fileextraction.DefaultSourceTag holds the default value on creation for the source_tag field.
	fileextraction.DefaultSourceTag = fileextractionDescSourceTag.Default.(string)
	// fileextractionDescCreatedAt is the schema descriptor for created_at field.
	fileextractionDescCreatedAt := fileextractionFields[8].Descriptor()
	// fileextraction.DefaultCreatedAt holds the default value on creation for the created_at field.
	fileextraction.DefaultCreatedAt = fileextractionDescCreatedAt.Default.(func() time.Time)
	// fileextractionDescUpdatedAt is the schema descriptor for updated_at field.
	fileextractionDescUpdatedAt := fileextractionFields[9].Descriptor()
	// fileextraction.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	fileextraction.DefaultUpdatedAt = fileextractionDescUpdatedAt.Default.(func() time.Time)
	// fileextraction.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	fileextraction.UpdateDefaultUpdatedAt = fileextractionDescUpdatedAt.UpdateDefault.(func() time.Time)
}
