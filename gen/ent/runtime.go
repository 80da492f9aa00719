// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/sahlen/vinkallaren/db/ent/schema"
	"github.com/sahlen/vinkallaren/gen/ent/labelphoto"
	"github.com/sahlen/vinkallaren/gen/ent/scanjob"
	"github.com/sahlen/vinkallaren/gen/ent/storagelocation"
	"github.com/sahlen/vinkallaren/gen/ent/tastingnote"
	"github.com/sahlen/vinkallaren/gen/ent/wine"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	labelphotoFields := schema.LabelPhoto{}.Fields()
	_ = labelphotoFields
	// labelphotoDescSourcePath is the schema descriptor for source_path field.
	labelphotoDescSourcePath := labelphotoFields[1].Descriptor()
	// labelphoto.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	labelphoto.SourcePathValidator = labelphotoDescSourcePath.Validators[0].(func(string) error)
	// labelphotoDescContentHash is the schema descriptor for content_hash field.
	labelphotoDescContentHash := labelphotoFields[2].Descriptor()
	// labelphoto.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	labelphoto.ContentHashValidator = func() func(string) error {
		validators := labelphotoDescContentHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(content_hash string) error {
			for _, fn := range fns {
				if err := fn(content_hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// labelphotoDescFilename is the schema descriptor for filename field.
	labelphotoDescFilename := labelphotoFields[3].Descriptor()
	// labelphoto.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	labelphoto.FilenameValidator = labelphotoDescFilename.Validators[0].(func(string) error)
	// labelphotoDescFileExt is the schema descriptor for file_ext field.
	labelphotoDescFileExt := labelphotoFields[4].Descriptor()
	// labelphoto.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	labelphoto.FileExtValidator = labelphotoDescFileExt.Validators[0].(func(string) error)
	// labelphotoDescFileSize is the schema descriptor for file_size field.
	labelphotoDescFileSize := labelphotoFields[5].Descriptor()
	// labelphoto.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	labelphoto.FileSizeValidator = labelphotoDescFileSize.Validators[0].(func(int) error)
	// labelphotoDescUploadedAt is the schema descriptor for uploaded_at field.
	labelphotoDescUploadedAt := labelphotoFields[6].Descriptor()
	// labelphoto.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	labelphoto.DefaultUploadedAt = labelphotoDescUploadedAt.Default.(func() time.Time)
	// labelphotoDescID is the schema descriptor for id field.
	labelphotoDescID := labelphotoFields[0].Descriptor()
	// labelphoto.DefaultID holds the default value on creation for the id field.
	labelphoto.DefaultID = labelphotoDescID.Default.(func() uuid.UUID)
	scanjobFields := schema.ScanJob{}.Fields()
	_ = scanjobFields
	// scanjobDescFormat is the schema descriptor for format field.
	scanjobDescFormat := scanjobFields[3].Descriptor()
	// scanjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	scanjob.FormatValidator = func() func(string) error {
		validators := scanjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// scanjobDescStartedAt is the schema descriptor for started_at field.
	scanjobDescStartedAt := scanjobFields[4].Descriptor()
	// scanjob.DefaultStartedAt holds the default value on creation for the started_at field.
	scanjob.DefaultStartedAt = scanjobDescStartedAt.Default.(func() time.Time)
	// scanjobDescNeedsReview is the schema descriptor for needs_review field.
	scanjobDescNeedsReview := scanjobFields[13].Descriptor()
	// scanjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	scanjob.DefaultNeedsReview = scanjobDescNeedsReview.Default.(bool)
	// scanjobDescID is the schema descriptor for id field.
	scanjobDescID := scanjobFields[0].Descriptor()
	// scanjob.DefaultID holds the default value on creation for the id field.
	scanjob.DefaultID = scanjobDescID.Default.(func() uuid.UUID)
	storagelocationFields := schema.StorageLocation{}.Fields()
	_ = storagelocationFields
	// storagelocationDescName is the schema descriptor for name field.
	storagelocationDescName := storagelocationFields[1].Descriptor()
	// storagelocation.NameValidator is a validator for the "name" field. It is called by the builders before save.
	storagelocation.NameValidator = storagelocationDescName.Validators[0].(func(string) error)
	// storagelocationDescLocationType is the schema descriptor for location_type field.
	storagelocationDescLocationType := storagelocationFields[3].Descriptor()
	// storagelocation.LocationTypeValidator is a validator for the "location_type" field. It is called by the builders before save.
	storagelocation.LocationTypeValidator = func() func(string) error {
		validators := storagelocationDescLocationType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(location_type string) error {
			for _, fn := range fns {
				if err := fn(location_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// storagelocationDescIsActive is the schema descriptor for is_active field.
	storagelocationDescIsActive := storagelocationFields[7].Descriptor()
	// storagelocation.DefaultIsActive holds the default value on creation for the is_active field.
	storagelocation.DefaultIsActive = storagelocationDescIsActive.Default.(bool)
	// storagelocationDescCreatedAt is the schema descriptor for created_at field.
	storagelocationDescCreatedAt := storagelocationFields[8].Descriptor()
	// storagelocation.DefaultCreatedAt holds the default value on creation for the created_at field.
	storagelocation.DefaultCreatedAt = storagelocationDescCreatedAt.Default.(func() time.Time)
	// storagelocationDescUpdatedAt is the schema descriptor for updated_at field.
	storagelocationDescUpdatedAt := storagelocationFields[9].Descriptor()
	// storagelocation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	storagelocation.DefaultUpdatedAt = storagelocationDescUpdatedAt.Default.(func() time.Time)
	// storagelocation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	storagelocation.UpdateDefaultUpdatedAt = storagelocationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// storagelocationDescID is the schema descriptor for id field.
	storagelocationDescID := storagelocationFields[0].Descriptor()
	// storagelocation.DefaultID holds the default value on creation for the id field.
	storagelocation.DefaultID = storagelocationDescID.Default.(func() uuid.UUID)
	tastingnoteFields := schema.TastingNote{}.Fields()
	_ = tastingnoteFields
	// tastingnoteDescTastingDate is the schema descriptor for tasting_date field.
	tastingnoteDescTastingDate := tastingnoteFields[2].Descriptor()
	// tastingnote.DefaultTastingDate holds the default value on creation for the tasting_date field.
	tastingnote.DefaultTastingDate = tastingnoteDescTastingDate.Default.(func() time.Time)
	// tastingnoteDescCreatedAt is the schema descriptor for created_at field.
	tastingnoteDescCreatedAt := tastingnoteFields[10].Descriptor()
	// tastingnote.DefaultCreatedAt holds the default value on creation for the created_at field.
	tastingnote.DefaultCreatedAt = tastingnoteDescCreatedAt.Default.(func() time.Time)
	// tastingnoteDescUpdatedAt is the schema descriptor for updated_at field.
	tastingnoteDescUpdatedAt := tastingnoteFields[11].Descriptor()
	// tastingnote.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tastingnote.DefaultUpdatedAt = tastingnoteDescUpdatedAt.Default.(func() time.Time)
	// tastingnote.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tastingnote.UpdateDefaultUpdatedAt = tastingnoteDescUpdatedAt.UpdateDefault.(func() time.Time)
	// tastingnoteDescID is the schema descriptor for id field.
	tastingnoteDescID := tastingnoteFields[0].Descriptor()
	// tastingnote.DefaultID holds the default value on creation for the id field.
	tastingnote.DefaultID = tastingnoteDescID.Default.(func() uuid.UUID)
	wineFields := schema.Wine{}.Fields()
	_ = wineFields
	// wineDescName is the schema descriptor for name field.
	wineDescName := wineFields[1].Descriptor()
	// wine.NameValidator is a validator for the "name" field. It is called by the builders before save.
	wine.NameValidator = wineDescName.Validators[0].(func(string) error)
	// wineDescProducer is the schema descriptor for producer field.
	wineDescProducer := wineFields[2].Descriptor()
	// wine.ProducerValidator is a validator for the "producer" field. It is called by the builders before save.
	wine.ProducerValidator = wineDescProducer.Validators[0].(func(string) error)
	// wineDescWineType is the schema descriptor for wine_type field.
	wineDescWineType := wineFields[4].Descriptor()
	// wine.WineTypeValidator is a validator for the "wine_type" field. It is called by the builders before save.
	wine.WineTypeValidator = func() func(string) error {
		validators := wineDescWineType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(wine_type string) error {
			for _, fn := range fns {
				if err := fn(wine_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// wineDescBottleSize is the schema descriptor for bottle_size field.
	wineDescBottleSize := wineFields[11].Descriptor()
	// wine.DefaultBottleSize holds the default value on creation for the bottle_size field.
	wine.DefaultBottleSize = wineDescBottleSize.Default.(string)
	// wineDescQuantity is the schema descriptor for quantity field.
	wineDescQuantity := wineFields[12].Descriptor()
	// wine.DefaultQuantity holds the default value on creation for the quantity field.
	wine.DefaultQuantity = wineDescQuantity.Default.(int)
	// wine.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	wine.QuantityValidator = wineDescQuantity.Validators[0].(func(int) error)
	// wineDescCurrency is the schema descriptor for currency field.
	wineDescCurrency := wineFields[15].Descriptor()
	// wine.DefaultCurrency holds the default value on creation for the currency field.
	wine.DefaultCurrency = wineDescCurrency.Default.(string)
	// wine.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	wine.CurrencyValidator = func() func(string) error {
		validators := wineDescCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency string) error {
			for _, fn := range fns {
				if err := fn(currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// wineDescIsDeleted is the schema descriptor for is_deleted field.
	wineDescIsDeleted := wineFields[25].Descriptor()
	// wine.DefaultIsDeleted holds the default value on creation for the is_deleted field.
	wine.DefaultIsDeleted = wineDescIsDeleted.Default.(bool)
	// wineDescCreatedAt is the schema descriptor for created_at field.
	wineDescCreatedAt := wineFields[26].Descriptor()
	// wine.DefaultCreatedAt holds the default value on creation for the created_at field.
	wine.DefaultCreatedAt = wineDescCreatedAt.Default.(func() time.Time)
	// wineDescUpdatedAt is the schema descriptor for updated_at field.
	wineDescUpdatedAt := wineFields[27].Descriptor()
	// wine.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	wine.DefaultUpdatedAt = wineDescUpdatedAt.Default.(func() time.Time)
	// wine.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	wine.UpdateDefaultUpdatedAt = wineDescUpdatedAt.UpdateDefault.(func() time.Time)
	// wineDescID is the schema descriptor for id field.
	wineDescID := wineFields[0].Descriptor()
	// wine.DefaultID holds the default value on creation for the id field.
	wine.DefaultID = wineDescID.Default.(func() uuid.UUID)
}
