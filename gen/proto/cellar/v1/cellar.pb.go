// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: cellar/v1/cellar.proto

package cellarv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// Wine is a cellar row.
type Wine struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Id                  string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name                string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Producer            string                 `protobuf:"bytes,3,opt,name=producer,proto3" json:"producer,omitempty"`
	Vintage             int32                  `protobuf:"varint,4,opt,name=vintage,proto3" json:"vintage,omitempty"` // 0 when unknown (non-vintage)
	WineType            string                 `protobuf:"bytes,5,opt,name=wine_type,json=wineType,proto3" json:"wine_type,omitempty"`
	Country             string                 `protobuf:"bytes,6,opt,name=country,proto3" json:"country,omitempty"`
	Region              string                 `protobuf:"bytes,7,opt,name=region,proto3" json:"region,omitempty"`
	SubRegion           string                 `protobuf:"bytes,8,opt,name=sub_region,json=subRegion,proto3" json:"sub_region,omitempty"`
	Appellation         string                 `protobuf:"bytes,9,opt,name=appellation,proto3" json:"appellation,omitempty"`
	GrapeVarieties      []string               `protobuf:"bytes,10,rep,name=grape_varieties,json=grapeVarieties,proto3" json:"grape_varieties,omitempty"`
	AlcoholContent      float32                `protobuf:"fixed32,11,opt,name=alcohol_content,json=alcoholContent,proto3" json:"alcohol_content,omitempty"`
	BottleSize          string                 `protobuf:"bytes,12,opt,name=bottle_size,json=bottleSize,proto3" json:"bottle_size,omitempty"`
	Quantity            int32                  `protobuf:"varint,13,opt,name=quantity,proto3" json:"quantity,omitempty"`
	PurchasePrice       float64                `protobuf:"fixed64,14,opt,name=purchase_price,json=purchasePrice,proto3" json:"purchase_price,omitempty"`
	Currency            string                 `protobuf:"bytes,15,opt,name=currency,proto3" json:"currency,omitempty"`
	PersonalRating      float32                `protobuf:"fixed32,16,opt,name=personal_rating,json=personalRating,proto3" json:"personal_rating,omitempty"`
	DrinkingWindowStart int32                  `protobuf:"varint,17,opt,name=drinking_window_start,json=drinkingWindowStart,proto3" json:"drinking_window_start,omitempty"`
	DrinkingWindowEnd   int32                  `protobuf:"varint,18,opt,name=drinking_window_end,json=drinkingWindowEnd,proto3" json:"drinking_window_end,omitempty"`
	PeakMaturityYear    int32                  `protobuf:"varint,19,opt,name=peak_maturity_year,json=peakMaturityYear,proto3" json:"peak_maturity_year,omitempty"`
	TastingSummary      string                 `protobuf:"bytes,20,opt,name=tasting_summary,json=tastingSummary,proto3" json:"tasting_summary,omitempty"`
	FoodPairings        []string               `protobuf:"bytes,21,rep,name=food_pairings,json=foodPairings,proto3" json:"food_pairings,omitempty"`
	LocationId          string                 `protobuf:"bytes,22,opt,name=location_id,json=locationId,proto3" json:"location_id,omitempty"`
	SystembolagetId     string                 `protobuf:"bytes,23,opt,name=systembolaget_id,json=systembolagetId,proto3" json:"systembolaget_id,omitempty"`
	Barcode             string                 `protobuf:"bytes,24,opt,name=barcode,proto3" json:"barcode,omitempty"`
	CreatedAt           string                 `protobuf:"bytes,25,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt           string                 `protobuf:"bytes,26,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *Wine) Reset() {
	*x = Wine{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Wine) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Wine) ProtoMessage() {}

func (x *Wine) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Wine.ProtoReflect.Descriptor instead.
func (*Wine) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{0}
}

func (x *Wine) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Wine) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Wine) GetProducer() string {
	if x != nil {
		return x.Producer
	}
	return ""
}

func (x *Wine) GetVintage() int32 {
	if x != nil {
		return x.Vintage
	}
	return 0
}

func (x *Wine) GetWineType() string {
	if x != nil {
		return x.WineType
	}
	return ""
}

func (x *Wine) GetCountry() string {
	if x != nil {
		return x.Country
	}
	return ""
}

func (x *Wine) GetRegion() string {
	if x != nil {
		return x.Region
	}
	return ""
}

func (x *Wine) GetSubRegion() string {
	if x != nil {
		return x.SubRegion
	}
	return ""
}

func (x *Wine) GetAppellation() string {
	if x != nil {
		return x.Appellation
	}
	return ""
}

func (x *Wine) GetGrapeVarieties() []string {
	if x != nil {
		return x.GrapeVarieties
	}
	return nil
}

func (x *Wine) GetAlcoholContent() float32 {
	if x != nil {
		return x.AlcoholContent
	}
	return 0
}

func (x *Wine) GetBottleSize() string {
	if x != nil {
		return x.BottleSize
	}
	return ""
}

func (x *Wine) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *Wine) GetPurchasePrice() float64 {
	if x != nil {
		return x.PurchasePrice
	}
	return 0
}

func (x *Wine) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *Wine) GetPersonalRating() float32 {
	if x != nil {
		return x.PersonalRating
	}
	return 0
}

func (x *Wine) GetDrinkingWindowStart() int32 {
	if x != nil {
		return x.DrinkingWindowStart
	}
	return 0
}

func (x *Wine) GetDrinkingWindowEnd() int32 {
	if x != nil {
		return x.DrinkingWindowEnd
	}
	return 0
}

func (x *Wine) GetPeakMaturityYear() int32 {
	if x != nil {
		return x.PeakMaturityYear
	}
	return 0
}

func (x *Wine) GetTastingSummary() string {
	if x != nil {
		return x.TastingSummary
	}
	return ""
}

func (x *Wine) GetFoodPairings() []string {
	if x != nil {
		return x.FoodPairings
	}
	return nil
}

func (x *Wine) GetLocationId() string {
	if x != nil {
		return x.LocationId
	}
	return ""
}

func (x *Wine) GetSystembolagetId() string {
	if x != nil {
		return x.SystembolagetId
	}
	return ""
}

func (x *Wine) GetBarcode() string {
	if x != nil {
		return x.Barcode
	}
	return ""
}

func (x *Wine) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Wine) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

// WineInput carries the caller-editable fields of a wine.
type WineInput struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	Name                string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Producer            string                 `protobuf:"bytes,2,opt,name=producer,proto3" json:"producer,omitempty"`
	Vintage             int32                  `protobuf:"varint,3,opt,name=vintage,proto3" json:"vintage,omitempty"`
	WineType            string                 `protobuf:"bytes,4,opt,name=wine_type,json=wineType,proto3" json:"wine_type,omitempty"`
	Country             string                 `protobuf:"bytes,5,opt,name=country,proto3" json:"country,omitempty"`
	Region              string                 `protobuf:"bytes,6,opt,name=region,proto3" json:"region,omitempty"`
	SubRegion           string                 `protobuf:"bytes,7,opt,name=sub_region,json=subRegion,proto3" json:"sub_region,omitempty"`
	Appellation         string                 `protobuf:"bytes,8,opt,name=appellation,proto3" json:"appellation,omitempty"`
	GrapeVarieties      []string               `protobuf:"bytes,9,rep,name=grape_varieties,json=grapeVarieties,proto3" json:"grape_varieties,omitempty"`
	AlcoholContent      float32                `protobuf:"fixed32,10,opt,name=alcohol_content,json=alcoholContent,proto3" json:"alcohol_content,omitempty"`
	BottleSize          string                 `protobuf:"bytes,11,opt,name=bottle_size,json=bottleSize,proto3" json:"bottle_size,omitempty"`
	Quantity            int32                  `protobuf:"varint,12,opt,name=quantity,proto3" json:"quantity,omitempty"`
	PurchasePrice       float64                `protobuf:"fixed64,13,opt,name=purchase_price,json=purchasePrice,proto3" json:"purchase_price,omitempty"`
	Currency            string                 `protobuf:"bytes,14,opt,name=currency,proto3" json:"currency,omitempty"`
	PersonalRating      float32                `protobuf:"fixed32,15,opt,name=personal_rating,json=personalRating,proto3" json:"personal_rating,omitempty"`
	DrinkingWindowStart int32                  `protobuf:"varint,16,opt,name=drinking_window_start,json=drinkingWindowStart,proto3" json:"drinking_window_start,omitempty"`
	DrinkingWindowEnd   int32                  `protobuf:"varint,17,opt,name=drinking_window_end,json=drinkingWindowEnd,proto3" json:"drinking_window_end,omitempty"`
	TastingSummary      string                 `protobuf:"bytes,18,opt,name=tasting_summary,json=tastingSummary,proto3" json:"tasting_summary,omitempty"`
	LocationId          string                 `protobuf:"bytes,19,opt,name=location_id,json=locationId,proto3" json:"location_id,omitempty"`
	SystembolagetId     string                 `protobuf:"bytes,20,opt,name=systembolaget_id,json=systembolagetId,proto3" json:"systembolaget_id,omitempty"`
	Barcode             string                 `protobuf:"bytes,21,opt,name=barcode,proto3" json:"barcode,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *WineInput) Reset() {
	*x = WineInput{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *WineInput) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*WineInput) ProtoMessage() {}

func (x *WineInput) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use WineInput.ProtoReflect.Descriptor instead.
func (*WineInput) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{1}
}

func (x *WineInput) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *WineInput) GetProducer() string {
	if x != nil {
		return x.Producer
	}
	return ""
}

func (x *WineInput) GetVintage() int32 {
	if x != nil {
		return x.Vintage
	}
	return 0
}

func (x *WineInput) GetWineType() string {
	if x != nil {
		return x.WineType
	}
	return ""
}

func (x *WineInput) GetCountry() string {
	if x != nil {
		return x.Country
	}
	return ""
}

func (x *WineInput) GetRegion() string {
	if x != nil {
		return x.Region
	}
	return ""
}

func (x *WineInput) GetSubRegion() string {
	if x != nil {
		return x.SubRegion
	}
	return ""
}

func (x *WineInput) GetAppellation() string {
	if x != nil {
		return x.Appellation
	}
	return ""
}

func (x *WineInput) GetGrapeVarieties() []string {
	if x != nil {
		return x.GrapeVarieties
	}
	return nil
}

func (x *WineInput) GetAlcoholContent() float32 {
	if x != nil {
		return x.AlcoholContent
	}
	return 0
}

func (x *WineInput) GetBottleSize() string {
	if x != nil {
		return x.BottleSize
	}
	return ""
}

func (x *WineInput) GetQuantity() int32 {
	if x != nil {
		return x.Quantity
	}
	return 0
}

func (x *WineInput) GetPurchasePrice() float64 {
	if x != nil {
		return x.PurchasePrice
	}
	return 0
}

func (x *WineInput) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

func (x *WineInput) GetPersonalRating() float32 {
	if x != nil {
		return x.PersonalRating
	}
	return 0
}

func (x *WineInput) GetDrinkingWindowStart() int32 {
	if x != nil {
		return x.DrinkingWindowStart
	}
	return 0
}

func (x *WineInput) GetDrinkingWindowEnd() int32 {
	if x != nil {
		return x.DrinkingWindowEnd
	}
	return 0
}

func (x *WineInput) GetTastingSummary() string {
	if x != nil {
		return x.TastingSummary
	}
	return ""
}

func (x *WineInput) GetLocationId() string {
	if x != nil {
		return x.LocationId
	}
	return ""
}

func (x *WineInput) GetSystembolagetId() string {
	if x != nil {
		return x.SystembolagetId
	}
	return ""
}

func (x *WineInput) GetBarcode() string {
	if x != nil {
		return x.Barcode
	}
	return ""
}

type ScanJob struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Id                   string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	PhotoId              string                 `protobuf:"bytes,2,opt,name=photo_id,json=photoId,proto3" json:"photo_id,omitempty"`
	WineId               string                 `protobuf:"bytes,3,opt,name=wine_id,json=wineId,proto3" json:"wine_id,omitempty"`
	Format               string                 `protobuf:"bytes,4,opt,name=format,proto3" json:"format,omitempty"`
	Status               string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage         string                 `protobuf:"bytes,6,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	DetectionConfidence  float32                `protobuf:"fixed32,7,opt,name=detection_confidence,json=detectionConfidence,proto3" json:"detection_confidence,omitempty"`
	CroppedPath          string                 `protobuf:"bytes,8,opt,name=cropped_path,json=croppedPath,proto3" json:"cropped_path,omitempty"`
	RawText              string                 `protobuf:"bytes,9,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	ExtractedJson        string                 `protobuf:"bytes,10,opt,name=extracted_json,json=extractedJson,proto3" json:"extracted_json,omitempty"`
	ExtractionConfidence float32                `protobuf:"fixed32,11,opt,name=extraction_confidence,json=extractionConfidence,proto3" json:"extraction_confidence,omitempty"`
	NeedsReview          bool                   `protobuf:"varint,12,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	StartedAt            string                 `protobuf:"bytes,13,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt           string                 `protobuf:"bytes,14,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *ScanJob) Reset() {
	*x = ScanJob{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanJob) ProtoMessage() {}

func (x *ScanJob) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanJob.ProtoReflect.Descriptor instead.
func (*ScanJob) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{2}
}

func (x *ScanJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ScanJob) GetPhotoId() string {
	if x != nil {
		return x.PhotoId
	}
	return ""
}

func (x *ScanJob) GetWineId() string {
	if x != nil {
		return x.WineId
	}
	return ""
}

func (x *ScanJob) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *ScanJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ScanJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ScanJob) GetDetectionConfidence() float32 {
	if x != nil {
		return x.DetectionConfidence
	}
	return 0
}

func (x *ScanJob) GetCroppedPath() string {
	if x != nil {
		return x.CroppedPath
	}
	return ""
}

func (x *ScanJob) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *ScanJob) GetExtractedJson() string {
	if x != nil {
		return x.ExtractedJson
	}
	return ""
}

func (x *ScanJob) GetExtractionConfidence() float32 {
	if x != nil {
		return x.ExtractionConfidence
	}
	return 0
}

func (x *ScanJob) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *ScanJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ScanJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type StorageLocation struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	LocationType  string                 `protobuf:"bytes,3,opt,name=location_type,json=locationType,proto3" json:"location_type,omitempty"`
	Capacity      int32                  `protobuf:"varint,4,opt,name=capacity,proto3" json:"capacity,omitempty"`
	Temperature   float32                `protobuf:"fixed32,5,opt,name=temperature,proto3" json:"temperature,omitempty"`
	Humidity      float32                `protobuf:"fixed32,6,opt,name=humidity,proto3" json:"humidity,omitempty"`
	IsActive      bool                   `protobuf:"varint,7,opt,name=is_active,json=isActive,proto3" json:"is_active,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StorageLocation) Reset() {
	*x = StorageLocation{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StorageLocation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StorageLocation) ProtoMessage() {}

func (x *StorageLocation) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StorageLocation.ProtoReflect.Descriptor instead.
func (*StorageLocation) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{3}
}

func (x *StorageLocation) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *StorageLocation) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *StorageLocation) GetLocationType() string {
	if x != nil {
		return x.LocationType
	}
	return ""
}

func (x *StorageLocation) GetCapacity() int32 {
	if x != nil {
		return x.Capacity
	}
	return 0
}

func (x *StorageLocation) GetTemperature() float32 {
	if x != nil {
		return x.Temperature
	}
	return 0
}

func (x *StorageLocation) GetHumidity() float32 {
	if x != nil {
		return x.Humidity
	}
	return 0
}

func (x *StorageLocation) GetIsActive() bool {
	if x != nil {
		return x.IsActive
	}
	return false
}

func (x *StorageLocation) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type TastingNote struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	WineId        string                 `protobuf:"bytes,2,opt,name=wine_id,json=wineId,proto3" json:"wine_id,omitempty"`
	TastingDate   string                 `protobuf:"bytes,3,opt,name=tasting_date,json=tastingDate,proto3" json:"tasting_date,omitempty"` // YYYY-MM-DD
	Location      string                 `protobuf:"bytes,4,opt,name=location,proto3" json:"location,omitempty"`
	Occasion      string                 `protobuf:"bytes,5,opt,name=occasion,proto3" json:"occasion,omitempty"`
	Color         string                 `protobuf:"bytes,6,opt,name=color,proto3" json:"color,omitempty"`
	Aromas        string                 `protobuf:"bytes,7,opt,name=aromas,proto3" json:"aromas,omitempty"`
	Palate        string                 `protobuf:"bytes,8,opt,name=palate,proto3" json:"palate,omitempty"`
	Score         float32                `protobuf:"fixed32,9,opt,name=score,proto3" json:"score,omitempty"`
	Notes         string                 `protobuf:"bytes,10,opt,name=notes,proto3" json:"notes,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TastingNote) Reset() {
	*x = TastingNote{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TastingNote) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TastingNote) ProtoMessage() {}

func (x *TastingNote) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TastingNote.ProtoReflect.Descriptor instead.
func (*TastingNote) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{4}
}

func (x *TastingNote) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *TastingNote) GetWineId() string {
	if x != nil {
		return x.WineId
	}
	return ""
}

func (x *TastingNote) GetTastingDate() string {
	if x != nil {
		return x.TastingDate
	}
	return ""
}

func (x *TastingNote) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *TastingNote) GetOccasion() string {
	if x != nil {
		return x.Occasion
	}
	return ""
}

func (x *TastingNote) GetColor() string {
	if x != nil {
		return x.Color
	}
	return ""
}

func (x *TastingNote) GetAromas() string {
	if x != nil {
		return x.Aromas
	}
	return ""
}

func (x *TastingNote) GetPalate() string {
	if x != nil {
		return x.Palate
	}
	return ""
}

func (x *TastingNote) GetScore() float32 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *TastingNote) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *TastingNote) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type TastingNoteInput struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TastingDate   string                 `protobuf:"bytes,1,opt,name=tasting_date,json=tastingDate,proto3" json:"tasting_date,omitempty"` // YYYY-MM-DD
	Location      string                 `protobuf:"bytes,2,opt,name=location,proto3" json:"location,omitempty"`
	Occasion      string                 `protobuf:"bytes,3,opt,name=occasion,proto3" json:"occasion,omitempty"`
	Color         string                 `protobuf:"bytes,4,opt,name=color,proto3" json:"color,omitempty"`
	Aromas        string                 `protobuf:"bytes,5,opt,name=aromas,proto3" json:"aromas,omitempty"`
	Palate        string                 `protobuf:"bytes,6,opt,name=palate,proto3" json:"palate,omitempty"`
	Score         float32                `protobuf:"fixed32,7,opt,name=score,proto3" json:"score,omitempty"`
	Notes         string                 `protobuf:"bytes,8,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TastingNoteInput) Reset() {
	*x = TastingNoteInput{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TastingNoteInput) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TastingNoteInput) ProtoMessage() {}

func (x *TastingNoteInput) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TastingNoteInput.ProtoReflect.Descriptor instead.
func (*TastingNoteInput) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{5}
}

func (x *TastingNoteInput) GetTastingDate() string {
	if x != nil {
		return x.TastingDate
	}
	return ""
}

func (x *TastingNoteInput) GetLocation() string {
	if x != nil {
		return x.Location
	}
	return ""
}

func (x *TastingNoteInput) GetOccasion() string {
	if x != nil {
		return x.Occasion
	}
	return ""
}

func (x *TastingNoteInput) GetColor() string {
	if x != nil {
		return x.Color
	}
	return ""
}

func (x *TastingNoteInput) GetAromas() string {
	if x != nil {
		return x.Aromas
	}
	return ""
}

func (x *TastingNoteInput) GetPalate() string {
	if x != nil {
		return x.Palate
	}
	return ""
}

func (x *TastingNoteInput) GetScore() float32 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *TastingNoteInput) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type CreateWineRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Wine          *WineInput             `protobuf:"bytes,1,opt,name=wine,proto3" json:"wine,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateWineRequest) Reset() {
	*x = CreateWineRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateWineRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateWineRequest) ProtoMessage() {}

func (x *CreateWineRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateWineRequest.ProtoReflect.Descriptor instead.
func (*CreateWineRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{6}
}

func (x *CreateWineRequest) GetWine() *WineInput {
	if x != nil {
		return x.Wine
	}
	return nil
}

type CreateWineResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Wine          *Wine                  `protobuf:"bytes,1,opt,name=wine,proto3" json:"wine,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateWineResponse) Reset() {
	*x = CreateWineResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateWineResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateWineResponse) ProtoMessage() {}

func (x *CreateWineResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateWineResponse.ProtoReflect.Descriptor instead.
func (*CreateWineResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{7}
}

func (x *CreateWineResponse) GetWine() *Wine {
	if x != nil {
		return x.Wine
	}
	return nil
}

type GetWineRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WineId        string                 `protobuf:"bytes,1,opt,name=wine_id,json=wineId,proto3" json:"wine_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetWineRequest) Reset() {
	*x = GetWineRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetWineRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetWineRequest) ProtoMessage() {}

func (x *GetWineRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetWineRequest.ProtoReflect.Descriptor instead.
func (*GetWineRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{8}
}

func (x *GetWineRequest) GetWineId() string {
	if x != nil {
		return x.WineId
	}
	return ""
}

type GetWineResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Wine           *Wine                  `protobuf:"bytes,1,opt,name=wine,proto3" json:"wine,omitempty"`
	DrinkingStatus string                 `protobuf:"bytes,2,opt,name=drinking_status,json=drinkingStatus,proto3" json:"drinking_status,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *GetWineResponse) Reset() {
	*x = GetWineResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetWineResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetWineResponse) ProtoMessage() {}

func (x *GetWineResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetWineResponse.ProtoReflect.Descriptor instead.
func (*GetWineResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{9}
}

func (x *GetWineResponse) GetWine() *Wine {
	if x != nil {
		return x.Wine
	}
	return nil
}

func (x *GetWineResponse) GetDrinkingStatus() string {
	if x != nil {
		return x.DrinkingStatus
	}
	return ""
}

type UpdateWineRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WineId        string                 `protobuf:"bytes,1,opt,name=wine_id,json=wineId,proto3" json:"wine_id,omitempty"`
	Wine          *WineInput             `protobuf:"bytes,2,opt,name=wine,proto3" json:"wine,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateWineRequest) Reset() {
	*x = UpdateWineRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateWineRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateWineRequest) ProtoMessage() {}

func (x *UpdateWineRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateWineRequest.ProtoReflect.Descriptor instead.
func (*UpdateWineRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{10}
}

func (x *UpdateWineRequest) GetWineId() string {
	if x != nil {
		return x.WineId
	}
	return ""
}

func (x *UpdateWineRequest) GetWine() *WineInput {
	if x != nil {
		return x.Wine
	}
	return nil
}

type UpdateWineResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Wine          *Wine                  `protobuf:"bytes,1,opt,name=wine,proto3" json:"wine,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateWineResponse) Reset() {
	*x = UpdateWineResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateWineResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateWineResponse) ProtoMessage() {}

func (x *UpdateWineResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateWineResponse.ProtoReflect.Descriptor instead.
func (*UpdateWineResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{11}
}

func (x *UpdateWineResponse) GetWine() *Wine {
	if x != nil {
		return x.Wine
	}
	return nil
}

type DeleteWineRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WineId        string                 `protobuf:"bytes,1,opt,name=wine_id,json=wineId,proto3" json:"wine_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteWineRequest) Reset() {
	*x = DeleteWineRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteWineRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteWineRequest) ProtoMessage() {}

func (x *DeleteWineRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteWineRequest.ProtoReflect.Descriptor instead.
func (*DeleteWineRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{12}
}

func (x *DeleteWineRequest) GetWineId() string {
	if x != nil {
		return x.WineId
	}
	return ""
}

type DeleteWineResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DeleteWineResponse) Reset() {
	*x = DeleteWineResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeleteWineResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeleteWineResponse) ProtoMessage() {}

func (x *DeleteWineResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DeleteWineResponse.ProtoReflect.Descriptor instead.
func (*DeleteWineResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{13}
}

type ListWinesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WineType      string                 `protobuf:"bytes,1,opt,name=wine_type,json=wineType,proto3" json:"wine_type,omitempty"`
	Country       string                 `protobuf:"bytes,2,opt,name=country,proto3" json:"country,omitempty"`
	Region        string                 `protobuf:"bytes,3,opt,name=region,proto3" json:"region,omitempty"`
	LocationId    string                 `protobuf:"bytes,4,opt,name=location_id,json=locationId,proto3" json:"location_id,omitempty"`
	InStockOnly   bool                   `protobuf:"varint,5,opt,name=in_stock_only,json=inStockOnly,proto3" json:"in_stock_only,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListWinesRequest) Reset() {
	*x = ListWinesRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListWinesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWinesRequest) ProtoMessage() {}

func (x *ListWinesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWinesRequest.ProtoReflect.Descriptor instead.
func (*ListWinesRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{14}
}

func (x *ListWinesRequest) GetWineType() string {
	if x != nil {
		return x.WineType
	}
	return ""
}

func (x *ListWinesRequest) GetCountry() string {
	if x != nil {
		return x.Country
	}
	return ""
}

func (x *ListWinesRequest) GetRegion() string {
	if x != nil {
		return x.Region
	}
	return ""
}

func (x *ListWinesRequest) GetLocationId() string {
	if x != nil {
		return x.LocationId
	}
	return ""
}

func (x *ListWinesRequest) GetInStockOnly() bool {
	if x != nil {
		return x.InStockOnly
	}
	return false
}

type ListWinesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Wines         []*Wine                `protobuf:"bytes,1,rep,name=wines,proto3" json:"wines,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListWinesResponse) Reset() {
	*x = ListWinesResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListWinesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListWinesResponse) ProtoMessage() {}

func (x *ListWinesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListWinesResponse.ProtoReflect.Descriptor instead.
func (*ListWinesResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{15}
}

func (x *ListWinesResponse) GetWines() []*Wine {
	if x != nil {
		return x.Wines
	}
	return nil
}

type SearchWinesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Query         string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchWinesRequest) Reset() {
	*x = SearchWinesRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchWinesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchWinesRequest) ProtoMessage() {}

func (x *SearchWinesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchWinesRequest.ProtoReflect.Descriptor instead.
func (*SearchWinesRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{16}
}

func (x *SearchWinesRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

type SearchWinesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Wines         []*Wine                `protobuf:"bytes,1,rep,name=wines,proto3" json:"wines,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchWinesResponse) Reset() {
	*x = SearchWinesResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchWinesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchWinesResponse) ProtoMessage() {}

func (x *SearchWinesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchWinesResponse.ProtoReflect.Descriptor instead.
func (*SearchWinesResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{17}
}

func (x *SearchWinesResponse) GetWines() []*Wine {
	if x != nil {
		return x.Wines
	}
	return nil
}

type ConsumeBottleRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WineId        string                 `protobuf:"bytes,1,opt,name=wine_id,json=wineId,proto3" json:"wine_id,omitempty"`
	Note          *TastingNoteInput      `protobuf:"bytes,2,opt,name=note,proto3" json:"note,omitempty"` // optional tasting note recorded with the bottle
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConsumeBottleRequest) Reset() {
	*x = ConsumeBottleRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConsumeBottleRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConsumeBottleRequest) ProtoMessage() {}

func (x *ConsumeBottleRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConsumeBottleRequest.ProtoReflect.Descriptor instead.
func (*ConsumeBottleRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{18}
}

func (x *ConsumeBottleRequest) GetWineId() string {
	if x != nil {
		return x.WineId
	}
	return ""
}

func (x *ConsumeBottleRequest) GetNote() *TastingNoteInput {
	if x != nil {
		return x.Note
	}
	return nil
}

type ConsumeBottleResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Wine          *Wine                  `protobuf:"bytes,1,opt,name=wine,proto3" json:"wine,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConsumeBottleResponse) Reset() {
	*x = ConsumeBottleResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConsumeBottleResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConsumeBottleResponse) ProtoMessage() {}

func (x *ConsumeBottleResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConsumeBottleResponse.ProtoReflect.Descriptor instead.
func (*ConsumeBottleResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{19}
}

func (x *ConsumeBottleResponse) GetWine() *Wine {
	if x != nil {
		return x.Wine
	}
	return nil
}

type AddBottlesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WineId        string                 `protobuf:"bytes,1,opt,name=wine_id,json=wineId,proto3" json:"wine_id,omitempty"`
	Count         int32                  `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddBottlesRequest) Reset() {
	*x = AddBottlesRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddBottlesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddBottlesRequest) ProtoMessage() {}

func (x *AddBottlesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddBottlesRequest.ProtoReflect.Descriptor instead.
func (*AddBottlesRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{20}
}

func (x *AddBottlesRequest) GetWineId() string {
	if x != nil {
		return x.WineId
	}
	return ""
}

func (x *AddBottlesRequest) GetCount() int32 {
	if x != nil {
		return x.Count
	}
	return 0
}

type AddBottlesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Wine          *Wine                  `protobuf:"bytes,1,opt,name=wine,proto3" json:"wine,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddBottlesResponse) Reset() {
	*x = AddBottlesResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddBottlesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddBottlesResponse) ProtoMessage() {}

func (x *AddBottlesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddBottlesResponse.ProtoReflect.Descriptor instead.
func (*AddBottlesResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{21}
}

func (x *AddBottlesResponse) GetWine() *Wine {
	if x != nil {
		return x.Wine
	}
	return nil
}

type ListReadyToDrinkRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReadyToDrinkRequest) Reset() {
	*x = ListReadyToDrinkRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReadyToDrinkRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReadyToDrinkRequest) ProtoMessage() {}

func (x *ListReadyToDrinkRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReadyToDrinkRequest.ProtoReflect.Descriptor instead.
func (*ListReadyToDrinkRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{22}
}

type ListReadyToDrinkResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ready         []*Wine                `protobuf:"bytes,1,rep,name=ready,proto3" json:"ready,omitempty"`
	Overdue       []*Wine                `protobuf:"bytes,2,rep,name=overdue,proto3" json:"overdue,omitempty"`
	Upcoming      []*Wine                `protobuf:"bytes,3,rep,name=upcoming,proto3" json:"upcoming,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReadyToDrinkResponse) Reset() {
	*x = ListReadyToDrinkResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReadyToDrinkResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReadyToDrinkResponse) ProtoMessage() {}

func (x *ListReadyToDrinkResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReadyToDrinkResponse.ProtoReflect.Descriptor instead.
func (*ListReadyToDrinkResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{23}
}

func (x *ListReadyToDrinkResponse) GetReady() []*Wine {
	if x != nil {
		return x.Ready
	}
	return nil
}

func (x *ListReadyToDrinkResponse) GetOverdue() []*Wine {
	if x != nil {
		return x.Overdue
	}
	return nil
}

func (x *ListReadyToDrinkResponse) GetUpcoming() []*Wine {
	if x != nil {
		return x.Upcoming
	}
	return nil
}

type GetStatisticsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStatisticsRequest) Reset() {
	*x = GetStatisticsRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatisticsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatisticsRequest) ProtoMessage() {}

func (x *GetStatisticsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatisticsRequest.ProtoReflect.Descriptor instead.
func (*GetStatisticsRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{24}
}

type GetStatisticsResponse struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	TotalWines      int32                  `protobuf:"varint,1,opt,name=total_wines,json=totalWines,proto3" json:"total_wines,omitempty"`
	TotalBottles    int32                  `protobuf:"varint,2,opt,name=total_bottles,json=totalBottles,proto3" json:"total_bottles,omitempty"`
	TotalValue      float64                `protobuf:"fixed64,3,opt,name=total_value,json=totalValue,proto3" json:"total_value,omitempty"`
	BottlesByType   map[string]int32       `protobuf:"bytes,4,rep,name=bottles_by_type,json=bottlesByType,proto3" json:"bottles_by_type,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"varint,2,opt,name=value"`
	AverageRating   float32                `protobuf:"fixed32,5,opt,name=average_rating,json=averageRating,proto3" json:"average_rating,omitempty"`
	DistinctRegions int32                  `protobuf:"varint,6,opt,name=distinct_regions,json=distinctRegions,proto3" json:"distinct_regions,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *GetStatisticsResponse) Reset() {
	*x = GetStatisticsResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatisticsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatisticsResponse) ProtoMessage() {}

func (x *GetStatisticsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatisticsResponse.ProtoReflect.Descriptor instead.
func (*GetStatisticsResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{25}
}

func (x *GetStatisticsResponse) GetTotalWines() int32 {
	if x != nil {
		return x.TotalWines
	}
	return 0
}

func (x *GetStatisticsResponse) GetTotalBottles() int32 {
	if x != nil {
		return x.TotalBottles
	}
	return 0
}

func (x *GetStatisticsResponse) GetTotalValue() float64 {
	if x != nil {
		return x.TotalValue
	}
	return 0
}

func (x *GetStatisticsResponse) GetBottlesByType() map[string]int32 {
	if x != nil {
		return x.BottlesByType
	}
	return nil
}

func (x *GetStatisticsResponse) GetAverageRating() float32 {
	if x != nil {
		return x.AverageRating
	}
	return 0
}

func (x *GetStatisticsResponse) GetDistinctRegions() int32 {
	if x != nil {
		return x.DistinctRegions
	}
	return 0
}

type EstimateWindowRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	WineType       string                 `protobuf:"bytes,1,opt,name=wine_type,json=wineType,proto3" json:"wine_type,omitempty"`
	Vintage        int32                  `protobuf:"varint,2,opt,name=vintage,proto3" json:"vintage,omitempty"` // 0 = unknown
	Region         string                 `protobuf:"bytes,3,opt,name=region,proto3" json:"region,omitempty"`
	GrapeVarieties []string               `protobuf:"bytes,4,rep,name=grape_varieties,json=grapeVarieties,proto3" json:"grape_varieties,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *EstimateWindowRequest) Reset() {
	*x = EstimateWindowRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EstimateWindowRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EstimateWindowRequest) ProtoMessage() {}

func (x *EstimateWindowRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EstimateWindowRequest.ProtoReflect.Descriptor instead.
func (*EstimateWindowRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{26}
}

func (x *EstimateWindowRequest) GetWineType() string {
	if x != nil {
		return x.WineType
	}
	return ""
}

func (x *EstimateWindowRequest) GetVintage() int32 {
	if x != nil {
		return x.Vintage
	}
	return 0
}

func (x *EstimateWindowRequest) GetRegion() string {
	if x != nil {
		return x.Region
	}
	return ""
}

func (x *EstimateWindowRequest) GetGrapeVarieties() []string {
	if x != nil {
		return x.GrapeVarieties
	}
	return nil
}

type EstimateWindowResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	StartYear     int32                  `protobuf:"varint,1,opt,name=start_year,json=startYear,proto3" json:"start_year,omitempty"`
	PeakYear      int32                  `protobuf:"varint,2,opt,name=peak_year,json=peakYear,proto3" json:"peak_year,omitempty"`
	EndYear       int32                  `protobuf:"varint,3,opt,name=end_year,json=endYear,proto3" json:"end_year,omitempty"`
	Notes         string                 `protobuf:"bytes,4,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *EstimateWindowResponse) Reset() {
	*x = EstimateWindowResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *EstimateWindowResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*EstimateWindowResponse) ProtoMessage() {}

func (x *EstimateWindowResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use EstimateWindowResponse.ProtoReflect.Descriptor instead.
func (*EstimateWindowResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{27}
}

func (x *EstimateWindowResponse) GetStartYear() int32 {
	if x != nil {
		return x.StartYear
	}
	return 0
}

func (x *EstimateWindowResponse) GetPeakYear() int32 {
	if x != nil {
		return x.PeakYear
	}
	return 0
}

func (x *EstimateWindowResponse) GetEndYear() int32 {
	if x != nil {
		return x.EndYear
	}
	return 0
}

func (x *EstimateWindowResponse) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type AddTastingNoteRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WineId        string                 `protobuf:"bytes,1,opt,name=wine_id,json=wineId,proto3" json:"wine_id,omitempty"`
	Note          *TastingNoteInput      `protobuf:"bytes,2,opt,name=note,proto3" json:"note,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddTastingNoteRequest) Reset() {
	*x = AddTastingNoteRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddTastingNoteRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddTastingNoteRequest) ProtoMessage() {}

func (x *AddTastingNoteRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddTastingNoteRequest.ProtoReflect.Descriptor instead.
func (*AddTastingNoteRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{28}
}

func (x *AddTastingNoteRequest) GetWineId() string {
	if x != nil {
		return x.WineId
	}
	return ""
}

func (x *AddTastingNoteRequest) GetNote() *TastingNoteInput {
	if x != nil {
		return x.Note
	}
	return nil
}

type AddTastingNoteResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Note          *TastingNote           `protobuf:"bytes,1,opt,name=note,proto3" json:"note,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddTastingNoteResponse) Reset() {
	*x = AddTastingNoteResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddTastingNoteResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddTastingNoteResponse) ProtoMessage() {}

func (x *AddTastingNoteResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddTastingNoteResponse.ProtoReflect.Descriptor instead.
func (*AddTastingNoteResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{29}
}

func (x *AddTastingNoteResponse) GetNote() *TastingNote {
	if x != nil {
		return x.Note
	}
	return nil
}

type ListTastingNotesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WineId        string                 `protobuf:"bytes,1,opt,name=wine_id,json=wineId,proto3" json:"wine_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTastingNotesRequest) Reset() {
	*x = ListTastingNotesRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTastingNotesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTastingNotesRequest) ProtoMessage() {}

func (x *ListTastingNotesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTastingNotesRequest.ProtoReflect.Descriptor instead.
func (*ListTastingNotesRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{30}
}

func (x *ListTastingNotesRequest) GetWineId() string {
	if x != nil {
		return x.WineId
	}
	return ""
}

type ListTastingNotesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Notes         []*TastingNote         `protobuf:"bytes,1,rep,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListTastingNotesResponse) Reset() {
	*x = ListTastingNotesResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListTastingNotesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListTastingNotesResponse) ProtoMessage() {}

func (x *ListTastingNotesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListTastingNotesResponse.ProtoReflect.Descriptor instead.
func (*ListTastingNotesResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{31}
}

func (x *ListTastingNotesResponse) GetNotes() []*TastingNote {
	if x != nil {
		return x.Notes
	}
	return nil
}

type CreateLocationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	LocationType  string                 `protobuf:"bytes,2,opt,name=location_type,json=locationType,proto3" json:"location_type,omitempty"`
	Capacity      int32                  `protobuf:"varint,3,opt,name=capacity,proto3" json:"capacity,omitempty"`
	Temperature   float32                `protobuf:"fixed32,4,opt,name=temperature,proto3" json:"temperature,omitempty"`
	Humidity      float32                `protobuf:"fixed32,5,opt,name=humidity,proto3" json:"humidity,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateLocationRequest) Reset() {
	*x = CreateLocationRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateLocationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateLocationRequest) ProtoMessage() {}

func (x *CreateLocationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateLocationRequest.ProtoReflect.Descriptor instead.
func (*CreateLocationRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{32}
}

func (x *CreateLocationRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateLocationRequest) GetLocationType() string {
	if x != nil {
		return x.LocationType
	}
	return ""
}

func (x *CreateLocationRequest) GetCapacity() int32 {
	if x != nil {
		return x.Capacity
	}
	return 0
}

func (x *CreateLocationRequest) GetTemperature() float32 {
	if x != nil {
		return x.Temperature
	}
	return 0
}

func (x *CreateLocationRequest) GetHumidity() float32 {
	if x != nil {
		return x.Humidity
	}
	return 0
}

type CreateLocationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Location      *StorageLocation       `protobuf:"bytes,1,opt,name=location,proto3" json:"location,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateLocationResponse) Reset() {
	*x = CreateLocationResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateLocationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateLocationResponse) ProtoMessage() {}

func (x *CreateLocationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateLocationResponse.ProtoReflect.Descriptor instead.
func (*CreateLocationResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{33}
}

func (x *CreateLocationResponse) GetLocation() *StorageLocation {
	if x != nil {
		return x.Location
	}
	return nil
}

type ListLocationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ActiveOnly    bool                   `protobuf:"varint,1,opt,name=active_only,json=activeOnly,proto3" json:"active_only,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLocationsRequest) Reset() {
	*x = ListLocationsRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLocationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLocationsRequest) ProtoMessage() {}

func (x *ListLocationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLocationsRequest.ProtoReflect.Descriptor instead.
func (*ListLocationsRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{34}
}

func (x *ListLocationsRequest) GetActiveOnly() bool {
	if x != nil {
		return x.ActiveOnly
	}
	return false
}

type ListLocationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Locations     []*StorageLocation     `protobuf:"bytes,1,rep,name=locations,proto3" json:"locations,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListLocationsResponse) Reset() {
	*x = ListLocationsResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListLocationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListLocationsResponse) ProtoMessage() {}

func (x *ListLocationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListLocationsResponse.ProtoReflect.Descriptor instead.
func (*ListLocationsResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{35}
}

func (x *ListLocationsResponse) GetLocations() []*StorageLocation {
	if x != nil {
		return x.Locations
	}
	return nil
}

type ExportCellarRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	WineType      string                 `protobuf:"bytes,1,opt,name=wine_type,json=wineType,proto3" json:"wine_type,omitempty"`
	InStockOnly   bool                   `protobuf:"varint,2,opt,name=in_stock_only,json=inStockOnly,proto3" json:"in_stock_only,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCellarRequest) Reset() {
	*x = ExportCellarRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCellarRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCellarRequest) ProtoMessage() {}

func (x *ExportCellarRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCellarRequest.ProtoReflect.Descriptor instead.
func (*ExportCellarRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{36}
}

func (x *ExportCellarRequest) GetWineType() string {
	if x != nil {
		return x.WineType
	}
	return ""
}

func (x *ExportCellarRequest) GetInStockOnly() bool {
	if x != nil {
		return x.InStockOnly
	}
	return false
}

type ExportCellarResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCellarResponse) Reset() {
	*x = ExportCellarResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCellarResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCellarResponse) ProtoMessage() {}

func (x *ExportCellarResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCellarResponse.ProtoReflect.Descriptor instead.
func (*ExportCellarResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{37}
}

func (x *ExportCellarResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ImportCellarRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Json          []byte                 `protobuf:"bytes,1,opt,name=json,proto3" json:"json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportCellarRequest) Reset() {
	*x = ImportCellarRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[38]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportCellarRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportCellarRequest) ProtoMessage() {}

func (x *ImportCellarRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[38]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportCellarRequest.ProtoReflect.Descriptor instead.
func (*ImportCellarRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{38}
}

func (x *ImportCellarRequest) GetJson() []byte {
	if x != nil {
		return x.Json
	}
	return nil
}

type ImportCellarResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Imported      int32                  `protobuf:"varint,1,opt,name=imported,proto3" json:"imported,omitempty"`
	Failed        int32                  `protobuf:"varint,2,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportCellarResponse) Reset() {
	*x = ImportCellarResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[39]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportCellarResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportCellarResponse) ProtoMessage() {}

func (x *ImportCellarResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[39]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportCellarResponse.ProtoReflect.Descriptor instead.
func (*ImportCellarResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{39}
}

func (x *ImportCellarResponse) GetImported() int32 {
	if x != nil {
		return x.Imported
	}
	return 0
}

func (x *ImportCellarResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type ScanLabelRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanLabelRequest) Reset() {
	*x = ScanLabelRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[40]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanLabelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanLabelRequest) ProtoMessage() {}

func (x *ScanLabelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[40]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanLabelRequest.ProtoReflect.Descriptor instead.
func (*ScanLabelRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{40}
}

func (x *ScanLabelRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type ScanLabelResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ScanJob               `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	Deduplicated  bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanLabelResponse) Reset() {
	*x = ScanLabelResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[41]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanLabelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanLabelResponse) ProtoMessage() {}

func (x *ScanLabelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[41]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanLabelResponse.ProtoReflect.Descriptor instead.
func (*ScanLabelResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{41}
}

func (x *ScanLabelResponse) GetJob() *ScanJob {
	if x != nil {
		return x.Job
	}
	return nil
}

func (x *ScanLabelResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

type ScanDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,2,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanDirectoryRequest) Reset() {
	*x = ScanDirectoryRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[42]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanDirectoryRequest) ProtoMessage() {}

func (x *ScanDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[42]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanDirectoryRequest.ProtoReflect.Descriptor instead.
func (*ScanDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{42}
}

func (x *ScanDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *ScanDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type ScanDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Jobs          []*ScanJob             `protobuf:"bytes,6,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ScanDirectoryResponse) Reset() {
	*x = ScanDirectoryResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[43]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ScanDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScanDirectoryResponse) ProtoMessage() {}

func (x *ScanDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[43]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScanDirectoryResponse.ProtoReflect.Descriptor instead.
func (*ScanDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{43}
}

func (x *ScanDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *ScanDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *ScanDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *ScanDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *ScanDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *ScanDirectoryResponse) GetJobs() []*ScanJob {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type GetScanJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetScanJobRequest) Reset() {
	*x = GetScanJobRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[44]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScanJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScanJobRequest) ProtoMessage() {}

func (x *GetScanJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[44]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScanJobRequest.ProtoReflect.Descriptor instead.
func (*GetScanJobRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{44}
}

func (x *GetScanJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetScanJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ScanJob               `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetScanJobResponse) Reset() {
	*x = GetScanJobResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[45]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetScanJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetScanJobResponse) ProtoMessage() {}

func (x *GetScanJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[45]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetScanJobResponse.ProtoReflect.Descriptor instead.
func (*GetScanJobResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{45}
}

func (x *GetScanJobResponse) GetJob() *ScanJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListScanJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Limit         int32                  `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListScanJobsRequest) Reset() {
	*x = ListScanJobsRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[46]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListScanJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListScanJobsRequest) ProtoMessage() {}

func (x *ListScanJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[46]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListScanJobsRequest.ProtoReflect.Descriptor instead.
func (*ListScanJobsRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{46}
}

func (x *ListScanJobsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListScanJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*ScanJob             `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListScanJobsResponse) Reset() {
	*x = ListScanJobsResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[47]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListScanJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListScanJobsResponse) ProtoMessage() {}

func (x *ListScanJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[47]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListScanJobsResponse.ProtoReflect.Descriptor instead.
func (*ListScanJobsResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{47}
}

func (x *ListScanJobsResponse) GetJobs() []*ScanJob {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type ConfirmScanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Overrides     *WineInput             `protobuf:"bytes,2,opt,name=overrides,proto3" json:"overrides,omitempty"` // optional corrections before the wine is created
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmScanRequest) Reset() {
	*x = ConfirmScanRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[48]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmScanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmScanRequest) ProtoMessage() {}

func (x *ConfirmScanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[48]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmScanRequest.ProtoReflect.Descriptor instead.
func (*ConfirmScanRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{48}
}

func (x *ConfirmScanRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *ConfirmScanRequest) GetOverrides() *WineInput {
	if x != nil {
		return x.Overrides
	}
	return nil
}

type ConfirmScanResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Wine          *Wine                  `protobuf:"bytes,1,opt,name=wine,proto3" json:"wine,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ConfirmScanResponse) Reset() {
	*x = ConfirmScanResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[49]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ConfirmScanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ConfirmScanResponse) ProtoMessage() {}

func (x *ConfirmScanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[49]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ConfirmScanResponse.ProtoReflect.Descriptor instead.
func (*ConfirmScanResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{49}
}

func (x *ConfirmScanResponse) GetWine() *Wine {
	if x != nil {
		return x.Wine
	}
	return nil
}

type SearchCatalogRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Query         string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	Page          int32                  `protobuf:"varint,2,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchCatalogRequest) Reset() {
	*x = SearchCatalogRequest{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[50]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchCatalogRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchCatalogRequest) ProtoMessage() {}

func (x *SearchCatalogRequest) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[50]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchCatalogRequest.ProtoReflect.Descriptor instead.
func (*SearchCatalogRequest) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{50}
}

func (x *SearchCatalogRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *SearchCatalogRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *SearchCatalogRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type CatalogProduct struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	ProductId        string                 `protobuf:"bytes,1,opt,name=product_id,json=productId,proto3" json:"product_id,omitempty"`
	ProductName      string                 `protobuf:"bytes,2,opt,name=product_name,json=productName,proto3" json:"product_name,omitempty"`
	ProducerName     string                 `protobuf:"bytes,3,opt,name=producer_name,json=producerName,proto3" json:"producer_name,omitempty"`
	Vintage          int32                  `protobuf:"varint,4,opt,name=vintage,proto3" json:"vintage,omitempty"`
	Country          string                 `protobuf:"bytes,5,opt,name=country,proto3" json:"country,omitempty"`
	Category         string                 `protobuf:"bytes,6,opt,name=category,proto3" json:"category,omitempty"`
	TasteDescription string                 `protobuf:"bytes,7,opt,name=taste_description,json=tasteDescription,proto3" json:"taste_description,omitempty"`
	Usage            string                 `protobuf:"bytes,8,opt,name=usage,proto3" json:"usage,omitempty"`
	WineType         string                 `protobuf:"bytes,9,opt,name=wine_type,json=wineType,proto3" json:"wine_type,omitempty"` // canonical type derived from the category levels
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *CatalogProduct) Reset() {
	*x = CatalogProduct{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[51]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CatalogProduct) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CatalogProduct) ProtoMessage() {}

func (x *CatalogProduct) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[51]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CatalogProduct.ProtoReflect.Descriptor instead.
func (*CatalogProduct) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{51}
}

func (x *CatalogProduct) GetProductId() string {
	if x != nil {
		return x.ProductId
	}
	return ""
}

func (x *CatalogProduct) GetProductName() string {
	if x != nil {
		return x.ProductName
	}
	return ""
}

func (x *CatalogProduct) GetProducerName() string {
	if x != nil {
		return x.ProducerName
	}
	return ""
}

func (x *CatalogProduct) GetVintage() int32 {
	if x != nil {
		return x.Vintage
	}
	return 0
}

func (x *CatalogProduct) GetCountry() string {
	if x != nil {
		return x.Country
	}
	return ""
}

func (x *CatalogProduct) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *CatalogProduct) GetTasteDescription() string {
	if x != nil {
		return x.TasteDescription
	}
	return ""
}

func (x *CatalogProduct) GetUsage() string {
	if x != nil {
		return x.Usage
	}
	return ""
}

func (x *CatalogProduct) GetWineType() string {
	if x != nil {
		return x.WineType
	}
	return ""
}

type SearchCatalogResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Products      []*CatalogProduct      `protobuf:"bytes,1,rep,name=products,proto3" json:"products,omitempty"`
	TotalCount    int32                  `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchCatalogResponse) Reset() {
	*x = SearchCatalogResponse{}
	mi := &file_cellar_v1_cellar_proto_msgTypes[52]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchCatalogResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchCatalogResponse) ProtoMessage() {}

func (x *SearchCatalogResponse) ProtoReflect() protoreflect.Message {
	mi := &file_cellar_v1_cellar_proto_msgTypes[52]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchCatalogResponse.ProtoReflect.Descriptor instead.
func (*SearchCatalogResponse) Descriptor() ([]byte, []int) {
	return file_cellar_v1_cellar_proto_rawDescGZIP(), []int{52}
}

func (x *SearchCatalogResponse) GetProducts() []*CatalogProduct {
	if x != nil {
		return x.Products
	}
	return nil
}

func (x *SearchCatalogResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

var File_cellar_v1_cellar_proto protoreflect.FileDescriptor

const file_cellar_v1_cellar_proto_rawDesc = "" +
	"\n" +
	"\x16cellar/v1/cellar.proto\x12\tcellar.v1\"\xef\x06\n" +
	"\x04Wine\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x1a\n" +
	"\bproducer\x18\x03 \x01(\tR\bproducer\x12\x18\n" +
	"\avintage\x18\x04 \x01(\x05R\avintage\x12\x1b\n" +
	"\twine_type\x18\x05 \x01(\tR\bwineType\x12\x18\n" +
	"\acountry\x18\x06 \x01(\tR\acountry\x12\x16\n" +
	"\x06region\x18\a \x01(\tR\x06region\x12\x1d\n" +
	"\n" +
	"sub_region\x18\b \x01(\tR\tsubRegion\x12 \n" +
	"\vappellation\x18\t \x01(\tR\vappellation\x12'\n" +
	"\x0fgrape_varieties\x18\n" +
	" \x03(\tR\x0egrapeVarieties\x12'\n" +
	"\x0falcohol_content\x18\v \x01(\x02R\x0ealcoholContent\x12\x1f\n" +
	"\vbottle_size\x18\f \x01(\tR\n" +
	"bottleSize\x12\x1a\n" +
	"\bquantity\x18\r \x01(\x05R\bquantity\x12%\n" +
	"\x0epurchase_price\x18\x0e \x01(\x01R\rpurchasePrice\x12\x1a\n" +
	"\bcurrency\x18\x0f \x01(\tR\bcurrency\x12'\n" +
	"\x0fpersonal_rating\x18\x10 \x01(\x02R\x0epersonalRating\x122\n" +
	"\x15drinking_window_start\x18\x11 \x01(\x05R\x13drinkingWindowStart\x12.\n" +
	"\x13drinking_window_end\x18\x12 \x01(\x05R\x11drinkingWindowEnd\x12,\n" +
	"\x12peak_maturity_year\x18\x13 \x01(\x05R\x10peakMaturityYear\x12'\n" +
	"\x0ftasting_summary\x18\x14 \x01(\tR\x0etastingSummary\x12#\n" +
	"\rfood_pairings\x18\x15 \x03(\tR\ffoodPairings\x12\x1f\n" +
	"\vlocation_id\x18\x16 \x01(\tR\n" +
	"locationId\x12)\n" +
	"\x10systembolaget_id\x18\x17 \x01(\tR\x0fsystembolagetId\x12\x18\n" +
	"\abarcode\x18\x18 \x01(\tR\abarcode\x12\x1d\n" +
	"\n" +
	"created_at\x18\x19 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x1a \x01(\tR\tupdatedAt\"\xd3\x05\n" +
	"\tWineInput\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x1a\n" +
	"\bproducer\x18\x02 \x01(\tR\bproducer\x12\x18\n" +
	"\avintage\x18\x03 \x01(\x05R\avintage\x12\x1b\n" +
	"\twine_type\x18\x04 \x01(\tR\bwineType\x12\x18\n" +
	"\acountry\x18\x05 \x01(\tR\acountry\x12\x16\n" +
	"\x06region\x18\x06 \x01(\tR\x06region\x12\x1d\n" +
	"\n" +
	"sub_region\x18\a \x01(\tR\tsubRegion\x12 \n" +
	"\vappellation\x18\b \x01(\tR\vappellation\x12'\n" +
	"\x0fgrape_varieties\x18\t \x03(\tR\x0egrapeVarieties\x12'\n" +
	"\x0falcohol_content\x18\n" +
	" \x01(\x02R\x0ealcoholContent\x12\x1f\n" +
	"\vbottle_size\x18\v \x01(\tR\n" +
	"bottleSize\x12\x1a\n" +
	"\bquantity\x18\f \x01(\x05R\bquantity\x12%\n" +
	"\x0epurchase_price\x18\r \x01(\x01R\rpurchasePrice\x12\x1a\n" +
	"\bcurrency\x18\x0e \x01(\tR\bcurrency\x12'\n" +
	"\x0fpersonal_rating\x18\x0f \x01(\x02R\x0epersonalRating\x122\n" +
	"\x15drinking_window_start\x18\x10 \x01(\x05R\x13drinkingWindowStart\x12.\n" +
	"\x13drinking_window_end\x18\x11 \x01(\x05R\x11drinkingWindowEnd\x12'\n" +
	"\x0ftasting_summary\x18\x12 \x01(\tR\x0etastingSummary\x12\x1f\n" +
	"\vlocation_id\x18\x13 \x01(\tR\n" +
	"locationId\x12)\n" +
	"\x10systembolaget_id\x18\x14 \x01(\tR\x0fsystembolagetId\x12\x18\n" +
	"\abarcode\x18\x15 \x01(\tR\abarcode\"\xd2\x03\n" +
	"\aScanJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bphoto_id\x18\x02 \x01(\tR\aphotoId\x12\x17\n" +
	"\awine_id\x18\x03 \x01(\tR\x06wineId\x12\x16\n" +
	"\x06format\x18\x04 \x01(\tR\x06format\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\x06 \x01(\tR\ferrorMessage\x121\n" +
	"\x14detection_confidence\x18\a \x01(\x02R\x13detectionConfidence\x12!\n" +
	"\fcropped_path\x18\b \x01(\tR\vcroppedPath\x12\x19\n" +
	"\braw_text\x18\t \x01(\tR\arawText\x12%\n" +
	"\x0eextracted_json\x18\n" +
	" \x01(\tR\rextractedJson\x123\n" +
	"\x15extraction_confidence\x18\v \x01(\x02R\x14extractionConfidence\x12!\n" +
	"\fneeds_review\x18\f \x01(\bR\vneedsReview\x12\x1d\n" +
	"\n" +
	"started_at\x18\r \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\x0e \x01(\tR\n" +
	"finishedAt\"\xf0\x01\n" +
	"\x0fStorageLocation\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12#\n" +
	"\rlocation_type\x18\x03 \x01(\tR\flocationType\x12\x1a\n" +
	"\bcapacity\x18\x04 \x01(\x05R\bcapacity\x12 \n" +
	"\vtemperature\x18\x05 \x01(\x02R\vtemperature\x12\x1a\n" +
	"\bhumidity\x18\x06 \x01(\x02R\bhumidity\x12\x1b\n" +
	"\tis_active\x18\a \x01(\bR\bisActive\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\"\xa2\x02\n" +
	"\vTastingNote\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\awine_id\x18\x02 \x01(\tR\x06wineId\x12!\n" +
	"\ftasting_date\x18\x03 \x01(\tR\vtastingDate\x12\x1a\n" +
	"\blocation\x18\x04 \x01(\tR\blocation\x12\x1a\n" +
	"\boccasion\x18\x05 \x01(\tR\boccasion\x12\x14\n" +
	"\x05color\x18\x06 \x01(\tR\x05color\x12\x16\n" +
	"\x06aromas\x18\a \x01(\tR\x06aromas\x12\x16\n" +
	"\x06palate\x18\b \x01(\tR\x06palate\x12\x14\n" +
	"\x05score\x18\t \x01(\x02R\x05score\x12\x14\n" +
	"\x05notes\x18\n" +
	" \x01(\tR\x05notes\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\"\xdf\x01\n" +
	"\x10TastingNoteInput\x12!\n" +
	"\ftasting_date\x18\x01 \x01(\tR\vtastingDate\x12\x1a\n" +
	"\blocation\x18\x02 \x01(\tR\blocation\x12\x1a\n" +
	"\boccasion\x18\x03 \x01(\tR\boccasion\x12\x14\n" +
	"\x05color\x18\x04 \x01(\tR\x05color\x12\x16\n" +
	"\x06aromas\x18\x05 \x01(\tR\x06aromas\x12\x16\n" +
	"\x06palate\x18\x06 \x01(\tR\x06palate\x12\x14\n" +
	"\x05score\x18\a \x01(\x02R\x05score\x12\x14\n" +
	"\x05notes\x18\b \x01(\tR\x05notes\"=\n" +
	"\x11CreateWineRequest\x12(\n" +
	"\x04wine\x18\x01 \x01(\v2\x14.cellar.v1.WineInputR\x04wine\"9\n" +
	"\x12CreateWineResponse\x12#\n" +
	"\x04wine\x18\x01 \x01(\v2\x0f.cellar.v1.WineR\x04wine\")\n" +
	"\x0eGetWineRequest\x12\x17\n" +
	"\awine_id\x18\x01 \x01(\tR\x06wineId\"_\n" +
	"\x0fGetWineResponse\x12#\n" +
	"\x04wine\x18\x01 \x01(\v2\x0f.cellar.v1.WineR\x04wine\x12'\n" +
	"\x0fdrinking_status\x18\x02 \x01(\tR\x0edrinkingStatus\"V\n" +
	"\x11UpdateWineRequest\x12\x17\n" +
	"\awine_id\x18\x01 \x01(\tR\x06wineId\x12(\n" +
	"\x04wine\x18\x02 \x01(\v2\x14.cellar.v1.WineInputR\x04wine\"9\n" +
	"\x12UpdateWineResponse\x12#\n" +
	"\x04wine\x18\x01 \x01(\v2\x0f.cellar.v1.WineR\x04wine\",\n" +
	"\x11DeleteWineRequest\x12\x17\n" +
	"\awine_id\x18\x01 \x01(\tR\x06wineId\"\x14\n" +
	"\x12DeleteWineResponse\"\xa6\x01\n" +
	"\x10ListWinesRequest\x12\x1b\n" +
	"\twine_type\x18\x01 \x01(\tR\bwineType\x12\x18\n" +
	"\acountry\x18\x02 \x01(\tR\acountry\x12\x16\n" +
	"\x06region\x18\x03 \x01(\tR\x06region\x12\x1f\n" +
	"\vlocation_id\x18\x04 \x01(\tR\n" +
	"locationId\x12\"\n" +
	"\rin_stock_only\x18\x05 \x01(\bR\vinStockOnly\":\n" +
	"\x11ListWinesResponse\x12%\n" +
	"\x05wines\x18\x01 \x03(\v2\x0f.cellar.v1.WineR\x05wines\"*\n" +
	"\x12SearchWinesRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\"<\n" +
	"\x13SearchWinesResponse\x12%\n" +
	"\x05wines\x18\x01 \x03(\v2\x0f.cellar.v1.WineR\x05wines\"`\n" +
	"\x14ConsumeBottleRequest\x12\x17\n" +
	"\awine_id\x18\x01 \x01(\tR\x06wineId\x12/\n" +
	"\x04note\x18\x02 \x01(\v2\x1b.cellar.v1.TastingNoteInputR\x04note\"<\n" +
	"\x15ConsumeBottleResponse\x12#\n" +
	"\x04wine\x18\x01 \x01(\v2\x0f.cellar.v1.WineR\x04wine\"B\n" +
	"\x11AddBottlesRequest\x12\x17\n" +
	"\awine_id\x18\x01 \x01(\tR\x06wineId\x12\x14\n" +
	"\x05count\x18\x02 \x01(\x05R\x05count\"9\n" +
	"\x12AddBottlesResponse\x12#\n" +
	"\x04wine\x18\x01 \x01(\v2\x0f.cellar.v1.WineR\x04wine\"\x19\n" +
	"\x17ListReadyToDrinkRequest\"\x99\x01\n" +
	"\x18ListReadyToDrinkResponse\x12%\n" +
	"\x05ready\x18\x01 \x03(\v2\x0f.cellar.v1.WineR\x05ready\x12)\n" +
	"\aoverdue\x18\x02 \x03(\v2\x0f.cellar.v1.WineR\aoverdue\x12+\n" +
	"\bupcoming\x18\x03 \x03(\v2\x0f.cellar.v1.WineR\bupcoming\"\x16\n" +
	"\x14GetStatisticsRequest\"\xef\x02\n" +
	"\x15GetStatisticsResponse\x12\x1f\n" +
	"\vtotal_wines\x18\x01 \x01(\x05R\n" +
	"totalWines\x12#\n" +
	"\rtotal_bottles\x18\x02 \x01(\x05R\ftotalBottles\x12\x1f\n" +
	"\vtotal_value\x18\x03 \x01(\x01R\n" +
	"totalValue\x12[\n" +
	"\x0fbottles_by_type\x18\x04 \x03(\v23.cellar.v1.GetStatisticsResponse.BottlesByTypeEntryR\rbottlesByType\x12%\n" +
	"\x0eaverage_rating\x18\x05 \x01(\x02R\raverageRating\x12)\n" +
	"\x10distinct_regions\x18\x06 \x01(\x05R\x0fdistinctRegions\x1a@\n" +
	"\x12BottlesByTypeEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\x05R\x05value:\x028\x01\"\x8f\x01\n" +
	"\x15EstimateWindowRequest\x12\x1b\n" +
	"\twine_type\x18\x01 \x01(\tR\bwineType\x12\x18\n" +
	"\avintage\x18\x02 \x01(\x05R\avintage\x12\x16\n" +
	"\x06region\x18\x03 \x01(\tR\x06region\x12'\n" +
	"\x0fgrape_varieties\x18\x04 \x03(\tR\x0egrapeVarieties\"\x85\x01\n" +
	"\x16EstimateWindowResponse\x12\x1d\n" +
	"\n" +
	"start_year\x18\x01 \x01(\x05R\tstartYear\x12\x1b\n" +
	"\tpeak_year\x18\x02 \x01(\x05R\bpeakYear\x12\x19\n" +
	"\bend_year\x18\x03 \x01(\x05R\aendYear\x12\x14\n" +
	"\x05notes\x18\x04 \x01(\tR\x05notes\"a\n" +
	"\x15AddTastingNoteRequest\x12\x17\n" +
	"\awine_id\x18\x01 \x01(\tR\x06wineId\x12/\n" +
	"\x04note\x18\x02 \x01(\v2\x1b.cellar.v1.TastingNoteInputR\x04note\"D\n" +
	"\x16AddTastingNoteResponse\x12*\n" +
	"\x04note\x18\x01 \x01(\v2\x16.cellar.v1.TastingNoteR\x04note\"2\n" +
	"\x17ListTastingNotesRequest\x12\x17\n" +
	"\awine_id\x18\x01 \x01(\tR\x06wineId\"H\n" +
	"\x18ListTastingNotesResponse\x12,\n" +
	"\x05notes\x18\x01 \x03(\v2\x16.cellar.v1.TastingNoteR\x05notes\"\xaa\x01\n" +
	"\x15CreateLocationRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12#\n" +
	"\rlocation_type\x18\x02 \x01(\tR\flocationType\x12\x1a\n" +
	"\bcapacity\x18\x03 \x01(\x05R\bcapacity\x12 \n" +
	"\vtemperature\x18\x04 \x01(\x02R\vtemperature\x12\x1a\n" +
	"\bhumidity\x18\x05 \x01(\x02R\bhumidity\"P\n" +
	"\x16CreateLocationResponse\x126\n" +
	"\blocation\x18\x01 \x01(\v2\x1a.cellar.v1.StorageLocationR\blocation\"7\n" +
	"\x14ListLocationsRequest\x12\x1f\n" +
	"\vactive_only\x18\x01 \x01(\bR\n" +
	"activeOnly\"Q\n" +
	"\x15ListLocationsResponse\x128\n" +
	"\tlocations\x18\x01 \x03(\v2\x1a.cellar.v1.StorageLocationR\tlocations\"V\n" +
	"\x13ExportCellarRequest\x12\x1b\n" +
	"\twine_type\x18\x01 \x01(\tR\bwineType\x12\"\n" +
	"\rin_stock_only\x18\x02 \x01(\bR\vinStockOnly\"*\n" +
	"\x14ExportCellarResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\")\n" +
	"\x13ImportCellarRequest\x12\x12\n" +
	"\x04json\x18\x01 \x01(\fR\x04json\"J\n" +
	"\x14ImportCellarResponse\x12\x1a\n" +
	"\bimported\x18\x01 \x01(\x05R\bimported\x12\x16\n" +
	"\x06failed\x18\x02 \x01(\x05R\x06failed\"&\n" +
	"\x10ScanLabelRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"]\n" +
	"\x11ScanLabelResponse\x12$\n" +
	"\x03job\x18\x01 \x01(\v2\x12.cellar.v1.ScanJobR\x03job\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\"T\n" +
	"\x14ScanDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x02 \x01(\bR\n" +
	"skipHidden\"\xcd\x01\n" +
	"\x15ScanDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x12&\n" +
	"\x04jobs\x18\x06 \x03(\v2\x12.cellar.v1.ScanJobR\x04jobs\"*\n" +
	"\x11GetScanJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\":\n" +
	"\x12GetScanJobResponse\x12$\n" +
	"\x03job\x18\x01 \x01(\v2\x12.cellar.v1.ScanJobR\x03job\"+\n" +
	"\x13ListScanJobsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\">\n" +
	"\x14ListScanJobsResponse\x12&\n" +
	"\x04jobs\x18\x01 \x03(\v2\x12.cellar.v1.ScanJobR\x04jobs\"_\n" +
	"\x12ConfirmScanRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x122\n" +
	"\toverrides\x18\x02 \x01(\v2\x14.cellar.v1.WineInputR\toverrides\":\n" +
	"\x13ConfirmScanResponse\x12#\n" +
	"\x04wine\x18\x01 \x01(\v2\x0f.cellar.v1.WineR\x04wine\"]\n" +
	"\x14SearchCatalogRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\x12\x12\n" +
	"\x04page\x18\x02 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\"\xa7\x02\n" +
	"\x0eCatalogProduct\x12\x1d\n" +
	"\n" +
	"product_id\x18\x01 \x01(\tR\tproductId\x12!\n" +
	"\fproduct_name\x18\x02 \x01(\tR\vproductName\x12#\n" +
	"\rproducer_name\x18\x03 \x01(\tR\fproducerName\x12\x18\n" +
	"\avintage\x18\x04 \x01(\x05R\avintage\x12\x18\n" +
	"\acountry\x18\x05 \x01(\tR\acountry\x12\x1a\n" +
	"\bcategory\x18\x06 \x01(\tR\bcategory\x12+\n" +
	"\x11taste_description\x18\a \x01(\tR\x10tasteDescription\x12\x14\n" +
	"\x05usage\x18\b \x01(\tR\x05usage\x12\x1b\n" +
	"\twine_type\x18\t \x01(\tR\bwineType\"o\n" +
	"\x15SearchCatalogResponse\x125\n" +
	"\bproducts\x18\x01 \x03(\v2\x19.cellar.v1.CatalogProductR\bproducts\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x05R\n" +
	"totalCount2\xf0\n" +
	"\n" +
	"\rCellarService\x12I\n" +
	"\n" +
	"CreateWine\x12\x1c.cellar.v1.CreateWineRequest\x1a\x1d.cellar.v1.CreateWineResponse\x12@\n" +
	"\aGetWine\x12\x19.cellar.v1.GetWineRequest\x1a\x1a.cellar.v1.GetWineResponse\x12I\n" +
	"\n" +
	"UpdateWine\x12\x1c.cellar.v1.UpdateWineRequest\x1a\x1d.cellar.v1.UpdateWineResponse\x12I\n" +
	"\n" +
	"DeleteWine\x12\x1c.cellar.v1.DeleteWineRequest\x1a\x1d.cellar.v1.DeleteWineResponse\x12F\n" +
	"\tListWines\x12\x1b.cellar.v1.ListWinesRequest\x1a\x1c.cellar.v1.ListWinesResponse\x12L\n" +
	"\vSearchWines\x12\x1d.cellar.v1.SearchWinesRequest\x1a\x1e.cellar.v1.SearchWinesResponse\x12R\n" +
	"\rConsumeBottle\x12\x1f.cellar.v1.ConsumeBottleRequest\x1a .cellar.v1.ConsumeBottleResponse\x12I\n" +
	"\n" +
	"AddBottles\x12\x1c.cellar.v1.AddBottlesRequest\x1a\x1d.cellar.v1.AddBottlesResponse\x12[\n" +
	"\x10ListReadyToDrink\x12\".cellar.v1.ListReadyToDrinkRequest\x1a#.cellar.v1.ListReadyToDrinkResponse\x12R\n" +
	"\rGetStatistics\x12\x1f.cellar.v1.GetStatisticsRequest\x1a .cellar.v1.GetStatisticsResponse\x12U\n" +
	"\x0eEstimateWindow\x12 .cellar.v1.EstimateWindowRequest\x1a!.cellar.v1.EstimateWindowResponse\x12U\n" +
	"\x0eAddTastingNote\x12 .cellar.v1.AddTastingNoteRequest\x1a!.cellar.v1.AddTastingNoteResponse\x12[\n" +
	"\x10ListTastingNotes\x12\".cellar.v1.ListTastingNotesRequest\x1a#.cellar.v1.ListTastingNotesResponse\x12U\n" +
	"\x0eCreateLocation\x12 .cellar.v1.CreateLocationRequest\x1a!.cellar.v1.CreateLocationResponse\x12R\n" +
	"\rListLocations\x12\x1f.cellar.v1.ListLocationsRequest\x1a .cellar.v1.ListLocationsResponse\x12O\n" +
	"\fExportCellar\x12\x1e.cellar.v1.ExportCellarRequest\x1a\x1f.cellar.v1.ExportCellarResponse\x12O\n" +
	"\fImportCellar\x12\x1e.cellar.v1.ImportCellarRequest\x1a\x1f.cellar.v1.ImportCellarResponse2\xe7\x03\n" +
	"\vScanService\x12F\n" +
	"\tScanLabel\x12\x1b.cellar.v1.ScanLabelRequest\x1a\x1c.cellar.v1.ScanLabelResponse\x12R\n" +
	"\rScanDirectory\x12\x1f.cellar.v1.ScanDirectoryRequest\x1a .cellar.v1.ScanDirectoryResponse\x12I\n" +
	"\n" +
	"GetScanJob\x12\x1c.cellar.v1.GetScanJobRequest\x1a\x1d.cellar.v1.GetScanJobResponse\x12O\n" +
	"\fListScanJobs\x12\x1e.cellar.v1.ListScanJobsRequest\x1a\x1f.cellar.v1.ListScanJobsResponse\x12L\n" +
	"\vConfirmScan\x12\x1d.cellar.v1.ConfirmScanRequest\x1a\x1e.cellar.v1.ConfirmScanResponse\x12R\n" +
	"\rSearchCatalog\x12\x1f.cellar.v1.SearchCatalogRequest\x1a .cellar.v1.SearchCatalogResponseB<Z:github.com/sahlen/vinkallaren/gen/proto/cellar/v1;cellarv1b\x06proto3"

var (
	file_cellar_v1_cellar_proto_rawDescOnce sync.Once
	file_cellar_v1_cellar_proto_rawDescData []byte
)

func file_cellar_v1_cellar_proto_rawDescGZIP() []byte {
	file_cellar_v1_cellar_proto_rawDescOnce.Do(func() {
		file_cellar_v1_cellar_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_cellar_v1_cellar_proto_rawDesc), len(file_cellar_v1_cellar_proto_rawDesc)))
	})
	return file_cellar_v1_cellar_proto_rawDescData
}

var file_cellar_v1_cellar_proto_msgTypes = make([]protoimpl.MessageInfo, 54)
var file_cellar_v1_cellar_proto_goTypes = []any{
	(*Wine)(nil),                     // 0: cellar.v1.Wine
	(*WineInput)(nil),                // 1: cellar.v1.WineInput
	(*ScanJob)(nil),                  // 2: cellar.v1.ScanJob
	(*StorageLocation)(nil),          // 3: cellar.v1.StorageLocation
	(*TastingNote)(nil),              // 4: cellar.v1.TastingNote
	(*TastingNoteInput)(nil),         // 5: cellar.v1.TastingNoteInput
	(*CreateWineRequest)(nil),        // 6: cellar.v1.CreateWineRequest
	(*CreateWineResponse)(nil),       // 7: cellar.v1.CreateWineResponse
	(*GetWineRequest)(nil),           // 8: cellar.v1.GetWineRequest
	(*GetWineResponse)(nil),          // 9: cellar.v1.GetWineResponse
	(*UpdateWineRequest)(nil),        // 10: cellar.v1.UpdateWineRequest
	(*UpdateWineResponse)(nil),       // 11: cellar.v1.UpdateWineResponse
	(*DeleteWineRequest)(nil),        // 12: cellar.v1.DeleteWineRequest
	(*DeleteWineResponse)(nil),       // 13: cellar.v1.DeleteWineResponse
	(*ListWinesRequest)(nil),         // 14: cellar.v1.ListWinesRequest
	(*ListWinesResponse)(nil),        // 15: cellar.v1.ListWinesResponse
	(*SearchWinesRequest)(nil),       // 16: cellar.v1.SearchWinesRequest
	(*SearchWinesResponse)(nil),      // 17: cellar.v1.SearchWinesResponse
	(*ConsumeBottleRequest)(nil),     // 18: cellar.v1.ConsumeBottleRequest
	(*ConsumeBottleResponse)(nil),    // 19: cellar.v1.ConsumeBottleResponse
	(*AddBottlesRequest)(nil),        // 20: cellar.v1.AddBottlesRequest
	(*AddBottlesResponse)(nil),       // 21: cellar.v1.AddBottlesResponse
	(*ListReadyToDrinkRequest)(nil),  // 22: cellar.v1.ListReadyToDrinkRequest
	(*ListReadyToDrinkResponse)(nil), // 23: cellar.v1.ListReadyToDrinkResponse
	(*GetStatisticsRequest)(nil),     // 24: cellar.v1.GetStatisticsRequest
	(*GetStatisticsResponse)(nil),    // 25: cellar.v1.GetStatisticsResponse
	(*EstimateWindowRequest)(nil),    // 26: cellar.v1.EstimateWindowRequest
	(*EstimateWindowResponse)(nil),   // 27: cellar.v1.EstimateWindowResponse
	(*AddTastingNoteRequest)(nil),    // 28: cellar.v1.AddTastingNoteRequest
	(*AddTastingNoteResponse)(nil),   // 29: cellar.v1.AddTastingNoteResponse
	(*ListTastingNotesRequest)(nil),  // 30: cellar.v1.ListTastingNotesRequest
	(*ListTastingNotesResponse)(nil), // 31: cellar.v1.ListTastingNotesResponse
	(*CreateLocationRequest)(nil),    // 32: cellar.v1.CreateLocationRequest
	(*CreateLocationResponse)(nil),   // 33: cellar.v1.CreateLocationResponse
	(*ListLocationsRequest)(nil),     // 34: cellar.v1.ListLocationsRequest
	(*ListLocationsResponse)(nil),    // 35: cellar.v1.ListLocationsResponse
	(*ExportCellarRequest)(nil),      // 36: cellar.v1.ExportCellarRequest
	(*ExportCellarResponse)(nil),     // 37: cellar.v1.ExportCellarResponse
	(*ImportCellarRequest)(nil),      // 38: cellar.v1.ImportCellarRequest
	(*ImportCellarResponse)(nil),     // 39: cellar.v1.ImportCellarResponse
	(*ScanLabelRequest)(nil),         // 40: cellar.v1.ScanLabelRequest
	(*ScanLabelResponse)(nil),        // 41: cellar.v1.ScanLabelResponse
	(*ScanDirectoryRequest)(nil),     // 42: cellar.v1.ScanDirectoryRequest
	(*ScanDirectoryResponse)(nil),    // 43: cellar.v1.ScanDirectoryResponse
	(*GetScanJobRequest)(nil),        // 44: cellar.v1.GetScanJobRequest
	(*GetScanJobResponse)(nil),       // 45: cellar.v1.GetScanJobResponse
	(*ListScanJobsRequest)(nil),      // 46: cellar.v1.ListScanJobsRequest
	(*ListScanJobsResponse)(nil),     // 47: cellar.v1.ListScanJobsResponse
	(*ConfirmScanRequest)(nil),       // 48: cellar.v1.ConfirmScanRequest
	(*ConfirmScanResponse)(nil),      // 49: cellar.v1.ConfirmScanResponse
	(*SearchCatalogRequest)(nil),     // 50: cellar.v1.SearchCatalogRequest
	(*CatalogProduct)(nil),           // 51: cellar.v1.CatalogProduct
	(*SearchCatalogResponse)(nil),    // 52: cellar.v1.SearchCatalogResponse
	nil,                              // 53: cellar.v1.GetStatisticsResponse.BottlesByTypeEntry
}
var file_cellar_v1_cellar_proto_depIdxs = []int32{
	1,  // 0: cellar.v1.CreateWineRequest.wine:type_name -> cellar.v1.WineInput
	0,  // 1: cellar.v1.CreateWineResponse.wine:type_name -> cellar.v1.Wine
	0,  // 2: cellar.v1.GetWineResponse.wine:type_name -> cellar.v1.Wine
	1,  // 3: cellar.v1.UpdateWineRequest.wine:type_name -> cellar.v1.WineInput
	0,  // 4: cellar.v1.UpdateWineResponse.wine:type_name -> cellar.v1.Wine
	0,  // 5: cellar.v1.ListWinesResponse.wines:type_name -> cellar.v1.Wine
	0,  // 6: cellar.v1.SearchWinesResponse.wines:type_name -> cellar.v1.Wine
	5,  // 7: cellar.v1.ConsumeBottleRequest.note:type_name -> cellar.v1.TastingNoteInput
	0,  // 8: cellar.v1.ConsumeBottleResponse.wine:type_name -> cellar.v1.Wine
	0,  // 9: cellar.v1.AddBottlesResponse.wine:type_name -> cellar.v1.Wine
	0,  // 10: cellar.v1.ListReadyToDrinkResponse.ready:type_name -> cellar.v1.Wine
	0,  // 11: cellar.v1.ListReadyToDrinkResponse.overdue:type_name -> cellar.v1.Wine
	0,  // 12: cellar.v1.ListReadyToDrinkResponse.upcoming:type_name -> cellar.v1.Wine
	53, // 13: cellar.v1.GetStatisticsResponse.bottles_by_type:type_name -> cellar.v1.GetStatisticsResponse.BottlesByTypeEntry
	5,  // 14: cellar.v1.AddTastingNoteRequest.note:type_name -> cellar.v1.TastingNoteInput
	4,  // 15: cellar.v1.AddTastingNoteResponse.note:type_name -> cellar.v1.TastingNote
	4,  // 16: cellar.v1.ListTastingNotesResponse.notes:type_name -> cellar.v1.TastingNote
	3,  // 17: cellar.v1.CreateLocationResponse.location:type_name -> cellar.v1.StorageLocation
	3,  // 18: cellar.v1.ListLocationsResponse.locations:type_name -> cellar.v1.StorageLocation
	2,  // 19: cellar.v1.ScanLabelResponse.job:type_name -> cellar.v1.ScanJob
	2,  // 20: cellar.v1.ScanDirectoryResponse.jobs:type_name -> cellar.v1.ScanJob
	2,  // 21: cellar.v1.GetScanJobResponse.job:type_name -> cellar.v1.ScanJob
	2,  // 22: cellar.v1.ListScanJobsResponse.jobs:type_name -> cellar.v1.ScanJob
	1,  // 23: cellar.v1.ConfirmScanRequest.overrides:type_name -> cellar.v1.WineInput
	0,  // 24: cellar.v1.ConfirmScanResponse.wine:type_name -> cellar.v1.Wine
	51, // 25: cellar.v1.SearchCatalogResponse.products:type_name -> cellar.v1.CatalogProduct
	6,  // 26: cellar.v1.CellarService.CreateWine:input_type -> cellar.v1.CreateWineRequest
	8,  // 27: cellar.v1.CellarService.GetWine:input_type -> cellar.v1.GetWineRequest
	10, // 28: cellar.v1.CellarService.UpdateWine:input_type -> cellar.v1.UpdateWineRequest
	12, // 29: cellar.v1.CellarService.DeleteWine:input_type -> cellar.v1.DeleteWineRequest
	14, // 30: cellar.v1.CellarService.ListWines:input_type -> cellar.v1.ListWinesRequest
	16, // 31: cellar.v1.CellarService.SearchWines:input_type -> cellar.v1.SearchWinesRequest
	18, // 32: cellar.v1.CellarService.ConsumeBottle:input_type -> cellar.v1.ConsumeBottleRequest
	20, // 33: cellar.v1.CellarService.AddBottles:input_type -> cellar.v1.AddBottlesRequest
	22, // 34: cellar.v1.CellarService.ListReadyToDrink:input_type -> cellar.v1.ListReadyToDrinkRequest
	24, // 35: cellar.v1.CellarService.GetStatistics:input_type -> cellar.v1.GetStatisticsRequest
	26, // 36: cellar.v1.CellarService.EstimateWindow:input_type -> cellar.v1.EstimateWindowRequest
	28, // 37: cellar.v1.CellarService.AddTastingNote:input_type -> cellar.v1.AddTastingNoteRequest
	30, // 38: cellar.v1.CellarService.ListTastingNotes:input_type -> cellar.v1.ListTastingNotesRequest
	32, // 39: cellar.v1.CellarService.CreateLocation:input_type -> cellar.v1.CreateLocationRequest
	34, // 40: cellar.v1.CellarService.ListLocations:input_type -> cellar.v1.ListLocationsRequest
	36, // 41: cellar.v1.CellarService.ExportCellar:input_type -> cellar.v1.ExportCellarRequest
	38, // 42: cellar.v1.CellarService.ImportCellar:input_type -> cellar.v1.ImportCellarRequest
	40, // 43: cellar.v1.ScanService.ScanLabel:input_type -> cellar.v1.ScanLabelRequest
	42, // 44: cellar.v1.ScanService.ScanDirectory:input_type -> cellar.v1.ScanDirectoryRequest
	44, // 45: cellar.v1.ScanService.GetScanJob:input_type -> cellar.v1.GetScanJobRequest
	46, // 46: cellar.v1.ScanService.ListScanJobs:input_type -> cellar.v1.ListScanJobsRequest
	48, // 47: cellar.v1.ScanService.ConfirmScan:input_type -> cellar.v1.ConfirmScanRequest
	50, // 48: cellar.v1.ScanService.SearchCatalog:input_type -> cellar.v1.SearchCatalogRequest
	7,  // 49: cellar.v1.CellarService.CreateWine:output_type -> cellar.v1.CreateWineResponse
	9,  // 50: cellar.v1.CellarService.GetWine:output_type -> cellar.v1.GetWineResponse
	11, // 51: cellar.v1.CellarService.UpdateWine:output_type -> cellar.v1.UpdateWineResponse
	13, // 52: cellar.v1.CellarService.DeleteWine:output_type -> cellar.v1.DeleteWineResponse
	15, // 53: cellar.v1.CellarService.ListWines:output_type -> cellar.v1.ListWinesResponse
	17, // 54: cellar.v1.CellarService.SearchWines:output_type -> cellar.v1.SearchWinesResponse
	19, // 55: cellar.v1.CellarService.ConsumeBottle:output_type -> cellar.v1.ConsumeBottleResponse
	21, // 56: cellar.v1.CellarService.AddBottles:output_type -> cellar.v1.AddBottlesResponse
	23, // 57: cellar.v1.CellarService.ListReadyToDrink:output_type -> cellar.v1.ListReadyToDrinkResponse
	25, // 58: cellar.v1.CellarService.GetStatistics:output_type -> cellar.v1.GetStatisticsResponse
	27, // 59: cellar.v1.CellarService.EstimateWindow:output_type -> cellar.v1.EstimateWindowResponse
	29, // 60: cellar.v1.CellarService.AddTastingNote:output_type -> cellar.v1.AddTastingNoteResponse
	31, // 61: cellar.v1.CellarService.ListTastingNotes:output_type -> cellar.v1.ListTastingNotesResponse
	33, // 62: cellar.v1.CellarService.CreateLocation:output_type -> cellar.v1.CreateLocationResponse
	35, // 63: cellar.v1.CellarService.ListLocations:output_type -> cellar.v1.ListLocationsResponse
	37, // 64: cellar.v1.CellarService.ExportCellar:output_type -> cellar.v1.ExportCellarResponse
	39, // 65: cellar.v1.CellarService.ImportCellar:output_type -> cellar.v1.ImportCellarResponse
	41, // 66: cellar.v1.ScanService.ScanLabel:output_type -> cellar.v1.ScanLabelResponse
	43, // 67: cellar.v1.ScanService.ScanDirectory:output_type -> cellar.v1.ScanDirectoryResponse
	45, // 68: cellar.v1.ScanService.GetScanJob:output_type -> cellar.v1.GetScanJobResponse
	47, // 69: cellar.v1.ScanService.ListScanJobs:output_type -> cellar.v1.ListScanJobsResponse
	49, // 70: cellar.v1.ScanService.ConfirmScan:output_type -> cellar.v1.ConfirmScanResponse
	52, // 71: cellar.v1.ScanService.SearchCatalog:output_type -> cellar.v1.SearchCatalogResponse
	49, // [49:72] is the sub-list for method output_type
	26, // [26:49] is the sub-list for method input_type
	26, // [26:26] is the sub-list for extension type_name
	26, // [26:26] is the sub-list for extension extendee
	0,  // [0:26] is the sub-list for field type_name
}

func init() { file_cellar_v1_cellar_proto_init() }
func file_cellar_v1_cellar_proto_init() {
	if File_cellar_v1_cellar_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_cellar_v1_cellar_proto_rawDesc), len(file_cellar_v1_cellar_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   54,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_cellar_v1_cellar_proto_goTypes,
		DependencyIndexes: file_cellar_v1_cellar_proto_depIdxs,
		MessageInfos:      file_cellar_v1_cellar_proto_msgTypes,
	}.Build()
	File_cellar_v1_cellar_proto = out.File
	file_cellar_v1_cellar_proto_goTypes = nil
	file_cellar_v1_cellar_proto_depIdxs = nil
}
