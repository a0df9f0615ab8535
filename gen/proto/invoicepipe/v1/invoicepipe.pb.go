// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: invoicepipe/v1/invoicepipe.proto

package invoicepipev1

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

type Profile struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name            string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	CompanyName     string                 `protobuf:"bytes,3,opt,name=company_name,json=companyName,proto3" json:"company_name,omitempty"`
	DefaultCurrency string                 `protobuf:"bytes,4,opt,name=default_currency,json=defaultCurrency,proto3" json:"default_currency,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	UpdatedAt       string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC3339
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *Profile) Reset() {
	*x = Profile{}
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Profile) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Profile) ProtoMessage() {}

func (x *Profile) ProtoReflect() protoreflect.Message {
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Profile.ProtoReflect.Descriptor instead.
func (*Profile) Descriptor() ([]byte, []int) {
	return file_invoicepipe_v1_invoicepipe_proto_rawDescGZIP(), []int{0}
}

func (x *Profile) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Profile) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Profile) GetCompanyName() string {
	if x != nil {
		return x.CompanyName
	}
	return ""
}

func (x *Profile) GetDefaultCurrency() string {
	if x != nil {
		return x.DefaultCurrency
	}
	return ""
}

func (x *Profile) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Profile) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateProfileRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Name            string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	CompanyName     string                 `protobuf:"bytes,2,opt,name=company_name,json=companyName,proto3" json:"company_name,omitempty"`
	DefaultCurrency string                 `protobuf:"bytes,3,opt,name=default_currency,json=defaultCurrency,proto3" json:"default_currency,omitempty"` // ISO 4217, defaults to USD
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *CreateProfileRequest) Reset() {
	*x = CreateProfileRequest{}
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileRequest) ProtoMessage() {}

func (x *CreateProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileRequest.ProtoReflect.Descriptor instead.
func (*CreateProfileRequest) Descriptor() ([]byte, []int) {
	return file_invoicepipe_v1_invoicepipe_proto_rawDescGZIP(), []int{1}
}

func (x *CreateProfileRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateProfileRequest) GetCompanyName() string {
	if x != nil {
		return x.CompanyName
	}
	return ""
}

func (x *CreateProfileRequest) GetDefaultCurrency() string {
	if x != nil {
		return x.DefaultCurrency
	}
	return ""
}

type CreateProfileResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profile       *Profile               `protobuf:"bytes,1,opt,name=profile,proto3" json:"profile,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateProfileResponse) Reset() {
	*x = CreateProfileResponse{}
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateProfileResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateProfileResponse) ProtoMessage() {}

func (x *CreateProfileResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateProfileResponse.ProtoReflect.Descriptor instead.
func (*CreateProfileResponse) Descriptor() ([]byte, []int) {
	return file_invoicepipe_v1_invoicepipe_proto_rawDescGZIP(), []int{2}
}

func (x *CreateProfileResponse) GetProfile() *Profile {
	if x != nil {
		return x.Profile
	}
	return nil
}

type ListProfilesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesRequest) Reset() {
	*x = ListProfilesRequest{}
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesRequest) ProtoMessage() {}

func (x *ListProfilesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesRequest.ProtoReflect.Descriptor instead.
func (*ListProfilesRequest) Descriptor() ([]byte, []int) {
	return file_invoicepipe_v1_invoicepipe_proto_rawDescGZIP(), []int{3}
}

type ListProfilesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Profiles      []*Profile             `protobuf:"bytes,1,rep,name=profiles,proto3" json:"profiles,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListProfilesResponse) Reset() {
	*x = ListProfilesResponse{}
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListProfilesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListProfilesResponse) ProtoMessage() {}

func (x *ListProfilesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListProfilesResponse.ProtoReflect.Descriptor instead.
func (*ListProfilesResponse) Descriptor() ([]byte, []int) {
	return file_invoicepipe_v1_invoicepipe_proto_rawDescGZIP(), []int{4}
}

func (x *ListProfilesResponse) GetProfiles() []*Profile {
	if x != nil {
		return x.Profiles
	}
	return nil
}

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	Path          string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_invoicepipe_v1_invoicepipe_proto_rawDescGZIP(), []int{5}
}

func (x *IngestFileRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FileId         string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"` // RFC3339
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Queued         bool                   `protobuf:"varint,7,opt,name=queued,proto3" json:"queued,omitempty"` // extraction job enqueued
	Error          string                 `protobuf:"bytes,8,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_invoicepipe_v1_invoicepipe_proto_rawDescGZIP(), []int{6}
}

func (x *IngestResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	RootPath      string                 `protobuf:"bytes,2,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,3,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_invoicepipe_v1_invoicepipe_proto_rawDescGZIP(), []int{7}
}

func (x *IngestDirectoryRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_invoicepipe_v1_invoicepipe_proto_rawDescGZIP(), []int{8}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type LineItem struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Description   string                 `protobuf:"bytes,1,opt,name=description,proto3" json:"description,omitempty"`
	Quantity      string                 `protobuf:"bytes,2,opt,name=quantity,proto3" json:"quantity,omitempty"`                    // decimal string
	UnitPrice     string                 `protobuf:"bytes,3,opt,name=unit_price,json=unitPrice,proto3" json:"unit_price,omitempty"` // decimal string
	Total         string                 `protobuf:"bytes,4,opt,name=total,proto3" json:"total,omitempty"`                          // decimal string
	TaxRate       string                 `protobuf:"bytes,5,opt,name=tax_rate,json=taxRate,proto3" json:"tax_rate,omitempty"`       // decimal string
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *LineItem) Reset() {
	*x = LineItem{}
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *LineItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LineItem) ProtoMessage() {}

func (x *LineItem) ProtoReflect() protoreflect.Message {
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LineItem.ProtoReflect.Descriptor instead.
func (*LineItem) Descriptor() ([]byte, []int) {
	return file_invoicepipe_v1_invoicepipe_proto_rawDescGZIP(), []int{9}
}

func (x *LineItem) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *LineItem) GetQuantity() string {
	if x != nil {
		return x.Quantity
	}
	return ""
}

func (x *LineItem) GetUnitPrice() string {
	if x != nil {
		return x.UnitPrice
	}
	return ""
}

func (x *LineItem) GetTotal() string {
	if x != nil {
		return x.Total
	}
	return ""
}

func (x *LineItem) GetTaxRate() string {
	if x != nil {
		return x.TaxRate
	}
	return ""
}

type Invoice struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ProfileId     string                 `protobuf:"bytes,2,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FileId        string                 `protobuf:"bytes,3,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	InvoiceNumber string                 `protobuf:"bytes,4,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	InvoiceDate   string                 `protobuf:"bytes,5,opt,name=invoice_date,json=invoiceDate,proto3" json:"invoice_date,omitempty"` // YYYY-MM-DD
	DueDate       string                 `protobuf:"bytes,6,opt,name=due_date,json=dueDate,proto3" json:"due_date,omitempty"`             // YYYY-MM-DD, empty when unknown
	VendorName    string                 `protobuf:"bytes,7,opt,name=vendor_name,json=vendorName,proto3" json:"vendor_name,omitempty"`
	CustomerName  string                 `protobuf:"bytes,8,opt,name=customer_name,json=customerName,proto3" json:"customer_name,omitempty"`
	Subtotal      string                 `protobuf:"bytes,9,opt,name=subtotal,proto3" json:"subtotal,omitempty"` // decimal string, empty when unknown
	Tax           string                 `protobuf:"bytes,10,opt,name=tax,proto3" json:"tax,omitempty"`          // decimal string, empty when unknown
	Total         string                 `protobuf:"bytes,11,opt,name=total,proto3" json:"total,omitempty"`      // decimal string
	CurrencyCode  string                 `protobuf:"bytes,12,opt,name=currency_code,json=currencyCode,proto3" json:"currency_code,omitempty"`
	PaymentTerms  string                 `protobuf:"bytes,13,opt,name=payment_terms,json=paymentTerms,proto3" json:"payment_terms,omitempty"`
	Notes         string                 `protobuf:"bytes,14,opt,name=notes,proto3" json:"notes,omitempty"`
	LineItems     []*LineItem            `protobuf:"bytes,15,rep,name=line_items,json=lineItems,proto3" json:"line_items,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,16,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	UpdatedAt     string                 `protobuf:"bytes,17,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Invoice) Reset() {
	*x = Invoice{}
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Invoice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Invoice) ProtoMessage() {}

func (x *Invoice) ProtoReflect() protoreflect.Message {
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Invoice.ProtoReflect.Descriptor instead.
func (*Invoice) Descriptor() ([]byte, []int) {
	return file_invoicepipe_v1_invoicepipe_proto_rawDescGZIP(), []int{10}
}

func (x *Invoice) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Invoice) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *Invoice) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *Invoice) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *Invoice) GetInvoiceDate() string {
	if x != nil {
		return x.InvoiceDate
	}
	return ""
}

func (x *Invoice) GetDueDate() string {
	if x != nil {
		return x.DueDate
	}
	return ""
}

func (x *Invoice) GetVendorName() string {
	if x != nil {
		return x.VendorName
	}
	return ""
}

func (x *Invoice) GetCustomerName() string {
	if x != nil {
		return x.CustomerName
	}
	return ""
}

func (x *Invoice) GetSubtotal() string {
	if x != nil {
		return x.Subtotal
	}
	return ""
}

func (x *Invoice) GetTax() string {
	if x != nil {
		return x.Tax
	}
	return ""
}

func (x *Invoice) GetTotal() string {
	if x != nil {
		return x.Total
	}
	return ""
}

func (x *Invoice) GetCurrencyCode() string {
	if x != nil {
		return x.CurrencyCode
	}
	return ""
}

func (x *Invoice) GetPaymentTerms() string {
	if x != nil {
		return x.PaymentTerms
	}
	return ""
}

func (x *Invoice) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *Invoice) GetLineItems() []*LineItem {
	if x != nil {
		return x.LineItems
	}
	return nil
}

func (x *Invoice) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Invoice) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListInvoicesRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	ProfileId        string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FromDate         string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate           string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	IncludeLineItems bool                   `protobuf:"varint,4,opt,name=include_line_items,json=includeLineItems,proto3" json:"include_line_items,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ListInvoicesRequest) Reset() {
	*x = ListInvoicesRequest{}
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesRequest) ProtoMessage() {}

func (x *ListInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ListInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_invoicepipe_v1_invoicepipe_proto_rawDescGZIP(), []int{11}
}

func (x *ListInvoicesRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ListInvoicesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListInvoicesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

func (x *ListInvoicesRequest) GetIncludeLineItems() bool {
	if x != nil {
		return x.IncludeLineItems
	}
	return false
}

type ListInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Invoices      []*Invoice             `protobuf:"bytes,1,rep,name=invoices,proto3" json:"invoices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvoicesResponse) Reset() {
	*x = ListInvoicesResponse{}
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvoicesResponse) ProtoMessage() {}

func (x *ListInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ListInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_invoicepipe_v1_invoicepipe_proto_rawDescGZIP(), []int{12}
}

func (x *ListInvoicesResponse) GetInvoices() []*Invoice {
	if x != nil {
		return x.Invoices
	}
	return nil
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_invoicepipe_v1_invoicepipe_proto_rawDescGZIP(), []int{13}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type ExtractJob struct {
	state                protoimpl.MessageState `protogen:"open.v1"`
	Id                   string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FileId               string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	ProfileId            string                 `protobuf:"bytes,3,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	InvoiceId            string                 `protobuf:"bytes,4,opt,name=invoice_id,json=invoiceId,proto3" json:"invoice_id,omitempty"` // empty until extraction succeeds
	Format               string                 `protobuf:"bytes,5,opt,name=format,proto3" json:"format,omitempty"`
	Status               string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"` // QUEUED | RUNNING | OCR_OK | LLM_OK | FAILED
	ErrorMessage         string                 `protobuf:"bytes,7,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	ExtractionConfidence float32                `protobuf:"fixed32,8,opt,name=extraction_confidence,json=extractionConfidence,proto3" json:"extraction_confidence,omitempty"`
	NeedsReview          bool                   `protobuf:"varint,9,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	ModelName            string                 `protobuf:"bytes,10,opt,name=model_name,json=modelName,proto3" json:"model_name,omitempty"`
	StartedAt            string                 `protobuf:"bytes,11,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`    // RFC3339
	FinishedAt           string                 `protobuf:"bytes,12,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"` // RFC3339, empty while running
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *ExtractJob) Reset() {
	*x = ExtractJob{}
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractJob) ProtoMessage() {}

func (x *ExtractJob) ProtoReflect() protoreflect.Message {
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractJob.ProtoReflect.Descriptor instead.
func (*ExtractJob) Descriptor() ([]byte, []int) {
	return file_invoicepipe_v1_invoicepipe_proto_rawDescGZIP(), []int{14}
}

func (x *ExtractJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExtractJob) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *ExtractJob) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ExtractJob) GetInvoiceId() string {
	if x != nil {
		return x.InvoiceId
	}
	return ""
}

func (x *ExtractJob) GetFormat() string {
	if x != nil {
		return x.Format
	}
	return ""
}

func (x *ExtractJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExtractJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ExtractJob) GetExtractionConfidence() float32 {
	if x != nil {
		return x.ExtractionConfidence
	}
	return 0
}

func (x *ExtractJob) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *ExtractJob) GetModelName() string {
	if x != nil {
		return x.ModelName
	}
	return ""
}

func (x *ExtractJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ExtractJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ExtractJob            `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_invoicepipe_v1_invoicepipe_proto_rawDescGZIP(), []int{15}
}

func (x *GetJobResponse) GetJob() *ExtractJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type ExportInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ProfileId     string                 `protobuf:"bytes,1,opt,name=profile_id,json=profileId,proto3" json:"profile_id,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesRequest) Reset() {
	*x = ExportInvoicesRequest{}
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesRequest) ProtoMessage() {}

func (x *ExportInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ExportInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_invoicepipe_v1_invoicepipe_proto_rawDescGZIP(), []int{16}
}

func (x *ExportInvoicesRequest) GetProfileId() string {
	if x != nil {
		return x.ProfileId
	}
	return ""
}

func (x *ExportInvoicesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportInvoicesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesResponse) Reset() {
	*x = ExportInvoicesResponse{}
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesResponse) ProtoMessage() {}

func (x *ExportInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_invoicepipe_v1_invoicepipe_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ExportInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_invoicepipe_v1_invoicepipe_proto_rawDescGZIP(), []int{17}
}

func (x *ExportInvoicesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_invoicepipe_v1_invoicepipe_proto protoreflect.FileDescriptor

const file_invoicepipe_v1_invoicepipe_proto_rawDesc = "" +
	"\n" +
	" invoicepipe/v1/invoicepipe.proto\x12\x0einvoicepipe.v1\"\xb9\x01\n" +
	"\aProfile\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12!\n" +
	"\fcompany_name\x18\x03 \x01(\tR\vcompanyName\x12)\n" +
	"\x10default_currency\x18\x04 \x01(\tR\x0fdefaultCurrency\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"x\n" +
	"\x14CreateProfileRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12!\n" +
	"\fcompany_name\x18\x02 \x01(\tR\vcompanyName\x12)\n" +
	"\x10default_currency\x18\x03 \x01(\tR\x0fdefaultCurrency\"J\n" +
	"\x15CreateProfileResponse\x121\n" +
	"\aprofile\x18\x01 \x01(\v2\x17.invoicepipe.v1.ProfileR\aprofile\"\x15\n" +
	"\x13ListProfilesRequest\"K\n" +
	"\x14ListProfilesResponse\x123\n" +
	"\bprofiles\x18\x01 \x03(\v2\x17.invoicepipe.v1.ProfileR\bprofiles\"F\n" +
	"\x11IngestFileRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\"\x82\x02\n" +
	"\x0eIngestResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x16\n" +
	"\x06queued\x18\a \x01(\bR\x06queued\x12\x14\n" +
	"\x05error\x18\b \x01(\tR\x05error\"u\n" +
	"\x16IngestDirectoryRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\troot_path\x18\x02 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x03 \x01(\bR\n" +
	"skipHidden\"\xe1\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x128\n" +
	"\aresults\x18\x06 \x03(\v2\x1e.invoicepipe.v1.IngestResponseR\aresults\"\x98\x01\n" +
	"\bLineItem\x12 \n" +
	"\vdescription\x18\x01 \x01(\tR\vdescription\x12\x1a\n" +
	"\bquantity\x18\x02 \x01(\tR\bquantity\x12\x1d\n" +
	"\n" +
	"unit_price\x18\x03 \x01(\tR\tunitPrice\x12\x14\n" +
	"\x05total\x18\x04 \x01(\tR\x05total\x12\x19\n" +
	"\btax_rate\x18\x05 \x01(\tR\ataxRate\"\x97\x04\n" +
	"\aInvoice\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x02 \x01(\tR\tprofileId\x12\x17\n" +
	"\afile_id\x18\x03 \x01(\tR\x06fileId\x12%\n" +
	"\x0einvoice_number\x18\x04 \x01(\tR\rinvoiceNumber\x12!\n" +
	"\finvoice_date\x18\x05 \x01(\tR\vinvoiceDate\x12\x19\n" +
	"\bdue_date\x18\x06 \x01(\tR\adueDate\x12\x1f\n" +
	"\vvendor_name\x18\a \x01(\tR\n" +
	"vendorName\x12#\n" +
	"\rcustomer_name\x18\b \x01(\tR\fcustomerName\x12\x1a\n" +
	"\bsubtotal\x18\t \x01(\tR\bsubtotal\x12\x10\n" +
	"\x03tax\x18\n" +
	" \x01(\tR\x03tax\x12\x14\n" +
	"\x05total\x18\v \x01(\tR\x05total\x12#\n" +
	"\rcurrency_code\x18\f \x01(\tR\fcurrencyCode\x12#\n" +
	"\rpayment_terms\x18\r \x01(\tR\fpaymentTerms\x12\x14\n" +
	"\x05notes\x18\x0e \x01(\tR\x05notes\x127\n" +
	"\n" +
	"line_items\x18\x0f \x03(\v2\x18.invoicepipe.v1.LineItemR\tlineItems\x12\x1d\n" +
	"\n" +
	"created_at\x18\x10 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x11 \x01(\tR\tupdatedAt\"\x98\x01\n" +
	"\x13ListInvoicesRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\x12,\n" +
	"\x12include_line_items\x18\x04 \x01(\bR\x10includeLineItems\"K\n" +
	"\x14ListInvoicesResponse\x123\n" +
	"\binvoices\x18\x01 \x03(\v2\x17.invoicepipe.v1.InvoiceR\binvoices\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"\xff\x02\n" +
	"\n" +
	"ExtractJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x03 \x01(\tR\tprofileId\x12\x1d\n" +
	"\n" +
	"invoice_id\x18\x04 \x01(\tR\tinvoiceId\x12\x16\n" +
	"\x06format\x18\x05 \x01(\tR\x06format\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\a \x01(\tR\ferrorMessage\x123\n" +
	"\x15extraction_confidence\x18\b \x01(\x02R\x14extractionConfidence\x12!\n" +
	"\fneeds_review\x18\t \x01(\bR\vneedsReview\x12\x1d\n" +
	"\n" +
	"model_name\x18\n" +
	" \x01(\tR\tmodelName\x12\x1d\n" +
	"\n" +
	"started_at\x18\v \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\f \x01(\tR\n" +
	"finishedAt\">\n" +
	"\x0eGetJobResponse\x12,\n" +
	"\x03job\x18\x01 \x01(\v2\x1a.invoicepipe.v1.ExtractJobR\x03job\"l\n" +
	"\x15ExportInvoicesRequest\x12\x1d\n" +
	"\n" +
	"profile_id\x18\x01 \x01(\tR\tprofileId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\",\n" +
	"\x16ExportInvoicesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xca\x01\n" +
	"\x0fProfilesService\x12\\\n" +
	"\rCreateProfile\x12$.invoicepipe.v1.CreateProfileRequest\x1a%.invoicepipe.v1.CreateProfileResponse\x12Y\n" +
	"\fListProfiles\x12#.invoicepipe.v1.ListProfilesRequest\x1a$.invoicepipe.v1.ListProfilesResponse2\xc7\x01\n" +
	"\x10IngestionService\x12O\n" +
	"\n" +
	"IngestFile\x12!.invoicepipe.v1.IngestFileRequest\x1a\x1e.invoicepipe.v1.IngestResponse\x12b\n" +
	"\x0fIngestDirectory\x12&.invoicepipe.v1.IngestDirectoryRequest\x1a'.invoicepipe.v1.IngestDirectoryResponse2\xb5\x01\n" +
	"\x0fInvoicesService\x12Y\n" +
	"\fListInvoices\x12#.invoicepipe.v1.ListInvoicesRequest\x1a$.invoicepipe.v1.ListInvoicesResponse\x12G\n" +
	"\x06GetJob\x12\x1d.invoicepipe.v1.GetJobRequest\x1a\x1e.invoicepipe.v1.GetJobResponse2p\n" +
	"\rExportService\x12_\n" +
	"\x0eExportInvoices\x12%.invoicepipe.v1.ExportInvoicesRequest\x1a&.invoicepipe.v1.ExportInvoicesResponseBHZFgithub.com/elitizon/invoicepipe/gen/proto/invoicepipe/v1;invoicepipev1b\x06proto3"

var (
	file_invoicepipe_v1_invoicepipe_proto_rawDescOnce sync.Once
	file_invoicepipe_v1_invoicepipe_proto_rawDescData []byte
)

func file_invoicepipe_v1_invoicepipe_proto_rawDescGZIP() []byte {
	file_invoicepipe_v1_invoicepipe_proto_rawDescOnce.Do(func() {
		file_invoicepipe_v1_invoicepipe_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_invoicepipe_v1_invoicepipe_proto_rawDesc), len(file_invoicepipe_v1_invoicepipe_proto_rawDesc)))
	})
	return file_invoicepipe_v1_invoicepipe_proto_rawDescData
}

var file_invoicepipe_v1_invoicepipe_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_invoicepipe_v1_invoicepipe_proto_goTypes = []any{
	(*Profile)(nil),                 // 0: invoicepipe.v1.Profile
	(*CreateProfileRequest)(nil),    // 1: invoicepipe.v1.CreateProfileRequest
	(*CreateProfileResponse)(nil),   // 2: invoicepipe.v1.CreateProfileResponse
	(*ListProfilesRequest)(nil),     // 3: invoicepipe.v1.ListProfilesRequest
	(*ListProfilesResponse)(nil),    // 4: invoicepipe.v1.ListProfilesResponse
	(*IngestFileRequest)(nil),       // 5: invoicepipe.v1.IngestFileRequest
	(*IngestResponse)(nil),          // 6: invoicepipe.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),  // 7: invoicepipe.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil), // 8: invoicepipe.v1.IngestDirectoryResponse
	(*LineItem)(nil),                // 9: invoicepipe.v1.LineItem
	(*Invoice)(nil),                 // 10: invoicepipe.v1.Invoice
	(*ListInvoicesRequest)(nil),     // 11: invoicepipe.v1.ListInvoicesRequest
	(*ListInvoicesResponse)(nil),    // 12: invoicepipe.v1.ListInvoicesResponse
	(*GetJobRequest)(nil),           // 13: invoicepipe.v1.GetJobRequest
	(*ExtractJob)(nil),              // 14: invoicepipe.v1.ExtractJob
	(*GetJobResponse)(nil),          // 15: invoicepipe.v1.GetJobResponse
	(*ExportInvoicesRequest)(nil),   // 16: invoicepipe.v1.ExportInvoicesRequest
	(*ExportInvoicesResponse)(nil),  // 17: invoicepipe.v1.ExportInvoicesResponse
}
var file_invoicepipe_v1_invoicepipe_proto_depIdxs = []int32{
	0,  // 0: invoicepipe.v1.CreateProfileResponse.profile:type_name -> invoicepipe.v1.Profile
	0,  // 1: invoicepipe.v1.ListProfilesResponse.profiles:type_name -> invoicepipe.v1.Profile
	6,  // 2: invoicepipe.v1.IngestDirectoryResponse.results:type_name -> invoicepipe.v1.IngestResponse
	9,  // 3: invoicepipe.v1.Invoice.line_items:type_name -> invoicepipe.v1.LineItem
	10, // 4: invoicepipe.v1.ListInvoicesResponse.invoices:type_name -> invoicepipe.v1.Invoice
	14, // 5: invoicepipe.v1.GetJobResponse.job:type_name -> invoicepipe.v1.ExtractJob
	1,  // 6: invoicepipe.v1.ProfilesService.CreateProfile:input_type -> invoicepipe.v1.CreateProfileRequest
	3,  // 7: invoicepipe.v1.ProfilesService.ListProfiles:input_type -> invoicepipe.v1.ListProfilesRequest
	5,  // 8: invoicepipe.v1.IngestionService.IngestFile:input_type -> invoicepipe.v1.IngestFileRequest
	7,  // 9: invoicepipe.v1.IngestionService.IngestDirectory:input_type -> invoicepipe.v1.IngestDirectoryRequest
	11, // 10: invoicepipe.v1.InvoicesService.ListInvoices:input_type -> invoicepipe.v1.ListInvoicesRequest
	13, // 11: invoicepipe.v1.InvoicesService.GetJob:input_type -> invoicepipe.v1.GetJobRequest
	16, // 12: invoicepipe.v1.ExportService.ExportInvoices:input_type -> invoicepipe.v1.ExportInvoicesRequest
	2,  // 13: invoicepipe.v1.ProfilesService.CreateProfile:output_type -> invoicepipe.v1.CreateProfileResponse
	4,  // 14: invoicepipe.v1.ProfilesService.ListProfiles:output_type -> invoicepipe.v1.ListProfilesResponse
	6,  // 15: invoicepipe.v1.IngestionService.IngestFile:output_type -> invoicepipe.v1.IngestResponse
	8,  // 16: invoicepipe.v1.IngestionService.IngestDirectory:output_type -> invoicepipe.v1.IngestDirectoryResponse
	12, // 17: invoicepipe.v1.InvoicesService.ListInvoices:output_type -> invoicepipe.v1.ListInvoicesResponse
	15, // 18: invoicepipe.v1.InvoicesService.GetJob:output_type -> invoicepipe.v1.GetJobResponse
	17, // 19: invoicepipe.v1.ExportService.ExportInvoices:output_type -> invoicepipe.v1.ExportInvoicesResponse
	13, // [13:20] is the sub-list for method output_type
	6,  // [6:13] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_invoicepipe_v1_invoicepipe_proto_init() }
func file_invoicepipe_v1_invoicepipe_proto_init() {
	if File_invoicepipe_v1_invoicepipe_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_invoicepipe_v1_invoicepipe_proto_rawDesc), len(file_invoicepipe_v1_invoicepipe_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_invoicepipe_v1_invoicepipe_proto_goTypes,
		DependencyIndexes: file_invoicepipe_v1_invoicepipe_proto_depIdxs,
		MessageInfos:      file_invoicepipe_v1_invoicepipe_proto_msgTypes,
	}.Build()
	File_invoicepipe_v1_invoicepipe_proto = out.File
	file_invoicepipe_v1_invoicepipe_proto_goTypes = nil
	file_invoicepipe_v1_invoicepipe_proto_depIdxs = nil
}
