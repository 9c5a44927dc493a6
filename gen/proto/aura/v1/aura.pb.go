// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: aura/v1/aura.proto

package aurav1

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

type ExtractDocumentRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	DocumentId string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Path       string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	// MANDATE_CARD or NATIONAL_ID; empty means detect from content.
	SourceType    string `protobuf:"bytes,3,opt,name=source_type,json=sourceType,proto3" json:"source_type,omitempty"`
	UseVision     bool   `protobuf:"varint,4,opt,name=use_vision,json=useVision,proto3" json:"use_vision,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractDocumentRequest) Reset() {
	*x = ExtractDocumentRequest{}
	mi := &file_aura_v1_aura_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDocumentRequest) ProtoMessage() {}

func (x *ExtractDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDocumentRequest.ProtoReflect.Descriptor instead.
func (*ExtractDocumentRequest) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{0}
}

func (x *ExtractDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ExtractDocumentRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *ExtractDocumentRequest) GetSourceType() string {
	if x != nil {
		return x.SourceType
	}
	return ""
}

func (x *ExtractDocumentRequest) GetUseVision() bool {
	if x != nil {
		return x.UseVision
	}
	return false
}

type ExtractDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	SourceType    string                 `protobuf:"bytes,2,opt,name=source_type,json=sourceType,proto3" json:"source_type,omitempty"`
	Method        string                 `protobuf:"bytes,3,opt,name=method,proto3" json:"method,omitempty"`
	Fields        map[string]string      `protobuf:"bytes,4,rep,name=fields,proto3" json:"fields,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractDocumentResponse) Reset() {
	*x = ExtractDocumentResponse{}
	mi := &file_aura_v1_aura_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDocumentResponse) ProtoMessage() {}

func (x *ExtractDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDocumentResponse.ProtoReflect.Descriptor instead.
func (*ExtractDocumentResponse) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{1}
}

func (x *ExtractDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ExtractDocumentResponse) GetSourceType() string {
	if x != nil {
		return x.SourceType
	}
	return ""
}

func (x *ExtractDocumentResponse) GetMethod() string {
	if x != nil {
		return x.Method
	}
	return ""
}

func (x *ExtractDocumentResponse) GetFields() map[string]string {
	if x != nil {
		return x.Fields
	}
	return nil
}

type ExtractDualSourceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Path          string                 `protobuf:"bytes,2,opt,name=path,proto3" json:"path,omitempty"`
	UseVision     bool                   `protobuf:"varint,3,opt,name=use_vision,json=useVision,proto3" json:"use_vision,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractDualSourceRequest) Reset() {
	*x = ExtractDualSourceRequest{}
	mi := &file_aura_v1_aura_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDualSourceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDualSourceRequest) ProtoMessage() {}

func (x *ExtractDualSourceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDualSourceRequest.ProtoReflect.Descriptor instead.
func (*ExtractDualSourceRequest) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{2}
}

func (x *ExtractDualSourceRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ExtractDualSourceRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *ExtractDualSourceRequest) GetUseVision() bool {
	if x != nil {
		return x.UseVision
	}
	return false
}

type ExtractDualSourceResponse struct {
	state         protoimpl.MessageState     `protogen:"open.v1"`
	Results       []*ExtractDocumentResponse `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractDualSourceResponse) Reset() {
	*x = ExtractDualSourceResponse{}
	mi := &file_aura_v1_aura_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractDualSourceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractDualSourceResponse) ProtoMessage() {}

func (x *ExtractDualSourceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractDualSourceResponse.ProtoReflect.Descriptor instead.
func (*ExtractDualSourceResponse) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{3}
}

func (x *ExtractDualSourceResponse) GetResults() []*ExtractDocumentResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type ExtractedField struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	Id              string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	DocumentId      string                 `protobuf:"bytes,2,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	SourceType      string                 `protobuf:"bytes,3,opt,name=source_type,json=sourceType,proto3" json:"source_type,omitempty"`
	FieldName       string                 `protobuf:"bytes,4,opt,name=field_name,json=fieldName,proto3" json:"field_name,omitempty"`
	ExtractedValue  string                 `protobuf:"bytes,5,opt,name=extracted_value,json=extractedValue,proto3" json:"extracted_value,omitempty"`
	ConfidenceScore float32                `protobuf:"fixed32,6,opt,name=confidence_score,json=confidenceScore,proto3" json:"confidence_score,omitempty"`
	IsCorrected     bool                   `protobuf:"varint,7,opt,name=is_corrected,json=isCorrected,proto3" json:"is_corrected,omitempty"`
	CorrectedValue  string                 `protobuf:"bytes,8,opt,name=corrected_value,json=correctedValue,proto3" json:"corrected_value,omitempty"`
	CreatedAt       string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt       string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *ExtractedField) Reset() {
	*x = ExtractedField{}
	mi := &file_aura_v1_aura_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractedField) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractedField) ProtoMessage() {}

func (x *ExtractedField) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractedField.ProtoReflect.Descriptor instead.
func (*ExtractedField) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{4}
}

func (x *ExtractedField) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExtractedField) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ExtractedField) GetSourceType() string {
	if x != nil {
		return x.SourceType
	}
	return ""
}

func (x *ExtractedField) GetFieldName() string {
	if x != nil {
		return x.FieldName
	}
	return ""
}

func (x *ExtractedField) GetExtractedValue() string {
	if x != nil {
		return x.ExtractedValue
	}
	return ""
}

func (x *ExtractedField) GetConfidenceScore() float32 {
	if x != nil {
		return x.ConfidenceScore
	}
	return 0
}

func (x *ExtractedField) GetIsCorrected() bool {
	if x != nil {
		return x.IsCorrected
	}
	return false
}

func (x *ExtractedField) GetCorrectedValue() string {
	if x != nil {
		return x.CorrectedValue
	}
	return ""
}

func (x *ExtractedField) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *ExtractedField) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListFieldsRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	DocumentId string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	// optional filter
	SourceType    string `protobuf:"bytes,2,opt,name=source_type,json=sourceType,proto3" json:"source_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFieldsRequest) Reset() {
	*x = ListFieldsRequest{}
	mi := &file_aura_v1_aura_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFieldsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFieldsRequest) ProtoMessage() {}

func (x *ListFieldsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFieldsRequest.ProtoReflect.Descriptor instead.
func (*ListFieldsRequest) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{5}
}

func (x *ListFieldsRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *ListFieldsRequest) GetSourceType() string {
	if x != nil {
		return x.SourceType
	}
	return ""
}

type ListFieldsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Fields        []*ExtractedField      `protobuf:"bytes,1,rep,name=fields,proto3" json:"fields,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListFieldsResponse) Reset() {
	*x = ListFieldsResponse{}
	mi := &file_aura_v1_aura_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListFieldsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListFieldsResponse) ProtoMessage() {}

func (x *ListFieldsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListFieldsResponse.ProtoReflect.Descriptor instead.
func (*ListFieldsResponse) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{6}
}

func (x *ListFieldsResponse) GetFields() []*ExtractedField {
	if x != nil {
		return x.Fields
	}
	return nil
}

type CorrectFieldRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	DocumentId     string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	SourceType     string                 `protobuf:"bytes,2,opt,name=source_type,json=sourceType,proto3" json:"source_type,omitempty"`
	FieldName      string                 `protobuf:"bytes,3,opt,name=field_name,json=fieldName,proto3" json:"field_name,omitempty"`
	CorrectedValue string                 `protobuf:"bytes,4,opt,name=corrected_value,json=correctedValue,proto3" json:"corrected_value,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CorrectFieldRequest) Reset() {
	*x = CorrectFieldRequest{}
	mi := &file_aura_v1_aura_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CorrectFieldRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CorrectFieldRequest) ProtoMessage() {}

func (x *CorrectFieldRequest) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CorrectFieldRequest.ProtoReflect.Descriptor instead.
func (*CorrectFieldRequest) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{7}
}

func (x *CorrectFieldRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *CorrectFieldRequest) GetSourceType() string {
	if x != nil {
		return x.SourceType
	}
	return ""
}

func (x *CorrectFieldRequest) GetFieldName() string {
	if x != nil {
		return x.FieldName
	}
	return ""
}

func (x *CorrectFieldRequest) GetCorrectedValue() string {
	if x != nil {
		return x.CorrectedValue
	}
	return ""
}

type CorrectFieldResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Field         *ExtractedField        `protobuf:"bytes,1,opt,name=field,proto3" json:"field,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CorrectFieldResponse) Reset() {
	*x = CorrectFieldResponse{}
	mi := &file_aura_v1_aura_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CorrectFieldResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CorrectFieldResponse) ProtoMessage() {}

func (x *CorrectFieldResponse) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CorrectFieldResponse.ProtoReflect.Descriptor instead.
func (*CorrectFieldResponse) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{8}
}

func (x *CorrectFieldResponse) GetField() *ExtractedField {
	if x != nil {
		return x.Field
	}
	return nil
}

type RunTriageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PackageId     string                 `protobuf:"bytes,1,opt,name=package_id,json=packageId,proto3" json:"package_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunTriageRequest) Reset() {
	*x = RunTriageRequest{}
	mi := &file_aura_v1_aura_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunTriageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunTriageRequest) ProtoMessage() {}

func (x *RunTriageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunTriageRequest.ProtoReflect.Descriptor instead.
func (*RunTriageRequest) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{9}
}

func (x *RunTriageRequest) GetPackageId() string {
	if x != nil {
		return x.PackageId
	}
	return ""
}

type DocumentReport struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Filename       string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	IdentifiedType string                 `protobuf:"bytes,2,opt,name=identified_type,json=identifiedType,proto3" json:"identified_type,omitempty"`
	Issues         []string               `protobuf:"bytes,3,rep,name=issues,proto3" json:"issues,omitempty"`
	RenamedTo      string                 `protobuf:"bytes,4,opt,name=renamed_to,json=renamedTo,proto3" json:"renamed_to,omitempty"`
	Quality        string                 `protobuf:"bytes,5,opt,name=quality,proto3" json:"quality,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *DocumentReport) Reset() {
	*x = DocumentReport{}
	mi := &file_aura_v1_aura_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DocumentReport) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DocumentReport) ProtoMessage() {}

func (x *DocumentReport) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DocumentReport.ProtoReflect.Descriptor instead.
func (*DocumentReport) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{10}
}

func (x *DocumentReport) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *DocumentReport) GetIdentifiedType() string {
	if x != nil {
		return x.IdentifiedType
	}
	return ""
}

func (x *DocumentReport) GetIssues() []string {
	if x != nil {
		return x.Issues
	}
	return nil
}

func (x *DocumentReport) GetRenamedTo() string {
	if x != nil {
		return x.RenamedTo
	}
	return ""
}

func (x *DocumentReport) GetQuality() string {
	if x != nil {
		return x.Quality
	}
	return ""
}

type TriageResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PackageId     string                 `protobuf:"bytes,1,opt,name=package_id,json=packageId,proto3" json:"package_id,omitempty"`
	AccountType   string                 `protobuf:"bytes,2,opt,name=account_type,json=accountType,proto3" json:"account_type,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Documents     []*DocumentReport      `protobuf:"bytes,4,rep,name=documents,proto3" json:"documents,omitempty"`
	MissingDocs   []string               `protobuf:"bytes,5,rep,name=missing_docs,json=missingDocs,proto3" json:"missing_docs,omitempty"`
	DestPath      string                 `protobuf:"bytes,6,opt,name=dest_path,json=destPath,proto3" json:"dest_path,omitempty"`
	ProcessedAt   string                 `protobuf:"bytes,7,opt,name=processed_at,json=processedAt,proto3" json:"processed_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TriageResult) Reset() {
	*x = TriageResult{}
	mi := &file_aura_v1_aura_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TriageResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TriageResult) ProtoMessage() {}

func (x *TriageResult) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TriageResult.ProtoReflect.Descriptor instead.
func (*TriageResult) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{11}
}

func (x *TriageResult) GetPackageId() string {
	if x != nil {
		return x.PackageId
	}
	return ""
}

func (x *TriageResult) GetAccountType() string {
	if x != nil {
		return x.AccountType
	}
	return ""
}

func (x *TriageResult) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *TriageResult) GetDocuments() []*DocumentReport {
	if x != nil {
		return x.Documents
	}
	return nil
}

func (x *TriageResult) GetMissingDocs() []string {
	if x != nil {
		return x.MissingDocs
	}
	return nil
}

func (x *TriageResult) GetDestPath() string {
	if x != nil {
		return x.DestPath
	}
	return ""
}

func (x *TriageResult) GetProcessedAt() string {
	if x != nil {
		return x.ProcessedAt
	}
	return ""
}

type RunTriageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Results       []*TriageResult        `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunTriageResponse) Reset() {
	*x = RunTriageResponse{}
	mi := &file_aura_v1_aura_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunTriageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunTriageResponse) ProtoMessage() {}

func (x *RunTriageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunTriageResponse.ProtoReflect.Descriptor instead.
func (*RunTriageResponse) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{12}
}

func (x *RunTriageResponse) GetResults() []*TriageResult {
	if x != nil {
		return x.Results
	}
	return nil
}

type ListPackagesRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// incoming, clean, flagged, or resolved
	Stage         string `protobuf:"bytes,1,opt,name=stage,proto3" json:"stage,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPackagesRequest) Reset() {
	*x = ListPackagesRequest{}
	mi := &file_aura_v1_aura_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPackagesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPackagesRequest) ProtoMessage() {}

func (x *ListPackagesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPackagesRequest.ProtoReflect.Descriptor instead.
func (*ListPackagesRequest) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{13}
}

func (x *ListPackagesRequest) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

type ListPackagesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PackageIds    []string               `protobuf:"bytes,1,rep,name=package_ids,json=packageIds,proto3" json:"package_ids,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPackagesResponse) Reset() {
	*x = ListPackagesResponse{}
	mi := &file_aura_v1_aura_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPackagesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPackagesResponse) ProtoMessage() {}

func (x *ListPackagesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPackagesResponse.ProtoReflect.Descriptor instead.
func (*ListPackagesResponse) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{14}
}

func (x *ListPackagesResponse) GetPackageIds() []string {
	if x != nil {
		return x.PackageIds
	}
	return nil
}

type GetPackageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PackageId     string                 `protobuf:"bytes,1,opt,name=package_id,json=packageId,proto3" json:"package_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPackageRequest) Reset() {
	*x = GetPackageRequest{}
	mi := &file_aura_v1_aura_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPackageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPackageRequest) ProtoMessage() {}

func (x *GetPackageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPackageRequest.ProtoReflect.Descriptor instead.
func (*GetPackageRequest) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{15}
}

func (x *GetPackageRequest) GetPackageId() string {
	if x != nil {
		return x.PackageId
	}
	return ""
}

type GetPackageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PackageId     string                 `protobuf:"bytes,1,opt,name=package_id,json=packageId,proto3" json:"package_id,omitempty"`
	Stage         string                 `protobuf:"bytes,2,opt,name=stage,proto3" json:"stage,omitempty"`
	Path          string                 `protobuf:"bytes,3,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPackageResponse) Reset() {
	*x = GetPackageResponse{}
	mi := &file_aura_v1_aura_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPackageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPackageResponse) ProtoMessage() {}

func (x *GetPackageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPackageResponse.ProtoReflect.Descriptor instead.
func (*GetPackageResponse) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{16}
}

func (x *GetPackageResponse) GetPackageId() string {
	if x != nil {
		return x.PackageId
	}
	return ""
}

func (x *GetPackageResponse) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

func (x *GetPackageResponse) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type ResolvePackageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PackageId     string                 `protobuf:"bytes,1,opt,name=package_id,json=packageId,proto3" json:"package_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolvePackageRequest) Reset() {
	*x = ResolvePackageRequest{}
	mi := &file_aura_v1_aura_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolvePackageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolvePackageRequest) ProtoMessage() {}

func (x *ResolvePackageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolvePackageRequest.ProtoReflect.Descriptor instead.
func (*ResolvePackageRequest) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{17}
}

func (x *ResolvePackageRequest) GetPackageId() string {
	if x != nil {
		return x.PackageId
	}
	return ""
}

type ResolvePackageResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	PackageId     string                 `protobuf:"bytes,1,opt,name=package_id,json=packageId,proto3" json:"package_id,omitempty"`
	Stage         string                 `protobuf:"bytes,2,opt,name=stage,proto3" json:"stage,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ResolvePackageResponse) Reset() {
	*x = ResolvePackageResponse{}
	mi := &file_aura_v1_aura_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ResolvePackageResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ResolvePackageResponse) ProtoMessage() {}

func (x *ResolvePackageResponse) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ResolvePackageResponse.ProtoReflect.Descriptor instead.
func (*ResolvePackageResponse) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{18}
}

func (x *ResolvePackageResponse) GetPackageId() string {
	if x != nil {
		return x.PackageId
	}
	return ""
}

func (x *ResolvePackageResponse) GetStage() string {
	if x != nil {
		return x.Stage
	}
	return ""
}

type ExportDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentRequest) Reset() {
	*x = ExportDocumentRequest{}
	mi := &file_aura_v1_aura_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentRequest) ProtoMessage() {}

func (x *ExportDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentRequest) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{19}
}

func (x *ExportDocumentRequest) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

type ExportDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentResponse) Reset() {
	*x = ExportDocumentResponse{}
	mi := &file_aura_v1_aura_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentResponse) ProtoMessage() {}

func (x *ExportDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentResponse) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{20}
}

func (x *ExportDocumentResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ExportCorrectionsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCorrectionsRequest) Reset() {
	*x = ExportCorrectionsRequest{}
	mi := &file_aura_v1_aura_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCorrectionsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCorrectionsRequest) ProtoMessage() {}

func (x *ExportCorrectionsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCorrectionsRequest.ProtoReflect.Descriptor instead.
func (*ExportCorrectionsRequest) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{21}
}

type ExportCorrectionsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCorrectionsResponse) Reset() {
	*x = ExportCorrectionsResponse{}
	mi := &file_aura_v1_aura_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCorrectionsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCorrectionsResponse) ProtoMessage() {}

func (x *ExportCorrectionsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_aura_v1_aura_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCorrectionsResponse.ProtoReflect.Descriptor instead.
func (*ExportCorrectionsResponse) Descriptor() ([]byte, []int) {
	return file_aura_v1_aura_proto_rawDescGZIP(), []int{22}
}

func (x *ExportCorrectionsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_aura_v1_aura_proto protoreflect.FileDescriptor

const file_aura_v1_aura_proto_rawDesc = "" +
	"\n" +
	"\x12aura/v1/aura.proto\x12\aaura.v1\"\x8d\x01\n" +
	"\x16ExtractDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\x12\x1f\n" +
	"\vsource_type\x18\x03 \x01(\tR\n" +
	"sourceType\x12\x1d\n" +
	"\n" +
	"use_vision\x18\x04 \x01(\bR\tuseVision\"\xf4\x01\n" +
	"\x17ExtractDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vsource_type\x18\x02 \x01(\tR\n" +
	"sourceType\x12\x16\n" +
	"\x06method\x18\x03 \x01(\tR\x06method\x12D\n" +
	"\x06fields\x18\x04 \x03(\v2,.aura.v1.ExtractDocumentResponse.FieldsEntryR\x06fields\x1a9\n" +
	"\vFieldsEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"n\n" +
	"\x18ExtractDualSourceRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x12\n" +
	"\x04path\x18\x02 \x01(\tR\x04path\x12\x1d\n" +
	"\n" +
	"use_vision\x18\x03 \x01(\bR\tuseVision\"W\n" +
	"\x19ExtractDualSourceResponse\x12:\n" +
	"\aresults\x18\x01 \x03(\v2 .aura.v1.ExtractDocumentResponseR\aresults\"\xdf\x02\n" +
	"\x0eExtractedField\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vdocument_id\x18\x02 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vsource_type\x18\x03 \x01(\tR\n" +
	"sourceType\x12\x1d\n" +
	"\n" +
	"field_name\x18\x04 \x01(\tR\tfieldName\x12'\n" +
	"\x0fextracted_value\x18\x05 \x01(\tR\x0eextractedValue\x12)\n" +
	"\x10confidence_score\x18\x06 \x01(\x02R\x0fconfidenceScore\x12!\n" +
	"\fis_corrected\x18\a \x01(\bR\visCorrected\x12'\n" +
	"\x0fcorrected_value\x18\b \x01(\tR\x0ecorrectedValue\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"U\n" +
	"\x11ListFieldsRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vsource_type\x18\x02 \x01(\tR\n" +
	"sourceType\"E\n" +
	"\x12ListFieldsResponse\x12/\n" +
	"\x06fields\x18\x01 \x03(\v2\x17.aura.v1.ExtractedFieldR\x06fields\"\x9f\x01\n" +
	"\x13CorrectFieldRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vsource_type\x18\x02 \x01(\tR\n" +
	"sourceType\x12\x1d\n" +
	"\n" +
	"field_name\x18\x03 \x01(\tR\tfieldName\x12'\n" +
	"\x0fcorrected_value\x18\x04 \x01(\tR\x0ecorrectedValue\"E\n" +
	"\x14CorrectFieldResponse\x12-\n" +
	"\x05field\x18\x01 \x01(\v2\x17.aura.v1.ExtractedFieldR\x05field\"1\n" +
	"\x10RunTriageRequest\x12\x1d\n" +
	"\n" +
	"package_id\x18\x01 \x01(\tR\tpackageId\"\xa6\x01\n" +
	"\x0eDocumentReport\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12'\n" +
	"\x0fidentified_type\x18\x02 \x01(\tR\x0eidentifiedType\x12\x16\n" +
	"\x06issues\x18\x03 \x03(\tR\x06issues\x12\x1d\n" +
	"\n" +
	"renamed_to\x18\x04 \x01(\tR\trenamedTo\x12\x18\n" +
	"\aquality\x18\x05 \x01(\tR\aquality\"\x82\x02\n" +
	"\fTriageResult\x12\x1d\n" +
	"\n" +
	"package_id\x18\x01 \x01(\tR\tpackageId\x12!\n" +
	"\faccount_type\x18\x02 \x01(\tR\vaccountType\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x125\n" +
	"\tdocuments\x18\x04 \x03(\v2\x17.aura.v1.DocumentReportR\tdocuments\x12!\n" +
	"\fmissing_docs\x18\x05 \x03(\tR\vmissingDocs\x12\x1b\n" +
	"\tdest_path\x18\x06 \x01(\tR\bdestPath\x12!\n" +
	"\fprocessed_at\x18\a \x01(\tR\vprocessedAt\"D\n" +
	"\x11RunTriageResponse\x12/\n" +
	"\aresults\x18\x01 \x03(\v2\x15.aura.v1.TriageResultR\aresults\"+\n" +
	"\x13ListPackagesRequest\x12\x14\n" +
	"\x05stage\x18\x01 \x01(\tR\x05stage\"7\n" +
	"\x14ListPackagesResponse\x12\x1f\n" +
	"\vpackage_ids\x18\x01 \x03(\tR\n" +
	"packageIds\"2\n" +
	"\x11GetPackageRequest\x12\x1d\n" +
	"\n" +
	"package_id\x18\x01 \x01(\tR\tpackageId\"]\n" +
	"\x12GetPackageResponse\x12\x1d\n" +
	"\n" +
	"package_id\x18\x01 \x01(\tR\tpackageId\x12\x14\n" +
	"\x05stage\x18\x02 \x01(\tR\x05stage\x12\x12\n" +
	"\x04path\x18\x03 \x01(\tR\x04path\"6\n" +
	"\x15ResolvePackageRequest\x12\x1d\n" +
	"\n" +
	"package_id\x18\x01 \x01(\tR\tpackageId\"M\n" +
	"\x16ResolvePackageResponse\x12\x1d\n" +
	"\n" +
	"package_id\x18\x01 \x01(\tR\tpackageId\x12\x14\n" +
	"\x05stage\x18\x02 \x01(\tR\x05stage\"8\n" +
	"\x15ExportDocumentRequest\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\",\n" +
	"\x16ExportDocumentResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\x1a\n" +
	"\x18ExportCorrectionsRequest\"/\n" +
	"\x19ExportCorrectionsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xd9\x02\n" +
	"\x11ExtractionService\x12T\n" +
	"\x0fExtractDocument\x12\x1f.aura.v1.ExtractDocumentRequest\x1a .aura.v1.ExtractDocumentResponse\x12Z\n" +
	"\x11ExtractDualSource\x12!.aura.v1.ExtractDualSourceRequest\x1a\".aura.v1.ExtractDualSourceResponse\x12E\n" +
	"\n" +
	"ListFields\x12\x1a.aura.v1.ListFieldsRequest\x1a\x1b.aura.v1.ListFieldsResponse\x12K\n" +
	"\fCorrectField\x12\x1c.aura.v1.CorrectFieldRequest\x1a\x1d.aura.v1.CorrectFieldResponse2\xba\x02\n" +
	"\rTriageService\x12B\n" +
	"\tRunTriage\x12\x19.aura.v1.RunTriageRequest\x1a\x1a.aura.v1.RunTriageResponse\x12K\n" +
	"\fListPackages\x12\x1c.aura.v1.ListPackagesRequest\x1a\x1d.aura.v1.ListPackagesResponse\x12E\n" +
	"\n" +
	"GetPackage\x12\x1a.aura.v1.GetPackageRequest\x1a\x1b.aura.v1.GetPackageResponse\x12Q\n" +
	"\x0eResolvePackage\x12\x1e.aura.v1.ResolvePackageRequest\x1a\x1f.aura.v1.ResolvePackageResponse2\xbe\x01\n" +
	"\rExportService\x12Q\n" +
	"\x0eExportDocument\x12\x1e.aura.v1.ExportDocumentRequest\x1a\x1f.aura.v1.ExportDocumentResponse\x12Z\n" +
	"\x11ExportCorrections\x12!.aura.v1.ExportCorrectionsRequest\x1a\".aura.v1.ExportCorrectionsResponseBLZJgithub.com/TadiwanasheNdombo/aura-document-system/gen/proto/aura/v1;aurav1b\x06proto3"

var (
	file_aura_v1_aura_proto_rawDescOnce sync.Once
	file_aura_v1_aura_proto_rawDescData []byte
)

func file_aura_v1_aura_proto_rawDescGZIP() []byte {
	file_aura_v1_aura_proto_rawDescOnce.Do(func() {
		file_aura_v1_aura_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_aura_v1_aura_proto_rawDesc), len(file_aura_v1_aura_proto_rawDesc)))
	})
	return file_aura_v1_aura_proto_rawDescData
}

var file_aura_v1_aura_proto_msgTypes = make([]protoimpl.MessageInfo, 24)
var file_aura_v1_aura_proto_goTypes = []any{
	(*ExtractDocumentRequest)(nil),    // 0: aura.v1.ExtractDocumentRequest
	(*ExtractDocumentResponse)(nil),   // 1: aura.v1.ExtractDocumentResponse
	(*ExtractDualSourceRequest)(nil),  // 2: aura.v1.ExtractDualSourceRequest
	(*ExtractDualSourceResponse)(nil), // 3: aura.v1.ExtractDualSourceResponse
	(*ExtractedField)(nil),            // 4: aura.v1.ExtractedField
	(*ListFieldsRequest)(nil),         // 5: aura.v1.ListFieldsRequest
	(*ListFieldsResponse)(nil),        // 6: aura.v1.ListFieldsResponse
	(*CorrectFieldRequest)(nil),       // 7: aura.v1.CorrectFieldRequest
	(*CorrectFieldResponse)(nil),      // 8: aura.v1.CorrectFieldResponse
	(*RunTriageRequest)(nil),          // 9: aura.v1.RunTriageRequest
	(*DocumentReport)(nil),            // 10: aura.v1.DocumentReport
	(*TriageResult)(nil),              // 11: aura.v1.TriageResult
	(*RunTriageResponse)(nil),         // 12: aura.v1.RunTriageResponse
	(*ListPackagesRequest)(nil),       // 13: aura.v1.ListPackagesRequest
	(*ListPackagesResponse)(nil),      // 14: aura.v1.ListPackagesResponse
	(*GetPackageRequest)(nil),         // 15: aura.v1.GetPackageRequest
	(*GetPackageResponse)(nil),        // 16: aura.v1.GetPackageResponse
	(*ResolvePackageRequest)(nil),     // 17: aura.v1.ResolvePackageRequest
	(*ResolvePackageResponse)(nil),    // 18: aura.v1.ResolvePackageResponse
	(*ExportDocumentRequest)(nil),     // 19: aura.v1.ExportDocumentRequest
	(*ExportDocumentResponse)(nil),    // 20: aura.v1.ExportDocumentResponse
	(*ExportCorrectionsRequest)(nil),  // 21: aura.v1.ExportCorrectionsRequest
	(*ExportCorrectionsResponse)(nil), // 22: aura.v1.ExportCorrectionsResponse
	nil,                               // 23: aura.v1.ExtractDocumentResponse.FieldsEntry
}
var file_aura_v1_aura_proto_depIdxs = []int32{
	23, // 0: aura.v1.ExtractDocumentResponse.fields:type_name -> aura.v1.ExtractDocumentResponse.FieldsEntry
	1,  // 1: aura.v1.ExtractDualSourceResponse.results:type_name -> aura.v1.ExtractDocumentResponse
	4,  // 2: aura.v1.ListFieldsResponse.fields:type_name -> aura.v1.ExtractedField
	4,  // 3: aura.v1.CorrectFieldResponse.field:type_name -> aura.v1.ExtractedField
	10, // 4: aura.v1.TriageResult.documents:type_name -> aura.v1.DocumentReport
	11, // 5: aura.v1.RunTriageResponse.results:type_name -> aura.v1.TriageResult
	0,  // 6: aura.v1.ExtractionService.ExtractDocument:input_type -> aura.v1.ExtractDocumentRequest
	2,  // 7: aura.v1.ExtractionService.ExtractDualSource:input_type -> aura.v1.ExtractDualSourceRequest
	5,  // 8: aura.v1.ExtractionService.ListFields:input_type -> aura.v1.ListFieldsRequest
	7,  // 9: aura.v1.ExtractionService.CorrectField:input_type -> aura.v1.CorrectFieldRequest
	9,  // 10: aura.v1.TriageService.RunTriage:input_type -> aura.v1.RunTriageRequest
	13, // 11: aura.v1.TriageService.ListPackages:input_type -> aura.v1.ListPackagesRequest
	15, // 12: aura.v1.TriageService.GetPackage:input_type -> aura.v1.GetPackageRequest
	17, // 13: aura.v1.TriageService.ResolvePackage:input_type -> aura.v1.ResolvePackageRequest
	19, // 14: aura.v1.ExportService.ExportDocument:input_type -> aura.v1.ExportDocumentRequest
	21, // 15: aura.v1.ExportService.ExportCorrections:input_type -> aura.v1.ExportCorrectionsRequest
	1,  // 16: aura.v1.ExtractionService.ExtractDocument:output_type -> aura.v1.ExtractDocumentResponse
	3,  // 17: aura.v1.ExtractionService.ExtractDualSource:output_type -> aura.v1.ExtractDualSourceResponse
	6,  // 18: aura.v1.ExtractionService.ListFields:output_type -> aura.v1.ListFieldsResponse
	8,  // 19: aura.v1.ExtractionService.CorrectField:output_type -> aura.v1.CorrectFieldResponse
	12, // 20: aura.v1.TriageService.RunTriage:output_type -> aura.v1.RunTriageResponse
	14, // 21: aura.v1.TriageService.ListPackages:output_type -> aura.v1.ListPackagesResponse
	16, // 22: aura.v1.TriageService.GetPackage:output_type -> aura.v1.GetPackageResponse
	18, // 23: aura.v1.TriageService.ResolvePackage:output_type -> aura.v1.ResolvePackageResponse
	20, // 24: aura.v1.ExportService.ExportDocument:output_type -> aura.v1.ExportDocumentResponse
	22, // 25: aura.v1.ExportService.ExportCorrections:output_type -> aura.v1.ExportCorrectionsResponse
	16, // [16:26] is the sub-list for method output_type
	6,  // [6:16] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_aura_v1_aura_proto_init() }
func file_aura_v1_aura_proto_init() {
	if File_aura_v1_aura_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_aura_v1_aura_proto_rawDesc), len(file_aura_v1_aura_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   24,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_aura_v1_aura_proto_goTypes,
		DependencyIndexes: file_aura_v1_aura_proto_depIdxs,
		MessageInfos:      file_aura_v1_aura_proto_msgTypes,
	}.Build()
	File_aura_v1_aura_proto = out.File
	file_aura_v1_aura_proto_goTypes = nil
	file_aura_v1_aura_proto_depIdxs = nil
}
