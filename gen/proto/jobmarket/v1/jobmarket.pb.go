// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: jobmarket/v1/jobmarket.proto

package jobmarketv1

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

type Job struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            int64                  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Employer      string                 `protobuf:"bytes,2,opt,name=employer,proto3" json:"employer,omitempty"`
	Employee      string                 `protobuf:"bytes,3,opt,name=employee,proto3" json:"employee,omitempty"`
	Payment       int64                  `protobuf:"varint,4,opt,name=payment,proto3" json:"payment,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	Description   string                 `protobuf:"bytes,6,opt,name=description,proto3" json:"description,omitempty"`
	Deadline      string                 `protobuf:"bytes,7,opt,name=deadline,proto3" json:"deadline,omitempty"` // RFC3339
	WorkResult    string                 `protobuf:"bytes,8,opt,name=work_result,json=workResult,proto3" json:"work_result,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`  // RFC3339
	UpdatedAt     string                 `protobuf:"bytes,10,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{0}
}

func (x *Job) GetId() int64 {
	if x != nil {
		return x.Id
	}
	return 0
}

func (x *Job) GetEmployer() string {
	if x != nil {
		return x.Employer
	}
	return ""
}

func (x *Job) GetEmployee() string {
	if x != nil {
		return x.Employee
	}
	return ""
}

func (x *Job) GetPayment() int64 {
	if x != nil {
		return x.Payment
	}
	return 0
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Job) GetDeadline() string {
	if x != nil {
		return x.Deadline
	}
	return ""
}

func (x *Job) GetWorkResult() string {
	if x != nil {
		return x.WorkResult
	}
	return ""
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Job) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Rating struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         int64                  `protobuf:"varint,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	RatedPerson   string                 `protobuf:"bytes,2,opt,name=rated_person,json=ratedPerson,proto3" json:"rated_person,omitempty"`
	Rater         string                 `protobuf:"bytes,3,opt,name=rater,proto3" json:"rater,omitempty"`
	Score         int32                  `protobuf:"varint,4,opt,name=score,proto3" json:"score,omitempty"`
	Role          string                 `protobuf:"bytes,5,opt,name=role,proto3" json:"role,omitempty"`
	Comment       string                 `protobuf:"bytes,6,opt,name=comment,proto3" json:"comment,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,7,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Rating) Reset() {
	*x = Rating{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Rating) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Rating) ProtoMessage() {}

func (x *Rating) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Rating.ProtoReflect.Descriptor instead.
func (*Rating) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{1}
}

func (x *Rating) GetJobId() int64 {
	if x != nil {
		return x.JobId
	}
	return 0
}

func (x *Rating) GetRatedPerson() string {
	if x != nil {
		return x.RatedPerson
	}
	return ""
}

func (x *Rating) GetRater() string {
	if x != nil {
		return x.Rater
	}
	return ""
}

func (x *Rating) GetScore() int32 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *Rating) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *Rating) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

func (x *Rating) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type Review struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         int64                  `protobuf:"varint,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Score         int32                  `protobuf:"varint,2,opt,name=score,proto3" json:"score,omitempty"`
	Comment       string                 `protobuf:"bytes,3,opt,name=comment,proto3" json:"comment,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,4,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Review) Reset() {
	*x = Review{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Review) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Review) ProtoMessage() {}

func (x *Review) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Review.ProtoReflect.Descriptor instead.
func (*Review) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{2}
}

func (x *Review) GetJobId() int64 {
	if x != nil {
		return x.JobId
	}
	return 0
}

func (x *Review) GetScore() int32 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *Review) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

func (x *Review) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type CreateJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CallerAddress string                 `protobuf:"bytes,1,opt,name=caller_address,json=callerAddress,proto3" json:"caller_address,omitempty"`
	Payment       int64                  `protobuf:"varint,2,opt,name=payment,proto3" json:"payment,omitempty"`
	Deadline      string                 `protobuf:"bytes,3,opt,name=deadline,proto3" json:"deadline,omitempty"` // RFC3339
	// Exactly one of description_ref / descriptor_json. A descriptor document
	// is validated against the descriptor schema and hashed into the ref.
	DescriptionRef string `protobuf:"bytes,4,opt,name=description_ref,json=descriptionRef,proto3" json:"description_ref,omitempty"`
	DescriptorJson string `protobuf:"bytes,5,opt,name=descriptor_json,json=descriptorJson,proto3" json:"descriptor_json,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateJobRequest) Reset() {
	*x = CreateJobRequest{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobRequest) ProtoMessage() {}

func (x *CreateJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobRequest.ProtoReflect.Descriptor instead.
func (*CreateJobRequest) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{3}
}

func (x *CreateJobRequest) GetCallerAddress() string {
	if x != nil {
		return x.CallerAddress
	}
	return ""
}

func (x *CreateJobRequest) GetPayment() int64 {
	if x != nil {
		return x.Payment
	}
	return 0
}

func (x *CreateJobRequest) GetDeadline() string {
	if x != nil {
		return x.Deadline
	}
	return ""
}

func (x *CreateJobRequest) GetDescriptionRef() string {
	if x != nil {
		return x.DescriptionRef
	}
	return ""
}

func (x *CreateJobRequest) GetDescriptorJson() string {
	if x != nil {
		return x.DescriptorJson
	}
	return ""
}

type CreateJobResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	JobId          int64                  `protobuf:"varint,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	DescriptionRef string                 `protobuf:"bytes,2,opt,name=description_ref,json=descriptionRef,proto3" json:"description_ref,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateJobResponse) Reset() {
	*x = CreateJobResponse{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateJobResponse) ProtoMessage() {}

func (x *CreateJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateJobResponse.ProtoReflect.Descriptor instead.
func (*CreateJobResponse) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{4}
}

func (x *CreateJobResponse) GetJobId() int64 {
	if x != nil {
		return x.JobId
	}
	return 0
}

func (x *CreateJobResponse) GetDescriptionRef() string {
	if x != nil {
		return x.DescriptionRef
	}
	return ""
}

type ApplyForJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CallerAddress string                 `protobuf:"bytes,1,opt,name=caller_address,json=callerAddress,proto3" json:"caller_address,omitempty"`
	JobId         int64                  `protobuf:"varint,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplyForJobRequest) Reset() {
	*x = ApplyForJobRequest{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyForJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyForJobRequest) ProtoMessage() {}

func (x *ApplyForJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyForJobRequest.ProtoReflect.Descriptor instead.
func (*ApplyForJobRequest) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{5}
}

func (x *ApplyForJobRequest) GetCallerAddress() string {
	if x != nil {
		return x.CallerAddress
	}
	return ""
}

func (x *ApplyForJobRequest) GetJobId() int64 {
	if x != nil {
		return x.JobId
	}
	return 0
}

type ApplyForJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ApplyForJobResponse) Reset() {
	*x = ApplyForJobResponse{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ApplyForJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ApplyForJobResponse) ProtoMessage() {}

func (x *ApplyForJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ApplyForJobResponse.ProtoReflect.Descriptor instead.
func (*ApplyForJobResponse) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{6}
}

type AssignJobRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	CallerAddress   string                 `protobuf:"bytes,1,opt,name=caller_address,json=callerAddress,proto3" json:"caller_address,omitempty"`
	JobId           int64                  `protobuf:"varint,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	EmployeeAddress string                 `protobuf:"bytes,3,opt,name=employee_address,json=employeeAddress,proto3" json:"employee_address,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *AssignJobRequest) Reset() {
	*x = AssignJobRequest{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssignJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignJobRequest) ProtoMessage() {}

func (x *AssignJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignJobRequest.ProtoReflect.Descriptor instead.
func (*AssignJobRequest) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{7}
}

func (x *AssignJobRequest) GetCallerAddress() string {
	if x != nil {
		return x.CallerAddress
	}
	return ""
}

func (x *AssignJobRequest) GetJobId() int64 {
	if x != nil {
		return x.JobId
	}
	return 0
}

func (x *AssignJobRequest) GetEmployeeAddress() string {
	if x != nil {
		return x.EmployeeAddress
	}
	return ""
}

type AssignJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AssignJobResponse) Reset() {
	*x = AssignJobResponse{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AssignJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AssignJobResponse) ProtoMessage() {}

func (x *AssignJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AssignJobResponse.ProtoReflect.Descriptor instead.
func (*AssignJobResponse) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{8}
}

type AskToReviewJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CallerAddress string                 `protobuf:"bytes,1,opt,name=caller_address,json=callerAddress,proto3" json:"caller_address,omitempty"`
	JobId         int64                  `protobuf:"varint,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	WorkResultRef string                 `protobuf:"bytes,3,opt,name=work_result_ref,json=workResultRef,proto3" json:"work_result_ref,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AskToReviewJobRequest) Reset() {
	*x = AskToReviewJobRequest{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AskToReviewJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AskToReviewJobRequest) ProtoMessage() {}

func (x *AskToReviewJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AskToReviewJobRequest.ProtoReflect.Descriptor instead.
func (*AskToReviewJobRequest) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{9}
}

func (x *AskToReviewJobRequest) GetCallerAddress() string {
	if x != nil {
		return x.CallerAddress
	}
	return ""
}

func (x *AskToReviewJobRequest) GetJobId() int64 {
	if x != nil {
		return x.JobId
	}
	return 0
}

func (x *AskToReviewJobRequest) GetWorkResultRef() string {
	if x != nil {
		return x.WorkResultRef
	}
	return ""
}

type AskToReviewJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AskToReviewJobResponse) Reset() {
	*x = AskToReviewJobResponse{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AskToReviewJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AskToReviewJobResponse) ProtoMessage() {}

func (x *AskToReviewJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AskToReviewJobResponse.ProtoReflect.Descriptor instead.
func (*AskToReviewJobResponse) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{10}
}

type CompleteJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CallerAddress string                 `protobuf:"bytes,1,opt,name=caller_address,json=callerAddress,proto3" json:"caller_address,omitempty"`
	JobId         int64                  `protobuf:"varint,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteJobRequest) Reset() {
	*x = CompleteJobRequest{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteJobRequest) ProtoMessage() {}

func (x *CompleteJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteJobRequest.ProtoReflect.Descriptor instead.
func (*CompleteJobRequest) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{11}
}

func (x *CompleteJobRequest) GetCallerAddress() string {
	if x != nil {
		return x.CallerAddress
	}
	return ""
}

func (x *CompleteJobRequest) GetJobId() int64 {
	if x != nil {
		return x.JobId
	}
	return 0
}

type CompleteJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CompleteJobResponse) Reset() {
	*x = CompleteJobResponse{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CompleteJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompleteJobResponse) ProtoMessage() {}

func (x *CompleteJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompleteJobResponse.ProtoReflect.Descriptor instead.
func (*CompleteJobResponse) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{12}
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         int64                  `protobuf:"varint,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[13]
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
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{13}
}

func (x *GetJobRequest) GetJobId() int64 {
	if x != nil {
		return x.JobId
	}
	return 0
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[14]
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
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{14}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListJobApplicationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         int64                  `protobuf:"varint,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobApplicationsRequest) Reset() {
	*x = ListJobApplicationsRequest{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobApplicationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobApplicationsRequest) ProtoMessage() {}

func (x *ListJobApplicationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobApplicationsRequest.ProtoReflect.Descriptor instead.
func (*ListJobApplicationsRequest) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{15}
}

func (x *ListJobApplicationsRequest) GetJobId() int64 {
	if x != nil {
		return x.JobId
	}
	return 0
}

type ListJobApplicationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Applicants    []string               `protobuf:"bytes,1,rep,name=applicants,proto3" json:"applicants,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobApplicationsResponse) Reset() {
	*x = ListJobApplicationsResponse{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobApplicationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobApplicationsResponse) ProtoMessage() {}

func (x *ListJobApplicationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobApplicationsResponse.ProtoReflect.Descriptor instead.
func (*ListJobApplicationsResponse) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{16}
}

func (x *ListJobApplicationsResponse) GetApplicants() []string {
	if x != nil {
		return x.Applicants
	}
	return nil
}

type DepositRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Amount        int64                  `protobuf:"varint,2,opt,name=amount,proto3" json:"amount,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DepositRequest) Reset() {
	*x = DepositRequest{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DepositRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DepositRequest) ProtoMessage() {}

func (x *DepositRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DepositRequest.ProtoReflect.Descriptor instead.
func (*DepositRequest) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{17}
}

func (x *DepositRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *DepositRequest) GetAmount() int64 {
	if x != nil {
		return x.Amount
	}
	return 0
}

type DepositResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Balance       int64                  `protobuf:"varint,1,opt,name=balance,proto3" json:"balance,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DepositResponse) Reset() {
	*x = DepositResponse{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DepositResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DepositResponse) ProtoMessage() {}

func (x *DepositResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DepositResponse.ProtoReflect.Descriptor instead.
func (*DepositResponse) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{18}
}

func (x *DepositResponse) GetBalance() int64 {
	if x != nil {
		return x.Balance
	}
	return 0
}

type GetBalanceRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBalanceRequest) Reset() {
	*x = GetBalanceRequest{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBalanceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalanceRequest) ProtoMessage() {}

func (x *GetBalanceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalanceRequest.ProtoReflect.Descriptor instead.
func (*GetBalanceRequest) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{19}
}

func (x *GetBalanceRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

type GetBalanceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Balance       int64                  `protobuf:"varint,1,opt,name=balance,proto3" json:"balance,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBalanceResponse) Reset() {
	*x = GetBalanceResponse{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBalanceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBalanceResponse) ProtoMessage() {}

func (x *GetBalanceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBalanceResponse.ProtoReflect.Descriptor instead.
func (*GetBalanceResponse) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{20}
}

func (x *GetBalanceResponse) GetBalance() int64 {
	if x != nil {
		return x.Balance
	}
	return 0
}

type CreateRatingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CallerAddress string                 `protobuf:"bytes,1,opt,name=caller_address,json=callerAddress,proto3" json:"caller_address,omitempty"`
	JobId         int64                  `protobuf:"varint,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	RatedPerson   string                 `protobuf:"bytes,3,opt,name=rated_person,json=ratedPerson,proto3" json:"rated_person,omitempty"`
	Score         int32                  `protobuf:"varint,4,opt,name=score,proto3" json:"score,omitempty"`
	Role          string                 `protobuf:"bytes,5,opt,name=role,proto3" json:"role,omitempty"` // EMPLOYER | EMPLOYEE
	Comment       string                 `protobuf:"bytes,6,opt,name=comment,proto3" json:"comment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateRatingRequest) Reset() {
	*x = CreateRatingRequest{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateRatingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateRatingRequest) ProtoMessage() {}

func (x *CreateRatingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateRatingRequest.ProtoReflect.Descriptor instead.
func (*CreateRatingRequest) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{21}
}

func (x *CreateRatingRequest) GetCallerAddress() string {
	if x != nil {
		return x.CallerAddress
	}
	return ""
}

func (x *CreateRatingRequest) GetJobId() int64 {
	if x != nil {
		return x.JobId
	}
	return 0
}

func (x *CreateRatingRequest) GetRatedPerson() string {
	if x != nil {
		return x.RatedPerson
	}
	return ""
}

func (x *CreateRatingRequest) GetScore() int32 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *CreateRatingRequest) GetRole() string {
	if x != nil {
		return x.Role
	}
	return ""
}

func (x *CreateRatingRequest) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

type CreateRatingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateRatingResponse) Reset() {
	*x = CreateRatingResponse{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateRatingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateRatingResponse) ProtoMessage() {}

func (x *CreateRatingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateRatingResponse.ProtoReflect.Descriptor instead.
func (*CreateRatingResponse) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{22}
}

type ListRatingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Filter        string                 `protobuf:"bytes,2,opt,name=filter,proto3" json:"filter,omitempty"` // POSITIVE | NEGATIVE | BOTH
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRatingsRequest) Reset() {
	*x = ListRatingsRequest{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRatingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRatingsRequest) ProtoMessage() {}

func (x *ListRatingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRatingsRequest.ProtoReflect.Descriptor instead.
func (*ListRatingsRequest) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{23}
}

func (x *ListRatingsRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *ListRatingsRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

type ListRatingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ratings       []*Rating              `protobuf:"bytes,1,rep,name=ratings,proto3" json:"ratings,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRatingsResponse) Reset() {
	*x = ListRatingsResponse{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRatingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRatingsResponse) ProtoMessage() {}

func (x *ListRatingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRatingsResponse.ProtoReflect.Descriptor instead.
func (*ListRatingsResponse) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{24}
}

func (x *ListRatingsResponse) GetRatings() []*Rating {
	if x != nil {
		return x.Ratings
	}
	return nil
}

type GetRatingsCountRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	Filter        string                 `protobuf:"bytes,2,opt,name=filter,proto3" json:"filter,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRatingsCountRequest) Reset() {
	*x = GetRatingsCountRequest{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRatingsCountRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRatingsCountRequest) ProtoMessage() {}

func (x *GetRatingsCountRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRatingsCountRequest.ProtoReflect.Descriptor instead.
func (*GetRatingsCountRequest) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{25}
}

func (x *GetRatingsCountRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

func (x *GetRatingsCountRequest) GetFilter() string {
	if x != nil {
		return x.Filter
	}
	return ""
}

type GetRatingsCountResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Count         int64                  `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetRatingsCountResponse) Reset() {
	*x = GetRatingsCountResponse{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetRatingsCountResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetRatingsCountResponse) ProtoMessage() {}

func (x *GetRatingsCountResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetRatingsCountResponse.ProtoReflect.Descriptor instead.
func (*GetRatingsCountResponse) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{26}
}

func (x *GetRatingsCountResponse) GetCount() int64 {
	if x != nil {
		return x.Count
	}
	return 0
}

type GetKarmaRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetKarmaRequest) Reset() {
	*x = GetKarmaRequest{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetKarmaRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetKarmaRequest) ProtoMessage() {}

func (x *GetKarmaRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetKarmaRequest.ProtoReflect.Descriptor instead.
func (*GetKarmaRequest) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{27}
}

func (x *GetKarmaRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

type GetKarmaResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Karma         int64                  `protobuf:"varint,1,opt,name=karma,proto3" json:"karma,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetKarmaResponse) Reset() {
	*x = GetKarmaResponse{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetKarmaResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetKarmaResponse) ProtoMessage() {}

func (x *GetKarmaResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetKarmaResponse.ProtoReflect.Descriptor instead.
func (*GetKarmaResponse) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{28}
}

func (x *GetKarmaResponse) GetKarma() int64 {
	if x != nil {
		return x.Karma
	}
	return 0
}

type CreateReviewRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CallerAddress string                 `protobuf:"bytes,1,opt,name=caller_address,json=callerAddress,proto3" json:"caller_address,omitempty"`
	JobId         int64                  `protobuf:"varint,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Score         int32                  `protobuf:"varint,3,opt,name=score,proto3" json:"score,omitempty"`
	Comment       string                 `protobuf:"bytes,4,opt,name=comment,proto3" json:"comment,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateReviewRequest) Reset() {
	*x = CreateReviewRequest{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateReviewRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateReviewRequest) ProtoMessage() {}

func (x *CreateReviewRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateReviewRequest.ProtoReflect.Descriptor instead.
func (*CreateReviewRequest) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{29}
}

func (x *CreateReviewRequest) GetCallerAddress() string {
	if x != nil {
		return x.CallerAddress
	}
	return ""
}

func (x *CreateReviewRequest) GetJobId() int64 {
	if x != nil {
		return x.JobId
	}
	return 0
}

func (x *CreateReviewRequest) GetScore() int32 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *CreateReviewRequest) GetComment() string {
	if x != nil {
		return x.Comment
	}
	return ""
}

type CreateReviewResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateReviewResponse) Reset() {
	*x = CreateReviewResponse{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateReviewResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateReviewResponse) ProtoMessage() {}

func (x *CreateReviewResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateReviewResponse.ProtoReflect.Descriptor instead.
func (*CreateReviewResponse) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{30}
}

type ListReviewsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	CallerAddress string                 `protobuf:"bytes,1,opt,name=caller_address,json=callerAddress,proto3" json:"caller_address,omitempty"`
	JobId         int64                  `protobuf:"varint,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReviewsRequest) Reset() {
	*x = ListReviewsRequest{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReviewsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReviewsRequest) ProtoMessage() {}

func (x *ListReviewsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReviewsRequest.ProtoReflect.Descriptor instead.
func (*ListReviewsRequest) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{31}
}

func (x *ListReviewsRequest) GetCallerAddress() string {
	if x != nil {
		return x.CallerAddress
	}
	return ""
}

func (x *ListReviewsRequest) GetJobId() int64 {
	if x != nil {
		return x.JobId
	}
	return 0
}

type ListReviewsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reviews       []*Review              `protobuf:"bytes,1,rep,name=reviews,proto3" json:"reviews,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListReviewsResponse) Reset() {
	*x = ListReviewsResponse{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListReviewsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReviewsResponse) ProtoMessage() {}

func (x *ListReviewsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReviewsResponse.ProtoReflect.Descriptor instead.
func (*ListReviewsResponse) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{32}
}

func (x *ListReviewsResponse) GetReviews() []*Review {
	if x != nil {
		return x.Reviews
	}
	return nil
}

type ExportRatingsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Address       string                 `protobuf:"bytes,1,opt,name=address,proto3" json:"address,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportRatingsRequest) Reset() {
	*x = ExportRatingsRequest{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportRatingsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportRatingsRequest) ProtoMessage() {}

func (x *ExportRatingsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportRatingsRequest.ProtoReflect.Descriptor instead.
func (*ExportRatingsRequest) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{33}
}

func (x *ExportRatingsRequest) GetAddress() string {
	if x != nil {
		return x.Address
	}
	return ""
}

type ExportRatingsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportRatingsResponse) Reset() {
	*x = ExportRatingsResponse{}
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportRatingsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportRatingsResponse) ProtoMessage() {}

func (x *ExportRatingsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_jobmarket_v1_jobmarket_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportRatingsResponse.ProtoReflect.Descriptor instead.
func (*ExportRatingsResponse) Descriptor() ([]byte, []int) {
	return file_jobmarket_v1_jobmarket_proto_rawDescGZIP(), []int{34}
}

func (x *ExportRatingsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_jobmarket_v1_jobmarket_proto protoreflect.FileDescriptor

const file_jobmarket_v1_jobmarket_proto_rawDesc = "" +
	"\n" +
	"\x1cjobmarket/v1/jobmarket.proto\x12\fjobmarket.v1\"\x9c\x02\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\x03R\x02id\x12\x1a\n" +
	"\bemployer\x18\x02 \x01(\tR\bemployer\x12\x1a\n" +
	"\bemployee\x18\x03 \x01(\tR\bemployee\x12\x18\n" +
	"\apayment\x18\x04 \x01(\x03R\apayment\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12 \n" +
	"\vdescription\x18\x06 \x01(\tR\vdescription\x12\x1a\n" +
	"\bdeadline\x18\a \x01(\tR\bdeadline\x12\x1f\n" +
	"\vwork_result\x18\b \x01(\tR\n" +
	"workResult\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\n" +
	" \x01(\tR\tupdatedAt\"\xbb\x01\n" +
	"\x06Rating\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\x03R\x05jobId\x12!\n" +
	"\frated_person\x18\x02 \x01(\tR\vratedPerson\x12\x14\n" +
	"\x05rater\x18\x03 \x01(\tR\x05rater\x12\x14\n" +
	"\x05score\x18\x04 \x01(\x05R\x05score\x12\x12\n" +
	"\x04role\x18\x05 \x01(\tR\x04role\x12\x18\n" +
	"\acomment\x18\x06 \x01(\tR\acomment\x12\x1d\n" +
	"\n" +
	"created_at\x18\a \x01(\tR\tcreatedAt\"n\n" +
	"\x06Review\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\x03R\x05jobId\x12\x14\n" +
	"\x05score\x18\x02 \x01(\x05R\x05score\x12\x18\n" +
	"\acomment\x18\x03 \x01(\tR\acomment\x12\x1d\n" +
	"\n" +
	"created_at\x18\x04 \x01(\tR\tcreatedAt\"\xc1\x01\n" +
	"\x10CreateJobRequest\x12%\n" +
	"\x0ecaller_address\x18\x01 \x01(\tR\rcallerAddress\x12\x18\n" +
	"\apayment\x18\x02 \x01(\x03R\apayment\x12\x1a\n" +
	"\bdeadline\x18\x03 \x01(\tR\bdeadline\x12'\n" +
	"\x0fdescription_ref\x18\x04 \x01(\tR\x0edescriptionRef\x12'\n" +
	"\x0fdescriptor_json\x18\x05 \x01(\tR\x0edescriptorJson\"S\n" +
	"\x11CreateJobResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\x03R\x05jobId\x12'\n" +
	"\x0fdescription_ref\x18\x02 \x01(\tR\x0edescriptionRef\"R\n" +
	"\x12ApplyForJobRequest\x12%\n" +
	"\x0ecaller_address\x18\x01 \x01(\tR\rcallerAddress\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\x03R\x05jobId\"\x15\n" +
	"\x13ApplyForJobResponse\"{\n" +
	"\x10AssignJobRequest\x12%\n" +
	"\x0ecaller_address\x18\x01 \x01(\tR\rcallerAddress\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\x03R\x05jobId\x12)\n" +
	"\x10employee_address\x18\x03 \x01(\tR\x0femployeeAddress\"\x13\n" +
	"\x11AssignJobResponse\"}\n" +
	"\x15AskToReviewJobRequest\x12%\n" +
	"\x0ecaller_address\x18\x01 \x01(\tR\rcallerAddress\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\x03R\x05jobId\x12&\n" +
	"\x0fwork_result_ref\x18\x03 \x01(\tR\rworkResultRef\"\x18\n" +
	"\x16AskToReviewJobResponse\"R\n" +
	"\x12CompleteJobRequest\x12%\n" +
	"\x0ecaller_address\x18\x01 \x01(\tR\rcallerAddress\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\x03R\x05jobId\"\x15\n" +
	"\x13CompleteJobResponse\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\x03R\x05jobId\"5\n" +
	"\x0eGetJobResponse\x12#\n" +
	"\x03job\x18\x01 \x01(\v2\x11.jobmarket.v1.JobR\x03job\"3\n" +
	"\x1aListJobApplicationsRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\x03R\x05jobId\"=\n" +
	"\x1bListJobApplicationsResponse\x12\x1e\n" +
	"\n" +
	"applicants\x18\x01 \x03(\tR\n" +
	"applicants\"B\n" +
	"\x0eDepositRequest\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\x12\x16\n" +
	"\x06amount\x18\x02 \x01(\x03R\x06amount\"+\n" +
	"\x0fDepositResponse\x12\x18\n" +
	"\abalance\x18\x01 \x01(\x03R\abalance\"-\n" +
	"\x11GetBalanceRequest\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\".\n" +
	"\x12GetBalanceResponse\x12\x18\n" +
	"\abalance\x18\x01 \x01(\x03R\abalance\"\xba\x01\n" +
	"\x13CreateRatingRequest\x12%\n" +
	"\x0ecaller_address\x18\x01 \x01(\tR\rcallerAddress\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\x03R\x05jobId\x12!\n" +
	"\frated_person\x18\x03 \x01(\tR\vratedPerson\x12\x14\n" +
	"\x05score\x18\x04 \x01(\x05R\x05score\x12\x12\n" +
	"\x04role\x18\x05 \x01(\tR\x04role\x12\x18\n" +
	"\acomment\x18\x06 \x01(\tR\acomment\"\x16\n" +
	"\x14CreateRatingResponse\"F\n" +
	"\x12ListRatingsRequest\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\x12\x16\n" +
	"\x06filter\x18\x02 \x01(\tR\x06filter\"E\n" +
	"\x13ListRatingsResponse\x12.\n" +
	"\aratings\x18\x01 \x03(\v2\x14.jobmarket.v1.RatingR\aratings\"J\n" +
	"\x16GetRatingsCountRequest\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\x12\x16\n" +
	"\x06filter\x18\x02 \x01(\tR\x06filter\"/\n" +
	"\x17GetRatingsCountResponse\x12\x14\n" +
	"\x05count\x18\x01 \x01(\x03R\x05count\"+\n" +
	"\x0fGetKarmaRequest\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\"(\n" +
	"\x10GetKarmaResponse\x12\x14\n" +
	"\x05karma\x18\x01 \x01(\x03R\x05karma\"\x83\x01\n" +
	"\x13CreateReviewRequest\x12%\n" +
	"\x0ecaller_address\x18\x01 \x01(\tR\rcallerAddress\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\x03R\x05jobId\x12\x14\n" +
	"\x05score\x18\x03 \x01(\x05R\x05score\x12\x18\n" +
	"\acomment\x18\x04 \x01(\tR\acomment\"\x16\n" +
	"\x14CreateReviewResponse\"R\n" +
	"\x12ListReviewsRequest\x12%\n" +
	"\x0ecaller_address\x18\x01 \x01(\tR\rcallerAddress\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\x03R\x05jobId\"E\n" +
	"\x13ListReviewsResponse\x12.\n" +
	"\areviews\x18\x01 \x03(\v2\x14.jobmarket.v1.ReviewR\areviews\"0\n" +
	"\x14ExportRatingsRequest\x12\x18\n" +
	"\aaddress\x18\x01 \x01(\tR\aaddress\"+\n" +
	"\x15ExportRatingsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xdf\x04\n" +
	"\vJobsService\x12L\n" +
	"\tCreateJob\x12\x1e.jobmarket.v1.CreateJobRequest\x1a\x1f.jobmarket.v1.CreateJobResponse\x12R\n" +
	"\vApplyForJob\x12 .jobmarket.v1.ApplyForJobRequest\x1a!.jobmarket.v1.ApplyForJobResponse\x12L\n" +
	"\tAssignJob\x12\x1e.jobmarket.v1.AssignJobRequest\x1a\x1f.jobmarket.v1.AssignJobResponse\x12[\n" +
	"\x0eAskToReviewJob\x12#.jobmarket.v1.AskToReviewJobRequest\x1a$.jobmarket.v1.AskToReviewJobResponse\x12R\n" +
	"\vCompleteJob\x12 .jobmarket.v1.CompleteJobRequest\x1a!.jobmarket.v1.CompleteJobResponse\x12C\n" +
	"\x06GetJob\x12\x1b.jobmarket.v1.GetJobRequest\x1a\x1c.jobmarket.v1.GetJobResponse\x12j\n" +
	"\x13ListJobApplications\x12(.jobmarket.v1.ListJobApplicationsRequest\x1a).jobmarket.v1.ListJobApplicationsResponse2\xaa\x01\n" +
	"\x0fAccountsService\x12F\n" +
	"\aDeposit\x12\x1c.jobmarket.v1.DepositRequest\x1a\x1d.jobmarket.v1.DepositResponse\x12O\n" +
	"\n" +
	"GetBalance\x12\x1f.jobmarket.v1.GetBalanceRequest\x1a .jobmarket.v1.GetBalanceResponse2\xe6\x02\n" +
	"\x0eRatingsService\x12U\n" +
	"\fCreateRating\x12!.jobmarket.v1.CreateRatingRequest\x1a\".jobmarket.v1.CreateRatingResponse\x12R\n" +
	"\vListRatings\x12 .jobmarket.v1.ListRatingsRequest\x1a!.jobmarket.v1.ListRatingsResponse\x12^\n" +
	"\x0fGetRatingsCount\x12$.jobmarket.v1.GetRatingsCountRequest\x1a%.jobmarket.v1.GetRatingsCountResponse\x12I\n" +
	"\bGetKarma\x12\x1d.jobmarket.v1.GetKarmaRequest\x1a\x1e.jobmarket.v1.GetKarmaResponse2\xbb\x01\n" +
	"\x0eReviewsService\x12U\n" +
	"\fCreateReview\x12!.jobmarket.v1.CreateReviewRequest\x1a\".jobmarket.v1.CreateReviewResponse\x12R\n" +
	"\vListReviews\x12 .jobmarket.v1.ListReviewsRequest\x1a!.jobmarket.v1.ListReviewsResponse2i\n" +
	"\rExportService\x12X\n" +
	"\rExportRatings\x12\".jobmarket.v1.ExportRatingsRequest\x1a#.jobmarket.v1.ExportRatingsResponseBCZAgithub.com/openlabor/jobmarket/gen/proto/jobmarket/v1;jobmarketv1b\x06proto3"

var (
	file_jobmarket_v1_jobmarket_proto_rawDescOnce sync.Once
	file_jobmarket_v1_jobmarket_proto_rawDescData []byte
)

func file_jobmarket_v1_jobmarket_proto_rawDescGZIP() []byte {
	file_jobmarket_v1_jobmarket_proto_rawDescOnce.Do(func() {
		file_jobmarket_v1_jobmarket_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_jobmarket_v1_jobmarket_proto_rawDesc), len(file_jobmarket_v1_jobmarket_proto_rawDesc)))
	})
	return file_jobmarket_v1_jobmarket_proto_rawDescData
}

var file_jobmarket_v1_jobmarket_proto_msgTypes = make([]protoimpl.MessageInfo, 35)
var file_jobmarket_v1_jobmarket_proto_goTypes = []any{
	(*Job)(nil),                         // 0: jobmarket.v1.Job
	(*Rating)(nil),                      // 1: jobmarket.v1.Rating
	(*Review)(nil),                      // 2: jobmarket.v1.Review
	(*CreateJobRequest)(nil),            // 3: jobmarket.v1.CreateJobRequest
	(*CreateJobResponse)(nil),           // 4: jobmarket.v1.CreateJobResponse
	(*ApplyForJobRequest)(nil),          // 5: jobmarket.v1.ApplyForJobRequest
	(*ApplyForJobResponse)(nil),         // 6: jobmarket.v1.ApplyForJobResponse
	(*AssignJobRequest)(nil),            // 7: jobmarket.v1.AssignJobRequest
	(*AssignJobResponse)(nil),           // 8: jobmarket.v1.AssignJobResponse
	(*AskToReviewJobRequest)(nil),       // 9: jobmarket.v1.AskToReviewJobRequest
	(*AskToReviewJobResponse)(nil),      // 10: jobmarket.v1.AskToReviewJobResponse
	(*CompleteJobRequest)(nil),          // 11: jobmarket.v1.CompleteJobRequest
	(*CompleteJobResponse)(nil),         // 12: jobmarket.v1.CompleteJobResponse
	(*GetJobRequest)(nil),               // 13: jobmarket.v1.GetJobRequest
	(*GetJobResponse)(nil),              // 14: jobmarket.v1.GetJobResponse
	(*ListJobApplicationsRequest)(nil),  // 15: jobmarket.v1.ListJobApplicationsRequest
	(*ListJobApplicationsResponse)(nil), // 16: jobmarket.v1.ListJobApplicationsResponse
	(*DepositRequest)(nil),              // 17: jobmarket.v1.DepositRequest
	(*DepositResponse)(nil),             // 18: jobmarket.v1.DepositResponse
	(*GetBalanceRequest)(nil),           // 19: jobmarket.v1.GetBalanceRequest
	(*GetBalanceResponse)(nil),          // 20: jobmarket.v1.GetBalanceResponse
	(*CreateRatingRequest)(nil),         // 21: jobmarket.v1.CreateRatingRequest
	(*CreateRatingResponse)(nil),        // 22: jobmarket.v1.CreateRatingResponse
	(*ListRatingsRequest)(nil),          // 23: jobmarket.v1.ListRatingsRequest
	(*ListRatingsResponse)(nil),         // 24: jobmarket.v1.ListRatingsResponse
	(*GetRatingsCountRequest)(nil),      // 25: jobmarket.v1.GetRatingsCountRequest
	(*GetRatingsCountResponse)(nil),     // 26: jobmarket.v1.GetRatingsCountResponse
	(*GetKarmaRequest)(nil),             // 27: jobmarket.v1.GetKarmaRequest
	(*GetKarmaResponse)(nil),            // 28: jobmarket.v1.GetKarmaResponse
	(*CreateReviewRequest)(nil),         // 29: jobmarket.v1.CreateReviewRequest
	(*CreateReviewResponse)(nil),        // 30: jobmarket.v1.CreateReviewResponse
	(*ListReviewsRequest)(nil),          // 31: jobmarket.v1.ListReviewsRequest
	(*ListReviewsResponse)(nil),         // 32: jobmarket.v1.ListReviewsResponse
	(*ExportRatingsRequest)(nil),        // 33: jobmarket.v1.ExportRatingsRequest
	(*ExportRatingsResponse)(nil),       // 34: jobmarket.v1.ExportRatingsResponse
}
var file_jobmarket_v1_jobmarket_proto_depIdxs = []int32{
	0,  // 0: jobmarket.v1.GetJobResponse.job:type_name -> jobmarket.v1.Job
	1,  // 1: jobmarket.v1.ListRatingsResponse.ratings:type_name -> jobmarket.v1.Rating
	2,  // 2: jobmarket.v1.ListReviewsResponse.reviews:type_name -> jobmarket.v1.Review
	3,  // 3: jobmarket.v1.JobsService.CreateJob:input_type -> jobmarket.v1.CreateJobRequest
	5,  // 4: jobmarket.v1.JobsService.ApplyForJob:input_type -> jobmarket.v1.ApplyForJobRequest
	7,  // 5: jobmarket.v1.JobsService.AssignJob:input_type -> jobmarket.v1.AssignJobRequest
	9,  // 6: jobmarket.v1.JobsService.AskToReviewJob:input_type -> jobmarket.v1.AskToReviewJobRequest
	11, // 7: jobmarket.v1.JobsService.CompleteJob:input_type -> jobmarket.v1.CompleteJobRequest
	13, // 8: jobmarket.v1.JobsService.GetJob:input_type -> jobmarket.v1.GetJobRequest
	15, // 9: jobmarket.v1.JobsService.ListJobApplications:input_type -> jobmarket.v1.ListJobApplicationsRequest
	17, // 10: jobmarket.v1.AccountsService.Deposit:input_type -> jobmarket.v1.DepositRequest
	19, // 11: jobmarket.v1.AccountsService.GetBalance:input_type -> jobmarket.v1.GetBalanceRequest
	21, // 12: jobmarket.v1.RatingsService.CreateRating:input_type -> jobmarket.v1.CreateRatingRequest
	23, // 13: jobmarket.v1.RatingsService.ListRatings:input_type -> jobmarket.v1.ListRatingsRequest
	25, // 14: jobmarket.v1.RatingsService.GetRatingsCount:input_type -> jobmarket.v1.GetRatingsCountRequest
	27, // 15: jobmarket.v1.RatingsService.GetKarma:input_type -> jobmarket.v1.GetKarmaRequest
	29, // 16: jobmarket.v1.ReviewsService.CreateReview:input_type -> jobmarket.v1.CreateReviewRequest
	31, // 17: jobmarket.v1.ReviewsService.ListReviews:input_type -> jobmarket.v1.ListReviewsRequest
	33, // 18: jobmarket.v1.ExportService.ExportRatings:input_type -> jobmarket.v1.ExportRatingsRequest
	4,  // 19: jobmarket.v1.JobsService.CreateJob:output_type -> jobmarket.v1.CreateJobResponse
	6,  // 20: jobmarket.v1.JobsService.ApplyForJob:output_type -> jobmarket.v1.ApplyForJobResponse
	8,  // 21: jobmarket.v1.JobsService.AssignJob:output_type -> jobmarket.v1.AssignJobResponse
	10, // 22: jobmarket.v1.JobsService.AskToReviewJob:output_type -> jobmarket.v1.AskToReviewJobResponse
	12, // 23: jobmarket.v1.JobsService.CompleteJob:output_type -> jobmarket.v1.CompleteJobResponse
	14, // 24: jobmarket.v1.JobsService.GetJob:output_type -> jobmarket.v1.GetJobResponse
	16, // 25: jobmarket.v1.JobsService.ListJobApplications:output_type -> jobmarket.v1.ListJobApplicationsResponse
	18, // 26: jobmarket.v1.AccountsService.Deposit:output_type -> jobmarket.v1.DepositResponse
	20, // 27: jobmarket.v1.AccountsService.GetBalance:output_type -> jobmarket.v1.GetBalanceResponse
	22, // 28: jobmarket.v1.RatingsService.CreateRating:output_type -> jobmarket.v1.CreateRatingResponse
	24, // 29: jobmarket.v1.RatingsService.ListRatings:output_type -> jobmarket.v1.ListRatingsResponse
	26, // 30: jobmarket.v1.RatingsService.GetRatingsCount:output_type -> jobmarket.v1.GetRatingsCountResponse
	28, // 31: jobmarket.v1.RatingsService.GetKarma:output_type -> jobmarket.v1.GetKarmaResponse
	30, // 32: jobmarket.v1.ReviewsService.CreateReview:output_type -> jobmarket.v1.CreateReviewResponse
	32, // 33: jobmarket.v1.ReviewsService.ListReviews:output_type -> jobmarket.v1.ListReviewsResponse
	34, // 34: jobmarket.v1.ExportService.ExportRatings:output_type -> jobmarket.v1.ExportRatingsResponse
	19, // [19:35] is the sub-list for method output_type
	3,  // [3:19] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_jobmarket_v1_jobmarket_proto_init() }
func file_jobmarket_v1_jobmarket_proto_init() {
	if File_jobmarket_v1_jobmarket_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_jobmarket_v1_jobmarket_proto_rawDesc), len(file_jobmarket_v1_jobmarket_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   35,
			NumExtensions: 0,
			NumServices:   5,
		},
		GoTypes:           file_jobmarket_v1_jobmarket_proto_goTypes,
		DependencyIndexes: file_jobmarket_v1_jobmarket_proto_depIdxs,
		MessageInfos:      file_jobmarket_v1_jobmarket_proto_msgTypes,
	}.Build()
	File_jobmarket_v1_jobmarket_proto = out.File
	file_jobmarket_v1_jobmarket_proto_goTypes = nil
	file_jobmarket_v1_jobmarket_proto_depIdxs = nil
}
