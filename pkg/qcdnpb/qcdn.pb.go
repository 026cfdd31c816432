// Package qcdnpb contains the qcdn wire protocol: the messages and services
// defined in qcdn.proto.
//
// The bindings are hand-maintained in the legacy struct-tag form rather
// than regenerated with protoc, so the repository builds with no codegen
// step. The protobuf runtime derives descriptors from the struct tags; the
// wire format is identical to generated code. Keep field numbers in sync
// with qcdn.proto.
package qcdnpb

import "fmt"

// PingMessage is a round-trip timestamp probe.
type PingMessage struct {
	Timestamp int64 `protobuf:"varint,1,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
}

func (m *PingMessage) Reset()         { *m = PingMessage{} }
func (m *PingMessage) String() string { return fmt.Sprintf("%+v", *m) }
func (*PingMessage) ProtoMessage()    {}

func (m *PingMessage) GetTimestamp() int64 {
	if m != nil {
		return m.Timestamp
	}
	return 0
}

// VersionResponse reports the server build version.
type VersionResponse struct {
	Version string `protobuf:"bytes,1,opt,name=version,proto3" json:"version,omitempty"`
}

func (m *VersionResponse) Reset()         { *m = VersionResponse{} }
func (m *VersionResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*VersionResponse) ProtoMessage()    {}

func (m *VersionResponse) GetVersion() string {
	if m != nil {
		return m.Version
	}
	return ""
}

// UploadMeta announces the artifact an upload stream will carry. It must be
// the first and only meta frame of the stream.
type UploadMeta struct {
	Name      string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Dir       string `protobuf:"bytes,2,opt,name=dir,proto3" json:"dir,omitempty"`
	MediaType string `protobuf:"bytes,3,opt,name=media_type,json=mediaType,proto3" json:"media_type,omitempty"`
	Version   string `protobuf:"bytes,4,opt,name=version,proto3" json:"version,omitempty"`
	Size      int64  `protobuf:"varint,5,opt,name=size,proto3" json:"size,omitempty"`
	Hash      string `protobuf:"bytes,6,opt,name=hash,proto3" json:"hash,omitempty"`
}

func (m *UploadMeta) Reset()         { *m = UploadMeta{} }
func (m *UploadMeta) String() string { return fmt.Sprintf("%+v", *m) }
func (*UploadMeta) ProtoMessage()    {}

func (m *UploadMeta) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *UploadMeta) GetDir() string {
	if m != nil {
		return m.Dir
	}
	return ""
}

func (m *UploadMeta) GetMediaType() string {
	if m != nil {
		return m.MediaType
	}
	return ""
}

func (m *UploadMeta) GetVersion() string {
	if m != nil {
		return m.Version
	}
	return ""
}

func (m *UploadMeta) GetSize() int64 {
	if m != nil {
		return m.Size
	}
	return 0
}

func (m *UploadMeta) GetHash() string {
	if m != nil {
		return m.Hash
	}
	return ""
}

// FilePart is one raw byte chunk of a streamed file.
type FilePart struct {
	Bytes []byte `protobuf:"bytes,1,opt,name=bytes,proto3" json:"bytes,omitempty"`
}

func (m *FilePart) Reset()         { *m = FilePart{} }
func (m *FilePart) String() string { return fmt.Sprintf("FilePart{%d bytes}", len(m.Bytes)) }
func (*FilePart) ProtoMessage()    {}

func (m *FilePart) GetBytes() []byte {
	if m != nil {
		return m.Bytes
	}
	return nil
}

// UploadRequest is one frame of the upload stream: meta or part.
type UploadRequest struct {
	// Types that are assignable to Request:
	//	*UploadRequest_Meta
	//	*UploadRequest_Part
	Request isUploadRequest_Request `protobuf_oneof:"request"`
}

func (m *UploadRequest) Reset()         { *m = UploadRequest{} }
func (m *UploadRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*UploadRequest) ProtoMessage()    {}

type isUploadRequest_Request interface {
	isUploadRequest_Request()
}

// UploadRequest_Meta wraps the meta variant.
type UploadRequest_Meta struct {
	Meta *UploadMeta `protobuf:"bytes,1,opt,name=meta,proto3,oneof"`
}

// UploadRequest_Part wraps the part variant.
type UploadRequest_Part struct {
	Part *FilePart `protobuf:"bytes,2,opt,name=part,proto3,oneof"`
}

func (*UploadRequest_Meta) isUploadRequest_Request() {}
func (*UploadRequest_Part) isUploadRequest_Request() {}

func (m *UploadRequest) GetRequest() isUploadRequest_Request {
	if m != nil {
		return m.Request
	}
	return nil
}

func (m *UploadRequest) GetMeta() *UploadMeta {
	if x, ok := m.GetRequest().(*UploadRequest_Meta); ok {
		return x.Meta
	}
	return nil
}

func (m *UploadRequest) GetPart() *FilePart {
	if x, ok := m.GetRequest().(*UploadRequest_Part); ok {
		return x.Part
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*UploadRequest) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*UploadRequest_Meta)(nil),
		(*UploadRequest_Part)(nil),
	}
}

// UploadResponse returns the ids of a finalized upload.
type UploadResponse struct {
	DirId         int64 `protobuf:"varint,1,opt,name=dir_id,json=dirId,proto3" json:"dir_id,omitempty"`
	FileId        int64 `protobuf:"varint,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	FileVersionId int64 `protobuf:"varint,3,opt,name=file_version_id,json=fileVersionId,proto3" json:"file_version_id,omitempty"`
}

func (m *UploadResponse) Reset()         { *m = UploadResponse{} }
func (m *UploadResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*UploadResponse) ProtoMessage()    {}

func (m *UploadResponse) GetDirId() int64 {
	if m != nil {
		return m.DirId
	}
	return 0
}

func (m *UploadResponse) GetFileId() int64 {
	if m != nil {
		return m.FileId
	}
	return 0
}

func (m *UploadResponse) GetFileVersionId() int64 {
	if m != nil {
		return m.FileVersionId
	}
	return 0
}

// GetDirRequest asks for a single dir by id.
type GetDirRequest struct {
	Id int64 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *GetDirRequest) Reset()         { *m = GetDirRequest{} }
func (m *GetDirRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetDirRequest) ProtoMessage()    {}

func (m *GetDirRequest) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

// GetDirResponse is one dir row.
type GetDirResponse struct {
	Id   int64  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	Name string `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *GetDirResponse) Reset()         { *m = GetDirResponse{} }
func (m *GetDirResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetDirResponse) ProtoMessage()    {}

func (m *GetDirResponse) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *GetDirResponse) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

// GetDirsResponse lists all dirs.
type GetDirsResponse struct {
	Items []*GetDirResponse `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
}

func (m *GetDirsResponse) Reset()         { *m = GetDirsResponse{} }
func (m *GetDirsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetDirsResponse) ProtoMessage()    {}

func (m *GetDirsResponse) GetItems() []*GetDirResponse {
	if m != nil {
		return m.Items
	}
	return nil
}

// GetFilesRequest asks for the files of a dir.
type GetFilesRequest struct {
	DirId int64 `protobuf:"varint,1,opt,name=dir_id,json=dirId,proto3" json:"dir_id,omitempty"`
}

func (m *GetFilesRequest) Reset()         { *m = GetFilesRequest{} }
func (m *GetFilesRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetFilesRequest) ProtoMessage()    {}

func (m *GetFilesRequest) GetDirId() int64 {
	if m != nil {
		return m.DirId
	}
	return 0
}

// GetFileRequest asks for a single file by id.
type GetFileRequest struct {
	Id int64 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *GetFileRequest) Reset()         { *m = GetFileRequest{} }
func (m *GetFileRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetFileRequest) ProtoMessage()    {}

func (m *GetFileRequest) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

// GetFileResponse is one file row.
type GetFileResponse struct {
	Id        int64  `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	DirId     int64  `protobuf:"varint,2,opt,name=dir_id,json=dirId,proto3" json:"dir_id,omitempty"`
	Name      string `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	MediaType string `protobuf:"bytes,4,opt,name=media_type,json=mediaType,proto3" json:"media_type,omitempty"`
}

func (m *GetFileResponse) Reset()         { *m = GetFileResponse{} }
func (m *GetFileResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetFileResponse) ProtoMessage()    {}

func (m *GetFileResponse) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *GetFileResponse) GetDirId() int64 {
	if m != nil {
		return m.DirId
	}
	return 0
}

func (m *GetFileResponse) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *GetFileResponse) GetMediaType() string {
	if m != nil {
		return m.MediaType
	}
	return ""
}

// GetFilesResponse lists the files of a dir.
type GetFilesResponse struct {
	Items []*GetFileResponse `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
}

func (m *GetFilesResponse) Reset()         { *m = GetFilesResponse{} }
func (m *GetFilesResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetFilesResponse) ProtoMessage()    {}

func (m *GetFilesResponse) GetItems() []*GetFileResponse {
	if m != nil {
		return m.Items
	}
	return nil
}

// GetFileVersionsRequest asks for the versions of a file.
type GetFileVersionsRequest struct {
	FileId int64 `protobuf:"varint,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
}

func (m *GetFileVersionsRequest) Reset()         { *m = GetFileVersionsRequest{} }
func (m *GetFileVersionsRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetFileVersionsRequest) ProtoMessage()    {}

func (m *GetFileVersionsRequest) GetFileId() int64 {
	if m != nil {
		return m.FileId
	}
	return 0
}

// GetFileVersionRequest asks for a single version by id.
type GetFileVersionRequest struct {
	Id int64 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *GetFileVersionRequest) Reset()         { *m = GetFileVersionRequest{} }
func (m *GetFileVersionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetFileVersionRequest) ProtoMessage()    {}

func (m *GetFileVersionRequest) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

// GetFileVersionResponse is one version row with its current tags.
type GetFileVersionResponse struct {
	Id        int64    `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
	FileId    int64    `protobuf:"varint,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Size      int64    `protobuf:"varint,3,opt,name=size,proto3" json:"size,omitempty"`
	Hash      string   `protobuf:"bytes,4,opt,name=hash,proto3" json:"hash,omitempty"`
	Name      string   `protobuf:"bytes,5,opt,name=name,proto3" json:"name,omitempty"`
	Tags      []string `protobuf:"bytes,6,rep,name=tags,proto3" json:"tags,omitempty"`
	IsDeleted bool     `protobuf:"varint,7,opt,name=is_deleted,json=isDeleted,proto3" json:"is_deleted,omitempty"`
}

func (m *GetFileVersionResponse) Reset()         { *m = GetFileVersionResponse{} }
func (m *GetFileVersionResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetFileVersionResponse) ProtoMessage()    {}

func (m *GetFileVersionResponse) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

func (m *GetFileVersionResponse) GetFileId() int64 {
	if m != nil {
		return m.FileId
	}
	return 0
}

func (m *GetFileVersionResponse) GetSize() int64 {
	if m != nil {
		return m.Size
	}
	return 0
}

func (m *GetFileVersionResponse) GetHash() string {
	if m != nil {
		return m.Hash
	}
	return ""
}

func (m *GetFileVersionResponse) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *GetFileVersionResponse) GetTags() []string {
	if m != nil {
		return m.Tags
	}
	return nil
}

func (m *GetFileVersionResponse) GetIsDeleted() bool {
	if m != nil {
		return m.IsDeleted
	}
	return false
}

// GetFileVersionsResponse lists the versions of a file.
type GetFileVersionsResponse struct {
	Items []*GetFileVersionResponse `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
}

func (m *GetFileVersionsResponse) Reset()         { *m = GetFileVersionsResponse{} }
func (m *GetFileVersionsResponse) String() string { return fmt.Sprintf("%+v", *m) }
func (*GetFileVersionsResponse) ProtoMessage()    {}

func (m *GetFileVersionsResponse) GetItems() []*GetFileVersionResponse {
	if m != nil {
		return m.Items
	}
	return nil
}

// DownloadRequest asks for the bytes of a version.
type DownloadRequest struct {
	FileVersionId int64 `protobuf:"varint,1,opt,name=file_version_id,json=fileVersionId,proto3" json:"file_version_id,omitempty"`
}

func (m *DownloadRequest) Reset()         { *m = DownloadRequest{} }
func (m *DownloadRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*DownloadRequest) ProtoMessage()    {}

func (m *DownloadRequest) GetFileVersionId() int64 {
	if m != nil {
		return m.FileVersionId
	}
	return 0
}

// TagVersionRequest creates or moves a tag onto a version.
type TagVersionRequest struct {
	FileVersionId int64  `protobuf:"varint,1,opt,name=file_version_id,json=fileVersionId,proto3" json:"file_version_id,omitempty"`
	Tag           string `protobuf:"bytes,2,opt,name=tag,proto3" json:"tag,omitempty"`
}

func (m *TagVersionRequest) Reset()         { *m = TagVersionRequest{} }
func (m *TagVersionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*TagVersionRequest) ProtoMessage()    {}

func (m *TagVersionRequest) GetFileVersionId() int64 {
	if m != nil {
		return m.FileVersionId
	}
	return 0
}

func (m *TagVersionRequest) GetTag() string {
	if m != nil {
		return m.Tag
	}
	return ""
}

// DeleteFileVersionRequest soft-deletes a version.
type DeleteFileVersionRequest struct {
	Id int64 `protobuf:"varint,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *DeleteFileVersionRequest) Reset()         { *m = DeleteFileVersionRequest{} }
func (m *DeleteFileVersionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*DeleteFileVersionRequest) ProtoMessage()    {}

func (m *DeleteFileVersionRequest) GetId() int64 {
	if m != nil {
		return m.Id
	}
	return 0
}

// UploadedVersion announces a version that reached Ready.
type UploadedVersion struct {
	DirId         int64 `protobuf:"varint,1,opt,name=dir_id,json=dirId,proto3" json:"dir_id,omitempty"`
	FileId        int64 `protobuf:"varint,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	FileVersionId int64 `protobuf:"varint,3,opt,name=file_version_id,json=fileVersionId,proto3" json:"file_version_id,omitempty"`
}

func (m *UploadedVersion) Reset()         { *m = UploadedVersion{} }
func (m *UploadedVersion) String() string { return fmt.Sprintf("%+v", *m) }
func (*UploadedVersion) ProtoMessage()    {}

func (m *UploadedVersion) GetDirId() int64 {
	if m != nil {
		return m.DirId
	}
	return 0
}

func (m *UploadedVersion) GetFileId() int64 {
	if m != nil {
		return m.FileId
	}
	return 0
}

func (m *UploadedVersion) GetFileVersionId() int64 {
	if m != nil {
		return m.FileVersionId
	}
	return 0
}

// VersionTagged announces a tag create-or-move.
type VersionTagged struct {
	FileVersionId int64  `protobuf:"varint,1,opt,name=file_version_id,json=fileVersionId,proto3" json:"file_version_id,omitempty"`
	Tag           string `protobuf:"bytes,2,opt,name=tag,proto3" json:"tag,omitempty"`
}

func (m *VersionTagged) Reset()         { *m = VersionTagged{} }
func (m *VersionTagged) String() string { return fmt.Sprintf("%+v", *m) }
func (*VersionTagged) ProtoMessage()    {}

func (m *VersionTagged) GetFileVersionId() int64 {
	if m != nil {
		return m.FileVersionId
	}
	return 0
}

func (m *VersionTagged) GetTag() string {
	if m != nil {
		return m.Tag
	}
	return ""
}

// DeletedVersion announces a soft delete.
type DeletedVersion struct {
	FileVersionId int64 `protobuf:"varint,1,opt,name=file_version_id,json=fileVersionId,proto3" json:"file_version_id,omitempty"`
}

func (m *DeletedVersion) Reset()         { *m = DeletedVersion{} }
func (m *DeletedVersion) String() string { return fmt.Sprintf("%+v", *m) }
func (*DeletedVersion) ProtoMessage()    {}

func (m *DeletedVersion) GetFileVersionId() int64 {
	if m != nil {
		return m.FileVersionId
	}
	return 0
}

// SyncMessage is one replication feed event.
type SyncMessage struct {
	Timestamp int64 `protobuf:"varint,1,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
	// Types that are assignable to Message:
	//	*SyncMessage_Uploaded
	//	*SyncMessage_Tagged
	//	*SyncMessage_Deleted
	Message isSyncMessage_Message `protobuf_oneof:"message"`
}

func (m *SyncMessage) Reset()         { *m = SyncMessage{} }
func (m *SyncMessage) String() string { return fmt.Sprintf("%+v", *m) }
func (*SyncMessage) ProtoMessage()    {}

type isSyncMessage_Message interface {
	isSyncMessage_Message()
}

// SyncMessage_Uploaded wraps the uploaded variant.
type SyncMessage_Uploaded struct {
	Uploaded *UploadedVersion `protobuf:"bytes,2,opt,name=uploaded,proto3,oneof"`
}

// SyncMessage_Tagged wraps the tagged variant.
type SyncMessage_Tagged struct {
	Tagged *VersionTagged `protobuf:"bytes,3,opt,name=tagged,proto3,oneof"`
}

// SyncMessage_Deleted wraps the deleted variant.
type SyncMessage_Deleted struct {
	Deleted *DeletedVersion `protobuf:"bytes,4,opt,name=deleted,proto3,oneof"`
}

func (*SyncMessage_Uploaded) isSyncMessage_Message() {}
func (*SyncMessage_Tagged) isSyncMessage_Message()   {}
func (*SyncMessage_Deleted) isSyncMessage_Message()  {}

func (m *SyncMessage) GetTimestamp() int64 {
	if m != nil {
		return m.Timestamp
	}
	return 0
}

func (m *SyncMessage) GetMessage() isSyncMessage_Message {
	if m != nil {
		return m.Message
	}
	return nil
}

func (m *SyncMessage) GetUploaded() *UploadedVersion {
	if x, ok := m.GetMessage().(*SyncMessage_Uploaded); ok {
		return x.Uploaded
	}
	return nil
}

func (m *SyncMessage) GetTagged() *VersionTagged {
	if x, ok := m.GetMessage().(*SyncMessage_Tagged); ok {
		return x.Tagged
	}
	return nil
}

func (m *SyncMessage) GetDeleted() *DeletedVersion {
	if x, ok := m.GetMessage().(*SyncMessage_Deleted); ok {
		return x.Deleted
	}
	return nil
}

// XXX_OneofWrappers is for the internal use of the proto package.
func (*SyncMessage) XXX_OneofWrappers() []interface{} {
	return []interface{}{
		(*SyncMessage_Uploaded)(nil),
		(*SyncMessage_Tagged)(nil),
		(*SyncMessage_Deleted)(nil),
	}
}

// ConnectionRequest opens a replication feed. A zero timestamp requests
// live events only; otherwise history strictly after the timestamp is
// replayed first.
type ConnectionRequest struct {
	Timestamp int64 `protobuf:"varint,1,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
}

func (m *ConnectionRequest) Reset()         { *m = ConnectionRequest{} }
func (m *ConnectionRequest) String() string { return fmt.Sprintf("%+v", *m) }
func (*ConnectionRequest) ProtoMessage()    {}

func (m *ConnectionRequest) GetTimestamp() int64 {
	if m != nil {
		return m.Timestamp
	}
	return 0
}
