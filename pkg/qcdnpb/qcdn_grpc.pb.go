// gRPC client and server bindings for the services in qcdn.proto.
// Hand-maintained alongside qcdn.pb.go; keep method sets and service names
// in sync with the proto file.

package qcdnpb

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
)

// Full method names of the qcdn services.
const (
	General_Ping_FullMethodName    = "/qcdn.General/Ping"
	General_Version_FullMethodName = "/qcdn.General/Version"

	FileQueries_GetDirs_FullMethodName         = "/qcdn.FileQueries/GetDirs"
	FileQueries_GetDir_FullMethodName          = "/qcdn.FileQueries/GetDir"
	FileQueries_GetFiles_FullMethodName        = "/qcdn.FileQueries/GetFiles"
	FileQueries_GetFile_FullMethodName         = "/qcdn.FileQueries/GetFile"
	FileQueries_GetFileVersions_FullMethodName = "/qcdn.FileQueries/GetFileVersions"
	FileQueries_GetFileVersion_FullMethodName  = "/qcdn.FileQueries/GetFileVersion"
	FileQueries_Download_FullMethodName        = "/qcdn.FileQueries/Download"

	FileUpdates_Upload_FullMethodName            = "/qcdn.FileUpdates/Upload"
	FileUpdates_TagVersion_FullMethodName        = "/qcdn.FileUpdates/TagVersion"
	FileUpdates_DeleteFileVersion_FullMethodName = "/qcdn.FileUpdates/DeleteFileVersion"

	Nodes_ConnectNode_FullMethodName = "/qcdn.Nodes/ConnectNode"
)

// GeneralClient is the client API for the General service.
type GeneralClient interface {
	Ping(ctx context.Context, in *PingMessage, opts ...grpc.CallOption) (*PingMessage, error)
	Version(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*VersionResponse, error)
}

type generalClient struct {
	cc grpc.ClientConnInterface
}

// NewGeneralClient returns a GeneralClient backed by cc.
func NewGeneralClient(cc grpc.ClientConnInterface) GeneralClient {
	return &generalClient{cc}
}

func (c *generalClient) Ping(ctx context.Context, in *PingMessage, opts ...grpc.CallOption) (*PingMessage, error) {
	out := new(PingMessage)
	if err := c.cc.Invoke(ctx, General_Ping_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *generalClient) Version(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*VersionResponse, error) {
	out := new(VersionResponse)
	if err := c.cc.Invoke(ctx, General_Version_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// GeneralServer is the server API for the General service. All
// implementations must embed UnimplementedGeneralServer.
type GeneralServer interface {
	Ping(context.Context, *PingMessage) (*PingMessage, error)
	Version(context.Context, *emptypb.Empty) (*VersionResponse, error)
	mustEmbedUnimplementedGeneralServer()
}

// UnimplementedGeneralServer must be embedded for forward compatibility.
type UnimplementedGeneralServer struct{}

func (UnimplementedGeneralServer) Ping(context.Context, *PingMessage) (*PingMessage, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Ping not implemented")
}

func (UnimplementedGeneralServer) Version(context.Context, *emptypb.Empty) (*VersionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Version not implemented")
}

func (UnimplementedGeneralServer) mustEmbedUnimplementedGeneralServer() {}

// RegisterGeneralServer registers srv on s.
func RegisterGeneralServer(s grpc.ServiceRegistrar, srv GeneralServer) {
	s.RegisterService(&General_ServiceDesc, srv)
}

func _General_Ping_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PingMessage)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GeneralServer).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: General_Ping_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GeneralServer).Ping(ctx, req.(*PingMessage))
	}
	return interceptor(ctx, in, info, handler)
}

func _General_Version_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GeneralServer).Version(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: General_Version_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GeneralServer).Version(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// General_ServiceDesc is the grpc.ServiceDesc for the General service.
var General_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "qcdn.General",
	HandlerType: (*GeneralServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Ping",
			Handler:    _General_Ping_Handler,
		},
		{
			MethodName: "Version",
			Handler:    _General_Version_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "qcdn.proto",
}

// FileQueriesClient is the client API for the FileQueries service.
type FileQueriesClient interface {
	GetDirs(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*GetDirsResponse, error)
	GetDir(ctx context.Context, in *GetDirRequest, opts ...grpc.CallOption) (*GetDirResponse, error)
	GetFiles(ctx context.Context, in *GetFilesRequest, opts ...grpc.CallOption) (*GetFilesResponse, error)
	GetFile(ctx context.Context, in *GetFileRequest, opts ...grpc.CallOption) (*GetFileResponse, error)
	GetFileVersions(ctx context.Context, in *GetFileVersionsRequest, opts ...grpc.CallOption) (*GetFileVersionsResponse, error)
	GetFileVersion(ctx context.Context, in *GetFileVersionRequest, opts ...grpc.CallOption) (*GetFileVersionResponse, error)
	Download(ctx context.Context, in *DownloadRequest, opts ...grpc.CallOption) (FileQueries_DownloadClient, error)
}

type fileQueriesClient struct {
	cc grpc.ClientConnInterface
}

// NewFileQueriesClient returns a FileQueriesClient backed by cc.
func NewFileQueriesClient(cc grpc.ClientConnInterface) FileQueriesClient {
	return &fileQueriesClient{cc}
}

func (c *fileQueriesClient) GetDirs(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*GetDirsResponse, error) {
	out := new(GetDirsResponse)
	if err := c.cc.Invoke(ctx, FileQueries_GetDirs_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fileQueriesClient) GetDir(ctx context.Context, in *GetDirRequest, opts ...grpc.CallOption) (*GetDirResponse, error) {
	out := new(GetDirResponse)
	if err := c.cc.Invoke(ctx, FileQueries_GetDir_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fileQueriesClient) GetFiles(ctx context.Context, in *GetFilesRequest, opts ...grpc.CallOption) (*GetFilesResponse, error) {
	out := new(GetFilesResponse)
	if err := c.cc.Invoke(ctx, FileQueries_GetFiles_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fileQueriesClient) GetFile(ctx context.Context, in *GetFileRequest, opts ...grpc.CallOption) (*GetFileResponse, error) {
	out := new(GetFileResponse)
	if err := c.cc.Invoke(ctx, FileQueries_GetFile_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fileQueriesClient) GetFileVersions(ctx context.Context, in *GetFileVersionsRequest, opts ...grpc.CallOption) (*GetFileVersionsResponse, error) {
	out := new(GetFileVersionsResponse)
	if err := c.cc.Invoke(ctx, FileQueries_GetFileVersions_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fileQueriesClient) GetFileVersion(ctx context.Context, in *GetFileVersionRequest, opts ...grpc.CallOption) (*GetFileVersionResponse, error) {
	out := new(GetFileVersionResponse)
	if err := c.cc.Invoke(ctx, FileQueries_GetFileVersion_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fileQueriesClient) Download(ctx context.Context, in *DownloadRequest, opts ...grpc.CallOption) (FileQueries_DownloadClient, error) {
	stream, err := c.cc.NewStream(ctx, &FileQueries_ServiceDesc.Streams[0], FileQueries_Download_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &fileQueriesDownloadClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// FileQueries_DownloadClient is the client view of a Download stream.
type FileQueries_DownloadClient interface {
	Recv() (*FilePart, error)
	grpc.ClientStream
}

type fileQueriesDownloadClient struct {
	grpc.ClientStream
}

func (x *fileQueriesDownloadClient) Recv() (*FilePart, error) {
	m := new(FilePart)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// FileQueriesServer is the server API for the FileQueries service. All
// implementations must embed UnimplementedFileQueriesServer.
type FileQueriesServer interface {
	GetDirs(context.Context, *emptypb.Empty) (*GetDirsResponse, error)
	GetDir(context.Context, *GetDirRequest) (*GetDirResponse, error)
	GetFiles(context.Context, *GetFilesRequest) (*GetFilesResponse, error)
	GetFile(context.Context, *GetFileRequest) (*GetFileResponse, error)
	GetFileVersions(context.Context, *GetFileVersionsRequest) (*GetFileVersionsResponse, error)
	GetFileVersion(context.Context, *GetFileVersionRequest) (*GetFileVersionResponse, error)
	Download(*DownloadRequest, FileQueries_DownloadServer) error
	mustEmbedUnimplementedFileQueriesServer()
}

// UnimplementedFileQueriesServer must be embedded for forward compatibility.
type UnimplementedFileQueriesServer struct{}

func (UnimplementedFileQueriesServer) GetDirs(context.Context, *emptypb.Empty) (*GetDirsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDirs not implemented")
}

func (UnimplementedFileQueriesServer) GetDir(context.Context, *GetDirRequest) (*GetDirResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetDir not implemented")
}

func (UnimplementedFileQueriesServer) GetFiles(context.Context, *GetFilesRequest) (*GetFilesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFiles not implemented")
}

func (UnimplementedFileQueriesServer) GetFile(context.Context, *GetFileRequest) (*GetFileResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFile not implemented")
}

func (UnimplementedFileQueriesServer) GetFileVersions(context.Context, *GetFileVersionsRequest) (*GetFileVersionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFileVersions not implemented")
}

func (UnimplementedFileQueriesServer) GetFileVersion(context.Context, *GetFileVersionRequest) (*GetFileVersionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetFileVersion not implemented")
}

func (UnimplementedFileQueriesServer) Download(*DownloadRequest, FileQueries_DownloadServer) error {
	return status.Errorf(codes.Unimplemented, "method Download not implemented")
}

func (UnimplementedFileQueriesServer) mustEmbedUnimplementedFileQueriesServer() {}

// RegisterFileQueriesServer registers srv on s.
func RegisterFileQueriesServer(s grpc.ServiceRegistrar, srv FileQueriesServer) {
	s.RegisterService(&FileQueries_ServiceDesc, srv)
}

func _FileQueries_GetDirs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FileQueriesServer).GetDirs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FileQueries_GetDirs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FileQueriesServer).GetDirs(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _FileQueries_GetDir_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetDirRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FileQueriesServer).GetDir(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FileQueries_GetDir_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FileQueriesServer).GetDir(ctx, req.(*GetDirRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FileQueries_GetFiles_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFilesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FileQueriesServer).GetFiles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FileQueries_GetFiles_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FileQueriesServer).GetFiles(ctx, req.(*GetFilesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FileQueries_GetFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FileQueriesServer).GetFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FileQueries_GetFile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FileQueriesServer).GetFile(ctx, req.(*GetFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FileQueries_GetFileVersions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFileVersionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FileQueriesServer).GetFileVersions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FileQueries_GetFileVersions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FileQueriesServer).GetFileVersions(ctx, req.(*GetFileVersionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FileQueries_GetFileVersion_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetFileVersionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FileQueriesServer).GetFileVersion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FileQueries_GetFileVersion_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FileQueriesServer).GetFileVersion(ctx, req.(*GetFileVersionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FileQueries_Download_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(DownloadRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(FileQueriesServer).Download(m, &fileQueriesDownloadServer{stream})
}

// FileQueries_DownloadServer is the server view of a Download stream.
type FileQueries_DownloadServer interface {
	Send(*FilePart) error
	grpc.ServerStream
}

type fileQueriesDownloadServer struct {
	grpc.ServerStream
}

func (x *fileQueriesDownloadServer) Send(m *FilePart) error {
	return x.ServerStream.SendMsg(m)
}

// FileQueries_ServiceDesc is the grpc.ServiceDesc for the FileQueries
// service.
var FileQueries_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "qcdn.FileQueries",
	HandlerType: (*FileQueriesServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetDirs",
			Handler:    _FileQueries_GetDirs_Handler,
		},
		{
			MethodName: "GetDir",
			Handler:    _FileQueries_GetDir_Handler,
		},
		{
			MethodName: "GetFiles",
			Handler:    _FileQueries_GetFiles_Handler,
		},
		{
			MethodName: "GetFile",
			Handler:    _FileQueries_GetFile_Handler,
		},
		{
			MethodName: "GetFileVersions",
			Handler:    _FileQueries_GetFileVersions_Handler,
		},
		{
			MethodName: "GetFileVersion",
			Handler:    _FileQueries_GetFileVersion_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Download",
			Handler:       _FileQueries_Download_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "qcdn.proto",
}

// FileUpdatesClient is the client API for the FileUpdates service.
type FileUpdatesClient interface {
	Upload(ctx context.Context, opts ...grpc.CallOption) (FileUpdates_UploadClient, error)
	TagVersion(ctx context.Context, in *TagVersionRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
	DeleteFileVersion(ctx context.Context, in *DeleteFileVersionRequest, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type fileUpdatesClient struct {
	cc grpc.ClientConnInterface
}

// NewFileUpdatesClient returns a FileUpdatesClient backed by cc.
func NewFileUpdatesClient(cc grpc.ClientConnInterface) FileUpdatesClient {
	return &fileUpdatesClient{cc}
}

func (c *fileUpdatesClient) Upload(ctx context.Context, opts ...grpc.CallOption) (FileUpdates_UploadClient, error) {
	stream, err := c.cc.NewStream(ctx, &FileUpdates_ServiceDesc.Streams[0], FileUpdates_Upload_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	return &fileUpdatesUploadClient{stream}, nil
}

// FileUpdates_UploadClient is the client view of an Upload stream.
type FileUpdates_UploadClient interface {
	Send(*UploadRequest) error
	CloseAndRecv() (*UploadResponse, error)
	grpc.ClientStream
}

type fileUpdatesUploadClient struct {
	grpc.ClientStream
}

func (x *fileUpdatesUploadClient) Send(m *UploadRequest) error {
	return x.ClientStream.SendMsg(m)
}

func (x *fileUpdatesUploadClient) CloseAndRecv() (*UploadResponse, error) {
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	m := new(UploadResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *fileUpdatesClient) TagVersion(ctx context.Context, in *TagVersionRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, FileUpdates_TagVersion_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fileUpdatesClient) DeleteFileVersion(ctx context.Context, in *DeleteFileVersionRequest, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, FileUpdates_DeleteFileVersion_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// FileUpdatesServer is the server API for the FileUpdates service. All
// implementations must embed UnimplementedFileUpdatesServer.
type FileUpdatesServer interface {
	Upload(FileUpdates_UploadServer) error
	TagVersion(context.Context, *TagVersionRequest) (*emptypb.Empty, error)
	DeleteFileVersion(context.Context, *DeleteFileVersionRequest) (*emptypb.Empty, error)
	mustEmbedUnimplementedFileUpdatesServer()
}

// UnimplementedFileUpdatesServer must be embedded for forward compatibility.
type UnimplementedFileUpdatesServer struct{}

func (UnimplementedFileUpdatesServer) Upload(FileUpdates_UploadServer) error {
	return status.Errorf(codes.Unimplemented, "method Upload not implemented")
}

func (UnimplementedFileUpdatesServer) TagVersion(context.Context, *TagVersionRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method TagVersion not implemented")
}

func (UnimplementedFileUpdatesServer) DeleteFileVersion(context.Context, *DeleteFileVersionRequest) (*emptypb.Empty, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteFileVersion not implemented")
}

func (UnimplementedFileUpdatesServer) mustEmbedUnimplementedFileUpdatesServer() {}

// RegisterFileUpdatesServer registers srv on s.
func RegisterFileUpdatesServer(s grpc.ServiceRegistrar, srv FileUpdatesServer) {
	s.RegisterService(&FileUpdates_ServiceDesc, srv)
}

func _FileUpdates_Upload_Handler(srv interface{}, stream grpc.ServerStream) error {
	return srv.(FileUpdatesServer).Upload(&fileUpdatesUploadServer{stream})
}

// FileUpdates_UploadServer is the server view of an Upload stream.
type FileUpdates_UploadServer interface {
	SendAndClose(*UploadResponse) error
	Recv() (*UploadRequest, error)
	grpc.ServerStream
}

type fileUpdatesUploadServer struct {
	grpc.ServerStream
}

func (x *fileUpdatesUploadServer) SendAndClose(m *UploadResponse) error {
	return x.ServerStream.SendMsg(m)
}

func (x *fileUpdatesUploadServer) Recv() (*UploadRequest, error) {
	m := new(UploadRequest)
	if err := x.ServerStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func _FileUpdates_TagVersion_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(TagVersionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FileUpdatesServer).TagVersion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FileUpdates_TagVersion_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FileUpdatesServer).TagVersion(ctx, req.(*TagVersionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FileUpdates_DeleteFileVersion_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteFileVersionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FileUpdatesServer).DeleteFileVersion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FileUpdates_DeleteFileVersion_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FileUpdatesServer).DeleteFileVersion(ctx, req.(*DeleteFileVersionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FileUpdates_ServiceDesc is the grpc.ServiceDesc for the FileUpdates
// service.
var FileUpdates_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "qcdn.FileUpdates",
	HandlerType: (*FileUpdatesServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "TagVersion",
			Handler:    _FileUpdates_TagVersion_Handler,
		},
		{
			MethodName: "DeleteFileVersion",
			Handler:    _FileUpdates_DeleteFileVersion_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Upload",
			Handler:       _FileUpdates_Upload_Handler,
			ClientStreams: true,
		},
	},
	Metadata: "qcdn.proto",
}

// NodesClient is the client API for the Nodes service.
type NodesClient interface {
	ConnectNode(ctx context.Context, in *ConnectionRequest, opts ...grpc.CallOption) (Nodes_ConnectNodeClient, error)
}

type nodesClient struct {
	cc grpc.ClientConnInterface
}

// NewNodesClient returns a NodesClient backed by cc.
func NewNodesClient(cc grpc.ClientConnInterface) NodesClient {
	return &nodesClient{cc}
}

func (c *nodesClient) ConnectNode(ctx context.Context, in *ConnectionRequest, opts ...grpc.CallOption) (Nodes_ConnectNodeClient, error) {
	stream, err := c.cc.NewStream(ctx, &Nodes_ServiceDesc.Streams[0], Nodes_ConnectNode_FullMethodName, opts...)
	if err != nil {
		return nil, err
	}
	x := &nodesConnectNodeClient{stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// Nodes_ConnectNodeClient is the client view of a ConnectNode stream.
type Nodes_ConnectNodeClient interface {
	Recv() (*SyncMessage, error)
	grpc.ClientStream
}

type nodesConnectNodeClient struct {
	grpc.ClientStream
}

func (x *nodesConnectNodeClient) Recv() (*SyncMessage, error) {
	m := new(SyncMessage)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

// NodesServer is the server API for the Nodes service. All implementations
// must embed UnimplementedNodesServer.
type NodesServer interface {
	ConnectNode(*ConnectionRequest, Nodes_ConnectNodeServer) error
	mustEmbedUnimplementedNodesServer()
}

// UnimplementedNodesServer must be embedded for forward compatibility.
type UnimplementedNodesServer struct{}

func (UnimplementedNodesServer) ConnectNode(*ConnectionRequest, Nodes_ConnectNodeServer) error {
	return status.Errorf(codes.Unimplemented, "method ConnectNode not implemented")
}

func (UnimplementedNodesServer) mustEmbedUnimplementedNodesServer() {}

// RegisterNodesServer registers srv on s.
func RegisterNodesServer(s grpc.ServiceRegistrar, srv NodesServer) {
	s.RegisterService(&Nodes_ServiceDesc, srv)
}

func _Nodes_ConnectNode_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(ConnectionRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(NodesServer).ConnectNode(m, &nodesConnectNodeServer{stream})
}

// Nodes_ConnectNodeServer is the server view of a ConnectNode stream.
type Nodes_ConnectNodeServer interface {
	Send(*SyncMessage) error
	grpc.ServerStream
}

type nodesConnectNodeServer struct {
	grpc.ServerStream
}

func (x *nodesConnectNodeServer) Send(m *SyncMessage) error {
	return x.ServerStream.SendMsg(m)
}

// Nodes_ServiceDesc is the grpc.ServiceDesc for the Nodes service.
var Nodes_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "qcdn.Nodes",
	HandlerType: (*NodesServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "ConnectNode",
			Handler:       _Nodes_ConnectNode_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "qcdn.proto",
}
