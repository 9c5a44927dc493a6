// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: aura/v1/aura.proto

package aurav1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	ExtractionService_ExtractDocument_FullMethodName   = "/aura.v1.ExtractionService/ExtractDocument"
	ExtractionService_ExtractDualSource_FullMethodName = "/aura.v1.ExtractionService/ExtractDualSource"
	ExtractionService_ListFields_FullMethodName        = "/aura.v1.ExtractionService/ListFields"
	ExtractionService_CorrectField_FullMethodName      = "/aura.v1.ExtractionService/CorrectField"
)

// ExtractionServiceClient is the client API for ExtractionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExtractionServiceClient interface {
	// ExtractDocument runs recognition and field parsing for one document.
	ExtractDocument(ctx context.Context, in *ExtractDocumentRequest, opts ...grpc.CallOption) (*ExtractDocumentResponse, error)
	// ExtractDualSource fills both target schemas from a single scan.
	ExtractDualSource(ctx context.Context, in *ExtractDualSourceRequest, opts ...grpc.CallOption) (*ExtractDualSourceResponse, error)
	ListFields(ctx context.Context, in *ListFieldsRequest, opts ...grpc.CallOption) (*ListFieldsResponse, error)
	CorrectField(ctx context.Context, in *CorrectFieldRequest, opts ...grpc.CallOption) (*CorrectFieldResponse, error)
}

type extractionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExtractionServiceClient(cc grpc.ClientConnInterface) ExtractionServiceClient {
	return &extractionServiceClient{cc}
}

func (c *extractionServiceClient) ExtractDocument(ctx context.Context, in *ExtractDocumentRequest, opts ...grpc.CallOption) (*ExtractDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractDocumentResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ExtractDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ExtractDualSource(ctx context.Context, in *ExtractDualSourceRequest, opts ...grpc.CallOption) (*ExtractDualSourceResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractDualSourceResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ExtractDualSource_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) ListFields(ctx context.Context, in *ListFieldsRequest, opts ...grpc.CallOption) (*ListFieldsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListFieldsResponse)
	err := c.cc.Invoke(ctx, ExtractionService_ListFields_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *extractionServiceClient) CorrectField(ctx context.Context, in *CorrectFieldRequest, opts ...grpc.CallOption) (*CorrectFieldResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CorrectFieldResponse)
	err := c.cc.Invoke(ctx, ExtractionService_CorrectField_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExtractionServiceServer is the server API for ExtractionService service.
// All implementations must embed UnimplementedExtractionServiceServer
// for forward compatibility.
type ExtractionServiceServer interface {
	// ExtractDocument runs recognition and field parsing for one document.
	ExtractDocument(context.Context, *ExtractDocumentRequest) (*ExtractDocumentResponse, error)
	// ExtractDualSource fills both target schemas from a single scan.
	ExtractDualSource(context.Context, *ExtractDualSourceRequest) (*ExtractDualSourceResponse, error)
	ListFields(context.Context, *ListFieldsRequest) (*ListFieldsResponse, error)
	CorrectField(context.Context, *CorrectFieldRequest) (*CorrectFieldResponse, error)
	mustEmbedUnimplementedExtractionServiceServer()
}

// UnimplementedExtractionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExtractionServiceServer struct{}

func (UnimplementedExtractionServiceServer) ExtractDocument(context.Context, *ExtractDocumentRequest) (*ExtractDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractDocument not implemented")
}
func (UnimplementedExtractionServiceServer) ExtractDualSource(context.Context, *ExtractDualSourceRequest) (*ExtractDualSourceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractDualSource not implemented")
}
func (UnimplementedExtractionServiceServer) ListFields(context.Context, *ListFieldsRequest) (*ListFieldsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListFields not implemented")
}
func (UnimplementedExtractionServiceServer) CorrectField(context.Context, *CorrectFieldRequest) (*CorrectFieldResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CorrectField not implemented")
}
func (UnimplementedExtractionServiceServer) mustEmbedUnimplementedExtractionServiceServer() {}
func (UnimplementedExtractionServiceServer) testEmbeddedByValue()                           {}

// UnsafeExtractionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExtractionServiceServer will
// result in compilation errors.
type UnsafeExtractionServiceServer interface {
	mustEmbedUnimplementedExtractionServiceServer()
}

func RegisterExtractionServiceServer(s grpc.ServiceRegistrar, srv ExtractionServiceServer) {
	// If the following call pancis, it indicates UnimplementedExtractionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExtractionService_ServiceDesc, srv)
}

func _ExtractionService_ExtractDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ExtractDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ExtractDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ExtractDocument(ctx, req.(*ExtractDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ExtractDualSource_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractDualSourceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ExtractDualSource(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ExtractDualSource_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ExtractDualSource(ctx, req.(*ExtractDualSourceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_ListFields_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListFieldsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).ListFields(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_ListFields_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).ListFields(ctx, req.(*ListFieldsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExtractionService_CorrectField_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CorrectFieldRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExtractionServiceServer).CorrectField(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExtractionService_CorrectField_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExtractionServiceServer).CorrectField(ctx, req.(*CorrectFieldRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExtractionService_ServiceDesc is the grpc.ServiceDesc for ExtractionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExtractionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "aura.v1.ExtractionService",
	HandlerType: (*ExtractionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExtractDocument",
			Handler:    _ExtractionService_ExtractDocument_Handler,
		},
		{
			MethodName: "ExtractDualSource",
			Handler:    _ExtractionService_ExtractDualSource_Handler,
		},
		{
			MethodName: "ListFields",
			Handler:    _ExtractionService_ListFields_Handler,
		},
		{
			MethodName: "CorrectField",
			Handler:    _ExtractionService_CorrectField_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "aura/v1/aura.proto",
}

const (
	TriageService_RunTriage_FullMethodName      = "/aura.v1.TriageService/RunTriage"
	TriageService_ListPackages_FullMethodName   = "/aura.v1.TriageService/ListPackages"
	TriageService_GetPackage_FullMethodName     = "/aura.v1.TriageService/GetPackage"
	TriageService_ResolvePackage_FullMethodName = "/aura.v1.TriageService/ResolvePackage"
)

// TriageServiceClient is the client API for TriageService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type TriageServiceClient interface {
	// RunTriage processes one incoming package, or all when package_id is empty.
	RunTriage(ctx context.Context, in *RunTriageRequest, opts ...grpc.CallOption) (*RunTriageResponse, error)
	ListPackages(ctx context.Context, in *ListPackagesRequest, opts ...grpc.CallOption) (*ListPackagesResponse, error)
	GetPackage(ctx context.Context, in *GetPackageRequest, opts ...grpc.CallOption) (*GetPackageResponse, error)
	// ResolvePackage moves a flagged package to resolved. CPC role only.
	ResolvePackage(ctx context.Context, in *ResolvePackageRequest, opts ...grpc.CallOption) (*ResolvePackageResponse, error)
}

type triageServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewTriageServiceClient(cc grpc.ClientConnInterface) TriageServiceClient {
	return &triageServiceClient{cc}
}

func (c *triageServiceClient) RunTriage(ctx context.Context, in *RunTriageRequest, opts ...grpc.CallOption) (*RunTriageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RunTriageResponse)
	err := c.cc.Invoke(ctx, TriageService_RunTriage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *triageServiceClient) ListPackages(ctx context.Context, in *ListPackagesRequest, opts ...grpc.CallOption) (*ListPackagesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPackagesResponse)
	err := c.cc.Invoke(ctx, TriageService_ListPackages_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *triageServiceClient) GetPackage(ctx context.Context, in *GetPackageRequest, opts ...grpc.CallOption) (*GetPackageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPackageResponse)
	err := c.cc.Invoke(ctx, TriageService_GetPackage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *triageServiceClient) ResolvePackage(ctx context.Context, in *ResolvePackageRequest, opts ...grpc.CallOption) (*ResolvePackageResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ResolvePackageResponse)
	err := c.cc.Invoke(ctx, TriageService_ResolvePackage_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// TriageServiceServer is the server API for TriageService service.
// All implementations must embed UnimplementedTriageServiceServer
// for forward compatibility.
type TriageServiceServer interface {
	// RunTriage processes one incoming package, or all when package_id is empty.
	RunTriage(context.Context, *RunTriageRequest) (*RunTriageResponse, error)
	ListPackages(context.Context, *ListPackagesRequest) (*ListPackagesResponse, error)
	GetPackage(context.Context, *GetPackageRequest) (*GetPackageResponse, error)
	// ResolvePackage moves a flagged package to resolved. CPC role only.
	ResolvePackage(context.Context, *ResolvePackageRequest) (*ResolvePackageResponse, error)
	mustEmbedUnimplementedTriageServiceServer()
}

// UnimplementedTriageServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedTriageServiceServer struct{}

func (UnimplementedTriageServiceServer) RunTriage(context.Context, *RunTriageRequest) (*RunTriageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunTriage not implemented")
}
func (UnimplementedTriageServiceServer) ListPackages(context.Context, *ListPackagesRequest) (*ListPackagesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPackages not implemented")
}
func (UnimplementedTriageServiceServer) GetPackage(context.Context, *GetPackageRequest) (*GetPackageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPackage not implemented")
}
func (UnimplementedTriageServiceServer) ResolvePackage(context.Context, *ResolvePackageRequest) (*ResolvePackageResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ResolvePackage not implemented")
}
func (UnimplementedTriageServiceServer) mustEmbedUnimplementedTriageServiceServer() {}
func (UnimplementedTriageServiceServer) testEmbeddedByValue()                       {}

// UnsafeTriageServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to TriageServiceServer will
// result in compilation errors.
type UnsafeTriageServiceServer interface {
	mustEmbedUnimplementedTriageServiceServer()
}

func RegisterTriageServiceServer(s grpc.ServiceRegistrar, srv TriageServiceServer) {
	// If the following call pancis, it indicates UnimplementedTriageServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&TriageService_ServiceDesc, srv)
}

func _TriageService_RunTriage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunTriageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TriageServiceServer).RunTriage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TriageService_RunTriage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TriageServiceServer).RunTriage(ctx, req.(*RunTriageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TriageService_ListPackages_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPackagesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TriageServiceServer).ListPackages(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TriageService_ListPackages_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TriageServiceServer).ListPackages(ctx, req.(*ListPackagesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TriageService_GetPackage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPackageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TriageServiceServer).GetPackage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TriageService_GetPackage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TriageServiceServer).GetPackage(ctx, req.(*GetPackageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _TriageService_ResolvePackage_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ResolvePackageRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TriageServiceServer).ResolvePackage(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: TriageService_ResolvePackage_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(TriageServiceServer).ResolvePackage(ctx, req.(*ResolvePackageRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// TriageService_ServiceDesc is the grpc.ServiceDesc for TriageService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var TriageService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "aura.v1.TriageService",
	HandlerType: (*TriageServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RunTriage",
			Handler:    _TriageService_RunTriage_Handler,
		},
		{
			MethodName: "ListPackages",
			Handler:    _TriageService_ListPackages_Handler,
		},
		{
			MethodName: "GetPackage",
			Handler:    _TriageService_GetPackage_Handler,
		},
		{
			MethodName: "ResolvePackage",
			Handler:    _TriageService_ResolvePackage_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "aura/v1/aura.proto",
}

const (
	ExportService_ExportDocument_FullMethodName    = "/aura.v1.ExportService/ExportDocument"
	ExportService_ExportCorrections_FullMethodName = "/aura.v1.ExportService/ExportCorrections"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExportServiceClient interface {
	ExportDocument(ctx context.Context, in *ExportDocumentRequest, opts ...grpc.CallOption) (*ExportDocumentResponse, error)
	ExportCorrections(ctx context.Context, in *ExportCorrectionsRequest, opts ...grpc.CallOption) (*ExportCorrectionsResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportDocument(ctx context.Context, in *ExportDocumentRequest, opts ...grpc.CallOption) (*ExportDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportDocumentResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportServiceClient) ExportCorrections(ctx context.Context, in *ExportCorrectionsRequest, opts ...grpc.CallOption) (*ExportCorrectionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportCorrectionsResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportCorrections_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
type ExportServiceServer interface {
	ExportDocument(context.Context, *ExportDocumentRequest) (*ExportDocumentResponse, error)
	ExportCorrections(context.Context, *ExportCorrectionsRequest) (*ExportCorrectionsResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportDocument(context.Context, *ExportDocumentRequest) (*ExportDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportDocument not implemented")
}
func (UnimplementedExportServiceServer) ExportCorrections(context.Context, *ExportCorrectionsRequest) (*ExportCorrectionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportCorrections not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportDocument(ctx, req.(*ExportDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportService_ExportCorrections_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportCorrectionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportCorrections(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportCorrections_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportCorrections(ctx, req.(*ExportCorrectionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "aura.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportDocument",
			Handler:    _ExportService_ExportDocument_Handler,
		},
		{
			MethodName: "ExportCorrections",
			Handler:    _ExportService_ExportCorrections_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "aura/v1/aura.proto",
}
