// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: cellar/v1/cellar.proto

package cellarv1

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
	CellarService_CreateWine_FullMethodName       = "/cellar.v1.CellarService/CreateWine"
	CellarService_GetWine_FullMethodName          = "/cellar.v1.CellarService/GetWine"
	CellarService_UpdateWine_FullMethodName       = "/cellar.v1.CellarService/UpdateWine"
	CellarService_DeleteWine_FullMethodName       = "/cellar.v1.CellarService/DeleteWine"
	CellarService_ListWines_FullMethodName        = "/cellar.v1.CellarService/ListWines"
	CellarService_SearchWines_FullMethodName      = "/cellar.v1.CellarService/SearchWines"
	CellarService_ConsumeBottle_FullMethodName    = "/cellar.v1.CellarService/ConsumeBottle"
	CellarService_AddBottles_FullMethodName       = "/cellar.v1.CellarService/AddBottles"
	CellarService_ListReadyToDrink_FullMethodName = "/cellar.v1.CellarService/ListReadyToDrink"
	CellarService_GetStatistics_FullMethodName    = "/cellar.v1.CellarService/GetStatistics"
	CellarService_EstimateWindow_FullMethodName   = "/cellar.v1.CellarService/EstimateWindow"
	CellarService_AddTastingNote_FullMethodName   = "/cellar.v1.CellarService/AddTastingNote"
	CellarService_ListTastingNotes_FullMethodName = "/cellar.v1.CellarService/ListTastingNotes"
	CellarService_CreateLocation_FullMethodName   = "/cellar.v1.CellarService/CreateLocation"
	CellarService_ListLocations_FullMethodName    = "/cellar.v1.CellarService/ListLocations"
	CellarService_ExportCellar_FullMethodName     = "/cellar.v1.CellarService/ExportCellar"
	CellarService_ImportCellar_FullMethodName     = "/cellar.v1.CellarService/ImportCellar"
)

// CellarServiceClient is the client API for CellarService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type CellarServiceClient interface {
	CreateWine(ctx context.Context, in *CreateWineRequest, opts ...grpc.CallOption) (*CreateWineResponse, error)
	GetWine(ctx context.Context, in *GetWineRequest, opts ...grpc.CallOption) (*GetWineResponse, error)
	UpdateWine(ctx context.Context, in *UpdateWineRequest, opts ...grpc.CallOption) (*UpdateWineResponse, error)
	DeleteWine(ctx context.Context, in *DeleteWineRequest, opts ...grpc.CallOption) (*DeleteWineResponse, error)
	ListWines(ctx context.Context, in *ListWinesRequest, opts ...grpc.CallOption) (*ListWinesResponse, error)
	SearchWines(ctx context.Context, in *SearchWinesRequest, opts ...grpc.CallOption) (*SearchWinesResponse, error)
	ConsumeBottle(ctx context.Context, in *ConsumeBottleRequest, opts ...grpc.CallOption) (*ConsumeBottleResponse, error)
	AddBottles(ctx context.Context, in *AddBottlesRequest, opts ...grpc.CallOption) (*AddBottlesResponse, error)
	ListReadyToDrink(ctx context.Context, in *ListReadyToDrinkRequest, opts ...grpc.CallOption) (*ListReadyToDrinkResponse, error)
	GetStatistics(ctx context.Context, in *GetStatisticsRequest, opts ...grpc.CallOption) (*GetStatisticsResponse, error)
	EstimateWindow(ctx context.Context, in *EstimateWindowRequest, opts ...grpc.CallOption) (*EstimateWindowResponse, error)
	AddTastingNote(ctx context.Context, in *AddTastingNoteRequest, opts ...grpc.CallOption) (*AddTastingNoteResponse, error)
	ListTastingNotes(ctx context.Context, in *ListTastingNotesRequest, opts ...grpc.CallOption) (*ListTastingNotesResponse, error)
	CreateLocation(ctx context.Context, in *CreateLocationRequest, opts ...grpc.CallOption) (*CreateLocationResponse, error)
	ListLocations(ctx context.Context, in *ListLocationsRequest, opts ...grpc.CallOption) (*ListLocationsResponse, error)
	ExportCellar(ctx context.Context, in *ExportCellarRequest, opts ...grpc.CallOption) (*ExportCellarResponse, error)
	ImportCellar(ctx context.Context, in *ImportCellarRequest, opts ...grpc.CallOption) (*ImportCellarResponse, error)
}

type cellarServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCellarServiceClient(cc grpc.ClientConnInterface) CellarServiceClient {
	return &cellarServiceClient{cc}
}

func (c *cellarServiceClient) CreateWine(ctx context.Context, in *CreateWineRequest, opts ...grpc.CallOption) (*CreateWineResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateWineResponse)
	err := c.cc.Invoke(ctx, CellarService_CreateWine_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cellarServiceClient) GetWine(ctx context.Context, in *GetWineRequest, opts ...grpc.CallOption) (*GetWineResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetWineResponse)
	err := c.cc.Invoke(ctx, CellarService_GetWine_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cellarServiceClient) UpdateWine(ctx context.Context, in *UpdateWineRequest, opts ...grpc.CallOption) (*UpdateWineResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateWineResponse)
	err := c.cc.Invoke(ctx, CellarService_UpdateWine_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cellarServiceClient) DeleteWine(ctx context.Context, in *DeleteWineRequest, opts ...grpc.CallOption) (*DeleteWineResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(DeleteWineResponse)
	err := c.cc.Invoke(ctx, CellarService_DeleteWine_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cellarServiceClient) ListWines(ctx context.Context, in *ListWinesRequest, opts ...grpc.CallOption) (*ListWinesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListWinesResponse)
	err := c.cc.Invoke(ctx, CellarService_ListWines_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cellarServiceClient) SearchWines(ctx context.Context, in *SearchWinesRequest, opts ...grpc.CallOption) (*SearchWinesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SearchWinesResponse)
	err := c.cc.Invoke(ctx, CellarService_SearchWines_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cellarServiceClient) ConsumeBottle(ctx context.Context, in *ConsumeBottleRequest, opts ...grpc.CallOption) (*ConsumeBottleResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConsumeBottleResponse)
	err := c.cc.Invoke(ctx, CellarService_ConsumeBottle_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cellarServiceClient) AddBottles(ctx context.Context, in *AddBottlesRequest, opts ...grpc.CallOption) (*AddBottlesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddBottlesResponse)
	err := c.cc.Invoke(ctx, CellarService_AddBottles_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cellarServiceClient) ListReadyToDrink(ctx context.Context, in *ListReadyToDrinkRequest, opts ...grpc.CallOption) (*ListReadyToDrinkResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListReadyToDrinkResponse)
	err := c.cc.Invoke(ctx, CellarService_ListReadyToDrink_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cellarServiceClient) GetStatistics(ctx context.Context, in *GetStatisticsRequest, opts ...grpc.CallOption) (*GetStatisticsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetStatisticsResponse)
	err := c.cc.Invoke(ctx, CellarService_GetStatistics_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cellarServiceClient) EstimateWindow(ctx context.Context, in *EstimateWindowRequest, opts ...grpc.CallOption) (*EstimateWindowResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(EstimateWindowResponse)
	err := c.cc.Invoke(ctx, CellarService_EstimateWindow_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cellarServiceClient) AddTastingNote(ctx context.Context, in *AddTastingNoteRequest, opts ...grpc.CallOption) (*AddTastingNoteResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddTastingNoteResponse)
	err := c.cc.Invoke(ctx, CellarService_AddTastingNote_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cellarServiceClient) ListTastingNotes(ctx context.Context, in *ListTastingNotesRequest, opts ...grpc.CallOption) (*ListTastingNotesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListTastingNotesResponse)
	err := c.cc.Invoke(ctx, CellarService_ListTastingNotes_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cellarServiceClient) CreateLocation(ctx context.Context, in *CreateLocationRequest, opts ...grpc.CallOption) (*CreateLocationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateLocationResponse)
	err := c.cc.Invoke(ctx, CellarService_CreateLocation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cellarServiceClient) ListLocations(ctx context.Context, in *ListLocationsRequest, opts ...grpc.CallOption) (*ListLocationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListLocationsResponse)
	err := c.cc.Invoke(ctx, CellarService_ListLocations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cellarServiceClient) ExportCellar(ctx context.Context, in *ExportCellarRequest, opts ...grpc.CallOption) (*ExportCellarResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportCellarResponse)
	err := c.cc.Invoke(ctx, CellarService_ExportCellar_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *cellarServiceClient) ImportCellar(ctx context.Context, in *ImportCellarRequest, opts ...grpc.CallOption) (*ImportCellarResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ImportCellarResponse)
	err := c.cc.Invoke(ctx, CellarService_ImportCellar_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CellarServiceServer is the server API for CellarService service.
// All implementations must embed UnimplementedCellarServiceServer
// for forward compatibility.
type CellarServiceServer interface {
	CreateWine(context.Context, *CreateWineRequest) (*CreateWineResponse, error)
	GetWine(context.Context, *GetWineRequest) (*GetWineResponse, error)
	UpdateWine(context.Context, *UpdateWineRequest) (*UpdateWineResponse, error)
	DeleteWine(context.Context, *DeleteWineRequest) (*DeleteWineResponse, error)
	ListWines(context.Context, *ListWinesRequest) (*ListWinesResponse, error)
	SearchWines(context.Context, *SearchWinesRequest) (*SearchWinesResponse, error)
	ConsumeBottle(context.Context, *ConsumeBottleRequest) (*ConsumeBottleResponse, error)
	AddBottles(context.Context, *AddBottlesRequest) (*AddBottlesResponse, error)
	ListReadyToDrink(context.Context, *ListReadyToDrinkRequest) (*ListReadyToDrinkResponse, error)
	GetStatistics(context.Context, *GetStatisticsRequest) (*GetStatisticsResponse, error)
	EstimateWindow(context.Context, *EstimateWindowRequest) (*EstimateWindowResponse, error)
	AddTastingNote(context.Context, *AddTastingNoteRequest) (*AddTastingNoteResponse, error)
	ListTastingNotes(context.Context, *ListTastingNotesRequest) (*ListTastingNotesResponse, error)
	CreateLocation(context.Context, *CreateLocationRequest) (*CreateLocationResponse, error)
	ListLocations(context.Context, *ListLocationsRequest) (*ListLocationsResponse, error)
	ExportCellar(context.Context, *ExportCellarRequest) (*ExportCellarResponse, error)
	ImportCellar(context.Context, *ImportCellarRequest) (*ImportCellarResponse, error)
	mustEmbedUnimplementedCellarServiceServer()
}

// UnimplementedCellarServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedCellarServiceServer struct{}

func (UnimplementedCellarServiceServer) CreateWine(context.Context, *CreateWineRequest) (*CreateWineResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateWine not implemented")
}
func (UnimplementedCellarServiceServer) GetWine(context.Context, *GetWineRequest) (*GetWineResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetWine not implemented")
}
func (UnimplementedCellarServiceServer) UpdateWine(context.Context, *UpdateWineRequest) (*UpdateWineResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateWine not implemented")
}
func (UnimplementedCellarServiceServer) DeleteWine(context.Context, *DeleteWineRequest) (*DeleteWineResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteWine not implemented")
}
func (UnimplementedCellarServiceServer) ListWines(context.Context, *ListWinesRequest) (*ListWinesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListWines not implemented")
}
func (UnimplementedCellarServiceServer) SearchWines(context.Context, *SearchWinesRequest) (*SearchWinesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SearchWines not implemented")
}
func (UnimplementedCellarServiceServer) ConsumeBottle(context.Context, *ConsumeBottleRequest) (*ConsumeBottleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConsumeBottle not implemented")
}
func (UnimplementedCellarServiceServer) AddBottles(context.Context, *AddBottlesRequest) (*AddBottlesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddBottles not implemented")
}
func (UnimplementedCellarServiceServer) ListReadyToDrink(context.Context, *ListReadyToDrinkRequest) (*ListReadyToDrinkResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListReadyToDrink not implemented")
}
func (UnimplementedCellarServiceServer) GetStatistics(context.Context, *GetStatisticsRequest) (*GetStatisticsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetStatistics not implemented")
}
func (UnimplementedCellarServiceServer) EstimateWindow(context.Context, *EstimateWindowRequest) (*EstimateWindowResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EstimateWindow not implemented")
}
func (UnimplementedCellarServiceServer) AddTastingNote(context.Context, *AddTastingNoteRequest) (*AddTastingNoteResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddTastingNote not implemented")
}
func (UnimplementedCellarServiceServer) ListTastingNotes(context.Context, *ListTastingNotesRequest) (*ListTastingNotesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListTastingNotes not implemented")
}
func (UnimplementedCellarServiceServer) CreateLocation(context.Context, *CreateLocationRequest) (*CreateLocationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateLocation not implemented")
}
func (UnimplementedCellarServiceServer) ListLocations(context.Context, *ListLocationsRequest) (*ListLocationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLocations not implemented")
}
func (UnimplementedCellarServiceServer) ExportCellar(context.Context, *ExportCellarRequest) (*ExportCellarResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportCellar not implemented")
}
func (UnimplementedCellarServiceServer) ImportCellar(context.Context, *ImportCellarRequest) (*ImportCellarResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ImportCellar not implemented")
}
func (UnimplementedCellarServiceServer) mustEmbedUnimplementedCellarServiceServer() {}
func (UnimplementedCellarServiceServer) testEmbeddedByValue()                       {}

// UnsafeCellarServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CellarServiceServer will
// result in compilation errors.
type UnsafeCellarServiceServer interface {
	mustEmbedUnimplementedCellarServiceServer()
}

func RegisterCellarServiceServer(s grpc.ServiceRegistrar, srv CellarServiceServer) {
	// If the following call pancis, it indicates UnimplementedCellarServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&CellarService_ServiceDesc, srv)
}

func _CellarService_CreateWine_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateWineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CellarServiceServer).CreateWine(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CellarService_CreateWine_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CellarServiceServer).CreateWine(ctx, req.(*CreateWineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CellarService_GetWine_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetWineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CellarServiceServer).GetWine(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CellarService_GetWine_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CellarServiceServer).GetWine(ctx, req.(*GetWineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CellarService_UpdateWine_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateWineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CellarServiceServer).UpdateWine(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CellarService_UpdateWine_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CellarServiceServer).UpdateWine(ctx, req.(*UpdateWineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CellarService_DeleteWine_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteWineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CellarServiceServer).DeleteWine(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CellarService_DeleteWine_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CellarServiceServer).DeleteWine(ctx, req.(*DeleteWineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CellarService_ListWines_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListWinesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CellarServiceServer).ListWines(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CellarService_ListWines_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CellarServiceServer).ListWines(ctx, req.(*ListWinesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CellarService_SearchWines_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchWinesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CellarServiceServer).SearchWines(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CellarService_SearchWines_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CellarServiceServer).SearchWines(ctx, req.(*SearchWinesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CellarService_ConsumeBottle_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConsumeBottleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CellarServiceServer).ConsumeBottle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CellarService_ConsumeBottle_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CellarServiceServer).ConsumeBottle(ctx, req.(*ConsumeBottleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CellarService_AddBottles_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddBottlesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CellarServiceServer).AddBottles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CellarService_AddBottles_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CellarServiceServer).AddBottles(ctx, req.(*AddBottlesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CellarService_ListReadyToDrink_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListReadyToDrinkRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CellarServiceServer).ListReadyToDrink(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CellarService_ListReadyToDrink_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CellarServiceServer).ListReadyToDrink(ctx, req.(*ListReadyToDrinkRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CellarService_GetStatistics_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStatisticsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CellarServiceServer).GetStatistics(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CellarService_GetStatistics_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CellarServiceServer).GetStatistics(ctx, req.(*GetStatisticsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CellarService_EstimateWindow_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(EstimateWindowRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CellarServiceServer).EstimateWindow(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CellarService_EstimateWindow_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CellarServiceServer).EstimateWindow(ctx, req.(*EstimateWindowRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CellarService_AddTastingNote_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddTastingNoteRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CellarServiceServer).AddTastingNote(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CellarService_AddTastingNote_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CellarServiceServer).AddTastingNote(ctx, req.(*AddTastingNoteRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CellarService_ListTastingNotes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTastingNotesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CellarServiceServer).ListTastingNotes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CellarService_ListTastingNotes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CellarServiceServer).ListTastingNotes(ctx, req.(*ListTastingNotesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CellarService_CreateLocation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateLocationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CellarServiceServer).CreateLocation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CellarService_CreateLocation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CellarServiceServer).CreateLocation(ctx, req.(*CreateLocationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CellarService_ListLocations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLocationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CellarServiceServer).ListLocations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CellarService_ListLocations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CellarServiceServer).ListLocations(ctx, req.(*ListLocationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CellarService_ExportCellar_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportCellarRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CellarServiceServer).ExportCellar(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CellarService_ExportCellar_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CellarServiceServer).ExportCellar(ctx, req.(*ExportCellarRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CellarService_ImportCellar_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ImportCellarRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CellarServiceServer).ImportCellar(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CellarService_ImportCellar_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CellarServiceServer).ImportCellar(ctx, req.(*ImportCellarRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CellarService_ServiceDesc is the grpc.ServiceDesc for CellarService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CellarService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "cellar.v1.CellarService",
	HandlerType: (*CellarServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateWine",
			Handler:    _CellarService_CreateWine_Handler,
		},
		{
			MethodName: "GetWine",
			Handler:    _CellarService_GetWine_Handler,
		},
		{
			MethodName: "UpdateWine",
			Handler:    _CellarService_UpdateWine_Handler,
		},
		{
			MethodName: "DeleteWine",
			Handler:    _CellarService_DeleteWine_Handler,
		},
		{
			MethodName: "ListWines",
			Handler:    _CellarService_ListWines_Handler,
		},
		{
			MethodName: "SearchWines",
			Handler:    _CellarService_SearchWines_Handler,
		},
		{
			MethodName: "ConsumeBottle",
			Handler:    _CellarService_ConsumeBottle_Handler,
		},
		{
			MethodName: "AddBottles",
			Handler:    _CellarService_AddBottles_Handler,
		},
		{
			MethodName: "ListReadyToDrink",
			Handler:    _CellarService_ListReadyToDrink_Handler,
		},
		{
			MethodName: "GetStatistics",
			Handler:    _CellarService_GetStatistics_Handler,
		},
		{
			MethodName: "EstimateWindow",
			Handler:    _CellarService_EstimateWindow_Handler,
		},
		{
			MethodName: "AddTastingNote",
			Handler:    _CellarService_AddTastingNote_Handler,
		},
		{
			MethodName: "ListTastingNotes",
			Handler:    _CellarService_ListTastingNotes_Handler,
		},
		{
			MethodName: "CreateLocation",
			Handler:    _CellarService_CreateLocation_Handler,
		},
		{
			MethodName: "ListLocations",
			Handler:    _CellarService_ListLocations_Handler,
		},
		{
			MethodName: "ExportCellar",
			Handler:    _CellarService_ExportCellar_Handler,
		},
		{
			MethodName: "ImportCellar",
			Handler:    _CellarService_ImportCellar_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cellar/v1/cellar.proto",
}

const (
	ScanService_ScanLabel_FullMethodName     = "/cellar.v1.ScanService/ScanLabel"
	ScanService_ScanDirectory_FullMethodName = "/cellar.v1.ScanService/ScanDirectory"
	ScanService_GetScanJob_FullMethodName    = "/cellar.v1.ScanService/GetScanJob"
	ScanService_ListScanJobs_FullMethodName  = "/cellar.v1.ScanService/ListScanJobs"
	ScanService_ConfirmScan_FullMethodName   = "/cellar.v1.ScanService/ConfirmScan"
	ScanService_SearchCatalog_FullMethodName = "/cellar.v1.ScanService/SearchCatalog"
)

// ScanServiceClient is the client API for ScanService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ScanServiceClient interface {
	ScanLabel(ctx context.Context, in *ScanLabelRequest, opts ...grpc.CallOption) (*ScanLabelResponse, error)
	ScanDirectory(ctx context.Context, in *ScanDirectoryRequest, opts ...grpc.CallOption) (*ScanDirectoryResponse, error)
	GetScanJob(ctx context.Context, in *GetScanJobRequest, opts ...grpc.CallOption) (*GetScanJobResponse, error)
	ListScanJobs(ctx context.Context, in *ListScanJobsRequest, opts ...grpc.CallOption) (*ListScanJobsResponse, error)
	ConfirmScan(ctx context.Context, in *ConfirmScanRequest, opts ...grpc.CallOption) (*ConfirmScanResponse, error)
	SearchCatalog(ctx context.Context, in *SearchCatalogRequest, opts ...grpc.CallOption) (*SearchCatalogResponse, error)
}

type scanServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewScanServiceClient(cc grpc.ClientConnInterface) ScanServiceClient {
	return &scanServiceClient{cc}
}

func (c *scanServiceClient) ScanLabel(ctx context.Context, in *ScanLabelRequest, opts ...grpc.CallOption) (*ScanLabelResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScanLabelResponse)
	err := c.cc.Invoke(ctx, ScanService_ScanLabel_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scanServiceClient) ScanDirectory(ctx context.Context, in *ScanDirectoryRequest, opts ...grpc.CallOption) (*ScanDirectoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScanDirectoryResponse)
	err := c.cc.Invoke(ctx, ScanService_ScanDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scanServiceClient) GetScanJob(ctx context.Context, in *GetScanJobRequest, opts ...grpc.CallOption) (*GetScanJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetScanJobResponse)
	err := c.cc.Invoke(ctx, ScanService_GetScanJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scanServiceClient) ListScanJobs(ctx context.Context, in *ListScanJobsRequest, opts ...grpc.CallOption) (*ListScanJobsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListScanJobsResponse)
	err := c.cc.Invoke(ctx, ScanService_ListScanJobs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scanServiceClient) ConfirmScan(ctx context.Context, in *ConfirmScanRequest, opts ...grpc.CallOption) (*ConfirmScanResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ConfirmScanResponse)
	err := c.cc.Invoke(ctx, ScanService_ConfirmScan_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scanServiceClient) SearchCatalog(ctx context.Context, in *SearchCatalogRequest, opts ...grpc.CallOption) (*SearchCatalogResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SearchCatalogResponse)
	err := c.cc.Invoke(ctx, ScanService_SearchCatalog_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ScanServiceServer is the server API for ScanService service.
// All implementations must embed UnimplementedScanServiceServer
// for forward compatibility.
type ScanServiceServer interface {
	ScanLabel(context.Context, *ScanLabelRequest) (*ScanLabelResponse, error)
	ScanDirectory(context.Context, *ScanDirectoryRequest) (*ScanDirectoryResponse, error)
	GetScanJob(context.Context, *GetScanJobRequest) (*GetScanJobResponse, error)
	ListScanJobs(context.Context, *ListScanJobsRequest) (*ListScanJobsResponse, error)
	ConfirmScan(context.Context, *ConfirmScanRequest) (*ConfirmScanResponse, error)
	SearchCatalog(context.Context, *SearchCatalogRequest) (*SearchCatalogResponse, error)
	mustEmbedUnimplementedScanServiceServer()
}

// UnimplementedScanServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedScanServiceServer struct{}

func (UnimplementedScanServiceServer) ScanLabel(context.Context, *ScanLabelRequest) (*ScanLabelResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScanLabel not implemented")
}
func (UnimplementedScanServiceServer) ScanDirectory(context.Context, *ScanDirectoryRequest) (*ScanDirectoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScanDirectory not implemented")
}
func (UnimplementedScanServiceServer) GetScanJob(context.Context, *GetScanJobRequest) (*GetScanJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetScanJob not implemented")
}
func (UnimplementedScanServiceServer) ListScanJobs(context.Context, *ListScanJobsRequest) (*ListScanJobsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListScanJobs not implemented")
}
func (UnimplementedScanServiceServer) ConfirmScan(context.Context, *ConfirmScanRequest) (*ConfirmScanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConfirmScan not implemented")
}
func (UnimplementedScanServiceServer) SearchCatalog(context.Context, *SearchCatalogRequest) (*SearchCatalogResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SearchCatalog not implemented")
}
func (UnimplementedScanServiceServer) mustEmbedUnimplementedScanServiceServer() {}
func (UnimplementedScanServiceServer) testEmbeddedByValue()                     {}

// UnsafeScanServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ScanServiceServer will
// result in compilation errors.
type UnsafeScanServiceServer interface {
	mustEmbedUnimplementedScanServiceServer()
}

func RegisterScanServiceServer(s grpc.ServiceRegistrar, srv ScanServiceServer) {
	// If the following call pancis, it indicates UnimplementedScanServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ScanService_ServiceDesc, srv)
}

func _ScanService_ScanLabel_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScanLabelRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScanServiceServer).ScanLabel(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScanService_ScanLabel_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScanServiceServer).ScanLabel(ctx, req.(*ScanLabelRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScanService_ScanDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScanDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScanServiceServer).ScanDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScanService_ScanDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScanServiceServer).ScanDirectory(ctx, req.(*ScanDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScanService_GetScanJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetScanJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScanServiceServer).GetScanJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScanService_GetScanJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScanServiceServer).GetScanJob(ctx, req.(*GetScanJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScanService_ListScanJobs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListScanJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScanServiceServer).ListScanJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScanService_ListScanJobs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScanServiceServer).ListScanJobs(ctx, req.(*ListScanJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScanService_ConfirmScan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ConfirmScanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScanServiceServer).ConfirmScan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScanService_ConfirmScan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScanServiceServer).ConfirmScan(ctx, req.(*ConfirmScanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScanService_SearchCatalog_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SearchCatalogRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScanServiceServer).SearchCatalog(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScanService_SearchCatalog_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScanServiceServer).SearchCatalog(ctx, req.(*SearchCatalogRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ScanService_ServiceDesc is the grpc.ServiceDesc for ScanService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ScanService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "cellar.v1.ScanService",
	HandlerType: (*ScanServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ScanLabel",
			Handler:    _ScanService_ScanLabel_Handler,
		},
		{
			MethodName: "ScanDirectory",
			Handler:    _ScanService_ScanDirectory_Handler,
		},
		{
			MethodName: "GetScanJob",
			Handler:    _ScanService_GetScanJob_Handler,
		},
		{
			MethodName: "ListScanJobs",
			Handler:    _ScanService_ListScanJobs_Handler,
		},
		{
			MethodName: "ConfirmScan",
			Handler:    _ScanService_ConfirmScan_Handler,
		},
		{
			MethodName: "SearchCatalog",
			Handler:    _ScanService_SearchCatalog_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cellar/v1/cellar.proto",
}
