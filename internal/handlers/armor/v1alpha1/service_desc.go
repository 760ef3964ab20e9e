package v1alpha1

import (
	"context"

	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "armor.api.v1alpha1.ArmorService"

const (
	methodCreateSet = "/" + ServiceName + "/CreateSet"
	methodEditSet   = "/" + ServiceName + "/EditSet"
	methodGetSet    = "/" + ServiceName + "/GetSet"
	methodListSets  = "/" + ServiceName + "/ListSets"
	methodDeleteSet = "/" + ServiceName + "/DeleteSet"
	methodGetPiece  = "/" + ServiceName + "/GetPiece"
)

// ArmorServiceServer is the server API for the armor service
type ArmorServiceServer interface {
	CreateSet(context.Context, *CreateSetRequest) (*CreateSetResponse, error)
	EditSet(context.Context, *EditSetRequest) (*EditSetResponse, error)
	GetSet(context.Context, *GetSetRequest) (*GetSetResponse, error)
	ListSets(context.Context, *ListSetsRequest) (*ListSetsResponse, error)
	DeleteSet(context.Context, *DeleteSetRequest) (*DeleteSetResponse, error)
	GetPiece(context.Context, *GetPieceRequest) (*GetPieceResponse, error)
}

// RegisterArmorServiceServer registers srv with the gRPC server
func RegisterArmorServiceServer(s grpc.ServiceRegistrar, srv ArmorServiceServer) {
	s.RegisterService(&ArmorServiceDesc, srv)
}

// unaryHandler adapts one typed method to the grpc.MethodDesc handler shape
func unaryHandler[Req any, Resp any](
	fullMethod string,
	call func(ArmorServiceServer, context.Context, *Req) (*Resp, error),
) grpc.MethodHandler {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(ArmorServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(ArmorServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// ArmorServiceDesc describes the armor service for grpc.Server
var ArmorServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ArmorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateSet",
			Handler:    unaryHandler(methodCreateSet, ArmorServiceServer.CreateSet),
		},
		{
			MethodName: "EditSet",
			Handler:    unaryHandler(methodEditSet, ArmorServiceServer.EditSet),
		},
		{
			MethodName: "GetSet",
			Handler:    unaryHandler(methodGetSet, ArmorServiceServer.GetSet),
		},
		{
			MethodName: "ListSets",
			Handler:    unaryHandler(methodListSets, ArmorServiceServer.ListSets),
		},
		{
			MethodName: "DeleteSet",
			Handler:    unaryHandler(methodDeleteSet, ArmorServiceServer.DeleteSet),
		},
		{
			MethodName: "GetPiece",
			Handler:    unaryHandler(methodGetPiece, ArmorServiceServer.GetPiece),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "armor/api/v1alpha1/armor.proto",
}
