package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// CatalogServiceName — полное имя сервиса. Запросы и ответы передаются как google.protobuf.Struct.
const CatalogServiceName = "catalog.v1.CatalogService"

type CatalogServiceServer interface {
	ListProducts(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetFilterOptions(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListBrands(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetBrand(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type structMethod func(CatalogServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

var CatalogServiceDesc = grpc.ServiceDesc{
	ServiceName: CatalogServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("ListProducts", CatalogServiceServer.ListProducts),
		unaryMethod("GetFilterOptions", CatalogServiceServer.GetFilterOptions),
		unaryMethod("GetProduct", CatalogServiceServer.GetProduct),
		unaryMethod("ListBrands", CatalogServiceServer.ListBrands),
		unaryMethod("GetBrand", CatalogServiceServer.GetBrand),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "catalog/v1/catalog.proto",
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogServiceDesc, srv)
}

func unaryMethod(name string, call structMethod) grpc.MethodDesc {
	fullMethod := "/" + CatalogServiceName + "/" + name

	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CatalogServiceServer), ctx, in)
			}

			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(CatalogServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
