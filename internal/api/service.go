package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "shop.ShopService"

const (
	ShopService_Register_FullMethodName       = "/" + ServiceName + "/Register"
	ShopService_Login_FullMethodName          = "/" + ServiceName + "/Login"
	ShopService_ChangePassword_FullMethodName = "/" + ServiceName + "/ChangePassword"
	ShopService_AddProduct_FullMethodName     = "/" + ServiceName + "/AddProduct"
	ShopService_EditProduct_FullMethodName    = "/" + ServiceName + "/EditProduct"
	ShopService_RemoveProduct_FullMethodName  = "/" + ServiceName + "/RemoveProduct"
	ShopService_ListProducts_FullMethodName   = "/" + ServiceName + "/ListProducts"
	ShopService_AddToCart_FullMethodName      = "/" + ServiceName + "/AddToCart"
	ShopService_ViewCart_FullMethodName       = "/" + ServiceName + "/ViewCart"
	ShopService_PlaceOrder_FullMethodName     = "/" + ServiceName + "/PlaceOrder"
	ShopService_ListOrders_FullMethodName     = "/" + ServiceName + "/ListOrders"
	ShopService_Ping_FullMethodName           = "/" + ServiceName + "/Ping"
)

// ShopServiceServer is the server API for shop.ShopService.
type ShopServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	ChangePassword(context.Context, *ChangePasswordRequest) (*ChangePasswordResponse, error)
	AddProduct(context.Context, *AddProductRequest) (*AddProductResponse, error)
	EditProduct(context.Context, *EditProductRequest) (*EditProductResponse, error)
	RemoveProduct(context.Context, *RemoveProductRequest) (*RemoveProductResponse, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	AddToCart(context.Context, *AddToCartRequest) (*AddToCartResponse, error)
	ViewCart(context.Context, *ViewCartRequest) (*ViewCartResponse, error)
	PlaceOrder(context.Context, *PlaceOrderRequest) (*PlaceOrderResponse, error)
	ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
}

// UnimplementedShopServiceServer answers every method with codes.Unimplemented.
// Embed it to implement only part of the service.
type UnimplementedShopServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedShopServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, unimplemented("Register")
}
func (UnimplementedShopServiceServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, unimplemented("Login")
}
func (UnimplementedShopServiceServer) ChangePassword(context.Context, *ChangePasswordRequest) (*ChangePasswordResponse, error) {
	return nil, unimplemented("ChangePassword")
}
func (UnimplementedShopServiceServer) AddProduct(context.Context, *AddProductRequest) (*AddProductResponse, error) {
	return nil, unimplemented("AddProduct")
}
func (UnimplementedShopServiceServer) EditProduct(context.Context, *EditProductRequest) (*EditProductResponse, error) {
	return nil, unimplemented("EditProduct")
}
func (UnimplementedShopServiceServer) RemoveProduct(context.Context, *RemoveProductRequest) (*RemoveProductResponse, error) {
	return nil, unimplemented("RemoveProduct")
}
func (UnimplementedShopServiceServer) ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error) {
	return nil, unimplemented("ListProducts")
}
func (UnimplementedShopServiceServer) AddToCart(context.Context, *AddToCartRequest) (*AddToCartResponse, error) {
	return nil, unimplemented("AddToCart")
}
func (UnimplementedShopServiceServer) ViewCart(context.Context, *ViewCartRequest) (*ViewCartResponse, error) {
	return nil, unimplemented("ViewCart")
}
func (UnimplementedShopServiceServer) PlaceOrder(context.Context, *PlaceOrderRequest) (*PlaceOrderResponse, error) {
	return nil, unimplemented("PlaceOrder")
}
func (UnimplementedShopServiceServer) ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error) {
	return nil, unimplemented("ListOrders")
}
func (UnimplementedShopServiceServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, unimplemented("Ping")
}

// unaryHandler adapts a typed server method to a grpc.MethodDesc, running it
// through the server's interceptor chain when one is installed.
func unaryHandler[Req, Resp any](name string, call func(ShopServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	fullMethod := "/" + ServiceName + "/" + name
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(ShopServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(ShopServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// ShopService_ServiceDesc is the grpc.ServiceDesc for shop.ShopService.
var ShopService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ShopServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler("Register", ShopServiceServer.Register),
		unaryHandler("Login", ShopServiceServer.Login),
		unaryHandler("ChangePassword", ShopServiceServer.ChangePassword),
		unaryHandler("AddProduct", ShopServiceServer.AddProduct),
		unaryHandler("EditProduct", ShopServiceServer.EditProduct),
		unaryHandler("RemoveProduct", ShopServiceServer.RemoveProduct),
		unaryHandler("ListProducts", ShopServiceServer.ListProducts),
		unaryHandler("AddToCart", ShopServiceServer.AddToCart),
		unaryHandler("ViewCart", ShopServiceServer.ViewCart),
		unaryHandler("PlaceOrder", ShopServiceServer.PlaceOrder),
		unaryHandler("ListOrders", ShopServiceServer.ListOrders),
		unaryHandler("Ping", ShopServiceServer.Ping),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "shop",
}

func RegisterShopServiceServer(s grpc.ServiceRegistrar, srv ShopServiceServer) {
	s.RegisterService(&ShopService_ServiceDesc, srv)
}
