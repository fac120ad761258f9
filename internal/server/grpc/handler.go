package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/shopkeeper/internal/api"
	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/dmitrijs2005/shopkeeper/internal/server/auth"
	"github.com/dmitrijs2005/shopkeeper/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors to gRPC status codes. Storage failures are
// logged and reported without their cause.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrDuplicateUsername):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrEmptyCart):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	}

	s.logger.Error(ctx, err.Error())
	return status.Error(codes.Internal, "internal error")
}

func (s *GRPCServer) currentSession(ctx context.Context) (session, error) {
	sess, ok := sessionFromContext(ctx)
	if !ok {
		return session{}, status.Error(codes.Unauthenticated, "missing session")
	}
	return sess, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.RegisterResponse, error) {
	user, err := s.accounts.Register(ctx, req.Username, req.Password, req.IsAdmin)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.RegisterResponse{UserID: user.ID}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {
	user, err := s.accounts.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.LoginResponse{AccessToken: token, UserID: user.ID, IsAdmin: user.IsAdmin}, nil
}

func (s *GRPCServer) ChangePassword(ctx context.Context, req *api.ChangePasswordRequest) (*api.ChangePasswordResponse, error) {
	sess, err := s.currentSession(ctx)
	if err != nil {
		return nil, err
	}

	user := &models.User{ID: sess.UserID, Username: sess.Username}
	ok, err := s.accounts.RotateCredential(ctx, user, req.OldPassword, req.NewPassword)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.ChangePasswordResponse{Changed: ok}, nil
}

func productToAPI(p *models.Product) api.Product {
	return api.Product{ID: p.ID, Name: p.Name, Description: p.Description, Price: p.Price}
}

func (s *GRPCServer) AddProduct(ctx context.Context, req *api.AddProductRequest) (*api.AddProductResponse, error) {
	p, err := s.catalog.AddProduct(ctx, req.Name, req.Description, req.Price)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.AddProductResponse{Product: productToAPI(p)}, nil
}

func (s *GRPCServer) EditProduct(ctx context.Context, req *api.EditProductRequest) (*api.EditProductResponse, error) {
	if err := s.catalog.EditProduct(ctx, req.ID, req.Name, req.Description, req.Price); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.EditProductResponse{}, nil
}

func (s *GRPCServer) RemoveProduct(ctx context.Context, req *api.RemoveProductRequest) (*api.RemoveProductResponse, error) {
	if err := s.catalog.RemoveProduct(ctx, req.ID); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.RemoveProductResponse{}, nil
}

func (s *GRPCServer) ListProducts(ctx context.Context, req *api.ListProductsRequest) (*api.ListProductsResponse, error) {
	list, err := s.catalog.ViewProducts(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &api.ListProductsResponse{Products: make([]api.Product, 0, len(list))}
	for _, p := range list {
		resp.Products = append(resp.Products, productToAPI(p))
	}
	return resp, nil
}

func (s *GRPCServer) AddToCart(ctx context.Context, req *api.AddToCartRequest) (*api.AddToCartResponse, error) {
	sess, err := s.currentSession(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.carts(sess.UserID).AddOrReplaceLine(ctx, req.ProductID, req.Quantity); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &api.AddToCartResponse{}, nil
}

func (s *GRPCServer) ViewCart(ctx context.Context, req *api.ViewCartRequest) (*api.ViewCartResponse, error) {
	sess, err := s.currentSession(ctx)
	if err != nil {
		return nil, err
	}

	lines, err := s.carts(sess.UserID).ViewLines(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &api.ViewCartResponse{Lines: make([]api.CartLine, 0, len(lines))}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, api.CartLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return resp, nil
}

func (s *GRPCServer) PlaceOrder(ctx context.Context, req *api.PlaceOrderRequest) (*api.PlaceOrderResponse, error) {
	sess, err := s.currentSession(ctx)
	if err != nil {
		return nil, err
	}

	order, err := s.carts(sess.UserID).PlaceOrder(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &api.PlaceOrderResponse{Order: api.Order{ID: order.ID, ProductDetails: order.ProductDetails}}, nil
}

func (s *GRPCServer) ListOrders(ctx context.Context, req *api.ListOrdersRequest) (*api.ListOrdersResponse, error) {
	sess, err := s.currentSession(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.carts(sess.UserID).Orders(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &api.ListOrdersResponse{Orders: make([]api.Order, 0, len(list))}
	for _, o := range list {
		resp.Orders = append(resp.Orders, api.Order{ID: o.ID, ProductDetails: o.ProductDetails})
	}
	return resp, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}
