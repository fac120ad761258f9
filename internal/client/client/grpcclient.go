package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/shopkeeper/internal/api"
	"github.com/dmitrijs2005/shopkeeper/internal/common"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      api.ShopServiceClient

	mu          sync.RWMutex
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

func (s *GRPCClient) setToken(token string) {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()
}

// accessTokenInterceptor attaches the session token, if any, to every call.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.token(); token != "" {
		ctx = withAccessToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewShopClient(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(opts ...grpc.DialOption) error {
	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = api.NewShopServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) Register(ctx context.Context, username, password string, isAdmin bool) (int64, error) {
	resp, err := s.client.Register(ctx, &api.RegisterRequest{Username: username, Password: password, IsAdmin: isAdmin})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.UserID, nil
}

// Login authenticates and keeps the returned access token for later calls.
func (s *GRPCClient) Login(ctx context.Context, username, password string) (*api.LoginResponse, error) {
	resp, err := s.client.Login(ctx, &api.LoginRequest{Username: username, Password: password})
	if err != nil {
		err = s.mapError(err)
		if errors.Is(err, ErrUnauthorized) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	s.setToken(resp.AccessToken)
	return resp, nil
}

func (s *GRPCClient) Logout() {
	s.setToken("")
}

func (s *GRPCClient) ChangePassword(ctx context.Context, oldPassword, newPassword string) (bool, error) {
	resp, err := s.client.ChangePassword(ctx, &api.ChangePasswordRequest{OldPassword: oldPassword, NewPassword: newPassword})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.Changed, nil
}

func (s *GRPCClient) AddProduct(ctx context.Context, name string, description *string, price decimal.Decimal) (*api.Product, error) {
	resp, err := s.client.AddProduct(ctx, &api.AddProductRequest{Name: name, Description: description, Price: price})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &resp.Product, nil
}

func (s *GRPCClient) EditProduct(ctx context.Context, id int64, name string, description *string, price decimal.Decimal) error {
	_, err := s.client.EditProduct(ctx, &api.EditProductRequest{ID: id, Name: name, Description: description, Price: price})
	return s.mapError(err)
}

func (s *GRPCClient) RemoveProduct(ctx context.Context, id int64) error {
	_, err := s.client.RemoveProduct(ctx, &api.RemoveProductRequest{ID: id})
	return s.mapError(err)
}

func (s *GRPCClient) ListProducts(ctx context.Context) ([]api.Product, error) {
	resp, err := s.client.ListProducts(ctx, &api.ListProductsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Products, nil
}

func (s *GRPCClient) AddToCart(ctx context.Context, productID, quantity int64) error {
	_, err := s.client.AddToCart(ctx, &api.AddToCartRequest{ProductID: productID, Quantity: quantity})
	return s.mapError(err)
}

func (s *GRPCClient) ViewCart(ctx context.Context) ([]api.CartLine, error) {
	resp, err := s.client.ViewCart(ctx, &api.ViewCartRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Lines, nil
}

func (s *GRPCClient) PlaceOrder(ctx context.Context) (*api.Order, error) {
	resp, err := s.client.PlaceOrder(ctx, &api.PlaceOrderRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &resp.Order, nil
}

func (s *GRPCClient) ListOrders(ctx context.Context) ([]api.Order, error) {
	resp, err := s.client.ListOrders(ctx, &api.ListOrdersRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.Orders, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.AlreadyExists:
		return common.ErrDuplicateUsername
	case codes.FailedPrecondition:
		return common.ErrEmptyCart
	case codes.InvalidArgument:
		return common.ErrInvalidArgument
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
