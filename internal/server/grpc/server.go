// Package grpc exposes the shop services over gRPC as shop.ShopService.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/shopkeeper/internal/api"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/dmitrijs2005/shopkeeper/internal/server/models"
	"github.com/dmitrijs2005/shopkeeper/internal/server/services"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc"
)

type AccountService interface {
	Register(ctx context.Context, username, password string, isAdmin bool) (*models.User, error)
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	RotateCredential(ctx context.Context, user *models.User, oldPassword, newPassword string) (bool, error)
}

type CatalogService interface {
	AddProduct(ctx context.Context, name string, description *string, price decimal.Decimal) (*models.Product, error)
	EditProduct(ctx context.Context, id int64, name string, description *string, price decimal.Decimal) error
	RemoveProduct(ctx context.Context, id int64) error
	ViewProducts(ctx context.Context) ([]*models.Product, error)
}

type UserCart interface {
	AddOrReplaceLine(ctx context.Context, productID, quantity int64) error
	ViewLines(ctx context.Context) ([]models.CartLine, error)
	PlaceOrder(ctx context.Context) (*models.Order, error)
	Orders(ctx context.Context) ([]*models.Order, error)
}

// CartProvider returns the cart of a user.
type CartProvider func(userID int64) UserCart

// CartsOf adapts a CartService to a CartProvider.
func CartsOf(s *services.CartService) CartProvider {
	return func(userID int64) UserCart { return s.ForUser(userID) }
}

type GRPCServer struct {
	api.UnimplementedShopServiceServer
	address   string
	accounts  AccountService
	catalog   CatalogService
	carts     CartProvider
	logger    logging.Logger
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewGRPCServer(a string, l logging.Logger, as AccountService, cs CatalogService, carts CartProvider,
	secretKey string, tokenTTL time.Duration) *GRPCServer {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		accounts:  as,
		catalog:   cs,
		carts:     carts,
		jwtSecret: []byte(secretKey),
		tokenTTL:  tokenTTL,
	}
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully once ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	api.RegisterShopServiceServer(srv, s)

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info(context.Background(), "Stopping gRPC server...")
			srv.GracefulStop()
		case <-stopped:
		}
	}()

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
