package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/shopkeeper/internal/api"
	"github.com/dmitrijs2005/shopkeeper/internal/client/config"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
	"github.com/shopspring/decimal"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

type fakeClient struct {
	calls []string

	pingErr error

	regUser  string
	regPass  string
	regAdmin bool
	regErr   error

	loginUser string
	loginPass string
	loginResp *api.LoginResponse
	loginErr  error
	loggedOut bool

	changeOld, changeNew string
	changeOK             bool

	added    *api.Product
	edited   *api.EditProductRequest
	removed  int64
	products []api.Product

	cartAdds []api.CartLine
	lines    []api.CartLine
	order    *api.Order
	orderErr error
	orders   []api.Order
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) Ping(context.Context) error { return f.pingErr }

func (f *fakeClient) Register(_ context.Context, username, password string, isAdmin bool) (int64, error) {
	f.calls = append(f.calls, "register")
	f.regUser, f.regPass, f.regAdmin = username, password, isAdmin
	return 1, f.regErr
}

func (f *fakeClient) Login(_ context.Context, username, password string) (*api.LoginResponse, error) {
	f.calls = append(f.calls, "login")
	f.loginUser, f.loginPass = username, password
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if f.loginResp == nil {
		return &api.LoginResponse{AccessToken: "tok", UserID: 1}, nil
	}
	return f.loginResp, nil
}

func (f *fakeClient) Logout() { f.loggedOut = true }

func (f *fakeClient) ChangePassword(_ context.Context, oldPassword, newPassword string) (bool, error) {
	f.changeOld, f.changeNew = oldPassword, newPassword
	return f.changeOK, nil
}

func (f *fakeClient) AddProduct(_ context.Context, name string, description *string, price decimal.Decimal) (*api.Product, error) {
	f.calls = append(f.calls, "addproduct")
	f.added = &api.Product{ID: int64(len(f.products) + 1), Name: name, Description: description, Price: price}
	f.products = append(f.products, *f.added)
	return f.added, nil
}

func (f *fakeClient) EditProduct(_ context.Context, id int64, name string, description *string, price decimal.Decimal) error {
	f.edited = &api.EditProductRequest{ID: id, Name: name, Description: description, Price: price}
	return nil
}

func (f *fakeClient) RemoveProduct(_ context.Context, id int64) error {
	f.removed = id
	return nil
}

func (f *fakeClient) ListProducts(context.Context) ([]api.Product, error) {
	f.calls = append(f.calls, "products")
	return f.products, nil
}

func (f *fakeClient) AddToCart(_ context.Context, productID, quantity int64) error {
	f.calls = append(f.calls, "add")
	f.cartAdds = append(f.cartAdds, api.CartLine{ProductID: productID, Quantity: quantity})
	f.lines = append(f.lines, api.CartLine{ProductID: productID, Quantity: quantity})
	return nil
}

func (f *fakeClient) ViewCart(context.Context) ([]api.CartLine, error) {
	f.calls = append(f.calls, "cart")
	return f.lines, nil
}

func (f *fakeClient) PlaceOrder(context.Context) (*api.Order, error) {
	f.calls = append(f.calls, "order")
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	if f.order != nil {
		return f.order, nil
	}
	return &api.Order{ID: 1, ProductDetails: "Product ID: 1, Quantity: 2"}, nil
}

func (f *fakeClient) ListOrders(context.Context) ([]api.Order, error) { return f.orders, nil }

// ------------ helpers ------------

func readerFromLines(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
}

func newTestApp(c *fakeClient, r *bufio.Reader) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return &App{config: cfg, client: c, logger: nopLogger{}, reader: r, out: &out}, &out
}

func stubPasswords(t *testing.T, pws ...string) {
	t.Helper()
	orig := getPassword
	i := 0
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		pw := pws[i]
		i++
		return []byte(pw), nil
	}
	t.Cleanup(func() { getPassword = orig })
}
