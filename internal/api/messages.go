package api

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"is_admin"`
}

type RegisterResponse struct {
	UserID int64 `json:"user_id"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	UserID      int64  `json:"user_id"`
	IsAdmin     bool   `json:"is_admin"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type ChangePasswordResponse struct {
	Changed bool `json:"changed"`
}

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

type AddProductRequest struct {
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

type AddProductResponse struct {
	Product Product `json:"product"`
}

type EditProductRequest struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

type EditProductResponse struct{}

type RemoveProductRequest struct {
	ID int64 `json:"id"`
}

type RemoveProductResponse struct{}

type ListProductsRequest struct{}

type ListProductsResponse struct {
	Products []Product `json:"products"`
}

type CartLine struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type AddToCartRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int64 `json:"quantity"`
}

type AddToCartResponse struct{}

type ViewCartRequest struct{}

type ViewCartResponse struct {
	Lines []CartLine `json:"lines"`
}

type Order struct {
	ID             int64  `json:"id"`
	ProductDetails string `json:"product_details"`
}

type PlaceOrderRequest struct{}

type PlaceOrderResponse struct {
	Order Order `json:"order"`
}

type ListOrdersRequest struct{}

type ListOrdersResponse struct {
	Orders []Order `json:"orders"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}
