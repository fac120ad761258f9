package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/shopkeeper/internal/dbx"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/carts"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/orders"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/products"
	"github.com/dmitrijs2005/shopkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Dialect() dbx.Dialect
	Users(db dbx.DBTX) users.Repository
	Products(db dbx.DBTX) products.Repository
	Carts(db dbx.DBTX) carts.Repository
	Orders(db dbx.DBTX) orders.Repository
}
