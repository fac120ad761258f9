package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Logout(ctx context.Context) error
	Products(ctx context.Context) error
	AddProduct(ctx context.Context) error
	EditProduct(ctx context.Context) error
	RemoveProduct(ctx context.Context) error
	AddToCart(ctx context.Context) error
	Cart(ctx context.Context) error
	PlaceOrder(ctx context.Context) error
	Orders(ctx context.Context) error
	Demo(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the shop CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Errors returned by handlers are printed and
// the loop continues. The loop exits on EOF or when the user types "exit"
// or "quit".
//
//	Not logged in:
//	  - help                  show available commands
//	  - register | login      account
//	  - products              list the catalog
//	  - addproduct | editproduct | rmproduct
//	  - demo                  run the example workflow
//	  - exit | quit           leave the program
//
//	Logged in, additionally:
//	  - passwd                change password
//	  - add                   add or replace a cart line
//	  - cart | order | orders
//	  - logout
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("shop %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: products, addproduct, editproduct, rmproduct, add, cart, order, orders, passwd, demo, logout, exit")
			} else {
				printlnFn("Available commands: register, login, products, addproduct, editproduct, rmproduct, demo, exit")
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "passwd":
			cmdErr = a.ChangePassword(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "products", "ls":
			cmdErr = a.Products(ctx)

		case "addproduct":
			cmdErr = a.AddProduct(ctx)

		case "editproduct":
			cmdErr = a.EditProduct(ctx)

		case "rmproduct":
			cmdErr = a.RemoveProduct(ctx)

		case "add":
			cmdErr = a.AddToCart(ctx)

		case "cart":
			cmdErr = a.Cart(ctx)

		case "order":
			cmdErr = a.PlaceOrder(ctx)

		case "orders":
			cmdErr = a.Orders(ctx)

		case "demo":
			cmdErr = a.Demo(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr.Error())
		}
	}
}
