package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"menuqr-dashboard/dashboard-svc/internal/domain"
	"menuqr-dashboard/dashboard-svc/internal/service"
	"menuqr-dashboard/dashboard-svc/internal/storefront"

	"github.com/fatih/color"
)

var (
	errQuit        = errors.New("quit")
	errNoOrder     = errors.New("no order placed yet, run: place <METHOD> <phone> <name>")
	errUnknownItem = errors.New("unknown item")
)

// shopper plays a customer at one restaurant's storefront: it browses the
// public menu, fills a cart and places and pays the order.
type shopper struct {
	checkout *storefront.Checkout
	menu     *domain.PublicMenu
	items    map[string]domain.Item
	table    string
	order    *domain.Order
	out      io.Writer
}

func newShopper(menu *domain.PublicMenu, checkout *storefront.Checkout, out io.Writer) *shopper {
	s := &shopper{
		checkout: checkout,
		menu:     menu,
		items:    map[string]domain.Item{},
		out:      out,
	}
	for _, category := range menu.Categories {
		for _, item := range category.Items {
			s.items[item.ID] = item
		}
	}
	return s
}

func (s *shopper) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(s.out, "> ")
	for scanner.Scan() {
		err := s.exec(ctx, scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			color.New(color.FgRed).Fprintf(s.out, "Error: %v\n", err)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		fmt.Fprint(s.out, "> ")
	}
	return scanner.Err()
}

func (s *shopper) exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "menu":
		s.printMenu()
	case "add":
		if len(args) < 1 {
			return errors.New("usage: add <item-id> [qty]")
		}
		item, ok := s.items[args[0]]
		if !ok {
			return fmt.Errorf("%w %q", errUnknownItem, args[0])
		}
		qty, err := quantityArg(args[1:], 1)
		if err != nil {
			return err
		}
		if err := s.checkout.Cart().Add(item, qty); err != nil {
			return fmt.Errorf("%s: %w", item.Name, err)
		}
		s.printCart()
	case "qty":
		if len(args) != 2 {
			return errors.New("usage: qty <item-id> <n>")
		}
		qty, err := quantityArg(args[1:], 0)
		if err != nil {
			return err
		}
		s.checkout.Cart().SetQuantity(args[0], qty)
		s.printCart()
	case "note":
		if len(args) < 2 {
			return errors.New("usage: note <item-id> <instructions>")
		}
		s.checkout.Cart().SetInstructions(args[0], strings.Join(args[1:], " "))
	case "remove":
		if len(args) != 1 {
			return errors.New("usage: remove <item-id>")
		}
		s.checkout.Cart().Remove(args[0])
		s.printCart()
	case "cart":
		s.printCart()
	case "table":
		if len(args) != 1 {
			return errors.New("usage: table <number>")
		}
		s.table = args[0]
	case "place":
		if len(args) < 3 {
			return errors.New("usage: place <METHOD> <phone> <name>")
		}
		customer := storefront.Customer{
			Name:        strings.Join(args[2:], " "),
			Phone:       args[1],
			TableNumber: s.table,
		}
		order, err := s.checkout.PlaceOrder(ctx, customer, domain.PaymentMethod(strings.ToUpper(args[0])))
		if err != nil {
			return err
		}
		if order == nil {
			return errors.New("backend returned no order")
		}
		s.order = order
		color.New(color.FgGreen).Fprintf(s.out, "Order %s placed, total %d\n", order.OrderNumber, order.TotalAmount)
	case "info":
		info, err := s.checkout.PaymentInfo(ctx)
		if err != nil {
			return err
		}
		if info == nil {
			return errors.New("no payment information for this restaurant")
		}
		for _, method := range info.Methods {
			account := info.Accounts[string(method)]
			fmt.Fprintf(s.out, "  %-14s %s %s\n", method, account.AccountNumber, account.AccountName)
		}
	case "pay":
		if s.order == nil {
			return errNoOrder
		}
		if len(args) < 1 {
			return errors.New("usage: pay <reference> [phone]")
		}
		phone := s.order.CustomerPhone
		if len(args) > 1 {
			phone = args[1]
		}
		payment, err := s.checkout.ConfirmPayment(ctx, *s.order, s.order.PaymentMethod, args[0], phone)
		if err != nil {
			return err
		}
		if payment != nil {
			fmt.Fprintf(s.out, "Payment %s is %s\n", payment.TransactionID, payment.Status)
		}
	case "status":
		if s.order == nil {
			return errNoOrder
		}
		status, err := s.checkout.OrderStatus(ctx, s.order.OrderNumber)
		if err != nil {
			return err
		}
		if status == nil {
			return errors.New("order not found")
		}
		fmt.Fprintf(s.out, "Order %s is %s\n", status.OrderNumber, status.Status)
	case "payment":
		if len(args) != 1 {
			return errors.New("usage: payment <reference>")
		}
		status, err := s.checkout.PaymentStatus(ctx, args[0])
		if err != nil {
			return err
		}
		if status == nil {
			return errors.New("payment not found")
		}
		fmt.Fprintf(s.out, "Payment %s is %s\n", status.TransactionID, status.Status)
	case "help":
		printShopHelp(s.out)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
	return nil
}

func quantityArg(args []string, fallback int) (int, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	qty, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid quantity %q", args[0])
	}
	return qty, nil
}

func (s *shopper) printMenu() {
	cyan := color.New(color.FgCyan)
	for _, category := range s.menu.Categories {
		cyan.Fprintf(s.out, "  %s\n", category.Name)
		w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
		for _, item := range category.Items {
			state := ""
			if !item.Orderable() {
				state = "unavailable"
			}
			fmt.Fprintf(w, "    %s\t%s\t%d\t%s\n", truncate(item.ID, 12), truncate(item.Name, 28), item.Price, state)
		}
		w.Flush()
	}
}

func (s *shopper) printCart() {
	cart := s.checkout.Cart()
	if cart.Empty() {
		fmt.Fprintln(s.out, "Cart is empty")
		return
	}
	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	for _, line := range cart.Lines() {
		fmt.Fprintf(w, "  %dx\t%s\t%d\n", line.Quantity, truncate(line.Name, 28), line.Subtotal())
	}
	w.Flush()
	fmt.Fprintf(s.out, "  %d items, total %d\n", cart.Count(), cart.Total())
}

func printShopHelp(out io.Writer) {
	fmt.Fprintln(out, "  menu | cart | add <item-id> [qty] | qty <item-id> <n> | remove <item-id>")
	fmt.Fprintln(out, "  note <item-id> <text> | table <number>")
	fmt.Fprintln(out, "  place <METHOD> <phone> <name> | info | pay <reference> [phone]")
	fmt.Fprintln(out, "  status | payment <reference> | quit")
}

// cmdShop opens a restaurant's storefront as a customer would from the QR
// code link. It defaults to the signed-in restaurant.
func (a *app) cmdShop(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("shop", flag.ContinueOnError)
	slug := fs.String("slug", "", "restaurant slug")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *slug == "" {
		if user := a.store.CurrentUser(); user != nil && user.Tenant != nil {
			*slug = user.Tenant.Slug
		}
	}
	if *slug == "" {
		return storefront.ErrEmptySlug
	}

	client := a.store.Client()
	menu, err := service.NewMenuService(client).GetPublicMenu(ctx, *slug)
	if err != nil {
		return err
	}
	if menu == nil {
		return fmt.Errorf("no menu for %q", *slug)
	}
	checkout, err := storefront.NewCheckout(*slug, storefront.NewCart(), service.NewOrdersService(client), service.NewPaymentsService(client))
	if err != nil {
		return err
	}

	printHeader(menu.Tenant.Name)
	s := newShopper(menu, checkout, os.Stdout)
	s.printMenu()
	printShopHelp(os.Stdout)
	return s.run(ctx, os.Stdin)
}

// cmdExportMenu writes the restaurant's full menu, items grouped under their
// category, as JSON.
func (a *app) cmdExportMenu(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export-menu", flag.ContinueOnError)
	out := fs.String("out", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	menu, err := service.NewMenuService(a.store.Client()).GetMenu(ctx)
	if err != nil {
		return toasted(err)
	}
	if *out == "" {
		return writeMenu(os.Stdout, menu)
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := writeMenu(f, menu); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	color.Green("Wrote %d categories to %s\n", len(menu), *out)
	return nil
}

func writeMenu(w io.Writer, menu []domain.MenuCategory) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(menu)
}
