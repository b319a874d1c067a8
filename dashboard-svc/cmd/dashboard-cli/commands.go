package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"menuqr-dashboard/config"
	"menuqr-dashboard/dashboard-svc/internal/controller"
	"menuqr-dashboard/dashboard-svc/internal/domain"
	"menuqr-dashboard/dashboard-svc/internal/events"
	"menuqr-dashboard/dashboard-svc/internal/service"
	"menuqr-dashboard/dashboard-svc/internal/session"
	"menuqr-dashboard/dashboard-svc/internal/storefront"

	"github.com/fatih/color"
)

func (a *app) cmdLogin(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("-email and -password are required")
	}

	resp, err := a.store.Login(ctx, domain.Credentials{Email: *email, Password: *password})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	color.Green("Signed in as %s\n", resp.User.Email)
	return nil
}

func (a *app) cmdRegister(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	tenant := fs.String("tenant", "", "restaurant id")
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	phone := fs.String("phone", "", "phone number")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("-email and -password are required")
	}

	resp, err := a.store.Register(ctx, domain.RegisterRequest{
		Email:     *email,
		Password:  *password,
		FirstName: *first,
		LastName:  *last,
		Phone:     *phone,
		TenantID:  *tenant,
	})
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	color.Green("Account created for %s\n", resp.User.Email)
	return nil
}

func (a *app) cmdOnboard(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("onboard", flag.ContinueOnError)
	name := fs.String("name", "", "restaurant name")
	slug := fs.String("slug", "", "restaurant slug")
	phone := fs.String("phone", "", "restaurant phone")
	address := fs.String("address", "", "restaurant address")
	email := fs.String("email", "", "owner email")
	password := fs.String("password", "", "owner password")
	first := fs.String("first", "", "owner first name")
	last := fs.String("last", "", "owner last name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return errors.New("-email and -password are required")
	}

	resp, err := a.store.Onboard(ctx,
		domain.CreateTenantRequest{Name: *name, Slug: *slug, Email: *email, Phone: *phone, Address: *address},
		domain.RegisterRequest{Email: *email, Password: *password, FirstName: *first, LastName: *last, Phone: *phone},
	)
	if err != nil {
		var onboardErr *session.OnboardingError
		if errors.As(err, &onboardErr) && onboardErr.Rollback != nil {
			color.Yellow("Restaurant %s was created but could not be removed\n", onboardErr.Tenant.ID)
		}
		return fmt.Errorf("onboard: %w", err)
	}
	color.Green("Restaurant onboarded, signed in as %s\n", resp.User.Email)
	return nil
}

func (a *app) cmdLogout(ctx context.Context) error {
	a.store.Logout(ctx)
	color.Green("Signed out\n")
	return nil
}

func (a *app) cmdWhoami(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("whoami", flag.ContinueOnError)
	refresh := fs.Bool("refresh", false, "reload the profile from the API")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	user := a.store.CurrentUser()
	if *refresh {
		fresh, err := a.store.RefreshUser(ctx)
		if err != nil {
			return fmt.Errorf("refresh profile: %w", err)
		}
		user = fresh
	}
	if user == nil {
		return errNotSignedIn
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Email:\t%s\n", user.Email)
	fmt.Fprintf(w, "  Name:\t%s\n", strings.TrimSpace(user.FirstName+" "+user.LastName))
	fmt.Fprintf(w, "  Role:\t%s\n", user.Role)
	fmt.Fprintf(w, "  Tenant:\t%s\n", user.TenantKey())
	if user.Tenant != nil {
		fmt.Fprintf(w, "  Restaurant:\t%s (%s)\n", user.Tenant.Name, user.Tenant.Slug)
	}
	if exp, ok := a.store.TokenExpiry(); ok {
		fmt.Fprintf(w, "  Token expires:\t%s\n", exp.Local().Format("Jan 02 15:04"))
	}
	return w.Flush()
}

func (a *app) cmdProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	var update domain.TenantUpdate
	optional := map[string]**string{
		"name":        &update.Name,
		"slug":        &update.Slug,
		"email":       &update.Email,
		"phone":       &update.Phone,
		"address":     &update.Address,
		"description": &update.Description,
		"website":     &update.Website,
		"logo":        &update.LogoURL,
		"banner":      &update.BannerURL,
	}
	for name, field := range optional {
		fs.Func(name, "set the restaurant "+name, func(v string) error {
			*field = &v
			return nil
		})
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	tenant, err := a.store.UpdateRestaurantProfile(ctx, update)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	color.Green("Restaurant %s updated\n", tenant.Name)
	return nil
}

func (a *app) cmdOrders(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders", flag.ContinueOnError)
	status := fs.String("status", "", "only orders in this status")
	search := fs.String("search", "", "match order number or customer")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	page := a.ordersPage(ctx)
	defer page.Close()
	if err := page.SetFilters(ctx, domain.OrderFilters{Status: domain.OrderStatus(strings.ToUpper(*status)), Search: *search}); err != nil {
		return toasted(err)
	}

	orders := page.Visible()
	printHeader("Orders")
	if len(orders) == 0 {
		fmt.Println("  (no orders)")
		fmt.Println()
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tNUMBER\tCUSTOMER\tSTATUS\tTOTAL\tCREATED")
	fmt.Fprintln(w, "  --\t------\t--------\t------\t-----\t-------")
	for _, o := range orders {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%d\t%s\n",
			truncate(o.ID, 12), o.OrderNumber, truncate(o.CustomerName, 20), o.Status, o.TotalAmount, formatTime(o.CreatedAt))
	}
	w.Flush()

	if stats := page.Stats(); stats != nil {
		fmt.Printf("\n  %d orders, %d pending, revenue %d\n", stats.TotalOrders, stats.PendingOrders, stats.TotalRevenue)
	}
	fmt.Println()
	return nil
}

func (a *app) cmdSetStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("set-status", flag.ContinueOnError)
	note := fs.String("note", "", "note stored with the status change")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return errors.New("usage: set-status [-note <text>] <order-id> <STATUS>")
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	page := a.ordersPage(ctx)
	defer page.Close()
	_, err := page.UpdateStatus(ctx, fs.Arg(0), domain.OrderStatus(strings.ToUpper(fs.Arg(1))), *note)
	return toasted(err)
}

func (a *app) cmdCancel(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cancel", flag.ContinueOnError)
	reason := fs.String("reason", "", "cancellation reason")
	fs.BoolVar(&a.prompt.AutoConfirm, "y", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: cancel [-y] [-reason <text>] <order-id>")
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	page := a.ordersPage(ctx)
	defer page.Close()
	if err := page.Load(ctx); err != nil {
		return toasted(err)
	}
	_, err := page.Cancel(ctx, fs.Arg(0), *reason)
	if errors.Is(err, controller.ErrNotConfirmed) {
		fmt.Println("  Nothing changed")
		return nil
	}
	return toasted(err)
}

func (a *app) cmdMenu(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("menu", flag.ContinueOnError)
	search := fs.String("search", "", "match item name or description")
	category := fs.String("category", "", "only items of this category id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	page := a.menuPage(ctx)
	defer page.Close()
	if err := page.Load(ctx); err != nil {
		return toasted(err)
	}
	if *search != "" {
		if err := page.SetSearch(ctx, *search); err != nil {
			return toasted(err)
		}
	}
	if *category != "" {
		if err := page.SelectCategory(ctx, *category); err != nil {
			return toasted(err)
		}
	}

	cyan := color.New(color.FgCyan)
	visible := map[string]bool{}
	for _, item := range page.Visible() {
		visible[item.ID] = true
	}

	fmt.Println()
	for _, group := range page.Grouped() {
		var items []domain.Item
		for _, item := range group.Items {
			if visible[item.ID] {
				items = append(items, item)
			}
		}
		if len(items) == 0 && (*search != "" || *category != "") {
			continue
		}

		cyan.Printf("  %s", group.Name)
		fmt.Printf(" (%s)\n", group.ID)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		for _, item := range items {
			state := "available"
			if !item.Orderable() {
				state = "unavailable"
			}
			fmt.Fprintf(w, "    %s\t%s\t%d\t%s\n", truncate(item.ID, 12), truncate(item.Name, 28), item.Price, state)
		}
		w.Flush()
	}

	if stats := page.Stats(); stats != nil {
		fmt.Printf("\n  %d items, %d out of stock\n", stats.TotalItems, stats.OutOfStockItems)
	}
	fmt.Println()
	return nil
}

func (a *app) cmdToggleStock(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: toggle-stock <item-id>")
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	page := a.menuPage(ctx)
	defer page.Close()
	_, err := page.ToggleStock(ctx, args[0])
	return toasted(err)
}

func (a *app) cmdPayments(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("payments", flag.ContinueOnError)
	status := fs.String("status", "", "only payments in this status")
	method := fs.String("method", "", "only payments with this method")
	search := fs.String("search", "", "match id, order or transaction reference")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	page := a.paymentsPage(ctx)
	defer page.Close()
	filters := domain.PaymentFilters{
		Status: domain.PaymentStatus(strings.ToUpper(*status)),
		Method: domain.PaymentMethod(strings.ToUpper(*method)),
	}
	if err := page.SetFilters(ctx, filters); err != nil {
		return toasted(err)
	}
	page.SetSearch(*search)

	payments := page.Visible()
	printHeader("Payments")
	if len(payments) == 0 {
		fmt.Println("  (no payments)")
		fmt.Println()
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tORDER\tMETHOD\tSTATUS\tAMOUNT\tREFERENCE")
	fmt.Fprintln(w, "  --\t-----\t------\t------\t------\t---------")
	for _, p := range payments {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%d\t%s\n",
			truncate(p.ID, 12), truncate(p.OrderID, 12), p.Method, p.Status, p.Amount, p.TransactionID)
	}
	w.Flush()

	if stats := page.Stats(); stats != nil {
		fmt.Printf("\n  %d payments, %d collected, %d refunded\n", stats.TotalPayments, stats.TotalAmount, stats.RefundedAmount)
	}
	fmt.Println()
	return nil
}

func (a *app) cmdRefund(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("refund", flag.ContinueOnError)
	amount := fs.Int64("amount", 0, "partial refund amount, full refund when 0")
	reason := fs.String("reason", "", "refund reason")
	fs.BoolVar(&a.prompt.AutoConfirm, "y", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: refund [-y] [-amount <n>] [-reason <text>] <payment-id>")
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	page := a.paymentsPage(ctx)
	defer page.Close()
	_, err := page.Refund(ctx, fs.Arg(0), domain.RefundRequest{Amount: *amount, Reason: *reason})
	if errors.Is(err, controller.ErrNotConfirmed) {
		fmt.Println("  Nothing changed")
		return nil
	}
	return toasted(err)
}

func (a *app) cmdUpload(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("upload", flag.ContinueOnError)
	folder := fs.String("folder", "menu", "destination folder")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: upload [-folder <name>] <image-file>")
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	path := fs.Arg(0)
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}

	result, err := service.NewFilesService(a.store.Client()).Upload(ctx, service.Upload{
		Name: filepath.Base(path),
		Size: info.Size(),
		Body: f,
	}, *folder)
	if err != nil {
		return fmt.Errorf("upload %s: %w", path, err)
	}
	color.Green("Uploaded %s\n", result.URL)
	return nil
}

func (a *app) cmdQRCode(args []string) error {
	fs := flag.NewFlagSet("qrcode", flag.ContinueOnError)
	table := fs.String("table", "", "table number encoded in the link")
	size := fs.Int("size", storefront.DefaultQRSize, "image size in pixels")
	out := fs.String("out", "menu-qr.png", "output file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	user := a.store.CurrentUser()
	if user == nil || user.Tenant == nil || user.Tenant.Slug == "" {
		return session.ErrNoTenant
	}

	gen := storefront.DefaultQRGenerator{BaseURL: a.cfg.StorefrontURL, Size: *size}
	png, err := gen.Generate(user.Tenant.Slug, *table)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}
	if err := os.WriteFile(*out, png, 0o644); err != nil {
		return err
	}
	color.Green("Wrote %s for %s\n", *out, gen.MenuURL(user.Tenant.Slug, *table))
	return nil
}

// cmdWatch prints the session state every time it changes, including
// sign-ins and sign-outs made by other processes on the same storage.
func (a *app) cmdWatch(ctx context.Context) error {
	binding := session.NewBinding(a.store, a.storage)
	updates, unsubscribe := binding.Subscribe()
	defer unsubscribe()

	if err := binding.Mount(ctx); err != nil {
		return err
	}
	defer binding.Unmount()

	fmt.Println("Watching session, Ctrl+C to stop")
	for {
		select {
		case <-ctx.Done():
			return nil
		case state, ok := <-updates:
			if !ok {
				return nil
			}
			printState(state)
		}
	}
}

func (a *app) cmdActivity(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("activity", flag.ContinueOnError)
	group := fs.String("group", "", "consumer group, empty to tail from now")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := a.requireAuth(); err != nil {
		return err
	}

	reader := config.NewKafkaReader(a.cfg.KafkaBroker, a.cfg.ActivityTopic, *group)
	if reader == nil {
		return errors.New("KAFKA_BROKER is not set")
	}
	defer reader.Close()

	feed := events.NewActivityFeed(reader, a.store.CurrentUser().TenantKey())
	fmt.Printf("Following %s, Ctrl+C to stop\n", a.cfg.ActivityTopic)
	return feed.Start(ctx, func(activity domain.Activity) {
		fmt.Printf("  %s  %-24s %s %s\n", formatTime(activity.At), activity.Action, activity.Entity, activity.EntityID)
	})
}

// errToasted marks failures the page controllers already showed the user.
var errToasted = errors.New("reported")

func toasted(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", errToasted, err)
}

func printState(state session.State) {
	switch {
	case state.IsLoading:
		color.Yellow("  loading...\n")
	case state.IsAuthenticated && state.User != nil:
		color.Green("  signed in as %s (tenant %s)\n", state.User.Email, state.User.TenantKey())
	default:
		color.Red("  signed out\n")
	}
}

func printHeader(title string) {
	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Printf("  %s\n", title)
	cyan.Printf("  %s\n", strings.Repeat("-", len(title)))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("Jan 02 15:04")
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
