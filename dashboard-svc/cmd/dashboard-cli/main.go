// dashboard-cli drives the restaurant dashboard from a terminal: it signs the
// owner in, keeps the session in shared storage and runs the page controllers
// against the backend API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"menuqr-dashboard/config"
	"menuqr-dashboard/dashboard-svc/internal/controller"
	"menuqr-dashboard/dashboard-svc/internal/events"
	"menuqr-dashboard/dashboard-svc/internal/notify"
	"menuqr-dashboard/dashboard-svc/internal/service"
	"menuqr-dashboard/dashboard-svc/internal/session"
	"menuqr-dashboard/dashboard-svc/internal/storage"
	"menuqr-dashboard/dashboard-svc/internal/transport"

	"github.com/fatih/color"
)

var errNotSignedIn = errors.New("not signed in, run: dashboard-cli login")

// sessionStorage is durable session storage that also reports changes.
type sessionStorage interface {
	session.Storage
	session.ChangeFeed
}

type app struct {
	cfg     config.Config
	storage sessionStorage
	store   *session.Store
	prompt  *notify.Prompt
	console *notify.Console
	writer  events.MessageWriter
	closers []func() error
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		printUsage()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, config.Load())
	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
	defer a.close()

	switch cmd {
	case "login":
		err = a.cmdLogin(ctx, args)
	case "register":
		err = a.cmdRegister(ctx, args)
	case "onboard":
		err = a.cmdOnboard(ctx, args)
	case "logout":
		err = a.cmdLogout(ctx)
	case "whoami":
		err = a.cmdWhoami(ctx, args)
	case "profile":
		err = a.cmdProfile(ctx, args)
	case "orders":
		err = a.cmdOrders(ctx, args)
	case "set-status":
		err = a.cmdSetStatus(ctx, args)
	case "cancel":
		err = a.cmdCancel(ctx, args)
	case "menu":
		err = a.cmdMenu(ctx, args)
	case "export-menu":
		err = a.cmdExportMenu(ctx, args)
	case "toggle-stock":
		err = a.cmdToggleStock(ctx, args)
	case "payments":
		err = a.cmdPayments(ctx, args)
	case "refund":
		err = a.cmdRefund(ctx, args)
	case "upload":
		err = a.cmdUpload(ctx, args)
	case "qrcode":
		err = a.cmdQRCode(args)
	case "watch":
		err = a.cmdWatch(ctx)
	case "activity":
		err = a.cmdActivity(ctx, args)
	case "shop":
		err = a.cmdShop(ctx, args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		a.close()
		os.Exit(1)
	}

	if err != nil {
		if !errors.Is(err, errToasted) {
			color.Red("Error: %v\n", err)
		}
		a.close()
		os.Exit(1)
	}
}

func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	a := &app{
		cfg:     cfg,
		prompt:  notify.NewPrompt(os.Stdin, os.Stdout),
		console: notify.NewConsole(os.Stdout),
	}

	switch cfg.SessionStore {
	case "redis":
		client := config.MustInitRedis()
		a.closers = append(a.closers, client.Close)
		a.storage = storage.NewRedisStore(client, storage.DefaultChangeChannel)
	case "postgres":
		db := config.MustInitPostgres()
		a.closers = append(a.closers, db.Close)
		pg := storage.NewPostgresStore(db)
		pg.NewListener = storage.PQListener(config.PostgresDSN())
		if err := pg.EnsureSchema(ctx); err != nil {
			a.close()
			return nil, err
		}
		a.storage = pg
	case "memory":
		log.Printf("Warning: [CLI] memory session store does not outlive this process")
		a.storage = storage.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown SESSION_STORE %q (want redis, postgres or memory)", cfg.SessionStore)
	}

	if w := config.NewKafkaWriter(cfg.KafkaBroker, cfg.ActivityTopic); w != nil {
		a.closers = append(a.closers, w.Close)
		a.writer = w
	}

	client := transport.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.HTTPTimeout})
	a.store = session.NewStore(ctx, client, a.storage, cfg.FallbackTenantID)
	return a, nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Printf("Warning: [CLI] close: %v", err)
		}
	}
	a.closers = nil
}

// deps wires the page controllers to the terminal and, when a broker is
// configured, to the activity topic.
func (a *app) deps() controller.Deps {
	deps := controller.Deps{
		Session:   a.store,
		Notifier:  a.console,
		Confirmer: a.prompt,
	}
	if a.writer != nil {
		deps.Recorder = events.NewActivityPublisher(a.writer)
	}
	return deps
}

func (a *app) requireAuth() error {
	if !a.store.IsAuthenticated() {
		return errNotSignedIn
	}
	return nil
}

func (a *app) ordersPage(ctx context.Context) *controller.OrdersPage {
	return controller.NewOrdersPage(ctx, service.NewOrdersService(a.store.Client()), a.deps())
}

func (a *app) menuPage(ctx context.Context) *controller.MenuPage {
	client := a.store.Client()
	return controller.NewMenuPage(ctx, service.NewCategoriesService(client), service.NewItemsService(client), a.deps())
}

func (a *app) paymentsPage(ctx context.Context) *controller.PaymentsPage {
	return controller.NewPaymentsPage(ctx, service.NewPaymentsService(a.store.Client()), a.deps())
}

func printUsage() {
	cyan := color.New(color.FgCyan, color.Bold)
	yellow := color.New(color.FgYellow)

	fmt.Println()
	cyan.Println("  dashboard-cli - restaurant dashboard from the terminal")
	fmt.Println()
	yellow.Println("  Session:")
	fmt.Println("    login -email <email> -password <password>")
	fmt.Println("    register -email <email> -password <password> [-tenant <id>] [-first <name>] [-last <name>]")
	fmt.Println("    onboard -name <restaurant> -slug <slug> -email <email> -password <password>")
	fmt.Println("    logout")
	fmt.Println("    whoami [-refresh]")
	fmt.Println("    profile [-name ..] [-phone ..] [-address ..] [-description ..] [-website ..] [-logo ..]")
	fmt.Println("    watch                          follow session changes from other processes")
	fmt.Println()
	yellow.Println("  Orders:")
	fmt.Println("    orders [-status <STATUS>] [-search <text>]")
	fmt.Println("    set-status [-note <text>] <order-id> <STATUS>")
	fmt.Println("    cancel [-y] [-reason <text>] <order-id>")
	fmt.Println()
	yellow.Println("  Menu:")
	fmt.Println("    menu [-search <text>] [-category <id>]")
	fmt.Println("    export-menu [-out <file.json>]")
	fmt.Println("    toggle-stock <item-id>")
	fmt.Println("    upload [-folder <name>] <image-file>")
	fmt.Println("    qrcode [-table <n>] [-size <px>] [-out <file.png>]")
	fmt.Println()
	yellow.Println("  Payments:")
	fmt.Println("    payments [-status <STATUS>] [-method <METHOD>] [-search <text>]")
	fmt.Println("    refund [-y] [-amount <n>] [-reason <text>] <payment-id>")
	fmt.Println()
	yellow.Println("  Storefront:")
	fmt.Println("    shop [-slug <slug>]            browse a menu and order as a customer")
	fmt.Println()
	yellow.Println("  Activity:")
	fmt.Println("    activity [-group <consumer-group>]  tail this restaurant's dashboard activity")
	fmt.Println()
	yellow.Println("  Environment:")
	fmt.Println("    API_URL, SESSION_STORE (redis|postgres|memory), FALLBACK_TENANT_ID,")
	fmt.Println("    STOREFRONT_URL, HTTP_TIMEOUT, KAFKA_BROKER, ACTIVITY_TOPIC")
	fmt.Println()
}
