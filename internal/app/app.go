// Package app wires the storefront together: storage, seed fallback,
// kafka producers and stats, sessions and the HTTP surface.
package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/paintmart/storefront/config"
	"github.com/paintmart/storefront/internal/adapter"
	"github.com/paintmart/storefront/internal/adapter/auth"
	"github.com/paintmart/storefront/internal/adapter/httphandler"
	"github.com/paintmart/storefront/internal/adapter/kafka"
	"github.com/paintmart/storefront/internal/adapter/receipt"
	"github.com/paintmart/storefront/internal/adapter/seed"
	"github.com/paintmart/storefront/internal/adapter/storage"
	"github.com/paintmart/storefront/internal/core/service"
	"github.com/paintmart/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/sr"
)

type services struct {
	products   *service.ProductsService
	categories *service.CategoriesService
	banners    *service.BannersService
	sales      *service.SalesService
	roles      *service.RolesService
	health     *service.HealthService
}

type App struct {
	ctx context.Context
	cfg config.Config
	wg  sync.WaitGroup

	db        storage.SQLDB
	saleSerde schema.Serde
	producer  *kafka.SalesProducer
	statsProc *kafka.UnitsSoldProcessor
	statsView *kafka.UnitsSoldView
	sessions  *auth.Sessions

	services   services
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initStorage()
	app.initSerdes()
	app.initBrokerAdapters()
	app.initServices()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initStorage() {
	const op = "App.initStorage"

	db, err := storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
	if err != nil {
		app.fallDown(op, err)
	}
	app.db = db
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"

	srClient, err := sr.NewClient(
		sr.URLs(app.cfg.Broker.SchemaRegistryURLs...),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	registry := schema.NewRegistry(srClient)

	saleSubject := app.cfg.Broker.Topics.SaleEvents + "-value"
	saleSerde, err := schema.NewSerdeSaleRecordedV1(
		app.ctx,
		schema.SubjectOpt(saleSubject),
		schema.SchemaIdentifierOpt(registry),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.saleSerde = saleSerde
}

func (app *App) initBrokerAdapters() {
	const op = "App.initBrokerAdapters"

	var tlsConfig *tls.Config
	if t := app.cfg.Broker.TLS; t.Enabled() {
		tlsConfig = adapter.MakeTLSConfig(t.CA, t.Cert, t.Key)
	}

	seedBrokers := app.cfg.Broker.SeedBrokers
	saleTopic := app.cfg.Broker.Topics.SaleEvents
	statsTable := app.cfg.Broker.Topics.UnitsSoldTable

	producer, err := kafka.NewSalesProducer(
		kafka.ProducerClientOpt(app.ctx, seedBrokers, saleTopic, tlsConfig),
		kafka.ProducerEncoderOpt(app.saleSerde),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	statsProc, err := kafka.NewUnitsSoldProc(
		seedBrokers, saleTopic, statsTable, app.saleSerde,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	statsView, err := kafka.NewUnitsSoldView(seedBrokers, statsTable)
	if err != nil {
		app.fallDown(op, err)
	}

	app.producer = producer
	app.statsProc = statsProc
	app.statsView = statsView
}

func (app *App) initServices() {
	catalog := seed.NewCatalog()

	app.services.products = service.NewProducts(
		storage.NewProductsRepository(app.db), catalog,
	)
	app.services.categories = service.NewCategories(
		storage.NewCategoriesRepository(app.db), catalog,
	)
	app.services.banners = service.NewBanners(
		storage.NewBannersRepository(app.db), catalog,
	)
	app.services.sales = service.NewSales(
		storage.NewSalesRepository(app.db), app.producer,
	)
	app.services.roles = service.NewRoles(
		storage.NewRolesRepository(app.db),
	)
	app.services.health = service.NewHealth(
		storage.NewProber(app.db),
	)

	app.sessions = auth.NewSessions(app.db)
	go app.watchSessions(app.sessions.Subscribe())
}

// watchSessions drops the admin cache on every session change.
func (app *App) watchSessions(ch <-chan struct{}) {
	for {
		select {
		case <-app.ctx.Done():
			return
		case <-ch:
			app.services.roles.Reset()
		}
	}
}

func (app *App) initHTTPServer() {
	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, app.services.products, app.statsView)
	httphandler.RegisterCategories(mux, app.services.categories)
	httphandler.RegisterBanners(mux, app.services.banners)
	httphandler.RegisterSales(mux, app.services.sales, receipt.NewPrinter())
	httphandler.RegisterRoles(mux, app.services.roles)
	httphandler.RegisterSessions(mux, app.sessions)
	httphandler.RegisterHealth(mux, app.services.health)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	app.wg.Add(1)
	app.statsProc.Run(app.ctx, stopFn, &app.wg)
	go app.statsView.Run(app.ctx)
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.statsProc.Close()
	app.producer.Close()
	app.db.Close()
	app.wg.Wait()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
