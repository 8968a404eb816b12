package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	echoapi "github.com/zyraworkhub/zyra/apps/api/echo"
	"github.com/zyraworkhub/zyra/core"
	"github.com/zyraworkhub/zyra/core/catalog"
	"github.com/zyraworkhub/zyra/core/record"
	emailsvc "github.com/zyraworkhub/zyra/services/email"
	logsvc "github.com/zyraworkhub/zyra/services/logger"
	mirrorsvc "github.com/zyraworkhub/zyra/services/mirror"
	"github.com/zyraworkhub/zyra/storage/database"
	"github.com/zyraworkhub/zyra/storage/jsonfile"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	// set up storage; the reference catalog is always file-backed, records
	// follow the configured engine
	fileStore, err := jsonfile.Open(conf.Data.Dir, logger)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening data directory: %v", err), err)
	}
	defer func() { _ = fileStore.Close() }()
	catalogRepo := jsonfile.NewCatalogRepository(fileStore)

	var recordRepo record.Repository
	switch conf.Database.Engine {
	case "postgres":
		db, err := database.Open(conf)
		if err != nil {
			logger.Fatal(fmt.Sprintf("opening database: %v", err), err)
		}
		defer func() { _ = db.Close() }()
		if err = database.Ping(db); err != nil {
			logger.Fatal(fmt.Sprintf("pinging database: %v", err), err)
		}
		if err = database.Migrate(db); err != nil {
			logger.Fatal(fmt.Sprintf("migrating database: %v", err), err)
		}
		recordRepo = database.NewRecordRepository(db)
	default:
		recordRepo = jsonfile.NewRecordRepository(fileStore)
	}

	// set up side-channel services
	var mirror core.Mirror
	if conf.Firestore.CredentialsFile != "" || conf.Firestore.ProjectID != "" {
		fsMirror := mirrorsvc.NewFirestoreMirror(context.Background(), conf, logger)
		defer func() { _ = fsMirror.Close() }()
		mirror = fsMirror
	} else {
		mirror = mirrorsvc.NewDummyMirror(logger)
	}

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	recordSvc := record.NewService(conf, logger, recordRepo, mirror, mailSvc)
	catalogSvc := catalog.NewService(catalogRepo)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	core.ParseEmailTemplates(conf, logger)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.
	// /metrics    - Prometheus collectors.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	http.Handle("/metrics", promhttp.Handler())

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugAddr, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			RecordSvc:  recordSvc,
			CatalogSvc: catalogSvc,
			Mirror:     mirror,
			Validate:   validate,
			Translator: translator,
		},
	)

	go server.Start()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
