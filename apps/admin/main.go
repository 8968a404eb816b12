package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/zyraworkhub/zyra/core"
	"github.com/zyraworkhub/zyra/core/record"
	emailsvc "github.com/zyraworkhub/zyra/services/email"
	logsvc "github.com/zyraworkhub/zyra/services/logger"
	mirrorsvc "github.com/zyraworkhub/zyra/services/mirror"
	"github.com/zyraworkhub/zyra/storage/jsonfile"
)

func main() {
	defer os.Exit(0)

	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)

	// set up storage
	store, err := jsonfile.Open(conf.Data.Dir, logger)
	errAndDie(logger, err)
	defer func() { _ = store.Close() }()

	_en := en.New()
	translator, _ := ut.New(_en, _en).GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)

	// admin entries created here still flow through the regular service so
	// mirroring applies when credentials are configured
	var mirror core.Mirror
	if conf.Firestore.CredentialsFile != "" || conf.Firestore.ProjectID != "" {
		fsMirror := mirrorsvc.NewFirestoreMirror(context.Background(), conf, logger)
		defer func() { _ = fsMirror.Close() }()
		mirror = fsMirror
	} else {
		mirror = mirrorsvc.NewDummyMirror(logger)
	}

	recordSvc := record.NewService(conf, logger, jsonfile.NewRecordRepository(store), mirror, emailsvc.NewConsoleService(conf))

	// start CLI
	cli := commandLine{
		conf:      conf,
		logger:    logger,
		store:     store,
		recordSvc: recordSvc,
		validate:  validate,
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error(fmt.Sprintf("error: %s", err), err)
		}
		os.Exit(1)
	}
}

func errAndDie(logger core.Logger, err error) {
	if err != nil {
		logger.Fatal(err.Error(), err)
	}
}
