package tests

import (
	"fmt"
	"os"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	. "github.com/zyraworkhub/zyra/apps/api/echo"
	"github.com/zyraworkhub/zyra/core"
	"github.com/zyraworkhub/zyra/core/catalog"
	"github.com/zyraworkhub/zyra/core/record"
	emailsvc "github.com/zyraworkhub/zyra/services/email"
	mirrorsvc "github.com/zyraworkhub/zyra/services/mirror"
	"github.com/zyraworkhub/zyra/storage/jsonfile"
	testutil "github.com/zyraworkhub/zyra/tests"
)

var (
	app        Server
	conf       *core.Config
	store      *jsonfile.Store
	mirror     *mirrorsvc.RecorderMirror
	recordSvc  *record.Service
	catalogSvc *catalog.Service
	validate   *validator.Validate
	translator ut.Translator
)

func TestMain(m *testing.M) {
	dataDir, err := os.MkdirTemp("", "zyra-api-test-*")
	if err != nil {
		fmt.Printf("os.MkdirTemp(): %v", err)
		os.Exit(1)
	}

	// set up storage & services
	conf = testutil.NewConfig(dataDir)
	logger := testutil.NewLogger()
	core.ParseEmailTemplates(conf, logger)

	if store, err = jsonfile.Open(dataDir, logger); err != nil {
		fmt.Printf("jsonfile.Open(): %v", err)
		os.Exit(1)
	}

	mirror = mirrorsvc.NewRecorderMirror()
	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	recordSvc = record.NewService(conf, logger, jsonfile.NewRecordRepository(store), mirror, mailSvc)
	catalogSvc = catalog.NewService(jsonfile.NewCatalogRepository(store))
	validate, translator = testutil.NewValidator()

	// set up server
	app = NewServer(ServerDeps{
		Conf:           conf,
		Logger:         logger,
		RecordSvc:      recordSvc,
		CatalogSvc:     catalogSvc,
		Mirror:         mirror,
		Validate:       validate,
		Translator:     translator,
		DisableReqLogs: true,
	})

	// run tests
	code := m.Run()

	// clean up
	if err = store.Close(); err != nil {
		fmt.Printf("store.Close(): %v", err)
	}
	_ = os.RemoveAll(dataDir)

	os.Exit(code)
}
