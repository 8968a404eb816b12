package testutil

import (
	"net/mail"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/zyraworkhub/zyra/core"
	"github.com/zyraworkhub/zyra/core/record"
	emailsvc "github.com/zyraworkhub/zyra/services/email"
	mirrorsvc "github.com/zyraworkhub/zyra/services/mirror"
	"github.com/zyraworkhub/zyra/storage/jsonfile"
)

// nopLogger discards everything; side-channel goroutines may outlive a test,
// so logging through testing.T is not safe here.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

func NewLogger() core.Logger { return nopLogger{} }

// NewConfig returns a config suitable for tests: an isolated data directory
// and the repository root as the working directory so assets resolve.
func NewConfig(dataDir string) *core.Config {
	conf := &core.Config{
		TestMode:        true,
		Env:             "TEST",
		Build:           "test",
		AppName:         "Zyra WorkHub",
		FrontendBaseURL: "https://zyraworkhub.web.app",
		DefaultFromEmail: mail.Address{
			Name:    "Zyra WorkHub",
			Address: "noreply@localhost",
		},
		AdminEmail: "admin@test.cd",
		WorkDir:    core.Getwd(),
	}
	conf.Data.Dir = dataDir
	conf.Server.ShutdownTimeout = 0
	return conf
}

func NewValidator() (*validator.Validate, ut.Translator) {
	_en := en.New()
	translator, _ := ut.New(_en, _en).GetTranslator("en")
	validate := validator.New()
	core.InitValidators(validate, translator)
	return validate, translator
}

func OpenStore(t *testing.T, conf *core.Config) *jsonfile.Store {
	t.Helper()
	store, err := jsonfile.Open(conf.Data.Dir, NewLogger())
	if err != nil {
		t.Fatalf("jsonfile.Open() failed: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// NewRecordService wires a record service over the given store with a
// synchronous mirror recorder and the synchronous email mock.
func NewRecordService(conf *core.Config, store *jsonfile.Store) (*record.Service, *mirrorsvc.RecorderMirror) {
	mirror := mirrorsvc.NewRecorderMirror()
	svc := record.NewService(conf, NewLogger(), jsonfile.NewRecordRepository(store), mirror, emailsvc.NewConsoleServiceMock(conf))
	return svc, mirror
}
