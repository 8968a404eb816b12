package record

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/zyraworkhub/zyra/core"
)

type (
	// Repository persists submission records. Create* implementations must
	// prepend the new record so collections stay in newest-first order.
	Repository interface {
		CreateSpeaker(ctx context.Context, app SpeakerApplication) error
		ListSpeakers(ctx context.Context) ([]SpeakerApplication, error)
		CreateContact(ctx context.Context, sub ContactSubmission) error
		ListContacts(ctx context.Context) ([]ContactSubmission, error)
		CreateAdmin(ctx context.Context, entry AdminEntry) error
		ListAdmins(ctx context.Context) ([]AdminEntry, error)
	}

	Service struct {
		conf    *core.Config
		logger  core.Logger
		repo    Repository
		mirror  core.Mirror
		mailSvc core.EmailService
	}
)

func NewService(conf *core.Config, logger core.Logger, repo Repository, mirror core.Mirror, mailSvc core.EmailService) *Service {
	return &Service{
		conf:    conf,
		logger:  logger,
		repo:    repo,
		mirror:  mirror,
		mailSvc: mailSvc,
	}
}

// CreateSpeaker persists a validated speaker application. The local write is
// the gate: only after it succeeds are the Firestore mirror and the
// confirmation emails attempted, and neither can fail the request.
func (svc *Service) CreateSpeaker(ctx context.Context, nsa NewSpeakerApplication) (SpeakerApplication, error) {
	app := SpeakerApplication{
		ID:          newID(prefixSpeaker),
		Name:        nsa.Name,
		Email:       nsa.Email,
		Bio:         nsa.Bio,
		Expertise:   nsa.Expertise,
		Abstract:    nsa.Abstract,
		LinkedinURL: nsa.LinkedinURL,
		TwitterURL:  nsa.TwitterURL,
		WebsiteURL:  nsa.WebsiteURL,
		CreatedAt:   time.Now().UTC(),
	}
	if err := svc.repo.CreateSpeaker(ctx, app); err != nil {
		return SpeakerApplication{}, core.NewPersistenceError(CollectionSpeakers, err)
	}
	svc.logger.Info(fmt.Sprintf("speaker application saved: id=%s email=%s", app.ID, app.Email))

	svc.mirror.MirrorRecord(CollectionSpeakers, app.ID, app)
	svc.mailSvc.SendMessages(
		svc.speakerConfirmation(app),
		svc.speakerAdminAlert(app),
	)
	return app, nil
}

func (svc *Service) ListSpeakers(ctx context.Context) ([]SpeakerApplication, error) {
	return svc.repo.ListSpeakers(ctx)
}

// CreateContact persists a validated contact submission. Contacts are not
// mirrored remotely; only the confirmation emails run out-of-band.
func (svc *Service) CreateContact(ctx context.Context, ncs NewContactSubmission) (ContactSubmission, error) {
	sub := ContactSubmission{
		ID:           newID(prefixContact),
		Name:         ncs.Name,
		Email:        ncs.Email,
		Message:      ncs.Message,
		Phone:        ncs.Phone,
		InterestType: ncs.InterestType,
		CreatedAt:    time.Now().UTC(),
	}
	if err := svc.repo.CreateContact(ctx, sub); err != nil {
		return ContactSubmission{}, core.NewPersistenceError(CollectionContacts, err)
	}
	svc.logger.Info(fmt.Sprintf("contact submission saved: id=%s email=%s", sub.ID, sub.Email))

	svc.mailSvc.SendMessages(
		svc.contactConfirmation(sub),
		svc.contactAdminAlert(sub),
	)
	return sub, nil
}

func (svc *Service) ListContacts(ctx context.Context) ([]ContactSubmission, error) {
	return svc.repo.ListContacts(ctx)
}

func (svc *Service) CreateAdmin(ctx context.Context, nae NewAdminEntry) (AdminEntry, error) {
	entry := AdminEntry{
		ID:        newID(prefixAdmin),
		Email:     nae.Email,
		Name:      nae.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := svc.repo.CreateAdmin(ctx, entry); err != nil {
		return AdminEntry{}, core.NewPersistenceError(CollectionAdmins, err)
	}
	svc.logger.Info(fmt.Sprintf("admin entry saved: id=%s email=%s", entry.ID, entry.Email))

	svc.mirror.MirrorRecord(CollectionAdmins, entry.ID, entry)
	return entry, nil
}

func (svc *Service) ListAdmins(ctx context.Context) ([]AdminEntry, error) {
	return svc.repo.ListAdmins(ctx)
}

// DebugWriteSpeaker appends a canned speaker entry, bypassing validation and
// the side channels. Only reachable through the Debug-mode debug-write route.
func (svc *Service) DebugWriteSpeaker(ctx context.Context) (SpeakerApplication, error) {
	app := SpeakerApplication{
		ID:        "s_debug_" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:      "Debug Tester",
		Email:     "debug@example.com",
		Bio:       "Auto-generated debug entry",
		Expertise: []string{"debug"},
		Abstract:  "This is a debug write",
		CreatedAt: time.Now().UTC(),
	}
	if err := svc.repo.CreateSpeaker(ctx, app); err != nil {
		return SpeakerApplication{}, core.NewPersistenceError(CollectionSpeakers, err)
	}
	svc.logger.Info("debug entry written to speakers: " + app.ID)
	return app, nil
}
