package record_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zyraworkhub/zyra/core"
	"github.com/zyraworkhub/zyra/core/record"
	emailsvc "github.com/zyraworkhub/zyra/services/email"
	mirrorsvc "github.com/zyraworkhub/zyra/services/mirror"
	testutil "github.com/zyraworkhub/zyra/tests"
)

var ctx = context.Background()

func setup(t *testing.T) (*record.Service, *mirrorsvc.RecorderMirror) {
	t.Helper()
	conf := testutil.NewConfig(t.TempDir())
	core.ParseEmailTemplates(conf, testutil.NewLogger())
	store := testutil.OpenStore(t, conf)
	svc, mirror := testutil.NewRecordService(conf, store)
	emailsvc.ResetSentMessages()
	return svc, mirror
}

func newSpeakerApplication() record.NewSpeakerApplication {
	return record.NewSpeakerApplication{
		Name:      "Awe Mukulu",
		Email:     "awe@test.cd",
		Bio:       "Designer and educator",
		Expertise: []string{"design", "mentoring"},
		Abstract:  "Teaching design fundamentals remotely",
	}
}

func TestService_CreateSpeaker(t *testing.T) {
	svc, mirror := setup(t)

	app, err := svc.CreateSpeaker(ctx, newSpeakerApplication())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(app.ID, "s_"), "id = %s", app.ID)
	assert.False(t, app.CreatedAt.IsZero())

	apps, err := svc.ListSpeakers(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, app.ID, apps[0].ID)

	mirrored := mirror.Mirrored()
	require.Len(t, mirrored, 1)
	assert.Equal(t, record.CollectionSpeakers, mirrored[0].Collection)
	assert.Equal(t, app.ID, mirrored[0].ID)

	require.Len(t, emailsvc.SentMessages, 2)
	confirm, alert := emailsvc.SentMessages[0], emailsvc.SentMessages[1]
	assert.Equal(t, "Speaker Application Received", confirm.Subject)
	assert.Equal(t, "awe@test.cd", confirm.To[0].Address)
	assert.Equal(t, "New Speaker Application: Awe Mukulu", alert.Subject)
	assert.Equal(t, "admin@test.cd", alert.To[0].Address)
	assert.Contains(t, confirm.TextContent, "Awe Mukulu")
	assert.Contains(t, alert.TextContent, "design, mentoring")
}

func TestService_CreateSpeaker_newestFirst(t *testing.T) {
	svc, _ := setup(t)

	first, err := svc.CreateSpeaker(ctx, newSpeakerApplication())
	require.NoError(t, err)
	nsa := newSpeakerApplication()
	nsa.Email = "second@test.cd"
	second, err := svc.CreateSpeaker(ctx, nsa)
	require.NoError(t, err)

	apps, err := svc.ListSpeakers(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, second.ID, apps[0].ID)
	assert.Equal(t, first.ID, apps[1].ID)
}

func TestService_CreateContact(t *testing.T) {
	svc, mirror := setup(t)

	sub, err := svc.CreateContact(ctx, record.NewContactSubmission{
		Name:         "King Kaka",
		Email:        "king@test.cd",
		Message:      "Interested in a design partnership",
		InterestType: record.InterestPartnership,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sub.ID, "c_"), "id = %s", sub.ID)

	subs, err := svc.ListContacts(ctx)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, sub.ID, subs[0].ID)

	// contacts are not mirrored remotely
	assert.Empty(t, mirror.Mirrored())

	require.Len(t, emailsvc.SentMessages, 2)
	assert.Equal(t, "We received your message", emailsvc.SentMessages[0].Subject)
	assert.Equal(t, "New Contact Submission: King Kaka", emailsvc.SentMessages[1].Subject)
}

func TestService_CreateAdmin(t *testing.T) {
	svc, mirror := setup(t)

	entry, err := svc.CreateAdmin(ctx, record.NewAdminEntry{
		Name:  "Principal",
		Email: "princip@test.cd",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(entry.ID, "a_"), "id = %s", entry.ID)

	entries, err := svc.ListAdmins(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	mirrored := mirror.Mirrored()
	require.Len(t, mirrored, 1)
	assert.Equal(t, record.CollectionAdmins, mirrored[0].Collection)

	// admin registration sends no email
	assert.Empty(t, emailsvc.SentMessages)
}

func TestService_DebugWriteSpeaker(t *testing.T) {
	svc, mirror := setup(t)

	app, err := svc.DebugWriteSpeaker(ctx)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(app.ID, "s_debug_"), "id = %s", app.ID)

	apps, err := svc.ListSpeakers(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 1)

	// debug writes bypass the side channels
	assert.Empty(t, mirror.Mirrored())
	assert.Empty(t, emailsvc.SentMessages)
}

// failingRepository rejects every write.
type failingRepository struct {
	record.Repository
}

func (failingRepository) CreateSpeaker(context.Context, record.SpeakerApplication) error {
	return assert.AnError
}

func TestService_CreateSpeaker_persistFailure(t *testing.T) {
	conf := testutil.NewConfig(t.TempDir())
	core.ParseEmailTemplates(conf, testutil.NewLogger())
	mirror := mirrorsvc.NewRecorderMirror()
	svc := record.NewService(conf, testutil.NewLogger(), failingRepository{}, mirror, emailsvc.NewConsoleServiceMock(conf))
	emailsvc.ResetSentMessages()

	_, err := svc.CreateSpeaker(ctx, newSpeakerApplication())
	require.Error(t, err)

	var perr *core.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, record.CollectionSpeakers, perr.Collection)

	// a failed local write gates the side channels
	assert.Empty(t, mirror.Mirrored())
	assert.Empty(t, emailsvc.SentMessages)
}
