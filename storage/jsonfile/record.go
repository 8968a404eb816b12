package jsonfile

import (
	"context"

	"github.com/zyraworkhub/zyra/core/record"
)

type recordRepository struct {
	store *Store
}

func NewRecordRepository(store *Store) record.Repository {
	return &recordRepository{store: store}
}

func (repo *recordRepository) CreateSpeaker(_ context.Context, app record.SpeakerApplication) error {
	return Prepend(repo.store, record.CollectionSpeakers, app)
}

func (repo *recordRepository) ListSpeakers(_ context.Context) ([]record.SpeakerApplication, error) {
	return Read[record.SpeakerApplication](repo.store, record.CollectionSpeakers), nil
}

func (repo *recordRepository) CreateContact(_ context.Context, sub record.ContactSubmission) error {
	return Prepend(repo.store, record.CollectionContacts, sub)
}

func (repo *recordRepository) ListContacts(_ context.Context) ([]record.ContactSubmission, error) {
	return Read[record.ContactSubmission](repo.store, record.CollectionContacts), nil
}

func (repo *recordRepository) CreateAdmin(_ context.Context, entry record.AdminEntry) error {
	return Prepend(repo.store, record.CollectionAdmins, entry)
}

func (repo *recordRepository) ListAdmins(_ context.Context) ([]record.AdminEntry, error) {
	return Read[record.AdminEntry](repo.store, record.CollectionAdmins), nil
}
