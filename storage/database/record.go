package database

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/zyraworkhub/zyra/core/record"
)

// recordRepository stores every record kind in one table, the payload kept
// as the same JSON document the file store would hold. Listing orders by
// created_at (then id) descending, matching the file store's newest-first
// prepend order.
type recordRepository struct {
	db *sqlx.DB
}

func NewRecordRepository(db *sqlx.DB) record.Repository {
	return &recordRepository{db: db}
}

const (
	insertStmt = `INSERT INTO record (id, collection, payload, created_at) VALUES ($1, $2, $3, $4)`
	listStmt   = `SELECT payload FROM record WHERE collection = $1 ORDER BY created_at DESC, id DESC`
)

func (repo *recordRepository) create(ctx context.Context, collection, id string, createdAt time.Time, rec interface{}) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrapf(err, "encoding %s record", collection)
	}
	if _, err = repo.db.ExecContext(ctx, insertStmt, id, collection, payload, createdAt); err != nil {
		return errors.Wrapf(err, "inserting %s record", collection)
	}
	return nil
}

func listRecords[T any](ctx context.Context, db *sqlx.DB, collection string) ([]T, error) {
	var payloads [][]byte
	if err := db.SelectContext(ctx, &payloads, listStmt, collection); err != nil {
		return nil, errors.Wrapf(err, "querying %s records", collection)
	}
	out := make([]T, 0, len(payloads))
	for _, payload := range payloads {
		var rec T
		if err := json.Unmarshal(payload, &rec); err != nil {
			return nil, errors.Wrapf(err, "decoding %s record", collection)
		}
		out = append(out, rec)
	}
	return out, nil
}

func (repo *recordRepository) CreateSpeaker(ctx context.Context, app record.SpeakerApplication) error {
	return repo.create(ctx, record.CollectionSpeakers, app.ID, app.CreatedAt, app)
}

func (repo *recordRepository) ListSpeakers(ctx context.Context) ([]record.SpeakerApplication, error) {
	return listRecords[record.SpeakerApplication](ctx, repo.db, record.CollectionSpeakers)
}

func (repo *recordRepository) CreateContact(ctx context.Context, sub record.ContactSubmission) error {
	return repo.create(ctx, record.CollectionContacts, sub.ID, sub.CreatedAt, sub)
}

func (repo *recordRepository) ListContacts(ctx context.Context) ([]record.ContactSubmission, error) {
	return listRecords[record.ContactSubmission](ctx, repo.db, record.CollectionContacts)
}

func (repo *recordRepository) CreateAdmin(ctx context.Context, entry record.AdminEntry) error {
	return repo.create(ctx, record.CollectionAdmins, entry.ID, entry.CreatedAt, entry)
}

func (repo *recordRepository) ListAdmins(ctx context.Context) ([]record.AdminEntry, error) {
	return listRecords[record.AdminEntry](ctx, repo.db, record.CollectionAdmins)
}
