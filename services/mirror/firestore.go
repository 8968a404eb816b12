package mirrorsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/zyraworkhub/zyra/core"
	"github.com/zyraworkhub/zyra/services/metrics"
)

const upsertTimeout = 10 * time.Second

// FirestoreMirror keeps a best-effort remote copy of locally persisted
// records, document ID matching the local record ID so the copies
// correlate. A failed or impossible initialization degrades the mirror to
// a logged no-op; it never blocks startup.
type FirestoreMirror struct {
	client *firestore.Client
	conf   *core.Config
	logger core.Logger
	wg     sync.WaitGroup
}

var _ core.Mirror = (*FirestoreMirror)(nil)

func NewFirestoreMirror(ctx context.Context, conf *core.Config, logger core.Logger) *FirestoreMirror {
	m := &FirestoreMirror{conf: conf, logger: logger}

	var opts []option.ClientOption
	if conf.Firestore.CredentialsFile != "" {
		if _, err := os.Stat(conf.Firestore.CredentialsFile); err == nil {
			opts = append(opts, option.WithCredentialsFile(conf.Firestore.CredentialsFile))
		} else {
			logger.Warn(fmt.Sprintf("Firestore credentials file %s not found; trying application default credentials", conf.Firestore.CredentialsFile))
		}
	}

	projectID := conf.Firestore.ProjectID
	if projectID == "" {
		projectID = firestore.DetectProjectID
	}

	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		logger.Warn(fmt.Sprintf("Firestore mirror not initialized; remote copies disabled: %v", err))
		return m
	}
	m.client = client
	logger.Info("Firestore mirror initialized")
	return m
}

// Close waits for in-flight upserts before releasing the client, so a
// shutdown (or the admin CLI exiting) does not drop queued mirror writes.
func (m *FirestoreMirror) Close() error {
	m.wg.Wait()
	if m.client != nil {
		return m.client.Close()
	}
	return nil
}

// MirrorRecord upserts the record out-of-band. The caller has already
// responded based on the local write; nothing here can reach it.
func (m *FirestoreMirror) MirrorRecord(collection, id string, record interface{}) {
	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), upsertTimeout)
		defer cancel()
		m.upsert(ctx, collection, id, record)
	}()
}

func (m *FirestoreMirror) upsert(ctx context.Context, collection, id string, record interface{}) {
	if m.client == nil {
		m.logger.Warn(fmt.Sprintf("Firestore mirror not initialized; skipping remote write for %s/%s", collection, id))
		metrics.MirrorWrite(collection, "skipped")
		return
	}

	doc, err := asDocument(record)
	if err != nil {
		m.logger.Error(fmt.Sprintf("encoding %s/%s for mirror: %v", collection, id, err), err)
		metrics.MirrorWrite(collection, "error")
		return
	}

	// Re-attempts with the same id overwrite the remote document; fine,
	// the remote copy is advisory only.
	if _, err = m.client.Collection(collection).Doc(id).Set(ctx, doc); err != nil {
		switch status.Code(err) {
		case codes.NotFound:
			m.logger.Warn(fmt.Sprintf("mirror write failed for %s/%s (NOT_FOUND). Possible causes: "+
				"credentials do not match an active Firestore database; Firestore API not enabled for the project; "+
				"project set up in Datastore mode instead of Native mode; project ID mismatch. "+
				"Check the service account key and that Firestore is enabled.", collection, id), err)
			metrics.MirrorWrite(collection, "not_found")
		default:
			m.logger.Warn(fmt.Sprintf("mirror write failed for %s/%s: %v", collection, id, err), err)
			metrics.MirrorWrite(collection, "error")
		}
		return
	}

	m.logger.Info(fmt.Sprintf("record mirrored: %s/%s", collection, id))
	metrics.MirrorWrite(collection, "ok")
}

// Status reports reachability for the admin-status diagnostics endpoint.
func (m *FirestoreMirror) Status(ctx context.Context) core.MirrorStatus {
	st := core.MirrorStatus{Collections: []string{}}
	if m.conf.Firestore.CredentialsFile != "" {
		_, err := os.Stat(m.conf.Firestore.CredentialsFile)
		st.CredentialsPresent = err == nil
	}
	if m.client == nil {
		return st
	}
	st.Initialized = true
	st.ProjectID = m.conf.Firestore.ProjectID

	it := m.client.Collections(ctx)
	for {
		col, err := it.Next()
		if err == iterator.Done {
			st.Reachable = true
			break
		}
		if err != nil {
			m.logger.Warn(fmt.Sprintf("admin-status: listing Firestore collections failed: %v", err), err)
			break
		}
		st.Collections = append(st.Collections, col.ID)
	}
	return st
}

// asDocument round-trips the record through JSON so the mirrored document
// carries the same keys as the local file (id, created_at, ...), not Go
// field names.
func asDocument(record interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(err, "encoding record")
	}
	var doc map[string]interface{}
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "decoding record document")
	}
	return doc, nil
}
