package catalog_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zyraworkhub/zyra/core/catalog"
)

var ctx = context.Background()

type stubRepository struct {
	entries map[string][]catalog.Entry
	err     error
}

func (r stubRepository) ListEntries(_ context.Context, collection string) ([]catalog.Entry, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.entries[collection], nil
}

func TestService_Projects(t *testing.T) {
	svc := catalog.NewService(stubRepository{entries: map[string][]catalog.Entry{
		catalog.CollectionProjects: {
			{"id": "p1", "featured": true},
			{"id": "p2", "featured": false},
			{"id": "p3", "featured": "true"}, // string, not bool: excluded from featured
			{"id": "p4"},
			{"id": "p5", "featured": true},
		},
	}})

	t.Run("all", func(t *testing.T) {
		got, err := svc.Projects(ctx, false, 0)
		require.NoError(t, err)
		assert.Len(t, got, 5)
	})

	t.Run("featured only", func(t *testing.T) {
		got, err := svc.Projects(ctx, true, 0)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "p1", got[0]["id"])
		assert.Equal(t, "p5", got[1]["id"])
	})

	t.Run("limit", func(t *testing.T) {
		got, err := svc.Projects(ctx, false, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "p1", got[0]["id"])
	})

	t.Run("limit beyond length", func(t *testing.T) {
		got, err := svc.Projects(ctx, true, 10)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("featured and limit", func(t *testing.T) {
		got, err := svc.Projects(ctx, true, 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "p1", got[0]["id"])
	})
}

func TestService_Feedback(t *testing.T) {
	svc := catalog.NewService(stubRepository{entries: map[string][]catalog.Entry{
		catalog.CollectionFeedback: {
			{"id": "f1", "approved": true},
			{"id": "f2"},
			{"id": "f3", "approved": true},
		},
	}})

	got, err := svc.Feedback(ctx, true, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "f1", got[0]["id"])
	assert.Equal(t, "f3", got[1]["id"])
}

func TestService_Webinars(t *testing.T) {
	svc := catalog.NewService(stubRepository{entries: map[string][]catalog.Entry{
		catalog.CollectionWebinars: {{"id": "w1"}, {"id": "w2"}},
	}})

	got, err := svc.Webinars(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestService_repositoryError(t *testing.T) {
	wantErr := errors.New("boom")
	svc := catalog.NewService(stubRepository{err: wantErr})

	_, err := svc.Projects(ctx, false, 0)
	assert.ErrorIs(t, err, wantErr)
}
