package service

import (
	"context"
	"testing"
	"time"

	"anoa.com/askify/internal/bootstrap"
	notifRepo "anoa.com/askify/internal/modules/notification/repository"
	"anoa.com/askify/pkg/apperror"
	"anoa.com/askify/pkg/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) NotificationService {
	t.Helper()
	store := kvstore.NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	repo := notifRepo.NewMemoryNotificationRepository(bootstrap.MockNotifications())
	return NewNotificationService(repo, store)
}

func TestNotificationService_DefaultReadState(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	res, err := svc.GetNotifications(ctx, "client-a", Criteria{Filter: FilterAll})
	require.NoError(t, err)
	assert.Equal(t, 6, res.Total)
	assert.Equal(t, 2, res.UnreadCount)
	assert.False(t, res.Data[0].IsRead)
	assert.True(t, res.Data[2].IsRead)
}

func TestNotificationService_MarkAsRead(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.MarkAsRead(ctx, "client-a", "1"))
	count, err := svc.UnreadCount(ctx, "client-a")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// marking twice is harmless
	require.NoError(t, svc.MarkAsRead(ctx, "client-a", "1"))

	// other clients keep their own marks
	count, err = svc.UnreadCount(ctx, "client-b")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	err = svc.MarkAsRead(ctx, "client-a", "99")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestNotificationService_MarkAllAsRead(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.MarkAllAsRead(ctx, "client-a"))

	res, err := svc.GetNotifications(ctx, "client-a", Criteria{Filter: FilterUnread})
	require.NoError(t, err)
	assert.Empty(t, res.Data)
	assert.Equal(t, 0, res.UnreadCount)
}

func TestNotificationService_WatchUnreadCount(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	counts, stop, err := svc.WatchUnreadCount(ctx, "client-a")
	require.NoError(t, err)

	require.NoError(t, svc.MarkAsRead(ctx, "client-a", "2"))

	select {
	case got := <-counts:
		assert.Equal(t, 1, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no unread count update")
	}

	stop()
	_, open := <-counts
	for open {
		_, open = <-counts
	}
}
