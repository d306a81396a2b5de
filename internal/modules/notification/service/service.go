package service

import (
	"context"
	"fmt"
	"sync"

	"anoa.com/askify/internal/entity"
	"anoa.com/askify/internal/modules/notification/dto"
	notifRepo "anoa.com/askify/internal/modules/notification/repository"
	"anoa.com/askify/pkg/kvstore"
	"anoa.com/askify/pkg/logger"
)

// ReadMarksKey holds the ids a client has read, as a JSON array.
const ReadMarksKey = "notifications:read"

type NotificationService interface {
	GetNotifications(ctx context.Context, scope string, criteria Criteria) (*dto.NotificationListResponse, error)
	UnreadCount(ctx context.Context, scope string) (int, error)
	MarkAsRead(ctx context.Context, scope, id string) error
	MarkAllAsRead(ctx context.Context, scope string) error
	// WatchUnreadCount emits the unread count each time the scope's read
	// marks change. The channel closes after stop is called.
	WatchUnreadCount(ctx context.Context, scope string) (counts <-chan int, stop func(), err error)
}

type notificationService struct {
	repo  notifRepo.NotificationRepository
	store kvstore.Store
	// mu serialises read-modify-write of read marks within this process.
	mu sync.Mutex
}

func NewNotificationService(repo notifRepo.NotificationRepository, store kvstore.Store) NotificationService {
	return &notificationService{
		repo:  repo,
		store: store,
	}
}

// readMarks returns the ids read by scope. A client that never marked
// anything sees the feed's default read state.
func (s *notificationService) readMarks(ctx context.Context, scope string, all []entity.Notification) (map[string]bool, error) {
	var ids []string
	found, err := kvstore.GetJSON(ctx, s.store, kvstore.Key(scope, ReadMarksKey), &ids)
	if err != nil {
		return nil, fmt.Errorf("load read marks: %w", err)
	}

	marks := make(map[string]bool)
	if !found {
		for _, n := range all {
			if n.ReadByDefault {
				marks[n.ID] = true
			}
		}
		return marks, nil
	}

	for _, id := range ids {
		marks[id] = true
	}
	return marks, nil
}

func (s *notificationService) saveReadMarks(ctx context.Context, scope string, all []entity.Notification, marks map[string]bool) error {
	ids := make([]string, 0, len(marks))
	for _, n := range all {
		if marks[n.ID] {
			ids = append(ids, n.ID)
		}
	}
	return kvstore.SetJSON(ctx, s.store, kvstore.Key(scope, ReadMarksKey), ids)
}

func (s *notificationService) loadForScope(ctx context.Context, scope string) ([]entity.Notification, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load notifications: %w", err)
	}

	marks, err := s.readMarks(ctx, scope, all)
	if err != nil {
		return nil, err
	}
	for i := range all {
		all[i].IsRead = marks[all[i].ID]
	}
	return all, nil
}

func (s *notificationService) GetNotifications(ctx context.Context, scope string, criteria Criteria) (*dto.NotificationListResponse, error) {
	all, err := s.loadForScope(ctx, scope)
	if err != nil {
		return nil, err
	}

	return &dto.NotificationListResponse{
		Data:        FilterNotifications(all, criteria),
		Total:       len(all),
		UnreadCount: CountUnread(all),
	}, nil
}

func (s *notificationService) UnreadCount(ctx context.Context, scope string) (int, error) {
	all, err := s.loadForScope(ctx, scope)
	if err != nil {
		return 0, err
	}
	return CountUnread(all), nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, scope, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load notifications: %w", err)
	}
	marks, err := s.readMarks(ctx, scope, all)
	if err != nil {
		return err
	}
	if marks[id] {
		return nil
	}

	marks[id] = true
	return s.saveReadMarks(ctx, scope, all, marks)
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, scope string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load notifications: %w", err)
	}

	marks := make(map[string]bool, len(all))
	for _, n := range all {
		marks[n.ID] = true
	}
	return s.saveReadMarks(ctx, scope, all, marks)
}

func (s *notificationService) WatchUnreadCount(ctx context.Context, scope string) (<-chan int, func(), error) {
	ctx, cancel := context.WithCancel(ctx)

	updates, unsubscribe, err := s.store.Subscribe(ctx, kvstore.Key(scope, ReadMarksKey))
	if err != nil {
		cancel()
		return nil, nil, fmt.Errorf("subscribe read marks: %w", err)
	}

	counts := make(chan int, 1)
	go func() {
		defer close(counts)
		for range updates {
			count, err := s.UnreadCount(ctx, scope)
			if err != nil {
				logger.Log.Warnw("failed to recount unread notifications", "scope", scope, "error", err)
				continue
			}
			select {
			case counts <- count:
			case <-ctx.Done():
				return
			}
		}
	}()

	stop := func() {
		cancel()
		unsubscribe()
	}
	return counts, stop, nil
}
