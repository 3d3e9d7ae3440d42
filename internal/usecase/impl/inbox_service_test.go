package impl

import (
	"context"
	"testing"

	"wastetrack/internal/domain/entity"
	domainerrors "wastetrack/internal/domain/errors"
	"wastetrack/internal/domain/repository"
	mockRepo "wastetrack/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInbox_ListClampsPaging(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	svc := NewInboxService(repo)
	ctx := context.Background()
	userID := uuid.New()

	repo.EXPECT().FindByUser(ctx, userID, 20, 0).Return([]*entity.Notification{{ID: uuid.New()}}, nil).Once()
	repo.EXPECT().FindByUser(ctx, userID, 100, 0).Return(nil, nil).Once()

	got, err := svc.List(ctx, userID, 0, -5)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.List(ctx, userID, 1000, 0)
	require.NoError(t, err)
}

func TestInbox_ReadAndDelete(t *testing.T) {
	f := &feed{}
	svc := NewInboxService(f)
	ctx := context.Background()
	userID := uuid.New()
	first := &entity.Notification{ID: uuid.New(), UserID: userID, Title: "Truck Nearby"}
	second := &entity.Notification{ID: uuid.New(), UserID: userID, Title: "Collection Started"}
	require.NoError(t, f.Create(ctx, first))
	require.NoError(t, f.Create(ctx, second))

	unread, err := svc.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread)

	require.NoError(t, svc.MarkRead(ctx, userID, first.ID))
	updated, err := svc.MarkAllRead(ctx, userID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, updated)

	require.NoError(t, svc.Delete(ctx, userID, second.ID))
	list, err := svc.List(ctx, userID, 10, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, first.ID, list[0].ID)
}

func TestInbox_ForeignNotificationIsNotFound(t *testing.T) {
	repo := mockRepo.NewMockNotificationRepository(t)
	svc := NewInboxService(repo)
	ctx := context.Background()
	userID, id := uuid.New(), uuid.New()

	repo.EXPECT().MarkRead(ctx, id, userID).Return(repository.ErrNotificationNotFound).Once()
	repo.EXPECT().Delete(ctx, id, userID).Return(repository.ErrNotificationNotFound).Once()

	assert.ErrorIs(t, svc.MarkRead(ctx, userID, id), domainerrors.ErrNotificationNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, userID, id), domainerrors.ErrNotificationNotFound)
}
