package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"wastetrack/config"
	"wastetrack/internal/domain/entity"
	"wastetrack/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.DiscardHandler)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Timezone = "Asia/Manila"
	cfg.Notifier = &config.NotifierConfig{
		ProximityRadiusMeters: 400,
		DailyScheduleCap:      3,
		ZoneMatchKm:           2,
		Zones: []config.ZoneConfig{
			{Name: "San Isidro", Latitude: 14.6836, Longitude: 121.0760},
		},
	}
	cfg.Route = &config.RouteConfig{StatusCacheTTL: 30 * time.Second}

	return cfg
}

// manilaClock returns a settable clock starting at the given local time in Asia/Manila.
func manilaClock(t *testing.T, layout string) (*testClock, *time.Location) {
	t.Helper()

	loc, err := time.LoadLocation("Asia/Manila")
	require.NoError(t, err)
	start, err := time.ParseInLocation("2006-01-02 15:04", layout, loc)
	require.NoError(t, err)

	return &testClock{now: start}, loc
}

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// feed is an in-memory notification repository.
type feed struct {
	mu    sync.Mutex
	items []*entity.Notification
	fail  error
}

var _ repository.NotificationRepository = (*feed)(nil)

func (f *feed) Create(_ context.Context, n *entity.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail != nil {
		return f.fail
	}
	f.items = append(f.items, n)

	return nil
}

func (f *feed) FindByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.Notification
	for _, n := range slices.Backward(f.items) {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}

	return out[offset:min(len(out), offset+limit)], nil
}

func (f *feed) MarkRead(_ context.Context, id, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, n := range f.items {
		if n.ID == id && n.UserID == userID {
			n.Read = true

			return nil
		}
	}

	return repository.ErrNotificationNotFound
}

func (f *feed) MarkAllRead(_ context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var changed int64
	for _, n := range f.items {
		if n.UserID == userID && !n.Read {
			n.Read = true
			changed++
		}
	}

	return changed, nil
}

func (f *feed) Delete(_ context.Context, id, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, n := range f.items {
		if n.ID == id && n.UserID == userID {
			f.items = slices.Delete(f.items, i, i+1)

			return nil
		}
	}

	return repository.ErrNotificationNotFound
}

func (f *feed) CountUnread(_ context.Context, userID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var unread int64
	for _, n := range f.items {
		if n.UserID == userID && !n.Read {
			unread++
		}
	}

	return unread, nil
}

func (f *feed) titles(userID uuid.UUID) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []string
	for _, n := range f.items {
		if n.UserID == userID {
			out = append(out, n.Title)
		}
	}

	return out
}

func (f *feed) last() *entity.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.items) == 0 {
		return nil
	}

	return f.items[len(f.items)-1]
}

// statusStore is an in-memory collection status repository honouring the upsert guard.
type statusStore struct {
	mu   sync.Mutex
	rows map[entity.CollectionKey]*entity.CollectionStatusRecord
	fail error
}

var _ repository.CollectionStatusRepository = (*statusStore)(nil)

func newStatusStore() *statusStore {
	return &statusStore{rows: make(map[entity.CollectionKey]*entity.CollectionStatusRecord)}
}

func (s *statusStore) Find(_ context.Context, key entity.CollectionKey) (*entity.CollectionStatusRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[key]
	if !ok {
		return nil, repository.ErrCollectionStatusNotFound
	}
	cp := *row

	return &cp, nil
}

func (s *statusStore) Upsert(_ context.Context, record *entity.CollectionStatusRecord, replaceable ...entity.CollectionStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return false, s.fail
	}

	key := record.Key()
	if existing, ok := s.rows[key]; ok {
		if len(replaceable) > 0 && !slices.Contains(replaceable, existing.Status) {
			*record = *existing

			return false, nil
		}
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
	}
	cp := *record
	s.rows[key] = &cp

	return true, nil
}

func (s *statusStore) FindByCollectorAndDate(_ context.Context, collectorID uuid.UUID, date string) ([]*entity.CollectionStatusRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.CollectionStatusRecord
	for _, row := range s.rows {
		if row.CollectorID == collectorID && row.CollectionDate == date {
			cp := *row
			out = append(out, &cp)
		}
	}

	return out, nil
}

func (s *statusStore) status(scheduleID uuid.UUID, street, date string) (entity.CollectionStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[entity.CollectionKey{ScheduleID: scheduleID, StreetName: street, CollectionDate: date}]
	if !ok {
		return "", false
	}

	return row.Status, true
}

// truckStore is an in-memory truck status repository.
type truckStore struct {
	mu     sync.Mutex
	trucks map[string]*entity.TruckStatus
}

var _ repository.TruckStatusRepository = (*truckStore)(nil)

func newTruckStore(trucks ...*entity.TruckStatus) *truckStore {
	s := &truckStore{trucks: make(map[string]*entity.TruckStatus)}
	for _, t := range trucks {
		s.trucks[t.TruckID] = t
	}

	return s
}

func (s *truckStore) Upsert(_ context.Context, status *entity.TruckStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *status
	s.trucks[status.TruckID] = &cp

	return nil
}

func (s *truckStore) FindByID(_ context.Context, truckID string) (*entity.TruckStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trucks[truckID]
	if !ok {
		return nil, repository.ErrTruckStatusNotFound
	}
	cp := *t

	return &cp, nil
}

func (s *truckStore) FindAll(_ context.Context) ([]*entity.TruckStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.TruckStatus, 0, len(s.trucks))
	for _, t := range s.trucks {
		cp := *t
		out = append(out, &cp)
	}

	return out, nil
}

func (s *truckStore) FindCollecting(ctx context.Context) ([]*entity.TruckStatus, error) {
	all, _ := s.FindAll(ctx)
	out := all[:0]
	for _, t := range all {
		if t.IsCollecting && t.HasFix() {
			out = append(out, t)
		}
	}

	return out, nil
}

// txRunner runs transactions directly against the in-memory stores.
type txRunner struct {
	statuses *statusStore
	trucks   *truckStore
}

func (r *txRunner) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(r)
}

func (r *txRunner) NewTruckStatusRepository() repository.TruckStatusRepository {
	return r.trucks
}

func (r *txRunner) NewCollectionStatusRepository() repository.CollectionStatusRepository {
	return r.statuses
}

func ptr[T any](v T) *T {
	return &v
}
