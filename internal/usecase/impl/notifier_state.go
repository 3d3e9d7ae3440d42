package impl

import (
	"sync"

	"wastetrack/internal/domain/entity"
	"wastetrack/internal/usecase"

	"github.com/google/uuid"
)

// notificationState is the per-resident dedup state of the notifier.
// Callers must hold mu while reading or writing any field.
type notificationState struct {
	mu sync.Mutex

	// Daily schedule counter; reset when the local date changes.
	countDate             string
	countRestored         bool
	scheduleNotifiedCount int

	lastReportCheck map[uuid.UUID]entity.ReportStatus
	notifiedTrucks  map[string]struct{}

	// Last resident fix seen by a proximity check, used for zone lookup.
	lastFix *usecase.Coordinates
}

func newNotificationState() *notificationState {
	return &notificationState{
		lastReportCheck: make(map[uuid.UUID]entity.ReportStatus),
		notifiedTrucks:  make(map[string]struct{}),
	}
}

// stateRegistry owns one notificationState per user for the life of the process.
type stateRegistry struct {
	mu     sync.Mutex
	states map[uuid.UUID]*notificationState
}

func newStateRegistry() *stateRegistry {
	return &stateRegistry{states: make(map[uuid.UUID]*notificationState)}
}

// acquire returns the user's state locked. The caller must call release.
func (r *stateRegistry) acquire(userID uuid.UUID) *notificationState {
	r.mu.Lock()
	state, ok := r.states[userID]
	if !ok {
		state = newNotificationState()
		r.states[userID] = state
	}
	r.mu.Unlock()

	state.mu.Lock()

	return state
}

func (s *notificationState) release() {
	s.mu.Unlock()
}
