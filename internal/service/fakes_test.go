package service

import (
	"context"
	"sync"
	"time"

	"dealership/internal/model"
	ws "dealership/internal/websocket"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory fakes implementing the repository interfaces so service logic can
// be exercised without a database. Uniqueness rules mirror the real indexes by
// returning gorm.ErrDuplicatedKey.

type fakeTxManager struct{}

func (f *fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type fakeApplicationStore struct {
	mu   sync.Mutex
	apps map[uuid.UUID]model.Application
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{apps: make(map[uuid.UUID]model.Application)}
}

func (f *fakeApplicationStore) Create(ctx context.Context, app *model.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.apps {
		if existing.TrackingID == app.TrackingID {
			return gorm.ErrDuplicatedKey
		}
	}
	app.ID = uuid.New()
	app.CreatedAt = time.Now()
	app.UpdatedAt = app.CreatedAt
	f.apps[app.ID] = *app
	return nil
}

func (f *fakeApplicationStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &app, nil
}

func (f *fakeApplicationStore) GetByTrackingID(ctx context.Context, trackingID string) (*model.Application, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, app := range f.apps {
		if app.TrackingID == trackingID {
			found := app
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeApplicationStore) List(ctx context.Context, skip, limit int) ([]model.Application, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]model.Application, 0, len(f.apps))
	for _, app := range f.apps {
		all = append(all, app)
	}
	total := int64(len(all))
	if skip >= len(all) {
		return []model.Application{}, total, nil
	}
	end := skip + limit
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], total, nil
}

func (f *fakeApplicationStore) Update(ctx context.Context, app *model.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.apps[app.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	app.UpdatedAt = time.Now()
	f.apps[app.ID] = *app
	return nil
}

type fakeStatusStore struct {
	mu      sync.Mutex
	updates []model.StatusUpdate
}

func (f *fakeStatusStore) Create(ctx context.Context, update *model.StatusUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	update.ID = uuid.New()
	update.CreatedAt = time.Now()
	f.updates = append(f.updates, *update)
	return nil
}

func (f *fakeStatusStore) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]model.StatusUpdate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []model.StatusUpdate
	for _, u := range f.updates {
		if u.ApplicationID == applicationID {
			result = append(result, u)
		}
	}
	return result, nil
}

type fakeLetterStore struct {
	mu      sync.Mutex
	letters map[uuid.UUID]model.ApprovalLetter
}

func newFakeLetterStore() *fakeLetterStore {
	return &fakeLetterStore{letters: make(map[uuid.UUID]model.ApprovalLetter)}
}

func (f *fakeLetterStore) Create(ctx context.Context, letter *model.ApprovalLetter) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.letters[letter.ApplicationID]; ok {
		return gorm.ErrDuplicatedKey
	}
	for _, existing := range f.letters {
		if existing.DealershipID == letter.DealershipID {
			return gorm.ErrDuplicatedKey
		}
	}
	letter.ID = uuid.New()
	letter.CreatedAt = time.Now()
	f.letters[letter.ApplicationID] = *letter
	return nil
}

func (f *fakeLetterStore) GetByApplicationID(ctx context.Context, applicationID uuid.UUID) (*model.ApprovalLetter, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	letter, ok := f.letters[applicationID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &letter, nil
}

type fakePaymentStore struct {
	mu       sync.Mutex
	payments map[uuid.UUID]model.Payment
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{payments: make(map[uuid.UUID]model.Payment)}
}

func (f *fakePaymentStore) Create(ctx context.Context, payment *model.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment.ID = uuid.New()
	payment.CreatedAt = time.Now()
	f.payments[payment.ID] = *payment
	return nil
}

func (f *fakePaymentStore) GetByID(ctx context.Context, id uuid.UUID) (*model.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, ok := f.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &payment, nil
}

func (f *fakePaymentStore) ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]model.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []model.Payment
	for _, p := range f.payments {
		if p.ApplicationID == applicationID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePaymentStore) Update(ctx context.Context, payment *model.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.payments[payment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if payment.TransactionID != nil {
		for id, other := range f.payments {
			if id != payment.ID && other.TransactionID != nil && *other.TransactionID == *payment.TransactionID {
				return gorm.ErrDuplicatedKey
			}
		}
	}
	payment.UpdatedAt = time.Now()
	f.payments[payment.ID] = *payment
	return nil
}

type fakeSupportStore struct {
	mu      sync.Mutex
	tickets map[uuid.UUID]model.SupportRequest
}

func newFakeSupportStore() *fakeSupportStore {
	return &fakeSupportStore{tickets: make(map[uuid.UUID]model.SupportRequest)}
}

func (f *fakeSupportStore) Create(ctx context.Context, req *model.SupportRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	req.ID = uuid.New()
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	f.tickets[req.ID] = *req
	return nil
}

func (f *fakeSupportStore) GetByID(ctx context.Context, id uuid.UUID) (*model.SupportRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ticket, ok := f.tickets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &ticket, nil
}

func (f *fakeSupportStore) List(ctx context.Context, skip, limit int) ([]model.SupportRequest, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	all := make([]model.SupportRequest, 0, len(f.tickets))
	for _, t := range f.tickets {
		all = append(all, t)
	}
	total := int64(len(all))
	if skip >= len(all) {
		return []model.SupportRequest{}, total, nil
	}
	end := skip + limit
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], total, nil
}

func (f *fakeSupportStore) Update(ctx context.Context, req *model.SupportRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tickets[req.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	req.UpdatedAt = time.Now()
	f.tickets[req.ID] = *req
	return nil
}

type fakeHub struct {
	mu     sync.Mutex
	events []ws.StatusEvent
}

func (f *fakeHub) BroadcastStatusEvent(event ws.StatusEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}
