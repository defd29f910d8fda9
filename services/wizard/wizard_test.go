package wizard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"menagio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]models.WizardSession
}

func newMemoryStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]models.WizardSession)}
}

func (st *memorySessionStore) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	copied := s
	return &copied, nil
}

func (st *memorySessionStore) Save(ctx context.Context, session *models.WizardSession) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[session.SessionID] = *session
	return nil
}

func (st *memorySessionStore) Delete(ctx context.Context, sessionID string) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, sessionID)
	return nil
}

type fakeBookingRepo struct {
	created   []*models.Booking
	createErr error
}

func (f *fakeBookingRepo) CreateBooking(b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, b)
	return nil
}

func (f *fakeBookingRepo) GetBookingByID(ctx context.Context, id string) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBookingRepo) ListBookings(ctx context.Context, q models.ListQuery) ([]models.Booking, int64, error) {
	return nil, 0, nil
}

func (f *fakeBookingRepo) ListBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return nil, nil
}

func (f *fakeBookingRepo) UpdateBookingStatus(ctx context.Context, id string, status models.BookingStatus) (*models.Booking, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeBookingRepo) CreateInvoice(inv *models.Invoice) error { return nil }

func (f *fakeBookingRepo) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return &models.DashboardStats{}, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) CreateUser(u *models.User) error { return nil }

func (f *fakeUserRepo) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	u, ok := f.users[userID]
	if !ok {
		return nil, errors.New("user not found")
	}
	return u, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) UpdateUser(u *models.User) error { return nil }

func (f *fakeUserRepo) DeleteUser(ctx context.Context, userID string) error { return nil }

func (f *fakeUserRepo) ListClients(ctx context.Context, q models.ListQuery) ([]models.User, int64, error) {
	return nil, 0, nil
}

func (f *fakeUserRepo) SetRole(ctx context.Context, userID string, role models.Role) error {
	return nil
}

type fakePaymentProcessor struct {
	err error
}

func (f *fakePaymentProcessor) Authorize(ctx context.Context, req models.PaymentRequest) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "pay_test", nil
}

func newWizard(store SessionStore, bookings *fakeBookingRepo, users *fakeUserRepo) *DefaultWizardService {
	if users == nil {
		users = &fakeUserRepo{}
	}
	return &DefaultWizardService{
		BookingRepo: bookings,
		UserRepo:    users,
		Sessions:    store,
		Payments:    &fakePaymentProcessor{},
		Logger:      zap.NewNop(),
	}
}

// middlewareSession mirrors the session shape the auth middleware builds from
// a bearer token: identity fields beyond the ID are empty.
func middlewareSession(userID string) models.AuthSession {
	return models.AuthSession{UserID: userID, Role: models.RoleClient, Token: "tok"}
}

func seedSession(t *testing.T, store SessionStore, session models.WizardSession) {
	t.Helper()
	require.NoError(t, store.Save(context.Background(), &session))
}

func TestNextAuthInterruptAtStepTwo(t *testing.T) {
	store := newMemoryStore()
	svc := newWizard(store, &fakeBookingRepo{}, nil)
	seedSession(t, store, models.WizardSession{
		SessionID:   "s1",
		CurrentStep: models.StepTasks,
		Draft:       models.BookingDraft{Tasks: []string{"kitchen"}},
	})

	// Leaving step 2 unauthenticated never advances, however often it is tried.
	for i := 0; i < 2; i++ {
		session, err := svc.Next(context.Background(), "s1")
		assert.ErrorIs(t, err, ErrAuthRequired)
		assert.Equal(t, models.StepTasks, session.CurrentStep)
		assert.True(t, session.AuthModalVisible)
		assert.True(t, session.AuthAdvancePending)
	}

	stored, err := store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, models.StepTasks, stored.CurrentStep)
}

func TestAuthenticateAdvancesExactlyOnce(t *testing.T) {
	store := newMemoryStore()
	svc := newWizard(store, &fakeBookingRepo{}, nil)
	seedSession(t, store, models.WizardSession{
		SessionID:   "s1",
		CurrentStep: models.StepTasks,
		Draft:       models.BookingDraft{Tasks: []string{"kitchen"}},
	})

	_, err := svc.Next(context.Background(), "s1")
	require.ErrorIs(t, err, ErrAuthRequired)

	session, err := svc.Authenticate(context.Background(), "s1", middlewareSession("alice"))
	require.NoError(t, err)
	assert.Equal(t, models.StepPersonalInfo, session.CurrentStep)
	assert.True(t, session.IsAuthenticated)
	assert.False(t, session.AuthModalVisible)
	assert.False(t, session.AuthAdvancePending)

	// A repeated sign-in (token refresh) must not move the wizard again.
	session, err = svc.Authenticate(context.Background(), "s1", middlewareSession("alice"))
	require.NoError(t, err)
	assert.Equal(t, models.StepPersonalInfo, session.CurrentStep)

	// Going back to step 2 after authenticating does not re-trigger the jump.
	session, err = svc.Back(context.Background(), "s1")
	require.NoError(t, err)
	require.Equal(t, models.StepTasks, session.CurrentStep)
	session, err = svc.Authenticate(context.Background(), "s1", middlewareSession("alice"))
	require.NoError(t, err)
	assert.Equal(t, models.StepTasks, session.CurrentStep)
}

func TestDismissAuthModalDropsPendingAdvance(t *testing.T) {
	store := newMemoryStore()
	svc := newWizard(store, &fakeBookingRepo{}, nil)
	seedSession(t, store, models.WizardSession{
		SessionID:   "s1",
		CurrentStep: models.StepTasks,
		Draft:       models.BookingDraft{Tasks: []string{"kitchen"}},
	})

	_, err := svc.Next(context.Background(), "s1")
	require.ErrorIs(t, err, ErrAuthRequired)

	session, err := svc.DismissAuthModal(context.Background(), "s1")
	require.NoError(t, err)
	assert.False(t, session.AuthModalVisible)
	assert.False(t, session.AuthAdvancePending)

	// Signing in later, with the interrupt dismissed, stays on step 2.
	session, err = svc.Authenticate(context.Background(), "s1", middlewareSession("alice"))
	require.NoError(t, err)
	assert.Equal(t, models.StepTasks, session.CurrentStep)
}

func TestAuthenticatePrefillsFromProfile(t *testing.T) {
	store := newMemoryStore()
	users := &fakeUserRepo{users: map[string]*models.User{
		"alice": {ID: "alice", FirstName: "Alice", LastName: "Martin", Email: "alice@example.com"},
	}}
	svc := newWizard(store, &fakeBookingRepo{}, users)
	seedSession(t, store, models.WizardSession{
		SessionID:   "s1",
		CurrentStep: models.StepTasks,
	})

	// The bearer token only carries the user ID; name and email must come
	// from the profile.
	session, err := svc.Authenticate(context.Background(), "s1", middlewareSession("alice"))
	require.NoError(t, err)
	assert.Equal(t, "Alice", session.Draft.FirstName)
	assert.Equal(t, "Martin", session.Draft.LastName)
	assert.Equal(t, "alice@example.com", session.Draft.Email)
}

func TestAuthenticateNeverOverwritesDraft(t *testing.T) {
	store := newMemoryStore()
	users := &fakeUserRepo{users: map[string]*models.User{
		"alice": {ID: "alice", FirstName: "Alice", LastName: "Martin", Email: "alice@example.com"},
	}}
	svc := newWizard(store, &fakeBookingRepo{}, users)
	seedSession(t, store, models.WizardSession{
		SessionID:   "s1",
		CurrentStep: models.StepTasks,
		Draft:       models.BookingDraft{FirstName: "Ali", Email: "work@example.com"},
	})

	session, err := svc.Authenticate(context.Background(), "s1", middlewareSession("alice"))
	require.NoError(t, err)
	assert.Equal(t, "Ali", session.Draft.FirstName, "typed value must win over the profile")
	assert.Equal(t, "work@example.com", session.Draft.Email)
	assert.Equal(t, "Martin", session.Draft.LastName, "empty fields still prefilled")
}

func TestStartPrefillsAuthenticatedIdentity(t *testing.T) {
	store := newMemoryStore()
	users := &fakeUserRepo{users: map[string]*models.User{
		"alice": {ID: "alice", FirstName: "Alice", LastName: "Martin", Email: "alice@example.com"},
	}}
	svc := newWizard(store, &fakeBookingRepo{}, users)

	auth := middlewareSession("alice")
	session, err := svc.Start(context.Background(), &auth, "")
	require.NoError(t, err)
	assert.True(t, session.IsAuthenticated)
	assert.Equal(t, "alice", session.UserID)
	assert.Equal(t, "Alice", session.Draft.FirstName)
	assert.Equal(t, "alice@example.com", session.Draft.Email)
}

func submittableSession() models.WizardSession {
	return models.WizardSession{
		SessionID:       "s1",
		CurrentStep:     models.StepConfirmation,
		IsAuthenticated: true,
		UserID:          "alice",
		Draft: models.BookingDraft{
			ServiceType: models.ServiceCleaning,
			Date:        "2026-09-20",
			Time:        "09:00",
			Hours:       3,
			Tasks:       []string{"kitchen", "windows"},
			FirstName:   "Alice",
			LastName:    "Martin",
			Email:       "alice@example.com",
			Phone:       "079 123 45 67",
		},
	}
}

func TestSubmitCreatesPendingBooking(t *testing.T) {
	store := newMemoryStore()
	repo := &fakeBookingRepo{}
	svc := newWizard(store, repo, nil)
	seedSession(t, store, submittableSession())

	booking, err := svc.Submit(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.True(t, strings.HasPrefix(booking.ID, "booking_"))
	assert.Equal(t, 3, booking.Hours)
	assert.Equal(t, []string{"kitchen", "windows"}, booking.Tasks)
	assert.Equal(t, "alice", booking.UserID)
	assert.Equal(t, QuotePrice(models.ServiceCleaning, 3, 0), booking.TotalPrice)
	require.Len(t, repo.created, 1)

	// The session is gone once the booking exists.
	_, err = store.Get(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSubmitOnlyFromConfirmationStep(t *testing.T) {
	store := newMemoryStore()
	svc := newWizard(store, &fakeBookingRepo{}, nil)
	session := submittableSession()
	session.CurrentStep = models.StepPayment
	seedSession(t, store, session)

	_, err := svc.Submit(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrNotConfirmationStep)
}

func TestSubmitFailureKeepsSession(t *testing.T) {
	store := newMemoryStore()
	repo := &fakeBookingRepo{createErr: errors.New("write timeout")}
	svc := newWizard(store, repo, nil)
	seedSession(t, store, submittableSession())

	_, err := svc.Submit(context.Background(), "s1")
	require.Error(t, err)

	kept, err := store.Get(context.Background(), "s1")
	require.NoError(t, err, "a failed submit must keep the session for retry")
	assert.Equal(t, models.StepConfirmation, kept.CurrentStep)
	assert.False(t, kept.IsSubmitting, "the submit guard must be released for retry")
	assert.Equal(t, 3, kept.Draft.Hours)
}
