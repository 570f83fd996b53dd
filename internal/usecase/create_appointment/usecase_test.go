package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vialibre/dispatch-service/internal/domain"
	catalogRepo "github.com/vialibre/dispatch-service/internal/infra/storage/catalog"
	"github.com/vialibre/dispatch-service/internal/usecase/calculate_quote"
	"github.com/vialibre/dispatch-service/internal/usecase/check_availability"
	"github.com/vialibre/dispatch-service/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	created *domain.Appointment
	swept   int
}

func (f *fakeRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	stored := *appt
	stored.ID = 100
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	f.created = &stored
	return &stored, nil
}

func (f *fakeRepo) CompleteOverdue(ctx context.Context, now time.Time) (int64, error) {
	f.swept++
	return 0, nil
}

type fakeCatalog struct {
	services map[int64]*domain.Service
}

func (f *fakeCatalog) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return svc, nil
}

type fakeQuoteCalc struct {
	quote   *domain.Quote
	err     error
	lastReq *calculate_quote.Request
}

func (f *fakeQuoteCalc) Execute(ctx context.Context, req *calculate_quote.Request) (*calculate_quote.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &calculate_quote.Response{Quote: f.quote}, nil
}

type fakeAvailability struct {
	available bool
	calls     int
}

func (f *fakeAvailability) Execute(ctx context.Context, req *check_availability.Request) (*check_availability.Response, error) {
	f.calls++
	return &check_availability.Response{Available: f.available}, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func simpleQuote(total float64) *domain.Quote {
	return &domain.Quote{
		DistanceKm:    10,
		TripType:      domain.TripSencillo,
		EquipmentType: domain.EquipmentRampa,
		Pricing: domain.PricingBreakdown{
			BasePrice:  total,
			Surcharges: []domain.Surcharge{},
			TotalPrice: total,
		},
	}
}

type fixture struct {
	repo         *fakeRepo
	catalog      *fakeCatalog
	quoteCalc    *fakeQuoteCalc
	availability *fakeAvailability
	tx           *fakeTxManager
	uc           *UseCase
}

func newFixture(quote *domain.Quote) *fixture {
	f := &fixture{
		repo: &fakeRepo{},
		catalog: &fakeCatalog{services: map[int64]*domain.Service{
			5: {ID: 5, Name: "Transporte sencillo", Category: domain.CategorySencillo, DurationMinutes: 45, IsActive: true},
		}},
		quoteCalc:    &fakeQuoteCalc{quote: quote},
		availability: &fakeAvailability{available: true},
		tx:           &fakeTxManager{},
	}
	f.uc = NewUseCase(f.repo, f.catalog, f.quoteCalc, f.availability, f.tx, nopLogger{})
	return f
}

func validRequest() *Request {
	return &Request{
		CustomerID:         1,
		TripType:           string(domain.TripSencillo),
		EquipmentType:      string(domain.EquipmentRampa),
		ScheduledAt:        time.Now().Add(24 * time.Hour).Truncate(time.Minute),
		DurationMinutes:    90,
		OriginAddress:      "Calle 10 #43-12, Medellín",
		DestinationAddress: "Carrera 48 #20-114, Medellín",
		DistanceKm:         ptr.Ptr(10.0),
	}
}

func TestCreateAppointment_BooksPendingWithFrozenQuote(t *testing.T) {
	f := newFixture(simpleQuote(30000))

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	require.NotNil(t, resp.Appointment)
	assert.Equal(t, int64(100), resp.Appointment.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Appointment.Status)
	assert.Equal(t, 30000.0, resp.Appointment.TotalAmount)
	assert.Equal(t, 90, resp.Appointment.EstimatedDuration)
	assert.Equal(t, 1, f.tx.calls)
	assert.Equal(t, 1, f.repo.swept)

	expected, qerr := f.quoteCalc.quote.Snapshot()
	require.NoError(t, qerr)
	assert.JSONEq(t, string(expected), string(f.repo.created.PricingSnapshot))
	assert.Equal(t, domain.EquipmentRampa, f.repo.created.EquipmentType)
}

func TestCreateAppointment_ConfirmedStartsScheduled(t *testing.T) {
	f := newFixture(simpleQuote(30000))

	req := validRequest()
	req.Confirmed = true

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusScheduled), resp.Appointment.Status)
}

func TestCreateAppointment_ConflictRejectsBooking(t *testing.T) {
	f := newFixture(simpleQuote(30000))
	f.availability.available = false

	req := validRequest()
	req.StaffID = ptr.Ptr(int64(2))

	_, err := f.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrTimeSlotConflict)
	assert.Nil(t, f.repo.created)
	assert.Equal(t, 1, f.availability.calls)
}

func TestCreateAppointment_SkipsAvailabilityWithoutParty(t *testing.T) {
	f := newFixture(simpleQuote(30000))
	f.availability.available = false

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, 0, f.availability.calls)
}

func TestCreateAppointment_DurationFromService(t *testing.T) {
	f := newFixture(simpleQuote(30000))

	req := validRequest()
	req.DurationMinutes = 0
	req.ServiceID = ptr.Ptr(int64(5))

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 45, resp.Appointment.EstimatedDuration)
}

func TestCreateAppointment_DefaultDuration(t *testing.T) {
	f := newFixture(simpleQuote(30000))

	req := validRequest()
	req.DurationMinutes = 0

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 60, resp.Appointment.EstimatedDuration)
}

func TestCreateAppointment_ServiceOptionPriceWins(t *testing.T) {
	quote := simpleQuote(30000)
	quote.Options = []domain.ServiceOption{{
		ServiceID:   5,
		ServiceName: "Transporte sencillo",
		Category:    domain.CategorySencillo,
		Pricing: domain.PricingBreakdown{
			BasePrice:  42000,
			TotalPrice: 42000,
		},
	}}
	f := newFixture(quote)

	req := validRequest()
	req.ServiceID = ptr.Ptr(int64(5))

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 42000.0, resp.Appointment.TotalAmount)
}

func TestCreateAppointment_PastDateRejected(t *testing.T) {
	f := newFixture(simpleQuote(30000))

	req := validRequest()
	req.ScheduledAt = time.Now().Add(-time.Hour)

	_, err := f.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestCreateAppointment_MissingAddressesRejected(t *testing.T) {
	f := newFixture(simpleQuote(30000))

	req := validRequest()
	req.DestinationAddress = ""

	_, err := f.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateAppointment_UnknownServiceRejected(t *testing.T) {
	f := newFixture(simpleQuote(30000))

	req := validRequest()
	req.DurationMinutes = 0
	req.ServiceID = ptr.Ptr(int64(99))

	_, err := f.uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCreateAppointment_DistanceUnavailablePropagated(t *testing.T) {
	f := newFixture(nil)
	f.quoteCalc.err = calculate_quote.ErrDistanceUnavailable

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrDistanceUnavailable)
}
