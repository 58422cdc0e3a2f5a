package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"flightbook/config"
	"flightbook/infras/kafka"
	kafkaMocks "flightbook/infras/kafka/mocks"
	"flightbook/infras/metrics"
	"flightbook/infras/otel/mocks"
	flightMocks "flightbook/internal/domains/flight/mocks"
	flightModel "flightbook/internal/domains/flight/model"
	ticketMocks "flightbook/internal/domains/ticket/mocks"
	"flightbook/internal/domains/ticket/model"
	"flightbook/internal/domains/ticket/service"
	userMocks "flightbook/internal/domains/user/mocks"
	userModel "flightbook/internal/domains/user/model"
	cacheMocks "flightbook/shared/cache/mocks"
	"flightbook/shared/failure"
	"flightbook/shared/saga"
)

type fixture struct {
	repo           *ticketMocks.MockTicket
	seatRepo       *ticketMocks.MockSeatBooking
	flightRepo     *flightMocks.MockFlight
	userTicketRepo *userMocks.MockUserTicket
	publisher      *kafkaMocks.MockPublisher
	cache          *cacheMocks.MockRedisCache
	metrics        *metrics.Metrics
	svc            service.Ticket
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:           ticketMocks.NewMockTicket(ctrl),
		seatRepo:       ticketMocks.NewMockSeatBooking(ctrl),
		flightRepo:     flightMocks.NewMockFlight(ctrl),
		userTicketRepo: userMocks.NewMockUserTicket(ctrl),
		publisher:      kafkaMocks.NewMockPublisher(ctrl),
		cache:          cacheMocks.NewMockRedisCache(ctrl),
		metrics:        metrics.NewMetrics("test"),
	}

	cfg := &config.Config{}
	cfg.Kafka.Topics.Ticket = "tickets"

	f.svc = service.New(f.repo, f.seatRepo, f.flightRepo, f.userTicketRepo, f.publisher, f.metrics, cfg, f.cache, mocks.NewOtel())

	return f
}

func (f fixture) allowSideEffects() {
	f.allowInvalidation()
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (f fixture) allowInvalidation() {
	f.cache.EXPECT().Save(gomock.Any(), "generation:flight", gomock.Any(), 0).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), "flight*").Return(nil).AnyTimes()
}

type scenario struct {
	flightID primitive.ObjectID
	ticket   model.Ticket
	bookings []model.SeatBooking
}

func newScenario() scenario {
	flightID := primitive.NewObjectID()
	bookings := []model.SeatBooking{
		{ID: primitive.NewObjectID(), Flight: flightID, User: "user-1", Seat: "12A", Ticket: "TCK-1", Price: 100},
		{ID: primitive.NewObjectID(), Flight: flightID, User: "user-1", Seat: "12B", Ticket: "TCK-1", Price: 100},
	}

	return scenario{
		flightID: flightID,
		ticket: model.Ticket{
			ID:      primitive.NewObjectID(),
			UID:     "TCK-1",
			User:    "user-1",
			Flight:  flightID,
			Tickets: []primitive.ObjectID{bookings[0].ID, bookings[1].ID},
		},
		bookings: bookings,
	}
}

// expectLookups wires the reads that happen before the saga starts.
func (f fixture) expectLookups(s scenario) {
	f.repo.EXPECT().GetByUID(gomock.Any(), "TCK-1", "user-1").Return(s.ticket, nil)
	f.seatRepo.EXPECT().FindByIDs(gomock.Any(), s.ticket.Tickets).Return(s.bookings, nil)
	f.flightRepo.EXPECT().Get(gomock.Any(), s.flightID).Return(flightModel.Flight{ID: s.flightID, BookedSeats: []string{"12A", "12B"}}, nil)
}

func compensations(m *metrics.Metrics, step, result string) float64 {
	return testutil.ToFloat64(m.Compensations.WithLabelValues("cancel_ticket", step, result))
}

func TestTicketService_Cancel(t *testing.T) {
	seats := []string{"12A", "12B"}

	t.Run("releases seats and removes every record", func(t *testing.T) {
		f := newFixture(t)
		s := newScenario()
		f.allowSideEffects()
		f.expectLookups(s)

		gomock.InOrder(
			f.flightRepo.EXPECT().ReleaseSeats(gomock.Any(), s.flightID, seats).Return(nil),
			f.seatRepo.EXPECT().DeleteByIDs(gomock.Any(), s.ticket.Tickets).Return(int64(2), nil),
			f.userTicketRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil),
			f.repo.EXPECT().Delete(gomock.Any(), s.ticket.ID).Return(int64(1), nil),
		)

		res, err := f.svc.Cancel(context.Background(), "user-1", "TCK-1")

		require.NoError(t, err)
		assert.Equal(t, "TCK-1", res.TicketID)
		assert.Equal(t, seats, res.ReleasedSeats)
		assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.TicketsCancelled))
	})

	t.Run("publishes ticket.cancelled", func(t *testing.T) {
		f := newFixture(t)
		s := newScenario()
		f.allowInvalidation()
		f.expectLookups(s)

		published := make(chan kafka.Event, 1)
		f.publisher.EXPECT().
			Publish(gomock.Any(), "tickets", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				published <- messages[0].Value.(kafka.Event)

				return nil
			})

		f.flightRepo.EXPECT().ReleaseSeats(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.seatRepo.EXPECT().DeleteByIDs(gomock.Any(), gomock.Any()).Return(int64(2), nil)
		f.userTicketRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)

		_, err := f.svc.Cancel(context.Background(), "user-1", "TCK-1")
		require.NoError(t, err)

		event := <-published
		assert.Equal(t, kafka.EventTicketCancelled, event.Type)
		assert.Equal(t, "TCK-1", event.AggregateID)
		assert.Equal(t, "user-1", event.ActorID)
	})

	t.Run("skips seat release when the flight is gone", func(t *testing.T) {
		f := newFixture(t)
		s := newScenario()
		f.allowSideEffects()

		f.repo.EXPECT().GetByUID(gomock.Any(), "TCK-1", "user-1").Return(s.ticket, nil)
		f.seatRepo.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).Return(s.bookings, nil)
		f.flightRepo.EXPECT().Get(gomock.Any(), s.flightID).Return(flightModel.Flight{}, nil)
		f.seatRepo.EXPECT().DeleteByIDs(gomock.Any(), gomock.Any()).Return(int64(2), nil)
		f.userTicketRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil)

		_, err := f.svc.Cancel(context.Background(), "user-1", "TCK-1")

		require.NoError(t, err)
	})

	t.Run("ticket not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetByUID(gomock.Any(), "TCK-404", "user-1").Return(model.Ticket{}, nil)

		_, err := f.svc.Cancel(context.Background(), "user-1", "TCK-404")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "Ticket not found", err.Error())
	})

	t.Run("ticket without seat bookings", func(t *testing.T) {
		f := newFixture(t)
		s := newScenario()

		f.repo.EXPECT().GetByUID(gomock.Any(), "TCK-1", "user-1").Return(s.ticket, nil)
		f.seatRepo.EXPECT().FindByIDs(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := f.svc.Cancel(context.Background(), "user-1", "TCK-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
		assert.Equal(t, "No bookings found", err.Error())
	})

	t.Run("lookup error", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetByUID(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Ticket{}, errors.New("db down"))

		_, err := f.svc.Cancel(context.Background(), "user-1", "TCK-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("seat booking delete fails, seats are reserved again", func(t *testing.T) {
		f := newFixture(t)
		s := newScenario()
		f.expectLookups(s)

		gomock.InOrder(
			f.flightRepo.EXPECT().ReleaseSeats(gomock.Any(), s.flightID, seats).Return(nil),
			f.seatRepo.EXPECT().DeleteByIDs(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("write failed")),
			f.flightRepo.EXPECT().ReserveSeats(gomock.Any(), s.flightID, seats).Return(nil),
		)

		_, err := f.svc.Cancel(context.Background(), "user-1", "TCK-1")

		require.Error(t, err)

		var sagaErr *saga.Error
		require.ErrorAs(t, err, &sagaErr)
		assert.Equal(t, "delete_seat_bookings", sagaErr.Step)
		assert.True(t, sagaErr.Compensated())
		assert.Equal(t, float64(1), compensations(f.metrics, "release_seats", saga.ResultOK))
		assert.Equal(t, float64(0), testutil.ToFloat64(f.metrics.TicketsCancelled))
	})

	t.Run("ticket delete fails, earlier steps are undone newest first", func(t *testing.T) {
		f := newFixture(t)
		s := newScenario()
		f.expectLookups(s)

		gomock.InOrder(
			f.flightRepo.EXPECT().ReleaseSeats(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
			f.seatRepo.EXPECT().DeleteByIDs(gomock.Any(), gomock.Any()).Return(int64(2), nil),
			f.userTicketRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(1), nil),
			f.repo.EXPECT().Delete(gomock.Any(), s.ticket.ID).Return(int64(0), errors.New("write failed")),
			f.userTicketRepo.EXPECT().
				Insert(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, link userModel.UserTicket) error {
					assert.Equal(t, "user-1", link.UserID)
					assert.Equal(t, s.ticket.ID.Hex(), link.TicketID)

					return nil
				}),
			f.seatRepo.EXPECT().Restore(gomock.Any(), s.bookings).Return(nil),
			f.flightRepo.EXPECT().ReserveSeats(gomock.Any(), s.flightID, seats).Return(nil),
		)

		_, err := f.svc.Cancel(context.Background(), "user-1", "TCK-1")

		var sagaErr *saga.Error
		require.ErrorAs(t, err, &sagaErr)
		assert.Equal(t, "delete_ticket", sagaErr.Step)
		assert.True(t, sagaErr.Compensated())
		assert.Equal(t, float64(1), compensations(f.metrics, "unlink_user_ticket", saga.ResultOK))
		assert.Equal(t, float64(1), compensations(f.metrics, "delete_seat_bookings", saga.ResultOK))
		assert.Equal(t, float64(1), compensations(f.metrics, "release_seats", saga.ResultOK))
	})

	t.Run("nothing to relink when the user never listed the ticket", func(t *testing.T) {
		f := newFixture(t)
		s := newScenario()
		f.expectLookups(s)

		f.flightRepo.EXPECT().ReleaseSeats(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.seatRepo.EXPECT().DeleteByIDs(gomock.Any(), gomock.Any()).Return(int64(2), nil)
		f.userTicketRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("write failed"))
		f.seatRepo.EXPECT().Restore(gomock.Any(), gomock.Any()).Return(nil)
		f.flightRepo.EXPECT().ReserveSeats(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.Cancel(context.Background(), "user-1", "TCK-1")

		require.Error(t, err)
	})

	t.Run("failed compensation is reported", func(t *testing.T) {
		f := newFixture(t)
		s := newScenario()
		f.expectLookups(s)

		f.flightRepo.EXPECT().ReleaseSeats(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.seatRepo.EXPECT().DeleteByIDs(gomock.Any(), gomock.Any()).Return(int64(2), nil)
		f.userTicketRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("pg down"))
		f.seatRepo.EXPECT().Restore(gomock.Any(), gomock.Any()).Return(errors.New("mongo down"))
		f.flightRepo.EXPECT().ReserveSeats(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.Cancel(context.Background(), "user-1", "TCK-1")

		var sagaErr *saga.Error
		require.ErrorAs(t, err, &sagaErr)
		assert.Equal(t, "unlink_user_ticket", sagaErr.Step)
		assert.False(t, sagaErr.Compensated())
		assert.Len(t, sagaErr.CompensationErrors, 1)
		assert.Equal(t, float64(1), compensations(f.metrics, "delete_seat_bookings", saga.ResultFailed))
		assert.Equal(t, float64(1), compensations(f.metrics, "release_seats", saga.ResultOK))
	})
}
