package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"

	"flightbook/config"
	"flightbook/infras/kafka"
	kafkaMocks "flightbook/infras/kafka/mocks"
	"flightbook/infras/metrics"
	"flightbook/infras/otel/mocks"
	bookingMocks "flightbook/internal/domains/booking/mocks"
	"flightbook/internal/domains/booking/model"
	"flightbook/internal/domains/booking/model/dto"
	"flightbook/internal/domains/booking/repository"
	"flightbook/internal/domains/booking/service"
	userMocks "flightbook/internal/domains/user/mocks"
	userModel "flightbook/internal/domains/user/model"
	cacheMocks "flightbook/shared/cache/mocks"
	"flightbook/shared/constant"
	"flightbook/shared/failure"
)

type fixture struct {
	repo      *bookingMocks.MockBooking
	userRepo  *userMocks.MockUser
	publisher *kafkaMocks.MockPublisher
	cache     *cacheMocks.MockRedisCache
	metrics   *metrics.Metrics
	svc       service.Booking
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      bookingMocks.NewMockBooking(ctrl),
		userRepo:  userMocks.NewMockUser(ctrl),
		publisher: kafkaMocks.NewMockPublisher(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		metrics:   metrics.NewMetrics("test"),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.Kafka.Topics.Booking = "bookings"

	f.svc = service.New(f.repo, f.userRepo, f.publisher, f.metrics, cfg, f.cache, mocks.NewOtel())

	return f
}

// allowSideEffects accepts the stats invalidation and the detached event publish that follow a write.
func (f fixture) allowSideEffects() {
	f.allowInvalidation()
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (f fixture) allowInvalidation() {
	f.cache.EXPECT().Save(gomock.Any(), "generation:booking:stats", gomock.Any(), 0).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), "booking:stats*").Return(nil).AnyTimes()
}

func stringPtr(s string) *string {
	return &s
}

func createRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		PassengerName:   "Jane Doe",
		Email:           "jane@example.com",
		Phone:           "+62811",
		DepartureCity:   "Jakarta",
		DestinationCity: "Denpasar",
		TravelDate:      "2026-12-24",
		PassengersCount: 2,
	}
}

func TestBookingService_Create(t *testing.T) {
	age := 30
	user := userModel.User{
		ID:         "user-1",
		Name:       "Jane",
		Email:      "jane@example.com",
		Age:        &age,
		ProfilePic: stringPtr("https://cdn.example.com/profiles/jane.png"),
		Role:       constant.RoleUser,
	}

	t.Run("creates an active non-legacy booking with a snapshot", func(t *testing.T) {
		f := newFixture(t)
		f.allowSideEffects()

		f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, booking model.Booking) (model.Booking, error) {
				booking.ID = primitive.NewObjectID()

				return booking, nil
			})

		res, err := f.svc.Create(context.Background(), "user-1", createRequest())

		require.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, model.StatusActive, res.Status)
		require.NotNil(t, res.Legacy)
		assert.False(t, *res.Legacy)
		assert.Equal(t, model.ClassEconomy, res.ClassType)
		assert.Equal(t, 2, res.PassengersCount)
		assert.Equal(t, "Jane", res.UserSnapshot.Name)
		assert.Equal(t, "+62811", res.UserSnapshot.Phone)
		assert.Equal(t, &age, res.UserSnapshot.Age)
		assert.Equal(t, user.ProfilePic, res.UserSnapshot.ProfilePic)
		assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.BookingsCreated))
	})

	t.Run("publishes booking.created", func(t *testing.T) {
		f := newFixture(t)
		f.allowInvalidation()

		published := make(chan kafka.Event, 1)
		f.publisher.EXPECT().
			Publish(gomock.Any(), "bookings", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
				published <- messages[0].Value.(kafka.Event)

				return nil
			})

		f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
		f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(model.Booking{ID: primitive.NewObjectID(), UserID: "user-1"}, nil)

		res, err := f.svc.Create(context.Background(), "user-1", createRequest())
		require.NoError(t, err)

		select {
		case event := <-published:
			assert.Equal(t, kafka.EventBookingCreated, event.Type)
			assert.Equal(t, res.ID, event.AggregateID)
			assert.Equal(t, "user-1", event.ActorID)
		case <-time.After(time.Second):
			t.Fatal("booking.created was not published")
		}
	})

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "user not found",
			req:  createRequest(),
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "user lookup error",
			req:  createRequest(),
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "malformed travel date",
			req: func() dto.CreateBookingRequest {
				req := createRequest()
				req.TravelDate = "24/12/2026"

				return req
			}(),
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "insert error",
			req:  createRequest(),
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(user, nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(model.Booking{}, errors.New("write concern"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Create(context.Background(), "user-1", tt.req)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.Equal(t, float64(0), testutil.ToFloat64(f.metrics.BookingsCreated))
		})
	}
}

func TestBookingService_ListMine(t *testing.T) {
	legacy, current := true, false
	bookings := []model.Booking{
		{ID: primitive.NewObjectID(), UserID: "user-1", Status: model.StatusActive, Legacy: &current},
		{ID: primitive.NewObjectID(), UserID: "user-1", Status: model.StatusActive},
	}

	tests := []struct {
		name       string
		req        dto.ListRequest
		setupMock  func(f fixture)
		wantFilter bson.D
		wantCount  int
	}{
		{
			name:       "active only by default",
			req:        dto.ListRequest{},
			setupMock:  func(f fixture) {},
			wantFilter: repository.Mine("user-1", false, false),
			wantCount:  2,
		},
		{
			name:       "show all keeps legacy hidden",
			req:        dto.ListRequest{ShowAll: true},
			setupMock:  func(f fixture) {},
			wantFilter: repository.Mine("user-1", true, false),
			wantCount:  2,
		},
		{
			name: "include legacy ignored for regular users",
			req:  dto.ListRequest{IncludeLegacy: true},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "user-1", Role: constant.RoleUser}, nil)
			},
			wantFilter: repository.Mine("user-1", false, false),
			wantCount:  2,
		},
		{
			name: "include legacy honoured for admins",
			req:  dto.ListRequest{ShowAll: true, IncludeLegacy: true},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{ID: "user-1", Role: constant.RoleAdmin}, nil)
			},
			wantFilter: repository.Mine("user-1", true, true),
			wantCount:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			result := bookings
			if tt.wantCount == 3 {
				result = append(append([]model.Booking{}, bookings...), model.Booking{ID: primitive.NewObjectID(), Legacy: &legacy})
			}

			f.repo.EXPECT().Find(gomock.Any(), tt.wantFilter).Return(result, nil)

			res, err := f.svc.ListMine(context.Background(), "user-1", tt.req)

			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, res.Count)
			assert.Len(t, res.Bookings, tt.wantCount)
		})
	}

	t.Run("repository error", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, errors.New("cursor killed"))

		_, err := f.svc.ListMine(context.Background(), "user-1", dto.ListRequest{})

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestBookingService_Cancel(t *testing.T) {
	id := primitive.NewObjectID()
	current := false

	t.Run("cancels an active booking", func(t *testing.T) {
		f := newFixture(t)
		f.allowSideEffects()

		f.repo.EXPECT().
			Update(gomock.Any(), repository.ActiveByOwner(id, "user-1"), bson.D{{Key: "status", Value: "cancelled"}}).
			Return(model.Booking{ID: id, UserID: "user-1", Status: model.StatusCancelled, Legacy: &current}, nil)

		res, err := f.svc.Cancel(context.Background(), "user-1", id.Hex())

		require.NoError(t, err)
		assert.Equal(t, id.Hex(), res.ID)
		assert.Equal(t, model.StatusCancelled, res.Status)
		assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.BookingsCancelled))
	})

	t.Run("second cancel conflicts without a second write", func(t *testing.T) {
		f := newFixture(t)
		f.allowSideEffects()

		cancelled := model.Booking{ID: id, UserID: "user-1", Status: model.StatusCancelled}

		gomock.InOrder(
			f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(cancelled, nil),
			f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil),
		)
		f.repo.EXPECT().Get(gomock.Any(), repository.ByOwner(id, "user-1")).Return(cancelled, nil)

		_, err := f.svc.Cancel(context.Background(), "user-1", id.Hex())
		require.NoError(t, err)

		_, err = f.svc.Cancel(context.Background(), "user-1", id.Hex())
		require.Error(t, err)
		assert.ErrorIs(t, err, failure.ErrAlreadyCancelled)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.Equal(t, float64(1), testutil.ToFloat64(f.metrics.BookingsCancelled))
	})

	tests := []struct {
		name      string
		id        string
		setupMock func(f fixture)
		wantCode  int
		wantMsg   string
	}{
		{
			name:      "malformed id",
			id:        "not-an-object-id",
			setupMock: func(f fixture) {},
			wantCode:  http.StatusNotFound,
			wantMsg:   "Booking not found",
		},
		{
			name: "not found or owned by someone else",
			id:   id.Hex(),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
			wantMsg:  "Booking not found",
		},
		{
			name: "update error",
			id:   id.Hex(),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, errors.New("not primary"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "lookup error after a missed update",
			id:   id.Hex(),
			setupMock: func(f fixture) {
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, errors.New("timeout"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			_, err := f.svc.Cancel(context.Background(), "user-1", tt.id)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))

			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, err.Error())
			}
		})
	}
}

func TestBookingService_ListAfterCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := bookingMocks.NewMockBooking(ctrl)
	publisher := kafkaMocks.NewMockPublisher(ctrl)
	mem := cacheMocks.NewMemory()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(repo, userMocks.NewMockUser(ctrl), publisher, metrics.NewMetrics("test"), cfg, mem, mocks.NewOtel())

	id := primitive.NewObjectID()
	stored := model.Booking{ID: id, UserID: "user-1", Status: model.StatusActive}

	repo.EXPECT().Find(gomock.Any(), repository.Mine("user-1", false, false)).
		DoAndReturn(func(context.Context, bson.D) ([]model.Booking, error) {
			if stored.Status != model.StatusActive {
				return nil, nil
			}

			return []model.Booking{stored}, nil
		}).Times(2)
	repo.EXPECT().Update(gomock.Any(), repository.ActiveByOwner(id, "user-1"), gomock.Any()).
		DoAndReturn(func(context.Context, bson.D, bson.D) (model.Booking, error) {
			stored.Status = model.StatusCancelled

			return stored, nil
		})
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx := context.Background()
	require.NoError(t, mem.Save(ctx, constant.CacheBookingStats, "before", 60))

	before, err := svc.ListMine(ctx, "user-1", dto.ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 1, before.Count)

	_, err = svc.Cancel(ctx, "user-1", id.Hex())
	require.NoError(t, err)
	assert.False(t, mem.Has(constant.CacheBookingStats))

	after, err := svc.ListMine(ctx, "user-1", dto.ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, 0, after.Count)
	assert.Empty(t, after.Bookings)
}
