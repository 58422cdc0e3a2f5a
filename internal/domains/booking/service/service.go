package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"flightbook/config"
	"flightbook/infras/kafka"
	"flightbook/infras/metrics"
	"flightbook/infras/otel"
	"flightbook/internal/domains/booking/model"
	"flightbook/internal/domains/booking/model/dto"
	"flightbook/internal/domains/booking/repository"
	userRepo "flightbook/internal/domains/user/repository"
	"flightbook/shared"
	"flightbook/shared/cache"
	"flightbook/shared/constant"
	"flightbook/shared/failure"
	"flightbook/shared/timezone"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	errBookingNotFound = failure.NotFound("Booking not found")
	errUserNotFound    = failure.NotFound("User not found")
)

type Booking interface {
	Create(ctx context.Context, userID string, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	ListMine(ctx context.Context, userID string, req dto.ListRequest) (dto.ListResponse, error)
	Cancel(ctx context.Context, userID, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	userRepo  userRepo.User
	publisher kafka.Publisher
	metrics   *metrics.Metrics
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Booking, userRepo userRepo.User, publisher kafka.Publisher, metrics *metrics.Metrics,
	cfg *config.Config, cache cache.RedisCache, otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:      repo,
		userRepo:  userRepo,
		publisher: publisher,
		metrics:   metrics,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

// Create stores a new active, non-legacy booking with a snapshot of the owner's current profile.
func (s *serviceImpl) Create(ctx context.Context, userID string, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.Get(ctx, userRepo.ByID(userID))
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, errUserNotFound
	}

	booking, err := req.ToModel(user, timezone.Now())
	if err != nil {
		return res, err
	}

	booking, err = s.repo.Insert(ctx, booking)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	res.FromModel(booking)

	s.metrics.BookingsCreated.Inc()
	s.afterWrite(ctx, userID, kafka.EventBookingCreated, res)

	return res, nil
}

// ListMine returns the caller's bookings newest first. Legacy records stay hidden unless an admin asks for them.
// It always reads the store so a listing never lags behind the caller's own create or cancel.
func (s *serviceImpl) ListMine(ctx context.Context, userID string, req dto.ListRequest) (res dto.ListResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.ListMine")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	includeLegacy := false
	if req.IncludeLegacy {
		if includeLegacy, err = s.isAdmin(ctx, userID); err != nil {
			return res, err
		}
	}

	bookings, err := s.repo.Find(ctx, repository.Mine(userID, req.ShowAll, includeLegacy))
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.Bookings = dto.FromModels(bookings)
	res.Count = len(res.Bookings)

	return res, nil
}

// Cancel moves an active booking to cancelled. The status guard sits in the update filter so two
// concurrent cancels cannot both apply; the loser sees ErrAlreadyCancelled.
func (s *serviceImpl) Cancel(ctx context.Context, userID, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return res, errBookingNotFound
	}

	booking, err := s.repo.Update(ctx, repository.ActiveByOwner(objectID, userID),
		bson.D{{Key: model.FieldStatus, Value: model.StatusCancelled}})
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to cancel booking")

		return res, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if booking.ID.IsZero() {
		existing, err := s.repo.Get(ctx, repository.ByOwner(objectID, userID))
		if err != nil {
			log.Error().Err(err).Str("booking_id", id).Msg("failed to get booking")

			return res, fmt.Errorf("failed to get booking: %w", err)
		}

		if existing.ID.IsZero() {
			return res, errBookingNotFound
		}

		return res, failure.ErrAlreadyCancelled
	}

	res.FromModel(booking)

	s.metrics.BookingsCancelled.Inc()
	s.afterWrite(ctx, userID, kafka.EventBookingCancelled, res)

	return res, nil
}

func (s *serviceImpl) isAdmin(ctx context.Context, userID string) (bool, error) {
	user, err := s.userRepo.Get(ctx, userRepo.ByID(userID))
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to get user")

		return false, fmt.Errorf("failed to get user: %w", err)
	}

	return user.IsAdmin(), nil
}

// afterWrite drops the admin stats before the write is acknowledged; the event goes out in the background.
func (s *serviceImpl) afterWrite(ctx context.Context, userID, eventType string, booking dto.BookingResponse) {
	shared.InvalidateGeneration(ctx, s.cache, constant.CacheBookingStats)

	kafka.PublishAsync(ctx, s.publisher, s.cfg.Kafka.Topics.Booking, kafka.Event{
		Type:        eventType,
		AggregateID: booking.ID,
		ActorID:     userID,
		OccurredAt:  timezone.Now(),
		Payload:     booking,
	})
}
