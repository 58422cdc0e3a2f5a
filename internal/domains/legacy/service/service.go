package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"flightbook/config"
	"flightbook/infras/kafka"
	"flightbook/infras/metrics"
	"flightbook/infras/mongo"
	"flightbook/infras/otel"
	bookingDto "flightbook/internal/domains/booking/model/dto"
	"flightbook/internal/domains/legacy/model/dto"
	"flightbook/internal/domains/legacy/repository"
	userRepo "flightbook/internal/domains/user/repository"
	"flightbook/shared"
	"flightbook/shared/cache"
	"flightbook/shared/constant"
	"flightbook/shared/failure"
	"flightbook/shared/timezone"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errBookingNotFound = failure.NotFound("Booking not found")

// Legacy back-fills and inspects the legacy flag. The caller-scoped methods require an admin;
// the Batch variants are for the unattended job, which has no caller.
type Legacy interface {
	Migrate(ctx context.Context, callerID string, req dto.MigrateRequest) (dto.MigrateResponse, error)
	Stats(ctx context.Context, callerID string) (dto.StatsResponse, error)
	Revert(ctx context.Context, callerID, id string) (bookingDto.BookingResponse, error)

	RunBatch(ctx context.Context, req dto.MigrateRequest) (dto.MigrateResponse, error)
	BatchStats(ctx context.Context) (dto.StatsResponse, error)
	BatchRevert(ctx context.Context, id string) (bookingDto.BookingResponse, error)
}

type serviceImpl struct {
	repo      repository.Legacy
	userRepo  userRepo.User
	publisher kafka.Publisher
	metrics   *metrics.Metrics
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

// New builds the service. userRepo may be nil when only the Batch methods are used.
func New(repo repository.Legacy, userRepo userRepo.User, publisher kafka.Publisher, metrics *metrics.Metrics,
	cfg *config.Config, cache cache.RedisCache, otel otel.Otel,
) Legacy {
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

func (s *serviceImpl) Migrate(ctx context.Context, callerID string, req dto.MigrateRequest) (res dto.MigrateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".legacy.Migrate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.authorize(ctx, callerID); err != nil {
		return res, err
	}

	return s.migrate(ctx, callerID, req)
}

// RunBatch migrates without a caller and logs the partition before and after.
func (s *serviceImpl) RunBatch(ctx context.Context, req dto.MigrateRequest) (res dto.MigrateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".legacy.RunBatch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	before, err := s.stats(ctx)
	if err != nil {
		return res, err
	}

	logStats("before migration", before)

	if res, err = s.migrate(ctx, constant.ContextSystem, req); err != nil {
		return res, err
	}

	after, err := s.stats(ctx)
	if err != nil {
		return res, err
	}

	logStats("after migration", after)

	return res, nil
}

func (s *serviceImpl) migrate(ctx context.Context, actorID string, req dto.MigrateRequest) (res dto.MigrateResponse, err error) {
	cutoff, err := req.Cutoff()
	if err != nil {
		return res, err
	}

	candidates, err := s.repo.CountCandidates(ctx, cutoff)
	if err != nil {
		log.Error().Err(err).Msg("failed to count legacy candidates")

		return res, fmt.Errorf("failed to count legacy candidates: %w", err)
	}

	if candidates == 0 {
		return dto.NewMigrateResponse(0), nil
	}

	migrated, err := s.repo.Flag(ctx, cutoff)
	if err != nil {
		log.Error().Err(err).Msg("failed to flag legacy bookings")

		return res, fmt.Errorf("failed to flag legacy bookings: %w", err)
	}

	res = dto.NewMigrateResponse(migrated)

	log.Info().Int64("migrated", migrated).Str("before", req.Before).Str("actor", actorID).Msg("legacy migration done")

	s.metrics.LegacyMigrated.Add(float64(migrated))
	s.afterWrite(ctx, actorID, kafka.EventLegacyMigrated, mongo.CollectionSimpleBookings, res)

	return res, nil
}

func (s *serviceImpl) Stats(ctx context.Context, callerID string) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".legacy.Stats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.authorize(ctx, callerID); err != nil {
		return res, err
	}

	return s.cachedStats(ctx)
}

func (s *serviceImpl) BatchStats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".legacy.BatchStats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.stats(ctx)
}

func (s *serviceImpl) cachedStats(ctx context.Context) (res dto.StatsResponse, err error) {
	if err = s.cache.Get(ctx, constant.CacheBookingStats, &res); err == nil {
		log.Debug().Str("cacheKey", constant.CacheBookingStats).Msg("cache hit for booking stats")

		return res, nil
	}

	generation := shared.CacheGeneration(ctx, s.cache, constant.CacheBookingStats)

	if res, err = s.stats(ctx); err != nil {
		return res, err
	}

	shared.SaveIfCurrent(ctx, s.cache, constant.CacheBookingStats, generation, constant.CacheBookingStats, res, s.cfg.Cache.TTL)

	return res, nil
}

func (s *serviceImpl) stats(ctx context.Context) (res dto.StatsResponse, err error) {
	stats, err := s.repo.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking stats")

		return res, fmt.Errorf("failed to get booking stats: %w", err)
	}

	res.FromModel(stats)

	return res, nil
}

func (s *serviceImpl) Revert(ctx context.Context, callerID, id string) (res bookingDto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".legacy.Revert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.authorize(ctx, callerID); err != nil {
		return res, err
	}

	return s.revert(ctx, callerID, id)
}

func (s *serviceImpl) BatchRevert(ctx context.Context, id string) (res bookingDto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".legacy.BatchRevert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.revert(ctx, constant.ContextSystem, id)
}

// revert clears the flag whatever its current value, so reverting twice is harmless.
func (s *serviceImpl) revert(ctx context.Context, actorID, id string) (res bookingDto.BookingResponse, err error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return res, errBookingNotFound
	}

	booking, err := s.repo.Unflag(ctx, objectID)
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to revert legacy booking")

		return res, fmt.Errorf("failed to revert legacy booking: %w", err)
	}

	if booking.ID.IsZero() {
		return res, errBookingNotFound
	}

	res.FromModel(booking)

	s.metrics.LegacyReverted.Inc()
	s.afterWrite(ctx, actorID, kafka.EventLegacyReverted, res.ID, res)

	return res, nil
}

func (s *serviceImpl) authorize(ctx context.Context, callerID string) error {
	user, err := s.userRepo.Get(ctx, userRepo.ByID(callerID))
	if err != nil {
		log.Error().Err(err).Str("user_id", callerID).Msg("failed to get user")

		return fmt.Errorf("failed to get user: %w", err)
	}

	if !user.IsAdmin() {
		return failure.AdminOnlyError
	}

	return nil
}

// afterWrite drops the stats cache before the write is acknowledged; the event goes out in the background.
func (s *serviceImpl) afterWrite(ctx context.Context, actorID, eventType, aggregateID string, payload any) {
	shared.InvalidateGeneration(ctx, s.cache, constant.CacheBookingStats)

	kafka.PublishAsync(ctx, s.publisher, s.cfg.Kafka.Topics.Booking, kafka.Event{
		Type:        eventType,
		AggregateID: aggregateID,
		ActorID:     actorID,
		OccurredAt:  timezone.Now(),
		Payload:     payload,
	})
}

func logStats(stage string, stats dto.StatsResponse) {
	log.Info().
		Int64("total", stats.Total).
		Int64("legacy", stats.Legacy).
		Int64("nonLegacy", stats.NonLegacy).
		Int64("unflagged", stats.Unflagged).
		Int64("cancelled", stats.Cancelled).
		Int64("activeNonLegacy", stats.ActiveNonLegacy).
		Msg(stage)
}
