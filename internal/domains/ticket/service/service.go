package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"flightbook/config"
	"flightbook/infras/kafka"
	"flightbook/infras/metrics"
	"flightbook/infras/otel"
	flightRepo "flightbook/internal/domains/flight/repository"
	"flightbook/internal/domains/ticket/model"
	"flightbook/internal/domains/ticket/model/dto"
	"flightbook/internal/domains/ticket/repository"
	userModel "flightbook/internal/domains/user/model"
	userRepo "flightbook/internal/domains/user/repository"
	"flightbook/shared"
	"flightbook/shared/cache"
	"flightbook/shared/constant"
	"flightbook/shared/failure"
	gModel "flightbook/shared/model"
	"flightbook/shared/saga"
	"flightbook/shared/timezone"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	sagaCancelTicket = "cancel_ticket"

	stepReleaseSeats       = "release_seats"
	stepDeleteSeatBookings = "delete_seat_bookings"
	stepUnlinkUserTicket   = "unlink_user_ticket"
	stepDeleteTicket       = "delete_ticket"
)

var (
	errTicketNotFound   = failure.NotFound("Ticket not found")
	errBookingsNotFound = failure.NotFound("No bookings found")
)

type Ticket interface {
	Cancel(ctx context.Context, userID, ticketUID string) (dto.CancelTicketResponse, error)
}

type serviceImpl struct {
	repo           repository.Ticket
	seatRepo       repository.SeatBooking
	flightRepo     flightRepo.Flight
	userTicketRepo userRepo.UserTicket
	publisher      kafka.Publisher
	metrics        *metrics.Metrics
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(repo repository.Ticket, seatRepo repository.SeatBooking, flightRepo flightRepo.Flight, userTicketRepo userRepo.UserTicket,
	publisher kafka.Publisher, metrics *metrics.Metrics, cfg *config.Config, cache cache.RedisCache, otel otel.Otel,
) Ticket {
	return &serviceImpl{
		repo:           repo,
		seatRepo:       seatRepo,
		flightRepo:     flightRepo,
		userTicketRepo: userTicketRepo,
		publisher:      publisher,
		metrics:        metrics,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

// Cancel tears down a legacy ticket: seats go back to the flight, the seat bookings and the
// ticket are deleted and the ticket leaves the user's list. Each write is undone if a later one fails.
func (s *serviceImpl) Cancel(ctx context.Context, userID, ticketUID string) (res dto.CancelTicketResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ticket.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	ticket, err := s.repo.GetByUID(ctx, ticketUID, userID)
	if err != nil {
		log.Error().Err(err).Str("ticket_uid", ticketUID).Msg("failed to get ticket")

		return res, fmt.Errorf("failed to get ticket: %w", err)
	}

	if ticket.ID.IsZero() {
		return res, errTicketNotFound
	}

	bookings, err := s.seatRepo.FindByIDs(ctx, ticket.Tickets)
	if err != nil {
		log.Error().Err(err).Str("ticket_uid", ticketUID).Msg("failed to get seat bookings")

		return res, fmt.Errorf("failed to get seat bookings: %w", err)
	}

	if len(bookings) == 0 {
		return res, errBookingsNotFound
	}

	flightID := bookings[0].Flight
	seats := dto.Seats(bookings)

	flight, err := s.flightRepo.Get(ctx, flightID)
	if err != nil {
		log.Error().Err(err).Str("flight_id", flightID.Hex()).Msg("failed to get flight")

		return res, fmt.Errorf("failed to get flight: %w", err)
	}

	unlinked := false

	cancel := saga.New(sagaCancelTicket, s.otel).OnCompensation(func(sagaName, step, result string) {
		s.metrics.Compensations.WithLabelValues(sagaName, step, result).Inc()
	})

	if !flight.ID.IsZero() {
		cancel.AddStep(saga.Step{
			Name: stepReleaseSeats,
			Action: func(ctx context.Context) error {
				return s.flightRepo.ReleaseSeats(ctx, flightID, seats)
			},
			Compensate: func(ctx context.Context) error {
				return s.flightRepo.ReserveSeats(ctx, flightID, seats)
			},
		})
	}

	cancel.AddStep(saga.Step{
		Name: stepDeleteSeatBookings,
		Action: func(ctx context.Context) error {
			_, err := s.seatRepo.DeleteByIDs(ctx, dto.IDs(bookings))

			return err
		},
		Compensate: func(ctx context.Context) error {
			return s.seatRepo.Restore(ctx, bookings)
		},
	}).AddStep(saga.Step{
		Name: stepUnlinkUserTicket,
		Action: func(ctx context.Context) error {
			deleted, err := s.userTicketRepo.Delete(ctx, userRepo.TicketOwnership(userID, ticket.ID.Hex()))
			unlinked = deleted > 0

			return err
		},
		Compensate: func(ctx context.Context) error {
			if !unlinked {
				return nil
			}

			return s.userTicketRepo.Insert(ctx, userModel.UserTicket{
				UserID:   userID,
				TicketID: ticket.ID.Hex(),
				Metadata: gModel.NewMetadata(constant.ContextSystem, timezone.Now()),
			})
		},
	}).AddStep(saga.Step{
		Name: stepDeleteTicket,
		Action: func(ctx context.Context) error {
			_, err := s.repo.Delete(ctx, ticket.ID)

			return err
		},
	})

	if err = cancel.Execute(ctx); err != nil {
		s.metrics.ErrorsCount.WithLabelValues(sagaCancelTicket).Inc()
		log.Error().Err(err).Str("ticket_uid", ticketUID).Msg("failed to cancel ticket")

		return res, fmt.Errorf("failed to cancel ticket: %w", err)
	}

	res.TicketID = ticket.UID
	res.ReleasedSeats = seats

	s.metrics.TicketsCancelled.Inc()
	s.afterCancel(ctx, userID, ticket, res)

	return res, nil
}

// afterCancel drops the cached flights before returning, since their seat availability just changed.
func (s *serviceImpl) afterCancel(ctx context.Context, userID string, ticket model.Ticket, res dto.CancelTicketResponse) {
	shared.InvalidateGeneration(ctx, s.cache, constant.CacheFlight)

	kafka.PublishAsync(ctx, s.publisher, s.cfg.Kafka.Topics.Ticket, kafka.Event{
		Type:        kafka.EventTicketCancelled,
		AggregateID: ticket.UID,
		ActorID:     userID,
		OccurredAt:  timezone.Now(),
		Payload:     res,
	})
}
