package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"flightbook/infras/mongo"
	"flightbook/infras/otel"
	"flightbook/internal/domains/ticket/model"
	gRepo "flightbook/shared/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	goMongo "go.mongodb.org/mongo-driver/mongo"
)

type Ticket interface {
	GetByUID(ctx context.Context, uid, userID string) (model.Ticket, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type SeatBooking interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.SeatBooking, error)
	DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	Restore(ctx context.Context, bookings []model.SeatBooking) error
}

type ticketRepositoryImpl struct {
	gRepo.MongoRepository[model.Ticket]
}

func New(conn *mongo.Connection, otel otel.Otel) Ticket {
	return &ticketRepositoryImpl{
		MongoRepository: gRepo.NewMongoRepository[model.Ticket](model.TicketEntityName, mongo.CollectionTickets, conn, otel),
	}
}

type seatBookingRepositoryImpl struct {
	gRepo.MongoRepository[model.SeatBooking]
}

func NewSeatBooking(conn *mongo.Connection, otel otel.Otel) SeatBooking {
	return &seatBookingRepositoryImpl{
		MongoRepository: gRepo.NewMongoRepository[model.SeatBooking](model.SeatBookingEntityName, mongo.CollectionSeatBookings, conn, otel),
	}
}

func Indexes() []goMongo.IndexModel {
	return []goMongo.IndexModel{
		mongo.Index(bson.D{{Key: model.FieldUID, Value: 1}}, true),
	}
}

// GetByUID only finds tickets owned by userID; anyone else's ticket looks missing.
func (r *ticketRepositoryImpl) GetByUID(ctx context.Context, uid, userID string) (model.Ticket, error) {
	return r.FindOne(ctx, bson.D{{Key: model.FieldUID, Value: uid}, {Key: model.FieldUser, Value: userID}})
}

func (r *ticketRepositoryImpl) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.DeleteOne(ctx, bson.D{{Key: model.FieldID, Value: id}})
}

func (r *seatBookingRepositoryImpl) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.SeatBooking, error) {
	if len(ids) == 0 {
		return []model.SeatBooking{}, nil
	}

	return r.Find(ctx, byIDs(ids))
}

func (r *seatBookingRepositoryImpl) DeleteByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	return r.DeleteMany(ctx, byIDs(ids))
}

// Restore re-inserts previously deleted bookings with their original ids.
func (r *seatBookingRepositoryImpl) Restore(ctx context.Context, bookings []model.SeatBooking) error {
	return r.InsertMany(ctx, bookings)
}

func byIDs(ids []primitive.ObjectID) bson.D {
	return bson.D{{Key: model.FieldID, Value: bson.D{{Key: "$in", Value: ids}}}}
}
