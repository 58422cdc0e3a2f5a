package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"flightbook/infras/mongo"
	"flightbook/infras/otel"
	"flightbook/internal/domains/booking/model"
	gRepo "flightbook/shared/repository"
	"flightbook/shared/timezone"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	goMongo "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Booking interface {
	Insert(ctx context.Context, booking model.Booking) (model.Booking, error)
	Get(ctx context.Context, filter bson.D) (model.Booking, error)
	Find(ctx context.Context, filter bson.D) ([]model.Booking, error)
	Count(ctx context.Context, filter bson.D) (int64, error)
	Update(ctx context.Context, filter, set bson.D) (model.Booking, error)
	UpdateMany(ctx context.Context, filter, set bson.D) (int64, error)
}

type repositoryImpl struct {
	gRepo.MongoRepository[model.Booking]
}

func New(conn *mongo.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		MongoRepository: gRepo.NewMongoRepository[model.Booking](model.EntityName, mongo.CollectionSimpleBookings, conn, otel),
	}
}

// Indexes backs the owner listing and the legacy partition counts.
func Indexes() []goMongo.IndexModel {
	return []goMongo.IndexModel{
		mongo.Index(bson.D{{Key: model.FieldUserID, Value: 1}, {Key: model.FieldCreatedAt, Value: -1}}, false),
		mongo.Index(bson.D{{Key: model.FieldLegacy, Value: 1}}, false),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, booking model.Booking) (model.Booking, error) {
	if booking.ID.IsZero() {
		booking.ID = primitive.NewObjectID()
	}

	if _, err := r.InsertOne(ctx, booking); err != nil {
		return model.Booking{}, err
	}

	return booking, nil
}

func (r *repositoryImpl) Get(ctx context.Context, filter bson.D) (model.Booking, error) {
	return r.FindOne(ctx, filter)
}

// Find returns matches newest first.
func (r *repositoryImpl) Find(ctx context.Context, filter bson.D) ([]model.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: model.FieldCreatedAt, Value: -1}})

	return r.MongoRepository.Find(ctx, filter, opts)
}

// Update sets the given fields plus updatedAt on the first match and returns it. The zero booking means no match.
func (r *repositoryImpl) Update(ctx context.Context, filter, set bson.D) (model.Booking, error) {
	return r.FindOneAndUpdate(ctx, filter, setWithTimestamp(set))
}

func (r *repositoryImpl) UpdateMany(ctx context.Context, filter, set bson.D) (int64, error) {
	return r.MongoRepository.UpdateMany(ctx, filter, setWithTimestamp(set))
}

func setWithTimestamp(set bson.D) bson.D {
	fields := append(bson.D{}, set...)
	fields = append(fields, bson.E{Key: model.FieldUpdatedAt, Value: timezone.Now()})

	return bson.D{{Key: "$set", Value: fields}}
}

func ByID(id primitive.ObjectID) bson.D {
	return bson.D{{Key: model.FieldID, Value: id}}
}

// ByOwner matches one booking only when it belongs to userID.
func ByOwner(id primitive.ObjectID, userID string) bson.D {
	return bson.D{{Key: model.FieldID, Value: id}, {Key: model.FieldUserID, Value: userID}}
}

// ActiveByOwner is the guard of the cancel transition.
func ActiveByOwner(id primitive.ObjectID, userID string) bson.D {
	return append(ByOwner(id, userID), bson.E{Key: model.FieldStatus, Value: model.StatusActive})
}

// Mine lists a user's bookings. Legacy records are hidden unless includeLegacy is set.
func Mine(userID string, showAll, includeLegacy bool) bson.D {
	filter := bson.D{{Key: model.FieldUserID, Value: userID}}

	if !includeLegacy {
		filter = append(filter, bson.E{Key: model.FieldLegacy, Value: bson.D{{Key: "$ne", Value: true}}})
	}

	if !showAll {
		filter = append(filter, bson.E{Key: model.FieldStatus, Value: model.StatusActive})
	}

	return filter
}

func All() bson.D {
	return bson.D{}
}

func Legacy() bson.D {
	return bson.D{{Key: model.FieldLegacy, Value: true}}
}

func NonLegacy() bson.D {
	return bson.D{{Key: model.FieldLegacy, Value: false}}
}

func Unflagged() bson.D {
	return bson.D{{Key: model.FieldLegacy, Value: bson.D{{Key: "$exists", Value: false}}}}
}

func Cancelled() bson.D {
	return bson.D{{Key: model.FieldStatus, Value: model.StatusCancelled}}
}

func ActiveNonLegacy() bson.D {
	return append(NonLegacy(), bson.E{Key: model.FieldStatus, Value: model.StatusActive})
}

// LegacyCandidates selects the records a migration flags. Without a cutoff that is every unflagged
// record; with one it is everything created before the cutoff that is not already legacy.
func LegacyCandidates(before *time.Time) bson.D {
	if before == nil {
		return Unflagged()
	}

	return bson.D{
		{Key: model.FieldCreatedAt, Value: bson.D{{Key: "$lt", Value: *before}}},
		{Key: "$or", Value: bson.A{Unflagged(), NonLegacy()}},
	}
}
