package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"flightbook/infras/otel"
	"flightbook/infras/postgres"
	"flightbook/internal/domains/user/model"
	"flightbook/shared"
	gDto "flightbook/shared/dto"
	gRepo "flightbook/shared/repository"
)

type User interface {
	Insert(ctx context.Context, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

// UserTicket is the user's legacy ticket list.
type UserTicket interface {
	Insert(ctx context.Context, model model.UserTicket) error
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

type ticketRepositoryImpl struct {
	gRepo.Repository[model.UserTicket]
}

func NewUserTicket(db *postgres.Connection, otel otel.Otel) UserTicket {
	return &ticketRepositoryImpl{
		Repository: gRepo.NewRepository[model.UserTicket](model.TicketEntityName, model.TicketTableName, model.FieldTicketID, db, otel),
	}
}

// ByID filters users by primary key.
func ByID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func ByEmail(email string) gDto.FilterGroup {
	return byField(model.FieldEmail, email)
}

// TicketOwnership matches one ticket in one user's list.
func TicketOwnership(userID, ticketID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldUserID, Value: userID, Operator: gDto.FilterOperatorEq, Table: model.TicketTableName},
			gDto.Filter{Field: model.FieldTicketID, Value: ticketID, Operator: gDto.FilterOperatorEq, Table: model.TicketTableName},
		},
	}
}

func byField(field string, value any) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: field, Value: value, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}
