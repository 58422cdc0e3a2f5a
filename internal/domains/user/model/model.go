package model

import (
	"flightbook/shared/constant"
	"flightbook/shared/model"
	"time"
)

const (
	TableName  = "users"
	EntityName = "user"

	FieldID         = "id"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldName       = "name"
	FieldPhone      = "phone"
	FieldAge        = "age"
	FieldProfilePic = "profile_pic"
	FieldRole       = "role"
	FieldLastLogin  = "last_login"
	FieldActive     = "active"
)

const (
	TicketTableName  = "user_tickets"
	TicketEntityName = "user_ticket"

	FieldUserID   = "user_id"
	FieldTicketID = "ticket_id"
)

type User struct {
	ID         string     `db:"id"`
	Email      string     `db:"email"`
	Password   string     `db:"password"`
	Name       string     `db:"name"`
	Phone      *string    `db:"phone"`
	Age        *int       `db:"age"`
	ProfilePic *string    `db:"profile_pic"`
	Role       string     `db:"role"`
	LastLogin  *time.Time `db:"last_login"`
	Active     bool       `db:"active"`
	model.Metadata
}

func (u User) IsAdmin() bool {
	return u.Role == constant.RoleAdmin
}

// UserTicket links a user to a legacy ticket (the ticket document's id in hex).
type UserTicket struct {
	UserID   string `db:"user_id"`
	TicketID string `db:"ticket_id"`
	model.Metadata
}
