package dto

import (
	"errors"
	"flightbook/internal/domains/legacy/model"
	"flightbook/shared/constant"
	"flightbook/shared/failure"
	"flightbook/shared/timezone"
	"fmt"
	"time"
)

const (
	MessageNothingToMigrate = "No bookings to migrate. All bookings already have legacy flag."
	MessageMigrated         = "Successfully marked %d bookings as legacy"
	MessageReverted         = "Booking restored from legacy status"
)

var errInvalidCutoff = errors.New("before must be YYYY-MM-DD or RFC3339")

type MigrateRequest struct {
	Before string `json:"before,omitempty" validate:"omitempty,max=35" example:"2025-11-27"`
}

// Cutoff parses Before. An empty value means no cutoff.
func (r MigrateRequest) Cutoff() (*time.Time, error) {
	if r.Before == "" {
		return nil, nil
	}

	before, err := timezone.ParseDate(constant.DateFormatTravel, r.Before)
	if err != nil {
		return nil, failure.BadRequest(errInvalidCutoff)
	}

	return &before, nil
}

type MigrateResponse struct {
	Message  string `json:"message"`
	Migrated int64  `json:"migrated"`
}

func NewMigrateResponse(migrated int64) MigrateResponse {
	if migrated == 0 {
		return MigrateResponse{Message: MessageNothingToMigrate}
	}

	return MigrateResponse{Message: fmt.Sprintf(MessageMigrated, migrated), Migrated: migrated}
}

type StatsResponse struct {
	Total           int64 `json:"total"`
	Legacy          int64 `json:"legacy"`
	NonLegacy       int64 `json:"nonLegacy"`
	Unflagged       int64 `json:"unflagged"`
	Cancelled       int64 `json:"cancelled"`
	ActiveNonLegacy int64 `json:"activeNonLegacy"`
}

func (r *StatsResponse) FromModel(stats model.Stats) {
	r.Total = stats.Total
	r.Legacy = stats.Legacy
	r.NonLegacy = stats.NonLegacy
	r.Unflagged = stats.Unflagged
	r.Cancelled = stats.Cancelled
	r.ActiveNonLegacy = stats.ActiveNonLegacy
}
