package saga_test

import (
	"context"
	"errors"
	"flightbook/infras/otel/mocks"
	"flightbook/shared/saga"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type journal struct {
	entries []string
}

func (j *journal) step(name string, fail error) saga.Step {
	return saga.Step{
		Name: name,
		Action: func(_ context.Context) error {
			j.entries = append(j.entries, "do:"+name)

			return fail
		},
		Compensate: func(_ context.Context) error {
			j.entries = append(j.entries, "undo:"+name)

			return nil
		},
	}
}

func TestExecute_AllStepsSucceed(t *testing.T) {
	j := &journal{}

	err := saga.New("cancel-ticket", mocks.NewOtel()).
		AddStep(j.step("release-seats", nil)).
		AddStep(j.step("delete-bookings", nil)).
		AddStep(j.step("delete-ticket", nil)).
		Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"do:release-seats", "do:delete-bookings", "do:delete-ticket"}, j.entries)
}

func TestExecute_CompensatesInReverse(t *testing.T) {
	j := &journal{}
	boom := errors.New("write failed")

	var hooked []string

	err := saga.New("cancel-ticket", mocks.NewOtel()).
		OnCompensation(func(_, step, result string) { hooked = append(hooked, step+"="+result) }).
		AddStep(j.step("release-seats", nil)).
		AddStep(j.step("delete-bookings", nil)).
		AddStep(j.step("unlink-ticket", boom)).
		AddStep(j.step("delete-ticket", nil)).
		Execute(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var sagaErr *saga.Error
	require.ErrorAs(t, err, &sagaErr)
	assert.Equal(t, "unlink-ticket", sagaErr.Step)
	assert.True(t, sagaErr.Compensated())

	assert.Equal(t, []string{
		"do:release-seats", "do:delete-bookings", "do:unlink-ticket",
		"undo:delete-bookings", "undo:release-seats",
	}, j.entries)
	assert.Equal(t, []string{"delete-bookings=ok", "release-seats=ok"}, hooked)
}

func TestExecute_CompensationFailureIsJoined(t *testing.T) {
	boom := errors.New("write failed")
	stuck := errors.New("reinsert failed")

	ran := []string{}

	err := saga.New("cancel-ticket", mocks.NewOtel()).
		AddStep(saga.Step{
			Name:       "release-seats",
			Action:     func(context.Context) error { return nil },
			Compensate: func(context.Context) error { ran = append(ran, "release-seats"); return nil },
		}).
		AddStep(saga.Step{
			Name:       "delete-bookings",
			Action:     func(context.Context) error { return nil },
			Compensate: func(context.Context) error { ran = append(ran, "delete-bookings"); return stuck },
		}).
		AddStep(saga.Step{
			Name:   "delete-ticket",
			Action: func(context.Context) error { return boom },
		}).
		Execute(context.Background())

	var sagaErr *saga.Error
	require.ErrorAs(t, err, &sagaErr)

	assert.False(t, sagaErr.Compensated())
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, stuck)
	assert.Equal(t, []string{"delete-bookings", "release-seats"}, ran)
	assert.Contains(t, err.Error(), "compensate delete-bookings")
}

func TestExecute_CompensationIgnoresCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var compensateCtxErr error

	err := saga.New("cancel-ticket", mocks.NewOtel()).
		AddStep(saga.Step{
			Name:       "release-seats",
			Action:     func(context.Context) error { return nil },
			Compensate: func(c context.Context) error { compensateCtxErr = c.Err(); return nil },
		}).
		AddStep(saga.Step{
			Name: "delete-bookings",
			Action: func(context.Context) error {
				cancel()

				return context.Canceled
			},
		}).
		Execute(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.NoError(t, compensateCtxErr)
}
