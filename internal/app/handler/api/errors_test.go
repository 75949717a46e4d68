package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"warp_ships/internal/app/service"

	"github.com/stretchr/testify/assert"
)

func TestFromServiceError(t *testing.T) {
	cause := errors.New("database is locked")

	tests := []struct {
		name string
		err  error
		want *AppError
	}{
		{"not found", &service.Error{Kind: service.KindNotFound, Op: "remove ship"}, ErrNotFound},
		{"db error", &service.Error{Kind: service.KindDBError, Op: "add ship", Err: cause}, ErrDB},
		{"unknown", &service.Error{Kind: service.KindUnknown, Op: "list ships"}, ErrUnknown},
		{"wrapped db error", fmt.Errorf("handler: %w", &service.Error{Kind: service.KindDBError}), ErrDB},
		{"deadline", &service.Error{Kind: service.KindDBError, Err: context.DeadlineExceeded}, ErrTimeout},
		{"client gone", &service.Error{Kind: service.KindUnknown, Op: "list ships", Err: fmt.Errorf("acquire storage lock: %w", context.Canceled)}, ErrCanceled},
		{"foreign error", errors.New("something else"), ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromServiceError(tt.err)

			assert.Equal(t, tt.want.Status, got.Status)
			assert.Equal(t, tt.want.Code, got.Code)
			assert.Equal(t, tt.want.Message, got.Message)
			assert.ErrorIs(t, got, tt.err)
		})
	}
}

func TestCanceledIsNotAServerError(t *testing.T) {
	got := FromServiceError(&service.Error{Kind: service.KindUnknown, Err: context.Canceled})

	assert.Equal(t, "CANCELED", got.Code)
	assert.Less(t, got.Status, http.StatusInternalServerError)
}

func TestWithCauseDoesNotMutateSentinel(t *testing.T) {
	got := ErrDB.withCause(errors.New("disk full"))

	assert.Nil(t, ErrDB.Err)
	assert.Equal(t, http.StatusInternalServerError, got.Status)
	assert.Equal(t, "something in the DB didn't work: disk full", got.Error())
}
