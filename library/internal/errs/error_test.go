package errs_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Astemirdum/e-library/library/internal/errs"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found", err: errs.ErrNotFound, want: http.StatusNotFound},
		{name: "wrapped", err: errors.Wrap(errs.ErrOverpaid, "fee receipt"), want: http.StatusBadRequest},
		{name: "fmt wrapped", err: fmt.Errorf("x: %w", errs.BadRequest("bad")), want: http.StatusBadRequest},
		{name: "plain", err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, errs.Code(tt.err))
		})
	}
}

func TestError_Is(t *testing.T) {
	require.ErrorIs(t, errs.New(http.StatusNotFound, "No document found with that ID"), errs.ErrNotFound)
	require.NotErrorIs(t, errs.NotFound("other"), errs.ErrNotFound)
}
