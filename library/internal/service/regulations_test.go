package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Astemirdum/e-library/library/internal/errs"
	"github.com/Astemirdum/e-library/library/internal/model"
)

func intPtr(v int) *int { return &v }

func TestRegulations_Update(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		req     model.RegulationsRequest
		want    model.Regulations
		wantErr bool
	}{
		{
			name: "empty keeps defaults",
			req:  model.RegulationsRequest{},
			want: model.DefaultRegulations(),
		},
		{
			name: "partial",
			req:  model.RegulationsRequest{AgeMax: intPtr(70), NumberOfBooks: intPtr(5)},
			want: model.Regulations{AgeMin: 18, AgeMax: 70, ExpiredMonth: 6, NumberOfBooks: 5, PublicationYear: 8},
		},
		{
			name:    "min above max",
			req:     model.RegulationsRequest{AgeMin: intPtr(60)},
			want:    model.DefaultRegulations(),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := NewRegulations()
			got, err := r.Update(tt.req)
			if tt.wantErr {
				require.Equal(t, 400, errs.Code(err))
			} else {
				require.NoError(t, err)
			}
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.want, r.Get())
		})
	}
}

func TestRegulations_Checks(t *testing.T) {
	t.Parallel()
	r := NewRegulations()
	now := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, r.CheckBookCount(99))
	require.Error(t, r.CheckBookCount(100))

	require.NoError(t, r.CheckPublicationYear(2016, now))
	require.Error(t, r.CheckPublicationYear(2015, now))

	require.NoError(t, r.CheckReaderAge(time.Date(2006, time.June, 1, 0, 0, 0, 0, time.UTC), now))
	require.Error(t, r.CheckReaderAge(time.Date(2006, time.June, 2, 0, 0, 0, 0, time.UTC), now))

	require.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), r.ExpiredDate(now))
}

func TestRegulations_Concurrent(t *testing.T) {
	t.Parallel()
	r := NewRegulations()
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = r.Update(model.RegulationsRequest{NumberOfBooks: intPtr(i)})
		}()
		go func() {
			defer wg.Done()
			_ = r.CheckBookCount(i)
		}()
	}
	wg.Wait()
	require.GreaterOrEqual(t, r.Get().NumberOfBooks, 1)
}
