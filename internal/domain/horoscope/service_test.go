package horoscope

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/daily-horoscope/pkg/errors"
)

func TestServiceDailyUsesRequestedDate(t *testing.T) {
	obs := &stubObserver{}
	svc := newServiceUnderTest(t, obs, "2030-01-01T12:00:00Z", time.UTC)

	rec, err := svc.Daily(context.Background(), Request{Sign: "koc", Date: "2024-01-01"})
	require.NoError(t, err)
	require.Equal(t, "2024-01-01", rec.Date)
	require.Equal(t, 13, rec.Love)
	require.Equal(t, []string{"koc"}, obs.generated)
}

func TestServiceDailyDefaultsToToday(t *testing.T) {
	svc := newServiceUnderTest(t, nil, "2024-01-01T22:30:00Z", time.UTC)

	rec, err := svc.Daily(context.Background(), Request{Sign: "koc"})
	require.NoError(t, err)
	require.Equal(t, "2024-01-01", rec.Date)
}

func TestServiceDailyHonoursLocation(t *testing.T) {
	istanbul := time.FixedZone("Europe/Istanbul", 3*60*60)
	svc := newServiceUnderTest(t, nil, "2024-01-01T22:30:00Z", istanbul)

	rec, err := svc.Daily(context.Background(), Request{Sign: "koc"})
	require.NoError(t, err)
	require.Equal(t, "2024-01-02", rec.Date)
}

func TestServiceDailyInvalidKey(t *testing.T) {
	obs := &stubObserver{}
	svc := newServiceUnderTest(t, obs, "2024-01-01T00:00:00Z", time.UTC)

	rec, err := svc.Daily(context.Background(), Request{Sign: "not-a-real-sign", Date: "2024-01-01"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_key"))
	require.ErrorIs(t, err, ErrInvalidKey)
	require.Equal(t, Record{}, rec)
	require.Empty(t, obs.generated)
	require.Equal(t, []string{"invalid_key"}, obs.rejected)
}

func TestServiceDailyInvalidDate(t *testing.T) {
	svc := newServiceUnderTest(t, nil, "2024-01-01T00:00:00Z", time.UTC)

	_, err := svc.Daily(context.Background(), Request{Sign: "koc", Date: "01/01/2024"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_argument"))
}

func TestServiceAllDaily(t *testing.T) {
	obs := &stubObserver{}
	svc := newServiceUnderTest(t, obs, "2024-01-01T08:00:00Z", time.UTC)

	resp, err := svc.AllDaily(context.Background(), Request{})
	require.NoError(t, err)
	require.Equal(t, "2024-01-01", resp.Date)
	require.Len(t, resp.Horoscopes, 12)
	require.Equal(t, Signs(), obs.generated)

	for _, rec := range resp.Horoscopes {
		single, err := svc.Daily(context.Background(), Request{Sign: rec.Sign, Date: resp.Date})
		require.NoError(t, err)
		require.Equal(t, single, rec)
	}
}

func TestServiceAllDailyInvalidDate(t *testing.T) {
	svc := newServiceUnderTest(t, nil, "2024-01-01T00:00:00Z", time.UTC)

	resp, err := svc.AllDaily(context.Background(), Request{Date: "yesterday"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_argument"))
	require.Empty(t, resp.Horoscopes)
}

func newServiceUnderTest(t *testing.T, obs Observer, now string, loc *time.Location) *service {
	t.Helper()
	fixed := mustTime(t, now)
	return &service{
		cfg:      Config{Location: loc},
		observer: obs,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      func() time.Time { return fixed },
	}
}

type stubObserver struct {
	generated []string
	rejected  []string
}

func (s *stubObserver) ObserveGenerated(sign string) {
	s.generated = append(s.generated, sign)
}

func (s *stubObserver) ObserveRejected(reason string) {
	s.rejected = append(s.rejected, reason)
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(dateLayout, value)
	require.NoError(t, err)
	return ts
}
