package horoscope

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	apperrors "github.com/yanqian/daily-horoscope/pkg/errors"
	"github.com/yanqian/daily-horoscope/pkg/util"
)

// Service exposes daily horoscope generation.
type Service interface {
	Daily(ctx context.Context, req Request) (Record, error)
	AllDaily(ctx context.Context, req Request) (AllResponse, error)
	Signs() []string
}

// Observer is notified about every record the service hands out.
type Observer interface {
	ObserveGenerated(sign string)
	ObserveRejected(reason string)
}

type service struct {
	cfg      Config
	observer Observer
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wires up the horoscope domain.
func NewService(cfg Config, observer Observer, logger *slog.Logger) Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &service{
		cfg:      cfg,
		observer: observer,
		logger:   logger.With("component", "horoscope.service"),
		now:      util.NowUTC,
	}
}

func (s *service) Daily(_ context.Context, req Request) (Record, error) {
	date := s.resolveDate(req.Date)
	sign := strings.TrimSpace(req.Sign)

	rec, err := Generate(date, sign)
	if err != nil {
		return Record{}, s.translate(err, "sign", sign, "date", date)
	}
	s.logger.Debug("horoscope generated", "sign", rec.Sign, "date", rec.Date)
	s.observe(rec)
	return rec, nil
}

func (s *service) AllDaily(_ context.Context, req Request) (AllResponse, error) {
	date := s.resolveDate(req.Date)

	records, err := GenerateAll(date)
	if err != nil {
		return AllResponse{}, s.translate(err, "date", date)
	}
	s.logger.Debug("horoscopes generated", "date", date, "count", len(records))
	for _, rec := range records {
		s.observe(rec)
	}
	return AllResponse{Date: date, Horoscopes: records}, nil
}

func (s *service) Signs() []string {
	return Signs()
}

func (s *service) resolveDate(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return DateStamp(s.now(), s.cfg.Location)
	}
	return trimmed
}

func (s *service) translate(err error, attrs ...any) error {
	switch {
	case errors.Is(err, ErrInvalidKey):
		s.reject(apperrors.CodeInvalidKey)
		s.logger.Warn("horoscope rejected unknown sign", attrs...)
		return apperrors.Wrap(apperrors.CodeInvalidKey, "unknown sign", err)
	case errors.Is(err, ErrInvalidArgument):
		s.reject(apperrors.CodeInvalidArgument)
		s.logger.Warn("horoscope rejected invalid argument", append(attrs, "error", err)...)
		return apperrors.Wrap(apperrors.CodeInvalidArgument, "date must be formatted as YYYY-MM-DD", err)
	default:
		s.logger.Error("horoscope generation failed", append(attrs, "error", err)...)
		return apperrors.Wrap("horoscope_error", "failed to generate horoscope", err)
	}
}

func (s *service) observe(rec Record) {
	if s.observer != nil {
		s.observer.ObserveGenerated(rec.Sign)
	}
}

func (s *service) reject(reason string) {
	if s.observer != nil {
		s.observer.ObserveRejected(reason)
	}
}
