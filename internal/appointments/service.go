package appointments

import (
	"context"

	"clinicbot/internal/observability/metrics"
	"clinicbot/pkg/logging"
)

// Service wraps the repository with the behaviors callers rely on: the
// legacy never-fails read and per-doctor slot lookups.
type Service struct {
	repo    *Repository
	logger  *logging.Logger
	metrics *metrics.ChatMetrics
}

// NewService creates an appointments service.
func NewService(repo *Repository, logger *logging.Logger, m *metrics.ChatMetrics) *Service {
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{repo: repo, logger: logger, metrics: m}
}

// ListBooked returns booked appointments, surfacing store failures to the
// caller.
func (s *Service) ListBooked(ctx context.Context) ([]Appointment, error) {
	return s.repo.ListBooked(ctx)
}

// ListBookedOrEmpty is the compatibility read: a store failure is logged,
// counted, and masked as an empty list. Callers that need to distinguish
// "no bookings" from "read failed" should use ListBooked instead.
func (s *Service) ListBookedOrEmpty(ctx context.Context) []Appointment {
	appts, err := s.repo.ListBooked(ctx)
	if err != nil {
		s.logger.Error("failed to fetch booked appointments", "error", err)
		s.metrics.ObserveReadFailure()
		return []Appointment{}
	}
	if appts == nil {
		appts = []Appointment{}
	}
	return appts
}

// BookedTimes returns the booked slot labels for one doctor on one date,
// ready to subtract from the slot grid. Doctor matching is exact; the
// booking form writes the same names this service extracts.
func (s *Service) BookedTimes(ctx context.Context, doctor, date string) ([]string, error) {
	appts, err := s.repo.ListBooked(ctx)
	if err != nil {
		return nil, err
	}
	var times []string
	for _, a := range appts {
		if a.Date != date {
			continue
		}
		if doctor != "" && a.Doctor != doctor {
			continue
		}
		times = append(times, a.Time)
	}
	return times, nil
}
