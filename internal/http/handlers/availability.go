package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"clinicbot/internal/appointments"
	"clinicbot/internal/slots"
	"clinicbot/pkg/logging"
)

// AvailabilityHandler serves the slot grid and the bookable date window.
type AvailabilityHandler struct {
	generator    *slots.Generator
	appointments *appointments.Service
	logger       *logging.Logger
	datesAhead   int
}

// NewAvailabilityHandler creates a new availability handler. datesAhead
// bounds the date window; values below 1 fall back to the default.
func NewAvailabilityHandler(generator *slots.Generator, appts *appointments.Service, logger *logging.Logger, datesAhead int) *AvailabilityHandler {
	if generator == nil {
		generator = slots.NewGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	if datesAhead < 1 {
		datesAhead = slots.DefaultDaysAhead
	}
	return &AvailabilityHandler{
		generator:    generator,
		appointments: appts,
		logger:       logger,
		datesAhead:   datesAhead,
	}
}

// SlotsResponse is the response for GET /slots.
type SlotsResponse struct {
	Doctor string   `json:"doctor,omitempty"`
	Date   string   `json:"date"`
	Slots  []string `json:"slots"`
	Count  int      `json:"count"`
}

// GetSlots handles GET /slots?doctor=&date= requests, returning the slot
// grid minus the doctor's booked times for that date. A store failure is
// logged and the full grid served; the front end degrades rather than
// erroring out.
func (h *AvailabilityHandler) GetSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		http.Error(w, "date is required", http.StatusBadRequest)
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	doctor := r.URL.Query().Get("doctor")

	all := slots.Times()
	available := all
	if h.appointments != nil {
		booked, err := h.appointments.BookedTimes(r.Context(), doctor, date)
		if err != nil {
			h.logger.Error("failed to fetch booked times", "error", err, "doctor", doctor, "date", date)
		} else {
			available = slots.FilterBooked(all, booked)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SlotsResponse{
		Doctor: doctor,
		Date:   date,
		Slots:  available,
		Count:  len(available),
	})
}

// DatesResponse is the response for GET /dates.
type DatesResponse struct {
	Dates []string `json:"dates"`
	Count int      `json:"count"`
}

// GetDates handles GET /dates?days= requests. days overrides the configured
// window when it is a positive number no larger than the configured window.
func (h *AvailabilityHandler) GetDates(w http.ResponseWriter, r *http.Request) {
	days := h.datesAhead
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		if n, err := strconv.Atoi(daysStr); err == nil && n > 0 && n <= h.datesAhead {
			days = n
		}
	}

	dates := h.generator.Dates(days)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DatesResponse{Dates: dates, Count: len(dates)})
}
