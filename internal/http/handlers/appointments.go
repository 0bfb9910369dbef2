package handlers

import (
	"encoding/json"
	"net/http"

	"clinicbot/internal/appointments"
	"clinicbot/pkg/logging"
)

// AppointmentsHandler handles HTTP requests for the appointment list.
type AppointmentsHandler struct {
	svc    *appointments.Service
	logger *logging.Logger
}

// NewAppointmentsHandler creates a new appointments handler.
func NewAppointmentsHandler(svc *appointments.Service, logger *logging.Logger) *AppointmentsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AppointmentsHandler{svc: svc, logger: logger}
}

// ListAppointmentsResponse is the response for listing booked appointments.
type ListAppointmentsResponse struct {
	Appointments []appointments.Appointment `json:"appointments"`
	Count        int                        `json:"count"`
}

// ListBooked handles GET /appointments requests. The read never fails from
// the client's point of view; a store error serves an empty list.
func (h *AppointmentsHandler) ListBooked(w http.ResponseWriter, r *http.Request) {
	appts := []appointments.Appointment{}
	if h.svc != nil {
		appts = h.svc.ListBookedOrEmpty(r.Context())
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ListAppointmentsResponse{
		Appointments: appts,
		Count:        len(appts),
	})
}
