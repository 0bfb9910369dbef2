package appointments

// Appointment statuses this service cares about. The appointments table is
// owned by the booking backend; only booked rows feed slot filtering.
const (
	StatusBooked    = "booked"
	StatusCancelled = "cancelled"
)

// Appointment mirrors one row of the appointments table.
type Appointment struct {
	PatientName string `json:"patient_name"`
	Doctor      string `json:"doctor"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
}
