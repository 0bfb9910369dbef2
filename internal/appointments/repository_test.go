package appointments

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestListBooked(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("SELECT patient_name, doctor, date, time, status").
		WillReturnRows(pgxmock.NewRows([]string{"patient_name", "doctor", "date", "time", "status"}).
			AddRow("Alice Ngata", "Dr Smith", "2024-08-25", "09:15 AM", "booked").
			AddRow("Bob Reyes", "Dr Wick", "2024-08-26", "08:00 PM", "booked"))

	repo := NewRepositoryWithQuerier(mock)
	appts, err := repo.ListBooked(context.Background())
	if err != nil {
		t.Fatalf("ListBooked failed: %v", err)
	}

	if len(appts) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(appts))
	}
	want := Appointment{
		PatientName: "Alice Ngata",
		Doctor:      "Dr Smith",
		Date:        "2024-08-25",
		Time:        "09:15 AM",
		Status:      StatusBooked,
	}
	if appts[0] != want {
		t.Errorf("first appointment = %+v, want %+v", appts[0], want)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestListBookedEmptyTable(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("SELECT patient_name, doctor, date, time, status").
		WillReturnRows(pgxmock.NewRows([]string{"patient_name", "doctor", "date", "time", "status"}))

	repo := NewRepositoryWithQuerier(mock)
	appts, err := repo.ListBooked(context.Background())
	if err != nil {
		t.Fatalf("ListBooked failed: %v", err)
	}
	if len(appts) != 0 {
		t.Fatalf("expected no appointments, got %d", len(appts))
	}
}

func TestListBookedQueryError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery("SELECT patient_name, doctor, date, time, status").
		WillReturnError(errors.New("connection refused"))

	repo := NewRepositoryWithQuerier(mock)
	if _, err := repo.ListBooked(context.Background()); err == nil {
		t.Fatal("expected error from failed query")
	}
}
