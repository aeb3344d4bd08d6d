package validator

import (
	"strings"
	"testing"

	"oficinareserva/pkg/logger"
	"oficinareserva/pkg/model"
)

func newTestValidator() *ReservationValidator {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	return NewReservationValidator(log)
}

func validReservation() *model.Reservation {
	return &model.Reservation{
		EquipmentID: "eq-1",
		Date:        "2100-01-15",
		StartTime:   "09:00",
		EndTime:     "11:00",
		UserName:    "Carlos Pereira",
		Observation: "manutenção da bancada",
	}
}

func TestValidate(t *testing.T) {
	v := newTestValidator()

	tests := []struct {
		name      string
		mutate    func(r *model.Reservation)
		wantError bool
		wantIn    string
	}{
		{
			name:      "valid reservation",
			mutate:    func(r *model.Reservation) {},
			wantError: false,
		},
		{
			name:      "missing equipment id",
			mutate:    func(r *model.Reservation) { r.EquipmentID = "" },
			wantError: true,
			wantIn:    "EquipmentID",
		},
		{
			name:      "missing user name",
			mutate:    func(r *model.Reservation) { r.UserName = "" },
			wantError: true,
			wantIn:    "UserName",
		},
		{
			name:      "missing date",
			mutate:    func(r *model.Reservation) { r.Date = "" },
			wantError: true,
			wantIn:    "Date",
		},
		{
			name:      "malformed date",
			mutate:    func(r *model.Reservation) { r.Date = "15/01/2100" },
			wantError: true,
			wantIn:    "YYYY-MM-DD",
		},
		{
			name:      "start time off the hour grid",
			mutate:    func(r *model.Reservation) { r.StartTime = "09:30" },
			wantError: true,
			wantIn:    "hour slot",
		},
		{
			name:      "end time before grid start",
			mutate:    func(r *model.Reservation) { r.EndTime = "06:00" },
			wantError: true,
		},
		{
			name: "inverted range",
			mutate: func(r *model.Reservation) {
				r.StartTime = "10:00"
				r.EndTime = "09:00"
			},
			wantError: true,
			wantIn:    "after start time",
		},
		{
			name: "zero-length range",
			mutate: func(r *model.Reservation) {
				r.StartTime = "10:00"
				r.EndTime = "10:00"
			},
			wantError: true,
			wantIn:    "after start time",
		},
		{
			name:      "past date",
			mutate:    func(r *model.Reservation) { r.Date = "2020-01-01" },
			wantError: true,
			wantIn:    "past dates",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validReservation()
			tt.mutate(r)

			err := v.Validate(r)
			if (err != nil) != tt.wantError {
				t.Fatalf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
			if err != nil && tt.wantIn != "" && !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("Validate() error %q does not mention %q", err.Error(), tt.wantIn)
			}
		})
	}
}

func TestValidateChecksRangeBeforeDate(t *testing.T) {
	v := newTestValidator()

	// Both the range and the date are wrong; the range violation must win,
	// matching the documented precondition order.
	r := validReservation()
	r.Date = "2020-01-01"
	r.StartTime = "11:00"
	r.EndTime = "09:00"

	err := v.Validate(r)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "after start time") {
		t.Errorf("expected the time range violation to be reported first, got %q", err.Error())
	}
}
