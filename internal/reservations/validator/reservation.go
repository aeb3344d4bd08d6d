package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"oficinareserva/pkg/logger"
	"oficinareserva/pkg/model"
	"oficinareserva/pkg/timeslot"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type ReservationValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewReservationValidator(log *logger.Logger) *ReservationValidator {
	v := validator.New()

	if err := v.RegisterValidation("hour_slot", validateHourSlot); err != nil {
		log.Fatal("Failed to register 'hour_slot' validator", "error", err)
	}
	if err := v.RegisterValidation("iso_date", validateISODate); err != nil {
		log.Fatal("Failed to register 'iso_date' validator", "error", err)
	}

	log.Info("Reservation validator initialized successfully")

	return &ReservationValidator{
		validate: v,
		logger:   log,
	}
}

func validateHourSlot(fl validator.FieldLevel) bool {
	return timeslot.ValidHour(fl.Field().String())
}

func validateISODate(fl validator.FieldLevel) bool {
	return timeslot.ValidDate(fl.Field().String())
}

// Validate enforces the create preconditions in order, failing on the
// first violated group: field presence and shape, then the time range,
// then the past-date rule. Overlap detection is the service's job since
// it needs store state.
func (v *ReservationValidator) Validate(res *model.Reservation) error {
	if err := v.validate.Struct(res); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	if res.StartTime >= res.EndTime {
		return ValidationErrors{
			ValidationError{
				Field:   "EndTime",
				Message: "end time must be after start time",
			},
		}
	}

	// "Today" comes from the ambient clock at call time.
	if res.Date < timeslot.Today() {
		return ValidationErrors{
			ValidationError{
				Field:   "Date",
				Message: "reservations cannot be made for past dates",
			},
		}
	}

	return nil
}

func (v *ReservationValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", err.Field())
		case "max":
			message = fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", err.Field())
		case "hour_slot":
			message = fmt.Sprintf("%s must be an hour slot between %s and %s", err.Field(), timeslot.Hours[0], timeslot.Hours[len(timeslot.Hours)-1])
		case "iso_date":
			message = fmt.Sprintf("%s must be a valid date in YYYY-MM-DD format", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
