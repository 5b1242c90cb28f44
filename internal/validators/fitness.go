// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/go-fit-tracker/internal/crypto"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// Field names, matching the JSON names of the request bodies. They can be
// passed to Validate to restrict validation to a subset of fields.
const (
	FieldEmail    = "email"
	FieldName     = "name"
	FieldPassword = "password"

	FieldDate          = "date"
	FieldSteps         = "steps"
	FieldCalories      = "calories"
	FieldDistance      = "distance"
	FieldActiveMinutes = "active_minutes"
	FieldHeartRate     = "heart_rate"
	FieldSleepHours    = "sleep_hours"
	FieldWaterIntake   = "water_intake"
	FieldWeight        = "weight"

	FieldWorkoutType    = "workout_type"
	FieldDuration       = "duration"
	FieldCaloriesBurned = "calories_burned"

	FieldLimit = "limit"
)

var (
	signupFields  = []string{FieldEmail, FieldName, FieldPassword}
	loginFields   = []string{FieldEmail, FieldPassword}
	entryFields   = []string{FieldDate, FieldSteps, FieldCalories, FieldDistance, FieldActiveMinutes, FieldHeartRate, FieldSleepHours, FieldWaterIntake, FieldWeight}
	workoutFields = []string{FieldDate, FieldWorkoutType, FieldDuration, FieldCaloriesBurned}
)

// FitnessValidator implements Validator for the request bodies of the
// fitness API: SignupRequest, LoginRequest, FitnessEntryRequest and
// WorkoutRequest. Value and pointer forms are accepted.
type FitnessValidator struct{}

func NewFitnessValidator() Validator {
	return &FitnessValidator{}
}

func (v *FitnessValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.FitnessEntryRequest:
		return v.validateFitnessEntry(value, fields...)
	case *models.FitnessEntryRequest:
		return v.validateFitnessEntry(*value, fields...)

	case models.WorkoutRequest:
		return v.validateWorkout(value, fields...)
	case *models.WorkoutRequest:
		return v.validateWorkout(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FitnessValidator) validateSignup(request models.SignupRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = signupFields
	}

	errs := fieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			checkEmail(errs, request.Email)
		case FieldName:
			if strings.TrimSpace(request.Name) == "" {
				errs.add(FieldName, reasonRequired)
			}
		case FieldPassword:
			checkPassword(errs, request.Password)
		default:
			return ErrUnknownField
		}
	}
	return errs.err()
}

func (v *FitnessValidator) validateLogin(request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = loginFields
	}

	errs := fieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			checkEmail(errs, request.Email)
		case FieldPassword:
			checkPassword(errs, request.Password)
		default:
			return ErrUnknownField
		}
	}
	return errs.err()
}

func (v *FitnessValidator) validateFitnessEntry(request models.FitnessEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = entryFields
	}

	errs := fieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldDate:
			checkRequired(errs, FieldDate, request.Date)
		case FieldSteps:
			checkNonNegative(errs, f, float64(request.Steps))
		case FieldCalories:
			checkNonNegative(errs, f, float64(request.Calories))
		case FieldDistance:
			checkNonNegative(errs, f, request.Distance)
		case FieldActiveMinutes:
			checkNonNegative(errs, f, float64(request.ActiveMinutes))
		case FieldHeartRate:
			checkNonNegative(errs, f, float64(request.HeartRate))
		case FieldSleepHours:
			checkNonNegative(errs, f, request.SleepHours)
		case FieldWaterIntake:
			checkNonNegative(errs, f, request.WaterIntake)
		case FieldWeight:
			checkNonNegative(errs, f, request.Weight)
		default:
			return ErrUnknownField
		}
	}
	return errs.err()
}

func (v *FitnessValidator) validateWorkout(request models.WorkoutRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = workoutFields
	}

	errs := fieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldDate:
			checkRequired(errs, FieldDate, request.Date)
		case FieldWorkoutType:
			checkRequired(errs, FieldWorkoutType, request.WorkoutType)
		case FieldDuration:
			checkRequiredNonNegative(errs, f, request.Duration)
		case FieldCaloriesBurned:
			checkRequiredNonNegative(errs, f, request.CaloriesBurned)
		default:
			return ErrUnknownField
		}
	}
	return errs.err()
}

// checkEmail accepts a bare address only: display names and angle
// brackets are rejected.
func checkEmail(errs fieldErrors, email string) {
	email = strings.TrimSpace(email)
	if email == "" {
		errs.add(FieldEmail, reasonRequired)
		return
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		errs.add(FieldEmail, reasonInvalidEmail)
	}
}

func checkPassword(errs fieldErrors, password string) {
	switch {
	case password == "":
		errs.add(FieldPassword, reasonRequired)
	case len(password) > crypto.MaxPasswordBytes:
		errs.add(FieldPassword, reasonTooLong)
	}
}

func checkRequired(errs fieldErrors, field, value string) {
	if strings.TrimSpace(value) == "" {
		errs.add(field, reasonRequired)
	}
}

func checkNonNegative(errs fieldErrors, field string, value float64) {
	if value < 0 {
		errs.add(field, reasonNegative)
	}
}

func checkRequiredNonNegative(errs fieldErrors, field string, value *int64) {
	if value == nil {
		errs.add(field, reasonRequired)
		return
	}
	checkNonNegative(errs, field, float64(*value))
}
