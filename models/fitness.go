// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// FitnessEntry holds one user's metrics for one calendar date.
// At most one entry exists per (UserID, Date).
type FitnessEntry struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	// Date is an opaque key such as "2024-01-31". It is compared as a string.
	Date string `json:"date"`

	Steps         int64   `json:"steps"`
	Calories      int64   `json:"calories"`
	Distance      float64 `json:"distance"`
	ActiveMinutes int64   `json:"active_minutes"`
	HeartRate     int64   `json:"heart_rate"`
	SleepHours    float64 `json:"sleep_hours"`
	WaterIntake   float64 `json:"water_intake"`
	Weight        float64 `json:"weight"`

	CreatedAt time.Time `json:"created_at"`
}

// FitnessEntryRequest is the body of POST and PUT on /api/fitness-entries.
// Every metric is optional; an absent metric is zero.
type FitnessEntryRequest struct {
	Date string `json:"date"`

	Steps         int64   `json:"steps"`
	Calories      int64   `json:"calories"`
	Distance      float64 `json:"distance"`
	ActiveMinutes int64   `json:"active_minutes"`
	HeartRate     int64   `json:"heart_rate"`
	SleepHours    float64 `json:"sleep_hours"`
	WaterIntake   float64 `json:"water_intake"`
	Weight        float64 `json:"weight"`
}

// Apply copies the request fields onto e, leaving identity fields untouched.
func (r FitnessEntryRequest) Apply(e *FitnessEntry) {
	e.Date = r.Date
	e.Steps = r.Steps
	e.Calories = r.Calories
	e.Distance = r.Distance
	e.ActiveMinutes = r.ActiveMinutes
	e.HeartRate = r.HeartRate
	e.SleepHours = r.SleepHours
	e.WaterIntake = r.WaterIntake
	e.Weight = r.Weight
}
