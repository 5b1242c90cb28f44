// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Stats summarizes a user's most recent fitness entries.
type Stats struct {
	AvgSteps        int64   `json:"avg_steps"`
	AvgCalories     int64   `json:"avg_calories"`
	AvgSleepHours   float64 `json:"avg_sleep_hours"`
	TotalDistanceKm float64 `json:"total_distance_km"`
	TotalWorkouts   int64   `json:"total_workouts"`
	EntriesCount    int     `json:"entries_count"`
}
