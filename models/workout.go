// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// WorkoutEntry is a single logged workout. Several workouts may share a date.
type WorkoutEntry struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	Date           string `json:"date"`
	WorkoutType    string `json:"workout_type"`
	Duration       int64  `json:"duration"`
	CaloriesBurned int64  `json:"calories_burned"`
	Notes          string `json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

// WorkoutRequest is the body of POST /api/workouts.
//
// Duration and CaloriesBurned are pointers so that validation can tell an
// absent field from an explicit zero.
type WorkoutRequest struct {
	Date           string `json:"date"`
	WorkoutType    string `json:"workout_type"`
	Duration       *int64 `json:"duration"`
	CaloriesBurned *int64 `json:"calories_burned"`
	Notes          string `json:"notes"`
}
