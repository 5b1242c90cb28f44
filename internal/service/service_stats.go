// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// statsWindow is the number of most recent entries the stats cover.
const statsWindow = 7

type statsService struct {
	fitnessRepository store.FitnessEntryRepository
	workoutRepository store.WorkoutRepository
	logger            *logger.Logger
}

func NewStatsService(fitnessRepository store.FitnessEntryRepository, workoutRepository store.WorkoutRepository, logger *logger.Logger) StatsService {
	return &statsService{
		fitnessRepository: fitnessRepository,
		workoutRepository: workoutRepository,
		logger:            logger,
	}
}

// ComputeStats aggregates the latest statsWindow entries of userID. The
// workout total covers all workouts, not just the window.
func (s *statsService) ComputeStats(ctx context.Context, userID string) (models.Stats, error) {
	entries, err := s.fitnessRepository.ListFitnessEntries(ctx, userID, statsWindow)
	if err != nil {
		return models.Stats{}, fmt.Errorf("error loading fitness entries for stats: %w", err)
	}

	workouts, err := s.workoutRepository.CountWorkouts(ctx, userID)
	if err != nil {
		return models.Stats{}, fmt.Errorf("error counting workouts for stats: %w", err)
	}

	return aggregateStats(entries, workouts), nil
}

// aggregateStats is pure. Averages of integer metrics use floor division;
// float aggregates are rounded to one decimal place.
func aggregateStats(entries []models.FitnessEntry, totalWorkouts int64) models.Stats {
	stats := models.Stats{
		TotalWorkouts: totalWorkouts,
		EntriesCount:  len(entries),
	}
	if len(entries) == 0 {
		return stats
	}

	var steps, calories int64
	var sleep, distance float64
	for _, e := range entries {
		steps += e.Steps
		calories += e.Calories
		sleep += e.SleepHours
		distance += e.Distance
	}

	n := int64(len(entries))
	stats.AvgSteps = floorDiv(steps, n)
	stats.AvgCalories = floorDiv(calories, n)
	stats.AvgSleepHours = round1(sleep / float64(n))
	stats.TotalDistanceKm = round1(distance)

	return stats
}

// floorDiv rounds toward negative infinity, unlike Go's / operator.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
