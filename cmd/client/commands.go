// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"

	"github.com/MKhiriev/go-fit-tracker/internal/adapter"
	"github.com/MKhiriev/go-fit-tracker/models"
)

var errMissingID = errors.New("-id is required")

type command struct {
	summary string
	run     func(ctx context.Context, api adapter.FitnessAPI, args []string) (any, error)
}

var commands = map[string]command{
	"signup":         {"register a new account", runSignup},
	"login":          {"log in and print a token", runLogin},
	"me":             {"show the current user", runMe},
	"add-entry":      {"log the metrics of one day", runAddEntry},
	"update-entry":   {"replace the metrics of an entry", runUpdateEntry},
	"delete-entry":   {"delete a fitness entry", runDeleteEntry},
	"entries":        {"list fitness entries, newest first", runEntries},
	"add-workout":    {"log a workout", runAddWorkout},
	"delete-workout": {"delete a workout", runDeleteWorkout},
	"workouts":       {"list workouts, newest first", runWorkouts},
	"stats":          {"show stats of the last 7 entries", runStats},
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newFlagSet(name string) *flag.FlagSet {
	return flag.NewFlagSet(name, flag.ContinueOnError)
}

func runSignup(ctx context.Context, api adapter.FitnessAPI, args []string) (any, error) {
	var request models.SignupRequest
	fs := newFlagSet("signup")
	fs.StringVar(&request.Email, "email", "", "account email")
	fs.StringVar(&request.Name, "name", "", "display name")
	fs.StringVar(&request.Password, "password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return api.Signup(ctx, request)
}

func runLogin(ctx context.Context, api adapter.FitnessAPI, args []string) (any, error) {
	var request models.LoginRequest
	fs := newFlagSet("login")
	fs.StringVar(&request.Email, "email", "", "account email")
	fs.StringVar(&request.Password, "password", "", "account password")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return api.Login(ctx, request)
}

func runMe(ctx context.Context, api adapter.FitnessAPI, _ []string) (any, error) {
	return api.Me(ctx)
}

func entryFlags(name string, request *models.FitnessEntryRequest) *flag.FlagSet {
	fs := newFlagSet(name)
	fs.StringVar(&request.Date, "date", "", "entry date, e.g. 2024-01-31")
	fs.Int64Var(&request.Steps, "steps", 0, "steps walked")
	fs.Int64Var(&request.Calories, "calories", 0, "calories consumed")
	fs.Float64Var(&request.Distance, "distance", 0, "distance in km")
	fs.Int64Var(&request.ActiveMinutes, "active-minutes", 0, "active minutes")
	fs.Int64Var(&request.HeartRate, "heart-rate", 0, "average heart rate")
	fs.Float64Var(&request.SleepHours, "sleep", 0, "hours slept")
	fs.Float64Var(&request.WaterIntake, "water", 0, "water intake in liters")
	fs.Float64Var(&request.Weight, "weight", 0, "body weight in kg")
	return fs
}

func runAddEntry(ctx context.Context, api adapter.FitnessAPI, args []string) (any, error) {
	var request models.FitnessEntryRequest
	if err := entryFlags("add-entry", &request).Parse(args); err != nil {
		return nil, err
	}

	return api.CreateFitnessEntry(ctx, request)
}

func runUpdateEntry(ctx context.Context, api adapter.FitnessAPI, args []string) (any, error) {
	var (
		request models.FitnessEntryRequest
		id      string
	)
	fs := entryFlags("update-entry", &request)
	fs.StringVar(&id, "id", "", "entry id")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, errMissingID
	}

	return api.UpdateFitnessEntry(ctx, id, request)
}

func runDeleteEntry(ctx context.Context, api adapter.FitnessAPI, args []string) (any, error) {
	id, err := parseID("delete-entry", args)
	if err != nil {
		return nil, err
	}
	if err = api.DeleteFitnessEntry(ctx, id); err != nil {
		return nil, err
	}
	return models.MessageResponse{Message: "Entry deleted successfully"}, nil
}

func runEntries(ctx context.Context, api adapter.FitnessAPI, args []string) (any, error) {
	limit, err := parseLimit("entries", args)
	if err != nil {
		return nil, err
	}
	return api.ListFitnessEntries(ctx, limit)
}

func runAddWorkout(ctx context.Context, api adapter.FitnessAPI, args []string) (any, error) {
	var (
		request                  models.WorkoutRequest
		duration, caloriesBurned int64
	)
	fs := newFlagSet("add-workout")
	fs.StringVar(&request.Date, "date", "", "workout date, e.g. 2024-01-31")
	fs.StringVar(&request.WorkoutType, "type", "", "workout type, e.g. running")
	fs.Int64Var(&duration, "duration", 0, "duration in minutes")
	fs.Int64Var(&caloriesBurned, "calories", 0, "calories burned")
	fs.StringVar(&request.Notes, "notes", "", "free-form notes")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// only flags given on the command line are sent, so the server can
	// report missing ones
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "duration":
			request.Duration = &duration
		case "calories":
			request.CaloriesBurned = &caloriesBurned
		}
	})

	return api.CreateWorkout(ctx, request)
}

func runDeleteWorkout(ctx context.Context, api adapter.FitnessAPI, args []string) (any, error) {
	id, err := parseID("delete-workout", args)
	if err != nil {
		return nil, err
	}
	if err = api.DeleteWorkout(ctx, id); err != nil {
		return nil, err
	}
	return models.MessageResponse{Message: "Workout deleted successfully"}, nil
}

func runWorkouts(ctx context.Context, api adapter.FitnessAPI, args []string) (any, error) {
	limit, err := parseLimit("workouts", args)
	if err != nil {
		return nil, err
	}
	return api.ListWorkouts(ctx, limit)
}

func runStats(ctx context.Context, api adapter.FitnessAPI, _ []string) (any, error) {
	return api.Stats(ctx)
}

func parseID(name string, args []string) (string, error) {
	var id string
	fs := newFlagSet(name)
	fs.StringVar(&id, "id", "", "record id")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}

func parseLimit(name string, args []string) (uint64, error) {
	var limit uint64
	fs := newFlagSet(name)
	fs.Uint64Var(&limit, "limit", 0, "maximum number of records (server default when 0)")
	if err := fs.Parse(args); err != nil {
		return 0, err
	}
	return limit, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error printing result: %w", err)
	}
	return nil
}
