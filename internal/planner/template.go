// ABOUTME: Default weekly template: a four-day upper/lower split with
// ABOUTME: starting loads used until a lift has logged history.
package planner

import "time"

// DefaultTemplate returns the built-in four-day split. Exercise IDs refer
// to the imported catalog; the starting weights only apply to lifts with
// no logged history.
func DefaultTemplate() Template {
	return Template{
		time.Monday: {
			{ExerciseID: 615, Name: "Barbell Squat", Sets: 5, Reps: 5, BaseWeight: 60},
			{ExerciseID: 192, Name: "Bench Press", Sets: 5, Reps: 5, BaseWeight: 50},
			{ExerciseID: 109, Name: "Barbell Row", Sets: 3, Reps: 8, BaseWeight: 40},
		},
		time.Tuesday: {
			{ExerciseID: 184, Name: "Deadlift", Sets: 3, Reps: 5, BaseWeight: 80},
			{ExerciseID: 119, Name: "Overhead Press", Sets: 3, Reps: 8, BaseWeight: 30},
			{ExerciseID: 475, Name: "Pull-up", Sets: 3, Reps: 8, BaseWeight: 0},
		},
		time.Thursday: {
			{ExerciseID: 615, Name: "Barbell Squat", Sets: 3, Reps: 8, BaseWeight: 60},
			{ExerciseID: 163, Name: "Incline Bench Press", Sets: 3, Reps: 8, BaseWeight: 40},
			{ExerciseID: 362, Name: "Lat Pulldown", Sets: 3, Reps: 10, BaseWeight: 45},
		},
		time.Friday: {
			{ExerciseID: 566, Name: "Romanian Deadlift", Sets: 3, Reps: 8, BaseWeight: 60},
			{ExerciseID: 192, Name: "Bench Press", Sets: 3, Reps: 8, BaseWeight: 50},
			{ExerciseID: 129, Name: "Dumbbell Curl", Sets: 3, Reps: 12, BaseWeight: 12},
		},
	}
}
