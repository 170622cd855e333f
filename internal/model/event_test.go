package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistrationWindowOpenOneDayBefore(t *testing.T) {
	deadline := time.Date(2024, time.July, 10, 18, 0, 0, 0, time.UTC)
	e := Event{RegistrationDeadline: deadline}

	window := e.RegistrationWindow(deadline.Add(-24 * time.Hour))

	assert.True(t, window.Open)
	assert.Equal(t, 1, window.DaysRemaining)
}

func TestRegistrationWindowClosedJustAfterDeadline(t *testing.T) {
	deadline := time.Date(2024, time.July, 10, 18, 0, 0, 0, time.UTC)
	e := Event{RegistrationDeadline: deadline}

	window := e.RegistrationWindow(deadline.Add(time.Second))

	assert.False(t, window.Open)
	assert.Equal(t, 0, window.DaysRemaining)
}

func TestRegistrationWindowOpenAtDeadline(t *testing.T) {
	deadline := time.Date(2024, time.July, 10, 18, 0, 0, 0, time.UTC)
	e := Event{RegistrationDeadline: deadline}

	window := e.RegistrationWindow(deadline)

	assert.True(t, window.Open)
	assert.Equal(t, 0, window.DaysRemaining)
}

func TestRegistrationWindowRoundsPartialDaysUp(t *testing.T) {
	deadline := time.Date(2024, time.July, 10, 18, 0, 0, 0, time.UTC)
	e := Event{RegistrationDeadline: deadline}

	window := e.RegistrationWindow(deadline.Add(-25 * time.Hour))

	assert.True(t, window.Open)
	assert.Equal(t, 2, window.DaysRemaining)
}
