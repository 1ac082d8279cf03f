package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 15, hour, min, 0, 0, time.UTC)
}

func TestFindBestSubWindow_ExactFit(t *testing.T) {
	fit, ok := findBestSubWindow(at(9, 0), at(12, 0), at(9, 0), at(12, 0))
	require.True(t, ok)
	assert.Equal(t, at(9, 0), fit.start)
	assert.Equal(t, at(12, 0), fit.end)
	assert.Equal(t, 0.0, fit.shiftMinutes)
}

func TestFindBestSubWindow_SlotTooShort(t *testing.T) {
	_, ok := findBestSubWindow(at(9, 0), at(11, 0), at(9, 0), at(12, 0))
	assert.False(t, ok)
}

func TestFindBestSubWindow_ShiftToEarlierSlot(t *testing.T) {
	// Desired 09:00-12:00 against a 08:00-11:00 slot: the only candidate
	// of the full duration starts at 08:00, one hour early.
	fit, ok := findBestSubWindow(at(8, 0), at(11, 0), at(9, 0), at(12, 0))
	require.True(t, ok)
	assert.Equal(t, at(8, 0), fit.start)
	assert.Equal(t, at(11, 0), fit.end)
	assert.Equal(t, 60.0, fit.shiftMinutes)
}

func TestFindBestSubWindow_ScansToDesiredStart(t *testing.T) {
	// Desired start sits on the scan grid inside a longer slot, so the
	// shift collapses to zero.
	fit, ok := findBestSubWindow(at(8, 0), at(14, 0), at(10, 30), at(12, 30))
	require.True(t, ok)
	assert.Equal(t, at(10, 30), fit.start)
	assert.Equal(t, at(12, 30), fit.end)
	assert.Equal(t, 0.0, fit.shiftMinutes)
}

func TestFindBestSubWindow_OffGridDesiredStart(t *testing.T) {
	// Candidates step from the slot start, so a desired start off the
	// grid settles on the nearest candidate.
	fit, ok := findBestSubWindow(at(8, 0), at(14, 0), at(10, 20), at(12, 20))
	require.True(t, ok)
	assert.Equal(t, at(10, 15), fit.start)
	assert.Equal(t, 5.0, fit.shiftMinutes)
}

func TestFindBestSubWindow_TieBreaksToEarlierStart(t *testing.T) {
	// Desired start exactly between two candidates: the earlier one is
	// found first and only a strictly smaller shift replaces it.
	desiredStart := time.Date(2025, 6, 15, 10, 7, 30, 0, time.UTC)
	fit, ok := findBestSubWindow(at(8, 0), at(14, 0), desiredStart, desiredStart.Add(2*time.Hour))
	require.True(t, ok)
	assert.Equal(t, at(10, 0), fit.start)
	assert.Equal(t, 7.5, fit.shiftMinutes)
}

func TestFindBestSubWindow_WindowStaysInsideSlot(t *testing.T) {
	// Desired window starts after the latest feasible start; the chosen
	// window clamps to the slot end.
	fit, ok := findBestSubWindow(at(8, 0), at(12, 0), at(11, 0), at(14, 0))
	require.True(t, ok)
	assert.Equal(t, at(9, 0), fit.start)
	assert.Equal(t, at(12, 0), fit.end)
	assert.Equal(t, 120.0, fit.shiftMinutes)
	assert.False(t, fit.end.After(at(12, 0)))
}
