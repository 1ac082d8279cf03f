package services

import "time"

// subWindow is a chosen window of the desired duration inside a slot,
// with the absolute shift from the desired start in fractional minutes.
type subWindow struct {
	start        time.Time
	end          time.Time
	shiftMinutes float64
}

// findBestSubWindow slides a window of the desired duration across the
// resolved slot window in ScanStep increments and keeps the candidate
// start minimizing the absolute shift from the desired start. Only a
// strictly smaller shift replaces the current best, so on exact ties the
// candidate nearer the slot start wins. Returns false when the slot is too
// short to contain the desired duration at all.
//
// The scan is the contract, not an approximation: a closed form would
// clamp the desired start into [slotStart, slotEnd-desiredDuration], but
// the fixed granularity pins down the exact tie-break behavior.
func findBestSubWindow(slotStart, slotEnd, desiredStart, desiredEnd time.Time) (subWindow, bool) {
	desiredDuration := desiredEnd.Sub(desiredStart)
	availDuration := slotEnd.Sub(slotStart)

	if availDuration < desiredDuration {
		return subWindow{}, false
	}

	latestStart := slotEnd.Add(-desiredDuration)
	bestStart := slotStart
	minShift := absDuration(bestStart.Sub(desiredStart))

	for current := slotStart; !current.After(latestStart); current = current.Add(ScanStep) {
		shift := absDuration(current.Sub(desiredStart))
		if shift < minShift {
			minShift = shift
			bestStart = current
		}
	}

	return subWindow{
		start:        bestStart,
		end:          bestStart.Add(desiredDuration),
		shiftMinutes: minShift.Minutes(),
	}, true
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
