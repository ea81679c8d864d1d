package services

import "time"

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DaysSince counts whole calendar days between the stored date and now in
// location. Unset dates and dates in the future count as zero.
func DaysSince(value *time.Time, now time.Time, location *time.Location) int {
	if value == nil || value.IsZero() {
		return 0
	}
	from := calendarDay(*value, location)
	to := calendarDay(now, location)
	days := int(to.Sub(from).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// calendarDay projects the local date onto UTC midnight so DST shifts never
// produce fractional days.
func calendarDay(value time.Time, location *time.Location) time.Time {
	local := DateAtLocation(value, location)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}
