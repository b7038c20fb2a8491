package schedule

import "time"

// CandidateWindowDays is how far ahead a booking may be placed.
const CandidateWindowDays = 30

const dateLayout = "2006-01-02"

// CandidateDates returns the bookable dates starting tomorrow: the next
// CandidateWindowDays calendar days from "now". How many of these the
// client surfaces is a presentation concern (config BOOKING_DATE_COUNT),
// not a booking rule.
func CandidateDates(now time.Time) []string {
	dates := make([]string, 0, CandidateWindowDays)
	for i := 1; i <= CandidateWindowDays; i++ {
		dates = append(dates, now.AddDate(0, 0, i).Format(dateLayout))
	}
	return dates
}

// IsCandidateDate reports whether the date string falls inside the
// bookable window relative to "now". Membership is checked against the
// generated calendar dates so DST transitions cannot shift the window.
func IsCandidateDate(date string, now time.Time) bool {
	if _, err := time.ParseInLocation(dateLayout, date, now.Location()); err != nil {
		return false
	}
	for _, d := range CandidateDates(now) {
		if d == date {
			return true
		}
	}
	return false
}
