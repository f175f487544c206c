package application

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/brotherhood/barbershop_backend/internal/domain"
)

const (
	notSpecified = "Not specified"

	dateLayout     = "2006-01-02"
	longDateLayout = "Monday, January 2, 2006"
)

// openingHours holds the first and last-exclusive booking hour for each
// open weekday. Days not in the map are closed.
var openingHours = map[time.Weekday][2]int{
	time.Monday:    {9, 18},
	time.Tuesday:   {9, 18},
	time.Wednesday: {9, 18},
	time.Thursday:  {9, 18},
	time.Friday:    {9, 18},
	time.Saturday:  {10, 16},
}

// FormatHour12 turns "HH:MM" into "H:MM AM/PM". Midnight and noon always
// render as "12:00 AM" and "12:00 PM". Input it can't read is returned as is.
func FormatHour12(hhmm string) string {
	hourStr, minutes, found := strings.Cut(strings.TrimSpace(hhmm), ":")
	if !found {
		minutes = "00"
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 0 || hour > 23 {
		return hhmm
	}

	switch {
	case hour == 0:
		return "12:00 AM"
	case hour == 12:
		return "12:00 PM"
	case hour < 12:
		return fmt.Sprintf("%d:%s AM", hour, minutes)
	default:
		return fmt.Sprintf("%d:%s PM", hour-12, minutes)
	}
}

// FormatTimeSlot renders "HH:MM-HH:MM" as "H:MM AM - H:MM PM".
func FormatTimeSlot(slot string) string {
	if strings.TrimSpace(slot) == "" {
		return notSpecified
	}
	halves := strings.Split(slot, "-")
	for i, h := range halves {
		halves[i] = FormatHour12(h)
	}
	return strings.Join(halves, " - ")
}

// FormatPreferredDate renders a YYYY-MM-DD (or RFC 3339) date in long US
// English form, e.g. "Wednesday, January 15, 2025". Unparseable values are
// returned verbatim.
func FormatPreferredDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return notSpecified
	}
	if t, err := time.Parse(dateLayout, date); err == nil {
		return t.Format(longDateLayout)
	}
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t.Format(longDateLayout)
	}
	return date
}

// SlotsForDate lists the hourly slots offered on the given day.
func SlotsForDate(day time.Time) domain.DaySchedule {
	schedule := domain.DaySchedule{
		Date:  day.Format(dateLayout),
		Slots: []domain.TimeSlot{},
	}

	hours, open := openingHours[day.Weekday()]
	if !open {
		schedule.Closed = true
		return schedule
	}

	for hour := hours[0]; hour < hours[1]; hour++ {
		start := fmt.Sprintf("%02d:00", hour)
		end := fmt.Sprintf("%02d:00", hour+1)
		schedule.Slots = append(schedule.Slots, domain.TimeSlot{
			Value: start + "-" + end,
			Label: FormatHour12(start) + " -> " + FormatHour12(end),
		})
	}
	return schedule
}

// ParseBookingDate parses a YYYY-MM-DD query value.
func ParseBookingDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", value)
	}
	return t, nil
}
