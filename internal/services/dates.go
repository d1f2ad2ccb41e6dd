package services

import "time"

// dateLayout is the storage format for calendar dates
const dateLayout = "2006-01-02"

// TodayDate returns the current calendar date in storage format
func TodayDate() string {
	return time.Now().Format(dateLayout)
}

func todayDate() string {
	return TodayDate()
}
