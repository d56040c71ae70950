package utils

import (
	"errors"
	"strings"
	"time"
)

// Layouts accepted for organizer-supplied dates. Zone-less values come from
// <input type="datetime-local"> and are read as UTC.
var eventDateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

var errUnparseableDate = errors.New("unparseable date")

func ParseEventDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, errUnparseableDate
	}
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errUnparseableDate
}
