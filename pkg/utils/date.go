package utils

import (
	"errors"
	"time"
)

var ErrEmptyDate = errors.New("data vazia")

// TimestampLayouts são os formatos ISO-8601 aceitos em timestamps de feeds, do mais comum ao menos comum
var TimestampLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseDate valida uma data no formato YYYY-MM-DD
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, ErrEmptyDate
	}
	return time.Parse(time.DateOnly, dateStr)
}

// CalendarDay devolve o dia (YYYY-MM-DD) do timestamp no próprio fuso informado, sem conversão para UTC
func CalendarDay(timestamp string) (string, error) {
	if timestamp == "" {
		return "", ErrEmptyDate
	}

	var lastErr error
	for _, layout := range TimestampLayouts {
		t, err := time.Parse(layout, timestamp)
		if err == nil {
			return t.Format(time.DateOnly), nil
		}
		lastErr = err
	}
	return "", lastErr
}
