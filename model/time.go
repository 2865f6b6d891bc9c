package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

var flexLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FlexTime accepts the timestamp shapes the marketplace backend emits.
type FlexTime struct {
	time.Time
}

func NewFlexTime(t time.Time) FlexTime {
	return FlexTime{Time: t}
}

func (f *FlexTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		f.Time = time.Time{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("flextime: %w", err)
	}
	if s == "" {
		f.Time = time.Time{}
		return nil
	}

	for _, layout := range flexLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			f.Time = t
			return nil
		}
	}
	return fmt.Errorf("flextime: unsupported timestamp %q", s)
}

func (f FlexTime) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(f.Time.Format(time.RFC3339))
}
