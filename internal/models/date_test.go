package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCalendarDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		wantDate string
		wantZero bool
		wantErr  bool
	}{
		{
			name:     "plain date",
			json:     `{"date": "2025-03-01"}`,
			wantDate: "2025-03-01",
		},
		{
			name:     "rfc3339 timestamp truncates to utc day",
			json:     `{"date": "2025-03-01T23:30:00-02:00"}`,
			wantDate: "2025-03-02",
		},
		{
			name:     "null value",
			json:     `{"date": null}`,
			wantZero: true,
		},
		{
			name:     "field absent",
			json:     `{}`,
			wantZero: true,
		},
		{
			name:    "not a date",
			json:    `{"date": "yesterday"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result struct {
				Date CalendarDate `json:"date"`
			}
			err := json.Unmarshal([]byte(tt.json), &result)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal error: %v", err)
			}

			if result.Date.IsZero() != tt.wantZero {
				t.Errorf("IsZero = %v, want %v", result.Date.IsZero(), tt.wantZero)
			}
			if !tt.wantZero && result.Date.String() != tt.wantDate {
				t.Errorf("Date = %s, want %s", result.Date, tt.wantDate)
			}
		})
	}
}

func TestCalendarDate_MarshalJSON(t *testing.T) {
	d := NewCalendarDate(time.Date(2025, 7, 4, 15, 0, 0, 0, time.UTC))

	data, err := json.Marshal(struct {
		Date CalendarDate `json:"date"`
	}{Date: d})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	if string(data) != `{"date":"2025-07-04"}` {
		t.Errorf("Marshal = %s, want {\"date\":\"2025-07-04\"}", data)
	}
}

func TestCycleRecord(t *testing.T) {
	date, _ := ParseCalendarDate("2025-02-10")
	c := Cycle{ID: "c1", CycleLength: 29, Mood: "Sad", Energy: "Low", Date: date}

	r := c.Record()
	if r.CycleLength != 29 || r.Mood != "Sad" || r.Energy != "Low" {
		t.Errorf("Record = %+v, fields not carried over", r)
	}
	if !r.Date.Equal(time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Record date = %v, want 2025-02-10 UTC", r.Date)
	}

	entry := NewCycleHistoryEntry(c)
	if entry.MoodIcon != "😢" {
		t.Errorf("MoodIcon = %q, want 😢", entry.MoodIcon)
	}
	if entry.EnergyTone != "red" {
		t.Errorf("EnergyTone = %q, want red", entry.EnergyTone)
	}
}
