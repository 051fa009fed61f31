package calendar_test

import (
	"encoding/json"
	"hotelmanager/shared/calendar"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		want      string
	}{
		{name: "plain date", input: "2024-01-04", wantValid: true, want: "2024-01-04"},
		{name: "rfc3339", input: "2024-01-04T10:30:00Z", wantValid: true, want: "2024-01-04"},
		{name: "local date time", input: "2024-01-04T10:30:00", wantValid: true, want: "2024-01-04"},
		{name: "surrounding spaces", input: " 2024-01-04 ", wantValid: true, want: "2024-01-04"},
		{name: "empty", input: "", wantValid: false},
		{name: "garbage", input: "next tuesday", wantValid: false},
		{name: "impossible day", input: "2024-02-30", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendar.Parse(tt.input)

			assert.Equal(t, tt.wantValid, got.Valid())
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantValid bool
		want      string
	}{
		{name: "string", payload: `{"d":"2024-03-01"}`, wantValid: true, want: "2024-03-01"},
		{name: "array", payload: `{"d":[2024,3,1]}`, wantValid: true, want: "2024-03-01"},
		{name: "array out of range", payload: `{"d":[2024,2,31]}`, wantValid: false},
		{name: "null", payload: `{"d":null}`, wantValid: false},
		{name: "missing", payload: `{}`, wantValid: false},
		{name: "number", payload: `{"d":20240301}`, wantValid: false},
		{name: "unparseable string", payload: `{"d":"03/01/2024"}`, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body struct {
				D calendar.Date `json:"d"`
			}

			err := json.Unmarshal([]byte(tt.payload), &body)

			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, body.D.Valid())
			assert.Equal(t, tt.want, body.D.String())
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(map[string]calendar.Date{
		"valid":   calendar.NewDate(2024, time.January, 1),
		"invalid": {},
	})

	require.NoError(t, err)
	assert.JSONEq(t, `{"valid":"2024-01-01","invalid":null}`, string(out))
}

func TestDate_Compare(t *testing.T) {
	first := calendar.NewDate(2024, time.January, 1)
	second := calendar.NewDate(2024, time.January, 2)
	invalid := calendar.Date{}

	assert.Equal(t, -1, first.Compare(second))
	assert.Equal(t, 1, second.Compare(first))
	assert.Equal(t, 0, first.Compare(first))
	assert.Equal(t, -1, first.Compare(invalid), "invalid dates sort last")
	assert.Equal(t, 1, invalid.Compare(first))
	assert.Equal(t, 0, invalid.Compare(invalid))

	assert.True(t, first.Before(second))
	assert.False(t, first.Before(invalid))
	assert.False(t, invalid.After(first))
}

func TestDate_DaysUntil(t *testing.T) {
	checkIn := calendar.NewDate(2024, time.January, 1)

	assert.Equal(t, 3, checkIn.DaysUntil(calendar.NewDate(2024, time.January, 4)))
	assert.Equal(t, 0, checkIn.DaysUntil(checkIn))
	assert.Equal(t, -1, checkIn.DaysUntil(calendar.NewDate(2023, time.December, 31)))
	assert.Equal(t, 60, checkIn.DaysUntil(calendar.NewDate(2024, time.March, 1)), "leap year")
}

func TestToday(t *testing.T) {
	calendar.SetLocation(time.UTC)

	today := calendar.Today()
	now := time.Now().UTC()

	assert.True(t, today.Valid())
	assert.Equal(t, now.Format("2006-01-02"), today.String())
	assert.NotEmpty(t, calendar.Format(now, time.RFC3339))
}
