package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{in: "07:00", want: Clock{Hour: 7}},
		{in: " 7:05 ", want: Clock{Hour: 7, Minute: 5}},
		{in: "00:30", want: Clock{Minute: 30}},
		{in: "23:59", want: Clock{Hour: 23, Minute: 59}},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "1200", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSeconds(t *testing.T) {
	c, err := Parse("22:15")
	require.NoError(t, err)
	assert.Equal(t, 22*3600+15*60, c.Seconds())
}

func TestFromSecondsWraps(t *testing.T) {
	tests := []struct {
		name     string
		sec      int
		want     Clock
		wantDays int
	}{
		{name: "midnight", sec: 0, want: Clock{}},
		{name: "same day", sec: 23 * SecondsPerHour, want: Clock{Hour: 23}},
		{name: "previous day", sec: 1800 - 34200, want: Clock{Hour: 15}, wantDays: -1},
		{name: "one second before midnight", sec: -1, want: Clock{Hour: 23, Minute: 59}, wantDays: -1},
		{name: "next day", sec: SecondsPerDay + 90, want: Clock{Minute: 1}, wantDays: 1},
		{name: "truncates seconds", sec: 59, want: Clock{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, days := FromSeconds(tt.sec)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantDays, days)
		})
	}
}

func TestAdd(t *testing.T) {
	c, days := Clock{Hour: 7}.Add(-8 * SecondsPerHour)
	assert.Equal(t, Clock{Hour: 23}, c)
	assert.Equal(t, -1, days)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		c     Clock
		style Style
		want  string
	}{
		{Clock{Hour: 23}, Style24h, "23:00"},
		{Clock{Hour: 23}, Style12h, "11:00 PM"},
		{Clock{Hour: 0, Minute: 5}, Style12h, "12:05 AM"},
		{Clock{Hour: 12, Minute: 30}, Style12h, "12:30 PM"},
		{Clock{Hour: 9, Minute: 7}, Style24h, "09:07"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.Format(tt.style))
		})
	}
}

func TestParseStyle(t *testing.T) {
	s, err := ParseStyle("12H")
	require.NoError(t, err)
	assert.Equal(t, Style12h, s)

	s, err = ParseStyle("")
	require.NoError(t, err)
	assert.Equal(t, Style24h, s)

	_, err = ParseStyle("36h")
	assert.Error(t, err)
}
