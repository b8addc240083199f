package domain

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	valid := map[string]TimeOfDay{
		"08:00":   At(8, 0),
		"9:05":    At(9, 5),
		"13:05":   At(13, 5),
		"00:00":   0,
		"23:59":   At(23, 59),
		" 10:20 ": At(10, 20),
	}
	for in, want := range valid {
		got, err := ParseTimeOfDay(in)
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseTimeOfDay(%q) = %v, want %v", in, got, want)
		}
	}

	invalid := []string{"", "8", "24:00", "12:60", "12:5", "-1:30", "ab:cd", "10:20:00", "123:00", "1 :00"}
	for _, in := range invalid {
		_, err := ParseTimeOfDay(in)
		if !errors.Is(err, ErrMalformedTime) {
			t.Errorf("ParseTimeOfDay(%q) err = %v, want ErrMalformedTime", in, err)
		}
	}
}

func TestTimeOfDayString(t *testing.T) {
	tod := At(9, 11).Add(59*time.Second + 400*time.Millisecond)
	if got := tod.String(); got != "09:11:59" {
		t.Fatalf("String() = %q", got)
	}
}
