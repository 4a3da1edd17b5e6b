package models

import "testing"

func TestSessionTypeNext(t *testing.T) {
	cases := []struct {
		in   SessionType
		want SessionType
	}{
		{Focus, ShortBreak},
		{ShortBreak, LongBreak},
		{LongBreak, Focus},
		{SessionType("bogus"), Focus},
	}

	for _, tc := range cases {
		if got := tc.in.Next(); got != tc.want {
			t.Errorf("%q.Next() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseSessionType(t *testing.T) {
	if _, ok := ParseSessionType("shortBreak"); !ok {
		t.Error("expected shortBreak to be valid")
	}

	if _, ok := ParseSessionType("Short Break"); ok {
		t.Error("expected a label to be rejected")
	}
}
