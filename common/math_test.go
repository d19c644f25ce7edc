package common

import "testing"

func TestSeconds(t *testing.T) {
	cases := []struct {
		secs int
		want int
	}{
		{0, 0},
		{1, 60},
		{4, 240},
	}
	for _, c := range cases {
		if got := Seconds(c.secs); got != c.want {
			t.Fatalf("Seconds(%d) = %d, want %d", c.secs, got, c.want)
		}
	}
}

func TestIDStrings(t *testing.T) {
	if ObjectPrincess.String() != "princess" {
		t.Fatalf("unexpected object name %q", ObjectPrincess.String())
	}
	if ScreenVictory.String() != "victory" {
		t.Fatalf("unexpected screen name %q", ScreenVictory.String())
	}
	if ObjectID(99).String() != "unknown" || ScreenID(99).String() != "unknown" {
		t.Fatalf("out of range ids should be unknown")
	}
}
