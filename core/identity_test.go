package core

import "testing"

func TestJoinIdentity(t *testing.T) {
	cases := []struct {
		base, rel, want string
	}{
		{RootIdentity, "worker", "/worker"},
		{"/worker", "child", "/worker/child"},
		{"/worker/", "child", "/worker/child"},
		{"/worker", "/absolute", "/absolute"},
		{"", "worker", "/worker"},
	}
	for _, tc := range cases {
		got := JoinIdentity(tc.base, tc.rel)
		if got != tc.want {
			t.Errorf("JoinIdentity(%q, %q) = %q, want %q", tc.base, tc.rel, got, tc.want)
		}
	}
}

func TestActletName(t *testing.T) {
	got := actletName("/worker", "poll")
	want := "/worker/actlet/poll"
	if got != want {
		t.Errorf("actletName = %q, want %q", got, want)
	}
}

func TestTimerName(t *testing.T) {
	if got := timerName("heartbeat"); got != "timer/heartbeat" {
		t.Errorf("timerName = %q", got)
	}
}
