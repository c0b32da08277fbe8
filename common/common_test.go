package common

import (
	"context"
	"runtime/debug"
	"testing"
)

// chanWaiter hands out events sent on its channel, dropping those the filter rejects.
type chanWaiter chan any

func (c chanWaiter) WaitFor(ctx context.Context, filter func(any) bool) any {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-c:
			if filter(ev) {
				return ev
			}
		}
	}
}

func TestWaitFor(t *testing.T) {
	w := make(chanWaiter, 3)
	w <- "not an int"
	w <- 3
	w <- 42

	got, ok := WaitFor(context.Background(), w, func(n int) bool { return n > 10 })
	if !ok || got != 42 {
		t.Errorf("WaitFor() = %v, %v; want 42, true", got, ok)
	}
}

func TestVersionFrom(t *testing.T) {
	tests := []struct {
		name string
		bi   debug.BuildInfo
		want string
	}{
		{"release", debug.BuildInfo{Main: debug.Module{Version: "v1.2.0"}}, "v1.2.0"},
		{"no vcs", debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, "devel"},
		{
			"clean revision",
			debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.modified", Value: "false"},
			}},
			"0123456",
		},
		{
			"dirty revision",
			debug.BuildInfo{Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.modified", Value: "true"},
			}},
			"0123456-dirty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := versionFrom(&tt.bi); got != tt.want {
				t.Errorf("versionFrom() = %q, want %q", got, tt.want)
			}
		})
	}
}
