package bot

import (
	"testing"
	"time"
)

func TestStatusText(t *testing.T) {
	if got := statusText("!", 12); got != "!help | in 12 servers" {
		t.Errorf("statusText() = %q", got)
	}
	if got := statusText("e!", 0); got != "e!help" {
		t.Errorf("statusText() = %q", got)
	}
}

func TestJoinedRecently(t *testing.T) {
	now := time.Now()

	if !joinedRecently(now.Add(-10*time.Second), now) {
		t.Error("guild joined 10 seconds ago isn't recent")
	}
	if joinedRecently(now.Add(-24*time.Hour), now) {
		t.Error("guild joined a day ago is recent")
	}
}
