package common

import "testing"

func TestStripHTML(t *testing.T) {
	in := "Okabe <i>Rintarou</i> &amp; friends.<br>\nSecond line"
	want := "Okabe Rintarou & friends.\nSecond line"
	if got := StripHTML(in); got != want {
		t.Errorf("StripHTML = %q, want %q", got, want)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"much too long", 5, "much…"},
		{"ひらがなです", 4, "ひらが…"},
	}

	for _, test := range tests {
		if got := Truncate(test.in, test.n); got != test.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", test.in, test.n, got, test.want)
		}
	}
}
