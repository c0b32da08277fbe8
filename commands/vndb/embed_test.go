package vndb

import (
	"testing"

	"github.com/tracreed/ebina/clients/vndb"
)

func TestLabel(t *testing.T) {
	if got := label(vndb.VN{Title: "Steins;Gate", Released: "2009-10-15"}); got != "Steins;Gate (2009)" {
		t.Errorf("label() = %q", got)
	}
	if got := label(vndb.VN{Title: "Unreleased", Released: "TBA"}); got != "Unreleased" {
		t.Errorf("label() = %q", got)
	}
}

func TestLanguageName(t *testing.T) {
	for code, want := range map[string]string{
		"en": "English",
		"ja": "Japanese",
		"??": "??",
	} {
		if got := languageName(code); got != want {
			t.Errorf("languageName(%q) = %q, want %q", code, got, want)
		}
	}
}

func fieldValue(t *testing.T, vn vndb.VN, name string) string {
	t.Helper()
	for _, f := range vnEmbed(vn, false).Fields {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

func TestVNEmbed(t *testing.T) {
	vn := vndb.VN{
		ID:            "v2002",
		Title:         "Steins;Gate",
		Description:   "A [url=/c1]mad scientist[/url].",
		Released:      "2009-10-15",
		Length:        4,
		LengthMinutes: 2400,
		Rating:        89.5,
		VoteCount:     12345,
		Developers:    []vndb.Producer{{ID: "p23", Name: "5pb."}},
		Image:         &vndb.Image{URL: "https://t.vndb.org/cv/1.jpg", Sexual: 0},
	}

	e := vnEmbed(vn, false)
	if e.URL != "https://vndb.org/v2002" {
		t.Errorf("url = %q", e.URL)
	}
	if e.Description != "A [mad scientist](https://vndb.org/c1)." {
		t.Errorf("description = %q", e.Description)
	}
	if e.Thumbnail == nil {
		t.Error("safe image not shown")
	}

	if got := fieldValue(t, vn, "Rating"); got != "8.95 (12,345 votes)" {
		t.Errorf("rating = %q", got)
	}
	if got := fieldValue(t, vn, "Developers"); got != "[5pb.](https://vndb.org/p23)" {
		t.Errorf("developers = %q", got)
	}
	if got := fieldValue(t, vn, "Length"); got != "Long (30 - 50 hours)\n(about 40 hours)" {
		t.Errorf("length = %q", got)
	}
}

func TestVNEmbedExplicitImage(t *testing.T) {
	vn := vndb.VN{ID: "v1", Image: &vndb.Image{URL: "https://t.vndb.org/cv/2.jpg", Sexual: 2}}

	if vnEmbed(vn, false).Thumbnail != nil {
		t.Error("explicit image shown outside NSFW channel")
	}
	if vnEmbed(vn, true).Thumbnail == nil {
		t.Error("explicit image hidden in NSFW channel")
	}
}
