package osu

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tracreed/ebina/clients/osu"
)

func TestLabel(t *testing.T) {
	if got := label(osu.UserCompact{Username: "peppy", CountryCode: "AU"}); got != "peppy (AU)" {
		t.Errorf("label() = %q", got)
	}
	if got := label(osu.UserCompact{Username: "peppy"}); got != "peppy" {
		t.Errorf("label() = %q", got)
	}
}

func TestUserEmbed(t *testing.T) {
	u := osu.User{
		ID:        2,
		Username:  "peppy",
		AvatarURL: "/images/avatar.png",
		Country:   osu.Country{Code: "AU", Name: "Australia"},
		Statistics: osu.Statistics{
			GlobalRank:  123456,
			PP:          1234.6,
			HitAccuracy: 97.123,
			PlayCount:   5000,
			Level:       osu.Level{Current: 100, Progress: 42},
			RankedScore: 1000000,
		},
	}

	e := userEmbed(u, "taiko")

	if e.URL != "https://osu.ppy.sh/users/2/taiko" {
		t.Errorf("url = %q", e.URL)
	}
	if e.Description != "Australia :flag_au:, mode: taiko" {
		t.Errorf("description = %q", e.Description)
	}
	if e.Thumbnail.URL != "https://osu.ppy.sh/images/avatar.png" {
		t.Errorf("thumbnail = %q", e.Thumbnail.URL)
	}

	got := map[string]string{}
	for _, f := range e.Fields {
		got[f.Name] = f.Value
	}
	want := map[string]string{
		"Rank":         "#123,456",
		"Level":        "100 (42%)",
		"pp":           "1,235",
		"Accuracy":     "97.12%",
		"Play count":   "5,000",
		"Ranked score": "1,000,000",
		"Total hits":   "0",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}
}
