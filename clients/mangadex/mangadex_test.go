package mangadex

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tracreed/ebina/clients"
)

const berserk = `{
	"id": "801513ba-a712-498c-8f57-cae55b38cc92",
	"attributes": {
		"title": {"en": "Berserk"},
		"altTitles": [{"ja": "ベルセルク"}],
		"description": {"en": "Guts, a former mercenary...", "fr": "Guts..."},
		"status": "ongoing",
		"year": 1989,
		"tags": [{"attributes": {"name": {"en": "Action"}, "group": "genre"}}, {"attributes": {"name": {"en": "Gore"}, "group": "content"}}]
	},
	"relationships": [
		{"id": "5863578a", "type": "author", "attributes": {"name": "Miura Kentarou"}},
		{"id": "5863578a", "type": "artist", "attributes": {"name": "Miura Kentarou"}},
		{"id": "c00e3d2b", "type": "cover_art", "attributes": {"fileName": "cover.jpg"}},
		{"id": "unrelated", "type": "creator"}
	]
}`

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/manga" || q.Get("title") != "berserk" || q.Get("limit") != "5" {
			t.Errorf("request = %v", r.URL)
		}
		if diff := cmp.Diff([]string{"author", "artist", "cover_art"}, q["includes[]"]); diff != "" {
			t.Errorf("includes mismatch (-want +got):\n%s", diff)
		}
		w.Write([]byte(`{"result":"ok","data":[` + berserk + `]}`))
	}))
	defer srv.Close()

	c := &Client{HTTP: srv.Client(), BaseURL: srv.URL}
	manga, err := c.Search(context.Background(), "berserk", 5)
	if err != nil {
		t.Fatal(err)
	}

	m := manga[0]
	if m.Title() != "Berserk" || m.URL() != "https://mangadex.org/title/801513ba-a712-498c-8f57-cae55b38cc92" {
		t.Errorf("title = %q, url = %q", m.Title(), m.URL())
	}
	if diff := cmp.Diff([]string{"Miura Kentarou"}, m.Names("author")); diff != "" {
		t.Errorf("authors mismatch (-want +got):\n%s", diff)
	}
	if want := "https://uploads.mangadex.org/covers/801513ba-a712-498c-8f57-cae55b38cc92/cover.jpg.256.jpg"; m.CoverURL() != want {
		t.Errorf("cover = %q", m.CoverURL())
	}
	if m.Attributes.Description.Get() != "Guts, a former mercenary..." {
		t.Errorf("description = %q", m.Attributes.Description.Get())
	}
	if diff := cmp.Diff([]string{"Action", "Gore"}, m.TagNames()); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestManga(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/manga/801513ba-a712-498c-8f57-cae55b38cc92" {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"result":"ok","data":` + berserk + `}`))
	}))
	defer srv.Close()

	c := &Client{HTTP: srv.Client(), BaseURL: srv.URL}

	m, err := c.Manga(context.Background(), "801513ba-a712-498c-8f57-cae55b38cc92")
	if err != nil {
		t.Fatal(err)
	}
	if m.Attributes.Year != 1989 {
		t.Errorf("year = %d", m.Attributes.Year)
	}

	_, err = c.Manga(context.Background(), "00000000-0000-0000-0000-000000000000")
	if !errors.Is(err, clients.ErrNoResults) {
		t.Errorf("error = %v, want ErrNoResults", err)
	}

	if _, err = c.Manga(context.Background(), "../statistics"); err == nil {
		t.Error("invalid ID accepted")
	}
}

func TestLocalizedStringFallback(t *testing.T) {
	tests := []struct {
		in   LocalizedString
		want string
	}{
		{LocalizedString{"ja-ro": "Shingeki no Kyojin", "ja": "進撃の巨人"}, "Shingeki no Kyojin"},
		{LocalizedString{"ko": "b", "de": "a"}, "a"},
		{nil, ""},
	}
	for _, test := range tests {
		if got := test.in.Get(); got != test.want {
			t.Errorf("%v.Get() = %q, want %q", test.in, got, test.want)
		}
	}
}
