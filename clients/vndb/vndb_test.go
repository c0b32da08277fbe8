package vndb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tracreed/ebina/clients"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/vn" || r.Method != http.MethodPost {
			t.Errorf("got %s %s", r.Method, r.URL.Path)
		}

		var q query
		json.NewDecoder(r.Body).Decode(&q)
		if diff := cmp.Diff([]any{"search", "=", "steins gate"}, q.Filters); diff != "" {
			t.Errorf("filters mismatch (-want +got):\n%s", diff)
		}
		if q.Sort != "searchrank" || q.Results != 5 {
			t.Errorf("query = %+v", q)
		}

		w.Write([]byte(`{"more":false,"results":[
			{"id":"v2002","title":"Steins;Gate","length":4,"rating":89.5,"votecount":15000,
			 "tags":[{"name":"Time Travel","rating":3.0,"spoiler":0},{"name":"Twist","rating":2.9,"spoiler":2},{"name":"Male Protagonist","rating":2.5,"spoiler":0}]},
			{"id":"v12345","title":"Steins;Gate 0"}
		]}`))
	}))
	defer srv.Close()

	c := &Client{HTTP: srv.Client(), Endpoint: srv.URL}
	vns, err := c.Search(context.Background(), "steins gate")
	if err != nil {
		t.Fatal(err)
	}

	if len(vns) != 2 || vns[0].URL() != "https://vndb.org/v2002" {
		t.Fatalf("got %+v", vns)
	}
	if l := vns[0].LengthString(); l != "Long (30 - 50 hours)" {
		t.Errorf("length = %q", l)
	}
	if vns[1].LengthString() != "" {
		t.Errorf("unknown length = %q", vns[1].LengthString())
	}
	if diff := cmp.Diff([]string{"Time Travel"}, vns[0].TopTags(1)); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Time Travel", "Male Protagonist"}, vns[0].TopTags(10)); diff != "" {
		t.Errorf("spoiler tag not hidden (-want +got):\n%s", diff)
	}
}

func TestNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"more":false,"results":[]}`))
	}))
	defer srv.Close()

	c := &Client{HTTP: srv.Client(), Endpoint: srv.URL}
	if _, err := c.Get(context.Background(), "v0"); !errors.Is(err, clients.ErrNoResults) {
		t.Errorf("error = %v, want ErrNoResults", err)
	}
}

func TestFormatDescription(t *testing.T) {
	in := "Set in [url=/c1]Akihabara[/url] by [url=https://example.com]someone[/url].\n[spoiler]It's all a dream[/spoiler] [b]maybe[/b]"
	want := "Set in [Akihabara](https://vndb.org/c1) by [someone](https://example.com).\n||It's all a dream|| maybe"
	if got := FormatDescription(in); got != want {
		t.Errorf("FormatDescription =\n%q\nwant\n%q", got, want)
	}
}
