package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tracreed/ebina/clients"
)

func TestCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("units") != "metric" || q.Get("appid") != "key" {
			t.Errorf("query = %v", r.URL.RawQuery)
		}

		if q.Get("q") != "London" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			return
		}
		w.Write([]byte(`{"name":"London","sys":{"country":"GB"},"weather":[{"main":"Clouds","description":"overcast clouds","icon":"04d"}],
			"main":{"temp":11.6,"feels_like":10.9,"humidity":81}}`))
	}))
	defer srv.Close()

	c := &Client{HTTP: srv.Client(), Endpoint: srv.URL, APIKey: "key"}

	w, err := c.Current(context.Background(), "London")
	if err != nil {
		t.Fatal(err)
	}
	if w.Condition().Description != "overcast clouds" || w.Main.Humidity != 81 {
		t.Errorf("weather = %+v", w)
	}
	if w.IconURL() != "https://openweathermap.org/img/wn/04d@2x.png" {
		t.Errorf("icon = %q", w.IconURL())
	}

	if _, err := c.Current(context.Background(), "Atlantis"); !errors.Is(err, clients.ErrNoResults) {
		t.Errorf("error = %v, want ErrNoResults", err)
	}
}
