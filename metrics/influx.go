package metrics

import (
	"context"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/tracreed/ebina/common/log"
)

// SubmitInterval is how often counts are written to InfluxDB.
const SubmitInterval = time.Minute

// InfluxConfig is where to submit metrics.
type InfluxConfig struct {
	URL          string `toml:"url"`
	Token        string `toml:"token"`
	Organization string `toml:"organization"`
	Bucket       string `toml:"bucket"`
}

// Submit writes counts and system statistics to InfluxDB every SubmitInterval until ctx is done.
func (m *Metrics) Submit(ctx context.Context, cfg InfluxConfig) {
	client := influxdb2.NewClientWithOptions(cfg.URL, cfg.Token,
		influxdb2.DefaultOptions().SetBatchSize(20))
	defer client.Close()

	w := client.WriteAPI(cfg.Organization, cfg.Bucket)
	go func() {
		for err := range w.Errors() {
			log.Errorf("Error writing to InfluxDB: %v", err)
		}
	}()

	ticker := time.NewTicker(SubmitInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.write(w, time.Now())
		case <-ctx.Done():
			w.Flush()
			return
		}
	}
}

func (m *Metrics) write(w api.WriteAPI, t time.Time) {
	log.Debug("Submitting metrics to InfluxDB")

	c := m.take()

	var total uint32
	cmds := make(map[string]interface{}, len(c.commands))
	for k, v := range c.commands {
		cmds[k] = v
		total += v
	}
	if len(cmds) > 0 {
		w.WritePoint(influxdb2.NewPoint("commands", nil, cmds, t))
	}

	urls := make(map[string]interface{}, len(c.urls))
	for k, v := range c.urls {
		urls[k] = v
	}
	if len(urls) > 0 {
		w.WritePoint(influxdb2.NewPoint("urls", nil, urls, t))
	}

	data := map[string]interface{}{
		"queries":  c.queries,
		"commands": total,
	}
	for k, v := range SystemStats().fields() {
		data[k] = v
	}
	w.WritePoint(influxdb2.NewPoint("statistics", nil, data, t))
}

// fields flattens s for InfluxDB.
func (s System) fields() map[string]interface{} {
	data := map[string]interface{}{
		"alloc":       s.Alloc,
		"sys":         s.Sys,
		"total_alloc": s.TotalAlloc,
		"goroutines":  s.Goroutines,
	}
	if s.HostMemUsed != 0 {
		data["total_sys"] = s.HostMemUsed
		data["total_sys_percent"] = s.HostMemPercent
	}
	for i, p := range s.CPU {
		data[fmt.Sprintf("cpu_%d", i)] = p
	}
	return data
}
