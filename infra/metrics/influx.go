package metrics

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/quentinlc/teambalance/core/metrics"
	"github.com/quentinlc/teambalance/infra/logger"
)

const influxTimeout = 5 * time.Second

// InfluxSink writes balance events to an InfluxDB instance using the
// official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink connects to the given endpoint. The URL may be a bare
// host or a full /api/v2/write URL.
func NewInfluxSink(url, token, org, bucket string) *InfluxSink {
	endpoint := strings.TrimSuffix(url, "/api/v2/write")
	opts := influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: influxTimeout})
	client := influxdb2.NewClientWithOptions(endpoint, token, opts)
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(org, bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback health-checks the instance first and falls
// back to a NopSink when it is unreachable, so a missing database never
// blocks a balance run.
func NewInfluxSinkWithFallback(url, token, org, bucket string) coremetrics.MetricsSink {
	sink := NewInfluxSink(url, token, org, bucket)
	ctx, cancel := context.WithTimeout(context.Background(), influxTimeout)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err == nil && health.Status == "pass" {
		return sink
	}
	if err != nil {
		sink.log.Errorf("influx health check: %v", err)
	} else {
		sink.log.Errorf("influx health status: %s", health.Status)
	}
	sink.client.Close()
	return coremetrics.NopSink{}
}

// RecordBalanceResult writes each result as a balance_run point.
func (s *InfluxSink) RecordBalanceResult(res []coremetrics.BalanceResult) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, r := range res {
		p := write.NewPointWithMeasurement("balance_run").
			AddTag("strategy", r.Strategy).
			AddTag("distribution_id", r.DistributionID).
			AddTag("optimized", strconv.FormatBool(r.Optimized)).
			AddField("num_teams", r.NumTeams).
			AddField("players_per_team", r.PlayersPerTeam).
			AddField("score", round3(r.Score)).
			AddField("strength_diff", r.StrengthDiff).
			AddField("strength_variance", round3(r.StrengthVariance)).
			AddField("tier_imbalance", round3(r.TierImbalance)).
			AddField("duration_ms", round3(r.Duration.Seconds()*1000)).
			SetTime(r.Time)
		if err := s.writeAPI.WritePoint(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// RecordOptimizerPass writes an optimizer_pass point.
func (s *InfluxSink) RecordOptimizerPass(ev coremetrics.OptimizerPass) error {
	ctx, cancel := context.WithTimeout(context.Background(), influxTimeout)
	defer cancel()
	p := write.NewPointWithMeasurement("optimizer_pass").
		AddTag("strategy", ev.Strategy).
		AddTag("converged", ev.Converged).
		AddField("iterations", ev.Iterations).
		AddField("improvements", ev.Improvements).
		AddField("initial_score", round3(ev.InitialScore)).
		AddField("final_score", round3(ev.FinalScore)).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

// RecordRoster writes a roster_loaded point.
func (s *InfluxSink) RecordRoster(ev coremetrics.RosterEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), influxTimeout)
	defer cancel()
	p := write.NewPointWithMeasurement("roster_loaded").
		AddField("players", ev.Players).
		AddField("captains", ev.Captains).
		AddField("warnings", ev.Warnings).
		SetTime(ev.Time)
	return s.writeAPI.WritePoint(ctx, p)
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
