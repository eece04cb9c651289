package metrics

import (
	"github.com/quentinlc/teambalance/core/factory"
	coremetrics "github.com/quentinlc/teambalance/core/metrics"
)

type influxConf struct {
	URL    string `json:"url"`
	Token  string `json:"token"`
	Org    string `json:"org"`
	Bucket string `json:"bucket"`
}

// init registers the built-in sink types: nop, prometheus and influx.
func init() {
	_ = coremetrics.RegisterMetricsSink("nop", newNopSink)
	_ = coremetrics.RegisterMetricsSink("prometheus", newPrometheusSink)
	_ = coremetrics.RegisterMetricsSink("influx", newInfluxSink)
}

func newNopSink(map[string]any) (coremetrics.MetricsSink, error) {
	return coremetrics.NopSink{}, nil
}

func newPrometheusSink(map[string]any) (coremetrics.MetricsSink, error) {
	return NewPromSink()
}

func newInfluxSink(conf map[string]any) (coremetrics.MetricsSink, error) {
	var c influxConf
	if err := factory.Decode(conf, &c); err != nil {
		return nil, err
	}
	return NewInfluxSinkWithFallback(c.URL, c.Token, c.Org, c.Bucket), nil
}
