package metrics

// MultiSink fans records out to multiple sinks.
type MultiSink struct {
	Sinks []MetricsSink
}

// NewMultiSink wraps sinks in fan-out order.
func NewMultiSink(sinks ...MetricsSink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordBalanceResult forwards the records to all sinks, returning the
// first error encountered.
func (m *MultiSink) RecordBalanceResult(res []BalanceResult) error {
	for _, s := range m.Sinks {
		if err := s.RecordBalanceResult(res); err != nil {
			return err
		}
	}
	return nil
}

// RecordOptimizerPass forwards optimizer passes to sinks that support them.
func (m *MultiSink) RecordOptimizerPass(ev OptimizerPass) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(OptimizerRecorder); ok {
			if err := rec.RecordOptimizerPass(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// RecordRoster forwards roster events to sinks that support them.
func (m *MultiSink) RecordRoster(ev RosterEvent) error {
	for _, s := range m.Sinks {
		if rec, ok := s.(RosterRecorder); ok {
			if err := rec.RecordRoster(ev); err != nil {
				return err
			}
		}
	}
	return nil
}
