package metrics

import "github.com/quentinlc/teambalance/core/factory"

// Config lists the sinks to build, in the order they should record.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
}
