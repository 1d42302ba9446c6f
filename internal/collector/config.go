package collector

import "time"

// CollectorConfig contains configurable parameters for the system collector.
// Use DefaultCollectorConfig() to get sensible defaults, then override as needed.
type CollectorConfig struct {
	Timeout time.Duration // Upper bound for one snapshot (default: 2s)

	NetworkCheckEndpoint string        // Endpoint for the latency probe (default: "8.8.8.8:53")
	NetworkCheckTimeout  time.Duration // Timeout for the latency probe (default: 1s)
	EnableNetworkCheck   bool          // Whether to dial the endpoint at all (default: true)

	DiskPath      string // Filesystem reported as "the" disk (default: "/")
	MaxPartitions int    // Partitions listed on the disk page (default: 8)
}

// DefaultCollectorConfig returns a CollectorConfig with sensible defaults.
func DefaultCollectorConfig() CollectorConfig {
	return CollectorConfig{
		Timeout:              2 * time.Second,
		NetworkCheckEndpoint: "8.8.8.8:53",
		NetworkCheckTimeout:  time.Second,
		EnableNetworkCheck:   true,
		DiskPath:             "/",
		MaxPartitions:        8,
	}
}

// WithTimeout returns a copy of the config with modified snapshot timeout.
func (c CollectorConfig) WithTimeout(d time.Duration) CollectorConfig {
	c.Timeout = d
	return c
}

// WithNetworkEndpoint returns a copy of the config with modified latency endpoint.
// An empty endpoint disables the probe.
func (c CollectorConfig) WithNetworkEndpoint(endpoint string) CollectorConfig {
	c.NetworkCheckEndpoint = endpoint
	c.EnableNetworkCheck = endpoint != ""
	return c
}

// WithDiskPath returns a copy of the config reporting usage for path.
func (c CollectorConfig) WithDiskPath(path string) CollectorConfig {
	c.DiskPath = path
	return c
}
