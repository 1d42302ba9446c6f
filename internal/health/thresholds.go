package health

// Limits defines warning and critical levels for one metric.
type Limits struct {
	Warning  float64 `koanf:"warning"`
	Critical float64 `koanf:"critical"`
}

type Config struct {
	CPU  Limits `koanf:"cpu"`
	Load Limits `koanf:"load"` // 1-minute load per core
	RAM  Limits `koanf:"ram"`
	Swap Limits `koanf:"swap"`
	Disk Limits `koanf:"disk"`
	Net  Limits `koanf:"net"` // ms

	// MinFreeDiskGB raises a healthy disk to a warning when less space remains.
	MinFreeDiskGB float64 `koanf:"min_free_disk_gb"`
}

func DefaultConfig() Config {
	return Config{
		CPU:           Limits{Warning: 70.0, Critical: 90.0},
		Load:          Limits{Warning: 1.0, Critical: 2.0},
		RAM:           Limits{Warning: 70.0, Critical: 90.0},
		Swap:          Limits{Warning: 50.0, Critical: 80.0},
		Disk:          Limits{Warning: 80.0, Critical: 90.0},
		Net:           Limits{Warning: 150.0, Critical: 500.0},
		MinFreeDiskGB: 5,
	}
}

// Named returns every limit keyed by its config name, for validation.
func (c Config) Named() map[string]Limits {
	return map[string]Limits{
		"cpu":  c.CPU,
		"load": c.Load,
		"ram":  c.RAM,
		"swap": c.Swap,
		"disk": c.Disk,
		"net":  c.Net,
	}
}
