package config

const (
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

// ApplyDefaults fills every unset section.
func (c *Config) ApplyDefaults() {
	c.App.ApplyDefaults()
	c.Log.ApplyDefaults()
	c.Storage.ApplyDefaults()
	c.Redis.ApplyDefaults()
}

func (a *AppConfig) ApplyDefaults() {
	if a.Addr == "" {
		a.Addr = ":8080"
	}
	if a.MaxUploadBytes <= 0 {
		a.MaxUploadBytes = 10 << 20
	}
}

func (l *LogConfig) ApplyDefaults() {
	if l.Format == "" {
		l.Format = "json"
	}
	if l.Level == "" {
		l.Level = "info"
	}
	if l.File.Dir == "" {
		l.File.Dir = "./logs"
	}
	if l.File.Filename == "" {
		l.File.Filename = "errcatalog"
	}
	if l.File.MaxAgeDays <= 0 {
		l.File.MaxAgeDays = 7
	}
	if l.File.RotationDays <= 0 {
		l.File.RotationDays = 1
	}
}

func (s *StorageConfig) ApplyDefaults() {
	if s.Driver == "" {
		s.Driver = DriverMemory
	}
}

func (r *RedisConfig) ApplyDefaults() {
	if r.Addr == "" {
		r.Addr = "localhost:6379"
	}
	if r.KeyPrefix == "" {
		r.KeyPrefix = "scg:documents:"
	}
}
