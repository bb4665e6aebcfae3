package db

// Config is the connection profile Open turns into a dialector and a
// bounded pool. Values come from the application environment config.
type Config struct {
	Type     string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string

	Pool Pool
}

// Pool bounds the underlying sql.DB connection pool. Zero values keep
// the driver defaults; durations are in seconds.
type Pool struct {
	MaxIdle         int
	MaxOpen         int
	MaxLifetimeSecs int
	MaxIdleTimeSecs int
}
