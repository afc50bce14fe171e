package redis

// RedisConfig holds connection settings for a standalone Redis instance.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}
