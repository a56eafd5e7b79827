package cmd

// Config carries the process configuration, loaded from the environment.
//
// DBPath is a SQLite DSN. The default keeps the whole collection in
// memory, so the order list starts empty on every launch; pointing it at
// a file turns on durability without code changes.
type Config struct {
	HTTPPort string
	DBPath   string
}
