package cmd

// Config carries the application settings read from the environment.
type Config struct {
	SeedDemoData bool
	LogLevel     string
}
