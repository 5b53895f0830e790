package types

// Config holds all tunable configuration for the search server and its CLI.
type Config struct {
	// Search configuration
	Search SearchConfig `json:"search"`

	// Logging configuration
	Log LogConfig `json:"log"`
}

// SearchConfig holds index and ranking configuration.
type SearchConfig struct {
	// ShardCount is the bucket count used by the concurrent sharded map
	// during parallel query evaluation (spec suggests ~100 for typical
	// corpora).
	ShardCount int `json:"shard_count"`

	// DefaultMaxResults is a result-count setting that the index does not
	// read: FindTopDocuments always returns at most MaxResultDocumentCount
	// results, whatever this is set to.
	DefaultMaxResults int `json:"default_max_results"`

	// StopWordsFile, if non-empty, is a whitespace-delimited file of
	// stop-words loaded by the CLI at startup.
	StopWordsFile string `json:"stop_words_file"`
}

// LogConfig holds logging configuration for the CLI entry point.
type LogConfig struct {
	// Verbose enables additional log.Printf diagnostics during indexing.
	Verbose bool `json:"verbose"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			ShardCount:        100,
			DefaultMaxResults: MaxResultDocumentCount,
		},
		Log: LogConfig{
			Verbose: false,
		},
	}
}
