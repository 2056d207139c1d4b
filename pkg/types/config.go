package types

// Config represents the configuration for the rdocs-mcp server
type Config struct {
	RscriptPath   string `json:"rscript_path,omitempty" yaml:"rscript_path,omitempty"`
	LogLevel      string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	MaxResults    int    `json:"max_results,omitempty" yaml:"max_results,omitempty"`
	SearchWorkers int    `json:"search_workers,omitempty" yaml:"search_workers,omitempty"`
}
