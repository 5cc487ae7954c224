package app

import "errors"

// Config holds everything an App needs to plan a run.
type Config struct {
	ManifestPath string // tab-separated sample table
	RawReadsDir  string // 00_raw_reads equivalent
	GenomeRoot   string // data/ equivalent, one subdir per genome
	Workdir      string // root the staged output directories hang off
	ProfilePath  string // optional HCL resource profile

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	if cfg.RawReadsDir == "" {
		return nil, errors.New("RawReadsDir is a required configuration field and cannot be empty")
	}
	if cfg.GenomeRoot == "" {
		return nil, errors.New("GenomeRoot is a required configuration field and cannot be empty")
	}
	if cfg.Workdir == "" {
		cfg.Workdir = "."
	}
	return &cfg, nil
}
