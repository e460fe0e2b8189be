package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vybium/vybium-modinterp/internal/vybium-modinterp/core"
)

// HashFunctions lists the supported digest functions for result fingerprints
var HashFunctions = []string{"sha3", "sha256", "blake3", "tip5"}

// Config represents the configuration for a batch interpolation run
type Config struct {
	// Ring parameters
	Modulus int64

	// Sampling: 0 uses every extracted pair
	SampleSize int

	// Input discovery
	Pattern string // glob matched against file names in the folder

	// Output
	OutputFile   string // empty: lagrange_polynomials_mod<m>.txt in the folder
	HashFunction string // "sha3", "sha256", "blake3" or "tip5"
	ChartDir     string // empty: no charts

	// Processing
	Workers  int
	LogLevel string
}

// DefaultConfig returns the default configuration: modulus 27, all pairs, *.txt
func DefaultConfig() *Config {
	return &Config{
		Modulus:      core.DefaultModulus,
		SampleSize:   0,
		Pattern:      "*.txt",
		HashFunction: "sha3",
		Workers:      4,
		LogLevel:     "info",
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Modulus < 2 || c.Modulus > core.MaxModulus {
		return fmt.Errorf("modulus must be in [2, %d], got %d", core.MaxModulus, c.Modulus)
	}

	if c.SampleSize < 0 {
		return fmt.Errorf("sample size must not be negative")
	}

	if c.Pattern == "" {
		return fmt.Errorf("file pattern must not be empty")
	}
	if _, err := filepath.Match(c.Pattern, ""); err != nil {
		return fmt.Errorf("invalid file pattern %q: %w", c.Pattern, err)
	}

	if c.Workers <= 0 {
		return fmt.Errorf("workers must be positive")
	}

	if !isHashFunction(c.HashFunction) {
		return fmt.Errorf("hash function must be one of %s, got '%s'", strings.Join(HashFunctions, ", "), c.HashFunction)
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log level must be 'debug', 'info', 'warn' or 'error', got '%s'", c.LogLevel)
	}

	return nil
}

// OutputPath returns where saved results go for the given folder
func (c *Config) OutputPath(dir string) string {
	if c.OutputFile != "" {
		return c.OutputFile
	}
	return filepath.Join(dir, fmt.Sprintf("lagrange_polynomials_mod%d.txt", c.Modulus))
}

// WithModulus sets the modulus
func (c *Config) WithModulus(modulus int64) *Config {
	c.Modulus = modulus
	return c
}

// WithSampleSize sets the sample size
func (c *Config) WithSampleSize(size int) *Config {
	c.SampleSize = size
	return c
}

// WithPattern sets the file pattern
func (c *Config) WithPattern(pattern string) *Config {
	c.Pattern = pattern
	return c
}

// WithOutputFile sets the output file
func (c *Config) WithOutputFile(path string) *Config {
	c.OutputFile = path
	return c
}

// WithHashFunction sets the hash function
func (c *Config) WithHashFunction(hashFunc string) *Config {
	c.HashFunction = hashFunc
	return c
}

// WithChartDir sets the chart output directory
func (c *Config) WithChartDir(dir string) *Config {
	c.ChartDir = dir
	return c
}

// WithWorkers sets the number of files processed concurrently
func (c *Config) WithWorkers(workers int) *Config {
	c.Workers = workers
	return c
}

// WithLogLevel sets the log level
func (c *Config) WithLogLevel(level string) *Config {
	c.LogLevel = level
	return c
}

// Clone creates a copy of the configuration
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

func isHashFunction(name string) bool {
	for _, h := range HashFunctions {
		if h == name {
			return true
		}
	}
	return false
}
