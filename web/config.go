package web

import (
	"os"
	"strconv"

	"sectionheading/web/pages/comps"

	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"
)

// Config holds the preview server settings, loaded from the environment.
type Config struct {
	Addr        string // Listen address (SECTIONS_ADDR)
	LogLevel    string // Logger level (SECTIONS_LOG_LEVEL)
	SamplesFile string // Optional YAML file of sample headings (SECTIONS_SAMPLES_FILE)
}

const (
	defaultAddr     = ":8000"
	defaultLogLevel = "info"
)

// LoadConfig reads configuration from environment variables, applying defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Addr:        defaultAddr,
		LogLevel:    defaultLogLevel,
		SamplesFile: os.Getenv("SECTIONS_SAMPLES_FILE"),
	}
	if addr := os.Getenv("SECTIONS_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if lvl := os.Getenv("SECTIONS_LOG_LEVEL"); lvl != "" {
		cfg.LogLevel = lvl
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values that can be rejected before startup.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return serr.New("invalid SECTIONS_LOG_LEVEL " + strconv.Quote(c.LogLevel) + ", expected debug, info, warn or error")
	}
	if c.Addr == "" {
		return serr.New("SECTIONS_ADDR must not be empty")
	}
	return nil
}

// sampleFile is the on-disk shape of SECTIONS_SAMPLES_FILE.
type sampleFile struct {
	Sections []struct {
		Title    string `yaml:"title"`
		Subtitle string `yaml:"subtitle"`
		Centered bool   `yaml:"centered"`
		Class    string `yaml:"class"`
	} `yaml:"sections"`
}

// DefaultSamples are shown when no samples file is configured.
func DefaultSamples() []comps.SectionHeading {
	return []comps.SectionHeading{
		{Title: "Our Services"},
		{Title: "Pricing", Subtitle: "Simple plans", Centered: true},
		{Title: "X", ClassName: "custom-mb"},
	}
}

// LoadSamples returns the headings listed in the configured samples file,
// or DefaultSamples when none is set.
func (c *Config) LoadSamples() ([]comps.SectionHeading, error) {
	if c.SamplesFile == "" {
		return DefaultSamples(), nil
	}

	data, err := os.ReadFile(c.SamplesFile)
	if err != nil {
		return nil, serr.Wrap(err, "failed to read samples file "+c.SamplesFile)
	}
	return parseSamples(data)
}

func parseSamples(data []byte) ([]comps.SectionHeading, error) {
	var f sampleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, serr.Wrap(err, "failed to parse samples file")
	}

	headings := make([]comps.SectionHeading, 0, len(f.Sections))
	for i, s := range f.Sections {
		if s.Title == "" {
			return nil, serr.New("sample section " + strconv.Itoa(i) + " is missing a title")
		}
		headings = append(headings, comps.SectionHeading{
			Title:     s.Title,
			Subtitle:  s.Subtitle,
			Centered:  s.Centered,
			ClassName: s.Class,
		})
	}
	return headings, nil
}
