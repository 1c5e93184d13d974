package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// DPI used when rasterizing pages for OCR.
	DPI int `yaml:"dpi"`
	// Workers bounds OCR parallelism. 1 means fully sequential.
	Workers int `yaml:"workers"`
	// TessdataPrefix overrides the Tesseract trained-data directory.
	TessdataPrefix string `yaml:"tessdata_prefix"`
	// MinTextChars is the number of cleaned text-layer characters a page
	// needs before OCR is skipped for it.
	MinTextChars int `yaml:"min_text_chars"`
	// KeepPageImages leaves rendered page images on disk for debugging.
	KeepPageImages bool `yaml:"keep_page_images"`
}

func Default() *Config {
	return &Config{
		DPI:          400,
		Workers:      1,
		MinTextChars: 1,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.DPI <= 0 {
		cfg.DPI = 400
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.MinTextChars <= 0 {
		cfg.MinTextChars = 1
	}

	return cfg, nil
}
