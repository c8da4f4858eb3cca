package config

import (
	"fmt"
	"path/filepath"

	"bikeshare/domain/entities/city"
)

const (
	FormatCSV     = "csv"
	FormatParquet = "parquet"
)

// DefaultTimeLayouts layouts tried, in order, to parse the trip timestamps
var DefaultTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
}

// SourceConfig location of the trips of one city
// + File: path relative to the data directory, or absolute
// + Format: csv or parquet. If empty it is taken from the file extension
type SourceConfig struct {
	File   string `yaml:"file"`
	Format string `yaml:"format"`
}

type LoaderConfig struct {
	DataDir     string                     `yaml:"data_dir"`
	TimeLayouts []string                   `yaml:"time_layouts"`
	Cities      map[city.City]SourceConfig `yaml:"cities"`
}

// Validate fills defaults and checks that every known city has a source with a supported format
func (lc *LoaderConfig) Validate() error {
	if len(lc.TimeLayouts) == 0 {
		lc.TimeLayouts = DefaultTimeLayouts
	}

	for _, c := range city.All() {
		source, ok := lc.Cities[c]
		if !ok || source.File == "" {
			return fmt.Errorf("missing source file for %s", c.Name())
		}

		format := source.GetFormat()
		if format != FormatCSV && format != FormatParquet {
			return fmt.Errorf("invalid format %q for %s", format, c.Name())
		}
	}
	return nil
}

// GetSource returns the source of c with its path resolved against DataDir
func (lc *LoaderConfig) GetSource(c city.City) (SourceConfig, bool) {
	source, ok := lc.Cities[c]
	if !ok {
		return SourceConfig{}, false
	}

	if !filepath.IsAbs(source.File) {
		source.File = filepath.Join(lc.DataDir, source.File)
	}
	source.Format = source.GetFormat()
	return source, true
}

// GetFormat returns Format or, if empty, the file extension without the dot
func (sc SourceConfig) GetFormat() string {
	if sc.Format != "" {
		return sc.Format
	}
	ext := filepath.Ext(sc.File)
	if ext == "" {
		return ""
	}
	return ext[1:]
}
