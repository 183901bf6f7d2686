// seehuhn.de/go/cidfont - glyph selection for composite PDF fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package loader

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"golang.org/x/exp/maps"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// ErrConfig is matched by all [ConfigError] values using [errors.Is].
var ErrConfig = errors.New("configuration error")

// ConfigError represents a configuration error with context.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config error in '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is allows to match ConfigError values against [ErrConfig].
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// Config describes the fonts available to a [FontLoader].
//
// Example:
//
//	font-maps:
//	  - /etc/cidfont/font.map
//	fonts:
//	  - name: NotoSansCJKjp-Regular
//	    type: sfnt
//	    path: /usr/share/fonts/NotoSansCJKjp-Regular.otf
//	fallback:
//	  ja: [NotoSansCJKjp-Regular]
//	  und: [DejaVuSans]
type Config struct {
	// FontMaps lists font map files, in the format read by
	// [FontLoader.AddFontMap].
	FontMaps []string `yaml:"font-maps"`

	// Fonts lists individual font files.
	Fonts []*FontConfig `yaml:"fonts"`

	// Fallback maps BCP 47 language tags to lists of PostScript font names.
	// The tag "und" gives the fonts used when the language is not known.
	Fallback map[string][]string `yaml:"fallback"`
}

// FontConfig describes a single font file.
type FontConfig struct {
	// Name is the PostScript name of the font.
	Name string `yaml:"name"`

	// Type is either "cff" or "sfnt".
	Type string `yaml:"type"`

	// Path is the location of the font file.
	Path string `yaml:"path"`
}

// LoadConfig reads a configuration file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses configuration from YAML data.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, &ConfigError{Message: "invalid YAML", Err: err}
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	for i, font := range c.Fonts {
		field := fmt.Sprintf("fonts[%d]", i)
		if font == nil {
			return &ConfigError{Field: field, Message: "empty entry"}
		}
		if font.Name == "" {
			return &ConfigError{Field: field + ".name", Message: "required field is missing"}
		}
		if font.Path == "" {
			return &ConfigError{Field: field + ".path", Message: "required field is missing"}
		}
		if _, err := parseFontType(font.Type); err != nil {
			return &ConfigError{Field: field + ".type", Message: err.Error(), Err: err}
		}
	}
	tags := maps.Keys(c.Fallback)
	slices.Sort(tags)
	for _, tag := range tags {
		if _, err := language.Parse(tag); err != nil {
			return &ConfigError{
				Field:   "fallback." + tag,
				Message: "invalid language tag",
				Err:     err,
			}
		}
	}
	return nil
}

// Configure adds the fonts described by c to the loader.
func (l *FontLoader) Configure(c *Config) error {
	if err := c.Validate(); err != nil {
		return err
	}

	for _, fname := range c.FontMaps {
		err := l.addFontMapFile(fname)
		if err != nil {
			return &ConfigError{Field: "font-maps", Message: err.Error(), Err: err}
		}
	}
	for _, font := range c.Fonts {
		tp, _ := parseFontType(font.Type)
		l.AddFont(font.Name, tp, font.Path)
	}
	tags := maps.Keys(c.Fallback)
	slices.Sort(tags)
	for _, tag := range tags {
		l.AddFallback(language.Make(tag), c.Fallback[tag]...)
	}
	return nil
}

func (l *FontLoader) addFontMapFile(fname string) error {
	fd, err := os.Open(fname)
	if err != nil {
		return err
	}
	err = l.AddFontMap(fd)
	err2 := fd.Close()
	if err == nil {
		err = err2
	}
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}
