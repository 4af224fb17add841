// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrConfig is wrapped by the errors LoadConfig returns for invalid
// values.
var ErrConfig = errors.New("app: invalid config")

// file is the YAML form of the launch options.
type file struct {
	Title string `yaml:"title"`
	Size  *struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"size"`
	Resizable *bool `yaml:"resizable"`
	FPS       *int  `yaml:"fps"`
}

// LoadConfig reads launch options from YAML such as
//
//	title: Gallery
//	size: {width: 360, height: 640}
//	resizable: true
//	fps: 30
//
// Absent keys produce no option. Unknown keys are an error.
func LoadConfig(r io.Reader) ([]Option, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("app: config: %w", err)
	}
	var opts []Option
	if f.Title != "" {
		opts = append(opts, Title(f.Title))
	}
	if s := f.Size; s != nil {
		if s.Width <= 0 || s.Height <= 0 {
			return nil, fmt.Errorf("%w: size %dx%d", ErrConfig, s.Width, s.Height)
		}
		opts = append(opts, Size(s.Width, s.Height))
	}
	if f.Resizable != nil {
		opts = append(opts, Resizable(*f.Resizable))
	}
	if f.FPS != nil {
		if *f.FPS <= 0 {
			return nil, fmt.Errorf("%w: fps %d", ErrConfig, *f.FPS)
		}
		opts = append(opts, FPS(*f.FPS))
	}
	return opts, nil
}
