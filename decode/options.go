// Copyright 2021 KoSpeech Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package decode

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Strategy selects how a step's output distribution becomes a token.
type Strategy string

const (
	// Greedy takes the single highest-probability token at each step.
	Greedy Strategy = "greedy"
	// Beam retains the k highest-scoring partial hypotheses at each step.
	Beam Strategy = "beam"
)

// DecodingOptions configures a Searcher. Strategies are plain configuration:
// choosing Beam never mutates the model being decoded.
type DecodingOptions struct {
	// Strategy is the decoding strategy (default: greedy).
	Strategy Strategy `yaml:"strategy"`
	// BeamWidth is the number of hypotheses retained per utterance when the
	// strategy is Beam.
	BeamWidth int `yaml:"beam_width"`
	// MaxLength is the hard cutoff on generated sequence length.
	MaxLength int `yaml:"max_length"`
	// Metric is the error-rate kind, "char" or "word".
	Metric string `yaml:"metric"`
}

// DefaultOptions returns greedy character-level decoding options.
func DefaultOptions() DecodingOptions {
	return DecodingOptions{
		Strategy:  Greedy,
		BeamWidth: 1,
		MaxLength: 128,
		Metric:    "char",
	}
}

// LoadOptions reads decoding options from a YAML file, filling unset fields
// with defaults.
func LoadOptions(path string) (DecodingOptions, error) {
	opts := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return opts, fmt.Errorf("unable to read decoding options: %w", err)
	}
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("unable to parse decoding options: %w", err)
	}
	return opts, nil
}

func (o DecodingOptions) validate() error {
	switch o.Strategy {
	case Greedy:
	case Beam:
		if o.BeamWidth < 1 {
			return fmt.Errorf("beam width must be positive, got %d", o.BeamWidth)
		}
	default:
		return fmt.Errorf("unknown decoding strategy %q", o.Strategy)
	}
	if o.MaxLength < 1 {
		return fmt.Errorf("max length must be positive, got %d", o.MaxLength)
	}
	return nil
}
