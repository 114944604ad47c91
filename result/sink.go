// Copyright 2021 KoSpeech Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package result accumulates decoded (target, prediction) text pairs and
// persists them.
package result

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Pair is one decoded sample: the reference transcript and the hypothesis.
type Pair struct {
	Target     string
	Prediction string
}

// Sink accumulates pairs in insertion order, one entry per processed sample.
type Sink struct {
	targets     []string
	predictions []string
}

// NewSink returns an empty Sink.
func NewSink() *Sink { return &Sink{} }

// Record appends one (target, prediction) pair.
func (s *Sink) Record(target, prediction string) {
	s.targets = append(s.targets, target)
	s.predictions = append(s.predictions, prediction)
}

// Len returns the number of recorded pairs.
func (s *Sink) Len() int { return len(s.targets) }

// Pairs returns the recorded pairs in insertion order.
func (s *Sink) Pairs() []Pair {
	pairs := make([]Pair, len(s.targets))
	for i := range s.targets {
		pairs[i] = Pair{Target: s.targets[i], Prediction: s.predictions[i]}
	}
	return pairs
}

// FlushCSV writes the recorded pairs to path as CSV with a
// "targets,predictions" header, one row per sample. A non-nil enc writes
// the file in a non-UTF-8 text encoding, which Korean transcripts may
// require.
func (s *Sink) FlushCSV(path string, enc encoding.Encoding) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create result file: %w", err)
	}

	var w io.Writer = f
	var tw *transform.Writer
	if enc != nil {
		tw = transform.NewWriter(f, enc.NewEncoder())
		w = tw
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"targets", "predictions"}); err != nil {
		f.Close()
		return fmt.Errorf("unable to write result header: %w", err)
	}
	for i := range s.targets {
		if err := cw.Write([]string{s.targets[i], s.predictions[i]}); err != nil {
			f.Close()
			return fmt.Errorf("unable to write result row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return fmt.Errorf("unable to flush results: %w", err)
	}
	if tw != nil {
		if err := tw.Close(); err != nil {
			f.Close()
			return fmt.Errorf("unable to encode results: %w", err)
		}
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("unable to close result file: %w", err)
	}
	return nil
}

// ReadCSV reads back a file written by FlushCSV.
func ReadCSV(path string, enc encoding.Encoding) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open result file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if enc != nil {
		r = transform.NewReader(f, enc.NewDecoder())
	}

	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("unable to read result header: %w", err)
	}
	if len(header) != 2 || header[0] != "targets" || header[1] != "predictions" {
		return nil, fmt.Errorf("unexpected result header %v", header)
	}

	var pairs []Pair
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read result row: %w", err)
		}
		pairs = append(pairs, Pair{Target: record[0], Prediction: record[1]})
	}
	return pairs, nil
}
