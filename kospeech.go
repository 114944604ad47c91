// Copyright 2021 KoSpeech Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kospeech evaluates trained speech-recognition models: it decodes
// a stream of batches into label sequences and scores them against the
// reference transcripts.
package kospeech

import (
	"context"

	"github.com/Youngmi-Park/KoSpeech/decode"
	"github.com/Youngmi-Park/KoSpeech/model"
	"github.com/Youngmi-Park/KoSpeech/result"
	"github.com/Youngmi-Park/KoSpeech/vocab"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/korean"
)

// Evaluator runs a decoding strategy over a model and keeps the decoded
// pairs until they are saved.
type Evaluator struct {
	searcher *decode.Searcher
}

// NewEvaluator builds an Evaluator over the given vocabulary and decoding
// options.
func NewEvaluator(v *vocab.Vocabulary, opts decode.DecodingOptions) (*Evaluator, error) {
	searcher, err := decode.NewSearcher(v, opts)
	if err != nil {
		return nil, err
	}
	return &Evaluator{searcher: searcher}, nil
}

// Evaluate decodes batches from the source until it yields the sentinel and
// returns the error rate after the last batch.
func (e *Evaluator) Evaluate(ctx context.Context, m model.Model, batches <-chan decode.Batch, device model.Device, printEvery int) (float64, error) {
	errRate, err := e.searcher.Search(ctx, m, batches, device, printEvery)
	if err != nil {
		return errRate, err
	}
	log.Info().Int("samples", e.searcher.Sink().Len()).Float64("error_rate", errRate).Msg("evaluation finished")
	return errRate, nil
}

// Sink returns the decoded (target, prediction) pairs recorded so far.
func (e *Evaluator) Sink() *result.Sink { return e.searcher.Sink() }

// SaveResult writes the decoded pairs to a CSV file in the EUC-KR encoding
// the Korean corpus tooling expects.
func (e *Evaluator) SaveResult(path string) error {
	return e.searcher.Sink().FlushCSV(path, korean.EUCKR)
}
