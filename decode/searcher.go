// Copyright 2021 KoSpeech Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package decode drives a trained speech-recognition model over a stream of
// batches, converting per-timestep output distributions into final label
// sequences and scoring them against reference transcripts.
package decode

import (
	"context"
	"fmt"

	"github.com/Youngmi-Park/KoSpeech/metrics"
	"github.com/Youngmi-Park/KoSpeech/model"
	"github.com/Youngmi-Park/KoSpeech/result"
	"github.com/Youngmi-Park/KoSpeech/vocab"
	"github.com/rs/zerolog/log"
)

// Searcher decodes batches with a fixed strategy and keeps the decoded
// (target, prediction) text pairs for the lifetime of the instance.
// A Searcher must not decode the same model from two goroutines at once.
type Searcher struct {
	vocab  *vocab.Vocabulary
	metric *metrics.ErrorRate
	sink   *result.Sink
	opts   DecodingOptions
}

// NewSearcher builds a Searcher over the given vocabulary. It fails when the
// options name an unknown metric kind or an invalid strategy.
func NewSearcher(v *vocab.Vocabulary, opts DecodingOptions) (*Searcher, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	metric, err := metrics.New(v, opts.Metric)
	if err != nil {
		return nil, err
	}
	return &Searcher{
		vocab:  v,
		metric: metric,
		sink:   result.NewSink(),
		opts:   opts,
	}, nil
}

// Sink returns the accumulated (target, prediction) pairs.
func (s *Searcher) Sink() *result.Sink { return s.sink }

// Search consumes batches until the source is closed or yields the sentinel,
// decoding each one with the configured strategy and scoring the hypotheses
// against the targets. Batches are processed strictly in arrival order; the
// receive blocks while the source is empty. The returned value is the metric
// after the most recently completed batch, 0 when no batch was processed.
//
// Inference failures from the model are propagated as-is: decoding is
// assumed deterministic and side-effect-free, so a failure is a collaborator
// bug, not something to retry.
func (s *Searcher) Search(ctx context.Context, m model.Model, batches <-chan Batch, device model.Device, printEvery int) (float64, error) {
	if printEvery <= 0 {
		return 0, fmt.Errorf("print interval must be positive, got %d", printEvery)
	}

	tag, err := model.Identify(m)
	if err != nil {
		return 0, err
	}
	module := model.Unwrap(m)

	var stepper model.StepDecoder
	if s.opts.Strategy == Beam {
		sd, ok := module.(model.StepDecoder)
		if !ok {
			return 0, fmt.Errorf("%w: %T exposes no step decoder for beam search", model.ErrUnsupportedArchitecture, module)
		}
		stepper = sd
	}

	m.Eval()
	m.To(device)

	var errRate float64
	timestep := 0
	for {
		var b Batch
		var ok bool
		select {
		case <-ctx.Done():
			return errRate, ctx.Err()
		case b, ok = <-batches:
		}
		if !ok || b.IsSentinel() {
			break
		}

		hypotheses, err := s.decodeBatch(module, tag, stepper, b, device)
		if err != nil {
			return errRate, err
		}

		for i := range b.Targets {
			s.sink.Record(
				s.vocab.LabelsToText(b.Targets[i]),
				s.vocab.LabelsToText(hypotheses[i]),
			)
		}
		errRate = s.metric.Compute(trimLeading(b.Targets), hypotheses)

		if timestep%printEvery == 0 {
			log.Info().Int("batch", timestep).Float64("error_rate", errRate).Msg("decoding progress")
		}
		timestep++
	}
	return errRate, nil
}

// decodeBatch produces one hypothesis label sequence per batch element. A
// beam stepper, when present, substitutes the model's terminal decoding
// step; everything else about the loop is shared between strategies.
func (s *Searcher) decodeBatch(module model.Model, tag model.Tag, stepper model.StepDecoder, b Batch, device model.Device) ([][]int, error) {
	if stepper != nil {
		return s.beamDecode(stepper, b, device)
	}
	switch tag {
	case model.TagListenAttendSpell:
		return module.(model.ListenAttendSpell).Infer(b.Inputs, b.InputLengths, device)
	case model.TagTransformer:
		return module.(model.Transformer).Infer(b.Inputs, b.InputLengths)
	case model.TagDeepSpeech2:
		return module.(model.DeepSpeech2).Infer(b.Inputs, b.InputLengths, s.vocab.BlankID())
	}
	return nil, fmt.Errorf("%w: %v", model.ErrUnsupportedArchitecture, tag)
}

// trimLeading drops the leading start-of-sequence label from each target, so
// the metric compares targets against raw hypotheses.
func trimLeading(targets [][]int) [][]int {
	trimmed := make([][]int, len(targets))
	for i, t := range targets {
		if len(t) > 0 {
			trimmed[i] = t[1:]
		}
	}
	return trimmed
}
