// Copyright 2021 KoSpeech Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package metrics scores decoded hypotheses against reference transcripts
// with edit-distance-based error rates.
package metrics

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Youngmi-Park/KoSpeech/vocab"
	"github.com/agnivade/levenshtein"
)

// ErrInvalidMetricKind is returned when an error rate is constructed with an
// unknown metric kind.
var ErrInvalidMetricKind = errors.New("invalid metric kind")

// Supported metric kinds.
const (
	KindChar = "char"
	KindWord = "word"
)

// distanceFunc returns the edit distance between a reference and a
// hypothesis, together with the reference length in the metric's unit.
type distanceFunc func(ref, hyp string) (dist, length int)

// ErrorRate accumulates edit distance and reference length across all the
// batches it has scored, so each Compute call returns the error rate over
// everything seen so far.
type ErrorRate struct {
	vocab       *vocab.Vocabulary
	distance    distanceFunc
	totalDist   int
	totalLength int
}

// New builds an ErrorRate of the given kind ("char" or "word") over the
// given vocabulary.
func New(v *vocab.Vocabulary, kind string) (*ErrorRate, error) {
	var distance distanceFunc
	switch kind {
	case KindChar:
		distance = charDistance
	case KindWord:
		distance = wordDistance
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMetricKind, kind)
	}
	return &ErrorRate{vocab: v, distance: distance}, nil
}

// Compute scores the hypotheses of one batch against their targets and
// returns the cumulative error rate. Target and hypothesis label sequences
// are converted to text through the vocabulary before comparison.
func (e *ErrorRate) Compute(targets, hypotheses [][]int) float64 {
	for i := range targets {
		var hyp []int
		if i < len(hypotheses) {
			hyp = hypotheses[i]
		}
		dist, length := e.distance(
			e.vocab.LabelsToText(targets[i]),
			e.vocab.LabelsToText(hyp),
		)
		e.totalDist += dist
		e.totalLength += length
	}
	if e.totalLength == 0 {
		return 0
	}
	return float64(e.totalDist) / float64(e.totalLength)
}

// charDistance measures character-level distance, ignoring spaces.
func charDistance(ref, hyp string) (int, int) {
	ref = strings.ReplaceAll(ref, " ", "")
	hyp = strings.ReplaceAll(hyp, " ", "")
	return levenshtein.ComputeDistance(ref, hyp), utf8.RuneCountInString(ref)
}

// wordDistance measures word-level distance by mapping each distinct word to
// a single rune and measuring character distance on the encoded strings.
func wordDistance(ref, hyp string) (int, int) {
	refWords := strings.Fields(ref)
	hypWords := strings.Fields(hyp)

	word2rune := make(map[string]rune)
	encode := func(words []string) string {
		var sb strings.Builder
		for _, w := range words {
			r, ok := word2rune[w]
			if !ok {
				// Private use area keeps encoded words out of real text.
				r = rune(0xE000 + len(word2rune))
				word2rune[w] = r
			}
			sb.WriteRune(r)
		}
		return sb.String()
	}

	encodedRef := encode(refWords)
	encodedHyp := encode(hypWords)
	return levenshtein.ComputeDistance(encodedRef, encodedHyp), len(refWords)
}
