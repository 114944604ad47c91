// Copyright 2021 KoSpeech Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package model

import "github.com/nlpodyssey/spago/mat"

// StepFunc returns the next-token log-probability distribution conditioned
// on the label sequence decoded so far (including the leading
// start-of-sequence label).
type StepFunc func(prefix []int) (mat.Matrix, error)

// StepDecoder is implemented by models whose terminal decoding stage can be
// driven one token at a time. Beam search wraps the returned StepFunc to
// expand multiple hypotheses from the same per-step distributions the
// model's own greedy decoding uses.
type StepDecoder interface {
	// DecodeStepper prepares per-step decoding for a single utterance.
	DecodeStepper(input mat.Matrix, length int, device Device) (StepFunc, error)
}
