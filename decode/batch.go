// Copyright 2021 KoSpeech Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package decode

import "github.com/nlpodyssey/spago/mat"

// Batch is one unit of work pulled from the batch source: per-utterance
// feature matrices, their target label sequences, and both lengths.
type Batch struct {
	Inputs        []mat.Matrix
	Targets       [][]int
	InputLengths  []int
	TargetLengths []int
}

// Size returns the number of utterances in the batch.
func (b Batch) Size() int { return len(b.Inputs) }

// IsSentinel reports whether the batch is the end-of-stream marker. The
// check inspects the inputs alone; targets and lengths of a sentinel batch
// carry no meaning.
func (b Batch) IsSentinel() bool { return len(b.Inputs) == 0 }

// Sentinel returns the end-of-stream marker a producer sends after its last
// real batch. Closing the channel is an equivalent termination signal.
func Sentinel() Batch { return Batch{} }
