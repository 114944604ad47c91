// Copyright 2021 KoSpeech Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package decode

import (
	"github.com/Youngmi-Park/KoSpeech/model"
	"github.com/Youngmi-Park/KoSpeech/vocab"
	"github.com/nlpodyssey/spago/mat"
)

// Label ids of the test vocabulary: 0 pad, 1 sos, 2 eos, 3 "A", 4 "B", 5 "C".
func testVocab() *vocab.Vocabulary {
	return vocab.New([]string{"<pad>", "<sos>", "<eos>", "A", "B", "C"})
}

type base struct {
	tag    model.Tag
	eval   bool
	device model.Device
}

func (b *base) Architecture() model.Tag { return b.tag }
func (b *base) Eval()                   { b.eval = true }
func (b *base) To(d model.Device)       { b.device = d }

// stepLAS is an attention-style model scripted by per-position log-prob
// rows. Its greedy Infer and its step decoder draw from the same rows, the
// way a real model's greedy decoding and beam adapter share one
// distribution function.
type stepLAS struct {
	base
	steps [][]float64 // steps[i] is the distribution at generated position i
	eosID int
}

func newStepLAS(steps [][]float64) *stepLAS {
	return &stepLAS{
		base:  base{tag: model.TagListenAttendSpell},
		steps: steps,
		eosID: 2,
	}
}

func (m *stepLAS) row(position int) []float64 {
	if position >= len(m.steps) {
		position = len(m.steps) - 1
	}
	return m.steps[position]
}

func (m *stepLAS) Infer(inputs []mat.Matrix, _ []int, _ model.Device) ([][]int, error) {
	hypotheses := make([][]int, len(inputs))
	for i := range inputs {
		var seq []int
		for pos := 0; pos < len(m.steps); pos++ {
			logProbs := mat.NewVecDense[float64](m.row(pos))
			best := logProbs.ArgMax()
			if best == m.eosID {
				break
			}
			seq = append(seq, best)
		}
		hypotheses[i] = seq
	}
	return hypotheses, nil
}

func (m *stepLAS) DecodeStepper(_ mat.Matrix, _ int, _ model.Device) (model.StepFunc, error) {
	return func(prefix []int) (mat.Matrix, error) {
		return mat.NewVecDense[float64](m.row(len(prefix) - 1)), nil
	}, nil
}

// scriptedTransformer returns one pre-baked hypothesis set per Infer call.
type scriptedTransformer struct {
	base
	hypotheses [][][]int
	calls      int
}

func newScriptedTransformer(hypotheses ...[][]int) *scriptedTransformer {
	return &scriptedTransformer{
		base:       base{tag: model.TagTransformer},
		hypotheses: hypotheses,
	}
}

func (m *scriptedTransformer) Infer(_ []mat.Matrix, _ []int) ([][]int, error) {
	hyps := m.hypotheses[m.calls]
	m.calls++
	return hyps, nil
}

// recordingDS2 echoes its targetless hypotheses and records the blank label
// it was invoked with.
type recordingDS2 struct {
	base
	hypotheses [][]int
	blankLabel int
}

func newRecordingDS2(hypotheses [][]int) *recordingDS2 {
	return &recordingDS2{
		base:       base{tag: model.TagDeepSpeech2},
		hypotheses: hypotheses,
		blankLabel: -1,
	}
}

func (m *recordingDS2) Infer(_ []mat.Matrix, _ []int, blankLabel int) ([][]int, error) {
	m.blankLabel = blankLabel
	return m.hypotheses, nil
}

// batchOf builds a batch with dummy single-frame inputs for n targets.
func batchOf(targets ...[]int) Batch {
	b := Batch{Targets: targets}
	for _, target := range targets {
		b.Inputs = append(b.Inputs, mat.NewVecDense[float64]([]float64{0}))
		b.InputLengths = append(b.InputLengths, 1)
		b.TargetLengths = append(b.TargetLengths, len(target))
	}
	return b
}

func sourceOf(batches ...Batch) chan Batch {
	ch := make(chan Batch, len(batches)+1)
	for _, b := range batches {
		ch <- b
	}
	ch <- Sentinel()
	return ch
}
