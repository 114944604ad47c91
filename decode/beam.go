// Copyright 2021 KoSpeech Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package decode

import (
	"sort"

	"github.com/Youngmi-Park/KoSpeech/model"
)

// candidate is one partial hypothesis in a beam. The sequence includes the
// leading start-of-sequence label; the score is the sum of the token
// log-probabilities, never normalized by length.
type candidate struct {
	seq   []int
	score float64
	done  bool
}

// extension is one way to grow a beam in a single step. A completed
// candidate is carried forward as an extension with no token.
type extension struct {
	beamIdx int
	tokenID int // -1 for a carried-forward completed candidate
	score   float64
	done    bool
}

// beamDecode produces one hypothesis per batch element by top-k expansion of
// the model's per-step distributions.
func (s *Searcher) beamDecode(sd model.StepDecoder, b Batch, device model.Device) ([][]int, error) {
	hypotheses := make([][]int, b.Size())
	for i := range b.Inputs {
		step, err := sd.DecodeStepper(b.Inputs[i], b.InputLengths[i], device)
		if err != nil {
			return nil, err
		}
		seq, err := topK(step, s.opts.BeamWidth, s.opts.MaxLength, s.vocab.SosID(), s.vocab.EosID())
		if err != nil {
			return nil, err
		}
		hypotheses[i] = seq
	}
	return hypotheses, nil
}

// topK runs beam search for a single utterance. At every step each live
// candidate is extended with every token of the next-step distribution,
// completed candidates are carried forward unchanged, and the k best
// extensions are kept, pooled across all beam slots. The search stops when
// every candidate has emitted the end-of-sequence label or the length
// cutoff is reached. The result is the best completed candidate, or the
// best candidate of any status when none completed in time.
func topK(step model.StepFunc, k, maxLength, sosID, eosID int) ([]int, error) {
	beams := []candidate{{seq: []int{sosID}}}

	for length := 0; length < maxLength; length++ {
		extensions := make([]extension, 0, len(beams)*2)
		live := 0
		for beamIdx, cand := range beams {
			if cand.done {
				extensions = append(extensions, extension{
					beamIdx: beamIdx,
					tokenID: -1,
					score:   cand.score,
					done:    true,
				})
				continue
			}
			live++
			logProbs, err := step(cand.seq)
			if err != nil {
				return nil, err
			}
			for tokenID, lp := range logProbs.Data().F64() {
				extensions = append(extensions, extension{
					beamIdx: beamIdx,
					tokenID: tokenID,
					score:   cand.score + lp,
					done:    tokenID == eosID,
				})
			}
		}
		if live == 0 {
			break
		}

		// Ties break on insertion order: lower beam index, then lower token
		// id, so the search is deterministic.
		sort.SliceStable(extensions, func(i, j int) bool {
			if extensions[i].score != extensions[j].score {
				return extensions[i].score > extensions[j].score
			}
			if extensions[i].beamIdx != extensions[j].beamIdx {
				return extensions[i].beamIdx < extensions[j].beamIdx
			}
			return extensions[i].tokenID < extensions[j].tokenID
		})
		if len(extensions) > k {
			extensions = extensions[:k]
		}

		next := make([]candidate, len(extensions))
		for i, ext := range extensions {
			prev := beams[ext.beamIdx]
			if ext.tokenID < 0 {
				next[i] = prev
				continue
			}
			seq := make([]int, len(prev.seq), len(prev.seq)+1)
			copy(seq, prev.seq)
			next[i] = candidate{seq: append(seq, ext.tokenID), score: ext.score, done: ext.done}
		}
		beams = next
	}

	// Beams are kept score-descending, so the first completed candidate is
	// the best completed one.
	for _, cand := range beams {
		if cand.done {
			return trimDecoded(cand.seq, sosID, eosID), nil
		}
	}
	return trimDecoded(beams[0].seq, sosID, eosID), nil
}

// trimDecoded strips the leading start-of-sequence label and a trailing
// end-of-sequence label from a finished hypothesis.
func trimDecoded(seq []int, sosID, eosID int) []int {
	if len(seq) > 0 && seq[0] == sosID {
		seq = seq[1:]
	}
	if len(seq) > 0 && seq[len(seq)-1] == eosID {
		seq = seq[:len(seq)-1]
	}
	return seq
}
