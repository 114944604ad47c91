// Copyright 2021 KoSpeech Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vocab

import "strings"

// Default positions of the special labels in the KoSpeech label files.
const (
	DefaultPadID = 0
	DefaultSosID = 1
	DefaultEosID = 2
)

// Vocabulary is an immutable mapping from integer label id to textual token.
// The blank id used by CTC-style models is derived from the vocabulary size
// and is not part of the mapping itself.
type Vocabulary struct {
	tokens []string
	padID  int
	sosID  int
	eosID  int
}

// Option configures a Vocabulary at construction time.
type Option func(*Vocabulary)

// WithSpecials overrides the default pad/sos/eos label ids.
func WithSpecials(pad, sos, eos int) Option {
	return func(v *Vocabulary) {
		v.padID = pad
		v.sosID = sos
		v.eosID = eos
	}
}

// New builds a Vocabulary over the given tokens, indexed by position.
func New(tokens []string, opts ...Option) *Vocabulary {
	v := &Vocabulary{
		tokens: append([]string(nil), tokens...),
		padID:  DefaultPadID,
		sosID:  DefaultSosID,
		eosID:  DefaultEosID,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Size returns the number of tokens in the vocabulary.
func (v *Vocabulary) Size() int { return len(v.tokens) }

// BlankID returns the blank label id used for CTC alignment collapsing.
// It is defined as the vocabulary size, one past the last real label.
func (v *Vocabulary) BlankID() int { return len(v.tokens) }

// PadID returns the padding label id.
func (v *Vocabulary) PadID() int { return v.padID }

// SosID returns the start-of-sequence label id.
func (v *Vocabulary) SosID() int { return v.sosID }

// EosID returns the end-of-sequence label id.
func (v *Vocabulary) EosID() int { return v.eosID }

// LabelsToText converts a label-id sequence to text. The conversion stops at
// the first end-of-sequence label and skips padding, start-of-sequence and
// any id outside the mapping (including the blank label).
func (v *Vocabulary) LabelsToText(ids []int) string {
	var sb strings.Builder
	for _, id := range ids {
		if id == v.eosID {
			break
		}
		if id == v.padID || id == v.sosID || id < 0 || id >= len(v.tokens) {
			continue
		}
		sb.WriteString(v.tokens[id])
	}
	return sb.String()
}
