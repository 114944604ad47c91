// Copyright 2021 KoSpeech Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package model defines the contract between the decoding engine and the
// trained acoustic models it drives. Each supported architecture declares
// its tag once at construction time and exposes the inference call
// convention that goes with it.
package model

import "github.com/nlpodyssey/spago/mat"

// Tag identifies which inference call convention and hypothesis format a
// model uses. The set of supported architectures is closed.
type Tag int

const (
	TagUnknown Tag = iota
	TagListenAttendSpell
	TagTransformer
	TagDeepSpeech2
)

func (t Tag) String() string {
	switch t {
	case TagListenAttendSpell:
		return "las"
	case TagTransformer:
		return "transformer"
	case TagDeepSpeech2:
		return "deepspeech2"
	}
	return "unknown"
}

// Device is an opaque compute device handle, e.g. "cpu" or "cuda:0".
type Device string

// CPU is the default device.
const CPU Device = "cpu"

// Model is the minimal surface every trained model exposes to the decoding
// engine. Inference never mutates the model's weights.
type Model interface {
	// Architecture returns the model's tag, declared once at construction.
	Architecture() Tag
	// Eval switches the model to evaluation mode.
	Eval()
	// To moves the model's parameters onto the given device.
	To(device Device)
}

// ListenAttendSpell is the call convention of attention-based
// encoder-decoder models, which need a device handle for their internal
// decoding loop.
type ListenAttendSpell interface {
	Model
	Infer(inputs []mat.Matrix, lengths []int, device Device) ([][]int, error)
}

// Transformer is the call convention of self-attention models.
type Transformer interface {
	Model
	Infer(inputs []mat.Matrix, lengths []int) ([][]int, error)
}

// DeepSpeech2 is the call convention of CTC-style models, which collapse
// alignments around the given blank label.
type DeepSpeech2 interface {
	Model
	Infer(inputs []mat.Matrix, lengths []int, blankLabel int) ([][]int, error)
}
