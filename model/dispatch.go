// Copyright 2021 KoSpeech Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package model

import (
	"errors"
	"fmt"
)

// ErrUnsupportedArchitecture is returned when a model's architecture is not
// one of the known variants, or when its declared tag and its actual call
// convention disagree.
var ErrUnsupportedArchitecture = errors.New("unsupported architecture")

// Identify returns the architecture tag of the given model, unwrapping a
// multi-device wrapper transparently. The tag is the single source of truth
// the decode loop branches on, so Identify also verifies that the model
// implements the call convention its tag promises.
func Identify(m Model) (Tag, error) {
	module := Unwrap(m)
	tag := module.Architecture()

	ok := false
	switch tag {
	case TagListenAttendSpell:
		_, ok = module.(ListenAttendSpell)
	case TagTransformer:
		_, ok = module.(Transformer)
	case TagDeepSpeech2:
		_, ok = module.(DeepSpeech2)
	}
	if !ok {
		return TagUnknown, fmt.Errorf("%w: %T", ErrUnsupportedArchitecture, module)
	}
	return tag, nil
}
