// Copyright 2021 KoSpeech Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package metrics

import (
	"testing"

	"github.com/Youngmi-Park/KoSpeech/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVocab() *vocab.Vocabulary {
	return vocab.New([]string{"<pad>", "<sos>", "<eos>", "A", "B", "C", " "})
}

func TestNewInvalidKind(t *testing.T) {
	_, err := New(testVocab(), "phoneme")
	assert.ErrorIs(t, err, ErrInvalidMetricKind)
}

func TestCharErrorRate(t *testing.T) {
	e, err := New(testVocab(), KindChar)
	require.NoError(t, err)

	// Exact match.
	got := e.Compute([][]int{{3, 4, 5, 2}}, [][]int{{3, 4, 5}})
	assert.Equal(t, 0.0, got)

	// One substitution out of three characters, cumulative over six.
	got = e.Compute([][]int{{3, 4, 5, 2}}, [][]int{{3, 3, 5}})
	assert.InDelta(t, 1.0/6.0, got, 1e-9)
}

func TestCharErrorRateIgnoresSpaces(t *testing.T) {
	e, err := New(testVocab(), KindChar)
	require.NoError(t, err)

	// "AB C" vs "ABC" differ only by a space.
	got := e.Compute([][]int{{3, 4, 6, 5, 2}}, [][]int{{3, 4, 5}})
	assert.Equal(t, 0.0, got)
}

func TestWordErrorRate(t *testing.T) {
	e, err := New(testVocab(), KindWord)
	require.NoError(t, err)

	// "AB C" vs "AB B": one of two words wrong.
	got := e.Compute([][]int{{3, 4, 6, 5, 2}}, [][]int{{3, 4, 6, 4}})
	assert.InDelta(t, 0.5, got, 1e-9)
}

func TestErrorRateIsCumulative(t *testing.T) {
	e, err := New(testVocab(), KindChar)
	require.NoError(t, err)

	first := e.Compute([][]int{{3, 4, 2}}, [][]int{{3, 3}})
	assert.InDelta(t, 0.5, first, 1e-9)

	// A perfect second batch halves the running rate instead of resetting it.
	second := e.Compute([][]int{{3, 4, 2}}, [][]int{{3, 4}})
	assert.InDelta(t, 0.25, second, 1e-9)
}

func TestEmptyReference(t *testing.T) {
	e, err := New(testVocab(), KindChar)
	require.NoError(t, err)
	assert.Equal(t, 0.0, e.Compute(nil, nil))
}
