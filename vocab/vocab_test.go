// Copyright 2021 KoSpeech Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vocab

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"
)

func testTokens() []string {
	return []string{"<pad>", "<sos>", "<eos>", "A", "B", " ", "C"}
}

func TestLabelsToText(t *testing.T) {
	v := New(testTokens())

	assert.Equal(t, "AB C", v.LabelsToText([]int{1, 3, 4, 5, 6, 2}))
	assert.Equal(t, "", v.LabelsToText(nil))

	// The conversion stops at eos and skips pad and out-of-range ids.
	assert.Equal(t, "A", v.LabelsToText([]int{1, 3, 2, 4}))
	assert.Equal(t, "AB", v.LabelsToText([]int{3, 0, 4, v.BlankID(), 99}))
}

func TestSpecials(t *testing.T) {
	v := New(testTokens())
	assert.Equal(t, 7, v.Size())
	assert.Equal(t, 7, v.BlankID())
	assert.Equal(t, 0, v.PadID())
	assert.Equal(t, 1, v.SosID())
	assert.Equal(t, 2, v.EosID())

	v = New(testTokens(), WithSpecials(6, 5, 4))
	assert.Equal(t, 6, v.PadID())
	assert.Equal(t, 5, v.SosID())
	assert.Equal(t, 4, v.EosID())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.csv")
	content := "id,char,freq\n0,<pad>,0\n1,<sos>,0\n2,<eos>,0\n3,A,120\n4,B,42\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	v, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, v.Size())
	assert.Equal(t, "AB", v.LabelsToText([]int{1, 3, 4, 2}))
}

func TestLoadEUCKR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.csv")
	content := "id,char,freq\n0,<pad>,0\n1,<sos>,0\n2,<eos>,0\n3,아,120\n4,침,42\n"
	encoded, _, err := transform.String(korean.EUCKR.NewEncoder(), content)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte(encoded), 0o644))

	v, err := Load(path, korean.EUCKR)
	require.NoError(t, err)
	assert.Equal(t, "아침", v.LabelsToText([]int{1, 3, 4, 2}))
}

func TestLoadMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.csv")
	require.NoError(t, os.WriteFile(path, []byte("index,token\n0,A\n"), 0o644))

	_, err := Load(path, nil)
	assert.Error(t, err)
}
