// Copyright 2021 KoSpeech Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package vocab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Load reads a label file in the KoSpeech CSV layout ("id,char,freq") and
// builds a Vocabulary from it. A non-nil enc decodes the file from a
// non-UTF-8 text encoding, which the Korean label files require.
func Load(path string, enc encoding.Encoding, opts ...Option) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open label file: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if enc != nil {
		r = transform.NewReader(f, enc.NewDecoder())
	}

	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("unable to read label file header: %w", err)
	}
	idCol, charCol := -1, -1
	for i, name := range header {
		switch name {
		case "id":
			idCol = i
		case "char":
			charCol = i
		}
	}
	if idCol < 0 || charCol < 0 {
		return nil, fmt.Errorf("label file %q: missing id or char column", path)
	}

	byID := make(map[int]string)
	maxID := -1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unable to read label file: %w", err)
		}
		id, err := strconv.Atoi(record[idCol])
		if err != nil {
			return nil, fmt.Errorf("label file %q: invalid id %q: %w", path, record[idCol], err)
		}
		byID[id] = record[charCol]
		if id > maxID {
			maxID = id
		}
	}

	tokens := make([]string, maxID+1)
	for id, token := range byID {
		tokens[id] = token
	}
	return New(tokens, opts...), nil
}
