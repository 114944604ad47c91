// Copyright 2021 KoSpeech Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package model

// DataParallel wraps a module for multi-device execution. How the replicas
// are scheduled is the wrapper's concern; the decoding engine always
// unwraps it and drives the underlying module directly.
type DataParallel struct {
	Module  Model
	Devices []Device
}

// NewDataParallel wraps the given module for execution on the given devices.
func NewDataParallel(m Model, devices ...Device) *DataParallel {
	return &DataParallel{Module: m, Devices: devices}
}

func (p *DataParallel) Architecture() Tag { return p.Module.Architecture() }

func (p *DataParallel) Eval() { p.Module.Eval() }

func (p *DataParallel) To(device Device) { p.Module.To(device) }

// Unwrap returns the module wrapped by a DataParallel, or the model itself
// when it is not wrapped.
func Unwrap(m Model) Model {
	if p, ok := m.(*DataParallel); ok {
		return p.Module
	}
	return m
}
