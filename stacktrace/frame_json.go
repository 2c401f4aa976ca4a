// Copyright 2026 The Hardhat Authors
// This file is part of Hardhat.
//
// Hardhat is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hardhat is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Hardhat. If not, see <http://www.gnu.org/licenses/>.

package stacktrace

import (
	"fmt"

	"github.com/erigontech/erigon-lib/common"
	"github.com/erigontech/erigon-lib/common/hexutility"
	"github.com/erigontech/erigon-lib/common/length"
	"github.com/holiman/uint256"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var frameKindsByName = func() map[string]FrameKind {
	byName := make(map[string]FrameKind, len(frameKindNames))
	for kind, name := range frameKindNames {
		byName[name] = kind
	}
	return byName
}()

// frameJSON is the wire form of a Frame. Kinds travel by name, addresses
// and return data as 0x-hex, values as decimal strings.
type frameJSON struct {
	Kind          string           `json:"kind"`
	Source        *SourceReference `json:"source,omitempty"`
	Address       string           `json:"address,omitempty"`
	Value         string           `json:"value,omitempty"`
	ReturnData    string           `json:"returnData,omitempty"`
	ErrorCode     string           `json:"errorCode,omitempty"`
	Precompile    int              `json:"precompile,omitempty"`
	PC            uint64           `json:"pc,omitempty"`
	Message       string           `json:"message,omitempty"`
	InvalidOpcode bool             `json:"invalidOpcode,omitempty"`
}

func (f Frame) MarshalJSON() ([]byte, error) {
	wire := frameJSON{
		Kind:          f.Kind.String(),
		Source:        f.Source,
		Precompile:    f.Precompile,
		PC:            f.PC,
		Message:       f.Message,
		InvalidOpcode: f.InvalidOpcode,
	}
	if f.Address != nil {
		wire.Address = f.Address.Hex()
	}
	if f.Value != nil {
		wire.Value = f.Value.Dec()
	}
	if len(f.ReturnData) > 0 {
		wire.ReturnData = hexutility.Encode(f.ReturnData)
	}
	if f.ErrorCode != nil {
		wire.ErrorCode = f.ErrorCode.Hex()
	}
	return json.Marshal(wire)
}

func (f *Frame) UnmarshalJSON(data []byte) error {
	var wire frameJSON
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	kind, ok := frameKindsByName[wire.Kind]
	if !ok {
		return fmt.Errorf("unknown frame kind %q", wire.Kind)
	}
	decoded := Frame{
		Kind:          kind,
		Source:        wire.Source,
		Precompile:    wire.Precompile,
		PC:            wire.PC,
		Message:       wire.Message,
		InvalidOpcode: wire.InvalidOpcode,
	}
	if wire.Address != "" {
		raw, err := hexutility.DecodeHex(wire.Address)
		if err != nil {
			return fmt.Errorf("frame address %q: %w", wire.Address, err)
		}
		if len(raw) != length.Addr {
			return fmt.Errorf("frame address %q: %d bytes, want %d", wire.Address, len(raw), length.Addr)
		}
		address := common.BytesToAddress(raw)
		decoded.Address = &address
	}
	if wire.Value != "" {
		value, err := uint256.FromDecimal(wire.Value)
		if err != nil {
			return fmt.Errorf("frame value %q: %w", wire.Value, err)
		}
		decoded.Value = value
	}
	if wire.ReturnData != "" {
		raw, err := hexutility.DecodeHex(wire.ReturnData)
		if err != nil {
			return fmt.Errorf("frame return data: %w", err)
		}
		decoded.ReturnData = raw
	}
	if wire.ErrorCode != "" {
		code, err := uint256.FromHex(wire.ErrorCode)
		if err != nil {
			return fmt.Errorf("frame error code %q: %w", wire.ErrorCode, err)
		}
		decoded.ErrorCode = code
	}
	*f = decoded
	return nil
}
