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

// Package returndata classifies the raw bytes a failed EVM call returned.
//
// Solidity encodes revert reasons and runtime panics as calls to two
// built-in error signatures, Error(string) and Panic(uint256). Anything
// else (custom errors, hand-rolled assembly reverts) is surfaced as an
// opaque byte blob.
package returndata

import (
	"bytes"

	"github.com/erigontech/erigon-lib/common/hexutility"
	"github.com/holiman/uint256"
)

// Selectors are the first 4 bytes of keccak256 of the error signature.
var (
	errorStringSelector = []byte{0x08, 0xc3, 0x79, 0xa0} // Error(string)
	panicCodeSelector   = []byte{0x4e, 0x48, 0x7b, 0x71} // Panic(uint256)
)

const (
	selectorLen = 4
	wordLen     = 32
)

type Kind uint8

const (
	Empty Kind = iota
	ErrorString
	PanicCode
	Unrecognized
)

func (k Kind) String() string {
	switch k {
	case Empty:
		return "empty"
	case ErrorString:
		return "error-string"
	case PanicCode:
		return "panic-code"
	case Unrecognized:
		return "unrecognized"
	}
	return "invalid"
}

// ReturnData is the classified form of one return-data payload. It is
// immutable once built by Classify.
type ReturnData struct {
	kind   Kind
	reason string
	code   *uint256.Int
	raw    []byte
}

// Classify inspects the payload's selector and decodes the tail
// accordingly. A matched selector with a malformed tail degrades to
// Unrecognized; Classify never fails.
func Classify(data []byte) ReturnData {
	if len(data) == 0 {
		return ReturnData{kind: Empty}
	}
	if len(data) >= selectorLen {
		selector, tail := data[:selectorLen], data[selectorLen:]
		switch {
		case bytes.Equal(selector, errorStringSelector):
			if reason, ok := unpackString(tail); ok {
				return ReturnData{kind: ErrorString, reason: reason, raw: data}
			}
		case bytes.Equal(selector, panicCodeSelector):
			if code, ok := unpackUint256(tail); ok {
				return ReturnData{kind: PanicCode, code: code, raw: data}
			}
		}
	}
	return ReturnData{kind: Unrecognized, raw: data}
}

func (r ReturnData) Kind() Kind { return r.kind }

func (r ReturnData) IsEmpty() bool { return r.kind == Empty }

// Reason is the decoded revert reason. Only meaningful for ErrorString.
func (r ReturnData) Reason() string { return r.reason }

// Code is the decoded panic code. Only meaningful for PanicCode.
func (r ReturnData) Code() *uint256.Int { return r.code }

// Raw is the original payload, selector included.
func (r ReturnData) Raw() []byte { return r.raw }

// Hex renders the original payload as 0x-prefixed lowercase hex.
func (r ReturnData) Hex() string { return hexutility.Encode(r.raw) }

// unpackString decodes a single ABI-encoded string argument: a 32-byte
// offset word, then a 32-byte length word at that offset, then the bytes.
// Offset and length words are attacker-controlled, so every bound is
// checked by subtraction against the payload size; adding to them first
// could wrap around uint64.
func unpackString(tail []byte) (string, bool) {
	size := uint64(len(tail))
	offset, ok := unpackOffset(tail, 0)
	if !ok || offset > size || size-offset < wordLen {
		return "", false
	}
	length, ok := unpackOffset(tail, offset)
	if !ok {
		return "", false
	}
	start := offset + wordLen
	if length > size-start {
		return "", false
	}
	return string(tail[start : start+length]), true
}

// unpackUint256 decodes a single ABI-encoded uint256 argument.
func unpackUint256(tail []byte) (*uint256.Int, bool) {
	if len(tail) != wordLen {
		return nil, false
	}
	return new(uint256.Int).SetBytes(tail), true
}

// unpackOffset reads the 32-byte word at pos as a uint64-sized offset or
// length. Words that do not fit in 64 bits cannot address a real payload.
func unpackOffset(tail []byte, pos uint64) (uint64, bool) {
	if pos > uint64(len(tail)) || uint64(len(tail))-pos < wordLen {
		return 0, false
	}
	word := new(uint256.Int).SetBytes(tail[pos : pos+wordLen])
	if !word.IsUint64() {
		return 0, false
	}
	return word.Uint64(), true
}
