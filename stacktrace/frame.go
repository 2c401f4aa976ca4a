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

// Package stacktrace turns the execution engine's raw trace of a failed
// contract call into a human-readable message and a synthetic
// source-level call stack.
package stacktrace

import (
	"github.com/erigontech/erigon-lib/common"
	"github.com/holiman/uint256"
)

// FrameKind tags one variant of the closed trace-frame taxonomy produced
// by the execution engine. The set is closed, but dispatch over it stays
// total: a kind this package does not know degrades to the documented
// fallbacks instead of failing.
type FrameKind int

const (
	CallstackEntry FrameKind = iota
	UnrecognizedCreateCallstackEntry
	UnrecognizedContractCallstackEntry
	PrecompileError
	RevertError
	PanicError
	CustomError
	FunctionNotPayableError
	InvalidParamsError
	FallbackNotPayableError
	FallbackNotPayableAndNoReceiveError
	UnrecognizedFunctionWithoutFallbackError
	MissingFallbackOrReceiveError
	ReturndataSizeError
	NoncontractAccountCalledError
	CallFailedError
	DirectLibraryCallError
	UnrecognizedCreateError
	UnrecognizedContractError
	OtherExecutionError
	ContractTooLargeError
	InternalFunctionCallstackEntry
	ContractCallRunOutOfGasError
	UnmappedSolcRevertError
)

var frameKindNames = map[FrameKind]string{
	CallstackEntry:                           "CALLSTACK_ENTRY",
	UnrecognizedCreateCallstackEntry:         "UNRECOGNIZED_CREATE_CALLSTACK_ENTRY",
	UnrecognizedContractCallstackEntry:       "UNRECOGNIZED_CONTRACT_CALLSTACK_ENTRY",
	PrecompileError:                          "PRECOMPILE_ERROR",
	RevertError:                              "REVERT_ERROR",
	PanicError:                               "PANIC_ERROR",
	CustomError:                              "CUSTOM_ERROR",
	FunctionNotPayableError:                  "FUNCTION_NOT_PAYABLE_ERROR",
	InvalidParamsError:                       "INVALID_PARAMS_ERROR",
	FallbackNotPayableError:                  "FALLBACK_NOT_PAYABLE_ERROR",
	FallbackNotPayableAndNoReceiveError:      "FALLBACK_NOT_PAYABLE_AND_NO_RECEIVE_ERROR",
	UnrecognizedFunctionWithoutFallbackError: "UNRECOGNIZED_FUNCTION_WITHOUT_FALLBACK_ERROR",
	MissingFallbackOrReceiveError:            "MISSING_FALLBACK_OR_RECEIVE_ERROR",
	ReturndataSizeError:                      "RETURNDATA_SIZE_ERROR",
	NoncontractAccountCalledError:            "NONCONTRACT_ACCOUNT_CALLED_ERROR",
	CallFailedError:                          "CALL_FAILED_ERROR",
	DirectLibraryCallError:                   "DIRECT_LIBRARY_CALL_ERROR",
	UnrecognizedCreateError:                  "UNRECOGNIZED_CREATE_ERROR",
	UnrecognizedContractError:                "UNRECOGNIZED_CONTRACT_ERROR",
	OtherExecutionError:                      "OTHER_EXECUTION_ERROR",
	ContractTooLargeError:                    "CONTRACT_TOO_LARGE_ERROR",
	InternalFunctionCallstackEntry:           "INTERNAL_FUNCTION_CALLSTACK_ENTRY",
	ContractCallRunOutOfGasError:             "CONTRACT_CALL_RUN_OUT_OF_GAS_ERROR",
	UnmappedSolcRevertError:                  "UNMAPPED_SOLC_REVERT_ERROR",
}

func (k FrameKind) String() string {
	if name, ok := frameKindNames[k]; ok {
		return name
	}
	return "UNKNOWN_FRAME_KIND"
}

// SourceReference locates a frame in the original Solidity source, when
// the source map resolved it. Function is empty and Line is zero when
// unknown.
type SourceReference struct {
	SourceName string `json:"sourceName"`
	Contract   string `json:"contract"`
	Function   string `json:"function,omitempty"`
	Line       int    `json:"line,omitempty"`
}

// Frame is one entry of an execution trace. Which fields are meaningful
// depends on Kind; the engine only populates the fields its variant
// defines, everything else stays at the zero value. Frames are immutable
// once produced.
type Frame struct {
	Kind          FrameKind
	Source        *SourceReference
	Address       *common.Address
	Value         *uint256.Int
	ReturnData    []byte
	ErrorCode     *uint256.Int
	Precompile    int
	PC            uint64
	Message       string
	InvalidOpcode bool
}

// Trace is an ordered, non-empty frame sequence, outermost call first,
// failure point last.
type Trace []Frame

// Last is the authoritative frame for message synthesis.
func (t Trace) Last() Frame {
	return t[len(t)-1]
}
