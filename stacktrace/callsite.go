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

import "fmt"

// Fixed labels used when a frame cannot be resolved to real source.
const (
	UnknownFunctionName      = "<unknown>"
	UnrecognizedFunctionName = "<unrecognized-selector>"
	UnrecognizedContractName = "<UnrecognizedContract>"
	PrecompileFunctionName   = "<precompile>"
	ConstructorFunctionName  = "constructor"
)

// CallSite is one synthetic source-level stack frame. Empty strings and a
// zero Line mean the field is absent; String substitutes the fixed
// placeholders, so absent fields never render as empty text.
//
// For unrecognized contracts SourceName carries the contract address in
// hex. That is a placeholder standing in for a file name, not a path, and
// the <UnrecognizedContract> label next to it marks it as such.
type CallSite struct {
	SourceName string
	Contract   string
	Function   string
	Line       int
}

func (c CallSite) String() string {
	source := c.SourceName
	if source == "" {
		source = "unknown"
	}
	contract := c.Contract
	if contract == "" {
		contract = UnrecognizedContractName
	}
	function := c.Function
	if function == "" {
		function = UnknownFunctionName
	}
	if c.Line > 0 {
		return fmt.Sprintf("%s.%s (%s:%d)", contract, function, source, c.Line)
	}
	return fmt.Sprintf("%s.%s (%s)", contract, function, source)
}

// FrameCallSite synthesizes the stack frame descriptor for one trace
// frame. Every kind maps to something; unknown kinds and frames missing
// their source reference degrade to the unrecognized-contract
// placeholder.
func FrameCallSite(frame Frame) CallSite {
	switch frame.Kind {
	case CallstackEntry, RevertError, PanicError, CustomError,
		FunctionNotPayableError, InvalidParamsError,
		FallbackNotPayableError, FallbackNotPayableAndNoReceiveError,
		ReturndataSizeError, NoncontractAccountCalledError,
		CallFailedError, DirectLibraryCallError:
		return sourceCallSite(frame.Source)
	case UnrecognizedFunctionWithoutFallbackError, MissingFallbackOrReceiveError:
		site := sourceCallSite(frame.Source)
		site.Function = UnrecognizedFunctionName
		return site
	case UnrecognizedCreateCallstackEntry, UnrecognizedCreateError:
		return CallSite{Contract: UnrecognizedContractName, Function: ConstructorFunctionName}
	case UnrecognizedContractCallstackEntry, UnrecognizedContractError:
		site := CallSite{Contract: UnrecognizedContractName, Function: UnknownFunctionName}
		if frame.Address != nil {
			site.SourceName = frame.Address.Hex()
		}
		return site
	case PrecompileError:
		return CallSite{
			Contract: fmt.Sprintf("<PrecompileContract %d>", frame.Precompile),
			Function: PrecompileFunctionName,
		}
	case InternalFunctionCallstackEntry:
		site := sourceCallSite(frame.Source)
		site.Function = fmt.Sprintf("internal@%d", frame.PC)
		site.Line = 0
		return site
	default:
		// ContractCallRunOutOfGasError, OtherExecutionError,
		// ContractTooLargeError, UnmappedSolcRevertError and anything
		// the engine adds later: use the source reference when there is
		// one, otherwise the bare placeholder.
		if frame.Source != nil {
			return sourceCallSite(frame.Source)
		}
		return CallSite{Contract: UnrecognizedContractName, Function: UnknownFunctionName}
	}
}

func sourceCallSite(ref *SourceReference) CallSite {
	if ref == nil {
		return CallSite{Contract: UnrecognizedContractName, Function: UnknownFunctionName}
	}
	function := ref.Function
	if function == "" {
		function = UnknownFunctionName
	}
	return CallSite{
		SourceName: ref.SourceName,
		Contract:   ref.Contract,
		Function:   function,
		Line:       ref.Line,
	}
}
