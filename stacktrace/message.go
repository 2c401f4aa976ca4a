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

	"github.com/dapcigar/hardhat/returndata"
)

// FrameMessage synthesizes the user-facing failure message from the last
// frame of a trace. ok is false when the kind has no message rule; the
// caller supplies its own fallback then.
func FrameMessage(frame Frame) (message string, ok bool) {
	switch frame.Kind {
	case PrecompileError:
		return fmt.Sprintf("Transaction reverted: call to precompile %d failed", frame.Precompile), true
	case FunctionNotPayableError:
		return fmt.Sprintf("Transaction reverted: non-payable function was called with value %s", decValue(frame)), true
	case InvalidParamsError:
		return "Transaction reverted: function was called with incorrect parameters", true
	case FallbackNotPayableError:
		return fmt.Sprintf("Transaction reverted: fallback function is not payable and was called with value %s", decValue(frame)), true
	case FallbackNotPayableAndNoReceiveError:
		return fmt.Sprintf("Transaction reverted: there's no receive function, fallback function is not payable and was called with value %s", decValue(frame)), true
	case UnrecognizedFunctionWithoutFallbackError:
		return "Transaction reverted: function selector was not recognized and there's no fallback function", true
	case MissingFallbackOrReceiveError:
		return "Transaction reverted: function selector was not recognized and there's no fallback nor receive function", true
	case ReturndataSizeError:
		return "Transaction reverted: function returned an unexpected amount of data", true
	case NoncontractAccountCalledError:
		return "Transaction reverted: function call to a non-contract account", true
	case CallFailedError:
		return "Transaction reverted: function call failed to execute", true
	case DirectLibraryCallError:
		return "Transaction reverted: library was called directly", true
	case ContractTooLargeError:
		return "Trying to deploy a contract whose code is too large", true
	case ContractCallRunOutOfGasError:
		return "Transaction ran out of gas", true
	case CustomError:
		// Pre-decoded by the engine, passed through verbatim.
		return frame.Message, true
	case PanicError:
		return returndata.PanicMessage(frame.ErrorCode), true
	case RevertError, UnrecognizedCreateError, UnrecognizedContractError:
		return returnDataMessage(frame), true
	default:
		return "", false
	}
}

func returnDataMessage(frame Frame) string {
	rd := returndata.Classify(frame.ReturnData)
	switch rd.Kind() {
	case returndata.ErrorString:
		return fmt.Sprintf("VM Exception while processing transaction: reverted with reason string '%s'", rd.Reason())
	case returndata.PanicCode:
		return returndata.PanicMessage(rd.Code())
	case returndata.Unrecognized:
		return fmt.Sprintf("VM Exception while processing transaction: reverted with an unrecognized custom error (return data: %s)", rd.Hex())
	default:
		if frame.InvalidOpcode {
			return "VM Exception while processing transaction: invalid opcode"
		}
		return "Transaction reverted without a reason string"
	}
}

func decValue(frame Frame) string {
	if frame.Value == nil {
		return "0"
	}
	return frame.Value.Dec()
}
