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

package returndata

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Panic codes emitted by the Solidity runtime safety checks.
var panicReasons = map[uint64]string{
	0x01: "Assertion error",
	0x11: "Arithmetic operation underflowed or overflowed outside of an unchecked block",
	0x12: "Division or modulo division by zero",
	0x21: "Tried to convert a value into an enum, but the value was too big or negative",
	0x22: "Incorrectly encoded storage byte array",
	0x31: ".pop() was called on an empty array",
	0x32: "Array accessed at an out-of-bounds or negative index",
	0x41: "Too much memory was allocated, or an array was created that is too large",
	0x51: "Called a zero-initialized variable of internal function type",
}

// PanicReason returns the fixed description for a known panic code.
// Codes wider than 64 bits cannot match any known entry.
func PanicReason(code *uint256.Int) (string, bool) {
	if code == nil || !code.IsUint64() {
		return "", false
	}
	reason, ok := panicReasons[code.Uint64()]
	return reason, ok
}

// PanicMessage renders the user-facing message for a panic code. Unknown
// codes get a generic message instead of an error.
func PanicMessage(code *uint256.Int) string {
	if code == nil {
		code = new(uint256.Int)
	}
	if reason, ok := PanicReason(code); ok {
		return fmt.Sprintf("VM Exception while processing transaction: reverted with panic code %s (%s)", code.Hex(), reason)
	}
	return fmt.Sprintf("VM Exception while processing transaction: reverted with unknown panic code %s", code.Hex())
}
