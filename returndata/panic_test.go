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
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestPanicReasonKnownCodes(t *testing.T) {
	for code := range panicReasons {
		reason, ok := PanicReason(uint256.NewInt(code))
		require.True(t, ok, "code 0x%x", code)
		require.NotEmpty(t, reason, "code 0x%x", code)
	}
}

func TestPanicMessageOverflow(t *testing.T) {
	msg := PanicMessage(uint256.NewInt(0x11))
	require.Equal(t, "VM Exception while processing transaction: reverted with panic code 0x11 (Arithmetic operation underflowed or overflowed outside of an unchecked block)", msg)
}

func TestPanicMessageUnknownCode(t *testing.T) {
	msg := PanicMessage(uint256.NewInt(0xff))
	require.Equal(t, "VM Exception while processing transaction: reverted with unknown panic code 0xff", msg)
}

func TestPanicMessageHugeCode(t *testing.T) {
	huge := new(uint256.Int).Lsh(uint256.NewInt(1), 200)
	reason, ok := PanicReason(huge)
	require.False(t, ok)
	require.Empty(t, reason)
	require.Contains(t, PanicMessage(huge), "unknown panic code 0x")
}
