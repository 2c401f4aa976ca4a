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
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func rendererPointer(r Renderer) uintptr {
	return reflect.ValueOf(r).Pointer()
}

func TestEncodeRestoresRenderer(t *testing.T) {
	before := CurrentRenderer()
	Encode("fallback", revertTrace(), nil)
	require.Equal(t, rendererPointer(before), rendererPointer(CurrentRenderer()))
}

func TestEncodeRestoresCustomRenderer(t *testing.T) {
	custom := func(message string, frames []string) string {
		return fmt.Sprintf("%s [%d frames]", message, len(frames))
	}
	previous := SwapRenderer(custom)
	defer SwapRenderer(previous)

	diag := Encode("fallback", revertTrace(), []string{"native (main.go:1)"})
	require.Equal(t, "VM Exception while processing transaction: reverted with reason string 'boom' [4 frames]", diag.Stack())
	require.Equal(t, rendererPointer(custom), rendererPointer(CurrentRenderer()))
}

func TestRendererRestoredWhenMaterializationPanics(t *testing.T) {
	exploding := func(message string, frames []string) string {
		panic("renderer exploded")
	}
	previous := SwapRenderer(exploding)
	defer SwapRenderer(previous)

	require.PanicsWithValue(t, "renderer exploded", func() {
		Encode("fallback", revertTrace(), nil)
	})
	require.Equal(t, rendererPointer(exploding), rendererPointer(CurrentRenderer()))
}

func TestCustomRendererSeesCallSitesBeforeNativeFrames(t *testing.T) {
	var seen []string
	recorder := func(message string, frames []string) string {
		seen = append([]string{}, frames...)
		return message
	}
	previous := SwapRenderer(recorder)
	defer SwapRenderer(previous)

	Encode("fallback", revertTrace(), []string{"native (main.go:1)"})
	require.Len(t, seen, 4)
	require.True(t, strings.HasPrefix(seen[0], "A.run"))
	require.Equal(t, "native (main.go:1)", seen[3])
}

func TestConcurrentEncodesSerializeRendererAccess(t *testing.T) {
	before := CurrentRenderer()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				Encode("fallback", revertTrace(), []string{"native (main.go:1)"})
			}
		}()
	}
	wg.Wait()
	require.Equal(t, rendererPointer(before), rendererPointer(CurrentRenderer()))
}
