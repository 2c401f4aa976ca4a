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

package artifacts

import (
	"errors"
	"fmt"
)

// ErrBuildFailed reports that at least one file failed to compile. The
// compiler already printed the per-file diagnostics; they are not
// re-derived here.
var ErrBuildFailed = errors.New("compilation failed")

// CompilationJobCreationError reports that the compiler could not build a
// compilation job at all.
type CompilationJobCreationError struct {
	Reason       string
	RootFilePath string
	BuildProfile string
}

func (e *CompilationJobCreationError) Error() string {
	return fmt.Sprintf("could not create compilation job for %s with the %s profile: %s", e.RootFilePath, e.BuildProfile, e.Reason)
}

// Validate is a pure gate over a build outcome. It returns the per-file
// results only when every one of them is a CacheHit or a BuildSuccess,
// so callers past this point never see a failed entry. The outcome is
// not mutated.
func Validate(outcome BuildOutcome) (*BuildResults, error) {
	if outcome.JobFailure != nil {
		failure := outcome.JobFailure
		return nil, &CompilationJobCreationError{
			Reason:       failure.Reason,
			RootFilePath: failure.RootFilePath,
			BuildProfile: failure.BuildProfile,
		}
	}
	results := outcome.Results
	if results == nil {
		results = NewBuildResults()
	}
	for _, sourcePath := range results.SourcePaths() {
		if result, _ := results.Get(sourcePath); result.Kind == BuildFailed {
			return nil, ErrBuildFailed
		}
	}
	return results, nil
}
