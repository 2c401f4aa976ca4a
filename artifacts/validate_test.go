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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateSuccessfulOutcome(t *testing.T) {
	results := NewBuildResults()
	results.Set("contracts/A.sol", FileResult{Kind: CacheHit})
	results.Set("contracts/B.sol", FileResult{Kind: BuildSuccess, BuildID: "b1", ArtifactPaths: []string{"artifacts/B.json"}})

	validated, err := Validate(BuildOutcome{Results: results})
	require.NoError(t, err)
	require.Equal(t, []string{"contracts/A.sol", "contracts/B.sol"}, validated.SourcePaths())
	for _, sourcePath := range validated.SourcePaths() {
		result, ok := validated.Get(sourcePath)
		require.True(t, ok)
		require.NotEqual(t, BuildFailed, result.Kind)
	}
}

func TestValidateFailsOnAnyBuildFailure(t *testing.T) {
	results := NewBuildResults()
	results.Set("contracts/A.sol", FileResult{Kind: BuildSuccess, BuildID: "b1"})
	results.Set("contracts/B.sol", FileResult{Kind: BuildFailed})
	results.Set("contracts/C.sol", FileResult{Kind: CacheHit})

	_, err := Validate(BuildOutcome{Results: results})
	require.ErrorIs(t, err, ErrBuildFailed)
}

func TestValidateJobCreationFailure(t *testing.T) {
	outcome := BuildOutcome{JobFailure: &JobCreationFailure{
		Reason:       "incompatible solc version",
		RootFilePath: "contracts/A.sol",
		BuildProfile: "production",
	}}

	_, err := Validate(outcome)
	var jobErr *CompilationJobCreationError
	require.ErrorAs(t, err, &jobErr)
	require.Equal(t, "incompatible solc version", jobErr.Reason)
	require.Equal(t, "contracts/A.sol", jobErr.RootFilePath)
	require.Equal(t, "production", jobErr.BuildProfile)
}

func TestValidateDoesNotMutateOutcome(t *testing.T) {
	results := NewBuildResults()
	results.Set("contracts/A.sol", FileResult{Kind: BuildSuccess, BuildID: "b1"})
	outcome := BuildOutcome{Results: results}

	validated, err := Validate(outcome)
	require.NoError(t, err)
	require.Same(t, results, validated)
	result, _ := results.Get("contracts/A.sol")
	require.Equal(t, BuildSuccess, result.Kind)
	require.Equal(t, "b1", result.BuildID)
}

func TestParseBuildReport(t *testing.T) {
	report := `{
		"results": [
			{"sourcePath": "contracts/A.sol", "result": "build-success", "buildId": "b1", "artifactPaths": ["artifacts/A.json"]},
			{"sourcePath": "contracts/B.sol", "result": "cache-hit"}
		]
	}`
	outcome, err := ParseBuildReport([]byte(report))
	require.NoError(t, err)
	require.Nil(t, outcome.JobFailure)
	require.Equal(t, []string{"contracts/A.sol", "contracts/B.sol"}, outcome.Results.SourcePaths())

	result, ok := outcome.Results.Get("contracts/A.sol")
	require.True(t, ok)
	require.Equal(t, BuildSuccess, result.Kind)
	require.Equal(t, []string{"artifacts/A.json"}, result.ArtifactPaths)
}

func TestParseBuildReportJobFailure(t *testing.T) {
	report := `{"jobFailure": {"reason": "r", "rootFilePath": "f", "buildProfile": "p"}}`
	outcome, err := ParseBuildReport([]byte(report))
	require.NoError(t, err)
	require.NotNil(t, outcome.JobFailure)
	require.Equal(t, "r", outcome.JobFailure.Reason)
}

func TestParseBuildReportUnknownResult(t *testing.T) {
	_, err := ParseBuildReport([]byte(`{"results": [{"sourcePath": "a.sol", "result": "exploded"}]}`))
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrBuildFailed))
}
