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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func suiteArtifact(name, sourcePath string) Artifact {
	return Artifact{ID: ArtifactID{Name: name, CompilerVersion: "0.8.24", SourcePath: sourcePath}}
}

func TestSelectTestSuiteIDs(t *testing.T) {
	projectRoot := filepath.Join("/", "work", "project")
	aggregated := []Artifact{
		suiteArtifact("A", "a.t.sol"),
		suiteArtifact("B", "b.sol"),
	}
	candidates := []string{
		filepath.Join(projectRoot, "a.t.sol"),
		filepath.Join(projectRoot, "b.sol"),
	}

	ids, err := SelectTestSuiteIDs(aggregated, candidates, projectRoot)
	require.NoError(t, err)
	require.Equal(t, []ArtifactID{{Name: "A", CompilerVersion: "0.8.24", SourcePath: "a.t.sol"}}, ids)
}

func TestSelectTestSuiteIDsOrderFollowsArtifacts(t *testing.T) {
	projectRoot := filepath.Join("/", "work", "project")
	aggregated := []Artifact{
		suiteArtifact("Z", filepath.Join("test", "z.t.sol")),
		suiteArtifact("A", filepath.Join("test", "a.t.sol")),
	}
	// Candidates deliberately in the opposite order.
	candidates := []string{
		filepath.Join(projectRoot, "test", "a.t.sol"),
		filepath.Join(projectRoot, "test", "z.t.sol"),
	}

	ids, err := SelectTestSuiteIDs(aggregated, candidates, projectRoot)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	require.Equal(t, "Z", ids[0].Name)
	require.Equal(t, "A", ids[1].Name)
}

func TestSelectTestSuiteIDsIgnoresNonTestCandidates(t *testing.T) {
	projectRoot := filepath.Join("/", "work", "project")
	aggregated := []Artifact{suiteArtifact("B", "b.sol")}
	candidates := []string{filepath.Join(projectRoot, "b.sol")}

	ids, err := SelectTestSuiteIDs(aggregated, candidates, projectRoot)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestSelectTestSuiteIDsNoCandidates(t *testing.T) {
	aggregated := []Artifact{suiteArtifact("A", "a.t.sol")}
	ids, err := SelectTestSuiteIDs(aggregated, nil, filepath.Join("/", "work"))
	require.NoError(t, err)
	require.Empty(t, ids)
}
