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
	"fmt"
	"path/filepath"
	"strings"
)

// TestFileSuffix marks Solidity test-suite source files.
const TestFileSuffix = ".t.sol"

// SelectTestSuiteIDs returns the ids of the artifacts whose source is one
// of the candidate root paths that follow the test-file naming
// convention. Candidates are absolute; artifact source paths are relative
// to projectRoot. Output order follows the artifacts, not the candidates.
func SelectTestSuiteIDs(aggregated []Artifact, candidateRootPaths []string, projectRoot string) ([]ArtifactID, error) {
	testSources := make(map[string]struct{}, len(candidateRootPaths))
	for _, candidate := range candidateRootPaths {
		if !strings.HasSuffix(candidate, TestFileSuffix) {
			continue
		}
		relative, err := filepath.Rel(projectRoot, candidate)
		if err != nil {
			return nil, fmt.Errorf("relativize %s against %s: %w", candidate, projectRoot, err)
		}
		testSources[filepath.ToSlash(relative)] = struct{}{}
	}
	var ids []ArtifactID
	for _, artifact := range aggregated {
		if _, ok := testSources[filepath.ToSlash(artifact.ID.SourcePath)]; ok {
			ids = append(ids, artifact.ID)
		}
	}
	return ids, nil
}
