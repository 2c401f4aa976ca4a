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
	"bytes"
	"context"
	stdjson "encoding/json"
	"fmt"
	"path"

	"github.com/erigontech/erigon-lib/log/v3"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

const buildInfoDir = "build-info"

// defaultWorkers bounds concurrent artifact reads. The reads are small
// and independent, so a modest fan-out is enough.
const defaultWorkers = 16

// ArtifactID identifies one compiled contract.
type ArtifactID struct {
	Name            string
	CompilerVersion string
	SourcePath      string
}

// ContractArtifact is the compiled output for one contract. ABI is the
// artifact's abi document re-serialized as a JSON string; the bytecode
// fields are 0x-hex as emitted by the compiler.
type ContractArtifact struct {
	ABI              string
	Bytecode         string
	DeployedBytecode string
}

// Artifact joins one generated artifact file with its build metadata.
// Records are immutable once aggregated.
type Artifact struct {
	ID       ArtifactID
	Contract ContractArtifact
}

type artifactFile struct {
	ContractName     string              `json:"contractName"`
	ABI              jsoniter.RawMessage `json:"abi"`
	Bytecode         string              `json:"bytecode"`
	DeployedBytecode string              `json:"deployedBytecode"`
}

type buildInfoFile struct {
	SolcVersion string `json:"solcVersion"`
}

// Aggregator loads generated artifacts and their build metadata through
// an injected filesystem, so tests run against an in-memory one.
type Aggregator struct {
	fs      afero.Fs
	logger  log.Logger
	workers int
}

func NewAggregator(fs afero.Fs, logger log.Logger) *Aggregator {
	return &Aggregator{fs: fs, logger: logger, workers: defaultWorkers}
}

// Aggregate materializes one Artifact per generated-artifact path in the
// validated results. Reads fan out concurrently but the output order
// always matches the input order: results in insertion order, artifact
// paths in the order the compiler reported them. Each distinct buildId's
// metadata is read once. Any read or decode failure fails the whole
// call.
func (a *Aggregator) Aggregate(ctx context.Context, results *BuildResults, artifactsRoot string) ([]Artifact, error) {
	type job struct {
		sourcePath   string
		buildID      string
		artifactPath string
	}
	var jobs []job
	var buildIDs []string
	seenBuildIDs := make(map[string]struct{})
	for _, sourcePath := range results.SourcePaths() {
		result, _ := results.Get(sourcePath)
		if result.Kind != BuildSuccess {
			continue
		}
		if result.BuildID == "" {
			return nil, fmt.Errorf("build result for %s has no build id", sourcePath)
		}
		if _, seen := seenBuildIDs[result.BuildID]; !seen {
			seenBuildIDs[result.BuildID] = struct{}{}
			buildIDs = append(buildIDs, result.BuildID)
		}
		for _, artifactPath := range result.ArtifactPaths {
			jobs = append(jobs, job{
				sourcePath:   sourcePath,
				buildID:      result.BuildID,
				artifactPath: artifactPath,
			})
		}
	}

	buildInfos := make([]buildInfoFile, len(buildIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, buildID := range buildIDs {
		i, buildID := i, buildID
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			infoPath := path.Join(artifactsRoot, buildInfoDir, buildID+".json")
			data, err := afero.ReadFile(a.fs, infoPath)
			if err != nil {
				return fmt.Errorf("read build info %s: %w", infoPath, err)
			}
			if err := json.Unmarshal(data, &buildInfos[i]); err != nil {
				return fmt.Errorf("decode build info %s: %w", infoPath, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	infoByBuildID := make(map[string]buildInfoFile, len(buildIDs))
	for i, buildID := range buildIDs {
		infoByBuildID[buildID] = buildInfos[i]
	}

	aggregated := make([]Artifact, len(jobs))
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, jb := range jobs {
		i, jb := i, jb
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			data, err := afero.ReadFile(a.fs, jb.artifactPath)
			if err != nil {
				return fmt.Errorf("read artifact %s: %w", jb.artifactPath, err)
			}
			var file artifactFile
			if err := json.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("decode artifact %s: %w", jb.artifactPath, err)
			}
			// Re-serialize the abi compactly: the artifact file may be
			// pretty-printed, the record must not depend on that.
			var abiJSON bytes.Buffer
			if err := stdjson.Compact(&abiJSON, file.ABI); err != nil {
				return fmt.Errorf("compact abi in %s: %w", jb.artifactPath, err)
			}
			aggregated[i] = Artifact{
				ID: ArtifactID{
					Name:            file.ContractName,
					CompilerVersion: infoByBuildID[jb.buildID].SolcVersion,
					SourcePath:      jb.sourcePath,
				},
				Contract: ContractArtifact{
					ABI:              abiJSON.String(),
					Bytecode:         file.Bytecode,
					DeployedBytecode: file.DeployedBytecode,
				},
			}
			a.logger.Debug("aggregated artifact", "contract", file.ContractName, "source", jb.sourcePath, "buildId", jb.buildID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return aggregated, nil
}
