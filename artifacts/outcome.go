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

// Package artifacts validates one compiler run's per-file outcomes and
// materializes the artifacts the rest of the toolchain consumes.
package artifacts

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ResultKind tags the per-file outcome of one compilation run.
type ResultKind uint8

const (
	CacheHit ResultKind = iota
	BuildSuccess
	BuildFailed
)

func (k ResultKind) String() string {
	switch k {
	case CacheHit:
		return "cache-hit"
	case BuildSuccess:
		return "build-success"
	case BuildFailed:
		return "build-failed"
	}
	return "invalid"
}

var resultKindsByName = map[string]ResultKind{
	"cache-hit":     CacheHit,
	"build-success": BuildSuccess,
	"build-failed":  BuildFailed,
}

// FileResult is the outcome for one source file. BuildID and
// ArtifactPaths are only populated for BuildSuccess.
type FileResult struct {
	Kind          ResultKind
	BuildID       string
	ArtifactPaths []string
}

// JobCreationFailure means the compiler could not even produce a job for
// the run; there are no per-file results in that case.
type JobCreationFailure struct {
	Reason       string `json:"reason"`
	RootFilePath string `json:"rootFilePath"`
	BuildProfile string `json:"buildProfile"`
}

// BuildResults maps source file paths to their results while keeping
// insertion order, since Go map iteration is not deterministic and
// downstream consumers rely on a stable order.
type BuildResults struct {
	paths  []string
	byPath map[string]FileResult
}

func NewBuildResults() *BuildResults {
	return &BuildResults{byPath: make(map[string]FileResult)}
}

// Set records the result for sourcePath. Re-setting a path keeps its
// original position.
func (r *BuildResults) Set(sourcePath string, result FileResult) {
	if _, seen := r.byPath[sourcePath]; !seen {
		r.paths = append(r.paths, sourcePath)
	}
	r.byPath[sourcePath] = result
}

func (r *BuildResults) Get(sourcePath string) (FileResult, bool) {
	result, ok := r.byPath[sourcePath]
	return result, ok
}

func (r *BuildResults) Len() int {
	return len(r.paths)
}

// SourcePaths returns the paths in insertion order. The slice is a copy.
func (r *BuildResults) SourcePaths() []string {
	paths := make([]string, len(r.paths))
	copy(paths, r.paths)
	return paths
}

// BuildOutcome is the whole-run result: either a job-creation failure or
// per-file results, never both.
type BuildOutcome struct {
	JobFailure *JobCreationFailure
	Results    *BuildResults
}

type buildReportEntry struct {
	SourcePath    string   `json:"sourcePath"`
	Result        string   `json:"result"`
	BuildID       string   `json:"buildId,omitempty"`
	ArtifactPaths []string `json:"artifactPaths,omitempty"`
}

type buildReport struct {
	JobFailure *JobCreationFailure `json:"jobFailure,omitempty"`
	Results    []buildReportEntry  `json:"results,omitempty"`
}

// ParseBuildReport decodes the compiler's JSON build report into a
// BuildOutcome, preserving the order the compiler reported the files in.
func ParseBuildReport(data []byte) (BuildOutcome, error) {
	var report buildReport
	if err := json.Unmarshal(data, &report); err != nil {
		return BuildOutcome{}, fmt.Errorf("decode build report: %w", err)
	}
	if report.JobFailure != nil {
		return BuildOutcome{JobFailure: report.JobFailure}, nil
	}
	results := NewBuildResults()
	for _, entry := range report.Results {
		kind, ok := resultKindsByName[entry.Result]
		if !ok {
			return BuildOutcome{}, fmt.Errorf("build report entry %s: unknown result %q", entry.SourcePath, entry.Result)
		}
		results.Set(entry.SourcePath, FileResult{
			Kind:          kind,
			BuildID:       entry.BuildID,
			ArtifactPaths: entry.ArtifactPaths,
		})
	}
	return BuildOutcome{Results: results}, nil
}
