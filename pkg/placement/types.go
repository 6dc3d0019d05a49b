// Package placement orchestrates the placement scheduler: it wires a
// Topology, cost Engine, and LNET/OST Layout into whichever strategy the
// caller picked, and normalizes the result into a persistable contract.
// Grounded on the teacher's pkg/bootstrap.run (injectable-dependency
// orchestration) and pkg/config.BootstrapResult (validated result contract).
package placement

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nersc/fgr/pkg/strategy"
)

// RankResult is the persisted form of one scheduled rank.
type RankResult struct {
	Client int32 `json:"client" yaml:"client"`
	Router int32 `json:"router" yaml:"router"`
	LNET   int   `json:"lnet,omitempty" yaml:"lnet,omitempty"`
	OST    int   `json:"ost,omitempty" yaml:"ost,omitempty"`
	Cost   int   `json:"cost,omitempty" yaml:"cost,omitempty"`
}

// Result is the normalized output contract of a completed placement run.
type Result struct {
	RunID               string       `json:"run_id" yaml:"run_id"`
	Strategy             string       `json:"strategy" yaml:"strategy"`
	Partition            string       `json:"partition" yaml:"partition"`
	NumRanks             int          `json:"num_ranks" yaml:"num_ranks"`
	TopologyFingerprint  string       `json:"topology_fingerprint,omitempty" yaml:"topology_fingerprint,omitempty"`
	Ranks                []RankResult `json:"ranks" yaml:"ranks"`
}

// Validate checks the minimum contract a consumer of Result can rely on.
func (r Result) Validate() error {
	if strings.TrimSpace(r.RunID) == "" {
		return fmt.Errorf("placement result: run_id is required")
	}
	if r.NumRanks != len(r.Ranks) {
		return fmt.Errorf("placement result: num_ranks %d does not match %d ranks", r.NumRanks, len(r.Ranks))
	}
	seen := make(map[int32]struct{}, len(r.Ranks))
	for _, rk := range r.Ranks {
		if _, dup := seen[rk.Client]; dup {
			return fmt.Errorf("placement result: client %d selected twice", rk.Client)
		}
		seen[rk.Client] = struct{}{}
	}
	return nil
}

// Save writes r as YAML or JSON depending on path's extension.
func (r Result) Save(path string) error {
	if err := r.Validate(); err != nil {
		return err
	}
	var content []byte
	var err error
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		content, err = json.MarshalIndent(r, "", "  ")
	} else {
		content, err = yaml.Marshal(r)
	}
	if err != nil {
		return fmt.Errorf("placement result: marshal: %w", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("placement result: write %s: %w", path, err)
	}
	return nil
}

// LoadResult reads a Result from YAML or JSON.
func LoadResult(path string) (Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("placement result: read %s: %w", path, err)
	}
	var out Result
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(content, &out)
	} else {
		err = yaml.Unmarshal(content, &out)
	}
	if err != nil {
		return Result{}, fmt.Errorf("placement result: parse %s: %w", path, err)
	}
	return out, nil
}

// fromRanks converts strategy ranks into the persisted RankResult form.
func fromRanks(ranks []strategy.Rank) []RankResult {
	out := make([]RankResult, len(ranks))
	for i, r := range ranks {
		out[i] = RankResult{Client: r.Client, Router: r.Router, LNET: r.LNET, OST: r.OST, Cost: r.Cost}
	}
	return out
}
