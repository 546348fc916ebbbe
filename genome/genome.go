package genome

import (
	"fmt"

	"github.com/katalvlaran/topogenome/basis"
	"github.com/katalvlaran/topogenome/candidates"
	"github.com/katalvlaran/topogenome/genkey"
	"github.com/katalvlaran/topogenome/netgraph"
	"github.com/katalvlaran/topogenome/partition"
	"github.com/katalvlaran/topogenome/symmetry"
	"github.com/katalvlaran/topogenome/translate"
)

// Genome computes the canonical genome string of net.
//
// Stage 1 (Validate): reject structurally invalid or unstable input.
// Stage 2 (Prepare): minimize (if cfg.Minimize), partition vertices by
// coordination sequence, detect point symmetries restricted to that
// partition, then re-partition refined by the detected symmetry orbits.
// Stage 3 (Execute): enumerate candidates and run CandidateKey over
// each, keeping the running best edge list.
// Stage 4 (Finalize): find the rewriting basis and serialise.
func Genome(net *netgraph.CrystalNet, cfg Config) (string, error) {
	if err := net.Validate(); err != nil {
		return "", fmt.Errorf("genome: Genome: %w: %w", ErrInvalidInput, err)
	}
	if !net.AllUnique() {
		return "", fmt.Errorf("genome: Genome: %w", ErrUnstableNet)
	}
	for _, p := range net.Pos {
		if err := p.CheckWidth(cfg.Limits); err != nil {
			return "", fmt.Errorf("genome: Genome: %w: %w", ErrInvalidInput, err)
		}
	}

	if cfg.Minimize {
		reduced, err := translate.Minimize(net, nil)
		if err != nil {
			return "", fmt.Errorf("genome: Genome: %w", err)
		}
		net = reduced
	}

	if cfg.SeqDepth > 0 {
		prevDepth := partition.Depth
		partition.Depth = cfg.SeqDepth
		defer func() { partition.Depth = prevDepth }()
	}

	_, classOf0, _, err := partition.ByCoordinationSequence(net.Graph, nil)
	if err != nil {
		return "", fmt.Errorf("genome: Genome: %w", err)
	}
	syms := symmetry.Find(net, classOf0)
	classes, classOf, _, err := partition.ByCoordinationSequence(net.Graph, syms.Perms)
	if err != nil {
		return "", fmt.Errorf("genome: Genome: %w", err)
	}

	cands := candidates.Enumerate(net, classes, classOf, syms)
	if len(cands) == 0 {
		if dimErr := net.CheckDimensionality(); dimErr != nil {
			return "", fmt.Errorf("genome: Genome: %w", dimErr)
		}
		return "", fmt.Errorf("genome: Genome: %w", ErrInternal)
	}

	var best genkey.EdgeKey
	for _, c := range cands {
		_, edges, improved, err := genkey.Key(net, c.U, c.B, best)
		if err != nil {
			return "", fmt.Errorf("genome: Genome: %w", err)
		}
		if improved {
			best = edges
		}
	}
	if best == nil {
		return "", fmt.Errorf("genome: Genome: %w", ErrInternal)
	}

	rewritten, _, err := basis.Find(best)
	if err != nil {
		return "", fmt.Errorf("genome: Genome: %w", err)
	}

	return Serialize(rewritten), nil
}
