package validate

import (
	"runtime"

	"github.com/pimmuno/protectconf/configtree"
)

// aligner tool sections that receive a derived thread budget.
var threadedTools = [][2]string{
	{"alignment", "star"},
	{"alignment", "bwa"},
	{"haplotyping", "phlat"},
	{"expression_estimation", "rsem"},
}

// Finalize stamps derived values into a resolved configuration and returns
// a new tree; the input is not modified.
//
//   - Universal_Options.max_cores defaults to the executing host's CPU
//     count when unset, and is capped by maxCoresPerJob when that is
//     positive.
//   - The thread budget n for star, bwa, phlat, and rsem is derived from
//     max_cores wherever those tool sections exist and set no explicit n.
func Finalize(tree *configtree.Tree, maxCoresPerJob int) *configtree.Tree {
	out := tree.Clone()

	uo, ok := out.Subtree("Universal_Options")
	if !ok {
		if _, present := out.Get("Universal_Options"); present {
			// malformed section; Check reports it, nothing to derive here
			return out
		}
		uo = configtree.NewTree()
		out.Set("Universal_Options", uo)
	}

	cores := 0
	if s, ok := uo.Scalar("max_cores"); ok {
		if n, isInt := s.IntVal(); isInt && n > 0 {
			cores = int(n)
		}
	}
	if cores == 0 {
		cores = runtime.NumCPU()
	}
	if maxCoresPerJob > 0 && cores > maxCoresPerJob {
		cores = maxCoresPerJob
	}
	uo.Set("max_cores", configtree.Int(int64(cores)))

	share := int64(cpuShare(cores))
	for _, loc := range threadedTools {
		tool, ok := out.Subtree(loc[0], loc[1])
		if !ok {
			continue
		}
		if v, exists := tool.Get("n"); exists {
			s, isScalar := v.(configtree.Scalar)
			if !isScalar || !s.IsNull() {
				continue
			}
		}
		tool.Set("n", configtree.Int(share))
	}
	return out
}

// cpuShare is the thread budget granted to each heavyweight aligner: half
// the available cores, with a floor of min(cores, 6).
func cpuShare(cores int) int {
	floor := 6
	if cores < floor {
		floor = cores
	}
	if half := cores / 2; half > floor {
		return half
	}
	return floor
}
