package community

import "math"

// minProbability floors and caps probability-like parameters (gamma,
// mu) away from 0 and 1 so that log() never sees a non-positive
// argument. Matches the reference implementation's epsilon.
const minProbability = 0.0000001

// PassMax bounds the number of local-move sweeps a single call to
// OneLevel performs before giving up even if vertices are still
// moving. A negative value (the default) means unbounded — sweeps
// stop only once a pass produces no move or the objective's gain
// falls below minGain.
const PassMax = -1

// minGain is the minimum per-pass improvement in the objective value
// below which OneLevel stops sweeping, even if PassMax has not been
// reached.
const minGain = 0.0000001

// Objective is one of the four pluggable community-quality functions
// (ppm, dcppm, ilfr, ilfrs). RemoveCost and AddCost are the two halves
// of the local-move gain test: OneLevel always evaluates
// RemoveCost(v's current community) once, then AddCost(c) for every
// candidate neighboring community c, and moves v into whichever
// candidate (including staying put) maximizes RemoveCost+AddCost.
type Objective interface {
	// Name is the model identifier used in the CLI and in pars maps
	// ("ppm", "dcppm", "ilfr", "ilfrs").
	Name() string

	// ParamKey names the entry of a pars map this model reads its
	// scalar parameter from ("gamma" for ppm/dcppm, "mu" for ilfr/ilfrs).
	ParamKey() string

	// RemoveCost returns the cost of pulling v out of its current
	// community com, evaluated against st *before* the removal is
	// applied. vInDegree is the weight from v to com (excluding v's
	// self-loop), as returned by Status.NeighborCommunities.
	RemoveCost(st *Status, pc *PassConstants, v, com string, vInDegree float64) float64

	// AddCost returns the cost of inserting v into candidate community
	// com, evaluated against st *after* v has been removed from its
	// previous community. dnc is the weight from v to com (excluding
	// v's self-loop).
	AddCost(st *Status, pc *PassConstants, v, com string, dnc float64) float64

	// Value computes the model's fast internal objective value for the
	// whole current partition captured by st, given parameter par.
	Value(st *Status, par float64) float64
}

// PassConstants are the per-sweep scalars every Objective's
// RemoveCost/AddCost is evaluated against: the graph's total
// weight and vertex count, and logarithms derived from the model's
// parameter, all of which are fixed for the duration of one OneLevel
// call and recomputed only when the parameter or graph changes.
type PassConstants struct {
	Par, MPar      float64
	E, TwoE        float64
	P2             float64
	L2E            float64 // log(2E)
	L2EPar         float64 // log(2E*(1-par)/par), ilfrs add-cost term
	L2EPar2        float64 // log(par/(1-par)) - log(2E), ilfrs remove-cost term
	LPar           float64 // log(par)
	L2EPar3        float64 // log(par) - log(2E), ilfr remove-cost term
	ParTwoE        float64 // par/2E
}

// NewPassConstants precomputes PassConstants for one OneLevel call
// over st using parameter par.
func NewPassConstants(st *Status, par float64) *PassConstants {
	pc := &PassConstants{
		Par:  par,
		MPar: 1 - par,
		E:    st.TotalWeight,
	}
	pc.TwoE = 2 * pc.E
	n := float64(len(st.RawNode2Node))
	pc.P2 = n * (n - 1) / 2

	if pc.E > 0 {
		pc.L2E = math.Log(pc.TwoE)
		if pc.MPar > 0 {
			pc.L2EPar = math.Log(pc.TwoE * pc.MPar / pc.Par)
		}
	}
	if pc.MPar > 0 {
		pc.L2EPar2 = math.Log(pc.Par/pc.MPar) - pc.L2E
	}
	pc.LPar = math.Log(pc.Par)
	pc.L2EPar3 = pc.LPar - pc.L2E
	pc.ParTwoE = pc.Par / pc.TwoE
	return pc
}

// Objectives maps a model name to its Objective implementation.
var Objectives = map[string]Objective{
	"ppm":   PPM{},
	"dcppm": DCPPM{},
	"ilfr":  ILFR{},
	"ilfrs": ILFRS{},
}

// LookupObjective returns the Objective registered under name, or
// ErrUnknownModel if none matches.
func LookupObjective(name string) (Objective, error) {
	obj, ok := Objectives[name]
	if !ok {
		return nil, ErrUnknownModel
	}
	return obj, nil
}

// SafePar extracts and clamps obj's scalar parameter from pars,
// defaulting to 1-minProbability when pars is nil or empty — the same
// default the reference implementation falls back to (Python's
// `if not pars:` is true for both None and {}). A non-empty pars that
// lacks the key reads as 1 before clamping, which gives
// 1-minProbability for mu and 1 for gamma.
func SafePar(obj Objective, pars map[string]float64) float64 {
	if len(pars) == 0 {
		return 1 - minProbability
	}
	v, ok := pars[obj.ParamKey()]
	if !ok {
		v = 1
	}
	switch obj.ParamKey() {
	case "mu":
		return clamp01(v)
	default: // gamma
		return math.Max(v, minProbability)
	}
}

func clamp01(v float64) float64 {
	if v < minProbability {
		return minProbability
	}
	if v > 1-minProbability {
		return 1 - minProbability
	}
	return v
}

// communityLabels returns the distinct community labels currently
// assigned in st, ignoring the transient removal sentinel.
func communityLabels(st *Status) []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range st.Node2Com {
		if c == sentinelCommunity || seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, c)
	}
	return out
}

// aggregates mirrors the reference implementation's __get_es: total
// weight E, internal weight Ein, external weight Eout, and the sum of
// squared community degrees, aggregated over the distinct communities
// of st.
type aggregates struct {
	E, Ein, Eout, DegreesSquared float64
}

func getEs(st *Status) aggregates {
	a := aggregates{E: st.TotalWeight}
	for _, c := range communityLabels(st) {
		a.Ein += st.Internals[c]
		d := st.Degrees[c]
		a.DegreesSquared += d * d
	}
	a.Eout = a.E - a.Ein
	return a
}

// dld is the sum, over every original-graph vertex with positive
// unweighted degree d, of d*log(d) — the raw-degree entropy term the
// ILFR and ILFRS objectives add to their log-likelihood value. It depends only on the original graph, so it is invariant
// across levels of a dendrogram.
func dld(st *Status) float64 {
	sum := 0.0
	for _, d := range st.RawNode2Degree {
		if d > 0 {
			sum += d * math.Log(d)
		}
	}
	return sum
}

// sumDC2P2in mirrors __get_SUMDC2_P2in: SUMDC2 is the sum of squared
// per-community raw-degree totals, and P2in is the number of
// original-vertex pairs that currently share a community.
func sumDC2P2in(st *Status) (sumDC2, p2in float64) {
	dc := make(map[string]float64)
	vc := make(map[string]float64)
	for n, mn := range st.RawNode2Node {
		com := st.Node2Com[mn]
		dc[com] += st.RawNode2Degree[n]
		vc[com]++
	}
	for c, d := range dc {
		sumDC2 += d * d
		v := vc[c]
		p2in += v * (v - 1) / 2
	}
	return sumDC2, p2in
}

// getPinPout mirrors __get_pin_pout: degree-corrected internal/external
// edge probabilities estimated from the current partition.
func getPinPout(st *Status) (pin, pout float64, a aggregates, sumDC2, p2in float64) {
	a = getEs(st)
	sumDC2, p2in = sumDC2P2in(st)
	pin = 4 * a.Ein * a.E / sumDC2
	if a.Eout == 0 {
		pout = minProbability
	} else {
		pout = 4 * a.Eout * a.E / (4*a.E*a.E - sumDC2)
	}
	return pin, pout, a, sumDC2, p2in
}
