package community

import (
	"math"

	"github.com/altsoph/community-loglike/pkg/graph"
)

// Params bundles the optional overrides EstimateGamma and
// ModelLogLikelihood accept: fixedPin/fixedPout substitute an
// empirical estimate with a caller-supplied value.
type Params struct {
	FixedPin, FixedPout *float64
}

// EstimateGamma fits the resolution parameter of a ppm or dcppm
// objective to the partition currently described by g and partition,
// by matching the model's internal/external edge-density ratio. model
// must be "ppm" or "dcppm"; any other value returns ErrUnknownModel.
func EstimateGamma(g *graph.Graph, partition Partition, model string, pars *Params) (float64, error) {
	st, err := NewStatusWithPartition(g, partition)
	if err != nil {
		return 0, err
	}

	switch model {
	case "dcppm":
		pin, pout, _, _, _ := getPinPout(st)
		pin = math.Max(pin, minProbability)
		pout = math.Max(pout, minProbability)
		return (pin - pout) / (math.Log(pin) - math.Log(pout)), nil
	case "ppm":
		a := getEs(st)
		_, p2in := sumDC2P2in(st)
		n := float64(len(st.RawNode2Node))
		p2 := n * (n - 1) / 2
		p2out := p2 - p2in
		p2in = math.Max(p2in, minProbability)
		p2out = math.Max(p2out, minProbability)
		pin := a.Ein / p2in
		pout := a.Eout / p2out
		if pars != nil && pars.FixedPin != nil {
			pin = *pars.FixedPin
		}
		if pars != nil && pars.FixedPout != nil {
			pout = *pars.FixedPout
		}
		if pin == 0 {
			pin = minProbability
		}
		if pout == 0 {
			pout = minProbability
		}
		return p2 * (pin - pout) / (a.E * (math.Log(pin) - math.Log(pout))), nil
	default:
		return 0, ErrUnknownModel
	}
}

// EstimateMu returns a mixing parameter for ilfr or ilfrs: the
// weighted fraction of total edge weight that crosses community
// boundaries under the partition described by g and partition. If opt
// is non-nil, that closed-form estimate is used only as the starting
// point x0 for opt.Refine, which searches IlfrMuLogLikelihood over
// [minProbability, 1-minProbability] for a better mu; opt may be nil,
// in which case the closed-form estimate is returned directly.
func EstimateMu(g *graph.Graph, partition Partition, opt Optimizer) (float64, error) {
	st, err := NewStatusWithPartition(g, partition)
	if err != nil {
		return 0, err
	}
	a := getEs(st)
	if a.E == 0 {
		return 0, ErrZeroEdges
	}
	estimate := a.Eout / a.E

	if opt == nil {
		return estimate, nil
	}
	f := func(mu float64) float64 {
		value, err := IlfrMuLogLikelihood(g, partition, &mu)
		if err != nil {
			return math.Inf(-1)
		}
		return value
	}
	return opt.Refine(f, estimate, minProbability, 1-minProbability), nil
}

// IlfrMuLogLikelihood scores the ilfr objective's mixture term for a
// candidate mu against the partition described by g and partition,
// omitting the mu-independent constant (DLD - E - Eout*log(2E)) that
// ModelLogLikelihood(..., "ilfr", ...) adds back in. Useful as the
// objective handed to an external numerical optimizer refining mu; if
// currentMu is nil it defaults to EstimateMu's weighted cross-edge
// fraction.
func IlfrMuLogLikelihood(g *graph.Graph, partition Partition, currentMu *float64) (float64, error) {
	st, err := NewStatusWithPartition(g, partition)
	if err != nil {
		return 0, err
	}
	a := getEs(st)

	mu := 0.0
	if currentMu != nil {
		mu = *currentMu
	} else if a.E > 0 {
		mu = a.Eout / a.E
	}
	mu = clamp01(mu)

	result := a.Eout * math.Log(mu)
	for _, c := range communityLabels(st) {
		degree := st.Degrees[c]
		if degree <= 0 {
			continue
		}
		inDegree := 2 * st.Internals[c]
		result += inDegree * math.Log((1-mu)/degree+mu/(2*a.E)) / 2
	}
	return result, nil
}

// ModelLogLikelihood computes the richer, publicly comparable
// log-likelihood of partition under model, distinct from the fast
// internal value an optimization sweep uses. For "ilfr"/"ilfrs" it
// defers to the model's Value using pars["mu"] if present, otherwise
// EstimateMu's weighted default.
func ModelLogLikelihood(g *graph.Graph, partition Partition, model string, pars map[string]float64) (float64, error) {
	st, err := NewStatusWithPartition(g, partition)
	if err != nil {
		return 0, err
	}

	switch model {
	case "dcppm":
		pin, pout, a, _, _ := getPinPout(st)
		d := dld(st)
		pin = math.Max(pin, minProbability)
		pout = math.Max(pout, minProbability)
		result := a.Ein * (math.Log(pin) - math.Log(pout))
		result -= (pin - pout) * a.DegreesSquared / (4 * a.E)
		result += d
		result += a.E * math.Log(pout)
		result -= a.E * pout
		result -= a.E * math.Log(2*a.E)
		return result, nil

	case "ilfr", "ilfrs":
		obj, err := LookupObjective(model)
		if err != nil {
			return 0, err
		}
		mu, ok := pars["mu"]
		if !ok {
			mu, err = EstimateMu(g, partition, nil)
			if err != nil {
				return 0, err
			}
		}
		return obj.Value(st, mu), nil

	case "ppm":
		a := getEs(st)
		_, p2in := sumDC2P2in(st)
		n := float64(len(st.RawNode2Node))
		p2 := n * (n - 1) / 2
		p2out := p2 - p2in
		p2in = math.Max(p2in, minProbability)
		p2out = math.Max(p2out, minProbability)
		pin := a.Ein / p2in
		pout := a.Eout / p2out

		extMod := -a.Eout - a.Ein
		if pars != nil {
			if fp, ok := pars["fixedPin"]; ok {
				pin = fp
				extMod += a.Ein - p2in*fp
			}
			if fp, ok := pars["fixedPout"]; ok {
				pout = fp
				extMod += a.Eout - p2out*fp
			}
		}
		if a.Ein > 0 {
			extMod += a.Ein * math.Log(pin)
		}
		if a.Eout > 0 {
			extMod += a.Eout * math.Log(pout)
		}
		return extMod, nil

	default:
		return 0, ErrUnknownModel
	}
}

// Modularity computes classic degree-corrected modularity (the dcppm
// objective's Value) for partition over g with resolution gamma,
// independent of any Status bookkeeping the caller may already hold.
func Modularity(g *graph.Graph, partition Partition, gamma float64) (float64, error) {
	if g.TotalWeight() == 0 {
		return 0, ErrZeroEdges
	}
	st, err := NewStatusWithPartition(g, partition)
	if err != nil {
		return 0, err
	}
	return DCPPM{}.Value(st, gamma), nil
}
