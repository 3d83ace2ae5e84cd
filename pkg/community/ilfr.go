package community

import "math"

// ILFR is the independent-LFR objective: a full mixture-null
// log-likelihood over both the degree-preserving configuration model
// and a uniform-mixing term weighted by mu, the expected fraction of
// a vertex's degree spent on inter-community edges.
type ILFR struct{}

func (ILFR) Name() string     { return "ilfr" }
func (ILFR) ParamKey() string { return "mu" }

func (ILFR) RemoveCost(st *Status, pc *PassConstants, v, com string, vInDegree float64) float64 {
	comDegree := st.Degrees[com]
	vDegree := st.GDegrees[v]
	comInDegree := st.Internals[com]
	vLoops := st.Loops[v]

	cost := vInDegree * pc.L2EPar3
	if comDegree > 0 {
		cost -= comInDegree * math.Log(pc.MPar/comDegree+pc.ParTwoE)
	}
	if comDegree-vDegree > 0 {
		cost += (comInDegree - vInDegree - vLoops) * math.Log(pc.MPar/(comDegree-vDegree)+pc.ParTwoE)
	}
	return cost
}

func (ILFR) AddCost(st *Status, pc *PassConstants, v, com string, dnc float64) float64 {
	comInDegree := st.Internals[com]
	comDegree := st.Degrees[com]
	vDegree := st.GDegrees[v]
	vLoops := st.Loops[v]

	cost := dnc * (pc.L2E - pc.LPar)
	if comDegree > 0 {
		cost -= comInDegree * math.Log(pc.MPar/comDegree+pc.ParTwoE)
	}
	if comDegree+vDegree > 0 {
		cost += (comInDegree + dnc + vLoops) * math.Log(pc.MPar/(comDegree+vDegree)+pc.ParTwoE)
	}
	return cost
}

func (ILFR) Value(st *Status, par float64) float64 {
	a := getEs(st)
	d := dld(st)
	par = math.Max(par, minProbability)

	logl := a.Eout*math.Log(par) - a.Eout*math.Log(2*a.E) + d - a.E
	for _, c := range communityLabels(st) {
		degree := st.Degrees[c]
		if degree > 0 {
			logl += st.Internals[c] * math.Log((1-par)/degree+par/(2*a.E))
		}
	}
	return logl
}
