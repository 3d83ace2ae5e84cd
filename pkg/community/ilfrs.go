package community

import "math"

// ILFRS is the simplified independent-LFR objective: a degree-
// weighted null model whose mixing parameter mu is the expected
// fraction of a vertex's degree spent on inter-community edges,
// without the full original-degree mixture term ILFR adds.
type ILFRS struct{}

func (ILFRS) Name() string     { return "ilfrs" }
func (ILFRS) ParamKey() string { return "mu" }

func (ILFRS) RemoveCost(st *Status, pc *PassConstants, v, com string, vInDegree float64) float64 {
	comDegree := st.Degrees[com]
	vDegree := st.GDegrees[v]
	comInDegree := st.Internals[com]

	cost := vInDegree * pc.L2EPar2
	cost += comInDegree * math.Log(comDegree)
	if comDegree > vDegree {
		vLoops := st.Loops[v]
		cost -= (comInDegree - vLoops - vInDegree) * math.Log(comDegree-vDegree)
	}
	return cost
}

func (ILFRS) AddCost(st *Status, pc *PassConstants, v, com string, dnc float64) float64 {
	comInDegree := st.Internals[com]
	comDegree := st.Degrees[com]
	vDegree := st.GDegrees[v]
	vLoops := st.Loops[v]

	cost := dnc * pc.L2EPar
	cost += comInDegree * math.Log(comDegree)
	cost -= (comInDegree + vLoops + dnc) * math.Log(comDegree+vDegree)
	return cost
}

func (ILFRS) Value(st *Status, par float64) float64 {
	a := getEs(st)
	par = clamp01(par)

	result := a.Eout * math.Log(par)
	result += a.Ein * math.Log(1-par)
	result -= a.Eout * math.Log(2*a.E)
	for _, c := range communityLabels(st) {
		degree := st.Degrees[c]
		if degree > 0 {
			result -= st.Internals[c] * math.Log(degree)
		}
	}
	result -= a.E
	result += dld(st)
	return result
}
