package community

import "math"

// DCPPM is the degree-corrected planted partition model: a
// resolution-parameterized generalization of classic Newman-Girvan
// modularity, where gamma trades off internal edge density against
// expected density under a configuration null model.
type DCPPM struct{}

func (DCPPM) Name() string     { return "dcppm" }
func (DCPPM) ParamKey() string { return "gamma" }

func (DCPPM) RemoveCost(st *Status, pc *PassConstants, v, com string, vInDegree float64) float64 {
	comDegree := st.Degrees[com]
	vDegree := st.GDegrees[v]
	preCalc1 := pc.Par * vDegree / pc.TwoE
	return preCalc1*(comDegree-vDegree) - vInDegree
}

func (DCPPM) AddCost(st *Status, pc *PassConstants, v, com string, dnc float64) float64 {
	vDegree := st.GDegrees[v]
	preCalc1 := pc.Par * vDegree / pc.TwoE
	comDegree := st.Degrees[com]
	return dnc - preCalc1*comDegree
}

func (DCPPM) Value(st *Status, par float64) float64 {
	links := st.TotalWeight
	if links <= 0 {
		return 0
	}
	result := 0.0
	for _, c := range communityLabels(st) {
		inDegree := st.Internals[c]
		degree := st.Degrees[c]
		result += inDegree/links - par*math.Pow(degree/(2*links), 2)
	}
	return result
}
