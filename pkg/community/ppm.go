package community

import "math"

// PPM is the plain planted partition model: a vertex-count null
// model (no degree correction) in which gamma trades off the
// observed fraction of intra-community edges against the expected
// fraction under a uniform-random-pair baseline.
type PPM struct{}

func (PPM) Name() string     { return "ppm" }
func (PPM) ParamKey() string { return "gamma" }

func (PPM) RemoveCost(st *Status, pc *PassConstants, v, com string, vInDegree float64) float64 {
	volumeNode := st.Node2Size[v]
	volumeCluster := st.Com2Size[com] - volumeNode
	preCalc1 := pc.Par * volumeNode / pc.P2
	return volumeCluster*preCalc1 - vInDegree/pc.E
}

func (PPM) AddCost(st *Status, pc *PassConstants, v, com string, dnc float64) float64 {
	volumeNode := st.Node2Size[v]
	preCalc1 := pc.Par * volumeNode / pc.P2
	volumeCluster := st.Com2Size[com]
	return dnc/pc.E - volumeCluster*preCalc1
}

func (PPM) Value(st *Status, par float64) float64 {
	a := getEs(st)
	_, p2in := sumDC2P2in(st)
	n := float64(len(st.RawNode2Node))
	p2 := n * (n - 1) / 2
	p2in = math.Max(p2in, minProbability)
	if a.E == 0 {
		return 0
	}
	return (a.Ein - par*p2in*a.E/p2) / a.E
}
