package community

import (
	"math/rand"
	"sort"
)

// OneLevel runs local-move sweeps over st in place: each vertex is
// pulled from its community and reinserted into whichever neighboring
// community (or its own, as the zero-gain default) maximizes the
// model's RemoveCost+AddCost, repeating full sweeps until a pass moves
// no vertex or the objective's gain over the previous pass falls
// below minGain. Returns ErrUnknownModel if model is not registered.
//
// If rng is nil, vertices and candidate communities are visited in a
// fixed, deterministic order; otherwise both orders are shuffled
// independently on every pass, matching the randomize flag of the
// reference implementation.
func OneLevel(st *Status, model string, pars map[string]float64, rng *rand.Rand) error {
	obj, err := LookupObjective(model)
	if err != nil {
		return err
	}
	par := SafePar(obj, pars)
	pc := NewPassConstants(st, par)

	curMod := obj.Value(st, par)
	modified := true
	passes := 0

	for modified && (PassMax < 0 || passes != PassMax) {
		modified = false
		passes++

		for _, v := range sweepOrder(st, rng) {
			comNode := st.Node2Com[v]
			neighComs := st.NeighborCommunities(v)
			vInDegree := neighComs[comNode]

			removeCost := obj.RemoveCost(st, pc, v, comNode, vInDegree)
			st.remove(v, comNode, vInDegree)

			bestCom := comNode
			bestIncrease := 0.0
			for _, com := range candidateOrder(neighComs, rng) {
				dnc := neighComs[com]
				incr := obj.AddCost(st, pc, v, com, dnc) + removeCost
				if incr > bestIncrease {
					bestIncrease = incr
					bestCom = com
				}
			}
			st.insert(v, bestCom, neighComs[bestCom])

			if bestCom != comNode {
				modified = true
			}
		}

		if modified {
			newMod := obj.Value(st, par)
			if newMod-curMod < minGain {
				break
			}
			curMod = newMod
		}
	}
	return nil
}

func sweepOrder(st *Status, rng *rand.Rand) []string {
	vs := st.Graph.Vertices()
	if rng == nil {
		return vs
	}
	out := make([]string, len(vs))
	copy(out, vs)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func candidateOrder(neighComs map[string]float64, rng *rand.Rand) []string {
	out := make([]string, 0, len(neighComs))
	for com := range neighComs {
		out = append(out, com)
	}
	if rng == nil {
		sort.Strings(out)
		return out
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
