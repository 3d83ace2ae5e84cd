package community

import "math"

// CompareResult holds the three similarity scores ComparePartitions
// computes between two partitions of the same vertex set.
type CompareResult struct {
	Rand    float64
	Jaccard float64
	NMI     float64
}

// ComparePartitions scores how similarly p1 and p2 group the same
// vertex set, via pair-counting (Rand, Jaccard) and information-
// theoretic (NMI) agreement. Returns ErrPartitionSizeMismatch if p1
// and p2 do not cover exactly the same vertices.
func ComparePartitions(p1, p2 Partition) (CompareResult, error) {
	if len(p1) != len(p2) {
		return CompareResult{}, ErrPartitionSizeMismatch
	}
	if len(p1) == 0 {
		return CompareResult{}, ErrEmptyPartition
	}

	aSizes := make(map[string]float64)
	bSizes := make(map[string]float64)
	contingency := make(map[[2]string]float64)

	n := 0.0
	for v, l1 := range p1 {
		l2, ok := p2[v]
		if !ok {
			return CompareResult{}, ErrPartitionSizeMismatch
		}
		aSizes[l1]++
		bSizes[l2]++
		contingency[[2]string{l1, l2}]++
		n++
	}

	pairCount := func(x float64) float64 { return x * (x - 1) / 2 }

	a00 := 0.0
	for _, nij := range contingency {
		a00 += pairCount(nij)
	}
	sumA, sumB := 0.0, 0.0
	for _, a := range aSizes {
		sumA += pairCount(a)
	}
	for _, b := range bSizes {
		sumB += pairCount(b)
	}
	a01 := sumA - a00
	a10 := sumB - a00
	total := pairCount(n)
	a11 := total - a00 - a01 - a10

	var rand, jaccard float64
	if total > 0 {
		rand = (a00 + a11) / total
	} else {
		rand = 1
	}
	if denom := a00 + a01 + a10; denom > 0 {
		jaccard = a00 / denom
	} else {
		jaccard = 1
	}

	return CompareResult{
		Rand:    rand,
		Jaccard: jaccard,
		NMI:     nmi(aSizes, bSizes, contingency, n),
	}, nil
}

func entropy(sizes map[string]float64, n float64) float64 {
	h := 0.0
	for _, c := range sizes {
		if c <= 0 {
			continue
		}
		p := c / n
		h -= p * math.Log(p)
	}
	return h
}

func nmi(aSizes, bSizes map[string]float64, contingency map[[2]string]float64, n float64) float64 {
	hx := entropy(aSizes, n)
	hy := entropy(bSizes, n)
	if hx == 0 || hy == 0 {
		return -1
	}
	mi := 0.0
	for key, nij := range contingency {
		if nij <= 0 {
			continue
		}
		pij := nij / n
		pi := aSizes[key[0]] / n
		pj := bSizes[key[1]] / n
		mi += pij * math.Log(pij/(pi*pj))
	}
	return mi / math.Sqrt(hx*hy)
}
