// Package mlmodel trains and serves the gradient-boosted tree classifier
// behind the model-backed half of the fused signal.
package mlmodel

import (
	"math"
	"math/rand"
	"sort"
)

// treeNode is one node of a regression tree in the boosted ensemble.
// Leaves carry a value and have Feature set to -1; internal nodes route
// rows with value < Threshold to Left and the rest to Right. Nodes are
// stored flat so the whole ensemble serializes as plain JSON.
type treeNode struct {
	Feature   int     `json:"f"`
	Threshold float64 `json:"t"`
	Left      int     `json:"l"`
	Right     int     `json:"r"`
	Value     float64 `json:"v"`
}

type tree struct {
	Nodes []treeNode `json:"nodes"`
}

func (t *tree) predict(row []float64) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.Feature < 0 {
			return n.Value
		}
		if row[n.Feature] < n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// boostParams are the knobs of the booster. Regularization follows the
// usual second-order formulation: leaf values are G/(H+lambda) Newton
// steps over the logistic loss.
type boostParams struct {
	NumTrees     int
	MaxDepth     int
	LearningRate float64
	Subsample    float64
	ColSample    float64
	MinLeaf      int
	Lambda       float64
	Seed         int64
}

func defaultBoostParams() boostParams {
	return boostParams{
		NumTrees:     150,
		MaxDepth:     6,
		LearningRate: 0.1,
		Subsample:    0.8,
		ColSample:    0.8,
		MinLeaf:      5,
		Lambda:       1.0,
		Seed:         42,
	}
}

// booster is a fitted ensemble. BaseScore is the log-odds prior of the
// training labels; tree outputs are added to it before the sigmoid.
type booster struct {
	Trees     []tree    `json:"trees"`
	BaseScore float64   `json:"base_score"`
	Gain      []float64 `json:"gain"`
}

// predictProbability runs a dense row through the ensemble and squashes
// the accumulated margin to P(label=1).
func (b *booster) predictProbability(row []float64) float64 {
	margin := b.BaseScore
	for i := range b.Trees {
		margin += b.Trees[i].predict(row)
	}
	return sigmoid(margin)
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// fitBooster trains the ensemble on a dense matrix with binary labels.
// Gradients and hessians are those of the logistic loss; each round
// fits one depth-limited tree to them on a row/column subsample and
// shrinks its contribution by the learning rate. Per-feature split
// gains are accumulated into Gain for the importance report.
func fitBooster(x [][]float64, y []int, p boostParams) *booster {
	nRows := len(x)
	nCols := len(x[0])
	rng := rand.New(rand.NewSource(p.Seed))

	pos := 0
	for _, label := range y {
		pos += label
	}
	prior := float64(pos) / float64(nRows)
	// clamp so the log-odds stay finite on degenerate label sets
	prior = math.Min(math.Max(prior, 1e-6), 1-1e-6)
	base := math.Log(prior / (1 - prior))

	b := &booster{
		BaseScore: base,
		Trees:     make([]tree, 0, p.NumTrees),
		Gain:      make([]float64, nCols),
	}

	margins := make([]float64, nRows)
	for i := range margins {
		margins[i] = base
	}
	grad := make([]float64, nRows)
	hess := make([]float64, nRows)

	for round := 0; round < p.NumTrees; round++ {
		for i := 0; i < nRows; i++ {
			prob := sigmoid(margins[i])
			grad[i] = prob - float64(y[i])
			hess[i] = prob * (1 - prob)
		}

		rows := sampleRows(nRows, p.Subsample, rng)
		cols := sampleCols(nCols, p.ColSample, rng)

		tb := &treeBuilder{
			x: x, grad: grad, hess: hess,
			minLeaf: p.MinLeaf, lambda: p.Lambda,
			gain: b.Gain,
		}
		tr := tb.build(rows, cols, p.MaxDepth)

		for i := 0; i < nRows; i++ {
			margins[i] += p.LearningRate * tr.predict(x[i])
		}
		// bake the shrinkage into the stored leaves so prediction is a
		// plain sum over trees
		for j := range tr.Nodes {
			if tr.Nodes[j].Feature < 0 {
				tr.Nodes[j].Value *= p.LearningRate
			}
		}
		b.Trees = append(b.Trees, *tr)
	}
	return b
}

func sampleRows(n int, frac float64, rng *rand.Rand) []int {
	k := int(frac * float64(n))
	if k < 1 {
		k = 1
	}
	perm := rng.Perm(n)[:k]
	sort.Ints(perm)
	return perm
}

func sampleCols(n int, frac float64, rng *rand.Rand) []int {
	k := int(frac * float64(n))
	if k < 1 {
		k = 1
	}
	perm := rng.Perm(n)[:k]
	sort.Ints(perm)
	return perm
}

type treeBuilder struct {
	x          [][]float64
	grad, hess []float64
	minLeaf    int
	lambda     float64
	gain       []float64

	nodes []treeNode
}

func (tb *treeBuilder) build(rows, cols []int, maxDepth int) *tree {
	tb.nodes = tb.nodes[:0]
	tb.grow(rows, cols, maxDepth)
	t := &tree{Nodes: make([]treeNode, len(tb.nodes))}
	copy(t.Nodes, tb.nodes)
	return t
}

// grow appends the subtree for rows and returns its node index.
func (tb *treeBuilder) grow(rows, cols []int, depth int) int {
	var g, h float64
	for _, r := range rows {
		g += tb.grad[r]
		h += tb.hess[r]
	}

	idx := len(tb.nodes)
	tb.nodes = append(tb.nodes, treeNode{Feature: -1})

	if depth == 0 || len(rows) < 2*tb.minLeaf {
		tb.nodes[idx].Value = leafValue(g, h, tb.lambda)
		return idx
	}

	feat, thr, gain := tb.bestSplit(rows, cols, g, h)
	if feat < 0 || gain <= 0 {
		tb.nodes[idx].Value = leafValue(g, h, tb.lambda)
		return idx
	}
	tb.gain[feat] += gain

	left := make([]int, 0, len(rows))
	right := make([]int, 0, len(rows))
	for _, r := range rows {
		if tb.x[r][feat] < thr {
			left = append(left, r)
		} else {
			right = append(right, r)
		}
	}

	tb.nodes[idx].Feature = feat
	tb.nodes[idx].Threshold = thr
	tb.nodes[idx].Left = tb.grow(left, cols, depth-1)
	tb.nodes[idx].Right = tb.grow(right, cols, depth-1)
	return idx
}

func leafValue(g, h, lambda float64) float64 {
	return -g / (h + lambda)
}

// bestSplit scans every candidate column with an exact greedy sweep
// over the sorted column values and returns the split maximizing the
// second-order gain. Returns feature -1 when no valid split exists.
func (tb *treeBuilder) bestSplit(rows, cols []int, gTotal, hTotal float64) (int, float64, float64) {
	bestFeat := -1
	var bestThr, bestGain float64
	parentScore := gTotal * gTotal / (hTotal + tb.lambda)

	type entry struct {
		v    float64
		g, h float64
	}
	entries := make([]entry, len(rows))

	for _, c := range cols {
		for i, r := range rows {
			entries[i] = entry{v: tb.x[r][c], g: tb.grad[r], h: tb.hess[r]}
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].v < entries[j].v })

		var gLeft, hLeft float64
		for i := 0; i < len(entries)-1; i++ {
			gLeft += entries[i].g
			hLeft += entries[i].h
			if entries[i].v == entries[i+1].v {
				continue
			}
			nLeft := i + 1
			nRight := len(entries) - nLeft
			if nLeft < tb.minLeaf || nRight < tb.minLeaf {
				continue
			}
			gRight := gTotal - gLeft
			hRight := hTotal - hLeft
			gain := gLeft*gLeft/(hLeft+tb.lambda) +
				gRight*gRight/(hRight+tb.lambda) - parentScore
			if gain > bestGain {
				bestGain = gain
				bestFeat = c
				bestThr = (entries[i].v + entries[i+1].v) / 2
			}
		}
	}
	return bestFeat, bestThr, bestGain
}
