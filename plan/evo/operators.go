package evo

import (
	"math/rand"
	"sort"
)

// identity returns [0, 1, ..., n-1].
func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// shuffle permutes p uniformly (Fisher-Yates).
func shuffle(p []int, rng *rand.Rand) {
	for i := len(p) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
}

// crossover orders every task by the sum of its positions in mother and
// father. Ties keep the mother's order.
func crossover(mother, father []int) []int {
	fatherPos := make([]int, len(father))
	for i, task := range father {
		fatherPos[task] = i
	}

	type ranked struct {
		task      int
		rank      int
		motherPos int
	}
	genes := make([]ranked, len(mother))
	for i, task := range mother {
		genes[i] = ranked{task: task, rank: i + fatherPos[task], motherPos: i}
	}
	sort.SliceStable(genes, func(i, j int) bool {
		if genes[i].rank != genes[j].rank {
			return genes[i].rank < genes[j].rank
		}
		// Compares the same element with itself; a tie stays a tie.
		return genes[j].motherPos < genes[j].motherPos
	})

	child := make([]int, len(genes))
	for i, g := range genes {
		child[i] = g.task
	}
	return child
}

// mutate swaps max(1, len(p)/10) uniformly chosen position pairs. A pair may
// name the same position twice.
func mutate(p []int, rng *rand.Rand) {
	if len(p) == 0 {
		return
	}
	swaps := max(1, len(p)/10)
	for i := 0; i < swaps; i++ {
		from := rng.Intn(len(p))
		to := rng.Intn(len(p))
		p[from], p[to] = p[to], p[from]
	}
}
