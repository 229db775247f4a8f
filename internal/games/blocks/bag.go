package blocks

import "math/rand"

// pieceBag deals tetromino kinds using the seven-bag rule: each batch of
// seven contains every kind exactly once, shuffled. Any window of fourteen
// consecutive deals therefore holds each kind at least once, which keeps
// droughts bounded.
type pieceBag struct {
	rng   *rand.Rand
	queue []Kind
}

// newPieceBag creates a bag fed by the given source. The same seed yields
// the same deal order.
func newPieceBag(rng *rand.Rand) *pieceBag {
	return &pieceBag{rng: rng}
}

// next deals the next kind, refilling and reshuffling when the current
// batch is exhausted.
func (b *pieceBag) next() Kind {
	if len(b.queue) == 0 {
		b.refill()
	}
	k := b.queue[0]
	b.queue = b.queue[1:]
	return k
}

// refill loads a fresh batch of all seven kinds and shuffles it.
func (b *pieceBag) refill() {
	b.queue = []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}
	b.rng.Shuffle(len(b.queue), func(i, j int) {
		b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
	})
}
