package internal

import (
	"iter"
)

// IterSeq2Concat concatenates multiple dual-return iterators into a single iterator sequence.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}

// IterSeq2Fill yields (index, value) for every index in [start, end).
func IterSeq2Fill[V any](start, end int, value V) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for index := start; index < end; index++ {
			if !yield(index, value) {
				return
			}
		}
	}
}
