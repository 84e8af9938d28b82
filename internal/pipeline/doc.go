// Package pipeline counts k-mers across genome records with a worker pool.
//
// Each worker tallies whole records into a private shard; a collector
// reduces shards with kmer.Merge. Counting is a commutative fold, so the
// result does not depend on the thread count or scheduling.
package pipeline
