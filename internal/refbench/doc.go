// Package refbench benchmarks wordoccur against the mapReduceGo reference
// engine on the same word-count workload. It holds no code outside tests.
package refbench
