// Package balance implements the team balancing engine.
//
// It partitions a roster of tier-rated players into a fixed number of
// equal-size teams, as balanced as possible in aggregate strength and
// tier spread, while pinning designated captains to distinct teams.
//
// Key components:
//   - Engine: orchestrates validation, strategy dispatch, optimization
//     and evaluation, and packages the Distribution artifact.
//   - Strategy: closed enumeration of the four constructive algorithms
//     (round_robin, random, cluster, snake).
//   - Optimizer: first-improvement hill climbing over single and paired
//     member swaps between teams.
//   - Evaluate: scores a partition; lower is better, zero is perfect.
//
// Build flow:
//  1. Validate team count, roster divisibility and captain count
//  2. Build an initial partition with the requested strategy
//  3. Optimize (every strategy except the pure snake draft)
//  4. Evaluate and package
//
// The engine is synchronous and single-threaded. The only source of
// randomness is the *rand.Rand owned by the Engine, seedable through
// Config for reproducible runs.
package balance
