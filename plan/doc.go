// Package plan computes execution plans for pairwise tasks over a bounded disk.
//
// Every task needs two files resident at the same time. A plan is an ordered
// log of downloads, evictions and task runs that never lets the resident set
// exceed the disk capacity; the objective is to minimize the bytes downloaded.
//
// # Reading Guide
//
//   - model.go: File, Task, Operation and WorkResult (the plan)
//   - instance.go: the immutable problem instance and its task set
//   - cache.go: resident set with the capacity invariant
//   - replay.go: verifies a plan against the rules every solver must follow
//
// # Architecture
//
// The plan package owns the data model and the shared simulation rules.
// Solvers live in sub-packages and are drop-in alternatives:
//   - plan/exhaustive/: explicit work-list search, globally optimal
//   - plan/greedy/: single pass, size-biased anchor heuristic
//   - plan/evo/: evolutionary search over task orderings with a lookahead simulator
//   - plan/manifest/: loads an Instance from a JSON or YAML manifest
//
// Solvers never call each other. Randomness is injected as *rand.Rand; see
// PartitionedRNG for deriving reproducible generators from one seed.
package plan
