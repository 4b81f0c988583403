// Package mstop solves the multi-source team orienteering problem
// (MS-TOP): given several vehicle sources, one shared depot, and a set of
// customers each carrying a revenue, assign customers to sources and build
// routes that maximize collected revenue subject to a per-route length
// limit (Tmax) and each source's vehicle count.
//
// The solver is organized as a pipeline of small packages:
//
//	model/         — the immutable Problem/Node/Edge arena and the
//	                 ephemeral per-pass Scratch side table
//	bra/           — biased-randomized sampling and RNG substream
//	                 derivation shared by every randomized stage
//	distmat/       — the dense Euclidean distance matrix
//	savings/       — per-source, per-edge savings (route-shortening
//	                 blended against revenue)
//	mapper/        — assigns customers to sources
//	pjs/           — builds routes for one source via savings-guided
//	                 merging (Parallel Joint Savings)
//	heuristic/     — one Mapper+PJS pass
//	metaheuristic/ — randomized-restart search, with an elite-pool variant
//	alphatuner/    — sweeps the savings blend parameter
//	instance/      — parses instance files
//	routeexport/   — renders a solved Solution as a table or DOT graph
//
// cmd/mstop wires these into a CLI that tunes alpha, runs all three search
// strategies, and reports revenue, cost, and wall-clock time for each.
package mstop
