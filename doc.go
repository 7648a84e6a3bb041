// Package pipeloop traces the single closed loop in a grid of pipe connectors
// and measures it: how far along the loop its farthest tile lies, and how many
// cells it encloses.
//
// Under the hood, everything is organized in small subpackages:
//
//	pipe/      — directions, positions, direction sets and the tile catalog
//	pipegrid/  — immutable rectangular grid with bounds-checked neighbors
//	loop/      — loop tracer and start-shape resolution
//	interior/  — even-odd row scan, Pick's theorem and flood-fill counters
//
// Quick ASCII example:
//
//	.....
//	.S-7.
//	.|.|.
//	.L-J.
//	.....
//
// is an 8-edge loop: the farthest tile is 4 steps from S and one cell is
// enclosed.
//
// The package never logs or prints; every failure is returned as an error
// wrapping one of the sentinels of the subpackages.
package pipeloop
