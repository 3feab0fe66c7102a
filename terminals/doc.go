// Package terminals produces the terminal points a tree is grown toward and
// moves them in and out of CSV.
//
//   - SampleBall draws points inside a ball with uniformly distributed
//     radius, azimuth and elevation (denser toward the centre).
//   - FibonacciSphere places points evenly on a sphere surface,
//     deterministically.
//   - ReadCSV/WriteCSV use a three-column x,y,z table with a header row.
//
// By convention the first row of a terminal table is the root inlet and the
// second row the outlet of the root vessel.
package terminals
