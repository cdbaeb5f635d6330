// Package lvmaze is a small toolkit for solving single-path character mazes
// by depth-first search.
//
// What is inside:
//
//	stack/           — generic LIFO container over a singly-linked chain, with deep Clone
//	maze/            — Coordinate, Cell markers, Grid, the maze text parser and the Solver
//	cmd/mazesolve/   — command-line host: solve, render and validate maze files
//
// Quick ASCII example:
//
//	#####        #####
//	#  E#   →    #..E#
//	#####        #####
//
// The search starts from the grid's start cell, probes South, East, West
// and North in that order, marks every entered cell 'V' and, once an 'E' is
// reached, redraws the surviving path with '.'.
//
//	go get github.com/katalvlaran/lvmaze
package lvmaze
