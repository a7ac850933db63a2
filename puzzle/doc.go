// Package puzzle models the block-stacking puzzle searched by blockstack.
//
// A State is an ordered list of stacks; each stack holds blocks bottom to
// top. Every block has a weight and a capacity: the total weight resting on
// a block may not exceed its capacity. A move takes the top block of one
// stack and places it on another, provided the destination stack remains
// valid; the cost of a move is the weight of the moved block.
//
// A state is a goal when the stack heights are as even as possible, i.e.
// every height lies in {n, n+1} where n = total blocks / number of stacks.
//
// Text format, one stack per line, bottom block first:
//
//	a,1,10|b,3,8
//	_
//	c,2,2
//
// Each block is "name,weight,capacity"; "_" denotes an empty stack. Malformed
// block records are skipped and reported through WithOnMalformed.
package puzzle
