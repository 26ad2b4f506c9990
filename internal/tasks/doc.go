// Package tasks holds the three computations trio offers from its menu:
// the longest even-length word of a sentence, the fixed 2x3 by 3x4 matrix
// product, and the 4-digit unique-digit check.
//
// Every function here is pure. Prompting, reading and printing belong to
// the console and menu packages.
package tasks
