package tasks

import (
	"strconv"
	"strings"
)

// Matrix2x3 is the left operand of Multiply.
type Matrix2x3 [2][3]int

// Matrix3x4 is the right operand of Multiply.
type Matrix3x4 [3][4]int

// Matrix2x4 is the product of a Matrix2x3 and a Matrix3x4.
type Matrix2x4 [2][4]int

// Reference operands used when no others are configured.
var (
	ReferenceA = Matrix2x3{
		{1, 2, 3},
		{4, 5, 6},
	}
	ReferenceB = Matrix3x4{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	}
)

// Multiply returns a*b. Overflow is not checked.
func Multiply(a Matrix2x3, b Matrix3x4) Matrix2x4 {
	var c Matrix2x4
	for i := range c {
		for j := range c[i] {
			sum := 0
			for k := range b {
				sum += a[i][k] * b[k][j]
			}
			c[i][j] = sum
		}
	}
	return c
}

// Rows returns the matrix as a slice of rows, for renderers that work on
// slices.
func (m Matrix2x4) Rows() [][]int {
	rows := make([][]int, len(m))
	for i := range m {
		rows[i] = append([]int(nil), m[i][:]...)
	}
	return rows
}

// String renders the matrix on one line: values separated by spaces,
// rows separated by " | ".
func (m Matrix2x4) String() string {
	rows := make([]string, len(m))
	for i, row := range m {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = strconv.Itoa(v)
		}
		rows[i] = strings.Join(cells, " ")
	}
	return strings.Join(rows, " | ")
}
