package config

import (
	"fmt"

	"trio/internal/tasks"
)

// MatrixConfig holds the two operands of the matrix task as plain slices so
// they read naturally in YAML. Shapes are checked by Validate.
type MatrixConfig struct {
	A [][]int `yaml:"a"`
	B [][]int `yaml:"b"`
}

// DefaultMatrixConfig returns the reference operands.
func DefaultMatrixConfig() MatrixConfig {
	a := tasks.ReferenceA
	b := tasks.ReferenceB
	cfg := MatrixConfig{}
	for _, row := range a {
		cfg.A = append(cfg.A, append([]int(nil), row[:]...))
	}
	for _, row := range b {
		cfg.B = append(cfg.B, append([]int(nil), row[:]...))
	}
	return cfg
}

// Validate checks A is 2x3 and B is 3x4.
func (c MatrixConfig) Validate() error {
	if err := checkShape("matrix.a", c.A, 2, 3); err != nil {
		return err
	}
	return checkShape("matrix.b", c.B, 3, 4)
}

func checkShape(name string, m [][]int, rows, cols int) error {
	if len(m) != rows {
		return fmt.Errorf("%s must have %d rows, got %d", name, rows, len(m))
	}
	for i, row := range m {
		if len(row) != cols {
			return fmt.Errorf("%s row %d must have %d values, got %d", name, i, cols, len(row))
		}
	}
	return nil
}

// Operands converts the validated slices to the fixed-size task types.
func (c MatrixConfig) Operands() (tasks.Matrix2x3, tasks.Matrix3x4, error) {
	var a tasks.Matrix2x3
	var b tasks.Matrix3x4
	if err := c.Validate(); err != nil {
		return a, b, err
	}
	for i := range a {
		copy(a[i][:], c.A[i])
	}
	for i := range b {
		copy(b[i][:], c.B[i])
	}
	return a, b, nil
}
