package matcalc

import (
	"bytes"
	"strconv"
)

// Matrix is a 3x3 integer matrix stored in row-major order: the element at
// row i, column j lives at index i*3+j.
type Matrix [9]int64

func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

func FromRows(rows [3][3]int64) Matrix {
	var m Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i*3+j] = rows[i][j]
		}
	}
	return m
}

func (m Matrix) At(i, j int) int64 {
	return m[i*3+j]
}

func (m Matrix) Rows() [3][3]int64 {
	var rows [3][3]int64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			rows[i][j] = m[i*3+j]
		}
	}
	return rows
}

func (m Matrix) Add(n Matrix) Matrix {
	var r Matrix
	for i := range m {
		r[i] = m[i] + n[i]
	}
	return r
}

func (m Matrix) Sub(n Matrix) Matrix {
	var r Matrix
	for i := range m {
		r[i] = m[i] - n[i]
	}
	return r
}

// Mul returns the matrix product m×n. Overflow wraps as int64 arithmetic does.
func (m Matrix) Mul(n Matrix) Matrix {
	var mn Matrix

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				mn[i*3+j] += m[i*3+k] * n[k*3+j]
			}
		}
	}

	return mn
}

func (m Matrix) Transpose() Matrix {
	var t Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i*3+j] = m[j*3+i]
		}
	}
	return t
}

// String returns m in literal syntax, e.g. [1,0,0;0,1,0;0,0,1], which
// Evaluate reads back as the same matrix.
func (m Matrix) String() string {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range m {
		if i > 0 {
			if i%3 == 0 {
				buf.WriteByte(';')
			} else {
				buf.WriteByte(',')
			}
		}
		buf.WriteString(strconv.FormatInt(v, 10))
	}
	buf.WriteByte(']')
	return buf.String()
}
