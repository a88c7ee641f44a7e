// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"strings"

	"github.com/tbddmc/tbddmc/internal/model"
)

// printMatrix renders --print-matrix's one-row-per-partition read/write
// summary (spec.md §6.2): one column per vector component, '-' when the
// partition touches neither, 'r'/'w' when it touches only one side, and
// '+' when it both reads and writes that component.
func printMatrix(m *model.Model) {
	for _, rel := range m.Next {
		fmt.Println(matrixRow(m.Domain.VectorSize, rel))
	}
}

func matrixRow(vectorSize int, rel model.Relation) string {
	reads := make(map[int]bool, len(rel.RProj))
	for _, c := range rel.RProj {
		reads[c] = true
	}
	writes := make(map[int]bool, len(rel.WProj))
	for _, c := range rel.WProj {
		writes[c] = true
	}

	var b strings.Builder
	for c := 0; c < vectorSize; c++ {
		r, w := reads[c], writes[c]
		switch {
		case r && w:
			b.WriteByte('+')
		case r:
			b.WriteByte('r')
		case w:
			b.WriteByte('w')
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}
