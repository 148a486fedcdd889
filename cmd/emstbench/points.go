package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vortessa/emst"
)

// loadPoints reads whitespace- or comma-separated floating point
// coordinates, one point per line, from path.
func loadPoints(path string) (emst.Primitives, error) {
	f, err := os.Open(path)
	if err != nil {
		return emst.Primitives{}, err
	}
	defer f.Close()

	var rows [][]float64
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		row := make([]float64, len(fields))
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return emst.Primitives{}, fmt.Errorf("emstbench: parsing %q: %w", field, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return emst.Primitives{}, err
	}
	return emst.PointsFromRows(rows)
}
