/**
 * Copyright (c) 2025, The Quell Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package util

import (
	"math"
	"sort"
	"strings"
)

// SuggestionList, given an invalid input string and a list of valid options, returns a filtered
// list of valid options sorted by their similarity to the input. It backs the "Did you mean ...?"
// part of validation messages.
func SuggestionList(input string, options []string) []string {
	if len(options) == 0 {
		return nil
	}

	var (
		suggestions []string
		distances   []int
	)
	inputThreshold := float64(len(input)) / 2.0
	for _, option := range options {
		distance := lexicalDistance(input, option)
		threshold := math.Max(math.Max(inputThreshold, float64(len(option))/2.0), 1)
		if float64(distance) <= threshold {
			suggestions = append(suggestions, option)
			distances = append(distances, distance)
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return distances[i] < distances[j]
	})
	return suggestions
}

// lexicalDistance computes the minimum number of edits (insertion, deletion, substitution, or a
// swap of two adjacent characters) needed to transform a into b. A pure case change counts as one
// edit in total, which ranks mis-cased values first.
func lexicalDistance(a, b string) int {
	if a == b {
		return 0
	}

	la := strings.ToLower(a)
	lb := strings.ToLower(b)
	if la == lb {
		return 1
	}

	m, n := len(la), len(lb)
	rows := make([][]int, m+1)
	for i := range rows {
		rows[i] = make([]int, n+1)
		rows[i][0] = i
	}
	for j := 0; j <= n; j++ {
		rows[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 1
			if la[i-1] == lb[j-1] {
				cost = 0
			}
			d := minInt(rows[i-1][j]+1, rows[i][j-1]+1)
			d = minInt(d, rows[i-1][j-1]+cost)
			if i > 1 && j > 1 && la[i-1] == lb[j-2] && la[i-2] == lb[j-1] {
				d = minInt(d, rows[i-2][j-2]+1)
			}
			rows[i][j] = d
		}
	}
	return rows[m][n]
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
