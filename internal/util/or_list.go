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
	"strings"
)

// OrList renders a string list like ["A", "B", "C"] as `A, B, or C`. When quoted is true each item
// is double-quoted. A positive limit truncates the list to at most that many items.
func OrList(items []string, limit int, quoted bool) string {
	if len(items) == 0 {
		return ""
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	var b strings.Builder
	numItems := len(items)
	for i, item := range items {
		if i > 0 {
			if numItems > 2 {
				b.WriteString(", ")
			} else {
				b.WriteString(" ")
			}
			if i == numItems-1 {
				b.WriteString("or ")
			}
		}
		if quoted {
			b.WriteString(`"`)
			b.WriteString(item)
			b.WriteString(`"`)
		} else {
			b.WriteString(item)
		}
	}
	return b.String()
}
