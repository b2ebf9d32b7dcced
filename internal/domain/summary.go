package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Summary counts the rows a stage wrote, per entity.
type Summary map[Entity]int

func (s Summary) String() string {
	keys := make([]string, 0, len(s))
	for e := range s {
		keys = append(keys, string(e))
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, s[Entity(k)]))
	}
	return strings.Join(parts, " ")
}
