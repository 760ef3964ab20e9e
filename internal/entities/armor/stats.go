package armor

import (
	"sort"
)

// SocketSizes is the number of decoration socket sizes
const SocketSizes = 4

// SocketProfile counts decoration sockets per size; index i holds size i+1
type SocketProfile [SocketSizes]int

// NewSocketProfile builds a profile from raw counts.
// Exactly four non-negative counts are required.
func NewSocketProfile(counts []int) (SocketProfile, error) {
	var p SocketProfile
	if len(counts) != SocketSizes {
		return p, newInvalidSocketProfile(counts)
	}
	for i, c := range counts {
		if c < 0 {
			return SocketProfile{}, newInvalidSocketProfile(counts)
		}
		p[i] = c
	}
	return p, nil
}

// Add returns the element-wise sum of both profiles
func (p SocketProfile) Add(other SocketProfile) SocketProfile {
	for i := range p {
		p[i] += other[i]
	}
	return p
}

// Total returns the number of sockets of any size
func (p SocketProfile) Total() int {
	total := 0
	for _, c := range p {
		total += c
	}
	return total
}

// Counts returns the profile as a slice, the form used in records
func (p SocketProfile) Counts() []int {
	out := make([]int, SocketSizes)
	copy(out, p[:])
	return out
}

// BonusMap maps a bonus (skill) name to its level
type BonusMap map[string]int

// Clone returns an independent copy; a nil map clones to an empty one
func (b BonusMap) Clone() BonusMap {
	out := make(BonusMap, len(b))
	for name, level := range b {
		out[name] = level
	}
	return out
}

// Merge adds every level from other into b
func (b BonusMap) Merge(other BonusMap) {
	for name, level := range other {
		b[name] += level
	}
}

// Names returns the bonus names sorted alphabetically
func (b BonusMap) Names() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
