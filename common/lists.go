package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
)

// ContainsHash checks whether list has acc.
func ContainsHash(list []interop.Hash160, acc interop.Hash160) bool {
	for i := range list {
		if list[i].Equals(acc) {
			return true
		}
	}
	return false
}

// RemoveHash returns list without the first occurrence of acc.
func RemoveHash(list []interop.Hash160, acc interop.Hash160) []interop.Hash160 {
	var (
		res     = []interop.Hash160{}
		removed bool
	)

	for i := range list {
		if !removed && list[i].Equals(acc) {
			removed = true
			continue
		}
		res = append(res, list[i])
	}

	return res
}

// IndexOfInt returns index of the first v in list or -1.
func IndexOfInt(list []int, v int) int {
	for i := range list {
		if list[i] == v {
			return i
		}
	}
	return -1
}

// ContainsInt checks whether list has v.
func ContainsInt(list []int, v int) bool {
	return IndexOfInt(list, v) >= 0
}

// AppendUniqueInt appends v to list unless it's already there.
func AppendUniqueInt(list []int, v int) []int {
	if ContainsInt(list, v) {
		return list
	}
	return append(list, v)
}
