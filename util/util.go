package util

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/tayjaybabee/MIDIDiff/constants"
)

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num1
	}
	return num2
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ResolveOutputPath makes sure a write never clobbers an existing
// file: out.mid becomes out_1.mid, out_2.mid, ... until a free name
// is found. The probe is not atomic against concurrent writers, which
// is acceptable for a single-user tool.
func ResolveOutputPath(requested string) string {
	if dir := filepath.Dir(requested); dir != "." {
		os.MkdirAll(dir, 0777)
	}

	if !FileExists(requested) {
		return requested
	}

	ext := filepath.Ext(requested)
	stem := strings.TrimSuffix(requested, ext)
	if ext == "" {
		ext = constants.DefaultMidiExt
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%v_%v%v", stem, i, ext)
		if !FileExists(candidate) {
			return candidate
		}
	}
}
