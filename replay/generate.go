// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package replay

import (
	"math/rand"
	"slices"
	"sort"
)

// Generate builds a random script together with its expected answers.
//
// Between elems and upper distinct keys are drawn from [0, upper) and
// inserted one at a time, the first one up front. Every step picks an
// insert, a k-th smallest query with a k that is valid at that point, or a
// less-than query with a bound drawn from [0, upper). The answers come from
// a sorted slice, not from a tree.
func Generate(rng *rand.Rand, elems, upper int) ([]Record, []int) {
	elems = max(elems, 1)
	upper = max(upper, elems)

	values := rng.Perm(upper)[:elems+rng.Intn(upper-elems+1)]
	recs := []Record{{OpInsert, values[0]}}
	values = values[1:]
	inserted := 1

	for len(values) > 0 {
		switch rng.Intn(3) {
		case 0:
			recs = append(recs, Record{OpInsert, values[len(values)-1]})
			values = values[:len(values)-1]
			inserted++
		case 1:
			recs = append(recs, Record{OpKMin, 1 + rng.Intn(inserted)})
		default:
			recs = append(recs, Record{OpLessCount, rng.Intn(upper)})
		}
	}
	return recs, Expected(recs)
}

// Expected computes the answers of recs with a sorted slice. Query records
// that would fail on a tree (k out of range) are skipped.
func Expected(recs []Record) []int {
	var (
		sorted  []int
		answers []int
	)
	for _, r := range recs {
		switch r.Op {
		case OpInsert:
			idx := sort.SearchInts(sorted, r.Arg)
			sorted = slices.Insert(sorted, idx, r.Arg)
		case OpErase:
			if idx := sort.SearchInts(sorted, r.Arg); idx < len(sorted) && sorted[idx] == r.Arg {
				sorted = slices.Delete(sorted, idx, idx+1)
			}
		case OpKMin:
			if r.Arg >= 1 && r.Arg <= len(sorted) {
				answers = append(answers, sorted[r.Arg-1])
			}
		case OpLessCount:
			answers = append(answers, sort.SearchInts(sorted, r.Arg))
		}
	}
	return answers
}
