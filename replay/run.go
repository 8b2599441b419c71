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

import "github.com/cockroachdb/errors"

// ErrMismatch is returned by Compare when the answers differ.
var ErrMismatch = errors.New("answers differ")

// Ranker is what a script is replayed against. Both tree flavours satisfy
// it for int keys.
type Ranker interface {
	Insert(key int)
	Erase(key int) bool
	KMin(k int) (int, error)
	LessCount(key int) int
}

// Run applies recs to r in order and returns the answers of the query
// records. A failing query stops the run.
func Run(r Ranker, recs []Record) ([]int, error) {
	var answers []int
	for i, rec := range recs {
		switch rec.Op {
		case OpInsert:
			r.Insert(rec.Arg)
		case OpErase:
			r.Erase(rec.Arg)
		case OpKMin:
			v, err := r.KMin(rec.Arg)
			if err != nil {
				return answers, errors.Wrapf(err, "record %d (%s)", i, rec)
			}
			answers = append(answers, v)
		case OpLessCount:
			answers = append(answers, r.LessCount(rec.Arg))
		default:
			return answers, errors.Newf("record %d: unknown op %q", i, rec.Op)
		}
	}
	return answers, nil
}

// Compare reports the first difference between got and want.
func Compare(got, want []int) error {
	for i := 0; i < min(len(got), len(want)); i++ {
		if got[i] != want[i] {
			return errors.Wrapf(ErrMismatch, "answer %d: got %d, want %d", i, got[i], want[i])
		}
	}
	if len(got) != len(want) {
		return errors.Wrapf(ErrMismatch, "got %d answers, want %d", len(got), len(want))
	}
	return nil
}
