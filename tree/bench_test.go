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

package tree

import (
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

// Insert and delete numbers are compared with other ordered containers.
// None of them keeps subtree sizes, so they only bound what the size
// bookkeeping costs.

const benchN = 1 << 15

var benchKeys = rand.New(rand.NewSource(0)).Perm(benchN)

func BenchmarkAVL_Insert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := NewAVL[int]()
		for _, k := range benchKeys {
			t.Insert(k)
		}
	}
}

func BenchmarkRB_Insert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := NewRB[int]()
		for _, k := range benchKeys {
			t.Insert(k)
		}
	}
}

func BenchmarkAVL_Erase(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := AVLOf(benchKeys...)
		b.StartTimer()
		for k := 0; k < benchN; k++ {
			t.Erase(k)
		}
	}
}

func BenchmarkRB_Erase(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := RBOf(benchKeys...)
		b.StartTimer()
		for k := 0; k < benchN; k++ {
			t.Erase(k)
		}
	}
}

func BenchmarkAVL_KMin(b *testing.B) {
	t := AVLOf(benchKeys...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.KMin(i%benchN + 1)
	}
}

func BenchmarkRB_LessCount(b *testing.B) {
	t := RBOf(benchKeys...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.LessCount(i % benchN)
	}
}

func BenchmarkClone(b *testing.B) {
	t := RBOf(benchKeys...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		t.Clone()
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := btree.NewOrderedG[int](32)
		for _, k := range benchKeys {
			t.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkGodsRB_Insert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := redblacktree.NewWithIntComparator()
		for _, k := range benchKeys {
			t.Put(k, struct{}{})
		}
	}
}

func BenchmarkGodsAVL_Insert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := avltree.NewWithIntComparator()
		for _, k := range benchKeys {
			t.Put(k, struct{}{})
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	for i := 0; i < b.N; i++ {
		t := llrb.New()
		for _, k := range benchKeys {
			t.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

func BenchmarkGodsRB_Erase(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := redblacktree.NewWithIntComparator()
		for _, k := range benchKeys {
			t.Put(k, struct{}{})
		}
		b.StartTimer()
		for k := 0; k < benchN; k++ {
			t.Remove(k)
		}
	}
}

func BenchmarkLLRB_Erase(b *testing.B) {
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		t := llrb.New()
		for _, k := range benchKeys {
			t.ReplaceOrInsert(llrb.Int(k))
		}
		b.StartTimer()
		for k := 0; k < benchN; k++ {
			t.Delete(llrb.Int(k))
		}
	}
}
