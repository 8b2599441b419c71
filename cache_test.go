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

package main

import (
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cybrota/ranktree/tree"
)

func TestQueryCacheHitsAndFlush(t *testing.T) {
	q := newQueryCache(tree.AVLOf(5, 1, 7), time.Minute)

	if got := q.LessCount(6); got != 2 {
		t.Errorf("LessCount(6) = %d; want 2", got)
	}
	if got := q.LessCount(6); got != 2 {
		t.Errorf("cached LessCount(6) = %d; want 2", got)
	}
	if v, err := q.KMin(3); err != nil || v != 7 {
		t.Errorf("KMin(3) = %d, %v; want 7", v, err)
	}
	if q.hits != 1 || q.misses != 2 {
		t.Errorf("hits, misses = %d, %d; want 1, 2", q.hits, q.misses)
	}

	// A mutation must invalidate stale answers.
	q.Insert(0)
	if got := q.LessCount(6); got != 3 {
		t.Errorf("LessCount(6) after insert = %d; want 3", got)
	}
	if v, _ := q.KMin(3); v != 5 {
		t.Errorf("KMin(3) after insert = %d; want 5", v)
	}

	if !q.Erase(5) {
		t.Fatalf("Erase(5) = false")
	}
	if v, _ := q.KMin(3); v != 7 {
		t.Errorf("KMin(3) after erase = %d; want 7", v)
	}
	if q.Erase(42) {
		t.Errorf("Erase(42) of an absent key = true")
	}
}

func TestQueryCacheDoesNotCacheErrors(t *testing.T) {
	q := newQueryCache(tree.NewRB[int](), time.Minute)
	if _, err := q.KMin(1); !errors.Is(err, tree.ErrEmptyTree) {
		t.Fatalf("KMin(1) on empty tree = %v; want ErrEmptyTree", err)
	}
	q.Insert(9)
	if v, err := q.KMin(1); err != nil || v != 9 {
		t.Errorf("KMin(1) = %d, %v; want 9", v, err)
	}
}

func TestQueryCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	q := newQueryCache(tree.AVLOf(1, 2, 3), 50*time.Millisecond)
	q.LessCount(3)
	q.LessCount(3)
	if q.hits != 1 {
		t.Fatalf("hits = %d; want 1", q.hits)
	}

	time.Sleep(100 * time.Millisecond)

	q.LessCount(3)
	if q.misses != 2 {
		t.Errorf("after expiration misses = %d; want 2", q.misses)
	}
}
