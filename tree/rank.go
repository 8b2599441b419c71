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

import "github.com/cockroachdb/errors"

// KMin returns the k-th smallest key, counting from 1.
// It fails with ErrEmptyTree on an empty tree and with ErrOutOfRange when
// k is not in [1, Size()].
// Time: O(log n); Space: O(1)
func (t *Tree[K, A]) KMin(k int) (K, error) {
	var zero K
	if t.root == nil {
		return zero, ErrEmptyTree
	}
	if k < 1 || k > t.Size() {
		return zero, errors.Wrapf(ErrOutOfRange, "k=%d, size=%d", k, t.Size())
	}

	cur := t.root
	for {
		left := incl(cur.left)
		switch {
		case k <= left:
			cur = cur.left
		case k > left+1:
			k -= left + 1
			cur = cur.right
		default:
			return cur.key, nil
		}
	}
}

// LessCount returns how many stored keys are strictly less than key. key
// does not have to be present.
// Time: O(log n); Space: O(1)
func (t *Tree[K, A]) LessCount(key K) int {
	count := 0
	for cur := t.root; cur != nil; {
		// Equal keys may sit on either side of each other after rotations,
		// so an equal node sends the search left instead of ending it.
		if key <= cur.key {
			cur = cur.left
		} else {
			count += incl(cur.left) + 1
			cur = cur.right
		}
	}
	return count
}

// Min returns the smallest key; ok is false for an empty tree.
func (t *Tree[K, A]) Min() (key K, ok bool) {
	if t.root == nil {
		return key, false
	}
	return leftmost(t.root).key, true
}

// Max returns the largest key; ok is false for an empty tree.
func (t *Tree[K, A]) Max() (key K, ok bool) {
	if t.root == nil {
		return key, false
	}
	return rightmost(t.root).key, true
}
