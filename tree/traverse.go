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

// The walks below use an explicit stack so that a degenerate tree cannot
// exhaust the goroutine stack. Each one stops as soon as fn returns false.
// The tree must not be modified during a walk, except that PostOrder allows
// fn to cut the links of the node it was handed.

// InOrder calls fn on every node in ascending key order.
// Time: O(n); Space: O(log n)
func (t *Tree[K, A]) InOrder(fn func(*Node[K, A]) bool) {
	var st []*Node[K, A]
	cur := t.root
	for cur != nil || len(st) > 0 {
		for ; cur != nil; cur = cur.left {
			st = append(st, cur)
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		if !fn(cur) {
			return
		}
		cur = cur.right
	}
}

// PreOrder calls fn on a node before its left and then right subtree.
func (t *Tree[K, A]) PreOrder(fn func(*Node[K, A]) bool) {
	if t.root == nil {
		return
	}
	st := []*Node[K, A]{t.root}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !fn(cur) {
			return
		}
		if cur.right != nil {
			st = append(st, cur.right)
		}
		if cur.left != nil {
			st = append(st, cur.left)
		}
	}
}

// PostOrder calls fn on a node after both of its subtrees.
func (t *Tree[K, A]) PostOrder(fn func(*Node[K, A]) bool) {
	var (
		st   []*Node[K, A]
		last *Node[K, A]
	)
	cur := t.root
	for cur != nil || len(st) > 0 {
		if cur != nil {
			st = append(st, cur)
			cur = cur.left
			continue
		}
		top := st[len(st)-1]
		if top.right != nil && top.right != last {
			cur = top.right
			continue
		}
		st = st[:len(st)-1]
		// fn may cut top's links, so remember it before handing it over.
		last = top
		if !fn(top) {
			return
		}
	}
}

// InorderKeys returns every key in ascending order.
// Time: O(n)
func (t *Tree[K, A]) InorderKeys() []K {
	keys := make([]K, 0, t.Size())
	t.InOrder(func(n *Node[K, A]) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

// maxDepth is the number of edges on the longest root-to-leaf path.
func (t *Tree[K, A]) maxDepth() int {
	type frame struct {
		n     *Node[K, A]
		depth int
	}
	deepest := -1
	if t.root == nil {
		return deepest
	}
	st := []frame{{t.root, 0}}
	for len(st) > 0 {
		f := st[len(st)-1]
		st = st[:len(st)-1]
		deepest = max(deepest, f.depth)
		if f.n.left != nil {
			st = append(st, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			st = append(st, frame{f.n.right, f.depth + 1})
		}
	}
	return deepest
}
