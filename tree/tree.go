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

// Package tree implements self-balancing binary search trees augmented
// with subtree sizes, so that the k-th smallest key and the number of keys
// below a bound are answered in O(log n).
//
// Two balancing strategies share one implementation: AVL (height balanced)
// and red-black (color balanced). Duplicate keys are allowed; a duplicate
// is inserted to the right of the equal keys already present.
//
// A Tree is not safe for concurrent use.
package tree

import "golang.org/x/exp/constraints"

// balancer is the part of a Tree that differs between AVL and red-black
// trees. The shared core calls it at fixed points of every mutation.
type balancer[K constraints.Ordered, A any] interface {
	// leaf returns the tag of a freshly created node.
	leaf() A
	// update recomputes the tag of n from its children.
	update(n *Node[K, A])
	// inserted runs after n was linked in as a leaf and counts were refreshed.
	inserted(t *Tree[K, A], n *Node[K, A])
	// detaching runs while n, which has at most one child, is still linked.
	detaching(t *Tree[K, A], n, child *Node[K, A])
	// detached runs after n was unlinked; parent is its former parent.
	detached(t *Tree[K, A], parent *Node[K, A])
	// treeHeight returns the height of t's root, -1 when t is empty.
	treeHeight(t *Tree[K, A]) int
}

// Tree is an order-statistics binary search tree. Use NewAVL or NewRB to
// create one; the zero value is not usable.
type Tree[K constraints.Ordered, A any] struct {
	root *Node[K, A]
	bal  balancer[K, A]
}

// AVLTree is a height balanced Tree.
type AVLTree[K constraints.Ordered] = Tree[K, Height]

// RBTree is a red-black Tree.
type RBTree[K constraints.Ordered] = Tree[K, Color]

// NewAVL returns an empty AVL tree.
func NewAVL[K constraints.Ordered]() *AVLTree[K] {
	return &Tree[K, Height]{bal: avlBalancer[K]{}}
}

// AVLOf builds an AVL tree by inserting keys in order.
func AVLOf[K constraints.Ordered](keys ...K) *AVLTree[K] {
	t := NewAVL[K]()
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

// NewRB returns an empty red-black tree.
func NewRB[K constraints.Ordered]() *RBTree[K] {
	return &Tree[K, Color]{bal: rbBalancer[K]{}}
}

// RBOf builds a red-black tree by inserting keys in order.
func RBOf[K constraints.Ordered](keys ...K) *RBTree[K] {
	t := NewRB[K]()
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

// Size returns the number of keys, duplicates included.
// Time: O(1)
func (t *Tree[K, A]) Size() int {
	return incl(t.root)
}

// Root returns the root node, nil for an empty tree.
func (t *Tree[K, A]) Root() *Node[K, A] {
	return t.root
}

// Height of the root; -1 for an empty tree.
// Time: O(n) for red-black trees, O(1) for AVL trees.
func (t *Tree[K, A]) Height() int {
	return t.bal.treeHeight(t)
}

// newNode creates a node with the given links. The supplied children are
// re-parented to the new node and its count and tag are recomputed.
func (t *Tree[K, A]) newNode(key K, parent, left, right *Node[K, A]) *Node[K, A] {
	n := &Node[K, A]{key: key, parent: parent, left: left, right: right, aug: t.bal.leaf()}
	if left != nil {
		left.parent = n
	}
	if right != nil {
		right.parent = n
	}
	t.refresh(n)
	return n
}

func (t *Tree[K, A]) refresh(n *Node[K, A]) {
	n.count = incl(n.left) + incl(n.right)
	t.bal.update(n)
}

// refreshUp recomputes counts and tags from n up to the root.
func (t *Tree[K, A]) refreshUp(n *Node[K, A]) {
	for ; n != nil; n = n.parent {
		t.refresh(n)
	}
}

// replace puts repl into the slot old occupies under its parent, or at the
// root. old keeps its own links.
func (t *Tree[K, A]) replace(old, repl *Node[K, A]) {
	p := old.parent
	switch {
	case p == nil:
		t.root = repl
	case p.left == old:
		p.left = repl
	default:
		p.right = repl
	}
	if repl != nil {
		repl.parent = p
	}
}

// Find returns a node holding key, or nil. With duplicates any one of the
// equal nodes may be returned.
// Time: O(log n); Space: O(1)
func (t *Tree[K, A]) Find(key K) *Node[K, A] {
	for cur := t.root; cur != nil; {
		switch {
		case key == cur.key:
			return cur
		case key > cur.key:
			cur = cur.right
		default:
			cur = cur.left
		}
	}
	return nil
}

// Contains reports whether key is stored in the tree.
func (t *Tree[K, A]) Contains(key K) bool {
	return t.Find(key) != nil
}

// Insert adds key to the tree. Equal keys are kept; the new one goes to the
// right of those already present.
// Time: O(log n)
func (t *Tree[K, A]) Insert(key K) {
	if t.root == nil {
		t.root = t.newNode(key, nil, nil, nil)
		t.bal.inserted(t, t.root)
		return
	}

	cur := t.root
	for {
		if key >= cur.key {
			if cur.right == nil {
				cur.right = t.newNode(key, cur, nil, nil)
				cur = cur.right
				break
			}
			cur = cur.right
		} else {
			if cur.left == nil {
				cur.left = t.newNode(key, cur, nil, nil)
				cur = cur.left
				break
			}
			cur = cur.left
		}
	}
	t.refreshUp(cur.parent)
	t.bal.inserted(t, cur)
}

// Erase removes one occurrence of key and reports whether it was present.
// Erasing an absent key leaves the tree untouched.
// Time: O(log n)
func (t *Tree[K, A]) Erase(key K) bool {
	n := t.Find(key)
	if n == nil {
		return false
	}

	// The node physically removed has at most one child.
	if n.right != nil {
		succ := leftmost(n.right)
		n.key, succ.key = succ.key, n.key
		n = succ
	}
	child := n.left
	if child == nil {
		child = n.right
	}

	t.bal.detaching(t, n, child)

	parent := n.parent
	t.replace(n, child)
	n.left, n.right, n.parent = nil, nil, nil

	t.refreshUp(parent)
	t.bal.detached(t, parent)
	return true
}

// Clone returns a deep copy with the same shape, tags and counts. The two
// trees share no nodes.
// Time: O(n)
func (t *Tree[K, A]) Clone() *Tree[K, A] {
	c := &Tree[K, A]{bal: t.bal}
	if t.root == nil {
		return c
	}

	type pair struct{ src, dst *Node[K, A] }
	c.root = copyNode(t.root, nil)
	st := []pair{{t.root, c.root}}
	for len(st) > 0 {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		if top.src.right != nil {
			top.dst.right = copyNode(top.src.right, top.dst)
			st = append(st, pair{top.src.right, top.dst.right})
		}
		if top.src.left != nil {
			top.dst.left = copyNode(top.src.left, top.dst)
			st = append(st, pair{top.src.left, top.dst.left})
		}
	}
	return c
}

func copyNode[K constraints.Ordered, A any](src, parent *Node[K, A]) *Node[K, A] {
	return &Node[K, A]{key: src.key, parent: parent, count: src.count, aug: src.aug}
}

// Clear removes every key. Nodes are released children first and all of
// their links are cut, so node references held by callers keep no part of
// the tree alive.
// Time: O(n)
func (t *Tree[K, A]) Clear() {
	t.PostOrder(func(n *Node[K, A]) bool {
		n.left, n.right, n.parent = nil, nil, nil
		return true
	})
	t.root = nil
}
