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

import "golang.org/x/exp/constraints"

// rbBalancer keeps the red-black rules: the root is black, a red node has
// no red child and every path from a node down to an absent child crosses
// the same number of black nodes.
type rbBalancer[K constraints.Ordered] struct{}

func (rbBalancer[K]) leaf() Color { return Red }

// Colors do not depend on the children.
func (rbBalancer[K]) update(*Node[K, Color]) {}

func (rbBalancer[K]) inserted(t *Tree[K, Color], n *Node[K, Color]) {
	fixDoubleRed(t, n)
}

// detaching runs before n is unlinked. Removing a red node costs nothing.
// A black node with a red child hands its black to the child. Otherwise
// the path through n is about to lose a black node and n is fixed up while
// it is still in place.
func (rbBalancer[K]) detaching(t *Tree[K, Color], n, child *Node[K, Color]) {
	switch {
	case isRed(n):
	case isRed(child):
		child.aug = Black
	default:
		fixDoubleBlack(t, n)
	}
}

func (rbBalancer[K]) detached(*Tree[K, Color], *Node[K, Color]) {}

// Colors carry no height, so the tree is measured.
func (rbBalancer[K]) treeHeight(t *Tree[K, Color]) int {
	return t.maxDepth()
}

// fixDoubleRed climbs from a freshly inserted red node while it and its
// parent are both red.
func fixDoubleRed[K constraints.Ordered](t *Tree[K, Color], n *Node[K, Color]) {
	for n != t.root && isRed(n.parent) {
		// A red parent is never the root, so g exists.
		p := n.parent
		g := p.parent
		if u := n.uncle(); isRed(u) {
			p.aug, u.aug, g.aug = Black, Black, Red
			n = g
			continue
		}

		if p.isLeft() {
			if !n.isLeft() {
				t.rotateLeft(p)
				p = n
			}
			t.rotateRight(g)
		} else {
			if n.isLeft() {
				t.rotateRight(p)
				p = n
			}
			t.rotateLeft(g)
		}
		p.aug, g.aug = Black, Red
		break
	}
	t.root.aug = Black
}

// fixDoubleBlack restores the black height of paths through n, which are
// one black node short (or will be, once n is removed).
func fixDoubleBlack[K constraints.Ordered](t *Tree[K, Color], n *Node[K, Color]) {
	for n != t.root {
		p := n.parent
		s := n.sibling()
		if s == nil {
			n = p
			continue
		}

		if isRed(s) {
			// Turn the sibling into the parent and retry with a black sibling.
			p.aug, s.aug = Red, Black
			if s.isLeft() {
				t.rotateRight(p)
			} else {
				t.rotateLeft(p)
			}
			continue
		}

		if hasRedChild(s) {
			if s.isLeft() {
				if isRed(s.left) {
					s.left.aug = s.aug
					s.aug = p.aug
				} else {
					s.right.aug = p.aug
					t.rotateLeft(s)
				}
				t.rotateRight(p)
			} else {
				if isRed(s.right) {
					s.right.aug = s.aug
					s.aug = p.aug
				} else {
					s.left.aug = p.aug
					t.rotateRight(s)
				}
				t.rotateLeft(p)
			}
			p.aug = Black
			return
		}

		// Both children of the sibling are black: move the deficit up.
		s.aug = Red
		if isRed(p) {
			p.aug = Black
			return
		}
		n = p
	}
}
