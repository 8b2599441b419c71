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

// Height of an AVL node. A leaf has height 0, an absent child -1.
type Height int

const nullHeight Height = -1

// Color of a red-black node. The zero value is Red, which is what every
// freshly inserted node starts as.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Node is a single element of a Tree. A is the balancing tag of the
// strategy that owns the node: Height for AVL trees and Color for
// red-black trees.
//
// left and right are owned by the node. parent is only a back reference
// used to walk towards the root.
type Node[K constraints.Ordered, A any] struct {
	key                 K
	left, right, parent *Node[K, A]
	count               int // descendants, excluding the node itself
	aug                 A
}

// Key stored in the node.
func (n *Node[K, A]) Key() K { return n.key }

// Left child, nil if absent.
func (n *Node[K, A]) Left() *Node[K, A] { return n.left }

// Right child, nil if absent.
func (n *Node[K, A]) Right() *Node[K, A] { return n.right }

// Parent of the node, nil for the root.
func (n *Node[K, A]) Parent() *Node[K, A] { return n.parent }

// Count returns the number of descendants of n, not counting n.
func (n *Node[K, A]) Count() int { return n.count }

// Aug returns the balancing tag (height or color).
func (n *Node[K, A]) Aug() A { return n.aug }

// incl is the number of nodes in the subtree rooted at n, n included.
func incl[K constraints.Ordered, A any](n *Node[K, A]) int {
	if n == nil {
		return 0
	}
	return n.count + 1
}

func (n *Node[K, A]) isLeft() bool {
	return n.parent != nil && n.parent.left == n
}

func (n *Node[K, A]) sibling() *Node[K, A] {
	switch {
	case n.parent == nil:
		return nil
	case n.isLeft():
		return n.parent.right
	default:
		return n.parent.left
	}
}

func (n *Node[K, A]) uncle() *Node[K, A] {
	if n.parent == nil || n.parent.parent == nil {
		return nil
	}
	return n.parent.sibling()
}

func leftmost[K constraints.Ordered, A any](n *Node[K, A]) *Node[K, A] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[K constraints.Ordered, A any](n *Node[K, A]) *Node[K, A] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// height treats an absent node as nullHeight.
func height[K constraints.Ordered](n *Node[K, Height]) Height {
	if n == nil {
		return nullHeight
	}
	return n.aug
}

func balanceFactor[K constraints.Ordered](n *Node[K, Height]) int {
	return int(height(n.left) - height(n.right))
}

// isRed treats an absent node as black.
func isRed[K constraints.Ordered](n *Node[K, Color]) bool {
	return n != nil && n.aug == Red
}

func isBlack[K constraints.Ordered](n *Node[K, Color]) bool {
	return !isRed(n)
}

func hasRedChild[K constraints.Ordered](n *Node[K, Color]) bool {
	return isRed(n.left) || isRed(n.right)
}
