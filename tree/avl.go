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

// avlBalancer keeps |height(left) - height(right)| <= 1 at every node.
type avlBalancer[K constraints.Ordered] struct{}

func (avlBalancer[K]) leaf() Height { return 0 }

func (avlBalancer[K]) update(n *Node[K, Height]) {
	n.aug = max(height(n.left), height(n.right)) + 1
}

func (b avlBalancer[K]) inserted(t *Tree[K, Height], n *Node[K, Height]) {
	b.rebalance(t, n.parent)
}

func (avlBalancer[K]) detaching(*Tree[K, Height], *Node[K, Height], *Node[K, Height]) {}

func (b avlBalancer[K]) detached(t *Tree[K, Height], parent *Node[K, Height]) {
	b.rebalance(t, parent)
}

func (avlBalancer[K]) treeHeight(t *Tree[K, Height]) int {
	return int(height(t.root))
}

// rebalance walks from n to the root. Every ancestor gets its height and
// count refreshed; the ones whose balance factor left [-1, 1] are fixed
// with one or two rotations.
func (avlBalancer[K]) rebalance(t *Tree[K, Height], n *Node[K, Height]) {
	for n != nil {
		t.refresh(n)
		switch bf := balanceFactor(n); {
		case bf > 1:
			// left-right reduces to left-left
			if balanceFactor(n.left) < 0 {
				t.rotateLeft(n.left)
			}
			n = t.rotateRight(n)
		case bf < -1:
			// right-left reduces to right-right
			if balanceFactor(n.right) > 0 {
				t.rotateRight(n.right)
			}
			n = t.rotateLeft(n)
		}
		n = n.parent
	}
}
