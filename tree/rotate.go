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

// rotateLeft makes x.right the root of x's subtree and returns it.
//
//	  x               y
//	 / \             / \
//	a   y    =>     x   c
//	   / \         / \
//	  b   c       a   b
//
// The subtree keeps its size, so counts above it are unaffected. Tags above
// it (AVL heights) are left to the caller's ancestor walk.
// Time: O(1)
func (t *Tree[K, A]) rotateLeft(x *Node[K, A]) *Node[K, A] {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	t.replace(x, y)
	y.left = x
	x.parent = y

	t.refresh(x)
	t.refresh(y)
	return y
}

// rotateRight is the mirror image of rotateLeft and returns x.left.
// Time: O(1)
func (t *Tree[K, A]) rotateRight(x *Node[K, A]) *Node[K, A] {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	t.replace(x, y)
	y.right = x
	x.parent = y

	t.refresh(x)
	t.refresh(y)
	return y
}
