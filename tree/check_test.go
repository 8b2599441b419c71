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
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// verifyLinks checks parent back references, subtree counts and key order.
func verifyLinks[K constraints.Ordered, A any](t *Tree[K, A]) error {
	if t.root != nil && t.root.parent != nil {
		return errors.Newf("root %v has parent %v", t.root.key, t.root.parent.key)
	}
	var err error
	t.PostOrder(func(n *Node[K, A]) bool {
		for _, c := range []*Node[K, A]{n.left, n.right} {
			if c != nil && c.parent != n {
				err = errors.Newf("child %v of %v does not point back", c.key, n.key)
				return false
			}
		}
		if want := incl(n.left) + incl(n.right); n.count != want {
			err = errors.Newf("node %v has count %d, want %d", n.key, n.count, want)
			return false
		}
		if n.left != nil && n.left.key > n.key {
			err = errors.Newf("left child %v greater than %v", n.left.key, n.key)
			return false
		}
		if n.right != nil && n.right.key < n.key {
			err = errors.Newf("right child %v less than %v", n.right.key, n.key)
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	keys := t.InorderKeys()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] > keys[i] {
			return errors.Newf("in-order keys not sorted at %d: %v > %v", i, keys[i-1], keys[i])
		}
	}
	return nil
}

func verifyAVL[K constraints.Ordered](t *AVLTree[K]) error {
	if err := verifyLinks(t); err != nil {
		return err
	}
	var err error
	t.PostOrder(func(n *Node[K, Height]) bool {
		if want := max(height(n.left), height(n.right)) + 1; n.aug != want {
			err = errors.Newf("node %v has height %d, want %d", n.key, n.aug, want)
			return false
		}
		if bf := balanceFactor(n); bf < -1 || bf > 1 {
			err = errors.Newf("node %v has balance factor %d", n.key, bf)
			return false
		}
		return true
	})
	return err
}

func verifyRB[K constraints.Ordered](t *RBTree[K]) error {
	if err := verifyLinks(t); err != nil {
		return err
	}
	if isRed(t.root) {
		return errors.Newf("root %v is red", t.root.key)
	}
	var err error
	blackHeight := make(map[*Node[K, Color]]int)
	bh := func(n *Node[K, Color]) int {
		if n == nil {
			return 0
		}
		return blackHeight[n]
	}
	t.PostOrder(func(n *Node[K, Color]) bool {
		if isRed(n) && (isRed(n.left) || isRed(n.right)) {
			err = errors.Newf("red node %v has a red child", n.key)
			return false
		}
		l, r := bh(n.left), bh(n.right)
		if isBlack(n.left) && n.left != nil {
			l++
		}
		if isBlack(n.right) && n.right != nil {
			r++
		}
		if l != r {
			err = errors.Newf("node %v has black heights %d and %d", n.key, l, r)
			return false
		}
		blackHeight[n] = l
		return true
	})
	return err
}
