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

package coursetree

import (
	"errors"
	"fmt"
)

// ErrInvariantViolation is wrapped by every error Check returns.
// It can only occur if the tree code itself is broken.
var ErrInvariantViolation = errors.New("coursetree: invariant violation")

// Check walks the whole tree and verifies the ordering, uniqueness and
// ownership invariants together with the node accounting
func (tree *Tree) Check() error {
	seen := make(map[*node]struct{}, tree.count)
	nodes, err := check(tree.root, nil, nil, seen)
	if err != nil {
		return err
	}
	if nodes != tree.count {
		return fmt.Errorf("%w: counted %d nodes, tree reports %d", ErrInvariantViolation, nodes, tree.count)
	}
	if live := tree.allocated - tree.released; live != nodes {
		return fmt.Errorf("%w: %d nodes reachable but %d allocated and not released", ErrInvariantViolation, nodes, live)
	}
	return nil
}

// internal: every ID in the sub-tree must lie strictly between the
// bounds, nil meaning unbounded
func check(n *node, low *string, high *string, seen map[*node]struct{}) (int, error) {
	if n == nil {
		return 0, nil
	}
	if _, ok := seen[n]; ok {
		return 0, fmt.Errorf("%w: node %q is reachable twice", ErrInvariantViolation, n.course.ID)
	}
	seen[n] = struct{}{}

	id := n.course.ID
	if low != nil && id <= *low {
		return 0, fmt.Errorf("%w: %q is in the right sub-tree of %q", ErrInvariantViolation, id, *low)
	}
	if high != nil && id >= *high {
		return 0, fmt.Errorf("%w: %q is in the left sub-tree of %q", ErrInvariantViolation, id, *high)
	}

	nl, err := check(n.left, low, &id, seen)
	if err != nil {
		return 0, err
	}
	nr, err := check(n.right, &id, high, seen)
	if err != nil {
		return 0, err
	}
	return 1 + nl + nr, nil
}
