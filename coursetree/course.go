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
	"fmt"
	"slices"
	"strings"
)

// Course is a single catalog entry
type Course struct {
	ID            string   `json:"id" yaml:"id" cbor:"id"`                                  // unique key, e.g. "CSCI400"
	Title         string   `json:"title" yaml:"title" cbor:"title"`                         // e.g. "Large Software Development"
	Prerequisites []string `json:"prerequisites" yaml:"prerequisites" cbor:"prerequisites"` // identifiers of other courses
}

// clone returns a copy that shares no memory with c
func (c Course) clone() Course {
	c.Prerequisites = slices.Clone(c.Prerequisites)
	return c
}

// Equal reports whether two courses carry the same data.
// A nil and an empty prerequisite list are considered equal.
func (c Course) Equal(o Course) bool {
	if c.ID != o.ID || c.Title != o.Title {
		return false
	}
	return slices.Equal(c.Prerequisites, o.Prerequisites)
}

// Order selects a traversal order
type Order int

const (
	InOrder   Order = iota // left, node, right: ascending by ID
	PreOrder               // node, left, right
	PostOrder              // left, right, node
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// Next cycles through the three orders
func (o Order) Next() Order {
	return (o + 1) % 3
}

// ParseOrder accepts "in-order", "pre-order", "post-order" and the
// short forms "in", "pre", "post" (case insensitive)
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in-order", "inorder", "in", "":
		return InOrder, nil
	case "pre-order", "preorder", "pre":
		return PreOrder, nil
	case "post-order", "postorder", "post":
		return PostOrder, nil
	}
	return InOrder, fmt.Errorf("unknown traversal order %q", s)
}
