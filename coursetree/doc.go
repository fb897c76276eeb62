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

// Package coursetree is an in-memory ordered index of courses keyed by
// course identifier.
//
// The index is a plain (unbalanced) binary search tree: its shape depends
// only on the order of insertions. Each child slot is the sole owner of
// the node below it and there are no parent pointers, so every mutation
// is written as a recursive function that returns the new root of the
// subtree it was given.
//
// Inserting an identifier that is already present is rejected and the
// stored course is kept.
//
// Note: a Tree is not thread safe. Either use it from a single go
// routine or wrap it in a Guarded.
package coursetree
