// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cst

import (
	"io"
	"strings"
)

// Fragment is a component of a cst that is backed by a token.
// This includes Nodes and all forms of space and comment.
type Fragment interface {
	// Tok returns the underlying token of this fragment.
	Tok() Token
	// Write is used to write the underlying token out to the writer.
	Write(io.Writer) error
}

// Separator is a list type to manage fragments that were skipped.
type Separator []Fragment

// Write is used to write the list of separators to the writer.
func (s Separator) Write(w io.Writer) error {
	for _, n := range s {
		if err := n.Write(w); err != nil {
			return err
		}
	}
	return nil
}

// String returns the concatenated text of the skipped fragments.
func (s Separator) String() string {
	b := &strings.Builder{}
	s.Write(b)
	return b.String()
}

// Node is a Fragment in a cst that represents unskipped tokens.
type Node interface {
	Fragment
	// Parent returns the Branch that this node is under.
	Parent() *Branch
	// SetParent replaces the Branch that this node is under.
	SetParent(*Branch)
	// Prefix returns the set of skippable fragments associated with this Node
	// that precede it in the stream.
	Prefix() Separator
	// AddPrefix adds more fragments to the Prefix list.
	AddPrefix(Separator)
	// Suffix returns the set of skippable fragments associated with this Node
	// that follow it in the stream.
	Suffix() Separator
	// AddSuffix adds more fragments to the Suffix list.
	AddSuffix(Separator)
}

// NodeBase implements the non-fragment parts of the Node interface.
// NodeBase is intended to be used as an anonymous field of types that implement
// the Node interface.
type NodeBase struct {
	Branch *Branch
	Pre    Separator
	Post   Separator
}

// Parent returns the Branch that this node is under.
func (n *NodeBase) Parent() *Branch { return n.Branch }

// SetParent replaces the Branch that this node is under.
func (n *NodeBase) SetParent(parent *Branch) { n.Branch = parent }

// Prefix returns the skipped fragments that precede the node.
func (n *NodeBase) Prefix() Separator { return n.Pre }

// AddPrefix adds more fragments to the Prefix list.
func (n *NodeBase) AddPrefix(s Separator) { n.Pre = append(n.Pre, s...) }

// Suffix returns the skipped fragments that follow the node.
func (n *NodeBase) Suffix() Separator { return n.Post }

// AddSuffix adds more fragments to the Suffix list.
func (n *NodeBase) AddSuffix(s Separator) { n.Post = append(n.Post, s...) }

// Leaf nodes are part of the cst that cannot have child nodes, they represent
// a single token from the input.
type Leaf struct {
	Token
	NodeBase
}

// Write writes the leaf node to the writer w.
func (n *Leaf) Write(w io.Writer) error {
	if err := n.Pre.Write(w); err != nil {
		return err
	}
	if err := n.Token.Write(w); err != nil {
		return err
	}
	return n.Post.Write(w)
}

// Branch is a CST node that can have children.
type Branch struct {
	NodeBase
	// Children is the slice of child nodes for this Branch.
	Children []Node
}

// First returns the first child of the branch, or nil if the branch has no
// children.
func (n *Branch) First() Node {
	if n == nil || len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// Last returns the last child of the branch, or nil if the branch has no
// children.
func (n *Branch) Last() Node {
	if n == nil || len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// Tok returns the token spanning the first to the last non-empty child.
// Empty children are leaves that consumed nothing and carry no position.
func (n *Branch) Tok() Token {
	var first, last Token
	found := false
	for _, c := range n.Children {
		t := c.Tok()
		if t.Len() == 0 && t.Source == nil {
			continue
		}
		if !found {
			first, found = t, true
		}
		last = t
	}
	if !found {
		return Token{}
	}
	first.End = last.End
	return first
}

// Write writes the branch node to the writer w.
func (n *Branch) Write(w io.Writer) error {
	if err := n.Pre.Write(w); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := c.Write(w); err != nil {
			return err
		}
	}
	return n.Post.Write(w)
}

// Walk calls visit for n and then, depth first, for every node below it.
func Walk(n Node, visit func(Node)) {
	if n == nil {
		return
	}
	visit(n)
	if b, ok := n.(*Branch); ok {
		for _, c := range b.Children {
			Walk(c, visit)
		}
	}
}
