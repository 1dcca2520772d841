// Package vfs holds the static file tree shown by the file explorer.
package vfs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when a path does not exist
	ErrNotFound = errors.New("no such file or directory")
	// ErrNotDir is returned when listing a file
	ErrNotDir = errors.New("not a directory")
)

// Node is a file or folder
type Node struct {
	Name     string  `yaml:"name" json:"name"`
	IsDir    bool    `yaml:"dir,omitempty" json:"dir,omitempty"`
	Size     string  `yaml:"size,omitempty" json:"size,omitempty"`
	Children []*Node `yaml:"children,omitempty" json:"children,omitempty"`
}

// Lister lists the children of a slash-separated path
type Lister interface {
	List(path string) ([]*Node, error)
}

// Tree is an in-memory, read-only Lister
type Tree struct {
	root *Node
}

// NewTree creates a tree over the given top-level nodes
func NewTree(nodes ...*Node) *Tree {
	return &Tree{root: &Node{IsDir: true, Children: nodes}}
}

// Split turns "/a/b/" into ["a", "b"]
func Split(path string) []string {
	var parts []string
	for _, p := range strings.Split(path, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// Join is the inverse of Split
func Join(parts []string) string {
	return "/" + strings.Join(parts, "/")
}

// Lookup returns the node at path
func (t *Tree) Lookup(path string) (*Node, error) {
	current := t.root
	for _, part := range Split(path) {
		if !current.IsDir {
			return nil, fmt.Errorf("%s: %w", path, ErrNotDir)
		}
		var next *Node
		for _, c := range current.Children {
			if c.Name == part {
				next = c
				break
			}
		}
		if next == nil {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		current = next
	}
	return current, nil
}

// List returns the children of the folder at path in declaration order
func (t *Tree) List(path string) ([]*Node, error) {
	node, err := t.Lookup(path)
	if err != nil {
		return nil, err
	}
	if !node.IsDir {
		return nil, fmt.Errorf("%s: %w", path, ErrNotDir)
	}

	children := make([]*Node, len(node.Children))
	copy(children, node.Children)
	return children, nil
}

func dir(name string, children ...*Node) *Node {
	return &Node{Name: name, IsDir: true, Children: children}
}

func file(name, size string) *Node {
	return &Node{Name: name, Size: size}
}

// DefaultTree returns the desktop's mock filesystem
func DefaultTree() *Tree {
	return NewTree(
		dir("bin",
			file("kernel.bin", "1.2MB"),
			file("sh", "450KB"),
			file("grid-core", "8.4MB"),
		),
		dir("etc",
			file("hosts", "1KB"),
			file("os-release", "2KB"),
			file("neural-config.json", "12KB"),
		),
		dir("home",
			dir("root",
				file("readme.txt", "512B"),
				file("top_secret.lock", "0B"),
			),
		),
		file("vmlinuz-grid", "32MB"),
		file("initrd.img", "15MB"),
	)
}
