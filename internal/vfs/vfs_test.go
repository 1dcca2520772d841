package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(nodes []*Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Name
	}
	return out
}

func TestList_Root(t *testing.T) {
	items, err := DefaultTree().List("/")
	require.NoError(t, err)
	assert.Equal(t, []string{"bin", "etc", "home", "vmlinuz-grid", "initrd.img"}, names(items))
}

func TestList_KeepsDeclarationOrder(t *testing.T) {
	tree := NewTree(
		file("zeta", "1B"),
		dir("beta"),
		file("alpha", "2B"),
	)

	items, err := tree.List("/")
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "beta", "alpha"}, names(items))

	items[0] = nil
	again, err := tree.List("/")
	require.NoError(t, err)
	assert.Equal(t, "zeta", again[0].Name, "callers get a copy")
}

func TestList_Nested(t *testing.T) {
	items, err := DefaultTree().List("home/root/")
	require.NoError(t, err)
	assert.Equal(t, []string{"readme.txt", "top_secret.lock"}, names(items))
	assert.Equal(t, "512B", items[0].Size)
}

func TestList_Errors(t *testing.T) {
	tree := DefaultTree()

	_, err := tree.List("/missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = tree.List("/bin/sh")
	assert.ErrorIs(t, err, ErrNotDir)

	_, err = tree.List("/bin/sh/deeper")
	assert.ErrorIs(t, err, ErrNotDir)
}

func TestSplitJoin(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Split("//a/b/"))
	assert.Nil(t, Split("/"))
	assert.Equal(t, "/", Join(nil))
	assert.Equal(t, "/a/b", Join([]string{"a", "b"}))
}

func TestBrowser_Navigation(t *testing.T) {
	b := NewBrowser(DefaultTree())
	assert.True(t, b.AtRoot())
	assert.Equal(t, "/", b.Path())

	b.Move(2) // home
	assert.Equal(t, "home", b.Selected())
	b.Open()
	assert.Equal(t, "/home", b.Path())
	assert.Equal(t, "", b.Selected())

	b.Open() // root
	assert.Equal(t, "/home/root", b.Path())

	b.Move(1)
	b.Open() // file: selects, does not descend
	assert.Equal(t, "/home/root", b.Path())
	assert.Equal(t, "top_secret.lock", b.Selected())
	assert.Equal(t, "/home/root/top_secret.lock", b.SelectedPath())

	b.Back()
	assert.Equal(t, "/home", b.Path())
	assert.Equal(t, 0, b.Cursor())
	b.Back()
	assert.Equal(t, 2, b.Cursor(), "cursor returns to the folder we left")
	b.Back()
	assert.True(t, b.AtRoot())
}

func TestBrowser_MoveClamps(t *testing.T) {
	b := NewBrowser(DefaultTree())

	b.Move(-3)
	assert.Equal(t, 0, b.Cursor())
	b.Move(100)
	assert.Equal(t, len(b.Items())-1, b.Cursor())
}
