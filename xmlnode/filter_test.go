// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package xmlnode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diffeo/go-geoserver/xmlnode"
)

// namedList builds <authorityURLs> with one <AuthorityURL> per name.
func namedList(names ...string) *xmlnode.Node {
	list := xmlnode.New("authorityURLs")
	for _, name := range names {
		item := list.AppendNew("AuthorityURL")
		item.Set("name", name)
		item.Set("href", "http://example.com/"+name)
	}
	return list
}

func names(list *xmlnode.Node) []string {
	var result []string
	for _, item := range list.ChildElements() {
		name, _ := item.Get("name")
		result = append(result, name)
	}
	return result
}

func TestFilterByName(t *testing.T) {
	list := namedList("a", "b", "c")
	matches := list.FindAll(xmlnode.ByField("name", "b"))
	require.Len(t, matches, 1)
	href, _ := matches[0].Get("href")
	assert.Equal(t, "http://example.com/b", href)

	found := list.Find(xmlnode.ByField("name", " c "))
	require.NotNil(t, found)
	assert.Nil(t, list.Find(xmlnode.ByField("name", "d")))
	assert.Nil(t, list.Find(xmlnode.ByField("missing", "a")))
}

func TestFilterByHref(t *testing.T) {
	list := namedList("a", "b")
	found := list.Find(xmlnode.ByField("href", "http://example.com/a"))
	require.NotNil(t, found)
	name, _ := found.Get("name")
	assert.Equal(t, "a", name)
}

func TestRemove(t *testing.T) {
	list := namedList("a", "b", "a", "c")
	assert.Equal(t, 2, list.Remove(xmlnode.ByField("name", "a")))
	assert.Equal(t, []string{"b", "c"}, names(list))
	assert.Equal(t, 0, list.Remove(xmlnode.ByField("name", "a")))
}

func TestReplaceAppendsAtEnd(t *testing.T) {
	list := namedList("a", "b", "c")
	item := xmlnode.New("AuthorityURL")
	item.Set("name", "a")
	item.Set("href", "http://new.example.com/")
	list.Replace(xmlnode.ByField("name", "a"), item)

	assert.Equal(t, []string{"b", "c", "a"}, names(list))
	href, _ := list.Find(xmlnode.ByField("name", "a")).Get("href")
	assert.Equal(t, "http://new.example.com/", href)
}

func TestCombinators(t *testing.T) {
	list := xmlnode.New("metadata")
	e := list.AppendNew("entry")
	e.SetAttr("key", "time")
	list.AppendNew("other").SetAttr("key", "time")

	matches := list.FindAll(xmlnode.And(xmlnode.ByTag("entry"), xmlnode.ByAttr("key", "time")))
	assert.Len(t, matches, 1)
	assert.Len(t, list.FindAll(xmlnode.ByAttr("key", "time")), 2)

	kw := xmlnode.New("keywords")
	kw.AppendNew("string").SetText("roads")
	assert.NotNil(t, kw.Find(xmlnode.ByText("roads")))
}
