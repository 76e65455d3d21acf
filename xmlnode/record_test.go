// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package xmlnode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diffeo/go-geoserver/xmlnode"
)

type testField string

const (
	testName  testField = "name"
	testCount testField = "count"
	testRatio testField = "ratio"
	testFlag  testField = "flag"
)

func TestRecordView(t *testing.T) {
	r := xmlnode.NewRecord[testField]("thing")
	r.Set(testName, "widget")
	r.SetInt(testCount, 12)
	r.SetFloat(testRatio, 0.25)
	r.SetBool(testFlag, true)
	assert.Equal(t,
		"<thing><name>widget</name><count>12</count><ratio>0.25</ratio><flag>true</flag></thing>",
		r.String())

	v := xmlnode.ViewOf[testField](xmlnode.Parse(r.String()))
	assert.Equal(t, "widget", v.Text(testName))
	count, ok := v.Int(testCount)
	assert.True(t, ok)
	assert.Equal(t, 12, count)
	ratio, ok := v.Float(testRatio)
	assert.True(t, ok)
	assert.Equal(t, 0.25, ratio)
	assert.True(t, v.Bool(testFlag))

	assert.True(t, r.Delete(testCount))
	assert.False(t, r.Delete(testCount))
	_, ok = r.Get(testCount)
	assert.False(t, ok)
}

func TestViewBadNumbers(t *testing.T) {
	v := xmlnode.ViewOf[testField](xmlnode.Parse("<thing><count>many</count></thing>"))
	_, ok := v.Int(testCount)
	assert.False(t, ok)
	_, ok = v.Float(testRatio)
	assert.False(t, ok)
	assert.False(t, v.Bool(testFlag))
	assert.Equal(t, "", v.Text(testName))
}
