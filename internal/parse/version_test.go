// internal/parse/version_test.go
package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportsMntr(t *testing.T) {
	assert.True(t, SupportsMntr("3.4.5"))
	assert.True(t, SupportsMntr("3.5.0"))
	assert.True(t, SupportsMntr("4.0.0"))

	// Strictly greater than 3.4.0.
	assert.False(t, SupportsMntr("3.4.0"))
	assert.False(t, SupportsMntr("3.2.2"))

	// Never probe mntr without a confirmed version.
	assert.False(t, SupportsMntr(""))
	assert.False(t, SupportsMntr("3.4"))
	assert.False(t, SupportsMntr("3.4.x"))
}

func TestVersionOrderingIsNumeric(t *testing.T) {
	v, ok := ParseVersion("3.10.0")
	assert.True(t, ok)
	assert.True(t, v.After(Version{3, 9, 9}))
	assert.True(t, v.AtLeast(Version{3, 10, 0}))
	assert.False(t, v.After(Version{3, 10, 0}))
}

func TestMatchVersionLine(t *testing.T) {
	maj, min, pat, ok := matchVersionLine("Zookeeper version: 3.2.2--1, built on 03/16/2010 07:31 GMT")
	assert.True(t, ok)
	assert.Equal(t, "3", maj)
	assert.Equal(t, "2", min)
	assert.Equal(t, "2", pat)

	// Leading token is case-insensitive.
	_, _, _, ok = matchVersionLine("ZooKeeper version: 3.4.5-cdh4--1")
	assert.True(t, ok)

	_, _, _, ok = matchVersionLine("This ZooKeeper instance is not currently serving requests")
	assert.False(t, ok)
}
