package id

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate_Format(t *testing.T) {
	g := New()

	assert.Regexp(t, regexp.MustCompile(`^pay_[A-Za-z0-9]{8}$`), g.Payment())
	assert.Regexp(t, regexp.MustCompile(`^don_[A-Za-z0-9]{8}$`), g.Donation())
	assert.Regexp(t, regexp.MustCompile(`^x_[A-Za-z0-9]{8}$`), g.Generate("x"))
}

func TestGenerate_NoCollisionsInPractice(t *testing.T) {
	g := New()

	seen := make(map[string]struct{}, 10000)
	for i := 0; i < 10000; i++ {
		id := g.Payment()
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s after %d generations", id, i)
		seen[id] = struct{}{}
	}
}
