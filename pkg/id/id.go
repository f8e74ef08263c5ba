package id

import (
	"crypto/rand"
	"fmt"
)

const (
	alphabet  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	suffixLen = 8
)

// Generator produces prefixed record identifiers like pay_k3Xb92Qa. The
// 8-character base-62 suffix keeps ids short enough to read over the counter
// while leaving collisions to the database's primary key to catch.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(prefix string) string {
	buf := make([]byte, suffixLen)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform entropy source is broken.
		panic(fmt.Sprintf("id: rand.Read: %v", err))
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return prefix + "_" + string(buf)
}

func (g *Generator) Payment() string {
	return g.Generate("pay")
}

func (g *Generator) Donation() string {
	return g.Generate("don")
}
