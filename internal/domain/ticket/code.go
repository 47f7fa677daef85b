package ticket

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"strings"
)

// CodeAlphabet omits 0/O and 1/I so codes survive being read aloud at the gate.
const CodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

var ErrCodeGeneration = errors.New("failed to generate redemption code")

type CodeGenerator interface {
	Generate() (Code, error)
}

type RandomCodeGenerator struct {
	prefix string
	length int
	rand   io.Reader
}

func NewRandomCodeGenerator(prefix string, length int) *RandomCodeGenerator {
	if length <= 0 {
		length = 6
	}
	return &RandomCodeGenerator{
		prefix: strings.ToUpper(strings.TrimSuffix(prefix, "-")),
		length: length,
		rand:   rand.Reader,
	}
}

// NewRandomCodeGeneratorWithReader draws from r instead of crypto/rand.
func NewRandomCodeGeneratorWithReader(prefix string, length int, r io.Reader) *RandomCodeGenerator {
	g := NewRandomCodeGenerator(prefix, length)
	g.rand = r
	return g
}

func (g *RandomCodeGenerator) Generate() (Code, error) {
	var sb strings.Builder
	if g.prefix != "" {
		sb.WriteString(g.prefix)
		sb.WriteByte('-')
	}
	max := big.NewInt(int64(len(CodeAlphabet)))
	for i := 0; i < g.length; i++ {
		n, err := rand.Int(g.rand, max)
		if err != nil {
			return Code{}, errors.Join(ErrCodeGeneration, err)
		}
		sb.WriteByte(CodeAlphabet[n.Int64()])
	}
	return Code{value: sb.String()}, nil
}
