package model

import (
	"crypto/rand"
	"math/big"
	"sync"
)

const (
	secretAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	secretLength   = 22
)

// Parameter is a named configuration value attached to a parameter resource.
// A configured value is returned as-is; without one, a cryptographically
// random default is generated on first resolution and cached for the process
// lifetime. The sync.Once guard keeps concurrent first resolutions from
// producing two different secrets.
type Parameter struct {
	name   string
	secret bool
	value  string

	once      sync.Once
	generated string
}

// NewParameter creates a parameter. An empty value means "generate a secret
// default on first resolution".
func NewParameter(name, value string, secret bool) *Parameter {
	return &Parameter{name: name, secret: secret, value: value}
}

// Name returns the parameter name.
func (p *Parameter) Name() string { return p.name }

// Secret reports whether the value is sensitive.
func (p *Parameter) Secret() bool { return p.secret }

// HasConfiguredValue reports whether an explicit value was supplied.
func (p *Parameter) HasConfiguredValue() bool { return p.value != "" }

// Value returns the configured value, or the cached generated default.
// Repeated calls within one process always return the same string.
func (p *Parameter) Value() string {
	if p.value != "" {
		return p.value
	}
	p.once.Do(func() {
		p.generated = generateSecret()
	})
	return p.generated
}

// generateSecret produces a random base62 string. crypto/rand failures are
// unrecoverable configuration-of-the-host problems, so they panic.
func generateSecret() string {
	alphabetSize := big.NewInt(int64(len(secretAlphabet)))
	buf := make([]byte, secretLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			panic("model: reading crypto/rand: " + err.Error())
		}
		buf[i] = secretAlphabet[n.Int64()]
	}
	return string(buf)
}
