package pix

import (
	"minibook/internal/pkg/config"
)

// Charger binds the configured payee so callers only supply the amount.
type Charger struct {
	name string
	key  string
}

func NewCharger(cfg config.PixConfig) *Charger {
	return &Charger{name: cfg.Name, key: cfg.Key}
}

func (c *Charger) Charge(amountMinor int64, description string) (string, string, error) {
	p, err := Generate(c.name, c.key, amountMinor, description)
	if err != nil {
		return "", "", err
	}
	b64, err := p.ToBase64()
	if err != nil {
		return "", "", err
	}
	return b64, p.String(), nil
}
