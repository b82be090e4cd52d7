//go:build unit

package pix

import (
	"encoding/base64"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_PayloadShape(t *testing.T) {
	t.Parallel()

	p, err := Generate("Livraria Central", "loja@example.com", 12990, "order 42")
	require.NoError(t, err)

	payload := p.String()
	assert.True(t, strings.HasPrefix(payload, "000201"), "payload format indicator first")
	assert.Contains(t, payload, "br.gov.bcb.pix")
	assert.Contains(t, payload, "loja@example.com")
	assert.Contains(t, payload, "5303986")
	assert.Contains(t, payload, "5406129.90", "amount in major units with field length")
	assert.Contains(t, payload, "5802BR")
	assert.Contains(t, payload, "6304")

	// CRC is the last four chars and verifies over everything before it.
	crc := payload[len(payload)-4:]
	body := payload[:len(payload)-4]
	assert.Equal(t, payloadCRC(body), crc)
}

func payloadCRC(body string) string {
	const hexDigits = "0123456789ABCDEF"
	v := crc16(body)
	return string([]byte{
		hexDigits[v>>12&0xF], hexDigits[v>>8&0xF], hexDigits[v>>4&0xF], hexDigits[v&0xF],
	})
}

func TestGenerate_AmountFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		minor int64
		want  string
	}{
		{"whole reais", 5000, "50.00"},
		{"with centavos", 12345, "123.45"},
		{"below one real", 99, "0.99"},
		{"single centavo", 1, "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatAmount(tt.minor))
		})
	}
}

func TestGenerate_RejectsNonPositiveAmount(t *testing.T) {
	t.Parallel()

	_, err := Generate("Shop", "loja@example.com", 0, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = Generate("Shop", "loja@example.com", -100, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestGenerate_TruncatesLongName(t *testing.T) {
	t.Parallel()

	longName := strings.Repeat("A", 60)
	p, err := Generate(longName, "loja@example.com", 100, "")
	require.NoError(t, err)

	assert.Contains(t, p.String(), "5925"+strings.Repeat("A", 25))
	assert.NotContains(t, p.String(), strings.Repeat("A", 26))
}

func TestGenerate_TruncatesAccentedNameOnRuneBoundary(t *testing.T) {
	t.Parallel()

	// 13 two-byte runes: 26 bytes, so the 25-byte cap lands mid-rune.
	name := strings.Repeat("é", 13)
	p, err := Generate(name, "loja@example.com", 100, "")
	require.NoError(t, err)

	payload := p.String()
	assert.True(t, utf8.ValidString(payload), "payload must stay valid UTF-8")
	assert.Contains(t, payload, "5924"+strings.Repeat("é", 12))
}

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		want    string
		wantErr bool
	}{
		{"email", "Loja@Example.com", "loja@example.com", false},
		{"evp uuid", "123E4567-E89B-12D3-A456-426614174000", "123e4567-e89b-12d3-a456-426614174000", false},
		{"phone", "+5511987654321", "+5511987654321", false},
		{"cpf", "11122233344", "11122233344", false},
		{"cnpj", "11222333000181", "11222333000181", false},
		{"empty", "", "", true},
		{"random word", "not-a-key", "", true},
		{"short digits", "12345", "", true},
		{"phone too short", "+1234", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := normalizeKey(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPayment_QRCodeBase64(t *testing.T) {
	t.Parallel()

	p, err := Generate("Shop", "loja@example.com", 100, "")
	require.NoError(t, err)

	b64, err := p.ToBase64()
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(b64)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), raw[:4], "rendered image is a PNG")
}
