// Package pix generates static Pix charges in the BR Code (EMV merchant
// presented mode) format: a copy-paste payload string plus a scannable QR
// rendering. The payload is a pure function of payee identity and amount;
// nothing here is persisted.
package pix

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"minibook/internal/pkg/errs"

	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
)

var (
	ErrInvalidKey    = errors.New("pix key is structurally invalid")
	ErrInvalidAmount = errors.New("pix amount must be positive")
	ErrEncoding      = errors.New("pix payload encoding failed")
)

const (
	maxNameLen = 25
	maxCityLen = 15

	// Merchant account info (field 26) caps the space left for the
	// free-text description once GUI and key are accounted for.
	maxFieldLen = 99

	pixGUI      = "br.gov.bcb.pix"
	currencyBRL = "986"
	defaultCity = "NONE"
	staticTxID  = "***"
)

// Payment is an opaque, generated payment reference. String is the
// copy-paste form; QRCodePNG / ToBase64 are the scannable form.
type Payment struct {
	payload string
}

func (p *Payment) String() string {
	return p.payload
}

func (p *Payment) QRCodePNG() ([]byte, error) {
	png, err := qrcode.Encode(p.payload, qrcode.Medium, 512)
	if err != nil {
		return nil, errs.Mark(err, ErrEncoding)
	}
	return png, nil
}

func (p *Payment) ToBase64() (string, error) {
	png, err := p.QRCodePNG()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(png), nil
}

// Generate builds a static charge for the given payee. amountMinor is in
// minor currency units (centavos) and is encoded as a major-unit decimal.
func Generate(payeeName, payeeKey string, amountMinor int64, description string) (*Payment, error) {
	key, err := normalizeKey(payeeKey)
	if err != nil {
		return nil, err
	}
	if amountMinor <= 0 {
		return nil, ErrInvalidAmount
	}

	merchantInfo, err := buildMerchantInfo(key, description)
	if err != nil {
		return nil, err
	}

	fields := []struct {
		id    string
		value string
	}{
		{"00", "01"}, // payload format indicator
		{"26", merchantInfo},
		{"52", "0000"}, // merchant category: unspecified
		{"53", currencyBRL},
		{"54", formatAmount(amountMinor)},
		{"58", "BR"},
		{"59", truncate(payeeName, maxNameLen)},
		{"60", truncate(defaultCity, maxCityLen)},
	}

	var b strings.Builder
	for _, f := range fields {
		enc, err := emv(f.id, f.value)
		if err != nil {
			return nil, err
		}
		b.WriteString(enc)
	}

	txid, err := emv("05", staticTxID)
	if err != nil {
		return nil, err
	}
	additional, err := emv("62", txid)
	if err != nil {
		return nil, err
	}
	b.WriteString(additional)

	b.WriteString("6304")
	payload := b.String()
	payload += fmt.Sprintf("%04X", crc16(payload))

	return &Payment{payload: payload}, nil
}

func buildMerchantInfo(key, description string) (string, error) {
	gui, err := emv("00", pixGUI)
	if err != nil {
		return "", err
	}
	keyField, err := emv("01", key)
	if err != nil {
		return "", errs.Mark(err, ErrInvalidKey)
	}

	info := gui + keyField
	if description != "" {
		room := maxFieldLen - len(info) - 4
		if room > 0 {
			descField, err := emv("02", truncate(description, room))
			if err != nil {
				return "", err
			}
			info += descField
		}
	}
	if len(info) > maxFieldLen {
		return "", ErrEncoding
	}
	return info, nil
}

// emv encodes one TLV field: two-digit id, two-digit length, value.
func emv(id, value string) (string, error) {
	if len(value) > maxFieldLen {
		return "", ErrEncoding
	}
	return fmt.Sprintf("%s%02d%s", id, len(value), value), nil
}

func formatAmount(minor int64) string {
	return fmt.Sprintf("%d.%02d", minor/100, minor%100)
}

// normalizeKey accepts the key forms the Pix standard allows: email, EVP
// (random uuid), phone in +55 form, CPF or CNPJ digit strings.
func normalizeKey(key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", ErrInvalidKey
	}

	if strings.Contains(key, "@") && strings.Contains(key, ".") {
		return strings.ToLower(key), nil
	}
	if _, err := uuid.Parse(key); err == nil {
		return strings.ToLower(key), nil
	}
	if strings.HasPrefix(key, "+") {
		digits := key[1:]
		if len(digits) >= 11 && len(digits) <= 14 && allDigits(digits) {
			return key, nil
		}
		return "", ErrInvalidKey
	}
	if (len(key) == 11 || len(key) == 14) && allDigits(key) {
		return key, nil
	}
	return "", ErrInvalidKey
}

func allDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// truncate cuts s to at most n bytes without splitting a multibyte rune;
// payee names from the environment can carry accents that serverman's
// diacritic stripping never saw.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// crc16 is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF) over the payload
// including the trailing "6304", as the BR Code standard requires.
func crc16(s string) uint16 {
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for bit := 0; bit < 8; bit++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
