package service

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMACSignatureService_Sign(t *testing.T) {
	svc := NewHMACSignatureService()
	body := []byte(`{"event":"charge.successful","data":{"reference":"abc"}}`)

	mac := hmac.New(sha512.New, []byte("whsec"))
	mac.Write(body)
	want := hex.EncodeToString(mac.Sum(nil))

	assert.Equal(t, want, svc.Sign("whsec", body))
	assert.Len(t, svc.Sign("whsec", body), 128)
}

func TestHMACSignatureService_Verify(t *testing.T) {
	svc := NewHMACSignatureService()
	body := []byte(`{"data":{"status":"success"}}`)
	sig := svc.Sign("whsec", body)

	tests := []struct {
		name   string
		secret string
		body   []byte
		sig    string
		want   bool
	}{
		{"valid", "whsec", body, sig, true},
		{"uppercase hex", "whsec", body, strings.ToUpper(sig), true},
		{"wrong secret", "other", body, sig, false},
		{"tampered body", "whsec", []byte(`{"data":{"status":"failed"}}`), sig, false},
		{"empty signature", "whsec", body, "", false},
		{"not hex", "whsec", body, "zz" + sig[2:], false},
		{"truncated", "whsec", body, sig[:64], false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Verify(tt.secret, tt.body, tt.sig))
		})
	}
}
