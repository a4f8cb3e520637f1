package crypto

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-secret-share/models"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("no entropy")
}

func testKey(t *testing.T, k KeyChain, password string) []byte {
	t.Helper()
	km, err := k.NewKeyMaterial(password)
	if err != nil {
		t.Fatalf("NewKeyMaterial error: %v", err)
	}
	return k.DeriveEffectiveKey(km, password)
}

func TestNewKeyMaterial_LengthAndAlphabet(t *testing.T) {
	k := NewKeyChain(DerivationConcat)

	km, err := k.NewKeyMaterial("")
	if err != nil {
		t.Fatalf("NewKeyMaterial error: %v", err)
	}
	if len(km) != KeySize {
		t.Fatalf("key material length = %d, want %d", len(km), KeySize)
	}
	for _, c := range km {
		if !strings.ContainsRune(keyAlphabet, c) {
			t.Fatalf("unexpected character %q in key material", c)
		}
	}
}

func TestNewKeyMaterial_SizedForPassword(t *testing.T) {
	k := NewKeyChain(DerivationConcat)
	password := "s3cret-Password"

	km, err := k.NewKeyMaterial(password)
	if err != nil {
		t.Fatalf("NewKeyMaterial error: %v", err)
	}
	if len(km)+len(password) != KeySize {
		t.Fatalf("key material + password = %d bytes, want %d", len(km)+len(password), KeySize)
	}
}

func TestNewKeyMaterial_Argon2idIsAlwaysFullLength(t *testing.T) {
	k := NewKeyChain(DerivationArgon2id)

	km, err := k.NewKeyMaterial("a-long-password-of-20")
	if err != nil {
		t.Fatalf("NewKeyMaterial error: %v", err)
	}
	if len(km) != KeySize {
		t.Fatalf("key material length = %d, want %d", len(km), KeySize)
	}
}

func TestNewKeyMaterial_Randomness(t *testing.T) {
	k := NewKeyChain(DerivationConcat)

	a, _ := k.NewKeyMaterial("")
	b, _ := k.NewKeyMaterial("")
	if a == b {
		t.Fatalf("expected two key materials to differ")
	}
}

func TestNewKeyMaterial_PasswordTooLong(t *testing.T) {
	k := NewKeyChain(DerivationConcat)

	_, err := k.NewKeyMaterial(strings.Repeat("x", KeySize))
	if !errors.Is(err, ErrPasswordTooLong) {
		t.Fatalf("expected ErrPasswordTooLong, got %v", err)
	}
}

func TestNewKeyMaterial_EntropyUnavailable(t *testing.T) {
	k := newKeyChain(DerivationConcat, failingReader{})

	_, err := k.NewKeyMaterial("")
	if !errors.Is(err, ErrEntropyUnavailable) {
		t.Fatalf("expected ErrEntropyUnavailable, got %v", err)
	}
}

func TestDeriveEffectiveKey_Concatenates(t *testing.T) {
	k := NewKeyChain(DerivationConcat)

	got := k.DeriveEffectiveKey("abc", "XYZ")
	if string(got) != "abcXYZ" {
		t.Fatalf("effective key = %q, want %q", got, "abcXYZ")
	}

	alone := k.DeriveEffectiveKey("abc", "")
	if string(alone) != "abc" {
		t.Fatalf("effective key without password = %q, want key material only", alone)
	}
}

func TestSealPayload_RoundTrip(t *testing.T) {
	k := NewKeyChain(DerivationConcat)
	key := testKey(t, k, "pa55word!")
	archive := []byte("PK\x03\x04 fake zip bytes")

	payload, err := k.SealPayload(context.Background(), "the secret", "a title", archive, key)
	if err != nil {
		t.Fatalf("SealPayload error: %v", err)
	}

	text, err := k.Open(payload.Text, key)
	if err != nil {
		t.Fatalf("Open text error: %v", err)
	}
	if string(text) != "the secret" {
		t.Fatalf("text = %q, want %q", text, "the secret")
	}

	title, err := k.Open(payload.Title, key)
	if err != nil {
		t.Fatalf("Open title error: %v", err)
	}
	if string(title) != "a title" {
		t.Fatalf("title = %q", title)
	}

	if len(payload.Files) != 1 {
		t.Fatalf("files = %d, want 1", len(payload.Files))
	}
	if payload.Files[0].Type != ArchiveMIMEType || payload.Files[0].Ext != ArchiveExt {
		t.Fatalf("unexpected file entry %+v", payload.Files[0])
	}
	content, err := k.Open(payload.Files[0].Content, key)
	if err != nil {
		t.Fatalf("Open archive error: %v", err)
	}
	if !bytes.Equal(content, archive) {
		t.Fatalf("archive content mismatch")
	}
}

func TestSealPayload_NoArchiveMeansNoFiles(t *testing.T) {
	k := NewKeyChain(DerivationConcat)
	key := testKey(t, k, "")

	payload, err := k.SealPayload(context.Background(), "text", "", nil, key)
	if err != nil {
		t.Fatalf("SealPayload error: %v", err)
	}
	if payload.Files == nil || len(payload.Files) != 0 {
		t.Fatalf("expected empty, non-nil files slice, got %#v", payload.Files)
	}
}

func TestSealPayload_EmptyTitleIsLegal(t *testing.T) {
	k := NewKeyChain(DerivationConcat)
	key := testKey(t, k, "")

	payload, err := k.SealPayload(context.Background(), "text", "", nil, key)
	if err != nil {
		t.Fatalf("SealPayload error: %v", err)
	}

	title, err := k.Open(payload.Title, key)
	if err != nil {
		t.Fatalf("Open title error: %v", err)
	}
	if len(title) != 0 {
		t.Fatalf("expected empty title, got %q", title)
	}
}

func TestSealPayload_FailsFastOnEntropyError(t *testing.T) {
	k := newKeyChain(DerivationConcat, failingReader{})
	key := bytes.Repeat([]byte{'k'}, KeySize)

	payload, err := k.SealPayload(context.Background(), "text", "title", []byte("zip"), key)
	if !errors.Is(err, ErrEntropyUnavailable) {
		t.Fatalf("expected ErrEntropyUnavailable, got %v", err)
	}
	if payload.Text != "" || payload.Title != "" || len(payload.Files) != 0 {
		t.Fatalf("expected no partial payload, got %+v", payload)
	}
}

func TestSealPayload_RejectsWrongKeyLength(t *testing.T) {
	k := NewKeyChain(DerivationConcat)

	_, err := k.SealPayload(context.Background(), "text", "", nil, []byte("short"))
	if !errors.Is(err, ErrInvalidKeyLength) {
		t.Fatalf("expected ErrInvalidKeyLength, got %v", err)
	}
}

func TestOpen_WrongKeyFails(t *testing.T) {
	k := NewKeyChain(DerivationConcat)
	k1 := testKey(t, k, "")
	k2 := testKey(t, k, "")

	blob, err := k.Seal([]byte("payload"), k1)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	plain, err := k.Open(blob, k2)
	if !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed, got %v", err)
	}
	if plain != nil {
		t.Fatalf("expected no plaintext on failure, got %q", plain)
	}
}

func TestOpen_TamperedBlobFails(t *testing.T) {
	k := NewKeyChain(DerivationConcat)
	key := testKey(t, k, "")

	blob, err := k.Seal([]byte("payload"), key)
	if err != nil {
		t.Fatalf("Seal error: %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(string(blob))
	raw[len(raw)-1] ^= 0x01
	tampered := models.Ciphertext(base64.StdEncoding.EncodeToString(raw))

	if _, err = k.Open(tampered, key); !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestOpen_MalformedBlob(t *testing.T) {
	k := NewKeyChain(DerivationConcat)
	key := testKey(t, k, "")

	if _, err := k.Open("%%%not-base64", key); !errors.Is(err, ErrMalformedCiphertext) {
		t.Fatalf("expected ErrMalformedCiphertext, got %v", err)
	}
	if _, err := k.Open(models.Ciphertext(base64.StdEncoding.EncodeToString([]byte("short"))), key); !errors.Is(err, ErrMalformedCiphertext) {
		t.Fatalf("expected ErrMalformedCiphertext for short blob, got %v", err)
	}
}

func TestSeal_NonceRandomness(t *testing.T) {
	k := NewKeyChain(DerivationConcat)
	key := testKey(t, k, "")

	b1, _ := k.Seal([]byte("same"), key)
	b2, _ := k.Seal([]byte("same"), key)
	if b1 == b2 {
		t.Fatalf("expected different blobs for two encryptions")
	}
}

func TestArgon2id_RoundTripAndWrongPassword(t *testing.T) {
	k := newKeyChain(DerivationArgon2id, rand.Reader)
	k.argonMemory = 1024 // keep the test light

	km, err := k.NewKeyMaterial("password-1")
	if err != nil {
		t.Fatalf("NewKeyMaterial error: %v", err)
	}
	key := k.DeriveEffectiveKey(km, "password-1")

	payload, err := k.SealPayload(context.Background(), "stretched", "t", []byte("zip"), key)
	if err != nil {
		t.Fatalf("SealPayload error: %v", err)
	}

	text, err := k.Open(payload.Text, key)
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	if string(text) != "stretched" {
		t.Fatalf("text = %q", text)
	}

	wrong := k.DeriveEffectiveKey(km, "password-2")
	if _, err = k.Open(payload.Text, wrong); !errors.Is(err, ErrDecryptionFailed) {
		t.Fatalf("expected ErrDecryptionFailed, got %v", err)
	}
}

func TestParseDerivation(t *testing.T) {
	for in, want := range map[string]Derivation{"": DerivationConcat, "concat": DerivationConcat, "argon2id": DerivationArgon2id} {
		got, err := ParseDerivation(in)
		if err != nil || got != want {
			t.Fatalf("ParseDerivation(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseDerivation("scrypt"); err == nil {
		t.Fatalf("expected error for unknown derivation")
	}
}

func TestGenerateKey(t *testing.T) {
	key, err := GenerateKey(32)
	if err != nil {
		t.Fatalf("GenerateKey error: %v", err)
	}
	if len(key) != 32 {
		t.Fatalf("len = %d, want 32", len(key))
	}
	for _, c := range key {
		if !strings.ContainsRune(keyAlphabet, c) {
			t.Fatalf("unexpected character %q", c)
		}
	}
}
