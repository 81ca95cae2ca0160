package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestMintAndParseTokens(t *testing.T) {
	secret := "test-secret"
	pair, err := MintTokens(42, "dev@example.com", secret, 15*time.Minute, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("MintTokens() error = %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("MintTokens() returned empty tokens")
	}

	claims, err := ParseClaims(pair.AccessToken, secret)
	if err != nil {
		t.Fatalf("ParseClaims() error = %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Email != "dev@example.com" {
		t.Errorf("Email = %q, want dev@example.com", claims.Email)
	}
}

func TestParseClaimsWrongSecret(t *testing.T) {
	pair, err := MintTokens(1, "a@b.com", "secret-a", time.Minute, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseClaims(pair.AccessToken, "secret-b"); err == nil {
		t.Error("ParseClaims() should reject token signed with a different secret")
	}
}

func TestParseClaimsExpired(t *testing.T) {
	pair, err := MintTokens(1, "a@b.com", "secret", -time.Minute, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseClaims(pair.AccessToken, "secret"); err == nil {
		t.Error("ParseClaims() should reject an expired token")
	}
}

func TestParseClaimsRejectsUnsignedToken(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: 1, Email: "a@b.com"})
	s, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseClaims(s, "secret"); err == nil {
		t.Error("ParseClaims() should reject a token with no signature")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter22", 10)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "hunter22" {
		t.Error("hash should not equal the plaintext")
	}
	if !CheckPassword(hash, "hunter22") {
		t.Error("CheckPassword() should accept the correct password")
	}
	if CheckPassword(hash, "hunter23") {
		t.Error("CheckPassword() should reject a wrong password")
	}
}
