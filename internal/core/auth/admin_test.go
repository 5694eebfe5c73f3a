package auth

import "testing"

func TestAdminGate_Allow(t *testing.T) {
	t.Parallel()

	g := NewAdminGate("s3cret-token")

	if !g.Allow("s3cret-token") {
		t.Fatalf("expected matching token to be allowed")
	}
	if g.Allow("wrong") {
		t.Fatalf("expected mismatching token to be denied")
	}
	if g.Allow("s3cret-token ") {
		t.Fatalf("expected token with trailing space to be denied")
	}
	if g.Allow("") {
		t.Fatalf("expected empty token to be denied")
	}
}

func TestAdminGate_UnconfiguredSecretDeniesAll(t *testing.T) {
	t.Parallel()

	g := NewAdminGate("")
	if g.Allow("") || g.Allow("anything") {
		t.Fatalf("gate without a secret must deny every token")
	}
}
