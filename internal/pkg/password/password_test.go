package password

import "testing"

func TestHashVerify_Roundtrip(t *testing.T) {
	hash, err := Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatalf("hash equals plaintext")
	}
	if !Verify("correct horse battery staple", hash) {
		t.Fatalf("expected password to verify against its own hash")
	}
}

func TestVerify_WrongPassword(t *testing.T) {
	hash, err := Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if Verify("not-the-password", hash) {
		t.Fatalf("wrong password verified")
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	if Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash verified")
	}
	if Verify("anything", "") {
		t.Fatalf("empty hash verified")
	}
}

func TestHash_Salted(t *testing.T) {
	h1, err := Hash("same input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	h2, err := Hash("same input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected distinct salts to produce distinct hashes")
	}
}
