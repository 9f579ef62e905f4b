package pipeline

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/PolarWolf314/rsatrace/internal/codec"
	kerrors "github.com/PolarWolf314/rsatrace/internal/errors"
	"github.com/PolarWolf314/rsatrace/internal/keys"
)

// demoKey is the n=77, e=7, d=43 keypair from the fixed demo keys.
var demoKey = keys.KeyPair{P: 11, Q: 7, N: 77, Phi: 60, E: 7, D: 43}

func TestTransformHI(t *testing.T) {
	msg := Transform("HI", demoKey)

	if msg.FilteredText != "HI" {
		t.Errorf("FilteredText = %q, want %q", msg.FilteredText, "HI")
	}
	if len(msg.EncSteps) != 2 || len(msg.DecSteps) != 2 {
		t.Fatalf("got %d encrypt and %d decrypt steps, want 2 and 2", len(msg.EncSteps), len(msg.DecSteps))
	}

	wantEnc := []EncryptStep{
		{Index: 1, SourceChar: "H", SourceNum: 7, ResultCipher: 28, Trace: "(7^7) mod 77 = 28"},
		{Index: 2, SourceChar: "I", SourceNum: 8, ResultCipher: 57, Trace: "(8^7) mod 77 = 57"},
	}
	for i, want := range wantEnc {
		if msg.EncSteps[i] != want {
			t.Errorf("EncSteps[%d] = %+v, want %+v", i, msg.EncSteps[i], want)
		}
	}

	wantDec := []DecryptStep{
		{Index: 1, CipherNum: 28, RecoveredNum: 7, Trace: "(28^43) mod 77 = 7"},
		{Index: 2, CipherNum: 57, RecoveredNum: 8, Trace: "(57^43) mod 77 = 8"},
	}
	for i, want := range wantDec {
		if msg.DecSteps[i] != want {
			t.Errorf("DecSteps[%d] = %+v, want %+v", i, msg.DecSteps[i], want)
		}
	}

	assertInts(t, "PlainNums", msg.PlainNums, []int64{7, 8})
	assertInts(t, "CipherNums", msg.CipherNums, []int64{28, 57})
	assertInts(t, "DecryptedNums", msg.DecryptedNums, []int64{7, 8})

	if msg.DecryptedText != "HI" {
		t.Errorf("DecryptedText = %q, want %q", msg.DecryptedText, "HI")
	}
	if !msg.RoundTripOK() {
		t.Error("RoundTripOK() = false, want true")
	}
}

func TestTransformFiltersInput(t *testing.T) {
	msg := Transform("Hi, Bob! 123", demoKey)

	if msg.FilteredText != "HIBOB" {
		t.Errorf("FilteredText = %q, want %q", msg.FilteredText, "HIBOB")
	}
	if msg.Plaintext != "Hi, Bob! 123" {
		t.Errorf("Plaintext = %q, want the raw input", msg.Plaintext)
	}
	if !msg.WasFiltered() {
		t.Error("WasFiltered() = false, want true")
	}
	if len(msg.EncSteps) != 5 {
		t.Errorf("got %d encrypt steps, want 5", len(msg.EncSteps))
	}
	if !msg.RoundTripOK() {
		t.Errorf("round trip failed: %q != %q", msg.DecryptedText, msg.FilteredText)
	}
}

func TestWasFilteredIgnoresCase(t *testing.T) {
	msg := Transform("hello", demoKey)
	if msg.WasFiltered() {
		t.Error("WasFiltered() = true for a lowercase-only input, want false")
	}
}

func TestTransformEmpty(t *testing.T) {
	for _, in := range []string{"", "123 !?"} {
		msg := Transform(in, demoKey)
		if msg.FilteredText != "" || msg.DecryptedText != "" {
			t.Errorf("Transform(%q) texts = %q/%q, want empty", in, msg.FilteredText, msg.DecryptedText)
		}
		if len(msg.EncSteps) != 0 || len(msg.DecSteps) != 0 {
			t.Errorf("Transform(%q) produced steps", in)
		}
		if len(msg.PlainNums) != 0 || len(msg.CipherNums) != 0 || len(msg.DecryptedNums) != 0 {
			t.Errorf("Transform(%q) produced numbers", in)
		}
		if !msg.RoundTripOK() {
			t.Errorf("Transform(%q).RoundTripOK() = false, want true", in)
		}
	}
}

func TestTransformAlphabetExtremes(t *testing.T) {
	alice, bob := keys.Fixed()

	for _, k := range []keys.KeyPair{alice, bob} {
		msg := Transform("AZ", k)
		assertInts(t, "PlainNums", msg.PlainNums, []int64{0, 25})
		for _, c := range msg.CipherNums {
			if c < 0 || c >= k.N {
				t.Errorf("n=%d: cipher %d outside [0, n)", k.N, c)
			}
		}
		assertInts(t, "DecryptedNums", msg.DecryptedNums, []int64{0, 25})
		if msg.DecryptedText != "AZ" {
			t.Errorf("n=%d: DecryptedText = %q, want %q", k.N, msg.DecryptedText, "AZ")
		}
	}
}

func TestTransformRoundTripFixedKeys(t *testing.T) {
	alice, bob := keys.Fixed()
	alphabet := "THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG"

	for _, k := range []keys.KeyPair{alice, bob} {
		msg := Transform(alphabet, k)
		if !msg.RoundTripOK() {
			t.Errorf("n=%d: %q != %q", k.N, msg.DecryptedText, msg.FilteredText)
		}
	}
}

func TestTransformRoundTripRandomKeys(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ ,.!0123456789")

	for i := 0; i < 100; i++ {
		k, err := keys.Generate(rng, keys.DefaultPrimeLow, keys.DefaultPrimeHigh)
		if err != nil {
			t.Fatalf("Generate returned error: %v", err)
		}

		text := make([]rune, rng.IntN(40))
		for j := range text {
			text[j] = letters[rng.IntN(len(letters))]
		}

		msg := Transform(string(text), k)
		if !msg.RoundTripOK() {
			t.Fatalf("keys %+v: %q decrypted to %q", k, msg.FilteredText, msg.DecryptedText)
		}
		if msg.FilteredText != codec.Filter(string(text)) {
			t.Fatalf("FilteredText = %q, want %q", msg.FilteredText, codec.Filter(string(text)))
		}
	}
}

func TestTransformKeyMismatchUsesFallback(t *testing.T) {
	broken := demoKey
	broken.D = 1

	msg := Transform("H", broken)
	if msg.DecryptedText != string(codec.Fallback) {
		t.Errorf("DecryptedText = %q, want %q", msg.DecryptedText, string(codec.Fallback))
	}
	if msg.RoundTripOK() {
		t.Error("RoundTripOK() = true with a mismatched private key, want false")
	}
}

func TestTransformDoesNotMutateKeys(t *testing.T) {
	k := demoKey
	Transform("HELLO", k)
	if k != demoKey {
		t.Errorf("keys changed to %+v", k)
	}
}

func TestParseParty(t *testing.T) {
	tests := []struct {
		in   string
		want Party
	}{
		{"alice", Alice},
		{"Alice", Alice},
		{" BOB ", Bob},
	}
	for _, tt := range tests {
		got, err := ParseParty(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseParty(%q) = (%q, %v), want (%q, nil)", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseParty("eve"); !errors.Is(err, kerrors.ErrUnknownParty) {
		t.Errorf("ParseParty(\"eve\") error = %v, want ErrUnknownParty", err)
	}
}

func TestPartyOtherAndTitle(t *testing.T) {
	if Alice.Other() != Bob || Bob.Other() != Alice {
		t.Error("Other() does not swap alice and bob")
	}
	if Alice.Title() != "Alice" || Bob.Title() != "Bob" {
		t.Errorf("Title() = %q/%q, want Alice/Bob", Alice.Title(), Bob.Title())
	}
}

func assertInts(t *testing.T, name string, got, want []int64) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("%s = %v, want %v", name, got, want)
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s = %v, want %v", name, got, want)
			return
		}
	}
}
