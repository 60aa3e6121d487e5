package bip39

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"golang.org/x/text/unicode/norm"

	"github.com/kklash/bip39/wordlist"
)

// seedVectors pins seed derivation against the reference test vectors.
var seedVectors = []struct {
	entropyHex string
	passphrase string
	seedHex    string
}{
	{
		"00000000000000000000000000000000",
		"TREZOR",
		"c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04",
	},
	{
		"00000000000000000000000000000000",
		"",
		"5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4",
	},
	{
		"77c2b00716cec7213839159e404db50d",
		"TREZOR",
		"b5b6d0127db1a9d2226af0c3346031d77af31e918dba64287a1b44b8ebf63cdd52676f672a290aae502472cf2d602c051f3e6f18055e84e4c43897fc4e51a6ff",
	},
	{
		"f585c11aec520db57dd353c69554b21a89b20fb0650966fa0a9d6f74fd989d8f",
		"TREZOR",
		"01f5bced59dec48e362f2c45b5de68b9fd6c92c6634f44d6d40aab69056506f0e35524a518034ddc1192e1dacd32c1ed3eaa3c3b131c88ed8e7e54c49a5d0998",
	},
}

func TestSeedVectors(t *testing.T) {
	for _, vector := range seedVectors {
		entropy, err := hex.DecodeString(vector.entropyHex)
		if err != nil {
			t.Fatalf("failed to decode entropy hex: %s", err)
		}
		mnemonic, err := New(entropy)
		if err != nil {
			t.Fatalf("failed to construct mnemonic: %s", err)
		}

		seed := mnemonic.Seed(vector.passphrase)
		if actual := hex.EncodeToString(seed); actual != vector.seedHex {
			t.Fatalf(
				"seed does not match for entropy %s passphrase %q\nWanted %s\nGot    %s",
				vector.entropyHex, vector.passphrase, vector.seedHex, actual,
			)
		}
	}
}

func TestSeedProperties(t *testing.T) {
	for _, size := range []int{16, 20, 24, 28, 32} {
		entropy, err := GenerateEntropy(size * 8)
		if err != nil {
			t.Fatalf("failed to generate entropy: %s", err)
		}
		mnemonic, err := New(entropy)
		if err != nil {
			t.Fatalf("failed to construct mnemonic: %s", err)
		}

		seed := mnemonic.Seed("")
		if len(seed) != SeedSize {
			t.Fatalf("wrong seed size for %d-byte entropy\nWanted %d\nGot    %d", size, SeedSize, len(seed))
		}
		if !bytes.Equal(seed, mnemonic.Seed("")) {
			t.Fatalf("repeated seed derivation disagrees for %d-byte entropy", size)
		}
		if bytes.Equal(seed, mnemonic.Seed("passphrase")) {
			t.Fatalf("passphrase did not change the derived seed for %d-byte entropy", size)
		}

		fromSentence := SeedFromSentence(mnemonic.Sentence(wordlist.English), "")
		if !bytes.Equal(seed, fromSentence) {
			t.Fatalf(
				"Seed and SeedFromSentence disagree for %d-byte entropy\nWanted %X\nGot    %X",
				size, seed, fromSentence,
			)
		}
	}
}

func TestSeedFromSentenceNormalization(t *testing.T) {
	mnemonic, err := NewRandom()
	if err != nil {
		t.Fatalf("failed to generate random mnemonic: %s", err)
	}

	// The ideographic-space, ASCII-space and NFC-composed renderings of a
	// Japanese sentence are all the same mnemonic, and NFKD normalization
	// must map them to the same seed.
	ideographic := mnemonic.Sentence(wordlist.Japanese)
	ascii := strings.Join(mnemonic.Words(wordlist.Japanese), " ")
	composed := norm.NFC.String(ideographic)

	expected := SeedFromSentence(ascii, "pass")
	for _, sentence := range []string{ideographic, composed} {
		if seed := SeedFromSentence(sentence, "pass"); !bytes.Equal(seed, expected) {
			t.Fatalf(
				"seed derivation is sensitive to sentence normalization\nWanted %X\nGot    %X",
				expected, seed,
			)
		}
	}
}
