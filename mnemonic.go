package bip39

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"

	"github.com/kklash/bip39/wordlist"
)

// ErrInvalidEntropyLength is returned when constructing a Mnemonic from
// entropy whose length cannot be encoded as a mnemonic sentence.
var ErrInvalidEntropyLength = errors.New("entropy is not a valid length for mnemonic encoding")

// Mnemonic represents the entropy payload of a mnemonic sentence.
//
// A Mnemonic is rooted in its raw entropy bytes; the sentence, word indices
// and checksum are all derived from that entropy on demand. Mnemonics are
// immutable once constructed and safe for concurrent use.
//
// Construct a Mnemonic with New, NewRandom or Parse. The zero value is not
// usable.
type Mnemonic struct {
	entropy []byte
	layout  layout
}

// New constructs a Mnemonic from the given entropy, which must be exactly
// 16, 20, 24, 28 or 32 bytes long. Returns ErrInvalidEntropyLength for any
// other length.
//
// The entropy slice is copied; the caller keeps ownership of its input.
func New(entropy []byte) (*Mnemonic, error) {
	layout, ok := layoutByEntropyBits(len(entropy) * 8)
	if !ok {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidEntropyLength, len(entropy))
	}

	mnemonic := &Mnemonic{
		entropy: make([]byte, len(entropy)),
		layout:  layout,
	}
	copy(mnemonic.entropy, entropy)
	return mnemonic, nil
}

// NewRandom generates a Mnemonic with the maximum 256 bits of entropy,
// read from the operating system's CSPRNG. The resulting mnemonic sentence
// is 24 words long.
func NewRandom() (*Mnemonic, error) {
	entropy, err := GenerateEntropy(256)
	if err != nil {
		return nil, err
	}
	return New(entropy)
}

// GenerateEntropy reads entropy of the given bit strength from the
// operating system's CSPRNG. The strength must be one of 128, 160, 192,
// 224 or 256; any other value returns ErrInvalidEntropyLength.
func GenerateEntropy(bits int) ([]byte, error) {
	if _, ok := layoutByEntropyBits(bits); !ok {
		return nil, fmt.Errorf("%w: got %d bits", ErrInvalidEntropyLength, bits)
	}

	entropy := make([]byte, bits/8)
	if _, err := rand.Read(entropy); err != nil {
		return nil, fmt.Errorf("failed to generate %d bits of secure random entropy: %w", bits, err)
	}
	return entropy, nil
}

// checksum returns the leading bits of SHA256(entropy), right-aligned in a
// single byte. Mnemonic checksums are at most 8 bits long, so they always
// fit within the first byte of the digest.
func checksum(entropy []byte, bits int) byte {
	digest := sha256.Sum256(entropy)
	return digest[0] >> (8 - bits)
}

// Entropy returns a copy of the mnemonic's raw entropy bytes.
func (m *Mnemonic) Entropy() []byte {
	entropy := make([]byte, len(m.entropy))
	copy(entropy, m.entropy)
	return entropy
}

// Checksum returns the mnemonic's checksum: the leading ENT/32 bits of
// SHA256(entropy), right-aligned in the returned byte, where ENT is the
// entropy size in bits. The checksum is recomputed on every call and is
// never stored.
func (m *Mnemonic) Checksum() byte {
	return checksum(m.entropy, m.layout.checksumBits)
}

// ChecksumBits returns the number of meaningful low bits in the byte
// returned by Checksum: 4, 5, 6, 7 or 8 depending on the entropy size.
func (m *Mnemonic) ChecksumBits() int {
	return m.layout.checksumBits
}

// WordCount returns the number of words in the mnemonic's sentence form:
// 12, 15, 18, 21 or 24 depending on the entropy size.
func (m *Mnemonic) WordCount() int {
	return m.layout.wordCount
}

// packed returns the entropy bytes with the checksum bits appended,
// forming the bit sequence which is sliced into word indices.
func (m *Mnemonic) packed() []byte {
	packed := make([]byte, m.layout.packedBytes())
	copy(packed, m.entropy)
	writeBits(packed, m.layout.entropyBits, m.layout.checksumBits, uint16(m.Checksum()))
	return packed
}

// Indices returns the mnemonic's word indices: consecutive 11-bit
// big-endian groups of the entropy ‖ checksum bit sequence. Every index is
// less than wordlist.Size.
func (m *Mnemonic) Indices() []uint16 {
	packed := m.packed()
	totalBits := m.layout.entropyBits + m.layout.checksumBits

	indices := make([]uint16, 0, m.layout.wordCount)
	for offset := 0; offset+wordlist.BitsPerWord <= totalBits; offset += wordlist.BitsPerWord {
		indices = append(indices, readBits(packed, offset, wordlist.BitsPerWord))
	}
	return indices
}

// Words returns the mnemonic's words in the given language, in sentence
// order.
//
// Panics if the number of encoded indices disagrees with the mnemonic's
// expected word count, which would mean the encoding itself is broken.
func (m *Mnemonic) Words(lang wordlist.Language) []string {
	indices := m.Indices()
	if len(indices) != m.layout.wordCount {
		panic(fmt.Sprintf(
			"mnemonic encoding produced %d word indices, expected %d",
			len(indices), m.layout.wordCount,
		))
	}

	words := make([]string, len(indices))
	for i, index := range indices {
		words[i] = lang.Word(index)
	}
	return words
}

// Sentence returns the full mnemonic sentence in the given language: the
// mnemonic's words joined with the language's separator.
func (m *Mnemonic) Sentence(lang wordlist.Language) string {
	return strings.Join(m.Words(lang), lang.Separator())
}
