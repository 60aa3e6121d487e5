package bip39

// A layout is one of the five valid mnemonic shapes. Checksum size is fixed
// at entropyBits/32, and wordCount at (entropyBits+checksumBits)/11.
type layout struct {
	entropyBits  int
	checksumBits int
	wordCount    int
}

var layouts = [5]layout{
	{entropyBits: 128, checksumBits: 4, wordCount: 12},
	{entropyBits: 160, checksumBits: 5, wordCount: 15},
	{entropyBits: 192, checksumBits: 6, wordCount: 18},
	{entropyBits: 224, checksumBits: 7, wordCount: 21},
	{entropyBits: 256, checksumBits: 8, wordCount: 24},
}

func (l layout) entropyBytes() int {
	return l.entropyBits / 8
}

func (l layout) packedBytes() int {
	return (l.entropyBits + l.checksumBits + 7) / 8
}

func layoutByEntropyBits(entropyBits int) (layout, bool) {
	for _, l := range layouts {
		if l.entropyBits == entropyBits {
			return l, true
		}
	}
	return layout{}, false
}

func layoutByWordCount(wordCount int) (layout, bool) {
	for _, l := range layouts {
		if l.wordCount == wordCount {
			return l, true
		}
	}
	return layout{}, false
}
