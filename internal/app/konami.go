package app

import "github.com/hajimehoshi/ebiten/v2"

// konamiSequence is the classic code, mapped to the keyboard.
var konamiSequence = []ebiten.Key{
	ebiten.KeyArrowUp,
	ebiten.KeyArrowUp,
	ebiten.KeyArrowDown,
	ebiten.KeyArrowDown,
	ebiten.KeyArrowLeft,
	ebiten.KeyArrowRight,
	ebiten.KeyArrowLeft,
	ebiten.KeyArrowRight,
	ebiten.KeyB,
	ebiten.KeyA,
}

// konamiFallback[n] is the length of the longest proper suffix of the first
// n sequence keys that is again a prefix of the sequence.
var konamiFallback = fallbackTable(konamiSequence)

func fallbackTable(seq []ebiten.Key) []int {
	fall := make([]int, len(seq)+1)
	for i := 1; i < len(seq); i++ {
		j := fall[i]
		for j > 0 && seq[i] != seq[j] {
			j = fall[j]
		}
		if seq[i] == seq[j] {
			j++
		}
		fall[i+1] = j
	}
	return fall
}

// konami tracks progress through the sequence across key presses.
type konami struct {
	idx int
}

// observe feeds one key press and reports whether it completed the code. On a
// wrong key the matched run shrinks to its longest tail that still opens the
// sequence, so after up-up-up two ups of progress remain.
func (k *konami) observe(key ebiten.Key) bool {
	for k.idx > 0 && key != konamiSequence[k.idx] {
		k.idx = konamiFallback[k.idx]
	}
	if key == konamiSequence[k.idx] {
		k.idx++
	}
	if k.idx == len(konamiSequence) {
		k.idx = 0
		return true
	}
	return false
}
