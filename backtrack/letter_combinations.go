package backtrack

import "fmt"

// keypad maps phone digits to their letters.
var keypad = map[byte]string{
	'2': "abc", '3': "def", '4': "ghi", '5': "jkl",
	'6': "mno", '7': "pqrs", '8': "tuv", '9': "wxyz",
}

// LetterSnapshot is the state of a keypad expansion.
type LetterSnapshot struct {
	Digits string // full input
	Path   string // letters chosen so far, one per consumed digit
}

func (s LetterSnapshot) String() string { return fmt.Sprintf("%q", s.Path) }

type letterCombinations struct {
	digits string
	path   []byte
}

// LetterCombinations returns the search space of all letter strings the
// phone-keypad digits can spell. Empty input is an empty search space.
// A digit without letters ('0', '1') is a dead end and gets rejected.
func LetterCombinations(digits string) Space[LetterSnapshot] {
	return &letterCombinations{digits: digits, path: make([]byte, 0, len(digits))}
}

func (l *letterCombinations) Goal() bool {
	return len(l.digits) > 0 && len(l.path) == len(l.digits)
}

// Bound prunes when the next digit has no letters to choose from.
func (l *letterCombinations) Bound() bool {
	return len(l.path) < len(l.digits) && keypad[l.digits[len(l.path)]] == ""
}

func (l *letterCombinations) Branches() []Branch {
	if len(l.path) >= len(l.digits) {
		return nil
	}
	d := l.digits[len(l.path)]
	letters := keypad[d]
	out := make([]Branch, 0, len(letters))
	for i := 0; i < len(letters); i++ {
		out = append(out, Branch{Index: i, Label: fmt.Sprintf("%c → %c", d, letters[i])})
	}

	return out
}

func (l *letterCombinations) Extend(b Branch) {
	l.path = append(l.path, keypad[l.digits[len(l.path)]][b.Index])
}

func (l *letterCombinations) Retract(Branch) { l.path = l.path[:len(l.path)-1] }

// Capture converts the path to a string, which already copies it.
func (l *letterCombinations) Capture() LetterSnapshot {
	return LetterSnapshot{Digits: l.digits, Path: string(l.path)}
}

func (l *letterCombinations) Clone(s LetterSnapshot) LetterSnapshot { return s }
