// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package credential

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return isUpper(r) || isLower(r)
}

// isWord matches the ASCII word class: letters, digits and underscore.
func isWord(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '_'
}

// isSpecial matches any non-word character, plus underscore.
func isSpecial(r rune) bool {
	return !isWord(r) || r == '_'
}

func isUsernameChar(r rune) bool {
	return isLetter(r) || isDigit(r) || r == '.' || r == '_' || r == '-'
}

func allRunes(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if !pred(r) {
			return false
		}
	}
	return true
}

func anyRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}
	return false
}
