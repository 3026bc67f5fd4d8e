package postfix

import "github.com/DjordjeVuckovic/polish-calc/internal/token"

type stackEntry struct {
	sign token.Sign
	pos  int // index of the sign in the input expression
}

// operatorStack lives for a single Convert call.
type operatorStack struct {
	entries []stackEntry
}

func (s *operatorStack) push(sign token.Sign, pos int) {
	s.entries = append(s.entries, stackEntry{sign: sign, pos: pos})
}

func (s *operatorStack) peek() (stackEntry, bool) {
	if len(s.entries) == 0 {
		return stackEntry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

func (s *operatorStack) pop() (stackEntry, bool) {
	top, ok := s.peek()
	if ok {
		s.entries = s.entries[:len(s.entries)-1]
	}
	return top, ok
}
