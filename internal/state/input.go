package state

import (
	"unicode"
	"unicode/utf8"
)

// DispatchKey applies one input event. Unrecognised keys are dropped.
func (s *State) DispatchKey(k Key) {
	if s.mode == ModeEnteringCode {
		s.handleCodeKey(k)
		return
	}
	s.handleNormalKey(k)
}

func (s *State) handleNormalKey(k Key) {
	switch k.Kind {
	case KeyRune:
		switch k.Rune {
		case 'q':
			s.quitRequested = true
		case 't':
			s.mode = ModeEnteringCode
		}
	case KeyUp:
		s.tasks.Previous()
	case KeyDown:
		s.tasks.Next()
	case KeyLeft:
		s.tabs.Previous()
	case KeyRight:
		s.tabs.Next()
	}
}

func (s *State) handleCodeKey(k Key) {
	switch k.Kind {
	case KeyEnter:
		if s.pendingCode == s.requiredCode {
			s.launchConfirmed = true
			s.mode = ModeNormal
		}
	case KeyBackspace, KeyDelete:
		if s.pendingCode != "" {
			_, size := utf8.DecodeLastRuneInString(s.pendingCode)
			s.pendingCode = s.pendingCode[:len(s.pendingCode)-size]
		}
	case KeyEscape:
		s.pendingCode = ""
		s.mode = ModeNormal
	case KeyRune:
		if unicode.IsPrint(k.Rune) {
			s.pendingCode += string(k.Rune)
		}
	}
}
