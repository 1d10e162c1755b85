// Package key defines keyboard events and the notation used to name
// them in keymaps and configuration.
//
// Notation is a run of tokens with no separators. A plain printable
// character stands for itself, with an uppercase letter carrying Shift:
//
//	dd  gg  ZZ  :
//
// Angle brackets group one special key, function key, or modifier
// chord:
//
//	<ESC> <CR> <TAB> <S-TAB> <BS> <DEL> <UP> <DOWN> <LEFT> <RIGHT>
//	<HOME> <END> <PGUP> <PGDN> <F1>..<F12> <C-x> <M-x>
//
// Parsing stops at the first whitespace character. The '^' character
// is reserved and rejected everywhere.
package key
