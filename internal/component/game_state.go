package component

// GameStatus — фаза симуляции
type GameStatus int

const (
	StatusStart GameStatus = iota
	StatusPlaying
	StatusWon
	StatusLost
	StatusRoundEnd
)

func (s GameStatus) String() string {
	switch s {
	case StatusStart:
		return "START"
	case StatusPlaying:
		return "PLAYING"
	case StatusWon:
		return "WON"
	case StatusLost:
		return "LOST"
	case StatusRoundEnd:
		return "ROUND_END"
	}
	return "UNKNOWN"
}

// IsTerminal — игра окончена (победа или поражение).
func (s GameStatus) IsTerminal() bool {
	return s == StatusWon || s == StatusLost
}
