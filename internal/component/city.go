package component

// City — защищаемый город. Разрушенный город не восстанавливается.
type City struct {
	Pos       Position
	Destroyed bool
}
