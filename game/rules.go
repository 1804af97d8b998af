package game

// Rules carries the feature flags the session layer hands to every core
// call. The zero value is the base game: no supermoves.
type Rules struct {
	// Supermove lets a blocked player replace a placed tile instead of
	// placing a new one.
	Supermove bool
	// SingleSupermove limits each player to one supermove per game. The
	// engine tracks usage; the oracle only sees the effective Supermove
	// flag for the acting player.
	SingleSupermove bool
	// SupermoveAnyPlayer also validates replacements that unblock some
	// other blocked player or team, not just the acting player.
	SupermoveAnyPlayer bool
}
