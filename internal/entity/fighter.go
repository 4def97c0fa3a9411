package entity

// DeathPolicy selects what happens when a fighter's HP reaches zero. The
// behavior set is closed: dispatch is an exhaustive switch, not a callback.
type DeathPolicy int

const (
	// DeathPlayer marks the player as a corpse; no further player actions
	// are meaningful afterwards.
	DeathPlayer DeathPolicy = iota
	// DeathMonster turns the monster into a non-blocking corpse, stripping
	// its Fighter and AI components.
	DeathMonster
)

// String returns the policy name.
func (p DeathPolicy) String() string {
	switch p {
	case DeathPlayer:
		return "player"
	case DeathMonster:
		return "monster"
	default:
		return "unknown"
	}
}

// Fighter is the optional combat component. HP may go negative transiently
// before death processing runs.
type Fighter struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
	OnDeath DeathPolicy
}

// AIKind tags an entity as autonomous and selects its decision policy.
// Basic chase-or-attack is the only policy in the core; new behaviors are
// new values here.
type AIKind int

const (
	// AIBasic chases the player while visible and attacks when adjacent.
	AIBasic AIKind = iota
)
