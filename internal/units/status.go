package units

// StatusKind enumerates the closed set of status effects.
type StatusKind uint8

const (
	StatusPoison StatusKind = iota
	StatusBurn
	StatusFreeze
	StatusParalyze
	StatusCharm
	StatusSleep
	StatusStun
	StatusBless
	StatusHaste
	StatusSlow
)

// Name returns a human-readable status name.
func (k StatusKind) Name() string {
	switch k {
	case StatusPoison:
		return "poison"
	case StatusBurn:
		return "burn"
	case StatusFreeze:
		return "freeze"
	case StatusParalyze:
		return "paralyze"
	case StatusCharm:
		return "charm"
	case StatusSleep:
		return "sleep"
	case StatusStun:
		return "stun"
	case StatusBless:
		return "bless"
	case StatusHaste:
		return "haste"
	case StatusSlow:
		return "slow"
	}
	return "unknown"
}

// StatusEffect is a timed modifier attached to one unit. Magnitude is
// interpreted per kind: for damage-over-time effects it is the percentage
// of max HP lost per round.
type StatusEffect struct {
	Kind      StatusKind `json:"kind"`
	Duration  int        `json:"duration"` // Remaining rounds
	Magnitude int        `json:"magnitude"`
}

// Default magnitudes for the damage-over-time effects.
const (
	BurnMagnitude   = 10 // 10% max HP per round
	PoisonMagnitude = 5  // 5% max HP per round
)

// DamageOverTime reports whether the effect deals HP loss at round end.
func (e StatusEffect) DamageOverTime() bool {
	return e.Kind == StatusBurn || e.Kind == StatusPoison
}

// suspendsAction reports whether the effect prevents the unit from taking
// its turn while active.
func (k StatusKind) suspendsAction() bool {
	switch k {
	case StatusStun, StatusSleep, StatusParalyze, StatusFreeze:
		return true
	}
	return false
}

// AddStatus attaches an effect. Re-applying an active kind refreshes
// duration and magnitude to the stronger of the two instances; it never
// stacks two copies of the same kind.
func (u *Unit) AddStatus(e StatusEffect) {
	for i := range u.Statuses {
		if u.Statuses[i].Kind == e.Kind {
			if e.Duration > u.Statuses[i].Duration {
				u.Statuses[i].Duration = e.Duration
			}
			if e.Magnitude > u.Statuses[i].Magnitude {
				u.Statuses[i].Magnitude = e.Magnitude
			}
			return
		}
	}
	u.Statuses = append(u.Statuses, e)
}

// HasStatus reports whether an effect of the given kind is active.
func (u *Unit) HasStatus(k StatusKind) bool {
	for i := range u.Statuses {
		if u.Statuses[i].Kind == k {
			return true
		}
	}
	return false
}

// RemoveStatus drops any active effect of the given kind.
func (u *Unit) RemoveStatus(k StatusKind) {
	kept := u.Statuses[:0]
	for _, e := range u.Statuses {
		if e.Kind != k {
			kept = append(kept, e)
		}
	}
	u.Statuses = kept
}

// TickStatuses runs the unit's end-of-round status processing in a fixed
// order: damage-over-time effects apply HP loss first, then every effect's
// duration is decremented and expired effects are removed. Returns the
// total HP lost to status damage.
func (u *Unit) TickStatuses() int {
	total := 0
	for i := range u.Statuses {
		e := u.Statuses[i]
		if e.DamageOverTime() {
			dmg := u.MaxHP * e.Magnitude / 100
			if dmg < 1 {
				dmg = 1
			}
			total += u.ApplyDamage(dmg)
		}
	}

	kept := u.Statuses[:0]
	for _, e := range u.Statuses {
		e.Duration--
		if e.Duration > 0 {
			kept = append(kept, e)
		}
	}
	u.Statuses = kept
	return total
}
