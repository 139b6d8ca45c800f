package entity

// Kind tags which store a Ref's Handle belongs to. The World (package
// sim) owns one Store per Kind and is the only place a Ref is actually
// resolved; packages that only need to *carry* a reference (projectiles
// holding a homing target, status effects holding a source) depend on
// this package, not on sim, avoiding an import cycle.
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindEnemy
	KindBoss
	KindProjectile
	KindAoE
)

// Ref is a typed, stable reference to an entity in some World-owned
// store. The zero Ref (KindNone, nil Handle) never resolves.
type Ref struct {
	Kind   Kind
	Handle Handle
}

// IsNil reports whether r can never resolve to a live entity.
func (r Ref) IsNil() bool {
	return r.Kind == KindNone || r.Handle.IsNil()
}
