package ecs

import "strconv"

// Entity is a packed handle: the low 32 bits are the slot id, the high 32
// bits the generation of that slot. A handle kept past DestroyEntity fails
// the generation check instead of aliasing whatever reuses the slot.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// Valid reports whether the handle was ever issued by a world. It does not
// check liveness; use IsAlive for that.
func (e Entity) Valid() bool {
	return e.id() > 0
}
