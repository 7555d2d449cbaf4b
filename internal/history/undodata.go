package history

// UndoData describes how to reverse one recorded operation. It is a closed
// set of variants; reversal itself is performed by the tool handlers, the
// manager only stores the payload.
type UndoData interface {
	undoData()
}

// ActorSnapshot captures the full state of an actor, enough to recreate it.
type ActorSnapshot struct {
	ActorName string    `json:"actorName"`
	AssetPath string    `json:"assetPath,omitempty"`
	Location  []float64 `json:"location,omitempty"`
	Rotation  []float64 `json:"rotation,omitempty"`
	Scale     []float64 `json:"scale,omitempty"`
	Mesh      string    `json:"mesh,omitempty"`
	Folder    string    `json:"folder,omitempty"`
}

// StateDelta holds the prior values of the fields a mutation touched. Nil
// slices and empty strings mean the field was not part of the mutation.
type StateDelta struct {
	Location []float64 `json:"location,omitempty"`
	Rotation []float64 `json:"rotation,omitempty"`
	Scale    []float64 `json:"scale,omitempty"`
	Mesh     string    `json:"mesh,omitempty"`
	Folder   string    `json:"folder,omitempty"`
}

// UndoCreation reverses a spawn: undo deletes the created actor.
type UndoCreation struct {
	ActorName string `json:"actorName"`
}

// UndoDeletion reverses a delete: undo respawns the actor from its snapshot.
type UndoDeletion struct {
	Prior ActorSnapshot `json:"prior"`
}

// UndoMutation reverses a modify: undo reapplies the prior state delta.
type UndoMutation struct {
	ActorName string     `json:"actorName"`
	Prior     StateDelta `json:"prior"`
}

// UndoMaterialChange reverses a material swap on one slot.
type UndoMaterialChange struct {
	ActorName     string `json:"actorName"`
	PriorMaterial string `json:"priorMaterial"`
	SlotIndex     int    `json:"slotIndex"`
}

// UndoCustom carries an opaque payload for operations with no structured
// reversal, e.g. python_proxy snippets that describe their own inverse.
type UndoCustom struct {
	Payload any `json:"payload"`
}

func (UndoCreation) undoData()       {}
func (UndoDeletion) undoData()       {}
func (UndoMutation) undoData()       {}
func (UndoMaterialChange) undoData() {}
func (UndoCustom) undoData()         {}
