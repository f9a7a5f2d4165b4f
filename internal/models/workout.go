package models

// WorkoutSet is a single set of an exercise logged on a given day.
// IDs are unique within the owning exercise; the store backfills
// missing or colliding ids on load.
type WorkoutSet struct {
	ID        int64   `json:"id"`
	Kg        float64 `json:"kg"`
	Reps      int     `json:"reps"`
	RPE       float64 `json:"rpe,omitempty"`
	Completed bool    `json:"completed"`
	IsWarmup  bool    `json:"isWarmup,omitempty"`
}

// Volume is kg × reps. Warm-up and incomplete sets contribute no
// volume; callers filter before summing.
func (s WorkoutSet) Volume() float64 {
	return s.Kg * float64(s.Reps)
}

// Exercise is a logged instance of a catalog exercise for one day.
// LocalID is unique within the day's list.
type Exercise struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Part      string       `json:"part"`
	Type      string       `json:"type,omitempty"`
	Tips      string       `json:"tips,omitempty"`
	IconColor string       `json:"iconColor,omitempty"`
	LocalID   int64        `json:"localId"`
	Note      string       `json:"note,omitempty"`
	Sets      []WorkoutSet `json:"sets"`
}

// History maps an ISO date (YYYY-MM-DD) to the exercises logged that day.
// It is the single source of truth for all volume and streak derivation.
type History map[string][]Exercise
