package userapi

import (
	"encoding/json"
	"math"
)

// User is the subset of the user resource fitdash reads.
type User struct {
	ID          string   `json:"id,omitempty"`
	CalorieGoal *float64 `json:"calorie_goal,omitempty"`
}

// Goal returns the calorie goal as a whole number. ok is false when the
// field is missing or not positive.
func (u *User) Goal() (goal int, ok bool) {
	if u == nil || u.CalorieGoal == nil {
		return 0, false
	}
	g := math.Round(*u.CalorieGoal)
	if g <= 0 || g > math.MaxInt32 {
		return 0, false
	}
	return int(g), true
}

// goalUpdate is the PUT body for the user resource.
type goalUpdate struct {
	CalorieGoal int `json:"calorie_goal"`
}

// Workout is one logged workout. Only its presence matters to fitdash.
type Workout struct {
	ID json.RawMessage `json:"id,omitempty"`
}
