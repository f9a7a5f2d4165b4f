package models

// Training status values carried verbatim from the persisted records.
const (
	StatusBulking     = "增肌期"
	StatusCutting     = "減脂期"
	StatusMaintaining = "維持期"
	StatusInjured     = "受傷休息"
)

// Profile is the single user record. Biometric fields stay strings to
// mirror the persisted shape (they come straight from form inputs).
type Profile struct {
	Nickname   string `json:"nickname"`
	Avatar     string `json:"avatar,omitempty"`
	Gender     string `json:"gender"`
	Age        string `json:"age"`
	Status     string `json:"status"`
	Height     string `json:"height"`
	Weight     string `json:"weight"`
	Muscle     string `json:"muscle"`
	BodyFat    string `json:"bodyFat"`
	WeeklyGoal int    `json:"weeklyGoal"`
}

// DefaultProfile returns the record created on first load.
func DefaultProfile() Profile {
	return Profile{
		Nickname:   "健友",
		Gender:     "male",
		Status:     StatusBulking,
		WeeklyGoal: 3,
	}
}
