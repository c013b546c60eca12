package domain

// Gender identifies a user's self-reported gender
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// AllGenders contains all valid genders
var AllGenders = []Gender{GenderMale, GenderFemale, GenderOther}

// IsValid checks if a gender is valid
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// String returns the string representation of the gender
func (g Gender) String() string {
	return string(g)
}

// SwipeAction is a one-directional preference toward a candidate
type SwipeAction string

const (
	SwipeLike      SwipeAction = "like"
	SwipeDislike   SwipeAction = "dislike"
	SwipeSuperlike SwipeAction = "superlike"
)

// IsValid checks if a swipe action is valid
func (a SwipeAction) IsValid() bool {
	switch a {
	case SwipeLike, SwipeDislike, SwipeSuperlike:
		return true
	}
	return false
}

// String returns the string representation of the action
func (a SwipeAction) String() string {
	return string(a)
}
