package model

// TeamID uniquely identifies a team
type TeamID string

// Team represents a club team. Players point at a team via Player.TeamID;
// the reference is weak, so deleting a team leaves its players' TeamID
// dangling rather than cascading.
type Team struct {
	ID       TeamID `json:"id"`
	Name     string `json:"name"`
	Division string `json:"division"`
	Category string `json:"category"`
}
