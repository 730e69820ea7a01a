package domain

import "strings"

// MaxQuantity is the upper bound on how many copies of one role a deck may hold.
const MaxQuantity = 25

// DreamWolf is the role whose presence the game server needs flagged up front.
const DreamWolf = "Dream Wolf"

type Team string

const (
	TeamGood Team = "good"
	TeamEvil Team = "evil"
)

// Valid reports whether t is one of the two known teams.
func (t Team) Valid() bool {
	return t == TeamGood || t == TeamEvil
}

// Role is one catalog entry. Name is unique within a catalog under
// case-insensitive comparison.
type Role struct {
	Name             string `json:"role"`
	Team             Team   `json:"team"`
	Description      string `json:"description"`
	IsTypeOfWerewolf bool   `json:"isTypeOfWerewolf"`
	Custom           bool   `json:"custom"`
	Saved            bool   `json:"saved"`
	Quantity         int    `json:"quantity"`
}

// SameName compares role names the way the catalog does.
func SameName(a, b string) bool {
	return strings.EqualFold(a, b)
}

// Record returns the persisted form of a custom role.
func (r Role) Record() CustomRoleRecord {
	return CustomRoleRecord{
		Role:             r.Name,
		Description:      r.Description,
		Team:             r.Team,
		IsTypeOfWerewolf: r.IsTypeOfWerewolf,
		Custom:           r.Custom,
		Saved:            r.Saved,
	}
}

// CustomRoleRecord is a custom role as stored on the device. The JSON keys
// are exactly the ones the stored collection is validated against.
type CustomRoleRecord struct {
	Role             string `json:"role"`
	Description      string `json:"description"`
	Team             Team   `json:"team"`
	IsTypeOfWerewolf bool   `json:"isTypeOfWerewolf"`
	Custom           bool   `json:"custom"`
	Saved            bool   `json:"saved"`
}

// CustomRoleKeys lists the keys every stored record must carry.
var CustomRoleKeys = []string{"role", "description", "team", "isTypeOfWerewolf", "custom", "saved"}

// ToRole turns a stored record back into a catalog entry with quantity 0.
// Stored records are always custom, whatever the blob says.
func (c CustomRoleRecord) ToRole() Role {
	return Role{
		Name:             c.Role,
		Team:             c.Team,
		Description:      c.Description,
		IsTypeOfWerewolf: c.IsTypeOfWerewolf,
		Custom:           true,
		Saved:            c.Saved,
	}
}

// BuiltinRoles returns a fresh copy of the roles every catalog starts with.
func BuiltinRoles() []Role {
	return []Role{
		{Name: "Villager", Team: TeamGood, Description: "During the day, find the wolves and kill them."},
		{Name: "Werewolf", Team: TeamEvil, IsTypeOfWerewolf: true, Description: "During the night, choose a villager to kill. Don't get killed."},
		{Name: "Seer", Team: TeamGood, Description: "Each night, learn if a chosen person is a Werewolf."},
		{Name: "Shadow", Team: TeamEvil, Description: "If you are killed during the day, the Werewolves win. You know who they are, they don't know you."},
		{Name: "Hunter", Team: TeamGood, Description: "If you are alive with a wolf at the end of the game, you best the wolf, and the village wins."},
		{Name: "Mason", Team: TeamGood, Description: "Masons know who the other Masons are. Members of the Masons are always on the village team."},
		{Name: "Minion", Team: TeamEvil, Description: "You are on the werewolves' team. You know who they are, but they don't know you."},
		{Name: "Sorcerer", Team: TeamEvil, Description: "Each night, learn if a chosen person is the Seer. You are on the werewolves' team."},
		{Name: DreamWolf, Team: TeamEvil, IsTypeOfWerewolf: true, Description: "If a Werewolf dies, you become a Werewolf. You do not wake up with the Werewolves until this happens."},
	}
}
