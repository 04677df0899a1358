package game

const (
	// ExpPerLevel scales the level-up threshold: a player levels up when
	// experience reaches level * ExpPerLevel.
	ExpPerLevel = 100

	// LevelHealthBonus and LevelManaBonus are granted at each level-up.
	LevelHealthBonus = 50
	LevelManaBonus   = 20

	// CombatExpReward is awarded for defeating another player.
	CombatExpReward = 50
)

// ExpToNextLevel returns the remaining experience needed to level up.
func ExpToNextLevel(level, experience int) int {
	remaining := level*ExpPerLevel - experience
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ExperienceGain reports the outcome of an experience award.
type ExperienceGain struct {
	Amount     int
	Experience int
	Level      int
	Health     int
	Mana       int
	LeveledUp  bool
}
