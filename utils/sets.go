package utils

import (
	"sort"

	"matchpoint-api/models"
)

// AggregateSets groups flat score rows into per-set pairs, ordered by
// ascending set number. A set with a row for only one team still appears;
// the missing side defaults to 0 games.
func AggregateSets(scores []models.Score, teamAID, teamBID uint) []models.SetScore {
	setNumbers := []int{}
	seen := map[int]bool{}
	for _, score := range scores {
		if !seen[score.SetNumber] {
			seen[score.SetNumber] = true
			setNumbers = append(setNumbers, score.SetNumber)
		}
	}
	sort.Ints(setNumbers)

	sets := make([]models.SetScore, 0, len(setNumbers))
	for _, setNumber := range setNumbers {
		set := models.SetScore{SetNumber: setNumber}
		for _, score := range scores {
			if score.SetNumber != setNumber {
				continue
			}
			switch score.TeamID {
			case teamAID:
				set.TeamAGames = score.Games
			case teamBID:
				set.TeamBGames = score.Games
			}
		}
		sets = append(sets, set)
	}

	return sets
}

// ResolveWinner returns the id of the team that won strictly more sets.
// A set is won by the team with the higher game count; a drawn set counts
// for neither side. Returns 0 when set wins are equal (no winner), rather
// than arbitrarily favoring one side.
func ResolveWinner(sets []models.SetScore, teamAID, teamBID uint) uint {
	var teamASets, teamBSets int
	for _, set := range sets {
		if set.TeamAGames > set.TeamBGames {
			teamASets++
		} else if set.TeamBGames > set.TeamAGames {
			teamBSets++
		}
	}

	if teamASets > teamBSets {
		return teamAID
	}
	if teamBSets > teamASets {
		return teamBID
	}
	return 0
}
