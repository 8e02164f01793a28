package domain

import "fmt"

// Unknown marks a stat the upstream API did not report.
// A score of zero is valid data and must never be displayed as Unknown.
const Unknown = "Unknown"

const (
	levelXPPerStep = 100_000
	skillXPPerStep = 10_000
)

// SkillNames lists the skill counters that contribute to the average.
// A skill counts only when its xp counter is present and positive.
var SkillNames = []string{
	"farming", "mining", "combat", "foraging", "fishing",
	"enchanting", "alchemy", "carpentry", "runecrafting", "taming",
}

// ProfileSnapshot is the profile-lookup result captured when a listing
// is created. It is immutable and never refreshed.
type ProfileSnapshot struct {
	UUID         string
	Level        int
	SkillAverage SkillAverage
	Networth     string
	Playtime     string
}

// SkillAverage distinguishes "no skill data" from a real score of zero.
type SkillAverage struct {
	Known bool
	Value float64
}

func (a SkillAverage) String() string {
	if !a.Known {
		return Unknown
	}
	return fmt.Sprintf("%.1f", a.Value)
}

// SkyblockLevel derives the displayed level from raw experience.
func SkyblockLevel(experience int64) int {
	return int(experience/levelXPPerStep) + 1
}

// SkillAverageOf computes the mean skill level over the named skills,
// reading counters keyed "<skill>_xp". Skills that are absent or not
// positive do not contribute.
func SkillAverageOf(counters map[string]int64) SkillAverage {
	var total, count int64
	for _, skill := range SkillNames {
		xp, ok := counters[skill+"_xp"]
		if !ok || xp <= 0 {
			continue
		}
		total += xp / skillXPPerStep
		count++
	}
	if count == 0 {
		return SkillAverage{}
	}
	return SkillAverage{Known: true, Value: float64(total) / float64(count)}
}
