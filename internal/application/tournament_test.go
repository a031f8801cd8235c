package application

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dilemma/internal/domain"
)

// tickingClock advances a fixed amount on every Now call, so RunFor budgets
// translate into an exact number of steps.
type tickingClock struct {
	now  time.Time
	tick time.Duration
}

func (c *tickingClock) Now() time.Time {
	c.now = c.now.Add(c.tick)
	return c.now
}

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func newTestPool(t *testing.T, kinds ...domain.StrategyKind) *domain.EloPool {
	t.Helper()

	cfg := domain.DefaultPoolConfig()
	cfg.KFactor = 32

	pool, err := domain.NewEloPoolWithCatalog(cfg, kinds)
	require.NoError(t, err)
	return pool
}

func TestRunForHonorsClockBudget(t *testing.T) {
	pool := newTestPool(t,
		domain.StrategyKind{Archetype: domain.ArchetypeDefector},
		domain.StrategyKind{Archetype: domain.ArchetypeCollaborator},
	)
	clock := &tickingClock{now: time.Unix(0, 0), tick: 100 * time.Millisecond}
	tournament := NewTournament(pool, testRand(1), clock)

	// Each loop iteration consumes one tick in the deadline check, so a
	// 1s budget at 100ms per tick plays 9 matches.
	played := tournament.RunFor(time.Second)

	assert.Equal(t, uint64(9), played)
	assert.Equal(t, uint64(9), tournament.MatchesPlayed())
}

func TestRunStepsAccumulatesMatches(t *testing.T) {
	pool := newTestPool(t,
		domain.StrategyKind{Archetype: domain.ArchetypeDefector},
		domain.StrategyKind{Archetype: domain.ArchetypeCollaborator},
	)
	tournament := NewTournament(pool, testRand(2), nil)

	tournament.RunSteps(10)
	tournament.RunSteps(5)

	assert.Equal(t, uint64(15), tournament.MatchesPlayed())
}

func TestStandingsSortedByRatingDescending(t *testing.T) {
	pool := newTestPool(t,
		domain.StrategyKind{Archetype: domain.ArchetypeCollaborator},
		domain.StrategyKind{Archetype: domain.ArchetypeDefector},
	)
	tournament := NewTournament(pool, testRand(3), nil)

	tournament.RunSteps(1)

	standings := tournament.Standings()
	require.Len(t, standings, 2)
	assert.Equal(t, Standing{Name: "Defector", Description: "Always defect", Rating: 732}, standings[0])
	assert.Equal(t, Standing{Name: "Collaborator", Description: "Always collaborate", Rating: 668}, standings[1])
}

func TestStandingsKeepCatalogOrderOnTies(t *testing.T) {
	pool := newTestPool(t,
		domain.StrategyKind{Archetype: domain.ArchetypeTitForTat},
		domain.StrategyKind{Archetype: domain.ArchetypeGrim},
	)
	tournament := NewTournament(pool, testRand(4), nil)

	standings := tournament.Standings()
	require.Len(t, standings, 2)
	assert.Equal(t, "TitForTat", standings[0].Name)
	assert.Equal(t, "Grim", standings[1].Name)
}

func TestExhibition(t *testing.T) {
	defector := domain.StrategyKind{Archetype: domain.ArchetypeDefector}
	collaborator := domain.StrategyKind{Archetype: domain.ArchetypeCollaborator}

	score, err := Exhibition(defector, collaborator, domain.DefaultWeights(), 100, testRand(5))
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
}

func TestExhibitionRejectsBadInputs(t *testing.T) {
	defector := domain.StrategyKind{Archetype: domain.ArchetypeDefector}
	grim := domain.StrategyKind{Archetype: domain.ArchetypeGrim}

	degenerate := domain.Weights{DefectCollab: domain.PayoffPair{Defector: 2, Collaborator: 2}}
	_, err := Exhibition(defector, grim, degenerate, 100, testRand(6))
	assert.ErrorIs(t, err, domain.ErrDegenerateWeights)

	_, err = Exhibition(defector, grim, domain.DefaultWeights(), 0, testRand(7))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 1")
}
