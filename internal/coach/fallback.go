package coach

import (
	"math/rand"
	"strings"

	"github.com/claude/liftflow/internal/catalog"
	"github.com/claude/liftflow/internal/ids"
	"github.com/claude/liftflow/internal/models"
)

// part keyword lists for offline routine matching. Checked in order;
// the first list with a hit decides the body part.
var partKeywords = []struct {
	part     string
	keywords []string
}{
	{"胸部", []string{"胸", "推"}},
	{"背部", []string{"背", "拉", "引體"}},
	{"腿部", []string{"腿", "蹲", "臀"}},
	{"肩膀", []string{"肩", "推舉"}},
	{"手臂", []string{"手", "二頭", "三頭", "臂"}},
	{"核心", []string{"腹", "核心"}},
}

func matchPart(request string) string {
	for _, pk := range partKeywords {
		for _, kw := range pk.keywords {
			if strings.Contains(request, kw) {
				return pk.part
			}
		}
	}
	return ""
}

// OfflineRoutine assembles a 3-5 exercise plan from the built-in
// catalog without calling the gateway. Sets are placeholders the user
// fills in during the session.
func OfflineRoutine(request string, gen *ids.Generator) []models.Exercise {
	part := matchPart(request)

	candidates := catalog.ByPart(part)
	if len(candidates) == 0 {
		candidates = catalog.Exercises
	}

	shuffled := make([]models.Exercise, len(candidates))
	copy(shuffled, candidates)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	count := 3 + rand.Intn(3)
	if count > len(shuffled) {
		count = len(shuffled)
	}

	routine := make([]models.Exercise, 0, count)
	for _, entry := range shuffled[:count] {
		ex := entry
		ex.LocalID = gen.Next()
		ex.Sets = nil
		for s := 0; s < 3; s++ {
			rpe := 8.0
			if s == 2 {
				rpe = 9.0
			}
			ex.Sets = append(ex.Sets, models.WorkoutSet{
				ID:   gen.Next(),
				Reps: 10,
				RPE:  rpe,
			})
		}
		routine = append(routine, ex)
	}
	return routine
}

// catalogDigest renders the catalog compactly for routine prompts.
func catalogDigest() string {
	var b strings.Builder
	for i, e := range catalog.Exercises {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.ID)
		b.WriteString(":")
		b.WriteString(e.Name)
		b.WriteString("(")
		b.WriteString(e.Part)
		b.WriteString(")")
	}
	return b.String()
}
