package intent

import (
	"math"
	"sort"
	"strings"

	"github.com/dastudio/da-assistant/internal/domain"
)

// minConfidence is the floor assigned to the guaranteed fallback guess when
// the input shares no vocabulary with the training corpus.
const minConfidence = 0.05

// Classifier is a multinomial naive-bayes bag-of-words model over a small
// fixed corpus of example phrases. It is trained once at startup and is
// read-only afterwards, so concurrent Classify calls need no locking.
type Classifier struct {
	labels     []string
	labelIndex map[string]int
	docCount   map[string]int
	wordCount  map[string]map[string]int
	totalWords map[string]int
	vocab      map[string]struct{}
	totalDocs  int
}

func NewClassifier() *Classifier {
	c := &Classifier{}
	c.reset()
	return c
}

func (c *Classifier) reset() {
	c.labels = nil
	c.labelIndex = make(map[string]int)
	c.docCount = make(map[string]int)
	c.wordCount = make(map[string]map[string]int)
	c.totalWords = make(map[string]int)
	c.vocab = make(map[string]struct{})
	c.totalDocs = 0
}

// Train builds term-frequency statistics per label. Retraining is a full
// rebuild, not incremental.
func (c *Classifier) Train(examples []domain.TrainingExample) {
	c.reset()

	for _, ex := range examples {
		tokens := tokenize(ex.Text)
		if len(tokens) == 0 {
			continue
		}

		if _, ok := c.labelIndex[ex.Label]; !ok {
			c.labelIndex[ex.Label] = len(c.labels)
			c.labels = append(c.labels, ex.Label)
			c.wordCount[ex.Label] = make(map[string]int)
		}

		c.docCount[ex.Label]++
		c.totalDocs++

		for _, tok := range tokens {
			c.wordCount[ex.Label][tok]++
			c.totalWords[ex.Label]++
			c.vocab[tok] = struct{}{}
		}
	}
}

// Classify scores the text against every trained label and returns the
// ranking, highest confidence first. It never returns an empty list: input
// with no known vocabulary yields a single minimum-confidence fallback guess.
// Ties are broken by training order.
func (c *Classifier) Classify(text string) []domain.RankedLabel {
	tokens := tokenize(text)

	known := 0
	for _, tok := range tokens {
		if _, ok := c.vocab[tok]; ok {
			known++
		}
	}

	if c.totalDocs == 0 || known == 0 {
		return []domain.RankedLabel{{Label: domain.IntentSystemFallback, Confidence: minConfidence}}
	}

	vocabSize := float64(len(c.vocab))
	scores := make([]float64, len(c.labels))

	for i, label := range c.labels {
		score := math.Log(float64(c.docCount[label]) / float64(c.totalDocs))
		denom := float64(c.totalWords[label]) + vocabSize

		for _, tok := range tokens {
			if _, ok := c.vocab[tok]; !ok {
				continue
			}
			// add-one smoothing keeps unseen label/token pairs finite
			score += math.Log((float64(c.wordCount[label][tok]) + 1) / denom)
		}

		scores[i] = score
	}

	// log scores to normalized confidences
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}

	var sum float64
	exps := make([]float64, len(scores))
	for i, s := range scores {
		exps[i] = math.Exp(s - max)
		sum += exps[i]
	}

	ranked := make([]domain.RankedLabel, len(c.labels))
	for i, label := range c.labels {
		ranked[i] = domain.RankedLabel{Label: label, Confidence: exps[i] / sum}
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Confidence > ranked[b].Confidence
	})

	return ranked
}

// Labels returns the trained labels in training order.
func (c *Classifier) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

func tokenize(text string) []string {
	lowered := strings.ToLower(text)

	return strings.FieldsFunc(lowered, func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= '0' && r <= '9':
			return false
		}
		return true
	})
}
