package intent

import (
	_ "embed"
	"fmt"

	"github.com/dastudio/da-assistant/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed corpus.yaml
var corpusYAML []byte

type corpusFile struct {
	Examples []domain.TrainingExample `yaml:"examples"`
}

// LoadCorpus parses the embedded training corpus.
func LoadCorpus() ([]domain.TrainingExample, error) {
	var f corpusFile
	if err := yaml.Unmarshal(corpusYAML, &f); err != nil {
		return nil, fmt.Errorf("parsing training corpus: %w", err)
	}

	if len(f.Examples) == 0 {
		return nil, fmt.Errorf("training corpus is empty")
	}

	return f.Examples, nil
}
