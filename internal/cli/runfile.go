package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/croftproj/goregeval/metrics"
)

// RunFile configures a compare run: the dataset, the evaluation settings and
// the model variants to score against each other.
type RunFile struct {
	Dataset  string    `yaml:"dataset"`
	Target   string    `yaml:"target"`
	Folds    int       `yaml:"folds"`
	Seed     int64     `yaml:"seed"`
	Metrics  []string  `yaml:"metrics"`
	Exclude  []string  `yaml:"exclude"`
	Parallel bool      `yaml:"parallel"`
	Variants []Variant `yaml:"variants"`
}

// Variant is one model configuration to evaluate. An empty trainer means
// linear; an empty transform means none.
type Variant struct {
	Name      string   `yaml:"name"`
	Trainer   string   `yaml:"trainer"`
	Transform string   `yaml:"transform"`
	Features  []string `yaml:"features"`
}

// LoadRunFile parses and validates a YAML run file. Unknown keys are
// rejected. A relative dataset path is resolved against the run file's
// directory.
func LoadRunFile(path string) (*RunFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	rf := &RunFile{Folds: 10, Seed: 1}
	if err := dec.Decode(rf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if rf.Dataset == "" {
		return nil, fmt.Errorf("%s: dataset is required", path)
	}
	if rf.Target == "" {
		return nil, fmt.Errorf("%s: target is required", path)
	}
	if len(rf.Variants) == 0 {
		return nil, fmt.Errorf("%s: at least one variant is required", path)
	}
	if len(rf.Metrics) == 0 {
		rf.Metrics = metrics.AllNames()
	}
	if !filepath.IsAbs(rf.Dataset) {
		rf.Dataset = filepath.Join(filepath.Dir(path), rf.Dataset)
	}

	seen := make(map[string]bool, len(rf.Variants))
	for i := range rf.Variants {
		v := &rf.Variants[i]
		if v.Name == "" {
			v.Name = defaultVariantName(v)
		}
		if seen[v.Name] {
			return nil, fmt.Errorf("%s: duplicate variant name %q", path, v.Name)
		}
		seen[v.Name] = true
	}
	return rf, nil
}

func defaultVariantName(v *Variant) string {
	name := v.Trainer
	if name == "" {
		name = "linear"
	}
	if v.Transform != "" && v.Transform != "none" {
		name += "+" + v.Transform
	}
	return name
}
