package embercsv

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FeatureFile is the YAML shape accepted by LoadFeatures:
//
//	features:
//	  - md5
//	  - sections_mean_entropy
//	  - label
type FeatureFile struct {
	Features []string `yaml:"features"`
}

// LoadFeatures reads a feature list from a YAML file.
func LoadFeatures(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var ff FeatureFile
	if err := yaml.Unmarshal(b, &ff); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(ff.Features) == 0 {
		return nil, fmt.Errorf("%s: no features listed", path)
	}
	return ff.Features, nil
}
