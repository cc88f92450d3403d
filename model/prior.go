package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

var constructors = make(map[string]PriorCtor)

// PriorSpec is the on-file prior configuration understood by the
// registered constructors.
type PriorSpec struct {
	// prior type name, e.g. "symmetric" or "asymmetric"
	Type string `yaml:"type"`
	// shared pseudo-count for symmetric priors
	Alpha float64 `yaml:"alpha"`
	// event universe size for symmetric priors
	Events uint64 `yaml:"events"`
	// per-event pseudo-counts for asymmetric priors
	Alphas map[string]float64 `yaml:"alphas"`
}

type PriorCtor func(spec PriorSpec) (*Dirichlet[string], error)

// new prior types should register themselves using this function
func RegisterPrior(priorType string, ctor PriorCtor) {
	constructors[priorType] = ctor
}

func GetPrior(priorType string) (PriorCtor, error) {
	if _, ok := constructors[priorType]; !ok {
		return nil, fmt.Errorf("prior %s not registered", priorType)
	}
	return constructors[priorType], nil
}

func init() {
	RegisterPrior("symmetric", func(spec PriorSpec) (*Dirichlet[string], error) {
		return NewSymmetricDirichlet[string](spec.Alpha, spec.Events), nil
	})
	RegisterPrior("asymmetric", func(spec PriorSpec) (*Dirichlet[string], error) {
		if len(spec.Alphas) == 0 {
			return nil, fmt.Errorf("asymmetric prior needs per-event alphas")
		}
		return NewAsymmetricDirichlet(spec.Alphas), nil
	})
}

// LoadPriorConfig reads a YAML PriorSpec from fn and builds the
// configured prior through the registry.
func LoadPriorConfig(fn string) (*Dirichlet[string], error) {
	raw, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}

	var spec PriorSpec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, err
	}

	ctor, err := GetPrior(spec.Type)
	if err != nil {
		return nil, err
	}
	return ctor(spec)
}
