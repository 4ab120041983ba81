package targets

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

//go:embed targets.yaml
var rawTargets []byte

var targets Targets

var (
	ErrSeriesNotFound     = errors.New("series not found")
	ErrChipNotFound       = errors.New("chip not found")
	ErrPeripheralNotFound = errors.New("peripheral not found")
)

func All() Targets {
	return targets
}

type Targets []TargetInfo
type TargetInfo struct {
	Series       string             `yaml:"series"`
	Chips        []string           `yaml:"chips"`
	Cpu          string             `yaml:"cpu"`
	Architecture string             `yaml:"architecture"`
	Features     []string           `yaml:"features"`
	Float        string             `yaml:"float"`
	Clock        uint32             `yaml:"clock"`
	Peripherals  map[string]uintptr `yaml:"peripherals"`
}

// FormatFeatureString lists the core features the way the chip tables print
// them, for example "+dsp,+vfp4d16sp".
func (t TargetInfo) FormatFeatureString() string {
	features := make([]string, len(t.Features))
	for i, feature := range t.Features {
		features[i] = "+" + feature
	}
	return strings.Join(features, ",")
}

// Base returns the base address of the named peripheral.
func (t TargetInfo) Base(peripheral string) (uintptr, error) {
	addr, ok := t.Peripherals[strings.ToLower(peripheral)]
	if !ok {
		return 0, fmt.Errorf("%s on %s: %w", peripheral, t.Series, ErrPeripheralNotFound)
	}
	return addr, nil
}

func (t Targets) FindBySeries(name string) (TargetInfo, error) {
	for _, target := range t {
		if target.Series == strings.ToLower(name) {
			return target, nil
		}
	}
	return TargetInfo{}, fmt.Errorf("%s: %w", name, ErrSeriesNotFound)
}

func (t Targets) FindByChip(name string) (TargetInfo, error) {
	for _, target := range t {
		if slices.Contains(target.Chips, strings.ToLower(name)) {
			return target, nil
		}
	}
	return TargetInfo{}, fmt.Errorf("%s: %w", name, ErrChipNotFound)
}

func parse(data []byte) (Targets, error) {
	var t struct {
		Elements []TargetInfo `yaml:"targets"`
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, err
	}

	var errs []error
	for _, target := range t.Elements {
		if target.Series == "" {
			errs = append(errs, errors.New("target without series"))
		}
		if len(target.Chips) == 0 {
			errs = append(errs, fmt.Errorf("%s: no chips", target.Series))
		}
	}
	return t.Elements, errors.Join(errs...)
}

func init() {
	var err error
	if targets, err = parse(rawTargets); err != nil {
		panic(err)
	}
}
