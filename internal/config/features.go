package config

import (
	"fmt"

	semver "github.com/Masterminds/semver/v3"
)

// Feature is a syntax feature gated by ECMAScript version
type Feature int

const (
	FeatureExponent Feature = iota
	FeatureAsyncFunctions
	FeatureAsyncIteration
	FeatureObjectSpread
	FeatureOptionalCatchBinding
	FeatureBigInt
	FeatureDynamicImport
	FeatureOptionalChaining
	FeatureNullishCoalescing
	FeatureImportMeta
	FeatureExportNamespace
	FeatureLogicalAssignment
	FeatureNumericSeparators
	FeatureClassFields
	FeaturePrivateMethods
	FeatureClassStaticBlock
	FeatureTopLevelAwait
	FeaturePrivateIn
	FeatureHashbang
	FeatureRegExpUnicodeSets
	FeatureImportAttributes
	featureCount
)

var features = [featureCount]struct {
	name       string
	constraint string
}{
	FeatureExponent:             {"exponentiation operator", ">= 2016"},
	FeatureAsyncFunctions:       {"async functions", ">= 2017"},
	FeatureAsyncIteration:       {"async iteration", ">= 2018"},
	FeatureObjectSpread:         {"object rest and spread", ">= 2018"},
	FeatureOptionalCatchBinding: {"optional catch binding", ">= 2019"},
	FeatureBigInt:               {"BigInt literals", ">= 2020"},
	FeatureDynamicImport:        {"dynamic import", ">= 2020"},
	FeatureOptionalChaining:     {"optional chaining", ">= 2020"},
	FeatureNullishCoalescing:    {"nullish coalescing", ">= 2020"},
	FeatureImportMeta:           {"import.meta", ">= 2020"},
	FeatureExportNamespace:      {"export * as ns", ">= 2020"},
	FeatureLogicalAssignment:    {"logical assignment", ">= 2021"},
	FeatureNumericSeparators:    {"numeric separators", ">= 2021"},
	FeatureClassFields:          {"class fields", ">= 2022"},
	FeaturePrivateMethods:       {"private methods", ">= 2022"},
	FeatureClassStaticBlock:     {"class static blocks", ">= 2022"},
	FeatureTopLevelAwait:        {"top-level await", ">= 2022"},
	FeaturePrivateIn:            {"private name in checks", ">= 2022"},
	FeatureHashbang:             {"hashbang comments", ">= 2023"},
	FeatureRegExpUnicodeSets:    {"regular expression v flag", ">= 2024"},
	FeatureImportAttributes:     {"import attributes", ">= 2025"},
}

var featureConstraints = func() [featureCount]*semver.Constraints {
	var out [featureCount]*semver.Constraints
	for i, f := range features {
		c, err := semver.NewConstraint(f.constraint)
		if err != nil {
			panic(fmt.Sprintf("config: bad constraint for %s: %v", f.name, err))
		}
		out[i] = c
	}
	return out
}()

func (f Feature) String() string {
	if f < 0 || f >= featureCount {
		return fmt.Sprintf("Feature(%d)", int(f))
	}
	return features[f].name
}

// MinVersion returns the first ECMAScript year that includes f.
func (f Feature) MinVersion() string {
	if f < 0 || f >= featureCount {
		return ""
	}
	c := features[f].constraint
	return c[len(c)-4:]
}

// Supports reports whether the configured version includes f. An invalid
// version string supports everything; Validate reports it.
func (c Config) Supports(f Feature) bool {
	if f < 0 || f >= featureCount {
		return false
	}
	v, err := c.Version()
	if err != nil || v == nil {
		return true
	}

	return featureConstraints[f].Check(v)
}
