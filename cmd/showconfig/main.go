package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/streamforge/encoding-examples/internal/config"
	"github.com/streamforge/encoding-examples/internal/logging"
	"github.com/streamforge/encoding-examples/internal/params"
)

// parameterReport is the per-parameter block of the YAML report.
type parameterReport struct {
	Value    string `yaml:"value,omitempty"`
	Status   string `yaml:"status"`
	Required bool   `yaml:"required,omitempty"`
}

func main() {
	logger, err := logging.New(os.Getenv("BITMOVIN_DEBUG") != "")
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	resolver, err := config.New("showconfig", config.WithLogger(logger))
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	report, missingRequired := buildReport(resolver)

	out, err := yaml.Marshal(report)
	if err != nil {
		logger.Fatal("failed to render report", zap.Error(err))
	}
	if _, err := os.Stdout.Write(out); err != nil {
		logger.Fatal("failed to write report", zap.Error(err))
	}

	if missingRequired > 0 {
		logger.Fatal("required parameters are missing", zap.Int("count", missingRequired))
	}
}

// buildReport resolves every registered parameter and returns the report
// along with the number of missing required parameters. Secret values are
// masked so the report is safe to paste into bug reports.
func buildReport(resolver *config.Resolver) (map[string]parameterReport, int) {
	specs := params.All()
	report := make(map[string]parameterReport, len(specs))
	missingRequired := 0

	for key, spec := range specs {
		value, err := resolver.Get(key)
		if err != nil {
			if spec.Required {
				missingRequired++
			}
			report[string(key)] = parameterReport{Status: "missing", Required: spec.Required}
			continue
		}

		if spec.Secret {
			value = mask(value)
		}
		report[string(key)] = parameterReport{Value: value, Status: "set", Required: spec.Required}
	}

	return report, missingRequired
}

// mask hides all but the last four characters of a secret value.
func mask(value string) string {
	if len(value) <= 4 {
		return strings.Repeat("*", len(value))
	}
	return strings.Repeat("*", len(value)-4) + value[len(value)-4:]
}
