package sarif

import (
	"bytes"
	"encoding/json"
	"testing"

	gosarif "github.com/owenrumney/go-sarif/v2/sarif"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintsarif/lintsarif/internal/eslint"
)

// The emitted documents must stay consumable by the SARIF ecosystem; these
// tests feed the output back through the go-sarif model.
func TestEmittedDocumentParsesAsSarif(t *testing.T) {
	results := []eslint.Result{
		{
			FilePath: "/work/src/a.ts",
			Messages: []eslint.Message{
				{
					RuleID:   "no-unused-vars",
					Severity: 2,
					Message:  "'x' is defined but never used.",
					Line:     intp(3),
					Column:   intp(5),
				},
			},
			SuppressedMessages: []eslint.Message{
				{
					RuleID:       "no-console",
					Severity:     1,
					Message:      "Unexpected console statement.",
					Line:         intp(9),
					Suppressions: []eslint.Suppression{{Kind: "directive", Justification: "ok here"}},
				},
			},
		},
	}
	rulesMeta := map[string]*eslint.RuleMeta{
		"no-unused-vars": {Docs: &eslint.RuleDocs{Description: "disallow unused vars", URL: "https://x"}},
	}

	var buf bytes.Buffer
	log := Build(results, rulesMeta, Options{ToolVersion: "8.57.0", BaseFolderPath: "/work"})
	require.NoError(t, log.PrettyWrite(&buf))

	var report gosarif.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.Equal(t, "2.1.0", report.Version)
	require.Len(t, report.Runs, 1)
	run := report.Runs[0]

	require.NotNil(t, run.Tool.Driver)
	assert.Equal(t, "ESLint", run.Tool.Driver.Name)
	require.Len(t, run.Tool.Driver.Rules, 1)
	assert.Equal(t, "no-unused-vars", run.Tool.Driver.Rules[0].ID)

	require.Len(t, run.Results, 2)

	primary := run.Results[0]
	require.NotNil(t, primary.RuleID)
	assert.Equal(t, "no-unused-vars", *primary.RuleID)
	require.NotNil(t, primary.Level)
	assert.Equal(t, "error", *primary.Level)
	require.NotNil(t, primary.Message.Text)
	assert.Equal(t, "'x' is defined but never used.", *primary.Message.Text)
	assert.Empty(t, primary.Suppressions)

	require.Len(t, primary.Locations, 1)
	physical := primary.Locations[0].PhysicalLocation
	require.NotNil(t, physical)
	require.NotNil(t, physical.ArtifactLocation)
	require.NotNil(t, physical.ArtifactLocation.URI)
	assert.Equal(t, "src/a.ts", *physical.ArtifactLocation.URI)
	require.NotNil(t, physical.Region)
	require.NotNil(t, physical.Region.StartLine)
	assert.Equal(t, 3, *physical.Region.StartLine)

	suppressed := run.Results[1]
	assert.Len(t, suppressed.Suppressions, 1)
}

func TestEmittedDocumentCompactAndPrettyAgree(t *testing.T) {
	results := []eslint.Result{
		{
			FilePath: "a.js",
			Messages: []eslint.Message{
				{RuleID: "semi", Severity: 1, Message: "Missing semicolon.", Line: intp(1)},
			},
		},
	}

	var compact, pretty bytes.Buffer
	require.NoError(t, Build(results, nil, Options{}).Write(&compact))
	require.NoError(t, Build(results, nil, Options{}).PrettyWrite(&pretty))

	var fromCompact, fromPretty interface{}
	require.NoError(t, json.Unmarshal(compact.Bytes(), &fromCompact))
	require.NoError(t, json.Unmarshal(pretty.Bytes(), &fromPretty))
	assert.Equal(t, fromCompact, fromPretty)
}
