package report_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/okian/ats/internal/adapters/report"
	"github.com/okian/ats/internal/domain/types"
)

func sampleReport() types.Report {
	ratio := 0.5
	abraham := types.CandidateRef{ID: "c1", Name: "Abraham", DateOfBirth: "2010-02-01", Gender: "M"}
	return types.Report{
		Candidates:        3,
		Jobs:              2,
		IndexKeys:         2,
		DuplicateClusters: 1,
		Clusters: []types.Cluster{{
			Key: "ABRHM",
			Members: []types.CandidateRef{
				abraham,
				{ID: "c2", Name: "Abrahm", DateOfBirth: "2010-02-05", Gender: "M"},
			},
		}},
		Hottest:       &types.Hotness{Candidate: abraham, HotJobs: 2},
		Hotness:       []types.Hotness{{Candidate: abraham, HotJobs: 2}},
		BusiestMonths: []string{"February", "March"},
		TopSkills:     []string{"go"},
		GenderRatio:   &ratio,
	}
}

func TestRegistry(t *testing.T) {
	reg := report.NewDefaultRegistry()

	assert.Equal(t, []string{"json", "text", "yaml"}, reg.List())

	f, ok := reg.Get("json")
	require.True(t, ok)
	assert.Equal(t, ".json", f.FileExtension())
	assert.NotEmpty(t, f.Description())

	_, err := reg.Export("xml", sampleReport(), report.Options{})
	require.Error(t, err)
	assert.ErrorIs(t, err, report.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "json, text, yaml")
}

func TestTextFormatter(t *testing.T) {
	out, err := report.NewTextFormatter().Format(sampleReport(), report.Options{NoColor: true})
	require.NoError(t, err)

	assert.Contains(t, out, "Duplicate clusters: 1")
	assert.Contains(t, out, "ABRHM (2)")
	assert.Contains(t, out, "- Abrahm  2010-02-05  c2")
	assert.Contains(t, out, "Abraham with 2 hot jobs")
	assert.Contains(t, out, "Busiest months:     February, March")
	assert.Contains(t, out, "Gender ratio (F/M): 0.50")
	assert.NotContains(t, out, "\x1b[")
	assert.NotContains(t, out, "Hotness\n")
}

func TestTextFormatter_Verbose(t *testing.T) {
	out, err := report.NewTextFormatter().Format(sampleReport(), report.Options{NoColor: true, Verbose: true})
	require.NoError(t, err)

	assert.Contains(t, out, "Hotness\n")
}

func TestTextFormatter_Empty(t *testing.T) {
	out, err := report.NewTextFormatter().Format(types.Report{}, report.Options{NoColor: true})
	require.NoError(t, err)

	assert.Contains(t, out, "Clusters\n  none\n")
	assert.Contains(t, out, "Hottest candidate\n  none\n")
	assert.Contains(t, out, "Top skills:         none")
	assert.Contains(t, out, "Gender ratio (F/M): n/a")
}

func TestJSONFormatter(t *testing.T) {
	out, err := report.NewJSONFormatter().Format(sampleReport(), report.Options{})
	require.NoError(t, err)

	var decoded types.Report
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, sampleReport(), decoded)

	compact, err := report.NewJSONFormatter().Format(sampleReport(), report.Options{Compact: true})
	require.NoError(t, err)
	assert.NotContains(t, compact[:len(compact)-1], "\n")
}

func TestYAMLFormatter(t *testing.T) {
	out, err := report.NewYAMLFormatter().Format(sampleReport(), report.Options{})
	require.NoError(t, err)

	assert.Contains(t, out, "duplicate_clusters: 1")
	assert.Contains(t, out, "key: ABRHM")

	var decoded types.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, 1, decoded.DuplicateClusters)
	require.NotNil(t, decoded.GenderRatio)
	assert.InDelta(t, 0.5, *decoded.GenderRatio, 1e-9)
}
