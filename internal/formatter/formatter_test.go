package formatter

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ravensec/domaintwist/internal/model"
)

func sampleCandidates() []model.Candidate {
	c1 := model.Candidate{Algorithm: model.Original, Name: "example.com"}
	c1.AppendRecord(model.RecordA, "1.2.3.4")
	c1.AppendRecord(model.RecordA, "1.2.3.5")

	c2 := model.Candidate{Algorithm: model.Bitsquatting, Name: "fxample.com"}
	c2.AppendRecord(model.RecordA, "9.9.9.9")
	c2.AppendRecord(model.RecordNS, "ns1.fxample.com")
	c2.AppendRecord(model.RecordMX, "mail.fxample.com")

	return []model.Candidate{c1, c2}
}

func TestFormat_Idle(t *testing.T) {
	out, err := New(nil).Format(sampleCandidates(), "idle", false)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, []string{"example.com", "fxample.com"}, lines)
}

func TestFormat_CLIShowsFirstRecordOnly(t *testing.T) {
	out, err := New(nil).Format(sampleCandidates(), "cli", false)
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3.4")
	assert.NotContains(t, out, "1.2.3.5")
}

func TestFormat_CLIShowsAllRecordsWhenRequested(t *testing.T) {
	out, err := New(nil).Format(sampleCandidates(), "cli", true)
	require.NoError(t, err)
	assert.Contains(t, out, "1.2.3.4;1.2.3.5")
}

func TestFormat_CSVHeaderAndRows(t *testing.T) {
	out, err := New(nil).Format(sampleCandidates(), "csv", false)
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(out))
	records, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{
		"fuzzer", "domain-name", "dns-a", "dns-aaaa", "dns-mx", "dns-ns",
		"geoip-country", "whois-created", "whois-updated", "ssdeep-score",
	}, records[0])
	assert.Equal(t, "example.com", records[1][1])
	assert.Equal(t, "1.2.3.4", records[1][2])
	assert.Equal(t, "", records[1][3], "dns-aaaa is always blank: coalesced into dns-a")
}

func TestFormat_JSONSortedByDomainName(t *testing.T) {
	out, err := New(nil).Format(sampleCandidates(), "json", false)
	require.NoError(t, err)

	var records []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "example.com", records[0]["domain-name"])
	assert.Equal(t, "fxample.com", records[1]["domain-name"])
}

func TestFormat_JSONKeyOrderIsAlphabetical(t *testing.T) {
	full := model.Candidate{Algorithm: model.Bitsquatting, Name: "fxample.com"}
	full.AppendRecord(model.RecordA, "9.9.9.9")
	full.AppendRecord(model.RecordNS, "ns1.fxample.com")

	out, err := New(nil).Format([]model.Candidate{full}, "json", false)
	require.NoError(t, err)

	idx := func(key string) int { return strings.Index(out, `"`+key+`"`) }
	assert.Less(t, idx("dns-a"), idx("dns-ns"))
	assert.Less(t, idx("dns-ns"), idx("domain-name"))
	assert.Less(t, idx("domain-name"), idx("fuzzer"))
}

func TestFormat_UnknownFormatErrors(t *testing.T) {
	_, err := New(nil).Format(sampleCandidates(), "yaml", false)
	assert.Error(t, err)
}

func TestFormat_DefaultsToCLI(t *testing.T) {
	out, err := New(nil).Format(sampleCandidates(), "", false)
	require.NoError(t, err)
	assert.Contains(t, out, "example.com")
}
