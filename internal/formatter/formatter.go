// Package formatter implements the Reporter: it renders a slice of
// candidates as a human table, CSV, JSON, or a newline-delimited IDNA
// list, exactly as spec.md section 4.8 lays out the four output shapes.
package formatter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ravensec/domaintwist/internal/model"
	"github.com/ravensec/domaintwist/internal/styler"
)

// Reporter renders candidates in one of the supported output shapes.
type Reporter struct {
	style *styler.Styler
}

// New returns a Reporter that styles cli output through style. style may
// be nil, in which case output is always plain text.
func New(style *styler.Styler) *Reporter {
	return &Reporter{style: style}
}

// Format renders candidates according to format ("cli", "csv", "json", or
// "idle"). showAll controls whether each record family prints every value
// (semicolon-joined) or only the first.
func (r *Reporter) Format(candidates []model.Candidate, format string, showAll bool) (string, error) {
	switch format {
	case "idle":
		return r.idle(candidates), nil
	case "csv":
		return r.csv(candidates, showAll)
	case "json":
		return r.json(candidates)
	case "cli", "":
		return r.cli(candidates, showAll), nil
	default:
		return "", fmt.Errorf("formatter: unknown format %q", format)
	}
}

// idle emits one IDNA-encoded name per line; no DNS resolution has run
// when this shape is requested, so no record columns are present.
func (r *Reporter) idle(candidates []model.Candidate) string {
	var b strings.Builder
	for _, c := range candidates {
		b.WriteString(c.Name)
		b.WriteByte('\n')
	}
	return b.String()
}

func (r *Reporter) cli(candidates []model.Candidate, showAll bool) string {
	var b strings.Builder

	widthAlgo, widthName := 0, 0
	for _, c := range candidates {
		if len(string(c.Algorithm)) > widthAlgo {
			widthAlgo = len(string(c.Algorithm))
		}
		if len(c.Name) > widthName {
			widthName = len(c.Name)
		}
	}

	for _, c := range candidates {
		algo := string(c.Algorithm)
		name := c.Name
		algoCol := algo
		if r.style != nil {
			algoCol = r.style.Algorithm(algo)
		}

		info := r.info(c, showAll)
		if info == "" {
			info = "-"
		}

		fmt.Fprintf(&b, "%s%s %s%s %s\n",
			algoCol, strings.Repeat(" ", widthAlgo-len(algo)+1),
			name, strings.Repeat(" ", widthName-len(name)+1),
			info)
	}
	return b.String()
}

// info concatenates record summaries in the fixed order A, AAAA, NS, MX.
// AAAA is always coalesced under RecordA in this data model (spec.md
// section 3), so the AAAA slot never independently renders, but the order
// is kept exactly as documented.
func (r *Reporter) info(c model.Candidate, showAll bool) string {
	var parts []string
	if a := c.Records[model.RecordA]; len(a) > 0 {
		parts = append(parts, r.oneOrAll(a, showAll))
	}
	if ns := c.Records[model.RecordNS]; len(ns) > 0 {
		label, value := "NS:", r.oneOrAll(ns, showAll)
		if r.style != nil {
			label, value = r.style.Label("NS:"), r.style.Value(value)
		}
		parts = append(parts, label+value)
	}
	if mx := c.Records[model.RecordMX]; len(mx) > 0 {
		label, value := "MX:", r.oneOrAll(mx, showAll)
		if r.style != nil {
			label, value = r.style.Label("MX:"), r.style.Value(value)
		}
		parts = append(parts, label+value)
	}
	return strings.Join(parts, " ")
}

func (r *Reporter) oneOrAll(values []string, showAll bool) string {
	if showAll {
		return strings.Join(values, ";")
	}
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (r *Reporter) csv(candidates []model.Candidate, showAll bool) (string, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	header := []string{
		"fuzzer", "domain-name", "dns-a", "dns-aaaa", "dns-mx", "dns-ns",
		"geoip-country", "whois-created", "whois-updated", "ssdeep-score",
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, c := range candidates {
		row := []string{
			string(c.Algorithm),
			c.Name,
			r.oneOrAll(c.Records[model.RecordA], showAll),
			"", // dns-aaaa: always coalesced into dns-a in this data model
			r.oneOrAll(c.Records[model.RecordMX], showAll),
			r.oneOrAll(c.Records[model.RecordNS], showAll),
			"", // geoip-country: dormant side-channel, see spec.md section 1
			"", // whois-created
			"", // whois-updated
			"", // ssdeep-score
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Field order matches the alphabetical key order spec.md requires
// ("pretty-printed with sorted keys"): dns-a, dns-mx, dns-ns, domain-name,
// fuzzer. encoding/json serializes struct fields in declaration order, so
// the struct is laid out that way rather than sorted at marshal time.
type jsonRecord struct {
	DNSA       []string `json:"dns-a,omitempty"`
	DNSMX      []string `json:"dns-mx,omitempty"`
	DNSNS      []string `json:"dns-ns,omitempty"`
	DomainName string   `json:"domain-name"`
	Fuzzer     string   `json:"fuzzer"`
}

func (r *Reporter) json(candidates []model.Candidate) (string, error) {
	records := make([]jsonRecord, 0, len(candidates))
	for _, c := range candidates {
		records = append(records, jsonRecord{
			DomainName: c.Name,
			Fuzzer:     strings.ToLower(string(c.Algorithm)),
			DNSA:       lowerAll(c.Records[model.RecordA]),
			DNSNS:      lowerAll(c.Records[model.RecordNS]),
			DNSMX:      lowerAll(c.Records[model.RecordMX]),
		})
	}
	sort.Slice(records, func(i, j int) bool { return records[i].DomainName < records[j].DomainName })

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func lowerAll(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = strings.ToLower(v)
	}
	return out
}
