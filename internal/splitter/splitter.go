// Package splitter normalizes a URL-ish input into a (stem, tld) Split,
// consulting a PublicSuffixIndex to recognize compound TLDs such as
// "co.uk".
package splitter

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/ravensec/domaintwist/internal/model"
	"github.com/ravensec/domaintwist/internal/suffix"
)

// ErrInvalidDomain is returned when the input fails host validation.
var ErrInvalidDomain = errors.New("invalid domain")

var hostRe = regexp.MustCompile(`(?i)^([a-z0-9]+(-[a-z0-9]+)*\.)+[a-z]{2,}$`)

// Splitter turns a domain or URL into a Split, using idx to resolve
// compound effective TLDs.
type Splitter struct {
	idx *suffix.Index
}

// New returns a Splitter backed by idx.
func New(idx *suffix.Index) *Splitter {
	return &Splitter{idx: idx}
}

// Split strips a leading scheme (prepending a dummy one if absent), parses
// the remainder per RFC 3986, lowercases and validates the host, then
// splits it into a stem and (possibly compound) TLD.
func (s *Splitter) Split(input string) (model.Split, error) {
	raw := input
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return model.Split{}, fmt.Errorf("%w: %v", ErrInvalidDomain, err)
	}

	host := u.Hostname()
	host = strings.ToLower(strings.TrimSuffix(host, "."))

	if host == "" || len(host) > 255 || !hostRe.MatchString(host) {
		return model.Split{}, fmt.Errorf("%w: %q", ErrInvalidDomain, input)
	}

	labels := strings.Split(host, ".")
	if len(labels) == 2 {
		return model.Split{Stem: labels[0], TLD: labels[1]}, nil
	}

	last := labels[len(labels)-1]
	secondLast := labels[len(labels)-2]
	if s.idx != nil && s.idx.Has(last, secondLast) {
		stem := strings.Join(labels[:len(labels)-2], ".")
		return model.Split{Stem: stem, TLD: secondLast + "." + last}, nil
	}

	stem := strings.Join(labels[:len(labels)-1], ".")
	return model.Split{Stem: stem, TLD: last}, nil
}
