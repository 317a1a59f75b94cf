// Package resolver implements the ResolverPool: it round-robins DNS
// queries across a configured list of resolver endpoints using
// github.com/miekg/dns, the same library the teacher program already
// depended on for its single-resolver lookups.
package resolver

import (
	"context"
	"fmt"
	"net"
	"sync/atomic"
	"time"

	"github.com/miekg/dns"
)

// queryTimeout is fixed at 5 seconds per spec.md section 4.5 and is not
// configurable per query; only the set of endpoints and the transport
// port are.
const queryTimeout = 5 * time.Second

// RecordAnswer is one answer-section entry, already reduced to the kind
// and value the worker pool cares about.
type RecordAnswer struct {
	Kind  string // "A", "AAAA", "NS", "MX"
	Value string
}

// Reply carries a query's response code and its answer section.
type Reply struct {
	Rcode   int
	Answers []RecordAnswer
}

// IsNXDOMAIN reports whether the reply's rcode is NXDOMAIN.
func (r *Reply) IsNXDOMAIN() bool {
	return r != nil && r.Rcode == dns.RcodeNameError
}

// Endpoint is one configured resolver, as host:port.
type Endpoint struct {
	Host string
	Port int
}

func (e Endpoint) String() string {
	return net.JoinHostPort(e.Host, fmt.Sprintf("%d", e.Port))
}

// Pool round-robins queries across a list of resolver endpoints. The
// cursor is advanced atomically; under contention the round-robin need not
// be strictly fair, only monotonic.
type Pool struct {
	endpoints []Endpoint
	cursor    uint64
	client    *dns.Client
}

// New builds a Pool over endpoints. At least one endpoint is required.
func New(endpoints []Endpoint) (*Pool, error) {
	if len(endpoints) == 0 {
		return nil, fmt.Errorf("resolver: at least one nameserver is required")
	}
	return &Pool{
		endpoints: endpoints,
		client:    &dns.Client{Net: "udp", Timeout: queryTimeout},
	}, nil
}

// next returns the endpoint for this call and advances the shared cursor.
func (p *Pool) next() Endpoint {
	i := atomic.AddUint64(&p.cursor, 1) - 1
	return p.endpoints[i%uint64(len(p.endpoints))]
}

// Lookup issues a single query of qtype IN-class against the next
// round-robin endpoint. A timed-out or network-failed query is reported as
// an error; the caller (the worker pool) treats that identically to "no
// records" and does not retry.
func (p *Pool) Lookup(ctx context.Context, name string, qtype uint16) (*Reply, error) {
	endpoint := p.next()

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(name), qtype)
	msg.RecursionDesired = true

	reqCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	resp, _, err := p.client.ExchangeContext(reqCtx, msg, endpoint.String())
	if err != nil {
		return nil, fmt.Errorf("resolver: query %s against %s: %w", name, endpoint, err)
	}

	reply := &Reply{Rcode: resp.Rcode}
	for _, rr := range resp.Answer {
		switch v := rr.(type) {
		case *dns.A:
			reply.Answers = append(reply.Answers, RecordAnswer{Kind: "A", Value: v.A.String()})
		case *dns.AAAA:
			reply.Answers = append(reply.Answers, RecordAnswer{Kind: "AAAA", Value: v.AAAA.String()})
		case *dns.NS:
			reply.Answers = append(reply.Answers, RecordAnswer{Kind: "NS", Value: v.Ns})
		case *dns.MX:
			reply.Answers = append(reply.Answers, RecordAnswer{Kind: "MX", Value: v.Mx})
		}
	}
	return reply, nil
}

// LookupA issues an A-class IN query, which is what the worker pool uses
// to decide liveness.
func (p *Pool) LookupA(ctx context.Context, name string) (*Reply, error) {
	return p.Lookup(ctx, name, dns.TypeA)
}

// LookupNS issues an NS query.
func (p *Pool) LookupNS(ctx context.Context, name string) (*Reply, error) {
	return p.Lookup(ctx, name, dns.TypeNS)
}

// LookupMX issues an MX query.
func (p *Pool) LookupMX(ctx context.Context, name string) (*Reply, error) {
	return p.Lookup(ctx, name, dns.TypeMX)
}
