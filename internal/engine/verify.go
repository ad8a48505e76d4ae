package engine

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

// RejectReason says why a candidate failed probing. Accepted means live.
type RejectReason int

const (
	Accepted RejectReason = iota
	RejectTimeout
	RejectConnection
	RejectStatus
	RejectContentType
	RejectEmptyBody
	RejectUnknown
	numRejectReasons
)

var rejectNames = [numRejectReasons]string{
	Accepted:          "accepted",
	RejectTimeout:     "timeout",
	RejectConnection:  "connection",
	RejectStatus:      "status",
	RejectContentType: "content_type",
	RejectEmptyBody:   "empty_body",
	RejectUnknown:     "unknown",
}

func (r RejectReason) String() string {
	if r < 0 || r >= numRejectReasons {
		return "invalid"
	}
	return rejectNames[r]
}

// Verdict is the outcome of probing one candidate URL.
type Verdict struct {
	URL        string
	Reason     RejectReason
	StatusCode int
	Err        error
}

// Live reports whether the candidate passed every check.
func (v Verdict) Live() bool { return v.Reason == Accepted }

// Verifier probes candidate API URLs for liveness.
type Verifier struct {
	Fetcher   Fetcher // must expose Content-Type, i.e. an HTTPFetcher
	Timeout   time.Duration
	MinLength int
}

// NewVerifier builds a Verifier backed by a plain HTTP fetcher.
func NewVerifier(cfg Config) *Verifier {
	return &Verifier{
		Fetcher:   NewHTTPFetcher(cfg.VerifyTimeout),
		Timeout:   cfg.VerifyTimeout,
		MinLength: cfg.VerifyMinLength,
	}
}

// Verify probes urls one by one and returns the live ones in input order.
func (v *Verifier) Verify(ctx context.Context, urls []string) []string {
	var live []string
	slog.Info("verify: start", slog.Int("candidates", len(urls)))

	for i, u := range urls {
		if ctx.Err() != nil {
			break
		}
		verdict := v.Probe(ctx, u)
		if verdict.Live() {
			live = append(live, u)
			slog.Info("verify: live", slog.Int("n", i+1), slog.Int("of", len(urls)), slog.String("url", u))
			continue
		}
		attrs := []any{
			slog.Int("n", i+1), slog.Int("of", len(urls)),
			slog.String("url", u), slog.String("reason", verdict.Reason.String()),
		}
		if verdict.StatusCode != 0 {
			attrs = append(attrs, slog.Int("status", verdict.StatusCode))
		}
		if verdict.Err != nil {
			attrs = append(attrs, slog.Any("error", verdict.Err))
		}
		slog.Info("verify: rejected", attrs...)
	}

	slog.Info("verify: done", slog.Int("live", len(live)))
	return live
}

// Probe fetches u once and applies the acceptance checks: status 200, a JSON
// content type, and a trimmed body of at least MinLength runes that is not
// an empty object or array.
func (v *Verifier) Probe(ctx context.Context, u string) Verdict {
	metrics.Probes.Add(1)
	verdict := v.probe(ctx, u)
	if verdict.Live() {
		metrics.ProbesLive.Add(1)
	} else {
		incrReject(verdict.Reason)
	}
	return verdict
}

func (v *Verifier) probe(ctx context.Context, u string) Verdict {
	if v.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.Timeout)
		defer cancel()
	}

	resp, err := v.Fetcher.Fetch(ctx, u)
	if err != nil {
		return Verdict{URL: u, Reason: classifyError(err), Err: err}
	}
	return Verdict{URL: u, Reason: v.check(resp), StatusCode: resp.StatusCode}
}

func (v *Verifier) check(resp *Response) RejectReason {
	if resp.StatusCode != http.StatusOK {
		return RejectStatus
	}
	if !isJSONContentType(resp.ContentType) {
		return RejectContentType
	}
	body := strings.TrimSpace(resp.Body)
	if utf8.RuneCountInString(body) < v.MinLength || body == "{}" || body == "[]" {
		return RejectEmptyBody
	}
	return Accepted
}

func isJSONContentType(ct string) bool {
	ct = strings.ToLower(ct)
	return strings.Contains(ct, "application/json") || strings.Contains(ct, "text/json")
}

// classifyError maps a fetch error to a rejection reason.
func classifyError(err error) RejectReason {
	if errors.Is(err, context.DeadlineExceeded) {
		return RejectTimeout
	}

	// Timeout errors (net.Error includes OpError, so check before OpError)
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return RejectTimeout
	}

	// Connection errors (dial failures, connection refused, resets)
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return RejectConnection
	}

	// DNS errors
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return RejectConnection
	}

	// Server hung up mid-response
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return RejectConnection
	}

	return RejectUnknown
}
