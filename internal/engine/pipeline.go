package engine

import (
	"context"
	"log/slog"
)

// Pipeline runs harvest → scrape → verify → write.
type Pipeline struct {
	Harvester *Harvester
	Scraper   *Scraper
	Verifier  *Verifier
	Writer    *Writer
}

// New wires a pipeline from cfg. pages fetches search results and channel
// pages; liveness probes always go through net/http since they need the
// Content-Type header.
func New(cfg Config, pages Fetcher) (*Pipeline, error) {
	engines, err := cfg.SearchEngines()
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		Harvester: NewHarvester(cfg, engines, pages),
		Scraper:   &Scraper{Fetcher: pages, Delay: cfg.SleepTime},
		Verifier:  NewVerifier(cfg),
		Writer:    NewWriter(cfg),
	}, nil
}

// Run executes one full pass. An empty stage stops the run early, but the
// output file is written in every case. The only error is a failed write.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	var rep Report

	channels := p.Harvester.Harvest(ctx)
	rep.Channels = len(channels)
	if len(channels) == 0 {
		slog.Warn("pipeline: no recent channels found, stopping")
		rep.Stopped = "no channels"
		return rep, p.Writer.Write(nil)
	}

	candidates := p.Scraper.Scrape(ctx, channels)
	rep.Candidates = len(candidates)
	if len(candidates) == 0 {
		slog.Warn("pipeline: no api urls scraped from channels, stopping")
		rep.Stopped = "no candidates"
		return rep, p.Writer.Write(nil)
	}

	rep.Live = p.Verifier.Verify(ctx, candidates)
	return rep, p.Writer.Write(rep.Live)
}
