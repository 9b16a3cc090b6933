package runtime

import (
	"chat-bridge/broadcast"
	"chat-bridge/domain"
	"chat-bridge/errors"
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
)

// SearchUsers walks the follow graph of the searcher one radius at a time,
// radius 0 being the searcher's own follows, and reports progress on a
// dedicated feed that closes once the search is over.
//
// The feed is subscribed before the walk starts so the first RadiusStarted
// is never missed. Its snapshot is always empty.
func (c *Core) SearchUsers(ctx context.Context, params domain.UserSearchParams) (domain.UserSearchSubscription, error) {
	if err := params.Validate(); err != nil {
		return domain.UserSearchSubscription{}, err
	}

	c.mu.Lock()
	if _, ok := c.accounts[params.SearcherPubkey]; !ok {
		c.mu.Unlock()
		return domain.UserSearchSubscription{}, fmt.Errorf("%w: %s", errors.ErrAccountNotFound, params.SearcherPubkey)
	}
	layers := c.followLayers(params.SearcherPubkey, params.RadiusEnd)
	profiles := make(map[domain.PublicKey]domain.Metadata, len(c.metadata))
	for pubkey, metadata := range c.metadata {
		profiles[pubkey] = metadata
	}
	c.mu.Unlock()

	feed := broadcast.New[domain.UserSearchUpdate](c.cfg.BufferSize)
	rx := feed.Subscribe()
	s := &search{
		params:   params,
		query:    strings.ToLower(strings.TrimSpace(params.Query)),
		layers:   layers,
		profiles: profiles,
		cap:      c.cfg.SearchRadiusCap,
		timeout:  c.cfg.SearchRadiusTimeout,
		feed:     feed,
	}
	go func() {
		defer feed.Close()
		s.run(ctx)
		c.log.Debug("Search finished", "searcher", params.SearcherPubkey, "results", s.total)
	}()

	return domain.UserSearchSubscription{Updates: rx}, nil
}

// followLayers returns, for each radius up to maxRadius, the pubkeys first
// reached at that distance. Layers are sorted for a stable walk.
func (c *Core) followLayers(searcher domain.PublicKey, maxRadius uint8) [][]domain.PublicKey {
	seen := map[domain.PublicKey]struct{}{searcher: {}}
	frontier := []domain.PublicKey{searcher}
	layers := make([][]domain.PublicKey, 0, int(maxRadius)+1)
	for radius := 0; radius <= int(maxRadius); radius++ {
		var next []domain.PublicKey
		for _, pubkey := range frontier {
			for _, followed := range c.follows[pubkey] {
				if _, ok := seen[followed]; ok {
					continue
				}
				seen[followed] = struct{}{}
				next = append(next, followed)
			}
		}
		sort.Slice(next, func(i, j int) bool { return next[i] < next[j] })
		layers = append(layers, next)
		frontier = next
	}
	return layers
}

type search struct {
	params   domain.UserSearchParams
	query    string
	layers   [][]domain.PublicKey
	profiles map[domain.PublicKey]domain.Metadata
	cap      int
	timeout  time.Duration
	feed     *broadcast.Broadcaster[domain.UserSearchUpdate]
	total    uint64
	searched uint64
}

func (s *search) emit(trigger domain.SearchUpdateTrigger, results []domain.UserSearchResult) {
	if results == nil {
		results = []domain.UserSearchResult{}
	}
	_, _ = s.feed.Send(domain.UserSearchUpdate{
		Trigger:          trigger,
		NewResults:       results,
		TotalResultCount: s.total,
	})
}

func (s *search) run(ctx context.Context) {
	finalRadius := s.params.RadiusStart
	for radius := s.params.RadiusStart; radius <= s.params.RadiusEnd; radius++ {
		if ctx.Err() != nil {
			s.emit(domain.SearchErrorTrigger("search cancelled"), nil)
			return
		}
		finalRadius = radius
		s.emit(domain.RadiusStarted(radius), nil)

		layer := s.layers[radius]
		if s.cap > 0 && len(layer) > s.cap {
			s.emit(domain.RadiusCapped(radius, uint64(s.cap), uint64(len(layer))), nil)
			layer = layer[:s.cap]
		}

		deadline := time.Now().Add(s.timeout)
		var found []domain.UserSearchResult
		timedOut := false
		for _, pubkey := range layer {
			if time.Now().After(deadline) {
				timedOut = true
				break
			}
			s.searched++
			if result, ok := s.match(pubkey, radius); ok {
				found = append(found, result)
			}
		}

		if len(found) > 0 {
			sortResults(found)
			s.total += uint64(len(found))
			s.emit(domain.ResultsFound(), found)
		}
		if timedOut {
			s.emit(domain.RadiusTimeout(radius), nil)
		} else {
			s.emit(domain.RadiusCompleted(radius, s.searched), nil)
		}

		// nobody further away can be reached
		if len(s.layers[radius]) == 0 {
			break
		}
	}
	s.emit(domain.SearchCompletedTrigger(finalRadius, s.total), nil)
}

var fieldOrder = []domain.MatchedField{
	domain.FieldName, domain.FieldDisplayName, domain.FieldNip05, domain.FieldAbout,
}

var qualityRank = map[domain.MatchQuality]int{
	domain.MatchExact:    0,
	domain.MatchPrefix:   1,
	domain.MatchContains: 2,
}

func (s *search) match(pubkey domain.PublicKey, radius uint8) (domain.UserSearchResult, bool) {
	metadata, ok := s.profiles[pubkey]
	if !ok {
		return domain.UserSearchResult{}, false
	}
	values := map[domain.MatchedField]string{
		domain.FieldName:        metadata.Name,
		domain.FieldDisplayName: metadata.DisplayName,
		domain.FieldNip05:       metadata.Nip05,
		domain.FieldAbout:       metadata.About,
	}

	result := domain.UserSearchResult{Pubkey: pubkey, Metadata: metadata, Radius: radius}
	best := -1
	for _, field := range fieldOrder {
		quality, ok := matchQuality(s.query, values[field])
		if !ok {
			continue
		}
		result.MatchedFields = append(result.MatchedFields, field)
		if best == -1 || qualityRank[quality] < best {
			best = qualityRank[quality]
			result.MatchQuality = quality
			result.BestField = field
		}
	}
	return result, best != -1
}

func matchQuality(query, value string) (domain.MatchQuality, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	switch {
	case query == "" || value == "":
		return "", false
	case value == query:
		return domain.MatchExact, true
	case strings.HasPrefix(value, query):
		return domain.MatchPrefix, true
	case strings.Contains(value, query):
		return domain.MatchContains, true
	default:
		return "", false
	}
}

func sortResults(results []domain.UserSearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		qi, qj := qualityRank[results[i].MatchQuality], qualityRank[results[j].MatchQuality]
		if qi != qj {
			return qi < qj
		}
		return results[i].Pubkey < results[j].Pubkey
	})
}
