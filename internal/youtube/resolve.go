package youtube

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/googleapi"
)

// ResolveState tags the outcome of a channel resolution.
type ResolveState int

const (
	// ResolveFound means the search produced a channel.
	ResolveFound ResolveState = iota
	// ResolveNotFound means the search came back empty.
	ResolveNotFound
	// ResolveFault means the request itself failed.
	ResolveFault
)

func (s ResolveState) String() string {
	switch s {
	case ResolveFound:
		return "found"
	case ResolveNotFound:
		return "not_found"
	case ResolveFault:
		return "fault"
	default:
		return "unknown"
	}
}

// Resolution is the tagged result of a channel resolution. Err is set only
// when State is ResolveFault.
type Resolution struct {
	State     ResolveState
	ChannelID string
	Title     string
	Err       error
}

// Found reports whether the resolution produced a channel ID.
func (r Resolution) Found() bool {
	return r.State == ResolveFound
}

// ResolveChannel looks up a channel ID by display name using a single search
// request capped at one result. A remote fault is absorbed into the returned
// Resolution and logged; the method never returns an error itself.
func (c *Client) ResolveChannel(ctx context.Context, name string) Resolution {
	call := c.service.Search.List([]string{"id", "snippet"}).
		Q(name).
		Type("channel").
		MaxResults(1).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			log.Error().
				Int("status", apiErr.Code).
				Str("message", apiErr.Message).
				Str("query", name).
				Msg("channel search failed")
		} else {
			log.Error().Err(err).Str("query", name).Msg("channel search failed")
		}
		return Resolution{State: ResolveFault, Err: err}
	}

	for _, item := range resp.Items {
		if item.Id == nil || item.Id.Kind != "youtube#channel" {
			continue
		}
		res := Resolution{State: ResolveFound, ChannelID: item.Id.ChannelId}
		if item.Snippet != nil {
			res.Title = item.Snippet.Title
		}
		return res
	}

	log.Warn().Str("query", name).Msg("no channel found")
	return Resolution{State: ResolveNotFound}
}
