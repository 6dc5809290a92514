package youtube

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ListPlaylistVideoIDs enumerates every video ID in a playlist by walking
// the paginated listing to exhaustion. IDs are appended in page order, then
// item order within each page; nothing is deduplicated or reordered. With a
// page limit configured, hitting the cap while more pages remain fails with
// ErrPageLimit rather than returning a truncated list.
func (c *Client) ListPlaylistVideoIDs(ctx context.Context, playlistID string) ([]string, error) {
	var videoIDs []string
	nextPageToken := ""
	pages := 0

	for {
		call := c.service.PlaylistItems.List([]string{"snippet", "contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(50).
			Context(ctx)
		if nextPageToken != "" {
			call = call.PageToken(nextPageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("fetch playlist page: %w", err)
		}

		for _, item := range resp.Items {
			if item.ContentDetails != nil {
				videoIDs = append(videoIDs, item.ContentDetails.VideoId)
			}
		}

		pages++
		if resp.NextPageToken == "" {
			break
		}
		if c.pageLimit > 0 && pages >= c.pageLimit {
			return nil, fmt.Errorf("%w: stopped after %d pages of playlist %s", ErrPageLimit, pages, playlistID)
		}
		nextPageToken = resp.NextPageToken
	}

	log.Debug().
		Str("playlist_id", playlistID).
		Int("pages", pages).
		Int("videos", len(videoIDs)).
		Msg("playlist enumerated")

	return videoIDs, nil
}
