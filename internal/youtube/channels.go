package youtube

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/yt-collector/internal/models"
)

// FetchChannelStats fetches metadata and statistics for a set of channels
// with a single request, IDs joined into one comma-separated filter. The
// table holds one row per returned item, in response order. The per-request
// ID ceiling is the caller's concern; no pagination is attempted.
func (c *Client) FetchChannelStats(ctx context.Context, channelIDs []string) (models.ChannelTable, error) {
	if len(channelIDs) == 0 {
		return nil, ErrNoChannelIDs
	}

	call := c.service.Channels.List([]string{"snippet", "contentDetails", "statistics"}).
		Id(strings.Join(channelIDs, ",")).
		Context(ctx)

	resp, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("fetch channel stats: %w", err)
	}

	table := make(models.ChannelTable, 0, len(resp.Items))
	for _, item := range resp.Items {
		row := models.ChannelStats{ChannelID: item.Id}
		if item.Snippet != nil {
			row.ChannelName = item.Snippet.Title
		}
		if item.Statistics != nil {
			row.Subscribers = item.Statistics.SubscriberCount
			row.Views = item.Statistics.ViewCount
			row.TotalVideos = item.Statistics.VideoCount
		}
		if item.ContentDetails != nil && item.ContentDetails.RelatedPlaylists != nil {
			row.UploadsPlaylistID = item.ContentDetails.RelatedPlaylists.Uploads
		}
		table = append(table, row)
	}

	log.Debug().
		Int("requested", len(channelIDs)).
		Int("returned", len(table)).
		Msg("channel stats fetched")

	return table, nil
}
