package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/yt-collector/internal/models"
)

// maxBatchSize is the YouTube API maximum number of IDs per videos request.
const maxBatchSize = 50

// FetchVideoDetails fetches metadata and statistics for the given video IDs
// in consecutive batches of up to 50, one request per batch. The table holds
// one row per returned item, batches in input order and rows in response
// order within each batch. Attributes missing from an item's payload leave
// the corresponding columns nil; that is never an error. An empty input
// issues no requests and returns an empty table.
func (c *Client) FetchVideoDetails(ctx context.Context, videoIDs []string) (models.VideoTable, error) {
	table := make(models.VideoTable, 0, len(videoIDs))
	batches := 0

	for i := 0; i < len(videoIDs); i += maxBatchSize {
		end := i + maxBatchSize
		if end > len(videoIDs) {
			end = len(videoIDs)
		}
		batch := videoIDs[i:end]
		batches++

		resp, err := c.listVideos(ctx, batch)
		if err != nil {
			return nil, fmt.Errorf("fetch video details: %w", err)
		}

		for _, item := range resp.Items {
			row := models.VideoDetail{VideoID: item.ID}
			if item.Snippet != nil {
				row.ChannelTitle = item.Snippet.ChannelTitle
				row.Title = item.Snippet.Title
				row.Description = item.Snippet.Description
				row.Tags = item.Snippet.Tags
				row.PublishedAt = item.Snippet.PublishedAt
			}
			if item.Statistics != nil {
				row.ViewCount = item.Statistics.ViewCount
				row.LikeCount = item.Statistics.LikeCount
				row.FavoriteCount = item.Statistics.FavoriteCount
				row.CommentCount = item.Statistics.CommentCount
			}
			if item.ContentDetails != nil {
				row.Duration = item.ContentDetails.Duration
				row.Definition = item.ContentDetails.Definition
				row.Caption = item.ContentDetails.Caption
			}
			table = append(table, row)
		}
	}

	log.Debug().
		Int("requested", len(videoIDs)).
		Int("batches", batches).
		Int("returned", len(table)).
		Msg("video details fetched")

	return table, nil
}

// listVideos performs one videos request for a batch of IDs.
func (c *Client) listVideos(ctx context.Context, ids []string) (*models.VideoListResponse, error) {
	url := fmt.Sprintf("%s/videos?part=snippet,contentDetails,statistics&id=%s&key=%s",
		c.baseURL, strings.Join(ids, ","), c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}

	var out models.VideoListResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode video response: %w", err)
	}

	return &out, nil
}

// decodeAPIError reads the API error envelope from a non-200 response.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var envelope struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	}

	return apiErr
}
