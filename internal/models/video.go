package models

import "strings"

// VideoDetail is one row of video metadata and statistics. The column set is
// fixed; optional columns are pointers and stay nil when the API response
// omitted the attribute, so absence survives into the JSON/CSV output.
type VideoDetail struct {
	VideoID       string   `json:"video_id"`
	ChannelTitle  *string  `json:"channelTitle"`
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Tags          []string `json:"tags"`
	PublishedAt   *string  `json:"publishedAt"`
	ViewCount     *string  `json:"viewCount"`
	LikeCount     *string  `json:"likeCount"`
	FavoriteCount *string  `json:"favoriteCount"`
	CommentCount  *string  `json:"commentCount"`
	Duration      *string  `json:"duration"`
	Definition    *string  `json:"definition"`
	Caption       *string  `json:"caption"`
}

// VideoTable holds one VideoDetail row per video, in response order.
type VideoTable []VideoDetail

func (t VideoTable) Header() []string {
	return []string{
		"video_id", "channelTitle", "title", "description", "tags",
		"publishedAt", "viewCount", "likeCount", "favoriteCount",
		"commentCount", "duration", "definition", "caption",
	}
}

func (t VideoTable) Rows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, v := range t {
		rows = append(rows, []string{
			v.VideoID,
			deref(v.ChannelTitle),
			deref(v.Title),
			deref(v.Description),
			strings.Join(v.Tags, ";"),
			deref(v.PublishedAt),
			deref(v.ViewCount),
			deref(v.LikeCount),
			deref(v.FavoriteCount),
			deref(v.CommentCount),
			deref(v.Duration),
			deref(v.Definition),
			deref(v.Caption),
		})
	}
	return rows
}

// VideoListResponse represents the response from YouTube API for video list.
// Statistics values stay numeric strings as transmitted; every optional field
// is a pointer so a missing key decodes to nil rather than a zero value.
type VideoListResponse struct {
	Items []VideoItem `json:"items"`
}

type VideoItem struct {
	ID             string               `json:"id"`
	Snippet        *VideoSnippet        `json:"snippet"`
	ContentDetails *VideoContentDetails `json:"contentDetails"`
	Statistics     *VideoStatistics     `json:"statistics"`
}

type VideoSnippet struct {
	ChannelTitle *string  `json:"channelTitle"`
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Tags         []string `json:"tags"`
	PublishedAt  *string  `json:"publishedAt"`
}

type VideoContentDetails struct {
	Duration   *string `json:"duration"`
	Definition *string `json:"definition"`
	Caption    *string `json:"caption"`
}

type VideoStatistics struct {
	ViewCount     *string `json:"viewCount"`
	LikeCount     *string `json:"likeCount"`
	FavoriteCount *string `json:"favoriteCount"`
	CommentCount  *string `json:"commentCount"`
}
