package models

import "strconv"

// ChannelStats is one row of channel metadata and statistics.
type ChannelStats struct {
	ChannelID         string `json:"channelId"`
	ChannelName       string `json:"channelName"`
	Subscribers       uint64 `json:"subscribers"`
	Views             uint64 `json:"views"`
	TotalVideos       uint64 `json:"totalVideos"`
	UploadsPlaylistID string `json:"playlistId"`
}

// ChannelTable holds one ChannelStats row per requested channel,
// in the order the API returned them.
type ChannelTable []ChannelStats

func (t ChannelTable) Header() []string {
	return []string{"channelId", "channelName", "subscribers", "views", "totalVideos", "playlistId"}
}

func (t ChannelTable) Rows() [][]string {
	rows := make([][]string, 0, len(t))
	for _, c := range t {
		rows = append(rows, []string{
			c.ChannelID,
			c.ChannelName,
			strconv.FormatUint(c.Subscribers, 10),
			strconv.FormatUint(c.Views, 10),
			strconv.FormatUint(c.TotalVideos, 10),
			c.UploadsPlaylistID,
		})
	}
	return rows
}
