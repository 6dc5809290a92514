package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestWriteCSVVideoTable(t *testing.T) {
	title := "First Video"
	views := "42"
	table := VideoTable{
		{
			VideoID:   "v1",
			Title:     &title,
			Tags:      []string{"go", "testing"},
			ViewCount: &views,
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("WriteCSV() wrote %d lines, want 2", len(lines))
	}

	wantHeader := "video_id,channelTitle,title,description,tags,publishedAt,viewCount,likeCount,favoriteCount,commentCount,duration,definition,caption"
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}

	wantRow := "v1,,First Video,,go;testing,,42,,,,,,"
	if lines[1] != wantRow {
		t.Errorf("row = %q, want %q", lines[1], wantRow)
	}
}

func TestWriteCSVEmptyVideoTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, VideoTable{}); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("WriteCSV() wrote %d lines, want header only", len(lines))
	}
	if cols := strings.Split(lines[0], ","); len(cols) != 13 {
		t.Errorf("empty table header has %d columns, want 13", len(cols))
	}
}

func TestWriteCSVChannelTable(t *testing.T) {
	table := ChannelTable{
		{
			ChannelID:         "UC1",
			ChannelName:       "Channel One",
			Subscribers:       1200,
			Views:             340000,
			TotalVideos:       57,
			UploadsPlaylistID: "UU1",
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, table); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("WriteCSV() wrote %d lines, want 2", len(lines))
	}
	if want := "channelId,channelName,subscribers,views,totalVideos,playlistId"; lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
	if want := "UC1,Channel One,1200,340000,57,UU1"; lines[1] != want {
		t.Errorf("row = %q, want %q", lines[1], want)
	}
}

func TestVideoDetailJSONKeepsAbsentColumns(t *testing.T) {
	data, err := json.Marshal(VideoDetail{VideoID: "v1"})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if len(m) != 13 {
		t.Fatalf("marshaled row has %d keys, want 13", len(m))
	}
	if m["video_id"] != "v1" {
		t.Errorf("video_id = %v, want v1", m["video_id"])
	}
	for _, key := range []string{"tags", "viewCount", "duration", "channelTitle"} {
		if v, ok := m[key]; !ok || v != nil {
			t.Errorf("key %s = %v (present %v), want explicit null", key, v, ok)
		}
	}
}
