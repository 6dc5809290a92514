package youtube

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestFetchChannelStats(t *testing.T) {
	var gotIDParam string
	requests := 0

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/channels" {
			t.Errorf("request path = %s, want /channels", r.URL.Path)
		}
		gotIDParam = r.URL.Query().Get("id")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{
					"id": "UC1",
					"snippet": {"title": "Channel One"},
					"contentDetails": {"relatedPlaylists": {"uploads": "UU1"}},
					"statistics": {"subscriberCount": "1200", "viewCount": "340000", "videoCount": "57"}
				},
				{
					"id": "UC2",
					"snippet": {"title": "Channel Two"},
					"contentDetails": {"relatedPlaylists": {"uploads": "UU2"}},
					"statistics": {"subscriberCount": "88", "viewCount": "900", "videoCount": "3"}
				}
			]
		}`))
	})

	c := newTestClient(t, handler)

	table, err := c.FetchChannelStats(context.Background(), []string{"UC1", "UC2"})
	if err != nil {
		t.Fatalf("FetchChannelStats() error = %v", err)
	}

	if requests != 1 {
		t.Errorf("FetchChannelStats() made %d requests, want 1", requests)
	}
	if gotIDParam != "UC1,UC2" {
		t.Errorf("id param = %q, want %q", gotIDParam, "UC1,UC2")
	}
	if len(table) != 2 {
		t.Fatalf("FetchChannelStats() got %d rows, want 2", len(table))
	}

	first := table[0]
	if first.ChannelID != "UC1" || first.ChannelName != "Channel One" {
		t.Errorf("first row = %+v, want UC1/Channel One", first)
	}
	if first.Subscribers != 1200 || first.Views != 340000 || first.TotalVideos != 57 {
		t.Errorf("first row counts = %d/%d/%d, want 1200/340000/57",
			first.Subscribers, first.Views, first.TotalVideos)
	}
	if first.UploadsPlaylistID != "UU1" {
		t.Errorf("first row uploads playlist = %q, want UU1", first.UploadsPlaylistID)
	}
	if table[1].ChannelID != "UC2" {
		t.Errorf("second row channel ID = %q, want UC2", table[1].ChannelID)
	}
}

func TestFetchChannelStatsResponseOrder(t *testing.T) {
	// Rows follow response order even when it differs from request order.
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{"id":"UC2"},{"id":"UC1"}]}`))
	})

	c := newTestClient(t, handler)

	table, err := c.FetchChannelStats(context.Background(), []string{"UC1", "UC2"})
	if err != nil {
		t.Fatalf("FetchChannelStats() error = %v", err)
	}
	if len(table) != 2 || table[0].ChannelID != "UC2" || table[1].ChannelID != "UC1" {
		t.Errorf("FetchChannelStats() rows = %+v, want UC2 then UC1", table)
	}
}

func TestFetchChannelStatsEmptyIDs(t *testing.T) {
	requests := 0
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	c := newTestClient(t, handler)

	if _, err := c.FetchChannelStats(context.Background(), nil); !errors.Is(err, ErrNoChannelIDs) {
		t.Fatalf("FetchChannelStats() error = %v, want ErrNoChannelIDs", err)
	}
	if requests != 0 {
		t.Errorf("FetchChannelStats() made %d requests, want 0", requests)
	}
}

func TestFetchChannelStatsAPIError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"quotaExceeded"}}`))
	})

	c := newTestClient(t, handler)

	_, err := c.FetchChannelStats(context.Background(), []string{"UC1"})
	if err == nil {
		t.Fatal("FetchChannelStats() expected error, got nil")
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("FetchChannelStats() error = %v, want *googleapi.Error", err)
	}
	if apiErr.Code != http.StatusForbidden {
		t.Errorf("googleapi.Error code = %d, want %d", apiErr.Code, http.StatusForbidden)
	}
}
