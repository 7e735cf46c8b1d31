// Package youtube fetches top-level video comments from the YouTube Data
// API v3 commentThreads endpoint.
//
// The client paginates the listing with nextPageToken until the listing is
// exhausted or the configured cap is reached, and maps each item onto a
// corpus.RawComment in API order. There are no retries: any transport or
// API error fails the fetch and the caller decides whether to abort.
package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/abljoel/youtube-comments-analysis/corpus"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// defaultPageSize is the API maximum for commentThreads.list.
const defaultPageSize = 100

// Client calls the YouTube Data API.
type Client struct {
	APIKey  string
	BaseURL string // defaults to the public API endpoint
	HTTP    *http.Client

	// PageSize is the maxResults per page, capped at 100 by the API.
	PageSize int
	// MaxComments stops pagination once this many comments are collected.
	// Zero means no cap.
	MaxComments int
}

type commentSnippet struct {
	AuthorDisplayName string `json:"authorDisplayName"`
	PublishedAt       string `json:"publishedAt"`
	UpdatedAt         string `json:"updatedAt"`
	LikeCount         int    `json:"likeCount"`
	TextDisplay       string `json:"textDisplay"`
}

type threadListResponse struct {
	NextPageToken string `json:"nextPageToken"`
	Items         []struct {
		Snippet struct {
			TopLevelComment struct {
				Snippet commentSnippet `json:"snippet"`
			} `json:"topLevelComment"`
		} `json:"snippet"`
	} `json:"items"`
}

// Comments fetches all top-level comments of a video in listing order.
func (c Client) Comments(ctx context.Context, videoID string) ([]corpus.RawComment, error) {
	if c.APIKey == "" {
		return nil, errors.New("youtube: missing API key")
	}
	if videoID == "" {
		return nil, errors.New("youtube: missing video ID")
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	var rows []corpus.RawComment
	pageToken := ""
	for {
		page, err := c.fetchPage(ctx, httpClient, videoID, pageToken)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Items {
			s := item.Snippet.TopLevelComment.Snippet
			rows = append(rows, corpus.RawComment{
				Author:      s.AuthorDisplayName,
				PublishedAt: s.PublishedAt,
				UpdatedAt:   s.UpdatedAt,
				Likes:       s.LikeCount,
				Text:        s.TextDisplay,
			})
			if c.MaxComments > 0 && len(rows) >= c.MaxComments {
				return rows, nil
			}
		}
		if page.NextPageToken == "" {
			return rows, nil
		}
		pageToken = page.NextPageToken
	}
}

func (c Client) fetchPage(ctx context.Context, httpClient *http.Client, videoID, pageToken string) (*threadListResponse, error) {
	base := c.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	pageSize := c.PageSize
	if pageSize <= 0 || pageSize > defaultPageSize {
		pageSize = defaultPageSize
	}

	u, err := url.Parse(base + "/commentThreads")
	if err != nil {
		return nil, fmt.Errorf("youtube: bad base URL: %w", err)
	}
	q := u.Query()
	q.Set("part", "snippet")
	q.Set("videoId", videoID)
	q.Set("maxResults", strconv.Itoa(pageSize))
	q.Set("textFormat", "plainText")
	q.Set("key", c.APIKey)
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("youtube: building request: %w", err)
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("youtube: fetching comment page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("youtube: http %d: %s", resp.StatusCode, body)
	}

	var page threadListResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("youtube: decoding comment page: %w", err)
	}
	return &page, nil
}
