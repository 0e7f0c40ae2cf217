package research

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vartanbeno/go-reddit/v2/reddit"

	"scary-story-pipeline/config"
	"scary-story-pipeline/types"
)

// Scraper fetches candidate stories from a subreddit
type Scraper struct {
	cfg    config.ResearchConfig
	client *reddit.Client
}

// NewScraper creates a read-only reddit Scraper (no API credentials)
func NewScraper(cfg config.ResearchConfig) (*Scraper, error) {
	client, err := reddit.NewReadonlyClient()
	if err != nil {
		return nil, fmt.Errorf("reddit client: %w", err)
	}
	return &Scraper{cfg: cfg, client: client}, nil
}

// TopStories fetches the subreddit's top posts for the configured time
// filter, drops removed/deleted/too-short selftext, and returns the
// remainder sorted by score descending.
func (s *Scraper) TopStories(ctx context.Context) ([]*types.Story, error) {
	log.Printf("[research] Fetching top stories from r/%s (%s)...", s.cfg.Subreddit, s.cfg.TimeFilter)

	posts, _, err := s.client.Subreddit.TopPosts(ctx, s.cfg.Subreddit, &reddit.ListPostOptions{
		ListOptions: reddit.ListOptions{Limit: s.cfg.Limit},
		Time:        s.cfg.TimeFilter,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch r/%s: %w", s.cfg.Subreddit, err)
	}

	var stories []*types.Story
	for _, post := range posts {
		body := strings.TrimSpace(post.Body)
		if body == "" || body == "[removed]" || body == "[deleted]" {
			continue
		}
		if len(body) < s.cfg.MinBodyChars {
			continue
		}

		story := &types.Story{
			ID:          post.ID,
			Title:       post.Title,
			Author:      post.Author,
			Score:       post.Score,
			UpvoteRatio: float64(post.UpvoteRatio),
			URL:         "https://reddit.com" + post.Permalink,
			Text:        body,
			NumComments: post.NumberOfComments,
		}
		if post.Created != nil {
			story.CreatedUTC = post.Created.Unix()
			story.CreatedDate = post.Created.Format("2006-01-02 15:04:05")
		}
		stories = append(stories, story)
	}

	sort.Slice(stories, func(i, j int) bool {
		return stories[i].Score > stories[j].Score
	})

	log.Printf("[research] Retrieved %d usable stories", len(stories))
	return stories, nil
}

// SaveStoryJSON persists a story record for the downstream stages
func SaveStoryJSON(story *types.Story, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(story, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	log.Printf("[research] 💾 Story saved to %s", path)
	return nil
}

// StoryStats logs a short digest of the candidate set
func StoryStats(stories []*types.Story) {
	if len(stories) == 0 {
		return
	}
	total := 0
	for _, s := range stories {
		total += s.Score
	}
	log.Printf("[research] %d stories, top score %d, average %.0f",
		len(stories), stories[0].Score, float64(total)/float64(len(stories)))
}
