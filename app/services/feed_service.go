package services

import (
	"fmt"
	"time"

	"frontpage/app/models"
	"frontpage/app/ranking"
	"frontpage/app/repositories"
)

// previewLength is the maximum content length shown in the list view.
const previewLength = 150

// FeedService produces the ranked, paginated post feed
type FeedService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *FeedService {
	return &FeedService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// FeedItem is one feed entry: a post with its author's username and the
// content truncated for list view.
type FeedItem struct {
	Post           *models.Post
	AuthorUsername string
	Preview        string
}

// Feed is one page of the ranked feed. NextPage is nil on the last page.
type Feed struct {
	Items    []*FeedItem
	NextPage *int
}

// ListFeed ranks the full post collection at read time, sorts descending,
// and returns the requested page. Rank depends on the request time, so it
// is recomputed on every call and never stored.
func (s *FeedService) ListFeed(page, limit int) (*Feed, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ranking.SortByRank(posts, now)

	offset := limit * (page - 1)
	if offset > len(posts) {
		offset = len(posts)
	}
	end := offset + limit
	if end > len(posts) {
		end = len(posts)
	}
	window := posts[offset:end]

	items := make([]*FeedItem, 0, len(window))
	for _, post := range window {
		author, err := s.userRepo.GetByID(post.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("post %s references missing author %s: %v", post.ID, post.AuthorID, err)
		}
		items = append(items, &FeedItem{
			Post:           post,
			AuthorUsername: author.Username,
			Preview:        truncate(post.Content, previewLength),
		})
	}

	totalCount, err := s.postRepo.Count()
	if err != nil {
		return nil, err
	}

	feed := &Feed{Items: items}
	totalPages := (totalCount + limit - 1) / limit
	if page < totalPages {
		next := page + 1
		feed.NextPage = &next
	}
	return feed, nil
}

func truncate(content string, max int) string {
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max]) + "..."
}
