// Package ranking implements the time-decayed feed ordering. Rank is a
// transient, per-request value and is never persisted.
package ranking

import (
	"math"
	"sort"
	"time"

	"frontpage/app/models"
)

// recencyWeight controls how fast old posts lose rank. The higher the
// exponent, the faster recency advantage decays regardless of score.
const recencyWeight = 1.5

// Rank maps (score, age) to a sortable value:
//
//	(score + 1) / (1 + ageInHours)^1.5
//
// score+1 keeps zero-score posts positive so recency still differentiates
// them; the +1 in the base avoids division by zero for brand-new posts.
func Rank(score int, createdAt, now time.Time) float64 {
	ageInHours := float64(now.Sub(createdAt).Milliseconds()) / (1000 * 60 * 60)
	return float64(score+1) / math.Pow(1+ageInHours, recencyWeight)
}

// SortByRank orders posts descending by rank evaluated at now. Ties keep
// their input order.
func SortByRank(posts []*models.Post, now time.Time) {
	sort.SliceStable(posts, func(i, j int) bool {
		return Rank(posts[i].Score, posts[i].CreatedAt, now) > Rank(posts[j].Score, posts[j].CreatedAt, now)
	})
}
