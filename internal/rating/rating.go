// Package rating contains pure functions which calculate derived ratings.
package rating

import "math"

const (
	likeWeight = 1
	// one comment gives 0.2 of rating, so five comments are worth a single like.
	commentsPerPoint = 5
)

// Article returns article's rating by its likes and comments count.
func Article(likes, comments int) int {
	return Clamp(likes*likeWeight + comments/commentsPerPoint)
}

// Contribution returns the part of author's rating which comes from the author's articles.
// It is the rounded average of articles' ratings or 0 if author has no articles.
func Contribution(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}

	var sum int
	for _, v := range ratings {
		sum += v
	}

	return Clamp(int(math.Round(float64(sum) / float64(len(ratings)))))
}

// Author replaces previous article contribution in author's rating by the new one.
func Author(current, previousContribution, contribution int) int {
	return Clamp(Clamp(current-previousContribution) + contribution)
}

// Add adds delta to rating keeping it non-negative.
func Add(current, delta int) int {
	return Clamp(current + delta)
}

// Clamp returns v or 0 if v is negative.
func Clamp(v int) int {
	if v < 0 {
		return 0
	}

	return v
}
