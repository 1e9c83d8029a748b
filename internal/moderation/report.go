package moderation

import "strings"

// ModeratorMarker is a text which calls moderator to look at a comment.
const ModeratorMarker = "@moderator"

// CallsModerator ...
func CallsModerator(text string) bool {
	return strings.Contains(text, ModeratorMarker)
}
