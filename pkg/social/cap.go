package social

import "insiderdigest/internal/model"

// CapPerEntity keeps at most perUser posts for each user, in input order.
// Users are compared by exact string equality, no case folding or trimming.
// The counter only advances on retention, so once a user reaches the cap
// every later post from that user is dropped for the rest of the pass.
func CapPerEntity(posts []model.Post, perUser int) []model.Post {
	counts := make(map[string]int)
	kept := make([]model.Post, 0, len(posts))
	for _, p := range posts {
		if counts[p.User] >= perUser {
			continue
		}
		counts[p.User]++
		kept = append(kept, p)
	}
	return kept
}
