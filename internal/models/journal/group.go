package journal

import "time"

// MaxGroups is the per-user cap on sharing groups, enforced at creation.
const MaxGroups = 4

// Group is a named private collection of recipients an entry can be
// shared with. Entries reference groups by id, never embed them.
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Members   []string  `json:"members"`
	CreatedAt time.Time `json:"createdAt"`
}

// HasMember reports whether email is already recorded as a member.
func (g *Group) HasMember(email string) bool {
	for _, m := range g.Members {
		if m == email {
			return true
		}
	}
	return false
}

// Comment is a remark left on an entry shared with a group.
type Comment struct {
	ID      string    `json:"id"`
	EntryID string    `json:"entryId"`
	Author  string    `json:"author"`
	Content string    `json:"content"`
	Date    time.Time `json:"date"`
}

// Like marks that a user liked a shared entry.
type Like struct {
	EntryID string `json:"entryId"`
	UserID  string `json:"userId"`
}
