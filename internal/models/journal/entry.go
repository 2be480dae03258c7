package journal

import "time"

// MediaType is a closed tag for entry attachments.
type MediaType string

const (
	MediaPhoto   MediaType = "photo"
	MediaGallery MediaType = "gallery"
	MediaAudio   MediaType = "audio"
	MediaVideo   MediaType = "video"
)

// Valid reports whether t is one of the known media types.
func (t MediaType) Valid() bool {
	switch t {
	case MediaPhoto, MediaGallery, MediaAudio, MediaVideo:
		return true
	}
	return false
}

// MediaItem is one attachment on an entry. Insertion order is display order.
type MediaItem struct {
	Type MediaType `json:"type"`
	URL  string    `json:"url"`
}

// Mood is the optional per-entry mood tag. The empty string means unset.
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodContent  Mood = "content"
	MoodNeutral  Mood = "neutral"
	MoodSad      Mood = "sad"
	MoodStressed Mood = "stressed"
)

// Valid reports whether m is unset or one of the known moods.
func (m Mood) Valid() bool {
	switch m {
	case "", MoodHappy, MoodContent, MoodNeutral, MoodSad, MoodStressed:
		return true
	}
	return false
}

// Entry is one journal record.
type Entry struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Content          string      `json:"content"`
	Date             time.Time   `json:"date"`
	Favorite         bool        `json:"favorite"`
	Media            []MediaItem `json:"media"`
	Mood             Mood        `json:"mood,omitempty"`
	KickCount        int         `json:"kickCount"`
	IsShared         bool        `json:"isShared"`
	SharedWithGroups []string    `json:"sharedWithGroups,omitempty"`
	CreatedAt        time.Time   `json:"createdAt,omitempty"`
	UpdatedAt        time.Time   `json:"updatedAt,omitempty"`
}

// SharedWith reports whether the entry is shared with the given group.
func (e *Entry) SharedWith(groupID string) bool {
	if !e.IsShared {
		return false
	}
	for _, id := range e.SharedWithGroups {
		if id == groupID {
			return true
		}
	}
	return false
}
