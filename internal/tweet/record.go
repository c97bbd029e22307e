package tweet

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Record is the post data a render needs, as returned by the statuses/show API.
type Record struct {
	Text      string // raw body text, may contain newlines
	CreatedAt string // e.g. "Wed Jun 09 18:31:55 +0000 2010"
	Source    string // client string, usually an HTML anchor
	User      User
}

// User is the author block of a Record.
type User struct {
	ScreenName                string
	Name                      string
	ProfileImageURL           string
	ProfileBackgroundColor    string
	ProfileBackgroundImageURL string
	ProfileTextColor          string
	ProfileLinkColor          string
	UTCOffset                 *int // seconds east of UTC; nil when the account has none
}

// ProfileURL returns the author's profile link as used by the embed template.
func (u User) ProfileURL() string {
	return ProfileBase + u.ScreenName
}

// ProfileBase prefixes every profile and search link in an embed.
const ProfileBase = "http://twitter.com/"

type wireRecord struct {
	Text      *string   `json:"text"`
	CreatedAt *string   `json:"created_at"`
	Source    *string   `json:"source"`
	User      *wireUser `json:"user"`
}

type wireUser struct {
	ScreenName                *string     `json:"screen_name"`
	Name                      *string     `json:"name"`
	ProfileImageURL           *string     `json:"profile_image_url"`
	ProfileBackgroundColor    *string     `json:"profile_background_color"`
	ProfileBackgroundImageURL *string     `json:"profile_background_image_url"`
	ProfileTextColor          string      `json:"profile_text_color"`
	ProfileLinkColor          string      `json:"profile_link_color"`
	UTCOffset                 nullableInt `json:"utc_offset"`
}

// nullableInt tells a null value apart from a missing key.
type nullableInt struct {
	set bool
	val *int
}

func (n *nullableInt) UnmarshalJSON(b []byte) error {
	n.set = true
	if string(b) == "null" {
		return nil
	}
	var v int
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.val = &v
	return nil
}

// DecodeRecord reads one JSON post record from r. Undecodable input and
// missing required fields return a *MalformedRecordError.
func DecodeRecord(r io.Reader) (*Record, error) {
	var w wireRecord
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, &MalformedRecordError{Err: err}
	}
	return w.record()
}

func (w *wireRecord) record() (*Record, error) {
	if w.User == nil {
		return nil, &MalformedRecordError{Field: "user"}
	}
	required := []struct {
		name string
		val  *string
	}{
		{"text", w.Text},
		{"created_at", w.CreatedAt},
		{"source", w.Source},
		{"user.screen_name", w.User.ScreenName},
		{"user.name", w.User.Name},
		{"user.profile_image_url", w.User.ProfileImageURL},
		{"user.profile_background_color", w.User.ProfileBackgroundColor},
		{"user.profile_background_image_url", w.User.ProfileBackgroundImageURL},
	}
	for _, f := range required {
		if f.val == nil {
			return nil, &MalformedRecordError{Field: f.name}
		}
	}
	if !w.User.UTCOffset.set {
		return nil, &MalformedRecordError{Field: "user.utc_offset"}
	}

	return &Record{
		Text:      *w.Text,
		CreatedAt: *w.CreatedAt,
		Source:    *w.Source,
		User: User{
			ScreenName:                *w.User.ScreenName,
			Name:                      *w.User.Name,
			ProfileImageURL:           *w.User.ProfileImageURL,
			ProfileBackgroundColor:    *w.User.ProfileBackgroundColor,
			ProfileBackgroundImageURL: *w.User.ProfileBackgroundImageURL,
			ProfileTextColor:          w.User.ProfileTextColor,
			ProfileLinkColor:          w.User.ProfileLinkColor,
			UTCOffset:                 w.User.UTCOffset.val,
		},
	}, nil
}
