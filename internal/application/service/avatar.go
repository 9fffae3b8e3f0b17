package service

// AvatarResolver turns a stored profile image URL into the URL the page
// should display. Implementations return raw unchanged when they cannot
// do better.
type AvatarResolver interface {
	Resolve(raw string) string
}

type passthroughAvatarResolver struct{}

func NewPassthroughAvatarResolver() AvatarResolver {
	return passthroughAvatarResolver{}
}

func (passthroughAvatarResolver) Resolve(raw string) string {
	return raw
}
