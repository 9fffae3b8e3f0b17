package portfolio

import (
	"context"
	"slices"
)

// Storage keys of the three fragments.
const (
	KeyBasicInfo   = "portfolioBasicInfo"
	KeyExperiences = "portfolioExperiences"
	KeyProjects    = "portfolioProjects"
)

// Keys lists the fragment keys in load order.
var Keys = []string{KeyBasicInfo, KeyExperiences, KeyProjects}

type SocialMedia struct {
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
	Twitter  string `json:"twitter"`
}

type BasicInfo struct {
	Name        string      `json:"name"`
	ImageURL    string      `json:"imageUrl"`
	Bio         string      `json:"bio"`
	Skills      []string    `json:"skills"`
	SocialMedia SocialMedia `json:"socialMedia"`
}

type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description"`
}

type Project struct {
	Name        string `json:"name"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// Snapshot is the assembled view of one page activation. Treat it as
// read-only; use Clone before handing it to code that may modify it.
type Snapshot struct {
	BasicInfo   BasicInfo    `json:"basicInfo"`
	Experiences []Experience `json:"experiences"`
	Projects    []Project    `json:"projects"`
}

func DefaultBasicInfo() BasicInfo {
	return BasicInfo{Skills: []string{}}
}

func DefaultSnapshot() Snapshot {
	return Snapshot{
		BasicInfo:   DefaultBasicInfo(),
		Experiences: []Experience{},
		Projects:    []Project{},
	}
}

func (s Snapshot) Clone() Snapshot {
	out := s
	out.BasicInfo.Skills = cloneOrEmpty(s.BasicInfo.Skills)
	out.Experiences = cloneOrEmpty(s.Experiences)
	out.Projects = cloneOrEmpty(s.Projects)
	return out
}

func cloneOrEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return slices.Clone(in)
}

// Store is durable key/value storage for serialized fragments. It owns no
// semantics of the payload.
type Store interface {
	// Get returns found=false when key was never written.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
