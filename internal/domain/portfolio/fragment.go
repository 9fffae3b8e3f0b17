package portfolio

import (
	"bytes"
	"encoding/json"
	"strings"
)

type FragmentStatus string

const (
	FragmentLoaded      FragmentStatus = "loaded"
	FragmentAbsent      FragmentStatus = "absent"
	FragmentMalformed   FragmentStatus = "malformed"
	FragmentUnavailable FragmentStatus = "unavailable"
)

// FragmentResult records how a fragment was obtained. Anything other than
// FragmentLoaded means the typed default was substituted.
type FragmentResult struct {
	Key    string
	Status FragmentStatus
	Err    error
}

func (r FragmentResult) Defaulted() bool {
	return r.Status != FragmentLoaded
}

var jsonNull = []byte("null")

// DecodeBasicInfo merges raw over DefaultBasicInfo. Missing fields keep their
// default, unknown fields are ignored, and any decode error yields the
// full default.
func DecodeBasicInfo(raw string) (BasicInfo, FragmentStatus, error) {
	data, ok := trimmed(raw)
	if !ok {
		return DefaultBasicInfo(), FragmentAbsent, nil
	}
	var info BasicInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return DefaultBasicInfo(), FragmentMalformed, err
	}
	if info.Skills == nil {
		info.Skills = []string{}
	}
	return info, FragmentLoaded, nil
}

func DecodeExperiences(raw string) ([]Experience, FragmentStatus, error) {
	return decodeList[Experience](raw)
}

func DecodeProjects(raw string) ([]Project, FragmentStatus, error) {
	return decodeList[Project](raw)
}

func decodeList[T any](raw string) ([]T, FragmentStatus, error) {
	data, ok := trimmed(raw)
	if !ok {
		return []T{}, FragmentAbsent, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}, FragmentMalformed, err
	}
	if items == nil {
		items = []T{}
	}
	return items, FragmentLoaded, nil
}

// trimmed reports ok=false for text that carries no fragment: empty,
// whitespace only, or a JSON null.
func trimmed(raw string) ([]byte, bool) {
	data := []byte(strings.TrimSpace(raw))
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		return nil, false
	}
	return data, true
}

// Encode serializes a fragment value the way the store expects it.
func Encode(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
