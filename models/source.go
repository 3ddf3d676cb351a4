// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SourceKind identifies the service a local gallery was imported from.
//
// Two kinds front the same backing service and both take part in favorites
// synchronization; every other source is local-only.
type SourceKind int

const (
	SourceOther SourceKind = iota
	SourceEHentai
	SourceExHentai
)

// RemoteBackedSources returns the source kinds whose galleries are mirrored in
// the remote favorites list.
func RemoteBackedSources() []SourceKind {
	return []SourceKind{SourceEHentai, SourceExHentai}
}

// IsRemoteBacked reports whether galleries of this source are synchronized.
func (s SourceKind) IsRemoteBacked() bool {
	return s == SourceEHentai || s == SourceExHentai
}

// Host returns the web host of the source, empty for local-only sources.
func (s SourceKind) Host() string {
	switch s {
	case SourceEHentai:
		return "e-hentai.org"
	case SourceExHentai:
		return "exhentai.org"
	default:
		return ""
	}
}

// GalleryURL returns the absolute gallery URL on this source.
func (s SourceKind) GalleryURL(remoteID, remoteSecret string) string {
	return "https://" + s.Host() + GalleryPath(remoteID, remoteSecret)
}

func (s SourceKind) String() string {
	switch s {
	case SourceEHentai:
		return "e-hentai"
	case SourceExHentai:
		return "exhentai"
	default:
		return "other"
	}
}
