package model

import "time"

const (
	CategoryKorean = "korean"
	CategoryTech   = "tech"
	UnknownSource  = "Unknown Source"
)

type Source struct {
	Name string `json:"name"`
}

type Article struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	URL         string  `json:"url"`
	PublishedAt string  `json:"publishedAt"`
	Source      *Source `json:"source,omitempty"`
	Score       *int    `json:"score,omitempty"`
	Descendants *int    `json:"descendants,omitempty"`
}

// SourceName returns the publisher name, or UnknownSource when the article has none.
func (a Article) SourceName() string {
	if a.Source == nil || a.Source.Name == "" {
		return UnknownSource
	}
	return a.Source.Name
}

// Published parses PublishedAt. ok is false when the upstream sent something that is not RFC 3339.
func (a Article) Published() (t time.Time, ok bool) {
	t, err := time.Parse(time.RFC3339, a.PublishedAt)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type NewsData struct {
	Korean []Article `json:"korean"`
	Tech   []Article `json:"tech"`
}

// Category returns the article list for one of CategoryKorean or CategoryTech.
func (d NewsData) Category(name string) []Article {
	switch name {
	case CategoryKorean:
		return d.Korean
	case CategoryTech:
		return d.Tech
	}
	return nil
}

var Categories = []string{CategoryKorean, CategoryTech}
