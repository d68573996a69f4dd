// Package feed renders the public blog RSS feed.
package feed

import (
	"encoding/xml"
	"time"

	"trustgate/models"
)

type rss struct {
	XMLName xml.Name `xml:"rss"`
	Version string   `xml:"version,attr"`
	Channel channel  `xml:"channel"`
}

type channel struct {
	Title         string `xml:"title"`
	Link          string `xml:"link"`
	Description   string `xml:"description"`
	LastBuildDate string `xml:"lastBuildDate,omitempty"`
	Items         []item `xml:"item"`
}

type item struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	GUID        string `xml:"guid"`
	Description string `xml:"description,omitempty"`
	Author      string `xml:"author,omitempty"`
	Category    string `xml:"category,omitempty"`
	PubDate     string `xml:"pubDate,omitempty"`
}

// Render builds an RSS 2.0 document over the given posts. Callers pass
// published documents only; drafts in the input would leak unreleased work.
func Render(siteURL, title, description string, posts []models.ContentDocument) ([]byte, error) {
	ch := channel{
		Title:       title,
		Link:        siteURL,
		Description: description,
	}

	for _, post := range posts {
		entry := item{
			Title:       post.Title,
			Link:        siteURL + "/blog/" + post.Slug,
			GUID:        siteURL + "/blog/" + post.Slug,
			Description: post.Excerpt,
			Author:      post.Author,
			Category:    post.Category,
		}
		if post.PublishedAt != nil {
			entry.PubDate = post.PublishedAt.Format(time.RFC1123Z)
		}
		ch.Items = append(ch.Items, entry)
	}
	if len(posts) > 0 {
		ch.LastBuildDate = posts[0].SortKey().Format(time.RFC1123Z)
	}

	out, err := xml.MarshalIndent(rss{Version: "2.0", Channel: ch}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}
