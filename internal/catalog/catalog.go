// Package catalog is the static course content: video topics, the image
// gallery, audio tracks and per-section narration.
package catalog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AllCategories selects every gallery image.
const AllCategories = "Todas"

type Video struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	URL      string `json:"video_url"`
	Duration string `json:"duration"` // m:ss
}

type Topic struct {
	ID            int     `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description,omitempty"`
	Completed     bool    `json:"completed"`
	Videos        []Video `json:"videos"`
	TotalDuration string  `json:"total_duration"`
}

type Image struct {
	ID          int    `json:"id"`
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type Track struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	URL    string `json:"url"`
}

type Section struct {
	ID              string `json:"id"`
	Label           string `json:"label"`
	NarrationFileID string `json:"narration_file_id,omitempty"`
}

func Topics() []Topic {
	out := make([]Topic, len(topics))
	for i, t := range topics {
		t.Videos = append([]Video(nil), t.Videos...)
		t.TotalDuration = TotalDuration(t.Videos)
		out[i] = t
	}
	return out
}

// Categories lists AllCategories followed by each distinct image category
// in first-seen order.
func Categories() []string {
	out := []string{AllCategories}
	seen := map[string]bool{}
	for _, img := range gallery {
		if !seen[img.Category] {
			seen[img.Category] = true
			out = append(out, img.Category)
		}
	}
	return out
}

// Gallery filters images by category; empty or AllCategories returns all.
func Gallery(category string) []Image {
	out := make([]Image, 0, len(gallery))
	for _, img := range gallery {
		if category == "" || category == AllCategories || img.Category == category {
			out = append(out, img)
		}
	}
	return out
}

func Tracks() []Track { return append([]Track(nil), tracks...) }

func Sections() []Section { return append([]Section(nil), sections...) }

// Narration returns the narration file of a section. ok is false for an
// unknown section and for one without narration.
func Narration(section string) (fileID string, ok bool) {
	for _, s := range sections {
		if s.ID == section {
			return s.NarrationFileID, s.NarrationFileID != ""
		}
	}
	return "", false
}

// TotalDuration sums m:ss durations into "N min" or "Hh Mmin". Entries
// that do not parse count as zero.
func TotalDuration(videos []Video) string {
	minutes := 0.0
	for _, v := range videos {
		m, s, err := parseDuration(v.Duration)
		if err != nil {
			continue
		}
		minutes += float64(m) + float64(s)/60
	}
	h := int(minutes / 60)
	m := int(math.Round(math.Mod(minutes, 60)))
	if h > 0 {
		return fmt.Sprintf("%dh %dmin", h, m)
	}
	return fmt.Sprintf("%d min", m)
}

func parseDuration(d string) (int, int, error) {
	mm, ss, ok := strings.Cut(d, ":")
	if !ok {
		return 0, 0, fmt.Errorf("duration %q: missing colon", d)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, 0, err
	}
	s, err := strconv.Atoi(ss)
	if err != nil {
		return 0, 0, err
	}
	return m, s, nil
}
