// Package command expands command templates and runs external programs.
package command

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ytgrid/ytgrid/internal/domain/video"
)

// ErrUnknownToken is returned when a template references an undefined token.
var ErrUnknownToken = errors.New("unknown template token")

var tokenPattern = regexp.MustCompile(`\$\{([a-zA-Z0-9_]+)\}`)

// Vars maps token names to their values.
type Vars map[string]string

// VarsFor returns the tokens available for item.
func VarsFor(item video.Item, downloadDir string) Vars {
	vars := Vars{
		"url":          item.URL(),
		"id":           item.ID,
		"title":        item.Title,
		"author":       item.Author,
		"channel_id":   item.AuthorID,
		"channel_url":  "",
		"embed_url":    "",
		"download_dir": downloadDir,
	}
	if item.AuthorID != "" {
		vars["channel_url"] = video.ChannelURL(item.AuthorID)
	}
	if item.Kind == video.KindVideo {
		vars["embed_url"] = video.EmbedURL(item.ID)
	}
	if item.Kind == video.KindChannel {
		vars["channel_id"] = item.ID
		vars["channel_url"] = video.ChannelURL(item.ID)
	}
	return vars
}

// Expand replaces every ${token} in template. Single quotes in values are
// escaped so values stay intact inside single-quoted template segments.
// The first unknown token aborts the expansion.
func Expand(template string, vars Vars) (string, error) {
	var unknown string
	out := tokenPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := tokenPattern.FindStringSubmatch(match)[1]
		value, ok := vars[name]
		if !ok {
			if unknown == "" {
				unknown = name
			}
			return match
		}
		return strings.ReplaceAll(value, "'", `'\''`)
	})
	if unknown != "" {
		return "", fmt.Errorf("%w: ${%s}", ErrUnknownToken, unknown)
	}
	return out, nil
}
