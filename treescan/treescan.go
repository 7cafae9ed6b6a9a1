// Package treescan classifies treeview file trees with the release parser.
// It resolves the most likely release kind of a node from its own name and
// its neighbors, and parses file nodes together with their parent directory
// so season information inherits across the tree the same way ParsePath
// composes path segments.
package treescan

import (
	"strings"

	"github.com/Digital-Shane/treeview"

	scenereleasex "github.com/hiddenpdx/scene-releasex"
)

// Detect resolves the most likely release kind for a tree node.
//
// Directories: a season-folder grammar match wins; a directory whose
// children look like season folders or episode files is a series; anything
// else defaults to a movie directory. Files: an episode grammar match in the
// name, or a season folder as parent, marks a TV episode.
func Detect(node *treeview.Node[treeview.FileInfo]) scenereleasex.ReleaseType {
	if node == nil {
		return scenereleasex.ReleaseTypeMovie
	}
	name := node.Name()

	if node.Data().IsDir() {
		if _, ok := scenereleasex.ParseSeasonDirectory(name); ok {
			return scenereleasex.ReleaseTypeSeason
		}
		if hasEpisodeChildren(node) {
			return scenereleasex.ReleaseTypeSeries
		}
		return scenereleasex.ReleaseTypeMovie
	}

	rel := scenereleasex.Parse(scenereleasex.ReleaseTypeTV, name)
	if rel.Episode != nil || rel.Season != nil || rel.Date != "" {
		return scenereleasex.ReleaseTypeTV
	}
	if parent := node.Parent(); parent != nil {
		if _, ok := scenereleasex.ParseSeasonDirectory(parent.Name()); ok {
			return scenereleasex.ReleaseTypeTV
		}
	}
	return scenereleasex.ReleaseTypeMovie
}

// Parse classifies a node under its detected release kind, composing the
// parent directory name into the parse so an episode file inside a season
// folder inherits the folder's season.
func Parse(node *treeview.Node[treeview.FileInfo]) (*scenereleasex.PathInfo, error) {
	releaseType := Detect(node)

	segments := []string{node.Name()}
	if parent := node.Parent(); parent != nil {
		segments = append([]string{parent.Name()}, segments...)
	}

	return scenereleasex.ParsePath(releaseType, strings.Join(segments, "/"))
}

// hasEpisodeChildren reports whether any child looks like a season folder or
// an episode file.
func hasEpisodeChildren(node *treeview.Node[treeview.FileInfo]) bool {
	for _, child := range node.Children() {
		if child == nil {
			continue
		}
		name := child.Name()
		if child.Data().IsDir() {
			if _, ok := scenereleasex.ParseSeasonDirectory(name); ok {
				return true
			}
			continue
		}
		if !scenereleasex.IsVideo(name) && !scenereleasex.IsSubtitle(name) {
			continue
		}
		rel := scenereleasex.Parse(scenereleasex.ReleaseTypeTV, name)
		if rel.Episode != nil || rel.Date != "" {
			return true
		}
	}
	return false
}
