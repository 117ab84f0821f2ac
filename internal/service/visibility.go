package service

import "github.com/noah-isme/school-forum-api/internal/models"

// DisplayAuthor decides how a content item's author field is presented.
// Non-anonymous content always reveals the author. Anonymous content is
// unmasked for admins only; teacher privilege alone does not qualify.
func DisplayAuthor(anonymous bool, authorID string, viewerIsAdmin bool) string {
	if !anonymous {
		return authorID
	}
	if viewerIsAdmin {
		return authorID
	}
	return models.AnonymousAuthor
}

// ContentVisible reports whether a viewer may see a content item at all.
// Admins and the item's author see everything; everyone else sees only
// validated content. Callers must answer "not found" when this is false so
// blocked content is indistinguishable from nonexistent content.
func ContentVisible(validated, viewerIsAdmin, viewerIsAuthor bool) bool {
	return viewerIsAdmin || viewerIsAuthor || validated
}
