package catalog

import "context"

// Entry is a loosely typed reference record (project, feedback, webinar).
// These collections are seeded externally; the backend only reads them.
type Entry map[string]interface{}

// Collection names; each maps to one backing file.
const (
	CollectionProjects = "projects"
	CollectionFeedback = "feedback"
	CollectionWebinars = "webinars"
)

type (
	Repository interface {
		ListEntries(ctx context.Context, collection string) ([]Entry, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Projects returns all projects, optionally only featured ones, truncated
// to limit when limit > 0. Entries keep their seeded order.
func (svc *Service) Projects(ctx context.Context, featuredOnly bool, limit int) ([]Entry, error) {
	entries, err := svc.repo.ListEntries(ctx, CollectionProjects)
	if err != nil {
		return nil, err
	}
	if featuredOnly {
		entries = filterByFlag(entries, "featured")
	}
	return truncate(entries, limit), nil
}

// Feedback returns all feedback entries, optionally only approved ones.
func (svc *Service) Feedback(ctx context.Context, approvedOnly bool, limit int) ([]Entry, error) {
	entries, err := svc.repo.ListEntries(ctx, CollectionFeedback)
	if err != nil {
		return nil, err
	}
	if approvedOnly {
		entries = filterByFlag(entries, "approved")
	}
	return truncate(entries, limit), nil
}

func (svc *Service) Webinars(ctx context.Context) ([]Entry, error) {
	return svc.repo.ListEntries(ctx, CollectionWebinars)
}

// filterByFlag keeps entries whose named field is exactly boolean true.
// A full linear scan; fine at tens-to-hundreds of entries.
func filterByFlag(entries []Entry, flag string) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if v, ok := e[flag].(bool); ok && v {
			out = append(out, e)
		}
	}
	return out
}

func truncate(entries []Entry, limit int) []Entry {
	if limit > 0 && len(entries) > limit {
		return entries[:limit]
	}
	return entries
}
