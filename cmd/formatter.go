package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/s0up4200/better-trakt/filter"
	"github.com/s0up4200/better-trakt/trakt"
)

const (
	branch     = "├"
	lastBranch = "╰"
	pipe       = "│"
)

// listingMeta carries the response headers shown under a listing
type listingMeta struct {
	page          *trakt.PageInfo
	trendingUsers int
	startDate     trakt.StartDate
}

func metaOf[T any](res *trakt.Response[T]) listingMeta {
	return listingMeta{
		page:          res.Pagination,
		trendingUsers: res.TrendingUserCount,
		startDate:     res.StartDate,
	}
}

func treeParts(isLast bool) (prefix, indent string) {
	if isLast {
		return lastBranch, "    "
	}
	return branch, pipe + "   "
}

// formatItems formats listing rows as a tree
func formatItems(title string, items []filter.Item, meta listingMeta) string {
	if len(items) == 0 {
		return fmt.Sprintf("No %s found\n", strings.ToLower(title))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s (%d):\n\n", title, len(items))

	for i, item := range items {
		isLast := i == len(items)-1
		formatItem(&sb, item, isLast)
		if !isLast {
			sb.WriteString(pipe + "\n")
		}
	}

	if footer := formatMeta(meta); footer != "" {
		sb.WriteString("\n" + footer + "\n")
	}

	sb.WriteString("\n")
	return sb.String()
}

func formatItem(sb *strings.Builder, item filter.Item, isLast bool) {
	prefix, indent := treeParts(isLast)

	if item.Year > 0 {
		fmt.Fprintf(sb, "%s── %s (%d)\n", prefix, item.Title, item.Year)
	} else {
		fmt.Fprintf(sb, "%s── %s\n", prefix, item.Title)
	}

	// Identifiers
	var ids []string
	if item.Slug != "" {
		ids = append(ids, item.Slug)
	}
	if item.IMDB != "" {
		ids = append(ids, item.IMDB)
	}
	if len(ids) > 0 {
		fmt.Fprintf(sb, "%s%s\n", indent, strings.Join(ids, " | "))
	}

	// Counters the listing reported
	var stats []string
	addStat := func(label string, v int64) {
		if v > 0 {
			stats = append(stats, fmt.Sprintf("%s: %d", label, v))
		}
	}
	addStat("Watchers", int64(item.Watchers))
	addStat("Recommended by", int64(item.UserCount))
	addStat("Lists", int64(item.ListCount))
	addStat("Watchers", int64(item.WatcherCount))
	addStat("Plays", int64(item.PlayCount))
	addStat("Collected", int64(item.CollectedCount))
	addStat("Collectors", int64(item.CollectorCount))
	addStat("Plays", int64(item.Plays))
	if item.Revenue > 0 {
		stats = append(stats, fmt.Sprintf("Revenue: $%s", groupThousands(item.Revenue)))
	}
	if len(stats) > 0 {
		fmt.Fprintf(sb, "%s%s\n", indent, strings.Join(stats, " | "))
	}

	// Dates
	var dates []string
	if !item.LastWatchedAt.IsZero() {
		dates = append(dates, fmt.Sprintf("Last watched: %s", item.LastWatchedAt.Format("2006-01-02")))
	}
	if !item.UpdatedAt.IsZero() {
		dates = append(dates, fmt.Sprintf("Updated: %s", item.UpdatedAt.Format("2006-01-02 15:04")))
	}
	if len(dates) > 0 {
		fmt.Fprintf(sb, "%s%s\n", indent, strings.Join(dates, " | "))
	}
}

func formatMeta(meta listingMeta) string {
	var parts []string
	if p := meta.page; p != nil {
		parts = append(parts, fmt.Sprintf("Page %d of %d (%d items)", p.Page, p.PageCount, p.ItemCount))
	}
	if meta.trendingUsers > 0 {
		parts = append(parts, fmt.Sprintf("%d users watching", meta.trendingUsers))
	}
	if meta.startDate != "" {
		parts = append(parts, fmt.Sprintf("since %s", meta.startDate))
	}
	return strings.Join(parts, " | ")
}

// groupThousands renders 48464322 as 48,464,322
func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var sb strings.Builder
	head := len(s) % 3
	if head > 0 {
		sb.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}

// formatShowSummary formats a show with its extended details
func formatShowSummary(s trakt.ShowSummaryFull) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s (%d)\n", s.Title, s.Year)
	if s.Tagline != "" {
		fmt.Fprintf(&sb, "%s\n", s.Tagline)
	}
	sb.WriteString("\n")

	writeField(&sb, "Status", s.Status)
	writeField(&sb, "Network", s.Network)
	if s.Airs.Day != "" {
		writeField(&sb, "Airs", fmt.Sprintf("%s %s (%s)", s.Airs.Day, s.Airs.Time, s.Airs.Timezone))
	}
	if s.FirstAired != nil {
		writeField(&sb, "First aired", s.FirstAired.Format("2006-01-02"))
	}
	if s.AiredEpisodes > 0 {
		writeField(&sb, "Episodes", fmt.Sprintf("%d", s.AiredEpisodes))
	}
	writeCommon(&sb, summaryCommon{
		runtime:       s.Runtime,
		certification: s.Certification,
		country:       s.Country,
		language:      s.Language,
		genres:        s.Genres,
		rating:        s.Rating,
		votes:         s.Votes,
		ids:           s.IDs,
		homepage:      s.Homepage,
		trailer:       s.Trailer,
		overview:      s.Overview,
	})
	return sb.String()
}

// formatMovieSummary formats a movie with its extended details
func formatMovieSummary(m trakt.MovieSummaryFull) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n%s (%d)\n", m.Title, m.Year)
	if m.Tagline != "" {
		fmt.Fprintf(&sb, "%s\n", m.Tagline)
	}
	sb.WriteString("\n")

	writeField(&sb, "Status", m.Status)
	writeField(&sb, "Released", m.Released)
	writeCommon(&sb, summaryCommon{
		runtime:       m.Runtime,
		certification: m.Certification,
		country:       m.Country,
		language:      m.Language,
		genres:        m.Genres,
		rating:        m.Rating,
		votes:         m.Votes,
		ids:           m.IDs,
		homepage:      m.Homepage,
		trailer:       m.Trailer,
		overview:      m.Overview,
	})
	return sb.String()
}

type summaryCommon struct {
	runtime       int
	certification string
	country       string
	language      string
	genres        []string
	rating        float64
	votes         int
	ids           trakt.IDs
	homepage      string
	trailer       string
	overview      string
}

func writeCommon(sb *strings.Builder, c summaryCommon) {
	if c.runtime > 0 {
		writeField(sb, "Runtime", fmt.Sprintf("%d min", c.runtime))
	}
	writeField(sb, "Certification", c.certification)
	writeField(sb, "Country", strings.ToUpper(c.country))
	writeField(sb, "Language", c.language)
	writeField(sb, "Genres", strings.Join(c.genres, ", "))
	if c.votes > 0 {
		writeField(sb, "Rating", fmt.Sprintf("%.1f (%d votes)", c.rating, c.votes))
	}
	writeField(sb, "Slug", c.ids.Slug)
	writeField(sb, "IMDb", c.ids.IMDB)
	writeField(sb, "Homepage", c.homepage)
	writeField(sb, "Trailer", c.trailer)
	if c.overview != "" {
		fmt.Fprintf(sb, "\n%s\n", c.overview)
	}
	sb.WriteString("\n")
}

func writeField(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(sb, "%-14s %s\n", label+":", value)
}

// formatPeople formats cast and crew, departments in alphabetical order
func formatPeople(p trakt.People) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "\nCast (%d):\n\n", len(p.Cast))
	for i, member := range p.Cast {
		prefix, _ := treeParts(i == len(p.Cast)-1)
		fmt.Fprintf(&sb, "%s── %s", prefix, member.Person.Name)
		if len(member.Characters) > 0 {
			fmt.Fprintf(&sb, " as %s", strings.Join(member.Characters, ", "))
		}
		if member.EpisodeCount > 0 {
			fmt.Fprintf(&sb, " (%d episodes)", member.EpisodeCount)
		}
		sb.WriteString("\n")
	}

	departments := make([]string, 0, len(p.Crew))
	for dept := range p.Crew {
		departments = append(departments, dept)
	}
	slices.Sort(departments)

	for _, dept := range departments {
		members := p.Crew[dept]
		fmt.Fprintf(&sb, "\n%s (%d):\n\n", capitalize(dept), len(members))
		for i, member := range members {
			prefix, _ := treeParts(i == len(members)-1)
			fmt.Fprintf(&sb, "%s── %s", prefix, member.Person.Name)
			if len(member.Jobs) > 0 {
				fmt.Fprintf(&sb, " (%s)", strings.Join(member.Jobs, ", "))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
