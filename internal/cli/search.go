package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"training-reels/internal/core/domain"

	"github.com/samber/lo"
)

func (a *App) Search(ctx context.Context, args []string) error {
	fs := a.flagSet("search")
	sortBy := fs.String("sort", "", "relevance, newest, oldest or popular")
	page := fs.Int("page", 0, "result page")
	size := fs.Int("size", 20, "results per page")
	tags := fs.String("tag", "", "comma separated tags to filter on")
	machines := fs.String("machine", "", "comma separated machine models to filter on")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	req := domain.SearchRequest{
		Query: strings.Join(fs.Args(), " "),
		Filters: domain.SearchFilters{
			Tags:          splitList(*tags),
			MachineModels: splitList(*machines),
		},
		Sort:     domain.SortOrder(*sortBy),
		Page:     *page,
		PageSize: *size,
	}

	resp, err := a.services.Search.SearchVideos(ctx, req)
	if err != nil {
		return err
	}

	if len(resp.Results) == 0 {
		fmt.Fprintln(a.out, "No videos found")
		return nil
	}

	table := a.newTable("ID", "Title", "Machine", "Duration", "Tags")
	for _, result := range resp.Results {
		v := result.Video
		table.Append([]string{v.ID, v.Title, v.MachineModel, formatDuration(v.Duration), strings.Join(v.Tags, ",")})
	}
	table.Render()
	fmt.Fprintf(a.out, "%d of %d results (page %d, %dms)\n", len(resp.Results), resp.Total, resp.Page, resp.TookMs)
	return nil
}

func (a *App) Suggest(ctx context.Context, args []string) error {
	fs := a.flagSet("suggest")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	suggestions, err := a.services.Search.Suggestions(ctx, strings.Join(fs.Args(), " "))
	if err != nil {
		return err
	}
	for _, s := range suggestions {
		fmt.Fprintln(a.out, s.Text)
	}
	return nil
}

func (a *App) Facets(ctx context.Context, args []string) error {
	if _, err := a.parseArgs(a.flagSet("facets"), args, 0); err != nil {
		return err
	}

	facets, err := a.services.Search.Facets(ctx)
	if err != nil {
		return err
	}

	table := a.newTable("Facet", "Value", "Videos")
	for _, facet := range facets {
		for _, value := range facet.Values {
			table.Append([]string{facet.Name, value.Value, strconv.Itoa(value.Count)})
		}
	}
	table.Render()
	return nil
}

func (a *App) Recent(ctx context.Context, args []string) error {
	fs := a.flagSet("recent")
	clearAll := fs.Bool("clear", false, "forget recent searches")
	if _, err := a.parseArgs(fs, args, 0); err != nil {
		return err
	}

	if *clearAll {
		a.services.Search.ClearRecentSearches(ctx)
		fmt.Fprintln(a.out, "Recent searches cleared")
		return nil
	}

	recent := a.services.Search.RecentSearches(ctx)
	if len(recent) == 0 {
		fmt.Fprintln(a.out, "No recent searches")
		return nil
	}
	for i, query := range recent {
		fmt.Fprintf(a.out, "%2d. %s\n", i+1, query)
	}
	return nil
}

func (a *App) History(ctx context.Context, args []string) error {
	fs := a.flagSet("history")
	clearAll := fs.Bool("clear", false, "delete the whole search history")
	remove := fs.String("delete", "", "delete one history entry")
	if _, err := a.parseArgs(fs, args, 0); err != nil {
		return err
	}

	switch {
	case *clearAll:
		if err := a.services.Search.ClearHistory(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "Search history cleared")
		return nil
	case *remove != "":
		if err := a.services.Search.DeleteHistoryEntry(ctx, *remove); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "History entry %s deleted\n", *remove)
		return nil
	}

	entries, err := a.services.Search.History(ctx)
	if err != nil {
		return err
	}
	table := a.newTable("ID", "Query", "Results", "Searched at")
	for _, entry := range entries {
		table.Append([]string{entry.ID, entry.Query, strconv.Itoa(entry.ResultCount), entry.SearchedAt.Local().Format("2006-01-02 15:04")})
	}
	table.Render()
	return nil
}

func (a *App) Saved(ctx context.Context, args []string) error {
	action := "list"
	if len(args) > 0 {
		action, args = args[0], args[1:]
	}

	switch action {
	case "list":
		saved, err := a.services.Search.ListSaved(ctx)
		if err != nil {
			return err
		}
		table := a.newTable("ID", "Name", "Query", "Notify")
		for _, s := range saved {
			table.Append([]string{s.ID, s.Name, s.Query, lo.Ternary(s.Notify, "yes", "no")})
		}
		table.Render()
		return nil

	case "create":
		fs := a.flagSet("saved create")
		name := fs.String("name", "", "name of the saved search")
		notify := fs.Bool("notify", false, "notify on new matching videos")
		tags := fs.String("tag", "", "comma separated tags to filter on")
		if err := fs.Parse(args); err != nil {
			return fmt.Errorf("%w: %w", ErrUsage, err)
		}
		created, err := a.services.Search.CreateSaved(ctx, domain.SavedSearch{
			Name:    *name,
			Query:   strings.Join(fs.Args(), " "),
			Filters: domain.SearchFilters{Tags: splitList(*tags)},
			Notify:  *notify,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Saved search %s created\n", created.ID)
		return nil

	case "delete":
		rest, err := a.parseArgs(a.flagSet("saved"), args, 1)
		if err != nil {
			return err
		}
		if err := a.services.Search.DeleteSaved(ctx, rest[0]); err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Saved search %s deleted\n", rest[0])
		return nil

	default:
		return fmt.Errorf("%w: %s", ErrUsage, a.commands["saved"].usage)
	}
}
