package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/calcfront/internal/client/models"
)

const (
	fetchErrorFallback  = "An error occurred while fetching records."
	deleteErrorFallback = "An error occurred while deleting the record."
)

// Records runs the records view: fetch and render the current page, then
// accept navigation, sorting, search, and delete commands until "back".
// Every failure renders as one inline message and the view stays usable.
func (a *App) Records(ctx context.Context) error {
	if err := a.requireAuth(); err != nil {
		return err
	}

	if err := a.browser.Refresh(ctx); err != nil {
		printlnFn(errorText(err, fetchErrorFallback))
		return nil
	}
	a.renderRecords()

	for {
		line, err := getSimpleText(a.reader,
			"records (next, prev, page N, sort id|createdAt, search TEXT, del ID, back)", os.Stdout)
		if err != nil {
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		var actionErr error
		fallback := fetchErrorFallback

		switch parts[0] {
		case "back", "b":
			return nil

		case "next", "n":
			actionErr = a.browser.NextPage(ctx)

		case "prev", "p":
			actionErr = a.browser.PrevPage(ctx)

		case "page":
			if len(parts) < 2 {
				printlnFn("Usage: page N")
				continue
			}
			n, convErr := strconv.Atoi(parts[1])
			if convErr != nil {
				printlnFn("Usage: page N")
				continue
			}
			actionErr = a.browser.GoToPage(ctx, n)

		case "sort":
			if len(parts) < 2 {
				printlnFn("Usage: sort id|createdAt")
				continue
			}
			field := models.SortField(parts[1])
			if field != models.SortByID && field != models.SortByCreatedAt {
				printlnFn("Sortable columns: id, createdAt")
				continue
			}
			actionErr = a.browser.ToggleSort(ctx, field)

		case "search":
			a.browser.SetQuery(strings.TrimSpace(strings.TrimPrefix(line, "search")))

		case "del", "delete":
			fallback = deleteErrorFallback
			if len(parts) < 2 {
				printlnFn("Usage: del ID")
				continue
			}
			id, convErr := strconv.ParseInt(parts[1], 10, 64)
			if convErr != nil {
				printlnFn("Usage: del ID")
				continue
			}
			actionErr = a.browser.Delete(ctx, id)

		default:
			printlnFn("Unknown command:", parts[0])
			continue
		}

		if actionErr != nil {
			printlnFn(errorText(actionErr, fallback))
			continue
		}
		a.renderRecords()
	}
}

// renderRecords prints the filtered page as a table plus the pagination line.
func (a *App) renderRecords() {
	sort := a.browser.Sort()

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID %s\tOperation\tResult\tCost\tCreatedAt %s\n",
		sortArrow(sort, models.SortByID), sortArrow(sort, models.SortByCreatedAt))
	for _, r := range a.browser.Visible() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			r.ID, r.Operation.Type, r.OperationResponse, r.Amount, r.CreatedAt)
	}
	_ = w.Flush()
	printlnFn(buf.String())

	total := a.browser.TotalPages()
	if total == 0 {
		printlnFn("No records.")
		return
	}

	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		if i == a.browser.Page() {
			pages = append(pages, fmt.Sprintf("[%d]", i))
		} else {
			pages = append(pages, strconv.Itoa(i))
		}
	}
	printlnFn(fmt.Sprintf("Page %d/%d (%d records)  %s",
		a.browser.Page(), total, a.browser.TotalRecords(), strings.Join(pages, " ")))

	if q := a.browser.Query(); q != "" {
		printlnFn("Filter:", q)
	}
}

// sortArrow marks the active sort column and its direction.
func sortArrow(sort models.Sort, field models.SortField) string {
	if sort.Field != field {
		return "↕"
	}
	if sort.Order == models.SortAsc {
		return "↑"
	}
	return "↓"
}
