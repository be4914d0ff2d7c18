// Package digest builds the per-user task summaries: tasks are grouped by
// assignee email and company, deduplicated by id, sorted by due date and
// rendered as one HTML table per company.
package digest

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/harrisonrobin/taskdigest/pkg/colors"
	"github.com/harrisonrobin/taskdigest/pkg/model"
	"github.com/harrisonrobin/taskdigest/pkg/overdue"
	"github.com/harrisonrobin/taskdigest/pkg/priority"
	"github.com/harrisonrobin/taskdigest/pkg/render"
)

const (
	DefaultEmail   = "no-email@example.com"
	DefaultCompany = "Unknown Company"
)

// Options configures a Builder. Zero fields take their defaults.
type Options struct {
	DefaultEmail   string
	DefaultCompany string
	DueSoonWindow  time.Duration
	Palette        colors.Palette
	Logger         *slog.Logger
}

// DefaultOptions returns the stock placeholders, a seven day due-soon window
// and the default palette.
func DefaultOptions() Options {
	return Options{
		DefaultEmail:   DefaultEmail,
		DefaultCompany: DefaultCompany,
		DueSoonWindow:  overdue.DefaultWindow,
		Palette:        colors.DefaultPalette(),
	}
}

type Builder struct {
	opts Options
	log  *slog.Logger
}

func NewBuilder(opts Options) *Builder {
	def := DefaultOptions()
	if opts.DefaultEmail == "" {
		opts.DefaultEmail = def.DefaultEmail
	}
	if opts.DefaultCompany == "" {
		opts.DefaultCompany = def.DefaultCompany
	}
	if opts.DueSoonWindow <= 0 {
		opts.DueSoonWindow = def.DueSoonWindow
	}
	if opts.Palette == (colors.Palette{}) {
		opts.Palette = def.Palette
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Builder{opts: opts, log: log}
}

// Build returns one record per distinct user email, in the order the emails
// first appear in items. now is the reference time for due date colouring.
func (b *Builder) Build(items []model.InputItem, now time.Time) ([]model.OutputRecord, error) {
	groups := b.group(items)

	tally := overdue.Tally{}
	records := make([]model.OutputRecord, 0, len(groups.users))
	rows := 0
	for _, u := range groups.users {
		tables := make([]render.Table, 0, len(u.companies))
		for _, c := range u.companies {
			tasks, dropped := dedupe(c.tasks)
			if dropped > 0 {
				b.log.Debug("dropped duplicate tasks", "email", u.email, "company", c.name, "count", dropped)
			}
			sortByDueDate(tasks)
			table := render.Table{Company: c.name, Rows: make([]render.Row, 0, len(tasks))}
			for _, t := range tasks {
				level := tally.Add(t.DueDate.Time, now, b.opts.DueSoonWindow)
				table.Rows = append(table.Rows, render.Row{
					Tier:       priority.Detect(t.Priority),
					Name:       t.Name,
					Due:        t.DueDate.Raw,
					Status:     t.Status,
					Background: b.opts.Palette.For(level),
				})
			}
			rows += len(table.Rows)
			tables = append(tables, table)
		}

		html, err := render.TablesString(tables)
		if err != nil {
			return nil, fmt.Errorf("failed to render report for %s: %w", u.email, err)
		}
		records = append(records, model.OutputRecord{
			Email:    u.email,
			UserName: u.userName,
			HTML:     html,
		})
	}

	b.log.Info("built task reports",
		"users", len(records),
		"tasks", rows,
		"overdue", tally[overdue.Overdue],
		"due_soon", tally[overdue.DueSoon])
	return records, nil
}

func (b *Builder) group(items []model.InputItem) *buckets {
	groups := newBuckets()
	for i, item := range items {
		if len(item.Users) == 0 {
			b.log.Debug("item has no users", "index", i, "id", item.ID.String())
			continue
		}
		if item.DueDate.IsSet() && !item.DueDate.Valid() {
			b.log.Debug("unparseable due date treated as missing", "index", i, "due_date", item.DueDate.Raw)
		}

		company := item.Company()
		if company == "" {
			company = b.opts.DefaultCompany
		}
		task := item.Task()
		for _, user := range item.Users {
			email := user.Email
			if email == "" {
				email = b.opts.DefaultEmail
			}
			g := groups.user(email, user.Name).company(company)
			g.tasks = append(g.tasks, task)
		}
	}
	return groups
}

// Build groups items with the default options.
func Build(items []model.InputItem, now time.Time) ([]model.OutputRecord, error) {
	return NewBuilder(DefaultOptions()).Build(items, now)
}
