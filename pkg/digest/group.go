package digest

import (
	"sort"

	"github.com/harrisonrobin/taskdigest/pkg/model"
)

// companyGroup holds the tasks of one user for one company, in input order.
type companyGroup struct {
	name  string
	tasks []model.TaskRecord
}

type userBucket struct {
	email     string
	userName  string
	companies []*companyGroup
	byName    map[string]*companyGroup
}

func (u *userBucket) company(name string) *companyGroup {
	if g, ok := u.byName[name]; ok {
		return g
	}
	g := &companyGroup{name: name}
	u.byName[name] = g
	u.companies = append(u.companies, g)
	return g
}

// buckets groups tasks by user email and company, remembering the order in
// which each email and company was first seen.
type buckets struct {
	users   []*userBucket
	byEmail map[string]*userBucket
}

func newBuckets() *buckets {
	return &buckets{byEmail: make(map[string]*userBucket)}
}

// user returns the bucket for email, creating it with userName if new. The
// first name seen for an email is kept.
func (b *buckets) user(email, userName string) *userBucket {
	if u, ok := b.byEmail[email]; ok {
		return u
	}
	u := &userBucket{
		email:    email,
		userName: userName,
		byName:   make(map[string]*companyGroup),
	}
	b.byEmail[email] = u
	b.users = append(b.users, u)
	return u
}

// dedupe keeps the first task for each id.
func dedupe(tasks []model.TaskRecord) (unique []model.TaskRecord, dropped int) {
	seen := make(map[model.ID]struct{}, len(tasks))
	unique = make([]model.TaskRecord, 0, len(tasks))
	for _, t := range tasks {
		if _, ok := seen[t.ID]; ok {
			dropped++
			continue
		}
		seen[t.ID] = struct{}{}
		unique = append(unique, t)
	}
	return unique, dropped
}

// sortByDueDate orders tasks by ascending due date. Tasks without a usable
// due date go last; ties keep their input order.
func sortByDueDate(tasks []model.TaskRecord) {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i].DueDate, tasks[j].DueDate
		switch {
		case !a.Valid():
			return false
		case !b.Valid():
			return true
		}
		return a.Time.Before(b.Time)
	})
}
