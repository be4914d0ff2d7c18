package model

// User is one of the people a task is assigned to.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// InputItem is a single task row handed over by the workflow engine.
type InputItem struct {
	Users     []User       `json:"User"`
	Customers CompanyNames `json:"Customer Name"`
	ID        ID           `json:"id"`
	TaskName  Text         `json:"Task Name"`
	DueDate   DueDate      `json:"Due Date"`
	Status    Text         `json:"Status"`
	Priority  Priority     `json:"Priority"`
}

// Company returns the first customer name, or "" if there is none.
func (it InputItem) Company() string {
	if len(it.Customers) == 0 {
		return ""
	}
	return it.Customers[0]
}

// Task returns the task fields of the item.
func (it InputItem) Task() TaskRecord {
	return TaskRecord{
		ID:       it.ID,
		Name:     string(it.TaskName),
		DueDate:  it.DueDate,
		Status:   string(it.Status),
		Priority: it.Priority,
	}
}

// TaskRecord is the part of an InputItem that ends up in a report row.
type TaskRecord struct {
	ID       ID
	Name     string
	DueDate  DueDate
	Status   string
	Priority Priority
}

// OutputRecord is the per-user report handed back to the workflow engine.
type OutputRecord struct {
	Email    string `json:"email"`
	UserName string `json:"userName"`
	HTML     string `json:"html"`
}

// Envelope is the {"json": ...} wrapper workflow engines put around items.
type Envelope[T any] struct {
	JSON T `json:"json"`
}
