package directory

type EmployeeInput struct {
	// 0 takes the next free id
	ID     int64
	Name   string
	Dept   string
	Status string
}

type LinkInput struct {
	Username   string
	Role       string
	EmployeeID *int64
}
