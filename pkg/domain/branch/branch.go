package branch

// Branch is a bank branch identified by its code.
type Branch struct {
	ID         uint
	BranchCode string
}

// New creates a Branch with the given code.
func New(code string) *Branch {
	return &Branch{BranchCode: code}
}
