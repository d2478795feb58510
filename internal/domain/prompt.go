package domain

// VCSStatus is the version-control snapshot the prompt renders from.
// The zero value means "not inside a repository" and renders as nothing.
type VCSStatus struct {
	Branch string
	Dirty  bool
}

// InRepo reports whether the snapshot refers to a repository.
func (s VCSStatus) InRepo() bool {
	return s.Branch != ""
}
